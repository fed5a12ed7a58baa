package term

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"gridsnake/game"
	"gridsnake/game/types"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	s.SetSize(40, 20)
	t.Cleanup(s.Fini)
	return s
}

func newSession(t *testing.T) *game.Session {
	t.Helper()
	s, err := game.NewSession(game.Settings{Width: 250, Height: 250, Seed: 5, Boundary: types.BoundaryCell},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func runeAt(s tcell.SimulationScreen, x, y int) rune {
	cells, w, _ := s.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return ' '
	}
	return c.Runes[0]
}

func line(s tcell.SimulationScreen, y int) string {
	cells, w, _ := s.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(c.Runes[0])
	}
	return strings.TrimRight(b.String(), " ")
}

func TestKeyDirection(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want types.Direction
		ok   bool
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), types.UP, true},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), types.DOWN, true},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), types.LEFT, true},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), types.RIGHT, true},
		{tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), types.UP, true},
		{tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), types.LEFT, true},
		{tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), types.DOWN, true},
		{tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), types.RIGHT, true},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), types.NONE, false},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), types.NONE, false},
	}
	for _, tt := range tests {
		got, ok := KeyDirection(tt.ev)
		if got != tt.want || ok != tt.ok {
			t.Errorf("%s: got %v,%v want %v,%v", tt.ev.Name(), got, ok, tt.want, tt.ok)
		}
	}
}

func TestQuitAndRestartKeys(t *testing.T) {
	if !IsQuit(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Esc does not quit")
	}
	if !IsQuit(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q does not quit")
	}
	if IsQuit(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone)) {
		t.Error("r quits")
	}
	if !IsRestart(tcell.NewEventKey(tcell.KeyRune, 'R', tcell.ModNone)) {
		t.Error("R does not restart")
	}
}

func TestDraw(t *testing.T) {
	screen := newSimScreen(t)
	f := New(screen, newSession(t), time.Millisecond, nil)

	f.Draw(game.Snapshot{
		Grid:  types.NewGrid(250, 250),
		Head:  types.Point{X: 3, Y: 2},
		Body:  []types.Point{{X: 2, Y: 2}, {X: 1, Y: 2}},
		Food:  types.Point{X: 7, Y: 8},
		Score: 2,
	})

	checks := []struct {
		x, y int
		want rune
	}{
		{0, 0, dCorner},
		{11, 11, dCorner},
		{5, 0, dHoriz},
		{0, 5, dVert},
		{4, 3, dHead},
		{3, 3, dBody},
		{2, 3, dBody},
		{8, 9, dFood},
		{5, 5, ' '},
	}
	for _, c := range checks {
		if got := runeAt(screen, c.x, c.y); got != c.want {
			t.Errorf("(%d,%d) = %q, want %q", c.x, c.y, got, c.want)
		}
	}
	if got := line(screen, 12); got != "Score: 2" {
		t.Errorf("hud = %q", got)
	}
	if got := line(screen, 13); got != "Best: 0  Games: 0" {
		t.Errorf("stats = %q", got)
	}
}

func TestDrawGameOver(t *testing.T) {
	screen := newSimScreen(t)
	f := New(screen, newSession(t), time.Millisecond, nil)

	f.Draw(game.Snapshot{Grid: types.NewGrid(250, 250), Head: types.Point{X: 10, Y: 5}, GameOver: true})

	if got := line(screen, 12); got != "Game over: 0" {
		t.Errorf("hud = %q", got)
	}
	if got := line(screen, 14); got != "R restart, Q quit" {
		t.Errorf("hint = %q", got)
	}
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestRunPlayRestartQuit(t *testing.T) {
	screen := newSimScreen(t)
	session := newSession(t)
	f := New(screen, session, time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)))

	done := make(chan error, 1)
	go func() { done <- f.Run(context.Background()) }()

	first := session.Game()
	screen.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	waitFor(t, "the first game to end", first.GameOver)

	screen.InjectKey(tcell.KeyRune, 'r', tcell.ModNone)
	waitFor(t, "a restart", func() bool { return session.Game() != first })

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after q")
	}

	if got := session.Stats().GetGamesPlayed(); got != 2 {
		t.Errorf("games played = %d, want 2", got)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	screen := newSimScreen(t)
	session := newSession(t)
	f := New(screen, session, time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("Run = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop")
	}
	if got := session.Stats().GetGamesPlayed(); got != 1 {
		t.Errorf("games played = %d, want 1", got)
	}
}
