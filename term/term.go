// Package term is a terminal front end for the game built on tcell.
package term

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"gridsnake/game"
	"gridsnake/game/types"

	"github.com/gdamore/tcell/v2"
)

const (
	dHoriz  = '-'
	dVert   = '|'
	dCorner = '+'
	dHead   = '@'
	dBody   = '#'
	dFood   = '*'
)

// Open creates and initialises the terminal screen.
func Open() (tcell.Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}
	return s, nil
}

type Frontend struct {
	screen   tcell.Screen
	session  *game.Session
	interval time.Duration
	logger   *slog.Logger

	defStyle  tcell.Style
	headStyle tcell.Style
	foodStyle tcell.Style
	overStyle tcell.Style
}

func New(screen tcell.Screen, session *game.Session, interval time.Duration, logger *slog.Logger) *Frontend {
	if logger == nil {
		logger = slog.Default()
	}
	def := tcell.StyleDefault.Background(tcell.ColorDefault).Foreground(tcell.ColorDefault)
	screen.SetStyle(def)
	return &Frontend{
		screen:    screen,
		session:   session,
		interval:  interval,
		logger:    logger,
		defStyle:  def,
		headStyle: def.Foreground(tcell.ColorGreen).Bold(true),
		foodStyle: def.Foreground(tcell.ColorRed),
		overStyle: def.Foreground(tcell.ColorRed).Bold(true),
	}
}

// Run plays until the user quits or ctx is done. Ticks run on their own
// goroutine; key presses are applied as they arrive.
func (f *Frontend) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	evChan := make(chan tcell.Event, 100)
	quitChan := make(chan struct{})
	go f.screen.ChannelEvents(evChan, quitChan)
	defer close(quitChan)

	redraw := make(chan struct{}, 1)
	var wg sync.WaitGroup
	start := func(g *game.Game) context.CancelFunc {
		lctx, lcancel := context.WithCancel(ctx)
		loop := &game.Loop{
			Game:     g,
			Interval: f.interval,
			Logger:   f.logger,
			OnTick: func(game.Snapshot) {
				select {
				case redraw <- struct{}{}:
				default:
				}
			},
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = loop.Run(lctx)
		}()
		return lcancel
	}

	stopLoop := start(f.session.Game())
	stop := func() {
		stopLoop()
		wg.Wait()
		f.session.Finish()
	}
	f.Draw(f.session.Game().Snapshot())

	for {
		select {
		case <-ctx.Done():
			stop()
			return ctx.Err()
		case <-redraw:
			f.Draw(f.session.Game().Snapshot())
		case ev := <-evChan:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				f.screen.Sync()
				f.Draw(f.session.Game().Snapshot())
			case *tcell.EventKey:
				if dir, ok := KeyDirection(ev); ok {
					f.session.Game().SetDirection(dir)
					continue
				}
				switch {
				case IsQuit(ev):
					stop()
					f.logger.Info("quit", "games_played", f.session.Stats().GetGamesPlayed())
					return nil
				case IsRestart(ev) && f.session.Game().GameOver():
					stopLoop()
					wg.Wait()
					g, err := f.session.Restart()
					if err != nil {
						return err
					}
					stopLoop = start(g)
					f.screen.Clear()
					f.Draw(g.Snapshot())
				}
			}
		}
	}
}

// KeyDirection maps arrows, hjkl and wasd to a direction.
func KeyDirection(ev *tcell.EventKey) (types.Direction, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return types.UP, true
	case tcell.KeyDown:
		return types.DOWN, true
	case tcell.KeyLeft:
		return types.LEFT, true
	case tcell.KeyRight:
		return types.RIGHT, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k', 'w':
			return types.UP, true
		case 'j', 's':
			return types.DOWN, true
		case 'h', 'a':
			return types.LEFT, true
		case 'l', 'd':
			return types.RIGHT, true
		}
	}
	return types.NONE, false
}

func IsQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

func IsRestart(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyRune && (ev.Rune() == 'r' || ev.Rune() == 'R')
}

// Draw renders one frame. Cell (x,y) of the grid is drawn at screen
// column x+1, row y+1, inside a one character border.
func (f *Frontend) Draw(snap game.Snapshot) {
	s := f.screen
	s.Clear()

	cols, rows := snap.Grid.Cols, snap.Grid.Rows
	for x := 0; x <= cols+1; x++ {
		s.SetContent(x, 0, dHoriz, nil, f.defStyle)
		s.SetContent(x, rows+1, dHoriz, nil, f.defStyle)
	}
	for y := 0; y <= rows+1; y++ {
		s.SetContent(0, y, dVert, nil, f.defStyle)
		s.SetContent(cols+1, y, dVert, nil, f.defStyle)
	}
	for _, c := range [][2]int{{0, 0}, {cols + 1, 0}, {0, rows + 1}, {cols + 1, rows + 1}} {
		s.SetContent(c[0], c[1], dCorner, nil, f.defStyle)
	}

	f.drawCell(snap.Food, dFood, f.foodStyle)
	for _, p := range snap.Body {
		f.drawCell(p, dBody, f.defStyle)
	}
	f.drawCell(snap.Head, dHead, f.headStyle)

	f.drawText(0, rows+2, f.hud(snap), f.hudStyle(snap))
	stats := f.session.Stats()
	f.drawText(0, rows+3, fmt.Sprintf("Best: %d  Games: %d", stats.GetHighScore(), stats.GetGamesPlayed()), f.defStyle)
	if snap.GameOver {
		f.drawText(0, rows+4, "R restart, Q quit", f.defStyle)
	}
	s.Show()
}

func (f *Frontend) hud(snap game.Snapshot) string {
	if snap.GameOver {
		return fmt.Sprintf("Game over: %d", snap.Score)
	}
	return fmt.Sprintf("Score: %d", snap.Score)
}

func (f *Frontend) hudStyle(snap game.Snapshot) tcell.Style {
	if snap.GameOver {
		return f.overStyle
	}
	return f.defStyle
}

func (f *Frontend) drawCell(p types.Point, c rune, style tcell.Style) {
	f.screen.SetContent(p.X+1, p.Y+1, c, nil, style)
}

func (f *Frontend) drawText(x, y int, text string, style tcell.Style) {
	for i, c := range text {
		f.screen.SetContent(x+i, y, c, nil, style)
	}
}
