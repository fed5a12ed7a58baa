// Package ui is the raylib front end. Everything here runs on the thread
// that owns the window, so ticks happen inside the frame loop.
package ui

import (
	"log/slog"
	"time"

	"gridsnake/game"
	"gridsnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyDirections = map[int32]types.Direction{
	rl.KeyUp:    types.UP,
	rl.KeyW:     types.UP,
	rl.KeyDown:  types.DOWN,
	rl.KeyS:     types.DOWN,
	rl.KeyLeft:  types.LEFT,
	rl.KeyA:     types.LEFT,
	rl.KeyRight: types.RIGHT,
	rl.KeyD:     types.RIGHT,
}

// pollDirection returns the last direction key pressed this frame.
func pollDirection() (types.Direction, bool) {
	dir, ok := types.NONE, false
	for key, d := range keyDirections {
		if rl.IsKeyPressed(key) {
			dir, ok = d, true
		}
	}
	return dir, ok
}

// Run opens a window sized to the board and plays until Q is pressed or
// the window is closed.
func Run(session *game.Session, interval time.Duration, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}

	renderer := NewRenderer(session.Game().Grid)
	w, h := renderer.ScreenSize()
	rl.InitWindow(w, h, "Snake")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	g := session.Game()
	lastUpdate := time.Now()
	reported := false

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}

		if dir, ok := pollDirection(); ok {
			g.SetDirection(dir)
		}

		if g.GameOver() {
			if !reported {
				snap := g.Snapshot()
				logger.Info("game over",
					"game", snap.UUID,
					"score", snap.Score,
					"steps", snap.Steps,
					"cause", snap.Collision.String(),
					"duration", g.Record().Duration())
				reported = true
			}
			if rl.IsKeyPressed(rl.KeyR) {
				next, err := session.Restart()
				if err != nil {
					logger.Error("restart failed", "err", err)
					break
				}
				g = next
				reported = false
				lastUpdate = time.Now()
			}
		} else if time.Since(lastUpdate) >= interval {
			g.Tick()
			lastUpdate = time.Now()
		}

		renderer.Draw(g.Snapshot(), session.Stats())
	}

	session.Finish()
	logger.Info("quit", "games_played", session.Stats().GetGamesPlayed())
}
