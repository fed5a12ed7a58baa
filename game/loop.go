package game

import (
	"context"
	"log/slog"
	"time"
)

// DefaultTickInterval is the cadence of the classic game.
const DefaultTickInterval = 100 * time.Millisecond

// Loop drives a Game at a fixed interval, separately from whatever draws it.
type Loop struct {
	Game     *Game
	Interval time.Duration
	// OnTick, if set, receives the state after every tick, including the
	// one that ends the game.
	OnTick func(Snapshot)
	Logger *slog.Logger
}

// Run ticks the game until it is over or ctx is done. It returns nil when
// the game ended and ctx.Err() when it was cancelled.
func (l *Loop) Run(ctx context.Context) error {
	interval := l.Interval
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("loop cancelled", "game", l.Game.UUID, "steps", l.Game.Steps())
			return ctx.Err()
		case <-ticker.C:
			l.Game.Tick()
			snap := l.Game.Snapshot()
			if l.OnTick != nil {
				l.OnTick(snap)
			}
			if snap.GameOver {
				logger.Info("game over",
					"game", snap.UUID,
					"score", snap.Score,
					"steps", snap.Steps,
					"cause", snap.Collision.String(),
					"duration", l.Game.Record().Duration())
				return nil
			}
		}
	}
}
