package game

import (
	"log/slog"
	"sync"

	"gridsnake/game/manager"
)

// Session owns the current game and the stats of the games already played
// in this process. Front ends restart games through it.
type Session struct {
	settings Settings
	stats    *manager.StateManager
	logger   *slog.Logger

	mutex    sync.Mutex
	game     *Game
	recorded bool
	restarts uint64
}

func NewSession(settings Settings, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = slog.Default()
	}
	g, err := NewWithSettings(settings)
	if err != nil {
		return nil, err
	}
	s := &Session{
		settings: settings,
		stats:    manager.NewStateManager(),
		logger:   logger,
		game:     g,
	}
	s.logStart(g)
	return s, nil
}

func (s *Session) Game() *Game {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.game
}

func (s *Session) Stats() *manager.StateManager {
	return s.stats
}

// Restart records the current game and replaces it with a fresh one. A
// fixed seed is offset by the restart count so successive games differ but
// stay reproducible.
func (s *Session) Restart() (*Game, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.recordLocked()
	next := s.settings
	s.restarts++
	if next.Seed != 0 {
		next.Seed += s.restarts
	}
	g, err := NewWithSettings(next)
	if err != nil {
		return nil, err
	}
	s.game = g
	s.recorded = false
	s.logger.Info("game restarted", "games_played", s.stats.GetGamesPlayed())
	s.logStart(g)
	return g, nil
}

// Finish records the current game if it has not been recorded yet.
func (s *Session) Finish() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.recordLocked()
}

func (s *Session) recordLocked() {
	if s.recorded {
		return
	}
	rec := s.game.Record()
	s.stats.AddGame(rec)
	s.recorded = true
	s.logger.Debug("game recorded",
		"game", rec.ID,
		"score", rec.Score,
		"steps", rec.Steps,
		"duration", rec.Duration())
}

func (s *Session) logStart(g *Game) {
	s.logger.Info("game started",
		"game", g.UUID,
		"width", g.Grid.Width,
		"height", g.Grid.Height,
		"cols", g.Grid.Cols,
		"rows", g.Grid.Rows,
		"seed", g.Seed())
}
