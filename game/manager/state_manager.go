package manager

import (
	"sort"
	"sync"
	"time"
)

// GameRecord is one finished game.
type GameRecord struct {
	ID        string    `json:"id"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Score     int       `json:"score"`
	Steps     int       `json:"steps"`
}

func (r GameRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// StateManager keeps the results of the games played in this process. It
// is shared by the presentation goroutines, hence the lock.
type StateManager struct {
	mutex sync.RWMutex
	games []GameRecord
}

func NewStateManager() *StateManager {
	return &StateManager{
		games: make([]GameRecord, 0),
	}
}

// AddGame records a finished game.
func (sm *StateManager) AddGame(rec GameRecord) {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()
	sm.games = append(sm.games, rec)
}

// GetStats returns a copy of the recorded games, oldest first.
func (sm *StateManager) GetStats() []GameRecord {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	out := make([]GameRecord, len(sm.games))
	copy(out, sm.games)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out
}

func (sm *StateManager) GetGamesPlayed() int {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	return len(sm.games)
}

func (sm *StateManager) GetHighScore() int {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	high := 0
	for _, g := range sm.games {
		if g.Score > high {
			high = g.Score
		}
	}
	return high
}

func (sm *StateManager) GetAverageScore() float64 {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	if len(sm.games) == 0 {
		return 0
	}
	total := 0
	for _, g := range sm.games {
		total += g.Score
	}
	return float64(total) / float64(len(sm.games))
}

// GetAverageDuration returns the mean game length.
func (sm *StateManager) GetAverageDuration() time.Duration {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	if len(sm.games) == 0 {
		return 0
	}
	var total time.Duration
	for _, g := range sm.games {
		total += g.Duration()
	}
	return total / time.Duration(len(sm.games))
}
