package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// ErrBoardTooSmall is returned when the board cannot hold the start cell.
var ErrBoardTooSmall = errors.New("board too small")

// Settings configures a new game. The zero value of every field except
// Width and Height is a usable default.
type Settings struct {
	Width     int // board units
	Height    int // board units
	Seed      uint64
	Boundary  types.BoundaryMode
	AvoidBody bool
}

// Game is the state of one session: grid, snake, food and the game over
// flag. All methods are safe for concurrent use; Tick is expected to be
// driven by a single scheduler while SetDirection may arrive from another
// goroutine.
type Game struct {
	UUID      string
	Grid      types.Grid
	StartTime time.Time

	mutex        sync.RWMutex
	snake        *entity.Snake
	food         types.Point
	gameOver     bool
	collision    manager.CollisionType
	steps        int
	endTime      time.Time
	seed         uint64
	foodMgr      *manager.FoodManager
	collisionMgr *manager.CollisionManager
}

// Snapshot is a consistent copy of the game taken under one lock.
type Snapshot struct {
	UUID      string
	Grid      types.Grid
	Head      types.Point
	Body      []types.Point
	Food      types.Point
	Heading   types.Point
	GameOver  bool
	Collision manager.CollisionType
	Score     int
	Steps     int
}

// New starts a game on a width x height board (in board units) with the
// default settings and a time based seed.
func New(width, height int) *Game {
	g, err := NewWithSettings(Settings{Width: width, Height: height})
	if err != nil {
		panic(err)
	}
	return g
}

func NewWithSettings(s Settings) (*Game, error) {
	minW := (types.StartCell.X + 1) * types.TileSize
	minH := (types.StartCell.Y + 1) * types.TileSize
	if s.Width < minW || s.Height < minH {
		return nil, fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrBoardTooSmall, s.Width, s.Height, minW, minH)
	}
	if s.Boundary != types.BoundaryScaled && s.Boundary != types.BoundaryCell {
		return nil, fmt.Errorf("invalid boundary mode %v", s.Boundary)
	}

	seed := s.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	grid := types.NewGrid(s.Width, s.Height)

	g := &Game{
		UUID:         uuid.New().String(),
		Grid:         grid,
		StartTime:    time.Now(),
		snake:        entity.NewSnake(types.StartCell),
		seed:         seed,
		foodMgr:      manager.NewFoodManager(grid, rand.New(rand.NewSource(seed))),
		collisionMgr: manager.NewCollisionManager(grid, s.Boundary),
	}
	g.foodMgr.AvoidBody = s.AvoidBody
	g.food = g.foodMgr.GenerateFood(g.snake)
	return g, nil
}

// Tick advances the game by one step. Once the game is over it does
// nothing.
func (g *Game) Tick() {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if g.gameOver {
		return
	}
	g.steps++

	// Eating compares the head before it moves.
	if g.collisionMgr.IsFoodCollision(g.snake.Head, g.food) {
		g.snake.Grow(g.food)
		g.food = g.foodMgr.GenerateFood(g.snake)
	}

	g.snake.Shift()
	g.snake.Advance()

	if c := g.collisionMgr.CheckCollision(g.snake); c != manager.NoCollision {
		g.gameOver = true
		g.collision = c
		g.endTime = time.Now()
	}
}

// SetDirection steers the snake. A reversal of the current heading is
// ignored, as is any input once the game is over.
func (g *Game) SetDirection(dir types.Direction) {
	v := dir.ToPoint()
	if v == (types.Point{}) {
		return
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()
	if g.gameOver {
		return
	}
	g.snake.SetDirection(v)
}

func (g *Game) Head() types.Point {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.snake.Head
}

// Body returns a copy of the segments, nearest to the head first.
func (g *Game) Body() []types.Point {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	body := make([]types.Point, len(g.snake.Body))
	copy(body, g.snake.Body)
	return body
}

func (g *Game) Food() types.Point {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.food
}

func (g *Game) Heading() types.Point {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.snake.Direction
}

func (g *Game) GameOver() bool {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.gameOver
}

// Score is the body length.
func (g *Game) Score() int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.snake.Length()
}

func (g *Game) Steps() int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.steps
}

// Seed returns the seed of the food generator, useful to replay a session.
func (g *Game) Seed() uint64 {
	return g.seed
}

func (g *Game) Snapshot() Snapshot {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	body := make([]types.Point, len(g.snake.Body))
	copy(body, g.snake.Body)
	return Snapshot{
		UUID:      g.UUID,
		Grid:      g.Grid,
		Head:      g.snake.Head,
		Body:      body,
		Food:      g.food,
		Heading:   g.snake.Direction,
		GameOver:  g.gameOver,
		Collision: g.collision,
		Score:     g.snake.Length(),
		Steps:     g.steps,
	}
}

// Record summarises the game for the session stats. For a game still in
// progress the end time is now.
func (g *Game) Record() manager.GameRecord {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	end := g.endTime
	if !g.gameOver {
		end = time.Now()
	}
	return manager.GameRecord{
		ID:        g.UUID,
		StartTime: g.StartTime,
		EndTime:   end,
		Score:     g.snake.Length(),
		Steps:     g.steps,
	}
}
