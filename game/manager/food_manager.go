package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// Intn is the slice of a random generator the food manager needs.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Intn interface {
	Intn(n int) int
}

// maxAvoidTries bounds the rejection sampling used when AvoidBody is set.
const maxAvoidTries = 64

type FoodManager struct {
	grid types.Grid
	rng  Intn

	// AvoidBody rejects cells occupied by the snake. Off by default: the
	// classic game lets food spawn under the body.
	AvoidBody bool
}

func NewFoodManager(grid types.Grid, rng Intn) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rng,
	}
}

// GenerateFood draws a cell uniformly from the grid.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) types.Point {
	food := fm.draw()
	if !fm.AvoidBody || snake == nil {
		return food
	}
	for try := 0; try < maxAvoidTries && snake.Occupies(food); try++ {
		food = fm.draw()
	}
	return food
}

func (fm *FoodManager) draw() types.Point {
	return types.Point{
		X: fm.rng.Intn(fm.grid.Cols),
		Y: fm.rng.Intn(fm.grid.Rows),
	}
}
