package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid types.Grid
	mode types.BoundaryMode
}

func NewCollisionManager(grid types.Grid, mode types.BoundaryMode) *CollisionManager {
	return &CollisionManager{
		grid: grid,
		mode: mode,
	}
}

// CheckCollision runs the self check first, then the wall check, and
// returns the first collision found.
func (cm *CollisionManager) CheckCollision(snake *entity.Snake) CollisionType {
	if cm.isSelfCollision(snake) {
		return SelfCollision
	}
	if cm.IsWallCollision(snake.Head) {
		return WallCollision
	}
	return NoCollision
}

// isSelfCollision stops at the first body segment that matches the head.
func (cm *CollisionManager) isSelfCollision(snake *entity.Snake) bool {
	for _, part := range snake.Body {
		if part == snake.Head {
			return true
		}
	}
	return false
}

// IsWallCollision checks pos against the board edges using the configured
// boundary mode.
func (cm *CollisionManager) IsWallCollision(pos types.Point) bool {
	if cm.mode == types.BoundaryCell {
		return !cm.grid.Contains(pos)
	}
	x, y := pos.X*types.TileSize, pos.Y*types.TileSize
	return x < 0 || x > cm.grid.Width || y < 0 || y > cm.grid.Height
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
