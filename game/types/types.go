package types

import "fmt"

// TileSize is the edge of one grid cell in board units (pixels).
const TileSize = 25

// StartCell is where every new snake's head is placed.
var StartCell = Point{X: 5, Y: 5}

type Point struct {
	X, Y int
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Neg returns the opposite vector.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid holds the board size in board units and the derived cell counts.
type Grid struct {
	Width  int // board units
	Height int // board units
	Cols   int
	Rows   int
}

func NewGrid(width, height int) Grid {
	return Grid{
		Width:  width,
		Height: height,
		Cols:   width / TileSize,
		Rows:   height / TileSize,
	}
}

// Contains reports whether p is a cell of the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Cols && p.Y >= 0 && p.Y < g.Rows
}

// Direction is a cardinal input direction
type Direction int

const (
	NONE  Direction = iota // 0
	UP                     // 1
	RIGHT                  // 2
	DOWN                   // 3
	LEFT                   // 4
)

// ToPoint converts a Direction to its unit movement vector.
func (d Direction) ToPoint() Point {
	switch d {
	case UP:
		return Point{X: 0, Y: -1}
	case RIGHT:
		return Point{X: 1, Y: 0}
	case DOWN:
		return Point{X: 0, Y: 1}
	case LEFT:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

func (d Direction) String() string {
	switch d {
	case UP:
		return "up"
	case RIGHT:
		return "right"
	case DOWN:
		return "down"
	case LEFT:
		return "left"
	default:
		return "none"
	}
}

// BoundaryMode selects how the wall check interprets the head position.
type BoundaryMode int

const (
	// BoundaryScaled multiplies the head cell by TileSize and compares it
	// against the board size inclusively, so the head may reach column Cols
	// (and row Rows) before the game ends.
	BoundaryScaled BoundaryMode = iota
	// BoundaryCell ends the game as soon as the head leaves [0,Cols)x[0,Rows).
	BoundaryCell
)

func (m BoundaryMode) String() string {
	switch m {
	case BoundaryScaled:
		return "scaled"
	case BoundaryCell:
		return "cell"
	default:
		return fmt.Sprintf("BoundaryMode(%d)", int(m))
	}
}

// ParseBoundaryMode maps "scaled" or "cell" to a BoundaryMode.
func ParseBoundaryMode(s string) (BoundaryMode, error) {
	switch s {
	case "scaled", "":
		return BoundaryScaled, nil
	case "cell":
		return BoundaryCell, nil
	}
	return 0, fmt.Errorf("unknown boundary mode %q", s)
}
