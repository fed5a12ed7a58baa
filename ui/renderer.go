package ui

import (
	"fmt"

	"gridsnake/game"
	"gridsnake/game/manager"
	"gridsnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	hudHeight = 30 // strip under the board for session stats
	inset     = 1  // gap between neighbouring tiles
)

type Renderer struct {
	cellSize     int32
	boardWidth   int32
	boardHeight  int32
	screenWidth  int32
	screenHeight int32
}

// NewRenderer sizes the renderer for a board in board units, one board
// unit per pixel.
func NewRenderer(grid types.Grid) *Renderer {
	return &Renderer{
		cellSize:     types.TileSize,
		boardWidth:   int32(grid.Width),
		boardHeight:  int32(grid.Height),
		screenWidth:  int32(grid.Width),
		screenHeight: int32(grid.Height) + hudHeight,
	}
}

func (r *Renderer) ScreenSize() (int32, int32) {
	return r.screenWidth, r.screenHeight
}

func (r *Renderer) Draw(snap game.Snapshot, stats *manager.StateManager) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	// Food
	r.drawTile(snap.Food, rl.Red)

	// Snake head
	r.drawTile(snap.Head, rl.Green)
	r.drawHeading(snap.Head, snap.Heading)

	// Snake body
	for _, p := range snap.Body {
		r.drawTile(p, rl.Green)
	}

	// Score
	fontSize := int32(16)
	if snap.GameOver {
		rl.DrawText(fmt.Sprintf("Game over: %d", snap.Score), r.cellSize-16, r.cellSize, fontSize, rl.Red)
		hint := "R restart, Q quit"
		w := rl.MeasureText(hint, fontSize)
		rl.DrawText(hint, (r.boardWidth-w)/2, r.boardHeight/2, fontSize, rl.White)
	} else {
		rl.DrawText(fmt.Sprintf("Score: %d", snap.Score), r.cellSize-16, r.cellSize, fontSize, rl.White)
	}

	r.drawStatsPanel(stats, fontSize)
	rl.EndDrawing()
}

func (r *Renderer) drawTile(p types.Point, color rl.Color) {
	rl.DrawRectangle(
		int32(p.X)*r.cellSize+inset,
		int32(p.Y)*r.cellSize+inset,
		r.cellSize-2*inset, r.cellSize-2*inset, color)
}

// drawHeading puts a small arrow on the head pointing where it goes.
func (r *Renderer) drawHeading(head, dir types.Point) {
	headX := int32(head.X) * r.cellSize
	headY := int32(head.Y) * r.cellSize
	halfCell := r.cellSize / 2
	switch {
	case dir.X > 0: // Right
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
			rl.Yellow)
	case dir.X < 0: // Left
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Yellow)
	case dir.Y > 0: // Down
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
			rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Yellow)
	case dir.Y < 0: // Up
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
			rl.Yellow)
	}
}

func (r *Renderer) drawStatsPanel(stats *manager.StateManager, fontSize int32) {
	y := r.boardHeight
	rl.DrawRectangle(0, y, r.screenWidth, hudHeight, rl.DarkGray)
	text := fmt.Sprintf("Best: %d   Games: %d   Avg: %.1f   Avg time: %.1fs",
		stats.GetHighScore(),
		stats.GetGamesPlayed(),
		stats.GetAverageScore(),
		stats.GetAverageDuration().Seconds())
	rl.DrawText(text, 10, y+(hudHeight-fontSize)/2, fontSize, rl.White)
}
