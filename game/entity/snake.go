package entity

import (
	"gridsnake/game/types"
)

// Snake is the player's head plus its trailing body. Body[0] is the segment
// next to the head, the last element is the tail.
type Snake struct {
	Head      types.Point
	Body      []types.Point
	Direction types.Point
}

func NewSnake(startPos types.Point) *Snake {
	return &Snake{
		Head:      startPos,
		Body:      make([]types.Point, 0),
		Direction: types.Point{X: 0, Y: 0}, // still until the first key press
	}
}

// SetDirection turns the snake unless dir would reverse it into its neck.
// It reports whether the heading changed.
func (s *Snake) SetDirection(dir types.Point) bool {
	if dir == s.Direction.Neg() {
		return false
	}
	s.Direction = dir
	return true
}

// Grow appends a segment at pos.
func (s *Snake) Grow(pos types.Point) {
	s.Body = append(s.Body, pos)
}

// Shift moves every segment into the place of the one ahead of it, walking
// from the tail so nothing is overwritten before it is read. The first
// segment takes the current head position.
func (s *Snake) Shift() {
	for i := len(s.Body) - 1; i >= 0; i-- {
		if i == 0 {
			s.Body[i] = s.Head
		} else {
			s.Body[i] = s.Body[i-1]
		}
	}
}

// Advance moves the head one step along the heading.
func (s *Snake) Advance() {
	s.Head = s.Head.Add(s.Direction)
}

func (s *Snake) Length() int {
	return len(s.Body)
}

// Occupies reports whether p is the head or any body segment.
func (s *Snake) Occupies(p types.Point) bool {
	if s.Head == p {
		return true
	}
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}
