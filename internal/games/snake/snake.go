package snake

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snake is an ordered run of grid cells moving in a unit direction.
// The head is at index 0.
type Snake struct {
	body      []core.Point
	direction core.Point
}

// NewSnake creates a one-cell snake at start heading in dir.
func NewSnake(start, dir core.Point) *Snake {
	return &Snake{
		body:      []core.Point{start},
		direction: dir,
	}
}

// Head returns the head cell.
func (s *Snake) Head() core.Point {
	return s.body[0]
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []core.Point {
	out := make([]core.Point, len(s.body))
	copy(out, s.body)
	return out
}

// Len returns the number of cells in the body.
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the current movement vector.
func (s *Snake) Direction() core.Point {
	return s.direction
}

// SetDirection changes the movement vector unless d reverses the current one.
// A reversal is ignored and reported as false.
func (s *Snake) SetDirection(d core.Point) bool {
	if d == s.direction.Neg() {
		return false
	}
	s.direction = d
	return true
}

// Advance moves the snake one cell: the tail is dropped and a new head is
// pushed at head+direction. Bounds are not checked.
func (s *Snake) Advance() {
	head := s.next()
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = head
}

// Grow pushes a new head at head+direction without dropping the tail.
func (s *Snake) Grow() {
	head := s.next()
	s.body = append(s.body, core.Point{})
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = head
}

// Reset replaces the body with a single cell. The direction is kept.
func (s *Snake) Reset(start core.Point) {
	s.body = append(s.body[:0], start)
}

// Occupies reports whether any body cell equals p.
func (s *Snake) Occupies(p core.Point) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// HitsSelf reports whether the head overlaps any other body cell.
func (s *Snake) HitsSelf() bool {
	for _, seg := range s.body[1:] {
		if seg == s.body[0] {
			return true
		}
	}
	return false
}

func (s *Snake) next() core.Point {
	return s.body[0].Add(s.direction)
}

// Draw renders the body tail first so the head stays on top.
func (s *Snake) Draw(dst *core.Screen, l Layout, sp Sprites) {
	for i := len(s.body) - 1; i >= 0; i-- {
		glyph, color := sp.Body, core.ColorDarkGreen
		if i == 0 {
			glyph, color = sp.Head, core.ColorGreen
		}
		dst.DrawRect(l.CellRect(s.body[i]), glyph, color)
	}
}
