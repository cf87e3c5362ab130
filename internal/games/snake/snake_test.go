package snake

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

var allDirections = []core.Point{core.Up, core.Down, core.Left, core.Right}

func TestSetDirectionRejectsOnlyReversal(t *testing.T) {
	for _, current := range allDirections {
		for _, d := range allDirections {
			s := NewSnake(core.Point{X: 5, Y: 5}, current)
			ok := s.SetDirection(d)

			wantOK := d != current.Neg()
			if ok != wantOK {
				t.Errorf("SetDirection(%v) from %v = %v, expected %v", d, current, ok, wantOK)
			}
			want := d
			if !wantOK {
				want = current
			}
			if s.Direction() != want {
				t.Errorf("Direction after SetDirection(%v) from %v = %v, expected %v", d, current, s.Direction(), want)
			}
		}
	}
}

func TestAdvanceSingleCell(t *testing.T) {
	s := NewSnake(core.Point{X: 2, Y: 2}, core.Right)
	s.Advance()

	body := s.Body()
	if len(body) != 1 || body[0] != (core.Point{X: 3, Y: 2}) {
		t.Errorf("Body after Advance = %v, expected [(3,2)]", body)
	}
}

func TestAdvancePreservesLength(t *testing.T) {
	s := NewSnake(core.Point{X: 2, Y: 2}, core.Right)
	s.Grow()
	s.Grow()

	s.Advance()
	expected := []core.Point{{X: 5, Y: 2}, {X: 4, Y: 2}, {X: 3, Y: 2}}
	body := s.Body()
	if len(body) != len(expected) {
		t.Fatalf("Len after Advance = %d, expected %d", len(body), len(expected))
	}
	for i := range expected {
		if body[i] != expected[i] {
			t.Errorf("body[%d] = %v, expected %v", i, body[i], expected[i])
		}
	}

	s.SetDirection(core.Down)
	s.Advance()
	if s.Head() != (core.Point{X: 5, Y: 3}) || s.Len() != 3 {
		t.Errorf("After turning down: head %v len %d, expected (5,3) len 3", s.Head(), s.Len())
	}
}

func TestGrowAddsOneCellPerCall(t *testing.T) {
	for n := 0; n <= 6; n++ {
		s := NewSnake(core.Point{X: 0, Y: 0}, core.Down)
		for range n {
			s.Grow()
		}
		if s.Len() != 1+n {
			t.Errorf("Len after %d grows = %d, expected %d", n, s.Len(), 1+n)
		}
		if s.Head() != (core.Point{X: 0, Y: n}) {
			t.Errorf("Head after %d grows = %v, expected (0,%d)", n, s.Head(), n)
		}
	}
}

func TestHitsSelf(t *testing.T) {
	tests := []struct {
		name     string
		body     []core.Point
		expected bool
	}{
		{"single cell", []core.Point{{X: 1, Y: 1}}, false},
		{"straight", []core.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}}, false},
		{"overlap at tail", []core.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 1}}, true},
		{"overlap at neck", []core.Point{{X: 1, Y: 1}, {X: 1, Y: 1}}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := &Snake{body: tc.body, direction: core.Right}
			if got := s.HitsSelf(); got != tc.expected {
				t.Errorf("HitsSelf() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestResetKeepsDirection(t *testing.T) {
	s := NewSnake(core.Point{X: 3, Y: 3}, core.Left)
	s.Grow()
	s.Grow()

	s.Reset(core.Point{X: 0, Y: 10})
	if s.Len() != 1 || s.Head() != (core.Point{X: 0, Y: 10}) {
		t.Errorf("Body after Reset = %v, expected [(0,10)]", s.Body())
	}
	if s.Direction() != core.Left {
		t.Errorf("Direction after Reset = %v, expected unchanged Left", s.Direction())
	}
}

func TestBodyIsCopy(t *testing.T) {
	s := NewSnake(core.Point{X: 1, Y: 1}, core.Right)
	body := s.Body()
	body[0] = core.Point{X: 9, Y: 9}

	if s.Head() != (core.Point{X: 1, Y: 1}) {
		t.Error("Mutating Body() result should not affect the snake")
	}
	if !s.Occupies(core.Point{X: 1, Y: 1}) || s.Occupies(core.Point{X: 9, Y: 9}) {
		t.Error("Occupies should reflect the real body")
	}
}
