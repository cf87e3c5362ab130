package core

import "testing"

func TestPointAdd(t *testing.T) {
	tests := []struct {
		name     string
		p, d     Point
		expected Point
	}{
		{"right", Point{2, 2}, Right, Point{3, 2}},
		{"left", Point{2, 2}, Left, Point{1, 2}},
		{"down", Point{2, 2}, Down, Point{2, 3}},
		{"up", Point{2, 2}, Up, Point{2, 1}},
		{"off grid", Point{0, 0}, Left, Point{-1, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.Add(tc.d); got != tc.expected {
				t.Errorf("%v.Add(%v) = %v, expected %v", tc.p, tc.d, got, tc.expected)
			}
		})
	}
}

func TestPointNeg(t *testing.T) {
	pairs := [][2]Point{{Right, Left}, {Left, Right}, {Up, Down}, {Down, Up}}
	for _, pair := range pairs {
		if pair[0].Neg() != pair[1] {
			t.Errorf("%v.Neg() = %v, expected %v", pair[0], pair[0].Neg(), pair[1])
		}
	}
}

func TestPointInBounds(t *testing.T) {
	tests := []struct {
		p        Point
		expected bool
	}{
		{Point{0, 0}, true},
		{Point{4, 4}, true},
		{Point{5, 0}, false},
		{Point{0, 5}, false},
		{Point{-1, 2}, false},
		{Point{2, -1}, false},
	}

	for _, tc := range tests {
		if got := tc.p.InBounds(5); got != tc.expected {
			t.Errorf("%v.InBounds(5) = %v, expected %v", tc.p, got, tc.expected)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestActionDirection(t *testing.T) {
	tests := []struct {
		action Action
		dir    Point
		ok     bool
	}{
		{ActionUp, Up, true},
		{ActionDown, Down, true},
		{ActionLeft, Left, true},
		{ActionRight, Right, true},
		{ActionQuit, Point{}, false},
		{ActionNone, Point{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			dir, ok := tc.action.Direction()
			if dir != tc.dir || ok != tc.ok {
				t.Errorf("Direction() = (%v, %v), expected (%v, %v)", dir, ok, tc.dir, tc.ok)
			}
		})
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("New frame should be empty")
	}

	f.Set(ActionLeft)
	if !f.Has(ActionLeft) || f.Has(ActionRight) {
		t.Error("Frame should contain only Left")
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Clear should empty the frame")
	}

	var zero InputFrame
	if zero.Has(ActionUp) {
		t.Error("Zero frame should report no actions")
	}
	zero.Set(ActionUp)
	if !zero.Has(ActionUp) {
		t.Error("Set on zero frame should allocate")
	}
}
