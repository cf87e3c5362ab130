package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Food is the single item on the board. Its sprite is fixed at construction.
type Food struct {
	position    core.Point
	gridSize    int
	maxAttempts int
	rng         *rand.Rand
	sprite      rune
}

// NewFood creates food on a cell not in occupied.
func NewFood(rng *rand.Rand, gridSize, maxAttempts int, sprite rune, occupied []core.Point) *Food {
	f := &Food{
		gridSize:    gridSize,
		maxAttempts: maxAttempts,
		rng:         rng,
		sprite:      sprite,
	}
	f.Relocate(occupied)
	return f
}

// Position returns the food cell.
func (f *Food) Position() core.Point {
	return f.position
}

// Relocate moves the food to a uniformly random cell not in occupied.
// Candidates are sampled independently on both axes and rejected by a linear
// scan of occupied. After maxAttempts rejections the free cells are enumerated
// and one is picked directly. Returns false, leaving the position unchanged,
// only when occupied covers the whole grid.
func (f *Food) Relocate(occupied []core.Point) bool {
	for range f.maxAttempts {
		p := core.Point{X: f.rng.Intn(f.gridSize), Y: f.rng.Intn(f.gridSize)}
		if !contains(occupied, p) {
			f.position = p
			return true
		}
	}

	var free []core.Point
	for y := range f.gridSize {
		for x := range f.gridSize {
			p := core.Point{X: x, Y: y}
			if !contains(occupied, p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return false
	}
	f.position = free[f.rng.Intn(len(free))]
	return true
}

// Draw renders the food sprite over its cell.
func (f *Food) Draw(dst *core.Screen, l Layout) {
	r := l.CellRect(f.position)
	// One glyph per cell, padded so wide cells stay centered.
	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.SetColored(r.X+(r.W-1)/2, r.Y+(r.H-1)/2, f.sprite, core.ColorRed)
}

func contains(cells []core.Point, p core.Point) bool {
	for _, c := range cells {
		if c == p {
			return true
		}
	}
	return false
}
