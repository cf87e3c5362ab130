package snake

import (
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Layout maps grid cells onto screen characters. The board is drawn inside a
// one-character border whose top-left corner sits at (OffsetX, OffsetY).
type Layout struct {
	CellW    int
	CellH    int
	OffsetX  int
	OffsetY  int
	GridSize int
}

// NewLayout builds a layout from configuration.
func NewLayout(cfg config.SnakeConfig) Layout {
	return Layout{
		CellW:    cfg.Layout.CellWidth,
		CellH:    cfg.Layout.CellHeight,
		OffsetX:  cfg.Layout.OffsetX,
		OffsetY:  cfg.Layout.OffsetY,
		GridSize: cfg.GridSize,
	}
}

// CellRect returns the screen rectangle covered by grid cell c.
// Cells outside the grid map outside the border.
func (l Layout) CellRect(c core.Point) core.Rect {
	return core.NewRect(
		l.OffsetX+1+c.X*l.CellW,
		l.OffsetY+1+c.Y*l.CellH,
		l.CellW,
		l.CellH,
	)
}

// BoardRect returns the rectangle of the board including its border.
func (l Layout) BoardRect() core.Rect {
	return core.NewRect(l.OffsetX, l.OffsetY, l.GridSize*l.CellW+2, l.GridSize*l.CellH+2)
}

// TitlePos returns where the title is drawn, just above the border.
func (l Layout) TitlePos() (x, y int) {
	return l.OffsetX, l.OffsetY - 1
}

// ScorePos returns where the score is drawn, just below the border.
func (l Layout) ScorePos() (x, y int) {
	return l.OffsetX, l.BoardRect().Bottom()
}

// RequiredSize returns the smallest screen that holds title, board and score.
func (l Layout) RequiredSize() (w, h int) {
	_, scoreY := l.ScorePos()
	return l.BoardRect().Right() + l.OffsetX, scoreY + 1
}

// Sprites are the glyphs used for snake segments and food.
type Sprites struct {
	Head rune
	Body rune
	Food rune
}

// NewSprites reads the glyphs from configuration.
func NewSprites(cfg config.SpriteConfig) Sprites {
	return Sprites{
		Head: firstRune(cfg.Head),
		Body: firstRune(cfg.Body),
		Food: firstRune(cfg.Food),
	}
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return '?'
}
