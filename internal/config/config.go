// Package config provides YAML-based configuration loading and validation
// for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

// ErrInvalidConfig is returned (wrapped) when a configuration value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	// GridSize is the side length of the square play field. It is fixed at
	// build time and never read from YAML.
	GridSize            int           `yaml:"-"`
	TickInterval        time.Duration `yaml:"tick_interval"`
	StartCell           CellConfig    `yaml:"start_cell"`
	MaxRelocateAttempts int           `yaml:"max_relocate_attempts"`
	Layout              LayoutConfig  `yaml:"layout"`
	Sprites             SpriteConfig  `yaml:"sprites"`
}

// CellConfig is a grid coordinate.
type CellConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// LayoutConfig defines how grid cells map onto terminal characters.
type LayoutConfig struct {
	CellWidth  int `yaml:"cell_width"`  // Terminal columns per grid cell
	CellHeight int `yaml:"cell_height"` // Terminal rows per grid cell
	OffsetX    int `yaml:"offset_x"`    // Columns left of the border
	OffsetY    int `yaml:"offset_y"`    // Rows above the border (title line lives here)
}

// SpriteConfig defines the glyphs used to draw the board.
type SpriteConfig struct {
	Head string `yaml:"head"`
	Body string `yaml:"body"`
	Food string `yaml:"food"`
}

// Validate checks every value and returns an error wrapping ErrInvalidConfig
// for the first one out of range.
func (c SnakeConfig) Validate() error {
	switch {
	case c.GridSize < 2:
		return fmt.Errorf("%w: grid size %d must be at least 2", ErrInvalidConfig, c.GridSize)
	case c.TickInterval <= 0:
		return fmt.Errorf("%w: tick_interval %s must be positive", ErrInvalidConfig, c.TickInterval)
	case c.StartCell.X < 0 || c.StartCell.X >= c.GridSize || c.StartCell.Y < 0 || c.StartCell.Y >= c.GridSize:
		return fmt.Errorf("%w: start_cell (%d,%d) outside %dx%d grid",
			ErrInvalidConfig, c.StartCell.X, c.StartCell.Y, c.GridSize, c.GridSize)
	case c.MaxRelocateAttempts < 1:
		return fmt.Errorf("%w: max_relocate_attempts %d must be at least 1", ErrInvalidConfig, c.MaxRelocateAttempts)
	case c.Layout.CellWidth < 1 || c.Layout.CellHeight < 1:
		return fmt.Errorf("%w: layout cell size %dx%d must be at least 1x1",
			ErrInvalidConfig, c.Layout.CellWidth, c.Layout.CellHeight)
	case c.Layout.OffsetX < 0 || c.Layout.OffsetY < 1:
		// The title is drawn on the row above the border.
		return fmt.Errorf("%w: layout offset (%d,%d) needs offset_x >= 0 and offset_y >= 1",
			ErrInvalidConfig, c.Layout.OffsetX, c.Layout.OffsetY)
	}

	for name, glyph := range map[string]string{
		"head": c.Sprites.Head,
		"body": c.Sprites.Body,
		"food": c.Sprites.Food,
	} {
		if utf8.RuneCountInString(glyph) != 1 {
			return fmt.Errorf("%w: sprite %s %q must be a single character", ErrInvalidConfig, name, glyph)
		}
	}
	return nil
}
