package config

import (
	_ "embed"
	"time"
)

// GridSize is the side length of the play field.
const GridSize = 25

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		GridSize:            GridSize,
		TickInterval:        200 * time.Millisecond,
		StartCell:           CellConfig{X: 0, Y: 10},
		MaxRelocateAttempts: 10000,
		Layout: LayoutConfig{
			CellWidth:  2,
			CellHeight: 1,
			OffsetX:    1,
			OffsetY:    1,
		},
		Sprites: SpriteConfig{
			Head: "█",
			Body: "▓",
			Food: "●",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
