package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorDarkGreen
	ColorYellow
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorGray
)
