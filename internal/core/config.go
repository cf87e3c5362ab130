package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second of the platform loop (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score   int  // Current score
	Running bool // False while stopped after a collision, awaiting a directional press
	Length  int  // Current snake length
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State    GameState
	Ticked   bool // A simulation tick ran this frame
	Ate      bool // The snake ate food this frame
	GameOver bool // A collision ended the run this frame
}

// Game is the interface the platform drives. Implementations contain pure
// logic with no terminal dependencies; the platform handles input mapping,
// frame timing and display.
type Game interface {
	// ID returns a unique identifier for this game.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes the game state.
	Reset(cfg RuntimeConfig)

	// Resize adapts the game to new screen dimensions.
	Resize(w, h int)

	// Step processes one frame of input and runs a simulation tick when due.
	Step(in InputFrame) StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}
