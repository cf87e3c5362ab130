package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StateRunning     GameStateType = "running"
	StateStopped     GameStateType = "stopped"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick  uint64
	Score int
	Body  []core.Point
	Dir   core.Point
	Food  core.Point
	State GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StateRunning
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case !g.running:
		state = StateStopped
	}

	return Snapshot{
		Tick:  g.tick,
		Score: g.score,
		Body:  g.snake.Body(),
		Dir:   g.snake.Direction(),
		Food:  g.food.Position(),
		State: state,
	}
}
