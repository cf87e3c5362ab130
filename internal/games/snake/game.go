// Package snake implements the classic snake game on a fixed square grid:
// the snake grows by eating food and the run ends on a wall or self collision.
package snake

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Event reports what a simulation tick did.
type Event int

const (
	EventNone Event = iota
	EventAte
	EventGameOver
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventAte:
		return "ate"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// directionOrder is the order in which directional intents of one frame are
// applied; later ones win when several pass the reversal guard.
var directionOrder = []core.Action{core.ActionUp, core.ActionDown, core.ActionRight, core.ActionLeft}

// Game owns one Snake and one Food and runs the per-tick rules.
type Game struct {
	cfg     config.SnakeConfig
	layout  Layout
	sprites Sprites
	start   core.Point
	clock   func() time.Time

	rng   *rand.Rand
	snake *Snake
	food  *Food
	timer *Timer

	tick    uint64
	score   int
	running bool

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game from configuration. Call Reset before use.
func New(cfg config.SnakeConfig) *Game {
	return NewWithClock(cfg, time.Now)
}

// NewWithClock creates a game whose tick timer reads the given clock.
func NewWithClock(cfg config.SnakeConfig, clock func() time.Time) *Game {
	return &Game{
		cfg:     cfg,
		layout:  NewLayout(cfg),
		sprites: NewSprites(cfg.Sprites),
		start:   core.Point{X: cfg.StartCell.X, Y: cfg.StartCell.Y},
		clock:   clock,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset starts a fresh run: one-cell snake at the start cell heading right,
// food placed off the snake, score zero, running.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.snake = NewSnake(g.start, core.Right)
	g.food = NewFood(g.rng, g.cfg.GridSize, g.cfg.MaxRelocateAttempts, g.sprites.Food, g.snake.Body())
	g.timer = NewTimerWithClock(g.clock)
	g.tick = 0
	g.score = 0
	g.running = true
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize adapts to new screen dimensions without touching game state.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	reqW, reqH := g.layout.RequiredSize()
	g.tooSmall = w < reqW || h < reqH
}

// Step applies one frame of input and, when the tick timer fires while
// running, advances the simulation once.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.HandleInput(in)

	result := core.StepResult{}
	if g.timer.EventTriggered(g.cfg.TickInterval) && g.running {
		ev := g.Update()
		result.Ticked = true
		result.Ate = ev == EventAte
		result.GameOver = ev == EventGameOver
	}
	result.State = g.State()
	return result
}

// HandleInput applies the directional intents of one frame. Each one is
// checked against the direction current at that moment; reversals are
// ignored. Any directional press resumes a stopped game.
func (g *Game) HandleInput(in core.InputFrame) {
	for _, a := range directionOrder {
		if !in.Has(a) {
			continue
		}
		d, _ := a.Direction()
		g.snake.SetDirection(d)
		g.running = true
	}
}

// Update runs one simulation tick: move, then the edge, self and food checks.
func (g *Game) Update() Event {
	g.tick++
	g.snake.Advance()

	if g.hitsEdge() || g.snake.HitsSelf() {
		g.GameOver()
		return EventGameOver
	}

	if g.snake.Head() == g.food.Position() {
		g.snake.Grow()
		g.food.Relocate(g.snake.body)
		g.score++
		return EventAte
	}
	return EventNone
}

func (g *Game) hitsEdge() bool {
	return !g.snake.Head().InBounds(g.cfg.GridSize)
}

// GameOver resets the snake to its start cell, moves the food, stops the game
// and discards the score.
func (g *Game) GameOver() {
	g.snake.Reset(g.start)
	g.food.Relocate(g.snake.body)
	g.running = false
	g.score = 0
}

// Running reports whether ticks are being applied.
func (g *Game) Running() bool {
	return g.running
}

// Score returns the food eaten in the current run.
func (g *Game) Score() int {
	return g.score
}

// Snake returns the game's snake.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Food returns the game's food.
func (g *Game) Food() *Food {
	return g.food
}

// Render draws the title, border, snake, food and score.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		reqW, reqH := g.layout.RequiredSize()
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Resize to %dx%d", reqW, reqH))
		return
	}

	tx, ty := g.layout.TitlePos()
	dst.DrawTextColored(tx, ty, g.Title(), core.ColorDarkGreen)

	dst.DrawBox(g.layout.BoardRect(), core.ColorDarkGreen)
	g.snake.Draw(dst, g.layout, g.sprites)
	g.food.Draw(dst, g.layout)

	sx, sy := g.layout.ScorePos()
	score := fmt.Sprintf("Score: %d", g.score)
	dst.DrawTextColored(sx, sy, score, core.ColorDarkGreen)
	if !g.running {
		dst.DrawTextColored(sx+len(score)+3, sy, "Game over - press an arrow key", core.ColorGray)
	}
}

// renderOverlay draws a centered two-line message box. On screens narrower
// or shorter than the box it is pinned to the top-left corner.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	x := core.Clamp((dst.Width()-boxW)/2, 0, dst.Width())
	y := core.Clamp((dst.Height()-boxH)/2, 0, dst.Height())
	box := core.NewRect(x, y, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorGray)
	dst.DrawText(box.X+2, box.Y+1, line1)
	dst.DrawText(box.X+2, box.Y+3, line2)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:   g.score,
		Running: g.running,
		Length:  g.snake.Len(),
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, Running: %v\n", g.tick, g.score, g.running)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %v\n", g.snake.Len(), g.snake.Direction())
	fmt.Fprintf(&b, "Head: %v, Food: %v\n", g.snake.Head(), g.food.Position())
	return b.String()
}
