package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// HelpHeight is the number of rows reserved below the game for key help.
const HelpHeight = 1

// debugStater is implemented by games that can describe their internals for
// debug logging.
type debugStater interface {
	DebugState() string
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       core.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keys       KeyMap
	keyMapper  *KeyMapper
	help       help.Model
	logger     *log.Logger
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game core.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.ScreenH = max(0, cfg.ScreenH-HelpHeight)

	game.Reset(cfg)

	keys := DefaultKeyMap()
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       keys,
		keyMapper:  NewKeyMapper(keys),
		help:       help.New(),
		logger:     logger,
		gameState:  game.State(),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed,
		"screen", m.config.ScreenW, "rows", m.config.ScreenH)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey collects key intents for the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score)
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. Game state is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(0, msg.Height-HelpHeight)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.game.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width
	m.logger.Debug("resized", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick runs one frame: input, a simulation tick when due, then logging.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	switch {
	case result.GameOver:
		m.logger.Info("game over", "score", prev.Score, "length", prev.Length)
		if ds, ok := m.game.(debugStater); ok {
			m.logger.Debug("state after game over", "state", ds.DebugState())
		}
	case result.Ate:
		m.logger.Debug("food eaten", "score", result.State.Score, "length", result.State.Length)
	}
	if !prev.Running && m.gameState.Running {
		m.logger.Debug("resumed")
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the given game and blocks until quit.
func Run(game core.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
