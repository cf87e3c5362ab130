package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake",
	Args:  cobra.NoArgs,
	Run:   runPlay,
}

func init() {
	w, h := minTerminalSize(config.DefaultSnakeConfig())
	playCmd.Long = fmt.Sprintf(`Start a game of snake.

The snake starts moving right straight away. Hitting a wall or your
own body ends the run and clears the score; press any direction to
start over.

The board needs a terminal of at least %dx%d with the default layout.
Smaller windows pause the game until resized.

Controls:
  Arrows/WASD/hjkl  - Steer
  Q/Esc/Ctrl+C      - Quit

Examples:
  snake play
  snake play --seed 42 --fps 30
  snake play --log-file ./snake.log --debug`, w, h)
}

// minTerminalSize returns the smallest terminal that fits the board, title,
// score line and key help for cfg.
func minTerminalSize(cfg config.SnakeConfig) (w, h int) {
	w, h = snake.NewLayout(cfg).RequiredSize()
	return w, h + tui.HelpHeight
}

// runtimeConfig sizes the game to the terminal, keeping the defaults when
// the size cannot be read.
func runtimeConfig(getSize func(fd int) (int, int, error)) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := getSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickRate = flagFPS
	rc.Seed = flagSeed
	return rc
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, source, err := config.LoadSnake(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	logger.Debug("config loaded", "source", source)

	rc := runtimeConfig(term.GetSize)
	if minW, minH := minTerminalSize(cfg); rc.ScreenW < minW || rc.ScreenH < minH {
		logger.Warn("terminal too small", "width", rc.ScreenW, "height", rc.ScreenH,
			"min_width", minW, "min_height", minH)
	}

	if runErr := tui.Run(snake.New(cfg), rc, logger); runErr != nil {
		logger.Error("run failed", "err", runErr)
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// newLogger builds the game logger. The alternate screen owns the terminal
// while playing, so without a log file everything is discarded.
func newLogger(path string, debug bool) (*log.Logger, func(), error) {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}

	var (
		w       io.Writer = io.Discard
		closeFn           = func() {}
	)
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
	return logger, closeFn, nil
}
