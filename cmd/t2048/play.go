package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048 in this terminal",
	Long: `Start a game of 2048 in the current terminal.

Controls (defaults, configurable in the config file):
  Arrows/WASD/HJKL  - Slide tiles
  Mouse drag        - Slide tiles in the drag direction
  P                 - Pause
  R                 - Restart
  Q/Ctrl+C          - Quit

Logs are discarded unless --log-file is given.

Examples:
  t2048 play
  t2048 play --seed 42
  t2048 play --config ./my-2048.yaml --log-file t2048.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	exitOnError(err)

	// The terminal belongs to the game, so logs never go to stderr here.
	logger, closer, err := newLogger(cfg, io.Discard, "t2048")
	exitOnError(err)
	defer closer.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.TickRate,
		Seed:     cfg.Seed,
	}

	if err := tui.Run(cfg, rc, tui.WithLogger(logger)); err != nil {
		logger.Error("program failed", "err", err)
		closer.Close()
		exitOnError(err)
	}
}
