// t2048 plays 2048 in the terminal, locally or over SSH.
//
// Usage:
//
//	t2048 play              - Play in this terminal
//	t2048 serve             - Start SSH server for remote play
//	t2048 sim --moves <n>   - Play random moves headless and print the board
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.t2048/config.yaml, ./configs/t2048.yaml)
//	--fps <rate>        - Override the tick rate
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 in your terminal",
	Long: `t2048 is the sliding tile game 2048 for the terminal.

Slide tiles with the arrow keys, WASD, HJKL or by dragging the mouse.
Equal tiles merge; reach 2048 and keep going until the board locks up.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  sim      - Play random moves without a terminal

Examples:
  t2048 play
  t2048 play --seed 42
  t2048 serve --ssh :2222
  t2048 sim --moves 500 --seed 7`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level override: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}

// loadConfig loads the configuration and applies command-line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// newLogger creates a logger writing to --log-file, or to fallback when no
// file is given. The returned closer releases the file.
func newLogger(cfg config.Config, fallback io.Writer, prefix string) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", cfg.Log.Level, err)
	}

	w := fallback
	var closer io.Closer = io.NopCloser(nil)
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("open log file: %w", openErr)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// exitOnError prints err and exits.
func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
