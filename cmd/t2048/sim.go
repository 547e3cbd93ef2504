package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var (
	flagSimMoves  int
	flagSimScreen bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Play random moves without a terminal",
	Long: `Run a headless game that presses a random direction whenever the
board is settled, then print the final board and statistics.

The run stops after --moves accepted moves or when the board locks up.
With the same --seed the result is identical on every run.

Examples:
  t2048 sim --moves 200 --seed 1
  t2048 sim --moves 0 --screen   # play to the end, print the rendered screen`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimMoves, "moves", 100, "Number of accepted moves to play (0 = until game over)")
	simCmd.Flags().BoolVar(&flagSimScreen, "screen", false, "Print the rendered screen instead of the plain board")
}

// Upper bound on simulated ticks so a stuck run always ends.
const maxSimTicks = 10_000_000

var simActions = []core.Action{core.ActionUp, core.ActionRight, core.ActionDown, core.ActionLeft}

func runSim(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	exitOnError(err)

	logger, closer, err := newLogger(cfg, os.Stderr, "t2048-sim")
	exitOnError(err)
	defer closer.Close()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rc := core.DefaultConfig()
	rc.TickRate = cfg.TickRate
	rc.Seed = seed

	game := t2048.New(cfg, t2048.WithLogger(logger))
	game.Reset(rc)

	// Player choices use their own stream so the board RNG stays untouched.
	player := rand.New(rand.NewSource(seed + 1))
	frame := core.NewInputFrame()

	ticks := 0
	for ; ticks < maxSimTicks; ticks++ {
		state := game.State()
		moves, _ := game.Stats()
		if state.GameOver || (flagSimMoves > 0 && moves >= flagSimMoves && !state.Busy) {
			break
		}

		frame.Clear()
		if !state.Busy {
			frame.Set(simActions[player.Intn(len(simActions))])
		}
		game.Step(frame)
	}

	snap := game.Snapshot()
	if flagSimScreen {
		screen := core.NewScreen(rc.ScreenW, rc.ScreenH)
		game.Render(screen)
		fmt.Println(tui.RenderScreen(screen, nil))
	} else {
		fmt.Println(snap.Board)
	}

	fmt.Printf("\nseed=%d moves=%d merges=%d max=%d state=%s ticks=%d\n",
		seed, snap.Moves, snap.Merges, snap.Board.MaxTile, snap.Board.State, ticks)
}
