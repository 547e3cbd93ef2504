package t2048

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

var moveActions = []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown}

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New(config.Default())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

// useBoard replaces the session board; rows are listed from the top.
func useBoard(t *testing.T, g *Game, rows [engine.Size][engine.Size]int) {
	t.Helper()
	var v engine.Values
	for r, row := range rows {
		for x, val := range row {
			v[x][engine.Size-1-r] = val
		}
	}
	grid, err := engine.FromValues(v)
	if err != nil {
		t.Fatalf("FromValues: %v", err)
	}
	g.eng = engine.NewFromGrid(g.rng, grid, engine.WithEventSink(engine.EventSinkFunc(g.logEvent)))
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func idle(g *Game, ticks int) {
	for range ticks {
		g.Step(core.NewInputFrame())
	}
}

// firstMove presses directions until one is accepted.
func firstMove(t *testing.T, g *Game) {
	t.Helper()
	for _, a := range moveActions {
		g.Step(press(a))
		if g.moves == 1 {
			return
		}
	}
	t.Fatal("no direction moved the opening board")
}

func TestResetPlacesTwoTiles(t *testing.T) {
	g := newTestGame(t, 42)

	snap := g.Snapshot()
	if got := engine.Size*engine.Size - snap.Board.Empty; got != 2 {
		t.Errorf("tiles after Reset = %d, want 2", got)
	}
	if snap.Animating || snap.GameOver || snap.Paused {
		t.Errorf("unexpected state after Reset: %+v", snap)
	}
	if snap.Board.Phase != engine.PhaseIdle {
		t.Errorf("phase = %v, want idle", snap.Board.Phase)
	}
}

func TestMoveSettlesWithSpawn(t *testing.T) {
	g := newTestGame(t, 42)
	firstMove(t, g)

	if !g.State().Busy {
		t.Fatal("game should be busy while the slide runs")
	}
	if g.Snapshot().Board.Phase != engine.PhaseSettling {
		t.Fatalf("phase = %v, want settling", g.Snapshot().Board.Phase)
	}

	// The move completed on its first tick of input; the slide needs slideTicks steps.
	idle(g, g.slideTicks-1)
	if g.Snapshot().Board.Phase != engine.PhaseSettling {
		t.Fatalf("spawned before the slide finished")
	}

	idle(g, 1)
	snap := g.Snapshot()
	if snap.Board.Phase != engine.PhaseIdle {
		t.Fatalf("phase after slide = %v, want idle", snap.Board.Phase)
	}
	want := 2 - g.merges + 1
	if got := engine.Size*engine.Size - snap.Board.Empty; got != want {
		t.Errorf("tiles after settle = %d, want %d", got, want)
	}
	if g.anim.phase != animPop {
		t.Errorf("animation phase = %v, want pop", g.anim.phase)
	}

	idle(g, g.popTicks)
	if g.State().Busy {
		t.Error("game still busy after the pop")
	}
}

func TestInputDroppedWhileSettling(t *testing.T) {
	g := newTestGame(t, 7)
	firstMove(t, g)
	before := g.Snapshot().Board.Values

	for _, a := range moveActions {
		g.Step(press(a))
	}

	if g.moves != 1 {
		t.Errorf("moves = %d, want 1", g.moves)
	}
	if g.Snapshot().Board.Values != before {
		t.Error("board changed while the previous move was settling")
	}
}

func TestDeterministicSession(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(t, 12345)
		for i := range 2000 {
			g.Step(press(moveActions[i%len(moveActions)]))
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("same seed produced different sessions:\n%s\n\n%s", a.Board, b.Board)
	}
	if a.Moves == 0 {
		t.Error("no moves were accepted")
	}
}

func TestDeadlockEndsGame(t *testing.T) {
	g := newTestGame(t, 1)
	useBoard(t, g, [engine.Size][engine.Size]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{32, 32, 8, 16},
	})

	g.Step(press(core.ActionLeft))
	idle(g, g.slideTicks)

	if !g.State().GameOver {
		t.Fatalf("expected game over, board:\n%s", g.eng.Snapshot())
	}
	if got := g.eng.TileAt(3, 0); got != engine.SpawnValue {
		t.Errorf("spawned tile = %d, want %d", got, engine.SpawnValue)
	}

	moves := g.moves
	idle(g, g.popTicks)
	g.Step(press(core.ActionRight))
	if g.moves != moves {
		t.Error("move accepted after game over")
	}
}

func TestWinBannerKeepsPlaying(t *testing.T) {
	g := newTestGame(t, 1)
	useBoard(t, g, [engine.Size][engine.Size]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 2},
		{1024, 1024, 0, 0},
	})

	g.Step(press(core.ActionLeft))
	if !g.State().Won {
		t.Fatal("expected win after merging 1024s")
	}
	if g.State().GameOver {
		t.Error("win must not end the game")
	}

	idle(g, g.slideTicks+g.popTicks)
	g.Step(press(core.ActionUp))
	if g.moves != 2 {
		t.Errorf("moves = %d, want 2 after winning", g.moves)
	}

	dst := core.NewScreen(80, 24)
	g.Render(dst)
	if !strings.Contains(dst.Row(1), "2048!") {
		t.Errorf("banner row = %q, want 2048!", dst.Row(1))
	}
}

func TestPauseBlocksMoves(t *testing.T) {
	g := newTestGame(t, 3)

	g.Step(press(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	for _, a := range moveActions {
		g.Step(press(a))
	}
	if g.moves != 0 {
		t.Errorf("moves while paused = %d, want 0", g.moves)
	}

	g.Step(press(core.ActionPause))
	if g.State().Paused {
		t.Error("expected unpaused")
	}
}

func TestSwipeMovesBoard(t *testing.T) {
	g := newTestGame(t, 1)
	useBoard(t, g, [engine.Size][engine.Size]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{2, 0, 0, 0},
	})

	in := core.NewInputFrame()
	in.SetSwipe(core.Vec{X: 6, Y: 1})
	g.Step(in)

	if got := g.eng.TileAt(3, 0); got != 2 {
		t.Errorf("tile at (3,0) = %d, want 2 after a right swipe", got)
	}
}

func TestTooSmallWindow(t *testing.T) {
	g := New(config.Default())
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60, Seed: 1})

	if !g.State().Paused {
		t.Error("small window should pause the game")
	}

	dst := core.NewScreen(20, 10)
	g.Render(dst)
	if !strings.Contains(dst.String(), "Window too small") {
		t.Error("expected too-small message")
	}

	g.Resize(80, 24)
	if g.State().Paused {
		t.Error("resize to a large window should resume the game")
	}
}

func TestRenderDrawsTiles(t *testing.T) {
	g := newTestGame(t, 42)
	dst := core.NewScreen(80, 24)
	g.Render(dst)

	if !strings.Contains(dst.Row(0), "2048") {
		t.Errorf("HUD row = %q, want title", dst.Row(0))
	}

	tiles := 0
	for y := range dst.Height() {
		for x := range dst.Width() {
			if c := dst.GetCell(x, y); c.Bg == TileColor(2) && c.Rune == '2' {
				tiles++
			}
		}
	}
	if tiles != 2 {
		t.Errorf("rendered %d tile labels, want 2", tiles)
	}
}
