// Package t2048 runs a 2048 session on fixed simulation ticks: it feeds
// player input to the engine, animates settled moves and draws the board.
package t2048

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

// Minimum screen size: board plus HUD and footer.
const (
	minScreenW = boardW + 2
	minScreenH = boardH + hudHeight + 2
)

// Game implements one 2048 session.
type Game struct {
	cfg    config.Config
	logger *log.Logger

	eng  *engine.Engine
	rng  *rand.Rand
	tick uint64

	anim       animation
	slideTicks int
	popTicks   int
	easing     func(float64) float64

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	paused     bool
	tooSmall   bool
	deadlocked bool

	moves  int // Accepted moves this session
	merges int
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for session and engine events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a game using the animation and input settings of cfg.
// Call Reset before the first Step.
func New(cfg config.Config, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "2048"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Reset starts a new session with two tiles on the board.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.paused = false
	g.deadlocked = false
	g.moves = 0
	g.merges = 0
	g.anim = animation{}

	tickRate := rc.TickRate
	if tickRate <= 0 {
		tickRate = g.cfg.TickRate
	}
	g.slideTicks = g.cfg.Animation.SlideTicks(tickRate)
	g.popTicks = g.cfg.Animation.PopTicks(tickRate)
	g.easing = easingFunc(g.cfg.Animation.Easing)

	g.eng = engine.New(g.rng, engine.WithEventSink(engine.EventSinkFunc(g.logEvent)))
	if err := g.eng.Reset(); err != nil {
		g.logger.Error("failed to start game", "err", err)
	}

	g.checkScreenSize()
	g.logger.Info("game started", "seed", rc.Seed)
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// Handle window size check
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle pause
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.advanceAnimation()

	if g.deadlocked {
		return core.StepResult{State: g.State()}
	}

	if dir, ok := g.inputDirection(in); ok {
		g.move(dir)
	}

	return core.StepResult{State: g.State()}
}

// inputDirection picks the move requested this frame; keys win over swipes.
func (g *Game) inputDirection(in core.InputFrame) (engine.Direction, bool) {
	if dir, ok := ActionDirection(in); ok {
		return dir, true
	}
	if in.Swipe != nil {
		return SwipeDirection(*in.Swipe, g.cfg.Input.SwipeThreshold)
	}
	return engine.Direction{}, false
}

// move submits a move to the engine and starts the slide animation.
// Moves arriving while the previous one settles are dropped by the engine.
func (g *Game) move(dir engine.Direction) {
	before := g.eng.Values()

	res, err := g.eng.Move(dir)
	if err != nil {
		g.logger.Error("move failed", "dir", dir, "err", err)
		return
	}
	if res.Rejected {
		g.logger.Debug("move dropped while settling", "dir", dir)
		return
	}
	if !res.Moved() {
		return
	}

	g.moves++
	g.merges += res.Merges()
	g.anim.startSlide(before, res.Moves, g.slideTicks)
}

// advanceAnimation runs one tick of the current animation and performs the
// spawn once the slide has finished.
func (g *Game) advanceAnimation() {
	if !g.anim.step() {
		return
	}

	// Slide done: the move settles with a spawn.
	if g.anim.phase == animSlide {
		g.anim = animation{}
		g.spawn()
		return
	}
	g.anim = animation{}
}

func (g *Game) spawn() {
	res, err := g.eng.Spawn()
	if err != nil {
		g.logger.Error("spawn failed", "err", err)
		return
	}

	g.anim.startPop(res.Cell, res.Value, g.popTicks)
	if res.Deadlocked {
		g.deadlocked = true
	}
}

// logEvent receives engine events.
func (g *Game) logEvent(ev engine.Event) {
	switch ev := ev.(type) {
	case engine.MovedEvent:
		g.logger.Debug("moved", "dir", ev.Direction, "tiles", len(ev.Moves))
	case engine.SpawnedEvent:
		g.logger.Debug("spawned", "cell", ev.Cell, "value", ev.Value)
	case engine.WonEvent:
		g.logger.Info("reached 2048", "cell", ev.Cell, "moves", g.moves)
	case engine.DeadlockedEvent:
		g.logger.Info("no moves left", "max_tile", ev.MaxTile, "moves", g.moves)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		GameOver: g.deadlocked,
		Won:      g.eng != nil && g.eng.Won(),
		Paused:   g.paused || g.tooSmall,
		Busy:     g.anim.active(),
	}
}

// Stats returns the number of accepted moves and merges this session.
func (g *Game) Stats() (moves, merges int) {
	return g.moves, g.merges
}
