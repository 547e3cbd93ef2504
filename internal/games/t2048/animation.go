package t2048

import (
	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

// animPhase represents the current phase of animation.
type animPhase int

const (
	animNone animPhase = iota
	animSlide
	animPop
)

// tileAnimation is one tile moving between two cells.
type tileAnimation struct {
	Value  int
	From   engine.Cell
	To     engine.Cell
	Merged bool
}

// animation tracks the visual settling of a move. The engine already holds
// the final board; the animation only replays how it got there.
type animation struct {
	phase    animPhase
	ticks    int
	duration int

	// Slide: board before the move and the tiles that moved.
	before engine.Values
	tiles  []tileAnimation
	// Cells whose tile is in flight and must not be drawn from before.
	leaving [engine.Size][engine.Size]bool

	// Pop: the spawned tile.
	spawn      engine.Cell
	spawnValue int
}

// startSlide begins the slide of moves away from the board before.
func (a *animation) startSlide(before engine.Values, moves []engine.TileMove, duration int) {
	*a = animation{
		phase:    animSlide,
		duration: max(duration, 1),
		before:   before,
		tiles:    make([]tileAnimation, 0, len(moves)),
	}
	for _, m := range moves {
		a.tiles = append(a.tiles, tileAnimation{
			Value:  m.Value,
			From:   m.From,
			To:     m.To,
			Merged: m.Merged,
		})
		a.leaving[m.From.X][m.From.Y] = true
	}
}

// startPop begins the pop of a freshly spawned tile.
func (a *animation) startPop(c engine.Cell, value, duration int) {
	*a = animation{
		phase:      animPop,
		duration:   max(duration, 1),
		spawn:      c,
		spawnValue: value,
	}
}

// active reports whether an animation is running.
func (a *animation) active() bool {
	return a.phase != animNone
}

// step advances the animation by one tick.
// Returns true on the tick the animation completes.
func (a *animation) step() bool {
	if !a.active() {
		return false
	}
	a.ticks++
	return a.ticks >= a.duration
}

// progress returns the completed fraction in [0, 1].
func (a *animation) progress() float64 {
	if a.duration <= 0 {
		return 1
	}
	p := float64(a.ticks) / float64(a.duration)
	if p > 1 {
		p = 1
	}
	return p
}

// interpolate returns the tile position in board cells after easing t.
func (t tileAnimation) interpolate(eased float64) (x, y float64) {
	x = float64(t.From.X) + float64(t.To.X-t.From.X)*eased
	y = float64(t.From.Y) + float64(t.To.Y-t.From.Y)*eased
	return x, y
}

func linear(t float64) float64 {
	return t
}

// easeOutQuad provides smooth deceleration for animation.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}

func easingFunc(name string) func(float64) float64 {
	if name == config.EasingEaseOut {
		return easeOutQuad
	}
	return linear
}
