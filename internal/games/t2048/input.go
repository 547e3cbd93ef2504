package t2048

import (
	"math"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

// ActionDirection maps the first pressed move action to a direction.
func ActionDirection(in core.InputFrame) (engine.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return engine.Up, true
	case in.Has(core.ActionDown):
		return engine.Down, true
	case in.Has(core.ActionLeft):
		return engine.Left, true
	case in.Has(core.ActionRight):
		return engine.Right, true
	}
	return engine.Direction{}, false
}

// SwipeDirection normalises a drag in board orientation (y up) to a unit
// direction. Drags shorter than threshold are ignored. The dominant axis
// wins; an exact diagonal counts as vertical.
func SwipeDirection(v core.Vec, threshold float64) (engine.Direction, bool) {
	if v.Length() < threshold || v.Length() == 0 {
		return engine.Direction{}, false
	}

	if math.Abs(v.X) > math.Abs(v.Y) {
		if v.X > 0 {
			return engine.Right, true
		}
		return engine.Left, true
	}
	if v.Y > 0 {
		return engine.Up, true
	}
	return engine.Down, true
}
