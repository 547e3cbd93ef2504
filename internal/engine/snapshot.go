package engine

import (
	"fmt"
	"strings"
)

// Snapshot captures the engine state for determinism testing and display.
type Snapshot struct {
	Values  Values
	Phase   Phase
	State   GameState
	Won     bool
	MaxTile int
	Empty   int
}

// Snapshot returns the current engine snapshot.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Values:  e.grid.Values(),
		Phase:   e.phase,
		State:   e.State(),
		Won:     e.won,
		MaxTile: e.grid.MaxTile(),
		Empty:   len(e.grid.EmptyCells()),
	}
}

// String renders the board top row (y = Size-1) first, "." for empty cells.
func (s Snapshot) String() string {
	width := len(fmt.Sprint(s.MaxTile))
	if width < 1 {
		width = 1
	}

	var sb strings.Builder
	for y := Size - 1; y >= 0; y-- {
		for x := range Size {
			if x > 0 {
				sb.WriteByte(' ')
			}
			cell := "."
			if v := s.Values[x][y]; v != 0 {
				cell = fmt.Sprint(v)
			}
			fmt.Fprintf(&sb, "%*s", width, cell)
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
