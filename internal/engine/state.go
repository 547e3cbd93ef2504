package engine

// GameState is the status of a game, derived from the grid.
type GameState int

const (
	StatePlaying GameState = iota
	StateWon
	StateDeadlocked
)

// String returns the state name.
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateDeadlocked:
		return "deadlocked"
	default:
		return "unknown"
	}
}

// Phase is the turn state machine: Idle -> Moving -> Settling -> Idle.
// Moving only lasts for the synchronous body of Move. Settling is the
// in-flight window between a successful move and the following spawn.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseMoving
	PhaseSettling
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseMoving:
		return "moving"
	case PhaseSettling:
		return "settling"
	default:
		return "unknown"
	}
}

// IsDeadlocked reports whether no move is possible: every cell is occupied
// and no tile equals its +x or +y neighbour. Checking two forward neighbours
// of every cell covers each adjacent pair exactly once.
func (e *Engine) IsDeadlocked() bool {
	return isDeadlocked(e.grid)
}

func isDeadlocked(g *Grid) bool {
	for _, c := range allCells(false, false) {
		t := g.At(c.X, c.Y)
		if t == nil {
			return false
		}
		if g.CanMerge(c.X+1, c.Y, t.Value) || g.CanMerge(c.X, c.Y+1, t.Value) {
			return false
		}
	}
	return true
}

// State derives the game state by scanning the grid. A deadlocked board is
// reported as deadlocked even if it holds a winning tile.
func (e *Engine) State() GameState {
	switch {
	case isDeadlocked(e.grid):
		return StateDeadlocked
	case e.grid.MaxTile() >= WinValue:
		return StateWon
	default:
		return StatePlaying
	}
}
