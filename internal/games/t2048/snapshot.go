package t2048

import "github.com/vovakirdan/tui-2048/internal/engine"

// Snapshot captures the session state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Board     engine.Snapshot
	Moves     int
	Merges    int
	Animating bool
	Paused    bool
	GameOver  bool
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      g.tick,
		Moves:     g.moves,
		Merges:    g.merges,
		Animating: g.anim.active(),
		Paused:    g.paused,
		GameOver:  g.deadlocked,
	}
	if g.eng != nil {
		s.Board = g.eng.Snapshot()
	}
	return s
}
