package engine

import "fmt"

// SpawnResult describes a spawned tile.
type SpawnResult struct {
	Cell       Cell
	Value      int
	Deadlocked bool // The spawn filled the board and no merge remains
}

// Spawn places a SpawnValue tile in a uniformly random empty cell and ends
// the in-flight move, if any. It returns ErrInvariantViolation on a full
// board.
func (e *Engine) Spawn() (SpawnResult, error) {
	empty := e.grid.EmptyCells()
	if len(empty) == 0 {
		return SpawnResult{}, fmt.Errorf("engine: spawn on full board: %w", ErrInvariantViolation)
	}

	cell := empty[e.rng.Intn(len(empty))]
	if err := e.grid.Place(cell, &Tile{Value: SpawnValue}); err != nil {
		return SpawnResult{}, err
	}
	e.phase = PhaseIdle

	res := SpawnResult{Cell: cell, Value: SpawnValue}
	e.emit(SpawnedEvent{Cell: cell, Value: SpawnValue})

	// Only the spawn that fills the last empty cell can deadlock the board.
	if len(empty) == 1 && isDeadlocked(e.grid) {
		res.Deadlocked = true
		e.emit(DeadlockedEvent{MaxTile: e.grid.MaxTile()})
	}
	return res, nil
}
