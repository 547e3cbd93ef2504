package engine

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	// WinValue is the tile value that wins the game.
	WinValue = 2048

	// SpawnValue is the value of every spawned tile.
	SpawnValue = 2
)

// TileMove records one tile that changed position during a move.
type TileMove struct {
	From   Cell
	To     Cell
	Value  int  // Value before the move
	Merged bool // Whether the tile merged into the tile at To
}

// MoveResult describes the outcome of a single Move call.
type MoveResult struct {
	Direction Direction
	Moves     []TileMove
	Rejected  bool // A previous move had not settled yet
	Won       bool // This move produced the first WinValue tile of the game
	WinCell   Cell
}

// Moved reports whether any tile changed position.
func (r MoveResult) Moved() bool {
	return len(r.Moves) > 0
}

// Merges returns the number of merges performed.
func (r MoveResult) Merges() int {
	n := 0
	for _, m := range r.Moves {
		if m.Merged {
			n++
		}
	}
	return n
}

// Option configures an Engine.
type Option func(*Engine)

// WithEventSink delivers engine events to s.
func WithEventSink(s EventSink) Option {
	return func(e *Engine) {
		e.sink = s
	}
}

// Engine owns one game session's grid and applies moves to it.
// It is not safe for concurrent use.
type Engine struct {
	grid  *Grid
	rng   *rand.Rand
	phase Phase
	won   bool
	sink  EventSink
}

// New creates an engine with an empty grid. Call Reset to start a game.
// A nil rng is replaced with a time-seeded one.
func New(rng *rand.Rand, opts ...Option) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e := &Engine{
		grid: NewGrid(),
		rng:  rng,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewFromGrid creates an engine that continues play on an existing grid.
// If g already holds a WinValue tile the win is treated as signalled.
func NewFromGrid(rng *rand.Rand, g *Grid, opts ...Option) *Engine {
	e := New(rng, opts...)
	e.grid = g
	e.won = g.MaxTile() >= WinValue
	return e
}

// Reset discards the grid and starts a new game with two spawned tiles.
func (e *Engine) Reset() error {
	e.grid = NewGrid()
	e.phase = PhaseIdle
	e.won = false

	for range 2 {
		if _, err := e.Spawn(); err != nil {
			return fmt.Errorf("engine: reset: %w", err)
		}
	}
	return nil
}

// Move slides every tile as far as possible in dir, merging equal pairs.
//
// An invalid direction returns ErrInvalidInput and leaves the grid untouched.
// While a previous move is still settling the call is a no-op and the result
// is marked Rejected. A move that changes nothing leaves the engine idle;
// otherwise the engine stays in PhaseSettling until Spawn is called.
func (e *Engine) Move(dir Direction) (MoveResult, error) {
	if !dir.Valid() {
		return MoveResult{}, fmt.Errorf("engine: move %v: %w", dir, ErrInvalidInput)
	}
	if e.phase != PhaseIdle {
		return MoveResult{Direction: dir, Rejected: true}, nil
	}

	e.phase = PhaseMoving
	res := MoveResult{Direction: dir}

	// Cells holding a tile produced by a merge in this call.
	var merged [Size][Size]bool

	// Tiles nearest the destination edge go first, so a settled tile is
	// never visited again.
	for _, start := range allCells(dir.DX > 0, dir.DY > 0) {
		tile := e.grid.At(start.X, start.Y)
		if tile == nil {
			continue
		}
		value := tile.Value
		pos := start

		for e.grid.IsEmpty(pos.X+dir.DX, pos.Y+dir.DY) {
			next := Cell{X: pos.X + dir.DX, Y: pos.Y + dir.DY}
			if err := e.grid.MoveTile(pos, next); err != nil {
				e.phase = PhaseIdle
				return MoveResult{}, err
			}
			pos = next
		}

		didMerge := false
		next := Cell{X: pos.X + dir.DX, Y: pos.Y + dir.DY}
		if e.grid.CanMerge(next.X, next.Y, value) && !merged[next.X][next.Y] {
			if err := e.grid.Clear(next); err != nil {
				e.phase = PhaseIdle
				return MoveResult{}, err
			}
			if err := e.grid.MoveTile(pos, next); err != nil {
				e.phase = PhaseIdle
				return MoveResult{}, err
			}
			pos = next
			tile.Value *= 2
			merged[pos.X][pos.Y] = true
			didMerge = true

			if tile.Value == WinValue && !e.won {
				e.won = true
				res.Won = true
				res.WinCell = pos
			}
		}

		if pos != start {
			res.Moves = append(res.Moves, TileMove{
				From:   start,
				To:     pos,
				Value:  value,
				Merged: didMerge,
			})
		}
	}

	if !res.Moved() {
		e.phase = PhaseIdle
		return res, nil
	}

	e.phase = PhaseSettling
	e.emit(MovedEvent{Direction: dir, Moves: res.Moves})
	if res.Won {
		e.emit(WonEvent{Cell: res.WinCell})
	}
	return res, nil
}

// Phase returns the current turn phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// InFlight reports whether a move is waiting for its spawn.
func (e *Engine) InFlight() bool {
	return e.phase != PhaseIdle
}

// Won reports whether the win has been signalled in this game.
func (e *Engine) Won() bool {
	return e.won
}

// Values returns the current value matrix.
func (e *Engine) Values() Values {
	return e.grid.Values()
}

// TileAt returns the value at (x, y), or 0 for empty or invalid cells.
func (e *Engine) TileAt(x, y int) int {
	if t := e.grid.At(x, y); t != nil {
		return t.Value
	}
	return 0
}

// MaxTile returns the highest tile value on the board.
func (e *Engine) MaxTile() int {
	return e.grid.MaxTile()
}

func (e *Engine) emit(ev Event) {
	if e.sink != nil {
		e.sink.HandleEvent(ev)
	}
}
