// Package engine implements the rules of the 2048 sliding-tile puzzle on a
// fixed 4x4 grid: the grid model, the slide/merge algorithm, tile spawning,
// win and deadlock detection, and the turn state machine.
//
// The engine has no rendering, timing or I/O. A move mutates the grid
// synchronously and returns a MoveResult describing every tile that changed
// position. The caller animates those records and then calls Spawn, which
// ends the turn. Moves issued between Move and Spawn are rejected, so at most
// one move is ever in flight.
package engine
