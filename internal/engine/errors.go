package engine

import "errors"

var (
	// ErrInvalidInput is returned for input that must be rejected at the
	// boundary: a direction that is not a cardinal unit vector, coordinates
	// outside the board or tile values that are not powers of two.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvariantViolation indicates a caller bug, such as spawning on a
	// full board or mutating a cell outside the grid.
	ErrInvariantViolation = errors.New("invariant violation")
)
