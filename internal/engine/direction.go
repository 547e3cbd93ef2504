package engine

import "fmt"

// Direction is a unit movement vector along one board axis.
// Y grows upward, so Up is (0, 1).
type Direction struct {
	DX, DY int
}

// Cardinal directions accepted by Move.
var (
	Up    = Direction{DX: 0, DY: 1}
	Right = Direction{DX: 1, DY: 0}
	Down  = Direction{DX: 0, DY: -1}
	Left  = Direction{DX: -1, DY: 0}
)

// Directions lists the four cardinal directions.
var Directions = [4]Direction{Up, Right, Down, Left}

// Valid reports whether d is one of the four cardinal unit vectors.
func (d Direction) Valid() bool {
	switch d {
	case Up, Right, Down, Left:
		return true
	}
	return false
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("(%d,%d)", d.DX, d.DY)
	}
}
