package engine

// Event is a state transition reported to an EventSink.
type Event interface {
	engineEvent()
}

// MovedEvent is emitted after a move that changed the grid.
type MovedEvent struct {
	Direction Direction
	Moves     []TileMove
}

func (MovedEvent) engineEvent() {}

// SpawnedEvent is emitted when a new tile is placed.
type SpawnedEvent struct {
	Cell  Cell
	Value int
}

func (SpawnedEvent) engineEvent() {}

// WonEvent is emitted once per game, when a merge first produces WinValue.
type WonEvent struct {
	Cell Cell
}

func (WonEvent) engineEvent() {}

// DeadlockedEvent is emitted when a spawn fills the last empty cell and no
// adjacent pair can merge.
type DeadlockedEvent struct {
	MaxTile int
}

func (DeadlockedEvent) engineEvent() {}

// EventSink receives engine events synchronously, in the order they happen.
type EventSink interface {
	HandleEvent(Event)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(Event)

// HandleEvent calls f(e).
func (f EventSinkFunc) HandleEvent(e Event) {
	f(e)
}
