package core

// RuntimeConfig contains configuration passed to a game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the status the platform needs from a running game.
type GameState struct {
	GameOver bool // No further moves are possible
	Won      bool // The winning tile has been reached; play may continue
	Paused   bool // Paused by the player or by a too-small window
	Busy     bool // A move is in flight and new moves are dropped
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State GameState
}
