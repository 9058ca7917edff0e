package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host frames per second (default 60)
	Seed     int64 // RNG seed for the ambient stream; 0 means seed from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Best     int  // Best score candidate (max of persisted best and current score)
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the run is paused
	Started  bool // Whether the run has left the idle state
}

// StepResult is returned by Game.Advance() after each host frame.
type StepResult struct {
	State GameState
	Ticks int // Simulation ticks applied during this frame
}
