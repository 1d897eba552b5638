package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this for the tick rate and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second (default 15)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 15,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int     // Current score
	Speed    float64 // Current scroll speed
	Phase    string  // Lifecycle phase name, for display and logging
	GameOver bool    // Whether the run has ended
	Quit     bool    // Whether a quit was requested
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and the sound cues emitted this tick.
type StepResult struct {
	State  GameState
	Sounds []Sound
}
