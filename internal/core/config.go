package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second at the fast (gameplay) rate
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  96,
		ScreenH:  28,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the platform-visible summary of a game, returned by
// Game.State() after every tick.
type GameState struct {
	Score    int  // Current score
	Ammo     int  // Knives in hand
	GameOver bool // Whether the current run has ended
	Running  bool // Whether a run is in progress (false in attract/game-over)
	// TickRate is the rate the game wants to be stepped at right now.
	// The phase machine slows the loop outside of gameplay; 0 means
	// "keep the platform default".
	TickRate int
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
