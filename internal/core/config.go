package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW int   // Terminal width in characters (informational for games)
	ScreenH int   // Terminal height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score  int
	Status Status
}

// GameOver reports whether the terminal state has been reached.
func (s GameState) GameOver() bool {
	return s.Status == StatusOver
}

// Paused reports whether the game is paused.
func (s GameState) Paused() bool {
	return s.Status == StatusPaused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Ended is true only on the tick that produced the terminal state.
	Ended bool
}
