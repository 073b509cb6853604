package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic shuffles.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic deals
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TicksFor converts a duration in milliseconds to simulation ticks, rounding up.
// A non-positive duration yields zero ticks.
func (c RuntimeConfig) TicksFor(ms int) int {
	if ms <= 0 {
		return 0
	}
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultConfig().TickRate
	}
	return (ms*rate + 999) / 1000
}

// GameState represents the current status of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Score awarded so far (set on a win)
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
	Won      bool // Whether the game ended in a win

	Pairs   int // Board size in pairs
	Moves   int // Completed turns
	Seconds int // Elapsed play time
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
