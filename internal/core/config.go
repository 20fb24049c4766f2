package core

// RuntimeConfig is what the platform hands a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Ticks per second; animations are measured in ticks
	Seed     int64 // RNG seed; 0 lets the platform pick one from the clock
}

// DefaultConfig returns the config used by headless runs and tests.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the status a game reports to the platform after each tick.
type GameState struct {
	Score    int
	MaxTile  int  // Highest tile on the board
	Moves    int  // Shifts that changed the board
	GameOver bool // Lost, or campaign finished
	Paused   bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
	// Moved is true when this tick's input changed the board.
	Moved bool
}

// GameReport summarizes a game for the games table.
type GameReport struct {
	Score         int
	MaxTile       int
	Moves         int
	Merges        int
	Annihilations int
	Lost          bool
}
