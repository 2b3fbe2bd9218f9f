package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW   int // Screen width in characters
	ScreenH   int // Screen height in characters
	TickRate  int // Frames per second driven by the platform (default 60)
	StepEvery int // Frames between simulation ticks while the world settles
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		TickRate:  60,
		StepEvery: 6,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Moves taken on the current puzzle
	GameOver bool // Puzzle finished, won or lost
	Won      bool
	Paused   bool
	Settling bool // Simulation is running and input is queued
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
	Bell  bool // Something audible happened this frame
}
