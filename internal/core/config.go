package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic terrain
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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int   // Current score
	GameOver bool  // Whether the game has ended
	Paused   bool  // Whether the game is paused
	Seed     int64 // Seed the terrain was actually generated from
}

// StepResult is returned by Game.Step() after each simulation tick.
// Sounds and Musics are the audio cues raised during the tick, in order.
type StepResult struct {
	State  GameState
	Sounds []string
	Musics []string
}

// HasAudio reports whether the tick raised any audio cue.
func (r StepResult) HasAudio() bool {
	return len(r.Sounds) > 0 || len(r.Musics) > 0
}
