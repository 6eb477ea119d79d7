package core

import "time"

// RuntimeConfig contains configuration passed to games at reset.
// The grid size is fixed for the lifetime of a game instance.
type RuntimeConfig struct {
	GridW    int           // Grid width in cells (at most 64)
	GridH    int           // Grid height in cells
	TickRate time.Duration // Interval between runner ticks
	Seed     int64         // RNG seed for deterministic gameplay
}

// MaxGridW is the widest supported grid; one row must fit a uint64 mask.
const MaxGridW = 64

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		GridW:    16,
		GridH:    16,
		TickRate: 30 * time.Millisecond,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Mode selects who drives a game.
type Mode int

const (
	ModeAI Mode = iota
	ModeManual
)

func (m Mode) String() string {
	if m == ModeManual {
		return "manual"
	}
	return "ai"
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the runner.
type GameState struct {
	Score    int  // Current score
	Lines    int  // Cleared lines, or snake length
	GameOver bool // Whether the game-over sequence is playing
	Mode     Mode
}
