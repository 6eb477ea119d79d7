// Package engine drives the active game on a fixed tick, serializes control
// commands against it and fans state snapshots out to connected sessions.
package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/led-arcade/internal/core"
)

// SessionID uniquely identifies a spectator or controller connection
// (WebSocket client, SSH session, local terminal).
type SessionID string

// NewSessionID returns a random session identifier.
func NewSessionID() SessionID {
	return SessionID(uuid.NewString())
}

// GameResult describes a finished game.
type GameResult struct {
	GameID   string
	Score    int
	Lines    int
	Mode     core.Mode
	Duration time.Duration
}

// ResultSaver persists finished games.
// This allows the runner to save results without depending on the storage package.
type ResultSaver interface {
	SaveResult(result GameResult) error
}

// RunnerConfig holds configuration for the runner.
type RunnerConfig struct {
	TickInterval      time.Duration // Update/render cadence
	BroadcastInterval time.Duration // Snapshot fan-out cadence
	CommandBuffer     int           // Pending commands before Submit drops
	InitialGame       string        // Game selected at startup
	Seed              int64         // RNG seed handed to every game
}

// DefaultRunnerConfig returns sensible defaults.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		TickInterval:      30 * time.Millisecond,
		BroadcastInterval: 100 * time.Millisecond,
		CommandBuffer:     64,
		InitialGame:       "tetris",
		Seed:              time.Now().UnixNano(),
	}
}
