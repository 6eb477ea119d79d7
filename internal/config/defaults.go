package config

import (
	_ "embed"
)

//go:embed defaults/ledgrid.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
// It mirrors defaults/ledgrid.yaml and is used if the embed fails to parse.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  16,
			Height: 16,
		},
		Timing: TimingConfig{
			TickMs:      30,
			BroadcastMs: 100,
		},
		Tetris: TetrisConfig{
			DropStartMs:    300,
			DropMinMs:      80,
			DropStepMs:     25,
			PiecesPerStep:  10,
			MoveIntervalMs: 70,
			RotIntervalMs:  150,
			AISkill:        90,
			JitterPct:      20,
			TopN:           5,
			ScoreJitter:    0.15,
		},
		Snake: SnakeConfig{
			MoveStartMs: 280,
			MoveStepMs:  6,
			MoveMinMs:   80,
		},
		Server: ServerConfig{
			HTTPAddr:  ":8080",
			AuthToken: "ledgrid",
		},
		Storage: StorageConfig{
			DBPath: "~/.ledgrid/scores.db",
		},
	}
}

// DefaultYAML returns the embedded default document.
func DefaultYAML() []byte {
	return defaultYAML
}
