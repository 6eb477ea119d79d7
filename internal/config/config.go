// Package config provides YAML-based configuration loading, clamping and
// live tuning for the LED grid arcade.
package config

import (
	"time"

	"github.com/vovakirdan/led-arcade/internal/core"
)

// Config is the on-disk configuration document.
type Config struct {
	Grid       GridConfig    `yaml:"grid"`
	Timing     TimingConfig  `yaml:"timing"`
	Background RGBConfig     `yaml:"background"`
	Tetris     TetrisConfig  `yaml:"tetris"`
	Snake      SnakeConfig   `yaml:"snake"`
	Server     ServerConfig  `yaml:"server"`
	Storage    StorageConfig `yaml:"storage"`
}

// GridConfig fixes the panel dimensions.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the runner cadence.
type TimingConfig struct {
	TickMs      int `yaml:"tick_ms"`
	BroadcastMs int `yaml:"broadcast_ms"`
}

// RGBConfig is a color expressed as separate channels.
type RGBConfig struct {
	R int `yaml:"r" json:"r"`
	G int `yaml:"g" json:"g"`
	B int `yaml:"b" json:"b"`
}

// TetrisConfig holds the falling-block tunables.
type TetrisConfig struct {
	DropStartMs    int `yaml:"drop_start_ms" json:"dropStart"`
	DropMinMs      int `yaml:"drop_min_ms" json:"dropMin"`
	DropStepMs     int `yaml:"drop_step_ms" json:"dropStep"`
	PiecesPerStep  int `yaml:"pieces_per_step" json:"piecesPerStep"`
	MoveIntervalMs int `yaml:"move_interval_ms" json:"moveInterval"`
	RotIntervalMs  int `yaml:"rot_interval_ms" json:"rotInterval"`

	// AISkill is the percent chance of taking the best placement.
	AISkill int `yaml:"ai_skill" json:"aiSkill"`
	// JitterPct is the percent chance of hesitating on a slide step.
	JitterPct int `yaml:"jitter_pct" json:"jitter"`
	// TopN bounds the pool of alternative placements.
	TopN int `yaml:"top_n" json:"topN"`
	// ScoreJitter is the largest random offset added to a placement score.
	ScoreJitter float64 `yaml:"score_jitter" json:"scoreJitter"`
}

// SnakeConfig holds the snake speed curve.
type SnakeConfig struct {
	MoveStartMs int `yaml:"move_start_ms" json:"moveStart"`
	MoveStepMs  int `yaml:"move_step_ms" json:"moveStep"`
	MoveMinMs   int `yaml:"move_min_ms" json:"moveMin"`
}

// ServerConfig holds network endpoints and the shared auth token.
type ServerConfig struct {
	HTTPAddr    string `yaml:"http_addr"`
	AuthToken   string `yaml:"auth_token"`
	SSHAddr     string `yaml:"ssh_addr"`
	HostKeyPath string `yaml:"host_key"`
}

// StorageConfig points at the scores database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// Normalize clamps every tunable into its supported range.
func (c *Config) Normalize() {
	c.Grid.Width = core.Clamp(c.Grid.Width, 4, core.MaxGridW)
	c.Grid.Height = core.Clamp(c.Grid.Height, 4, 64)
	c.Timing.TickMs = core.Clamp(c.Timing.TickMs, 5, 200)
	c.Timing.BroadcastMs = core.Clamp(c.Timing.BroadcastMs, 20, 2000)

	c.Background.R = core.Clamp(c.Background.R, 0, 40)
	c.Background.G = core.Clamp(c.Background.G, 0, 40)
	c.Background.B = core.Clamp(c.Background.B, 0, 40)

	t := &c.Tetris
	t.DropStartMs = core.Clamp(t.DropStartMs, 100, 600)
	t.DropMinMs = core.Clamp(t.DropMinMs, 30, 200)
	t.DropStepMs = core.Clamp(t.DropStepMs, 0, 100)
	t.PiecesPerStep = core.Clamp(t.PiecesPerStep, 1, 100)
	t.MoveIntervalMs = core.Clamp(t.MoveIntervalMs, 20, 200)
	t.RotIntervalMs = core.Clamp(t.RotIntervalMs, 50, 300)
	t.AISkill = core.Clamp(t.AISkill, 0, 100)
	t.JitterPct = core.Clamp(t.JitterPct, 0, 50)
	t.TopN = core.Clamp(t.TopN, 1, 16)
	if t.ScoreJitter < 0 {
		t.ScoreJitter = 0
	}
	if t.ScoreJitter > 1 {
		t.ScoreJitter = 1
	}

	s := &c.Snake
	s.MoveMinMs = core.Clamp(s.MoveMinMs, 20, 1000)
	s.MoveStartMs = core.Clamp(s.MoveStartMs, s.MoveMinMs, 2000)
	s.MoveStepMs = core.Clamp(s.MoveStepMs, 0, 100)
}

// TickInterval returns the runner tick period.
func (c Config) TickInterval() time.Duration {
	return ms(c.Timing.TickMs)
}

// BroadcastInterval returns the snapshot broadcast period.
func (c Config) BroadcastInterval() time.Duration {
	return ms(c.Timing.BroadcastMs)
}

// Runtime returns the reset-time game configuration.
func (c Config) Runtime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		GridW:    c.Grid.Width,
		GridH:    c.Grid.Height,
		TickRate: c.TickInterval(),
		Seed:     seed,
	}
}

// Tuning returns the live game tunables.
func (c Config) Tuning() Tuning {
	return Tuning{
		Background: core.RGB(uint8(c.Background.R), uint8(c.Background.G), uint8(c.Background.B)),
		Tetris: TetrisTuning{
			Drop: SpeedCurve{
				Start: ms(c.Tetris.DropStartMs),
				Step:  ms(c.Tetris.DropStepMs),
				Min:   ms(c.Tetris.DropMinMs),
				Every: c.Tetris.PiecesPerStep,
			},
			MoveInterval: ms(c.Tetris.MoveIntervalMs),
			RotInterval:  ms(c.Tetris.RotIntervalMs),
			Skill:        c.Tetris.AISkill,
			JitterPct:    c.Tetris.JitterPct,
			TopN:         c.Tetris.TopN,
			ScoreJitter:  c.Tetris.ScoreJitter,
		},
		Snake: SnakeTuning{
			Move: SpeedCurve{
				Start: ms(c.Snake.MoveStartMs),
				Step:  ms(c.Snake.MoveStepMs),
				Min:   ms(c.Snake.MoveMinMs),
				Every: 1,
			},
		},
	}
}

// Tuning carries the parameters games read on every tick.
type Tuning struct {
	Background core.Color
	Tetris     TetrisTuning
	Snake      SnakeTuning
}

// TetrisTuning holds falling-block timing and AI parameters.
type TetrisTuning struct {
	Drop         SpeedCurve
	MoveInterval time.Duration
	RotInterval  time.Duration
	Skill        int
	JitterPct    int
	TopN         int
	ScoreJitter  float64
}

// SnakeTuning holds the snake speed curve.
type SnakeTuning struct {
	Move SpeedCurve
}

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}
