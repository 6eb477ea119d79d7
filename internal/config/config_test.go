package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	got := embedded()
	want := Default()
	want.Normalize()

	if got != want {
		t.Errorf("embedded() = %+v, expected %+v", got, want)
	}
}

func TestNormalizeClamps(t *testing.T) {
	cfg := Default()
	cfg.Tetris.DropStartMs = 5000
	cfg.Tetris.DropMinMs = 1
	cfg.Tetris.MoveIntervalMs = 0
	cfg.Tetris.RotIntervalMs = 9999
	cfg.Tetris.AISkill = 150
	cfg.Tetris.JitterPct = -3
	cfg.Background = RGBConfig{R: 255, G: -1, B: 20}
	cfg.Grid.Width = 200

	cfg.Normalize()

	tests := []struct {
		name     string
		got      int
		expected int
	}{
		{"drop start", cfg.Tetris.DropStartMs, 600},
		{"drop min", cfg.Tetris.DropMinMs, 30},
		{"move interval", cfg.Tetris.MoveIntervalMs, 20},
		{"rot interval", cfg.Tetris.RotIntervalMs, 300},
		{"ai skill", cfg.Tetris.AISkill, 100},
		{"jitter", cfg.Tetris.JitterPct, 0},
		{"bg r", cfg.Background.R, 40},
		{"bg g", cfg.Background.G, 0},
		{"bg b", cfg.Background.B, 20},
		{"grid width", cfg.Grid.Width, 64},
	}

	for _, tc := range tests {
		if tc.got != tc.expected {
			t.Errorf("%s = %d, expected %d", tc.name, tc.got, tc.expected)
		}
	}
}

func TestLoadCustomPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	doc := "tetris:\n  ai_skill: 40\nbackground:\n  b: 12\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Tetris.AISkill != 40 {
		t.Errorf("AISkill = %d, expected 40", cfg.Tetris.AISkill)
	}
	if cfg.Background.B != 12 {
		t.Errorf("Background.B = %d, expected 12", cfg.Background.B)
	}
	// Untouched fields keep defaults
	if cfg.Tetris.DropStartMs != 300 {
		t.Errorf("DropStartMs = %d, expected 300", cfg.Tetris.DropStartMs)
	}
	if cfg.Grid.Width != 16 || cfg.Grid.Height != 16 {
		t.Errorf("Grid = %dx%d, expected 16x16", cfg.Grid.Width, cfg.Grid.Height)
	}
}

func TestLoadMissingCustomFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Tetris.JitterPct = 33
	cfg.Snake.MoveMinMs = 90
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded.Tetris.JitterPct != 33 || loaded.Snake.MoveMinMs != 90 {
		t.Errorf("loaded = %+v, expected saved tunables", loaded)
	}
}

func TestLiveUpdateBumpsVersion(t *testing.T) {
	live := NewLive(Default(), "")
	v := live.Version()

	cfg := live.Update(func(c *Config) {
		c.Tetris.AISkill = 500
	})

	if cfg.Tetris.AISkill != 100 {
		t.Errorf("Update should normalize, AISkill = %d", cfg.Tetris.AISkill)
	}
	if live.Version() == v {
		t.Error("Version() should change after Update")
	}

	live.RestoreDefaults()
	if live.Get().Tetris.AISkill != 90 {
		t.Errorf("RestoreDefaults() AISkill = %d, expected 90", live.Get().Tetris.AISkill)
	}
}

func TestLiveSaveSkipsOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	file := Default()
	file.Server.HTTPAddr = ":9000"
	file.Storage.DBPath = "/var/lib/ledgrid/scores.db"

	live := NewLive(file, path)
	live.Override(func(c *Config) {
		c.Server.HTTPAddr = ":1234"
		c.Server.AuthToken = "secret"
		c.Storage.DBPath = "/tmp/other.db"
	})
	live.Update(func(c *Config) {
		c.Tetris.JitterPct = 33
	})

	if got := live.Get().Server.AuthToken; got != "secret" {
		t.Fatalf("active token = %q, expected the override", got)
	}
	if err := live.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	saved, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if saved.Server.HTTPAddr != ":9000" || saved.Server.AuthToken != "ledgrid" {
		t.Errorf("saved server = %+v, expected the file values", saved.Server)
	}
	if saved.Storage.DBPath != "/var/lib/ledgrid/scores.db" {
		t.Errorf("saved db_path = %q, expected the file value", saved.Storage.DBPath)
	}
	if saved.Tetris.JitterPct != 33 {
		t.Errorf("saved jitter = %d, expected the runtime update", saved.Tetris.JitterPct)
	}
}

func TestTuningConversion(t *testing.T) {
	tun := Default().Tuning()

	if tun.Tetris.Drop.Start != 300*time.Millisecond {
		t.Errorf("Drop.Start = %v, expected 300ms", tun.Tetris.Drop.Start)
	}
	if tun.Tetris.MoveInterval != 70*time.Millisecond {
		t.Errorf("MoveInterval = %v, expected 70ms", tun.Tetris.MoveInterval)
	}
	if tun.Snake.Move.Interval(0) != 280*time.Millisecond {
		t.Errorf("Snake interval(0) = %v, expected 280ms", tun.Snake.Move.Interval(0))
	}
}

func TestSpeedCurve(t *testing.T) {
	drop := SpeedCurve{Start: 300 * time.Millisecond, Step: 25 * time.Millisecond, Min: 80 * time.Millisecond, Every: 10}
	snake := SpeedCurve{Start: 280 * time.Millisecond, Step: 6 * time.Millisecond, Min: 80 * time.Millisecond, Every: 1}

	tests := []struct {
		name     string
		curve    SpeedCurve
		progress int
		expected time.Duration
	}{
		{"drop start", drop, 0, 300 * time.Millisecond},
		{"drop before first step", drop, 9, 300 * time.Millisecond},
		{"drop first step", drop, 10, 275 * time.Millisecond},
		{"drop floor", drop, 1000, 80 * time.Millisecond},
		{"snake score 10", snake, 10, 220 * time.Millisecond},
		{"snake floor", snake, 40, 80 * time.Millisecond},
		{"negative progress", snake, -5, 280 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.curve.Interval(tc.progress); got != tc.expected {
				t.Errorf("Interval(%d) = %v, expected %v", tc.progress, got, tc.expected)
			}
		})
	}
}
