package config

import "sync"

// Live holds the active configuration behind a lock.
// Every change bumps Version so the runner can pick it up on its next tick.
type Live struct {
	mu       sync.RWMutex
	cfg      Config
	file     Config
	version  uint64
	savePath string
}

// NewLive wraps cfg as loaded from disk. savePath is where Save writes
// (empty = user config path).
func NewLive(cfg Config, savePath string) *Live {
	cfg.Normalize()
	return &Live{cfg: cfg, file: cfg, version: 1, savePath: savePath}
}

// Get returns a copy of the current configuration.
func (l *Live) Get() Config {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cfg
}

// Version returns a counter that changes on every update.
func (l *Live) Version() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.version
}

// Update applies fn to a copy, normalizes it and publishes the result.
func (l *Live) Update(fn func(*Config)) Config {
	l.mu.Lock()
	defer l.mu.Unlock()

	next := l.cfg
	fn(&next)
	next.Normalize()
	l.cfg = next
	l.version++
	return next
}

// Override applies process-only settings such as command-line flags.
// Server and storage sections changed here are not written by Save.
func (l *Live) Override(fn func(*Config)) Config {
	return l.Update(fn)
}

// RestoreDefaults resets the game tunables and background.
// Grid, server and storage settings are kept.
func (l *Live) RestoreDefaults() Config {
	def := embedded()
	return l.Update(func(c *Config) {
		c.Background = def.Background
		c.Tetris = def.Tetris
		c.Snake = def.Snake
	})
}

// Save persists the current configuration. Server and storage sections are
// written as they were loaded.
func (l *Live) Save() error {
	cfg := l.Get()
	cfg.Server = l.file.Server
	cfg.Storage = l.file.Storage
	return Save(l.savePath, cfg)
}
