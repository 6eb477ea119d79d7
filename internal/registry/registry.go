// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the runner
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/led-arcade/internal/config"
	"github.com/vovakirdan/led-arcade/internal/core"
)

// Game is the interface every grid game implements.
// Games contain pure logic with no transport or terminal dependencies.
// The runner handles timing, command routing and output.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "tetris", "snake").
	// Used for CLI commands, the HTTP API and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// The RuntimeConfig provides grid dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Configure applies live tunables without resetting.
	Configure(t config.Tuning)

	// Update advances the state machine to the given wall-clock time.
	Update(now time.Time)

	// ApplyCommand routes a control request. Returns false if it was rejected.
	ApplyCommand(cmd core.Command) bool

	// Render paints the frame for the last Update through dst.
	Render(dst core.PixelSink)

	// ExportState returns an independent copy of what Render paints.
	ExportState() core.StateSnapshot

	// State returns the current game state (score, lines, game over, mode).
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f()
	titles[id] = g.Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
