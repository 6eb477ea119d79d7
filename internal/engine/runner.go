package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/led-arcade/internal/config"
	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/registry"
)

// ErrUnknownGame is returned when selecting a game that is not registered.
var ErrUnknownGame = errors.New("engine: unknown game")

// Runner owns every game instance and the single active game.
// All game access happens under mu: ticks, command application,
// game switches and snapshot export never overlap.
type Runner struct {
	cfg      RunnerConfig
	live     *config.Live
	sessions *SessionRegistry
	saver    ResultSaver // Optional, can be nil
	sink     core.PixelSink
	logger   *log.Logger

	mu         sync.Mutex
	games      map[string]registry.Game
	infos      []registry.GameInfo
	active     registry.Game
	tick       uint64
	cfgVersion uint64
	runtime    core.RuntimeConfig
	now        time.Time
	started    time.Time
	wasOver    bool

	commands chan core.Command
}

// NewRunner instantiates every registered game and selects cfg.InitialGame.
func NewRunner(cfg RunnerConfig, live *config.Live, sessions *SessionRegistry) (*Runner, error) {
	if cfg.TickInterval <= 0 || cfg.BroadcastInterval <= 0 || cfg.CommandBuffer <= 0 {
		def := DefaultRunnerConfig()
		if cfg.TickInterval <= 0 {
			cfg.TickInterval = def.TickInterval
		}
		if cfg.BroadcastInterval <= 0 {
			cfg.BroadcastInterval = def.BroadcastInterval
		}
		if cfg.CommandBuffer <= 0 {
			cfg.CommandBuffer = def.CommandBuffer
		}
	}
	if sessions == nil {
		sessions = NewSessionRegistry()
	}

	r := &Runner{
		cfg:      cfg,
		live:     live,
		sessions: sessions,
		logger:   log.Default(),
		games:    make(map[string]registry.Game),
		commands: make(chan core.Command, cfg.CommandBuffer),
	}

	current := live.Get()
	r.cfgVersion = live.Version()
	r.runtime = current.Runtime(cfg.Seed)
	tuning := current.Tuning()

	r.infos = registry.List()
	if len(r.infos) == 0 {
		return nil, errors.New("engine: no games registered")
	}
	for _, info := range r.infos {
		g, err := registry.Create(info.ID)
		if err != nil {
			return nil, fmt.Errorf("engine: create %s: %w", info.ID, err)
		}
		g.Configure(tuning)
		g.Reset(r.runtime)
		r.games[info.ID] = g
	}

	initial := cfg.InitialGame
	if initial == "" {
		initial = r.infos[0].ID
	}
	g, ok := r.games[initial]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, initial)
	}
	r.active = g
	return r, nil
}

// SetResultSaver sets the optional result saver.
func (r *Runner) SetResultSaver(saver ResultSaver) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saver = saver
}

// SetSink sets the pixel collaborator painted after every tick.
func (r *Runner) SetSink(sink core.PixelSink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sink = sink
}

// SetLogger replaces the default logger.
func (r *Runner) SetLogger(l *log.Logger) {
	if l != nil {
		r.logger = l
	}
}

// Sessions returns the registry snapshots are broadcast to.
func (r *Runner) Sessions() *SessionRegistry {
	return r.sessions
}

// Games lists the games the runner can switch between.
func (r *Runner) Games() []registry.GameInfo {
	out := make([]registry.GameInfo, len(r.infos))
	copy(out, r.infos)
	return out
}

// Submit queues a command for the next tick.
// Returns false if the queue is full and the command was dropped.
func (r *Runner) Submit(cmd core.Command) bool {
	select {
	case r.commands <- cmd:
		return true
	default:
		r.logger.Warn("command queue full, dropping", "cmd", cmd.Kind)
		return false
	}
}

// SelectGame makes id the active game and resets it.
func (r *Runner) SelectGame(id string) error {
	r.mu.Lock()
	g, ok := r.games[id]
	if !ok {
		r.mu.Unlock()
		return fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	r.drainLocked()
	r.active = g
	g.Reset(r.runtime)
	r.started = r.now
	r.wasOver = false
	title := g.Title()
	r.mu.Unlock()

	r.logger.Info("game selected", "game", id)
	r.sessions.Broadcast(GameChangedEvent{GameID: id, Title: title})
	return nil
}

// ActiveGame returns the ID of the running game.
func (r *Runner) ActiveGame() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active.ID()
}

// State returns the active game's state.
func (r *Runner) State() core.GameState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active.State()
}

// Tick returns how many ticks have run.
func (r *Runner) Tick() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tick
}

// Snapshot exports the active game's state between ticks.
func (r *Runner) Snapshot() core.StateSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active.ExportState()
}

// Step runs one tick at now: pending commands, live config, Update, Render.
func (r *Runner) Step(now time.Time) {
	r.mu.Lock()
	if r.started.IsZero() {
		r.started = now
	}
	r.now = now
	r.applyConfigLocked()
	events := r.drainCommandsLocked()

	r.active.Update(now)
	r.tick++
	if r.sink != nil {
		r.active.Render(r.sink)
	}
	if evt, ok := r.checkGameOverLocked(now); ok {
		events = append(events, evt)
	}
	r.mu.Unlock()

	for _, evt := range events {
		r.sessions.Broadcast(evt)
	}
}

// Broadcast sends the current snapshot to every session.
func (r *Runner) Broadcast() {
	r.mu.Lock()
	evt := SnapshotEvent{Tick: r.tick, Snapshot: r.active.ExportState()}
	r.mu.Unlock()
	r.sessions.Broadcast(evt)
}

// Run drives ticks and broadcasts until ctx is cancelled.
func (r *Runner) Run(ctx context.Context) error {
	tick := time.NewTicker(r.cfg.TickInterval)
	defer tick.Stop()
	broadcast := time.NewTicker(r.cfg.BroadcastInterval)
	defer broadcast.Stop()

	r.logger.Info("runner started", "game", r.ActiveGame(), "tick", r.cfg.TickInterval)
	for {
		select {
		case now := <-tick.C:
			r.Step(now)
		case <-broadcast.C:
			r.Broadcast()
		case <-ctx.Done():
			r.logger.Info("runner stopped", "ticks", r.Tick())
			return ctx.Err()
		}
	}
}

// drainCommandsLocked applies every queued command to the active game.
func (r *Runner) drainCommandsLocked() []SessionEvent {
	var events []SessionEvent
	for {
		select {
		case cmd := <-r.commands:
			before := r.active.State().Mode
			if !r.active.ApplyCommand(cmd) {
				r.logger.Debug("command rejected", "game", r.active.ID(), "cmd", cmd.Kind)
				continue
			}
			if mode := r.active.State().Mode; mode != before {
				r.started = r.now
				r.wasOver = false
				events = append(events, ModeChangedEvent{GameID: r.active.ID(), Mode: mode})
			}
		default:
			return events
		}
	}
}

// drainLocked discards queued commands aimed at the previous game.
func (r *Runner) drainLocked() {
	for {
		select {
		case <-r.commands:
		default:
			return
		}
	}
}

// applyConfigLocked pushes a changed live config into every game.
// A grid size change resets the games.
func (r *Runner) applyConfigLocked() {
	if r.live == nil {
		return
	}
	v := r.live.Version()
	if v == r.cfgVersion {
		return
	}
	r.cfgVersion = v
	current := r.live.Get()
	tuning := current.Tuning()
	rt := current.Runtime(r.cfg.Seed)
	resize := rt.GridW != r.runtime.GridW || rt.GridH != r.runtime.GridH
	r.runtime = rt

	for _, g := range r.games {
		g.Configure(tuning)
		if resize {
			g.Reset(rt)
		}
	}
	if resize {
		r.started = r.now
		r.wasOver = false
	}
	r.logger.Debug("config applied", "version", v, "resize", resize)
}

// checkGameOverLocked reports a game-over edge and saves the result.
func (r *Runner) checkGameOverLocked(now time.Time) (SessionEvent, bool) {
	st := r.active.State()
	switch {
	case st.GameOver && !r.wasOver:
		r.wasOver = true
		result := GameResult{
			GameID:   r.active.ID(),
			Score:    st.Score,
			Lines:    st.Lines,
			Mode:     st.Mode,
			Duration: now.Sub(r.started),
		}
		r.logger.Info("game over", "game", result.GameID, "score", result.Score, "lines", result.Lines)
		if r.saver != nil {
			saver := r.saver
			go func() {
				if err := saver.SaveResult(result); err != nil {
					r.logger.Error("save result", "err", err)
				}
			}()
		}
		return GameOverEvent{Result: result}, true
	case !st.GameOver && r.wasOver:
		r.wasOver = false
		r.started = now
	}
	return nil, false
}
