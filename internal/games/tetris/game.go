// Package tetris implements the falling-block game: a tick-driven piece
// state machine with a heuristic AI player and a manual control arbiter.
package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/led-arcade/internal/config"
	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/registry"
)

// Fixed animation timings.
const (
	lineClearDuration = 400 * time.Millisecond
	gameOverDuration  = 1500 * time.Millisecond
	gameOverFlash     = 200 * time.Millisecond
	thinkMin          = 150 * time.Millisecond
	thinkSpread       = 350 // ms added on top of thinkMin
	thinkMinRow       = 2   // piece must be this far down before the AI acts
)

// Phase names the state-machine step the game is in.
type Phase int

const (
	PhaseFalling Phase = iota
	PhaseThinking
	PhaseRotating
	PhaseSliding
	PhaseLineClear
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseThinking:
		return "thinking"
	case PhaseRotating:
		return "rotating"
	case PhaseSliding:
		return "sliding"
	case PhaseLineClear:
		return "line_clear"
	case PhaseGameOver:
		return "game_over"
	default:
		return "falling"
	}
}

// Game implements the falling-block game.
type Game struct {
	cfg   core.RuntimeConfig
	tun   config.TetrisTuning
	bg    core.Color
	rng   *rand.Rand
	board *Board
	frame *core.Frame
	mode  core.Mode
	tick  uint64

	// Active piece
	piece PieceType
	rot   int
	x, y  int

	// AI intent
	targetX       int
	targetRot     int
	rotDir        int
	rotStepsLeft  int
	reachedTarget bool
	thinking      bool
	thinkStart    time.Time
	thinkDelay    time.Duration

	// Manual drop control
	softDrop  bool
	forceLock bool

	// Animations
	clearing      bool
	clearRows     []int
	clearStart    time.Time
	gameOver      bool
	gameOverStart time.Time

	// Timers
	now      time.Time
	clockSet bool
	lastDrop time.Time
	lastMove time.Time
	lastRot  time.Time

	// Stats
	score        int
	lines        int
	piecesPlaced int
}

// New creates a falling-block game with default tunables.
func New() *Game {
	tun := config.Default().Tuning()
	return &Game{
		tun: tun.Tetris,
		bg:  tun.Background,
	}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	def := core.DefaultConfig()
	if cfg.GridW <= 0 || cfg.GridH <= 0 {
		cfg.GridW, cfg.GridH = def.GridW, def.GridH
	}
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.board = NewBoard(cfg.GridW, cfg.GridH)
	g.frame = core.NewFrame(cfg.GridW, cfg.GridH)
	g.tick = 0
	g.clockSet = false
	g.mode = core.ModeAI
	g.restart(time.Time{})
}

// Configure applies live tunables. The new values apply from the next tick.
func (g *Game) Configure(t config.Tuning) {
	g.tun = t.Tetris
	g.bg = t.Background
}

// restart clears the board and stats and spawns the first piece.
func (g *Game) restart(now time.Time) {
	g.board.Clear()
	g.clearing = false
	g.clearRows = nil
	g.gameOver = false
	g.score = 0
	g.lines = 0
	g.piecesPlaced = 0
	g.lastDrop = now
	g.lastMove = now
	g.lastRot = now
	g.spawn(now)
	g.compose()
}

// syncClock anchors every timer to the first observed time.
func (g *Game) syncClock(now time.Time) {
	g.lastDrop = now
	g.lastMove = now
	g.lastRot = now
	g.thinkStart = now
	if g.gameOver {
		g.gameOverStart = now
	}
	if g.clearing {
		g.clearStart = now
	}
	g.clockSet = true
}

// Update advances the state machine to now.
func (g *Game) Update(now time.Time) {
	if g.board == nil {
		g.Reset(core.DefaultConfig())
	}
	if !g.clockSet {
		g.syncClock(now)
	}
	g.now = now
	g.tick++

	switch {
	case g.gameOver:
		g.updateGameOver(now)
	case g.clearing:
		g.updateLineClear(now)
	default:
		if g.mode == core.ModeAI {
			g.updateAI(now)
		}
		g.updateDrop(now)
	}

	g.compose()
}

func (g *Game) updateGameOver(now time.Time) {
	if now.Sub(g.gameOverStart) >= gameOverDuration {
		g.restart(now)
	}
}

func (g *Game) updateLineClear(now time.Time) {
	if now.Sub(g.clearStart) < lineClearDuration {
		return
	}
	n := len(g.clearRows)
	g.board.RemoveRows(g.clearRows)
	g.score += n * n * 100
	g.lines += n
	g.clearRows = nil
	g.clearing = false
	g.spawn(now)
	g.lastDrop = now
	g.lastMove = now
}

// updateAI rotates and slides toward the chosen placement.
// Rotation and sliding run side by side, each on its own interval.
func (g *Game) updateAI(now time.Time) {
	if g.thinking {
		if g.y >= thinkMinRow && now.Sub(g.thinkStart) >= g.thinkDelay {
			g.thinking = false
		} else {
			return
		}
	}

	if g.rotStepsLeft > 0 && now.Sub(g.lastRot) >= g.tun.RotInterval {
		g.lastRot = now
		next := (g.rot + g.rotDir + 4) % 4
		if g.board.Fits(g.piece, next, g.x, g.y) {
			g.rot = next
			g.rotStepsLeft--
		} else {
			g.rotStepsLeft = 0
		}
	}

	if !g.reachedTarget && now.Sub(g.lastMove) >= g.tun.MoveInterval {
		g.lastMove = now
		switch {
		case g.rng.Intn(100) < g.tun.JitterPct:
			// hesitate
		case g.x < g.targetX:
			if g.board.Fits(g.piece, g.rot, g.x+1, g.y) {
				g.x++
			} else {
				g.reachedTarget = true
			}
		case g.x > g.targetX:
			if g.board.Fits(g.piece, g.rot, g.x-1, g.y) {
				g.x--
			} else {
				g.reachedTarget = true
			}
		default:
			g.reachedTarget = true
		}
	}
}

func (g *Game) updateDrop(now time.Time) {
	interval := g.DropInterval()
	if g.softDrop {
		interval = g.tun.Drop.Min
	}
	if !g.forceLock && now.Sub(g.lastDrop) < interval {
		return
	}
	g.lastDrop = now
	g.forceLock = false

	if g.board.Fits(g.piece, g.rot, g.x, g.y+1) {
		g.y++
		return
	}
	g.lock(now)
}

// lock settles the active piece and moves on to line clear or the next spawn.
func (g *Game) lock(now time.Time) {
	g.board.Lock(g.piece, g.rot, g.x, g.y, g.piece.Color())
	g.piecesPlaced++

	if rows := g.board.FullRows(); len(rows) > 0 {
		g.clearing = true
		g.clearRows = rows
		g.clearStart = now
		return
	}
	g.spawn(now)
	g.lastMove = now
}

// spawn brings in a random piece at the top center.
func (g *Game) spawn(now time.Time) {
	g.piece = PieceType(g.rng.Intn(int(pieceCount)))
	g.rot = 0
	g.x = g.board.w/2 - 2
	g.y = -1
	g.reachedTarget = false
	g.softDrop = false
	g.forceLock = false
	g.targetX, g.targetRot = g.x, 0
	g.rotStepsLeft = 0
	g.thinking = false

	if g.mode == core.ModeAI {
		pl := g.searcher().Choose(g.board, g.piece, g.rng)
		g.targetX, g.targetRot = pl.X, pl.Rot

		cw := (g.targetRot - g.rot + 4) % 4
		ccw := (g.rot - g.targetRot + 4) % 4
		if cw <= ccw {
			g.rotDir, g.rotStepsLeft = 1, cw
		} else {
			g.rotDir, g.rotStepsLeft = -1, ccw
		}

		g.thinking = true
		g.thinkStart = now
		g.thinkDelay = thinkMin + time.Duration(g.rng.Intn(thinkSpread))*time.Millisecond
	}

	if !g.board.Fits(g.piece, g.rot, g.x, g.y) {
		g.gameOver = true
		g.gameOverStart = now
	}
}

func (g *Game) searcher() Searcher {
	return Searcher{
		Skill:       g.tun.Skill,
		TopN:        g.tun.TopN,
		ScoreJitter: g.tun.ScoreJitter,
	}
}

// DropInterval returns the gravity period for the pieces placed so far.
func (g *Game) DropInterval() time.Duration {
	return g.tun.Drop.Interval(g.piecesPlaced)
}

// Phase reports the current state-machine step.
func (g *Game) Phase() Phase {
	switch {
	case g.gameOver:
		return PhaseGameOver
	case g.clearing:
		return PhaseLineClear
	case g.mode == core.ModeManual:
		return PhaseFalling
	case g.thinking:
		return PhaseThinking
	case g.rotStepsLeft > 0:
		return PhaseRotating
	case !g.reachedTarget:
		return PhaseSliding
	default:
		return PhaseFalling
	}
}

// Board exposes the settled cells.
func (g *Game) Board() *Board {
	return g.board
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lines:    g.lines,
		GameOver: g.gameOver,
		Mode:     g.mode,
	}
}
