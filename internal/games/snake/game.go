// Package snake implements the grid snake with a flood-fill guided AI.
package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/led-arcade/internal/config"
	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/registry"
)

const (
	startLength      = 3
	gameOverDuration = 3000 * time.Millisecond
	gameOverFlash    = 300 * time.Millisecond
)

// Direction is a heading on the grid.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

var (
	dirDX = [4]int{0, 1, 0, -1}
	dirDY = [4]int{-1, 0, 1, 0}
)

// Reverse returns the opposite heading.
func (d Direction) Reverse() Direction {
	return (d + 2) % 4
}

// Step returns p moved one cell along d.
func (d Direction) Step(p core.Point) core.Point {
	return p.Add(dirDX[d], dirDY[d])
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// noFood marks a board with no empty cell left.
var noFood = core.Point{X: -1, Y: -1}

// Game implements the snake game.
type Game struct {
	cfg   core.RuntimeConfig
	tun   config.SnakeTuning
	bg    core.Color
	rng   *rand.Rand
	body  *Body
	frame *core.Frame
	mode  core.Mode
	tick  uint64

	dir     Direction
	nextDir Direction
	food    core.Point
	score   int

	gameOver      bool
	won           bool
	gameOverStart time.Time

	now      time.Time
	clockSet bool
	lastMove time.Time
}

// New creates a snake game with default tunables.
func New() *Game {
	tun := config.Default().Tuning()
	return &Game{
		tun: tun.Snake,
		bg:  tun.Background,
	}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	def := core.DefaultConfig()
	if cfg.GridW <= 0 || cfg.GridH <= 0 {
		cfg.GridW, cfg.GridH = def.GridW, def.GridH
	}
	if cfg.GridW > core.MaxGridW {
		cfg.GridW = core.MaxGridW
	}
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.body = NewBody(cfg.GridW, cfg.GridH)
	g.frame = core.NewFrame(cfg.GridW, cfg.GridH)
	g.tick = 0
	g.clockSet = false
	g.mode = core.ModeAI
	g.restart(time.Time{})
}

// Configure applies live tunables. The new values apply from the next move.
func (g *Game) Configure(t config.Tuning) {
	g.tun = t.Snake
	g.bg = t.Background
}

// restart lays out a fresh three-cell snake heading right and places food.
func (g *Game) restart(now time.Time) {
	w, h := g.cfg.GridW, g.cfg.GridH
	cells := make([]core.Point, startLength)
	for i := range cells {
		cells[i] = core.Point{X: w/2 - startLength + 1 + i, Y: h / 2}
	}
	g.body.Reset(cells...)
	g.dir = DirRight
	g.nextDir = DirRight
	g.score = 0
	g.gameOver = false
	g.won = false
	g.lastMove = now
	g.placeFood(now)
	g.compose()
}

func (g *Game) syncClock(now time.Time) {
	g.lastMove = now
	if g.gameOver {
		g.gameOverStart = now
	}
	g.clockSet = true
}

// Update advances the game to now.
func (g *Game) Update(now time.Time) {
	if g.body == nil {
		g.Reset(core.DefaultConfig())
	}
	if !g.clockSet {
		g.syncClock(now)
	}
	g.now = now
	g.tick++

	if g.gameOver {
		if now.Sub(g.gameOverStart) >= gameOverDuration {
			g.restart(now)
		}
	} else if now.Sub(g.lastMove) >= g.MoveInterval() {
		g.lastMove = now
		g.step(now)
	}

	g.compose()
}

// step moves the snake one cell.
func (g *Game) step(now time.Time) {
	if g.mode == core.ModeAI {
		g.nextDir = g.aiChoose()
	}
	g.dir = g.nextDir

	next := g.dir.Step(g.body.Head())
	if !g.body.inBounds(next) {
		g.die(now)
		return
	}

	eating := next == g.food
	if g.body.Occupied(next) && (next != g.body.Tail() || eating) {
		g.die(now)
		return
	}

	if eating {
		g.body.PushHead(next)
		g.score++
		g.placeFood(now)
		return
	}
	g.body.PopTail()
	g.body.PushHead(next)
}

func (g *Game) die(now time.Time) {
	g.gameOver = true
	g.gameOverStart = now
}

// placeFood puts food on a uniformly random empty cell.
// A full board wins the game.
func (g *Game) placeFood(now time.Time) {
	empty := g.body.Free()
	if empty <= 0 {
		g.food = noFood
		g.won = true
		g.die(now)
		return
	}
	target := g.rng.Intn(empty)
	for y := 0; y < g.cfg.GridH; y++ {
		for x := 0; x < g.cfg.GridW; x++ {
			p := core.Point{X: x, Y: y}
			if g.body.Occupied(p) {
				continue
			}
			if target == 0 {
				g.food = p
				return
			}
			target--
		}
	}
}

// MoveInterval returns the step period for the current score.
func (g *Game) MoveInterval() time.Duration {
	return g.tun.Move.Interval(g.score)
}

// Body exposes the snake body.
func (g *Game) Body() *Body {
	return g.body
}

// Food returns the food cell, or (-1,-1) once the board is full.
func (g *Game) Food() core.Point {
	return g.food
}

// Direction returns the current heading.
func (g *Game) Direction() Direction {
	return g.dir
}

// Won reports whether the snake filled the board.
func (g *Game) Won() bool {
	return g.won
}

// State returns the current game state. Lines carries the snake length.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Mode:     g.mode,
	}
	if g.body != nil {
		st.Lines = g.body.Len()
	}
	return st
}
