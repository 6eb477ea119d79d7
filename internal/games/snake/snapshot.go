package snake

import "github.com/vovakirdan/led-arcade/internal/core"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Head     core.Point
	Length   int
	Dir      Direction
	Food     core.Point
	Score    int
	GameOver bool
	Won      bool
	Manual   bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Head:     g.body.Head(),
		Length:   g.body.Len(),
		Dir:      g.dir,
		Food:     g.food,
		Score:    g.score,
		GameOver: g.gameOver,
		Won:      g.won,
		Manual:   g.mode == core.ModeManual,
	}
}
