package tetris

import "github.com/vovakirdan/led-arcade/internal/core"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	Piece        PieceType
	X, Y, Rot    int
	TargetX      int
	TargetRot    int
	Score        int
	Lines        int
	PiecesPlaced int
	Phase        Phase
	Manual       bool
	SoftDrop     bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:         g.tick,
		Piece:        g.piece,
		X:            g.x,
		Y:            g.y,
		Rot:          g.rot,
		TargetX:      g.targetX,
		TargetRot:    g.targetRot,
		Score:        g.score,
		Lines:        g.lines,
		PiecesPlaced: g.piecesPlaced,
		Phase:        g.Phase(),
		Manual:       g.mode == core.ModeManual,
		SoftDrop:     g.softDrop,
	}
}
