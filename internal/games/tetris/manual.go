package tetris

import "github.com/vovakirdan/led-arcade/internal/core"

// ApplyCommand routes a control request to the manual arbiter.
func (g *Game) ApplyCommand(cmd core.Command) bool {
	switch cmd.Kind {
	case core.CmdManual:
		return g.SetMode(core.ModeManual)
	case core.CmdAI:
		return g.SetMode(core.ModeAI)
	case core.CmdLeft:
		return g.MoveLeft()
	case core.CmdRight:
		return g.MoveRight()
	case core.CmdRotate:
		return g.Rotate()
	case core.CmdDrop:
		return g.HardDrop()
	case core.CmdSoftDrop:
		return g.SoftDrop(cmd.Active)
	default:
		return false
	}
}

// SetMode switches between AI and manual play.
// A real change resets the game; selecting the current mode is a no-op.
func (g *Game) SetMode(m core.Mode) bool {
	if g.mode == m {
		return true
	}
	g.mode = m
	if g.board != nil {
		g.restart(g.now)
	}
	return true
}

// Mode returns who is driving the game.
func (g *Game) Mode() core.Mode {
	return g.mode
}

// canControl reports whether a manual piece command may run now.
func (g *Game) canControl() bool {
	return g.board != nil && g.mode == core.ModeManual && !g.clearing && !g.gameOver
}

// MoveLeft shifts the piece one column left if it fits.
func (g *Game) MoveLeft() bool {
	return g.shift(-1)
}

// MoveRight shifts the piece one column right if it fits.
func (g *Game) MoveRight() bool {
	return g.shift(1)
}

func (g *Game) shift(dx int) bool {
	if !g.canControl() || !g.board.Fits(g.piece, g.rot, g.x+dx, g.y) {
		return false
	}
	g.x += dx
	g.compose()
	return true
}

// Rotate turns the piece a quarter clockwise if the new pose fits.
func (g *Game) Rotate() bool {
	if !g.canControl() {
		return false
	}
	next := (g.rot + 1) % 4
	if !g.board.Fits(g.piece, next, g.x, g.y) {
		return false
	}
	g.rot = next
	g.compose()
	return true
}

// HardDrop drops the piece to its resting row; it locks on the next tick.
func (g *Game) HardDrop() bool {
	if !g.canControl() {
		return false
	}
	for g.board.Fits(g.piece, g.rot, g.x, g.y+1) {
		g.y++
	}
	g.forceLock = true
	g.compose()
	return true
}

// SoftDrop toggles the fast gravity interval.
func (g *Game) SoftDrop(active bool) bool {
	if !g.canControl() {
		return false
	}
	g.softDrop = active
	return true
}
