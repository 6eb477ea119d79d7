package snake

import "github.com/vovakirdan/led-arcade/internal/core"

// ApplyCommand routes a control request to the manual arbiter.
func (g *Game) ApplyCommand(cmd core.Command) bool {
	switch cmd.Kind {
	case core.CmdManual:
		return g.SetMode(core.ModeManual)
	case core.CmdAI:
		return g.SetMode(core.ModeAI)
	case core.CmdUp, core.CmdRotate:
		return g.SetDirection(DirUp)
	case core.CmdRight:
		return g.SetDirection(DirRight)
	case core.CmdDown, core.CmdDrop:
		return g.SetDirection(DirDown)
	case core.CmdLeft:
		return g.SetDirection(DirLeft)
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
	if g.body != nil {
		g.restart(g.now)
	}
	return true
}

// Mode returns who is driving the game.
func (g *Game) Mode() core.Mode {
	return g.mode
}

// SetDirection queues the heading for the next move.
// 180 degree turns are rejected.
func (g *Game) SetDirection(d Direction) bool {
	if g.body == nil || g.mode != core.ModeManual || g.gameOver {
		return false
	}
	if d < DirUp || d > DirLeft || d == g.dir.Reverse() {
		return false
	}
	g.nextDir = d
	return true
}
