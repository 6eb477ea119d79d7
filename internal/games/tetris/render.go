package tetris

import "github.com/vovakirdan/led-arcade/internal/core"

// compose rebuilds the frame for the current state. Zero cells are background.
func (g *Game) compose() {
	f := g.frame
	f.Clear()

	flashOn := g.gameOver && (g.now.Sub(g.gameOverStart)/gameOverFlash)&1 == 1

	var fade uint8
	var hueOffset int
	if g.clearing {
		elapsed := g.now.Sub(g.clearStart)
		if elapsed < 0 {
			elapsed = 0
		}
		if elapsed < lineClearDuration {
			fade = uint8(255 - int64(elapsed)*255/int64(lineClearDuration))
		}
		hueOffset = int(elapsed.Milliseconds() / 2)
	}

	for y := 0; y < g.board.h; y++ {
		sweeping := g.clearing && g.isClearRow(y)
		for x := 0; x < g.board.w; x++ {
			c := g.board.At(x, y)
			switch {
			case sweeping:
				c = core.Wheel(uint8(hueOffset + x*16)).Scale(fade)
			case flashOn && c != 0:
				c = core.ColorWhite
			}
			f.SetPixel(x, y, c)
		}
	}

	if g.clearing || g.gameOver {
		return
	}
	color := g.piece.Color()
	for _, cell := range cellsOf(g.piece, g.rot) {
		f.SetPixel(g.x+cell.X, g.y+cell.Y, color)
	}
}

func (g *Game) isClearRow(y int) bool {
	for _, r := range g.clearRows {
		if r == y {
			return true
		}
	}
	return false
}

// Render paints the frame for the last Update through dst.
func (g *Game) Render(dst core.PixelSink) {
	if g.frame == nil {
		return
	}
	g.frame.PaintTo(dst, g.bg)
}

// ExportState returns an independent copy of the rendered state.
func (g *Game) ExportState() core.StateSnapshot {
	if g.frame == nil {
		return core.StateSnapshot{Game: g.ID()}
	}
	return core.NewSnapshot(g.ID(), g.State(), g.frame, g.bg)
}
