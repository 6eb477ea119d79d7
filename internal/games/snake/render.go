package snake

import "github.com/vovakirdan/led-arcade/internal/core"

var (
	headColor = core.RGB(200, 255, 200)
	deadColor = core.RGB(180, 0, 0)
)

// compose rebuilds the frame for the current state. Zero cells are background.
func (g *Game) compose() {
	f := g.frame
	f.Clear()
	n := g.body.Len()

	if g.gameOver {
		if (g.now.Sub(g.gameOverStart)/gameOverFlash)&1 == 1 {
			for i := 0; i < n; i++ {
				p := g.body.At(i)
				f.SetPixel(p.X, p.Y, deadColor)
			}
		}
		return
	}

	for i := n - 1; i >= 0; i-- {
		p := g.body.At(i)
		f.SetPixel(p.X, p.Y, bodyColor(i, n))
	}

	if g.food != noFood {
		f.SetPixel(g.food.X, g.food.Y, foodColor(g.now.UnixMilli()))
	}
}

// bodyColor fades from bright green behind the head to dark teal at the tail.
func bodyColor(i, n int) core.Color {
	if i == 0 {
		return headColor
	}
	frac := 0
	if n > 1 {
		frac = i * 255 / (n - 1)
	}
	return core.RGB(0, uint8(255-frac*175/255), uint8(frac*80/255))
}

// foodColor pulses red on a triangle wave with 4 ms phase steps.
func foodColor(ms int64) core.Color {
	phase := int(ms/4) & 0xFF
	var wave int
	if phase < 128 {
		wave = phase * 2
	} else {
		wave = (255 - phase) * 2
	}
	return core.RGB(uint8(140+wave*115/255), 0, 0)
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
