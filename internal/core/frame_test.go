package core

import "testing"

func TestFrameSetAt(t *testing.T) {
	f := NewFrame(4, 3)

	f.SetPixel(2, 1, ColorWhite)
	if f.At(2, 1) != ColorWhite {
		t.Errorf("At(2, 1) = %v, expected white", f.At(2, 1))
	}

	// Out of bounds should be silent
	f.SetPixel(-1, 0, ColorWhite)
	f.SetPixel(4, 0, ColorWhite)
	f.SetPixel(0, 3, ColorWhite)

	if f.At(-1, 0) != ColorBackground {
		t.Error("Out of bounds At should return background")
	}

	cells := f.Cells()
	count := 0
	for _, c := range cells {
		if c != ColorBackground {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Expected exactly 1 lit cell, got %d", count)
	}

	// Cells returns a copy
	cells[0] = ColorWhite
	if f.At(0, 0) != ColorBackground {
		t.Error("Mutating Cells() result should not affect the frame")
	}
}

func TestFramePaintToSubstitutesBackground(t *testing.T) {
	src := NewFrame(3, 2)
	src.SetPixel(1, 1, RGB(10, 20, 30))

	bg := RGB(5, 5, 5)
	dst := NewFrame(3, 2)
	src.PaintTo(dst, bg)

	if dst.At(1, 1) != RGB(10, 20, 30) {
		t.Errorf("Lit cell = %v, expected %v", dst.At(1, 1), RGB(10, 20, 30))
	}
	if dst.At(0, 0) != bg {
		t.Errorf("Empty cell = %v, expected background %v", dst.At(0, 0), bg)
	}
	if dst.Presents() != 1 {
		t.Errorf("Presents() = %d, expected 1", dst.Presents())
	}
}

func TestSnapshotPaintMatchesFrame(t *testing.T) {
	f := NewFrame(4, 4)
	f.SetPixel(0, 0, RGB(255, 0, 0))
	f.SetPixel(3, 2, RGB(0, 0, 255))
	bg := RGB(0, 0, 20)

	snap := NewSnapshot("test", GameState{Score: 7, Lines: 2}, f, bg)

	live := NewFrame(4, 4)
	f.PaintTo(live, bg)
	replay := NewFrame(4, 4)
	snap.Paint(replay)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if live.At(x, y) != replay.At(x, y) {
				t.Errorf("cell (%d,%d): live %v, replay %v", x, y, live.At(x, y), replay.At(x, y))
			}
		}
	}
	if snap.Score != 7 || snap.Lines != 2 {
		t.Errorf("Snapshot stats = (%d, %d), expected (7, 2)", snap.Score, snap.Lines)
	}
}

func TestColorChannels(t *testing.T) {
	c := RGB(0x12, 0x34, 0x56)
	if c != 0x123456 {
		t.Errorf("RGB() = %#x, expected 0x123456", uint32(c))
	}
	if c.R() != 0x12 || c.G() != 0x34 || c.B() != 0x56 {
		t.Errorf("channels = (%#x, %#x, %#x)", c.R(), c.G(), c.B())
	}
	if c.Hex() != "#123456" {
		t.Errorf("Hex() = %q, expected #123456", c.Hex())
	}
	if got := RGB(200, 100, 50).Scale(0); got != 0 {
		t.Errorf("Scale(0) = %v, expected 0", got)
	}
	if got := RGB(200, 100, 50).Scale(255); got != RGB(200, 100, 50) {
		t.Errorf("Scale(255) = %v, expected unchanged", got)
	}
}

func TestWheelSumsToFullBrightness(t *testing.T) {
	for pos := 0; pos < 256; pos++ {
		c := Wheel(uint8(pos))
		sum := int(c.R()) + int(c.G()) + int(c.B())
		if sum != 255 {
			t.Errorf("Wheel(%d) channel sum = %d, expected 255", pos, sum)
		}
	}
}
