package core

// PixelSink is the output collaborator that receives rendered pixels.
// Hardware drivers, terminal views and test doubles implement it.
type PixelSink interface {
	SetPixel(x, y int, c Color)
	Present()
}

// Frame is an in-memory W×H pixel buffer.
// It doubles as a PixelSink so renders can be captured and compared.
type Frame struct {
	width    int
	height   int
	cells    []Color
	presents int
}

// NewFrame creates a cleared frame with the given dimensions.
func NewFrame(width, height int) *Frame {
	return &Frame{
		width:  width,
		height: height,
		cells:  make([]Color, width*height),
	}
}

// Width returns the frame width in cells.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the frame height in cells.
func (f *Frame) Height() int {
	return f.height
}

// Clear resets every cell to background.
func (f *Frame) Clear() {
	for i := range f.cells {
		f.cells[i] = ColorBackground
	}
}

// SetPixel places a color at the given position.
// Out-of-bounds coordinates are silently ignored.
func (f *Frame) SetPixel(x, y int, c Color) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.cells[y*f.width+x] = c
}

// Present counts flushes; the in-memory frame has nothing to push.
func (f *Frame) Present() {
	f.presents++
}

// Presents returns how many times Present was called.
func (f *Frame) Presents() int {
	return f.presents
}

// At returns the color at the given position.
// Returns background for out-of-bounds coordinates.
func (f *Frame) At(x, y int) Color {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return ColorBackground
	}
	return f.cells[y*f.width+x]
}

// Cells returns a copy of the row-major cell slice.
func (f *Frame) Cells() []Color {
	out := make([]Color, len(f.cells))
	copy(out, f.cells)
	return out
}

// PaintTo copies the frame into dst, substituting bg for background cells,
// then presents dst.
func (f *Frame) PaintTo(dst PixelSink, bg Color) {
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			c := f.cells[y*f.width+x]
			if c == ColorBackground {
				c = bg
			}
			dst.SetPixel(x, y, c)
		}
	}
	dst.Present()
}
