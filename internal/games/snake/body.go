package snake

import "github.com/vovakirdan/led-arcade/internal/core"

// Body is the snake as a fixed-capacity ring buffer of cells.
// Every mutation keeps the per-row occupancy mask in step with the buffer.
type Body struct {
	bounds core.Rect
	ring   []core.Point
	head   int
	length int
	rows   []uint64
}

// NewBody creates an empty body for a w×h grid. Width must not exceed 64.
func NewBody(w, h int) *Body {
	bounds := core.NewRect(0, 0, w, h)
	return &Body{
		bounds: bounds,
		ring:   make([]core.Point, bounds.Area()),
		rows:   make([]uint64, h),
	}
}

// Reset replaces the body with cells, ordered tail first and head last.
func (b *Body) Reset(cells ...core.Point) {
	for i := range b.rows {
		b.rows[i] = 0
	}
	b.length = 0
	b.head = len(b.ring) - 1
	for _, c := range cells {
		b.PushHead(c)
	}
}

// Len returns the number of cells in the body.
func (b *Body) Len() int {
	return b.length
}

// Cap returns the largest possible length.
func (b *Body) Cap() int {
	return len(b.ring)
}

// Head returns the head cell.
func (b *Body) Head() core.Point {
	return b.ring[b.head]
}

// Tail returns the tail cell.
func (b *Body) Tail() core.Point {
	return b.At(b.length - 1)
}

// At returns the i-th cell counting from the head (0 = head).
func (b *Body) At(i int) core.Point {
	n := len(b.ring)
	return b.ring[(b.head-i+n*2)%n]
}

// PushHead adds p as the new head. The body must not be full.
func (b *Body) PushHead(p core.Point) {
	b.head = (b.head + 1) % len(b.ring)
	b.ring[b.head] = p
	b.length++
	b.occupy(p)
}

// PopTail removes and returns the tail cell.
func (b *Body) PopTail() core.Point {
	t := b.Tail()
	b.length--
	b.vacate(t)
	return t
}

// Occupied reports whether p is covered by the body.
// Cells outside the grid count as occupied.
func (b *Body) Occupied(p core.Point) bool {
	if !b.inBounds(p) {
		return true
	}
	return b.rows[p.Y]>>uint(p.X)&1 == 1
}

// Free returns the number of cells not covered by the body.
func (b *Body) Free() int {
	return b.bounds.Area() - b.length
}

func (b *Body) inBounds(p core.Point) bool {
	return b.bounds.Contains(p.X, p.Y)
}

func (b *Body) occupy(p core.Point) {
	if b.inBounds(p) {
		b.rows[p.Y] |= 1 << uint(p.X)
	}
}

func (b *Body) vacate(p core.Point) {
	if b.inBounds(p) {
		b.rows[p.Y] &^= 1 << uint(p.X)
	}
}

// rebuildMask derives the occupancy mask from the ring buffer alone.
func (b *Body) rebuildMask() []uint64 {
	rows := make([]uint64, b.bounds.H)
	for i := 0; i < b.length; i++ {
		p := b.At(i)
		if b.inBounds(p) {
			rows[p.Y] |= 1 << uint(p.X)
		}
	}
	return rows
}

// Consistent reports whether the cached mask matches the buffer.
func (b *Body) Consistent() bool {
	want := b.rebuildMask()
	for y := range want {
		if want[y] != b.rows[y] {
			return false
		}
	}
	return true
}
