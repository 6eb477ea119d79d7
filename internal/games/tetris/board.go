package tetris

import "github.com/vovakirdan/led-arcade/internal/core"

// spawnCheckY is the highest origin row the placement search and
// DropRestY start from.
const spawnCheckY = -2

// Board is the settled-cell grid. Zero means empty.
type Board struct {
	w, h  int
	cells []core.Color
}

// NewBoard creates an empty board.
func NewBoard(w, h int) *Board {
	return &Board{w: w, h: h, cells: make([]core.Color, w*h)}
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.w }

// Height returns the number of rows.
func (b *Board) Height() int { return b.h }

// At returns the cell color, or empty for out-of-range coordinates.
func (b *Board) At(x, y int) core.Color {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return 0
	}
	return b.cells[y*b.w+x]
}

// Set writes a cell; out-of-range writes are dropped.
func (b *Board) Set(x, y int, c core.Color) {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return
	}
	b.cells[y*b.w+x] = c
}

// Clear empties every cell.
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = 0
	}
}

// Fits reports whether the pose can occupy origin (x, y).
// Cells above the top edge are allowed and never checked against the board.
func (b *Board) Fits(p PieceType, rot, x, y int) bool {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if !shapes[p][rot&3][r][c] {
				continue
			}
			bx, by := x+c, y+r
			if bx < 0 || bx >= b.w || by >= b.h {
				return false
			}
			if by >= 0 && b.cells[by*b.w+bx] != 0 {
				return false
			}
		}
	}
	return true
}

// DropRestY returns the deepest origin row the pose reaches by falling
// straight down from the spawn check row.
func (b *Board) DropRestY(p PieceType, rot, x int) int {
	y := spawnCheckY
	for b.Fits(p, rot, x, y+1) {
		y++
	}
	return y
}

// Lock writes the pose into the board with color c.
// Cells above the top edge are discarded.
func (b *Board) Lock(p PieceType, rot, x, y int, c core.Color) {
	for _, cell := range cellsOf(p, rot) {
		b.Set(x+cell.X, y+cell.Y, c)
	}
}

// lift undoes Lock for a hypothetical placement.
func (b *Board) lift(p PieceType, rot, x, y int) {
	b.Lock(p, rot, x, y, 0)
}

// rowFull reports whether every cell of row y is occupied.
func (b *Board) rowFull(y int) bool {
	row := b.cells[y*b.w : (y+1)*b.w]
	for _, c := range row {
		if c == 0 {
			return false
		}
	}
	return true
}

// FullRows returns the indices of completed rows, top to bottom.
func (b *Board) FullRows() []int {
	var rows []int
	for y := 0; y < b.h; y++ {
		if b.rowFull(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// RemoveRows deletes the given rows (ascending order), shifting everything
// above each one down and clearing the top row.
func (b *Board) RemoveRows(rows []int) {
	for _, row := range rows {
		if row < 0 || row >= b.h {
			continue
		}
		copy(b.cells[b.w:(row+1)*b.w], b.cells[0:row*b.w])
		for x := 0; x < b.w; x++ {
			b.cells[x] = 0
		}
	}
}

// metrics are the shape features the placement heuristic weighs.
type metrics struct {
	aggregateHeight int
	completedLines  int
	holes           int
	bumpiness       int
}

// measure computes heuristic features over the current cells.
func (b *Board) measure() metrics {
	var m metrics
	prevHeight := 0
	for x := 0; x < b.w; x++ {
		height := 0
		filled := false
		for y := 0; y < b.h; y++ {
			if b.cells[y*b.w+x] != 0 {
				if !filled {
					height = b.h - y
					filled = true
				}
			} else if filled {
				m.holes++
			}
		}
		m.aggregateHeight += height
		if x > 0 {
			m.bumpiness += core.Abs(prevHeight - height)
		}
		prevHeight = height
	}
	for y := 0; y < b.h; y++ {
		if b.rowFull(y) {
			m.completedLines++
		}
	}
	return m
}
