package tetris

import (
	"testing"

	"github.com/vovakirdan/led-arcade/internal/core"
)

var testColor = core.RGB(9, 9, 9)

func fillRow(b *Board, y int, except ...int) {
	skip := make(map[int]bool, len(except))
	for _, x := range except {
		skip[x] = true
	}
	for x := 0; x < b.Width(); x++ {
		if !skip[x] {
			b.Set(x, y, testColor)
		}
	}
}

func TestShapeCellCounts(t *testing.T) {
	for p := PieceI; p < pieceCount; p++ {
		for rot := 0; rot < 4; rot++ {
			if n := len(cellsOf(p, rot)); n != 4 {
				t.Errorf("%v rot %d has %d cells, expected 4", p, rot, n)
			}
		}
	}
}

func TestShapeExamples(t *testing.T) {
	// I in rotation 0 is a horizontal bar on the second row of its box
	for c := 0; c < 4; c++ {
		if !Cell(PieceI, 0, 1, c) {
			t.Errorf("I rot 0 should occupy (row 1, col %d)", c)
		}
		if Cell(PieceI, 0, 0, c) {
			t.Errorf("I rot 0 should not occupy (row 0, col %d)", c)
		}
	}
	// T in rotation 1 points right
	want := [][2]int{{0, 1}, {1, 1}, {1, 2}, {2, 1}}
	for _, rc := range want {
		if !Cell(PieceT, 1, rc[0], rc[1]) {
			t.Errorf("T rot 1 should occupy (row %d, col %d)", rc[0], rc[1])
		}
	}
	if Cell(PieceT, 0, 4, 0) || Cell(PieceType(9), 0, 0, 0) {
		t.Error("Cell() should be false outside the table")
	}
}

func TestFitsBounds(t *testing.T) {
	b := NewBoard(16, 16)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"left edge", 0, 0, true},
		{"past left edge", -1, 0, false},
		{"right edge", 12, 0, true},
		{"past right edge", 13, 0, false},
		{"bottom row", 0, 14, true},
		{"below bottom", 0, 15, false},
		{"far above top", 4, -10, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Fits(PieceI, 0, tc.x, tc.y); got != tc.expected {
				t.Errorf("Fits(I, 0, %d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestFitsIgnoresBoardAboveTop(t *testing.T) {
	b := NewBoard(16, 16)
	b.Set(6, 0, testColor)

	if b.Fits(PieceI, 0, 6, -1) {
		t.Error("I at y=-1 occupies row 0 and should collide")
	}
	if !b.Fits(PieceI, 0, 6, -2) {
		t.Error("I at y=-2 is entirely above the board and should fit")
	}
}

func TestDropRestYEmptyBoard(t *testing.T) {
	b := NewBoard(16, 16)

	rest := b.DropRestY(PieceI, 0, 6)
	if rest != 14 {
		t.Errorf("DropRestY(I, 0, 6) = %d, expected origin row 14", rest)
	}

	lowest := -1
	for _, c := range cellsOf(PieceI, 0) {
		lowest = max(lowest, rest+c.Y)
	}
	if lowest != 15 {
		t.Errorf("resting I occupies row %d, expected bottom row 15", lowest)
	}
}

func TestDropRestYIsDeepestFit(t *testing.T) {
	b := NewBoard(10, 12)
	fillRow(b, 11, 3, 4)
	fillRow(b, 10, 3, 4, 5)
	b.Set(8, 6, testColor)

	for p := PieceI; p < pieceCount; p++ {
		for rot := 0; rot < 4; rot++ {
			for x := -2; x < b.Width(); x++ {
				if !b.Fits(p, rot, x, spawnCheckY) {
					continue
				}
				rest := b.DropRestY(p, rot, x)
				if !b.Fits(p, rot, x, rest) {
					t.Errorf("%v rot %d x %d: rest %d does not fit", p, rot, x, rest)
				}
				if b.Fits(p, rot, x, rest+1) {
					t.Errorf("%v rot %d x %d: rest %d is not the deepest", p, rot, x, rest)
				}
			}
		}
	}
}

func TestLockDiscardsCellsAboveTop(t *testing.T) {
	b := NewBoard(16, 16)
	b.Lock(PieceI, 1, 4, -2, testColor) // vertical bar in column 6, rows -2..1

	count := 0
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if b.At(x, y) != 0 {
				count++
			}
		}
	}
	if count != 2 {
		t.Errorf("Lock() wrote %d cells, expected 2 on-board cells", count)
	}
}

func TestFullRowsAndRemoveRows(t *testing.T) {
	b := NewBoard(8, 6)
	fillRow(b, 5)
	fillRow(b, 4)
	fillRow(b, 3, 2)
	b.Set(1, 2, core.ColorWhite)

	rows := b.FullRows()
	if len(rows) != 2 || rows[0] != 4 || rows[1] != 5 {
		t.Fatalf("FullRows() = %v, expected [4 5]", rows)
	}

	b.RemoveRows(rows)

	if b.At(1, 4) != core.ColorWhite {
		t.Errorf("marker should shift down two rows to (1,4)")
	}
	if b.At(2, 5) != 0 || b.At(0, 5) != testColor {
		t.Errorf("partial row should land on the bottom with its gap intact")
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			if b.At(x, y) != 0 {
				t.Errorf("cell (%d,%d) should be empty after removal", x, y)
			}
		}
	}
	if len(b.FullRows()) != 0 {
		t.Error("no full rows should remain")
	}
}

func TestMeasure(t *testing.T) {
	b := NewBoard(4, 4)
	// Column heights 2,0,3,1; one hole in column 2
	b.Set(0, 2, testColor)
	b.Set(0, 3, testColor)
	b.Set(2, 1, testColor)
	b.Set(2, 3, testColor)
	b.Set(3, 3, testColor)

	m := b.measure()
	if m.aggregateHeight != 6 {
		t.Errorf("aggregateHeight = %d, expected 6", m.aggregateHeight)
	}
	if m.holes != 1 {
		t.Errorf("holes = %d, expected 1", m.holes)
	}
	if m.bumpiness != 2+3+2 {
		t.Errorf("bumpiness = %d, expected 7", m.bumpiness)
	}
	if m.completedLines != 0 {
		t.Errorf("completedLines = %d, expected 0", m.completedLines)
	}
}
