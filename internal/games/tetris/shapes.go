package tetris

import "github.com/vovakirdan/led-arcade/internal/core"

// PieceType identifies one of the seven tetrominoes.
type PieceType int

const (
	PieceI PieceType = iota
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceL
	PieceJ
	pieceCount
)

// String returns the conventional letter for the piece.
func (p PieceType) String() string {
	if p < 0 || p >= pieceCount {
		return "?"
	}
	return "IOTSZLJ"[p : p+1]
}

const (
	xx = true
	__ = false
)

// shapes[type][rotation][row][col] is the 4×4 occupancy of every pose.
// Rotation r+1 is r turned a quarter clockwise.
var shapes = [pieceCount][4][4][4]bool{
	PieceI: {
		{
			{__, __, __, __},
			{xx, xx, xx, xx},
			{__, __, __, __},
			{__, __, __, __},
		},
		{
			{__, __, xx, __},
			{__, __, xx, __},
			{__, __, xx, __},
			{__, __, xx, __},
		},
		{
			{__, __, __, __},
			{__, __, __, __},
			{xx, xx, xx, xx},
			{__, __, __, __},
		},
		{
			{__, xx, __, __},
			{__, xx, __, __},
			{__, xx, __, __},
			{__, xx, __, __},
		},
	},
	PieceO: {
		{
			{__, xx, xx, __},
			{__, xx, xx, __},
			{__, __, __, __},
			{__, __, __, __},
		},
		{
			{__, xx, xx, __},
			{__, xx, xx, __},
			{__, __, __, __},
			{__, __, __, __},
		},
		{
			{__, xx, xx, __},
			{__, xx, xx, __},
			{__, __, __, __},
			{__, __, __, __},
		},
		{
			{__, xx, xx, __},
			{__, xx, xx, __},
			{__, __, __, __},
			{__, __, __, __},
		},
	},
	PieceT: {
		{
			{__, xx, __, __},
			{xx, xx, xx, __},
			{__, __, __, __},
			{__, __, __, __},
		},
		{
			{__, xx, __, __},
			{__, xx, xx, __},
			{__, xx, __, __},
			{__, __, __, __},
		},
		{
			{__, __, __, __},
			{xx, xx, xx, __},
			{__, xx, __, __},
			{__, __, __, __},
		},
		{
			{__, xx, __, __},
			{xx, xx, __, __},
			{__, xx, __, __},
			{__, __, __, __},
		},
	},
	PieceS: {
		{
			{__, xx, xx, __},
			{xx, xx, __, __},
			{__, __, __, __},
			{__, __, __, __},
		},
		{
			{__, xx, __, __},
			{__, xx, xx, __},
			{__, __, xx, __},
			{__, __, __, __},
		},
		{
			{__, __, __, __},
			{__, xx, xx, __},
			{xx, xx, __, __},
			{__, __, __, __},
		},
		{
			{xx, __, __, __},
			{xx, xx, __, __},
			{__, xx, __, __},
			{__, __, __, __},
		},
	},
	PieceZ: {
		{
			{xx, xx, __, __},
			{__, xx, xx, __},
			{__, __, __, __},
			{__, __, __, __},
		},
		{
			{__, __, xx, __},
			{__, xx, xx, __},
			{__, xx, __, __},
			{__, __, __, __},
		},
		{
			{__, __, __, __},
			{xx, xx, __, __},
			{__, xx, xx, __},
			{__, __, __, __},
		},
		{
			{__, xx, __, __},
			{xx, xx, __, __},
			{xx, __, __, __},
			{__, __, __, __},
		},
	},
	PieceL: {
		{
			{__, __, xx, __},
			{xx, xx, xx, __},
			{__, __, __, __},
			{__, __, __, __},
		},
		{
			{__, xx, __, __},
			{__, xx, __, __},
			{__, xx, xx, __},
			{__, __, __, __},
		},
		{
			{__, __, __, __},
			{xx, xx, xx, __},
			{xx, __, __, __},
			{__, __, __, __},
		},
		{
			{xx, xx, __, __},
			{__, xx, __, __},
			{__, xx, __, __},
			{__, __, __, __},
		},
	},
	PieceJ: {
		{
			{xx, __, __, __},
			{xx, xx, xx, __},
			{__, __, __, __},
			{__, __, __, __},
		},
		{
			{__, xx, xx, __},
			{__, xx, __, __},
			{__, xx, __, __},
			{__, __, __, __},
		},
		{
			{__, __, __, __},
			{xx, xx, xx, __},
			{__, __, xx, __},
			{__, __, __, __},
		},
		{
			{__, xx, __, __},
			{__, xx, __, __},
			{xx, xx, __, __},
			{__, __, __, __},
		},
	},
}

// pieceColors are the fixed per-type colors.
var pieceColors = [pieceCount]core.Color{
	PieceI: core.RGB(0, 240, 240),
	PieceO: core.RGB(240, 240, 0),
	PieceT: core.RGB(160, 0, 240),
	PieceS: core.RGB(0, 240, 0),
	PieceZ: core.RGB(240, 0, 0),
	PieceL: core.RGB(240, 60, 150),
	PieceJ: core.RGB(0, 0, 240),
}

// Cell reports whether (row, col) of the 4×4 box is occupied for the pose.
func Cell(p PieceType, rot, row, col int) bool {
	if p < 0 || p >= pieceCount || row < 0 || row > 3 || col < 0 || col > 3 {
		return false
	}
	return shapes[p][rot&3][row][col]
}

// Color returns the fixed color of a piece type.
func (p PieceType) Color() core.Color {
	return pieceColors[p]
}

// cellsOf returns the occupied cells of a pose relative to its origin.
func cellsOf(p PieceType, rot int) []core.Point {
	cells := make([]core.Point, 0, 4)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if shapes[p][rot&3][r][c] {
				cells = append(cells, core.Point{X: c, Y: r})
			}
		}
	}
	return cells
}
