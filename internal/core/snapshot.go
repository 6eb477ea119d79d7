package core

// StateSnapshot is an immutable copy of a game's visible state.
// Grid holds GridW*GridH packed RGB values in row-major order;
// zero marks a background cell.
type StateSnapshot struct {
	Game       string  `json:"game"`
	Score      int     `json:"score"`
	Lines      int     `json:"lines"`
	GameOver   bool    `json:"gameOver"`
	Manual     bool    `json:"manual"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Background Color   `json:"background"`
	Grid       []Color `json:"grid"`
}

// NewSnapshot copies frame cells into a snapshot.
func NewSnapshot(game string, st GameState, f *Frame, bg Color) StateSnapshot {
	return StateSnapshot{
		Game:       game,
		Score:      st.Score,
		Lines:      st.Lines,
		GameOver:   st.GameOver,
		Manual:     st.Mode == ModeManual,
		Width:      f.Width(),
		Height:     f.Height(),
		Background: bg,
		Grid:       f.Cells(),
	}
}

// At returns the packed color of a cell, or background when out of range.
func (s StateSnapshot) At(x, y int) Color {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return ColorBackground
	}
	return s.Grid[y*s.Width+x]
}

// Paint draws the snapshot through dst exactly as the live game renders it.
func (s StateSnapshot) Paint(dst PixelSink) {
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			c := s.Grid[y*s.Width+x]
			if c == ColorBackground {
				c = s.Background
			}
			dst.SetPixel(x, y, c)
		}
	}
	dst.Present()
}
