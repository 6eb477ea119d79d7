package tetris

import (
	"math/rand"

	"github.com/vovakirdan/led-arcade/internal/core"
)

// Heuristic weights for a candidate placement.
const (
	weightHeight    = -0.35
	weightLines     = 1.40
	weightHoles     = -0.50
	weightBumpiness = -0.15
)

// hypothetical marks cells of a trial placement; any non-zero value works.
const hypothetical core.Color = 1

// Placement is one candidate landing pose.
type Placement struct {
	X     int
	Rot   int
	Score float64
}

// Searcher evaluates every legal drop of a piece and picks one,
// occasionally settling for a near-best option.
type Searcher struct {
	Skill       int     // percent chance of taking the best placement
	TopN        int     // size of the alternative pool
	ScoreJitter float64 // max absolute random offset added to each score
}

// Result is the outcome of a search.
type Result struct {
	Best       Placement
	Pool       []Placement // up to TopN high scorers, unordered
	Candidates int
}

// Search scores all reachable placements of p on b.
// The board is restored before Search returns.
func (s Searcher) Search(b *Board, p PieceType, rng *rand.Rand) Result {
	topN := s.TopN
	if topN < 1 {
		topN = 1
	}
	res := Result{
		Best: Placement{X: b.w/2 - 2, Rot: 0, Score: -999999},
		Pool: make([]Placement, 0, topN),
	}

	for rot := 0; rot < 4; rot++ {
		for x := -2; x < b.w; x++ {
			if !b.Fits(p, rot, x, spawnCheckY) {
				continue
			}
			landY := b.DropRestY(p, rot, x)
			if landY < spawnCheckY+1 {
				continue
			}

			score := s.jitter(rng) + evaluate(b, p, rot, x, landY)
			cand := Placement{X: x, Rot: rot, Score: score}
			res.Candidates++

			if score > res.Best.Score {
				res.Best = cand
			}

			if len(res.Pool) < topN {
				res.Pool = append(res.Pool, cand)
				continue
			}
			worst := 0
			for i := 1; i < len(res.Pool); i++ {
				if res.Pool[i].Score < res.Pool[worst].Score {
					worst = i
				}
			}
			if score > res.Pool[worst].Score {
				res.Pool[worst] = cand
			}
		}
	}
	return res
}

// Choose runs Search and applies the skill roll.
func (s Searcher) Choose(b *Board, p PieceType, rng *rand.Rand) Placement {
	res := s.Search(b, p, rng)
	if rng.Intn(100) < 100-s.Skill && len(res.Pool) > 1 {
		return res.Pool[rng.Intn(len(res.Pool))]
	}
	return res.Best
}

// jitter returns a uniform offset in hundredths within ±ScoreJitter.
func (s Searcher) jitter(rng *rand.Rand) float64 {
	n := int(s.ScoreJitter*100 + 0.5)
	if n <= 0 || rng == nil {
		return 0
	}
	return float64(rng.Intn(2*n+1)-n) / 100
}

// evaluate places the pose at landY, scores the board and lifts it again.
func evaluate(b *Board, p PieceType, rot, x, landY int) float64 {
	b.Lock(p, rot, x, landY, hypothetical)
	m := b.measure()
	b.lift(p, rot, x, landY)

	return weightHeight*float64(m.aggregateHeight) +
		weightLines*float64(m.completedLines) +
		weightHoles*float64(m.holes) +
		weightBumpiness*float64(m.bumpiness)
}
