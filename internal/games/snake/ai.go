package snake

import "github.com/vovakirdan/led-arcade/internal/core"

// AI scoring weights.
const (
	distanceWeight = 10
	trapPenalty    = 5000
	reachDivisor   = 4
	straightBonus  = 5
	scoreFloor     = -9999
)

// aiChoose picks the next heading: greedy toward the food, penalizing
// moves whose reachable area is smaller than the snake.
func (g *Game) aiChoose() Direction {
	head := g.body.Head()
	tail := g.body.Tail()

	// The tail vacates this step unless the move eats.
	g.body.vacate(tail)
	defer g.body.occupy(tail)

	best, bestScore := g.dir, scoreFloor
	for d := DirUp; d <= DirLeft; d++ {
		if d == g.dir.Reverse() {
			continue
		}
		next := d.Step(head)
		if g.body.Occupied(next) {
			continue
		}

		score := -distanceWeight * next.Manhattan(g.food)
		reach := g.body.FloodFill(next)
		if reach < g.body.Len() {
			score -= trapPenalty
		} else {
			score += reach / reachDivisor
		}
		if d == g.dir {
			score += straightBonus
		}

		if score > bestScore {
			best, bestScore = d, score
		}
	}
	return best
}

// FloodFill counts the empty cells reachable from start, start included.
// An occupied or off-grid start reaches nothing.
func (b *Body) FloodFill(start core.Point) int {
	if b.Occupied(start) {
		return 0
	}
	visited := make([]uint64, len(b.rows))
	copy(visited, b.rows)

	queue := make([]core.Point, 0, b.bounds.Area())
	queue = append(queue, start)
	visited[start.Y] |= 1 << uint(start.X)

	for i := 0; i < len(queue); i++ {
		cur := queue[i]
		for d := DirUp; d <= DirLeft; d++ {
			n := d.Step(cur)
			if !b.inBounds(n) || visited[n.Y]>>uint(n.X)&1 == 1 {
				continue
			}
			visited[n.Y] |= 1 << uint(n.X)
			queue = append(queue, n)
		}
	}
	return len(queue)
}
