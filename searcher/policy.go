package searcher

import (
	"isolation/utils"
	"math"

	"golang.org/x/exp/rand"
)

type uct struct {
	exploration float64
	numerator   float64
}

func newUCT(exploration float64, N int) *uct {
	if N == 0 {
		panic("N cannot be 0")
	}
	return &uct{exploration: exploration, numerator: 2 * math.Log(float64(N))}
}

func (u uct) evaluate(q float64, n int) float64 {
	if n == 0 {
		panic("n cannot be 0")
	}
	// UCT = q/n + c*sqrt(2*ln(N)/n)
	return q/float64(n) + u.exploration*math.Sqrt(u.numerator/float64(n))
}

// bestChild returns the child with the highest UCT score, breaking exact ties
// uniformly at random. It reports false for a node without children.
func (t *tree) bestChild(id int, exploration float64, r *rand.Rand) (int, bool) {
	n := &t.nodes[id]
	if len(n.children) == 0 {
		return id, false
	}

	policy := newUCT(exploration, n.visits)
	var best []int
	bestScore := math.Inf(-1)
	for _, child := range n.children {
		c := &t.nodes[child]
		score := policy.evaluate(c.reward, c.visits)
		if score > bestScore {
			best = []int{child}
			bestScore = score
		} else if score == bestScore {
			best = append(best, child)
		}
	}
	return utils.Choice(r, best), true
}
