package agent

import (
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/searcher"
	"isolation/utils"
	"math"
	"sync"
	"time"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	mu   sync.Mutex
	rand *rand.Rand
	last metrics.MoveMetric
}

// NewRandom returns an agent playing uniformly random legal actions
func NewRandom(seed uint64) Agent {
	return &randomAgent{rand: utils.NewRand(seed)}
}

func (a *randomAgent) Decide(state game.State, submit Submit) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	actions := state.Actions()
	if len(actions) == 0 {
		return searcher.ErrEmptyActionSet
	}
	a.last = metrics.MoveMetric{Step: state.PlyCount() + 1, Player: int(state.Player()), Decision: Random}
	submit(utils.Choice(a.rand, actions))
	return nil
}

func (a *randomAgent) LastMetric() metrics.MoveMetric {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.last
}

type greedyAgent struct {
	mu       sync.Mutex
	rand     *rand.Rand
	evaluate game.Evaluate
	last     metrics.MoveMetric
}

// NewGreedy returns an agent maximizing the one-ply mobility score, breaking
// ties at random
func NewGreedy(seed uint64) Agent {
	return &greedyAgent{rand: utils.NewRand(seed), evaluate: game.Mobility}
}

func (a *greedyAgent) Decide(state game.State, submit Submit) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	start := time.Now()
	actions := state.Actions()
	if len(actions) == 0 {
		return searcher.ErrEmptyActionSet
	}

	player := state.Player()
	var best []game.Action
	bestScore := math.Inf(-1)
	for _, action := range actions {
		next, err := state.Result(action)
		if err != nil {
			return err
		}
		score := a.evaluate(next, player)
		if next.IsTerminal() {
			score = next.Utility(player)
		}
		if score > bestScore {
			best = []game.Action{action}
			bestScore = score
		} else if score == bestScore {
			best = append(best, action)
		}
	}

	a.last = metrics.MoveMetric{
		Step:     state.PlyCount() + 1,
		Player:   int(player),
		Decision: Greedy,
		Elapsed:  time.Since(start),
	}
	submit(utils.Choice(a.rand, best))
	return nil
}

func (a *greedyAgent) LastMetric() metrics.MoveMetric {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.last
}
