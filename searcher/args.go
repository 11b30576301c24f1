package searcher

import (
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/meta"
	"isolation/utils"
	"time"

	"golang.org/x/exp/rand"
)

// Hyperparameters shared by the UCT and minimax searchers

type config struct {
	iterations  int
	duration    time.Duration
	exploration float64
	depth       int
	evaluate    game.Evaluate
	rand        *rand.Rand
	metrics     metrics.Collector
}

type Option func(c *config)

func newConfig(options []Option) config {
	c := config{ // Default values
		iterations:  meta.ITERATIONS,
		exploration: ExplorationConstant,
		depth:       meta.DEPTH,
		evaluate:    game.Mobility,
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&c)
	}
	if c.rand == nil {
		c.rand = utils.NewRand(uint64(time.Now().UnixNano()))
	}
	return c
}

// WithIterations sets the UCT iteration budget
func WithIterations(iterations int) Option {
	return func(c *config) {
		if iterations > 0 {
			c.iterations = iterations
		}
	}
}

// WithDuration stops UCT once duration has elapsed, checked before each
// iteration starts so an iteration is never abandoned halfway.
func WithDuration(duration time.Duration) Option {
	return func(c *config) {
		if duration > 0 {
			c.duration = duration
		}
	}
}

func WithExplorationConstant(exploration float64) Option {
	return func(c *config) {
		if exploration >= 0 {
			c.exploration = exploration
		}
	}
}

// WithDepth sets the maximum iterative deepening depth of minimax
func WithDepth(depth int) Option {
	return func(c *config) {
		if depth > 0 {
			c.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(c *config) {
		if evaluate != nil {
			c.evaluate = evaluate
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rand = utils.NewRand(seed)
	}
}

func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rand = r
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(c *config) {
		if collector != nil {
			c.metrics = collector
		}
	}
}
