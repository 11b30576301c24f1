package agent

import (
	"fmt"
	"isolation/experiments/metrics"
	"isolation/searcher"
	"isolation/utils"
)

// New builds the agent described by config. Searching agents record their
// search metrics into a collector of their own.
func New(config metrics.AgentConfig, seed uint64) (Agent, error) {
	switch config.Strategy {
	case "random":
		return NewRandom(seed), nil
	case "greedy":
		return NewGreedy(seed), nil
	case "custom", "minimax":
	default:
		return nil, fmt.Errorf("unknown agent strategy %q", config.Strategy)
	}

	collector := metrics.NewCollector()
	r := utils.NewRand(seed)
	options := []searcher.Option{searcher.WithRand(r), searcher.WithMetrics(collector)}
	if config.Iterations > 0 {
		options = append(options, searcher.WithIterations(config.Iterations))
	}
	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}

	search := config.Search
	if config.Strategy == "minimax" { // Shorthand for custom with alpha-beta
		search = "alphabeta"
	}

	var s searcher.Searcher
	switch search {
	case "", "uct":
		s = searcher.NewUCT(options...)
	case "alphabeta":
		s = searcher.NewMinimax(options...)
	default:
		return nil, fmt.Errorf("unknown search %q", config.Search)
	}

	return NewCustom(WithSearcher(s), WithMetrics(collector), WithSeed(seed+1)), nil
}
