package agent

import (
	"isolation/experiments/metrics"
	"isolation/game"
)

// Submit hands a chosen action to the engine. It may be called more than
// once; the engine honours the last action submitted before its time limit.
type Submit func(game.Action)

type Agent interface {
	// Decide submits at least one legal action for the player to move in state
	Decide(state game.State, submit Submit) error
}

// Reporter is implemented by agents that record metrics about their last decision
type Reporter interface {
	LastMetric() metrics.MoveMetric
}

// Decision kinds recorded in metrics.MoveMetric
const (
	Single   = "single"   // Only one legal action
	Opening  = "opening"  // Random opening action
	Search   = "search"   // Action chosen by a searcher
	Fallback = "fallback" // Random action after the searcher failed
	Random   = "random"   // Random baseline
	Greedy   = "greedy"   // One-ply mobility baseline
)
