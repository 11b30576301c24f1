package engine

import (
	"context"
	"errors"
	"isolation/experiments/metrics"
	"isolation/meta"
)

// MaxMoves bounds a game; an Isolation board runs out of squares before it
const MaxMoves = meta.MAX_PLIES

// Forfeit reasons recorded in metrics.GameMetric
const (
	ForfeitTimeout = "timeout" // No action submitted before the time limit
	ForfeitIllegal = "illegal" // Last submitted action is not legal
	ForfeitError   = "error"   // Decide returned an error
)

var (
	ErrNoSubmission = errors.New("no action submitted before the time limit")
	ErrDecide       = errors.New("agent failed to decide")
)

type Engine interface {
	// Run plays a game until the player to move has no liberties or forfeits.
	// It only fails when ctx is cancelled.
	Run(ctx context.Context) (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
