package searcher

import (
	"errors"
	"isolation/game"
	"math"
)

// ExplorationConstant weighs the UCT exploration term during tree policy
const ExplorationConstant = 1 / math.Sqrt2

// Rollout outcomes, from the perspective of the player who moved into the
// rolled out node (negate for the opponent)
const WIN = 1.0
const LOSS = -WIN

var (
	// ErrEmptyActionSet is returned when a search starts from a non-terminal
	// state without legal actions.
	ErrEmptyActionSet = errors.New("state has no legal actions")
	// ErrNoMoveFound is returned when a search completes without a move.
	ErrNoMoveFound = errors.New("search found no move")
)

type Searcher interface {
	Search(state game.State) (game.Action, error)
	Name() string
}
