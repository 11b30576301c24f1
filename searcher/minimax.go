package searcher

import (
	"isolation/game"
	"isolation/utils"
	"math"

	"github.com/rs/zerolog/log"
)

// Minimax is a depth-limited alpha-beta searcher with iterative deepening.
// Leaves are evaluated from one fixed player's perspective for the whole
// search, and terminal states score Utility(0).
type Minimax struct {
	config
}

func NewMinimax(options ...Option) *Minimax {
	return &Minimax{config: newConfig(options)}
}

func (m *Minimax) Name() string {
	return "alphabeta"
}

// Search runs iterative deepening for the player to move in state
func (m *Minimax) Search(state game.State) (game.Action, error) {
	if state == nil {
		panic("cannot search a nil state")
	}
	return m.IterativeDeepening(state, state.Player(), m.depth)
}

// IterativeDeepening runs AlphaBeta at depths 1 to maxDepth and keeps the
// deepest move found. Without any move it picks a random legal action.
func (m *Minimax) IterativeDeepening(state game.State, player game.Player, maxDepth int) (game.Action, error) {
	actions := state.Actions()
	if len(actions) == 0 {
		return game.NoLocation, ErrEmptyActionSet
	}

	m.metrics.Start(m.Name())
	best := game.NoLocation
	found := false
	for depth := 1; depth <= maxDepth; depth++ {
		move, ok, err := m.alphaBeta(state, player, depth)
		if err != nil {
			return game.NoLocation, err
		}
		if ok {
			best = move
			found = true
		}
		log.Debug().Int("depth", depth).Bool("found", ok).Stringer("move", move).Msg("alpha-beta depth complete")
	}

	if !found {
		best = utils.Choice(m.rand, actions)
		log.Debug().Stringer("move", best).Msg("alpha-beta found no move, playing at random")
	}
	return best, nil
}

// AlphaBeta returns the root action with the strictly highest minimax value
// at the given depth; the first action wins ties.
func (m *Minimax) AlphaBeta(state game.State, player game.Player, depth int) (game.Action, error) {
	if len(state.Actions()) == 0 {
		return game.NoLocation, ErrEmptyActionSet
	}
	move, ok, err := m.alphaBeta(state, player, depth)
	if err != nil {
		return game.NoLocation, err
	}
	if !ok {
		return game.NoLocation, ErrNoMoveFound
	}
	return move, nil
}

func (m *Minimax) alphaBeta(state game.State, player game.Player, depth int) (game.Action, bool, error) {
	alpha := math.Inf(-1)
	beta := math.Inf(1)
	bestScore := math.Inf(-1)
	best := game.NoLocation
	found := false

	for _, a := range state.Actions() {
		next, err := state.Result(a)
		if err != nil {
			return game.NoLocation, false, err
		}
		v, err := m.minValue(next, player, alpha, beta, depth-1)
		if err != nil {
			return game.NoLocation, false, err
		}
		alpha = math.Max(alpha, v)
		if v > bestScore {
			bestScore = v
			best = a
			found = true
		}
	}
	return best, found, nil
}

func (m *Minimax) minValue(state game.State, player game.Player, alpha, beta float64, depth int) (float64, error) {
	m.metrics.AddNode()
	if state.IsTerminal() {
		return state.Utility(0), nil
	}
	if depth <= 0 {
		m.metrics.AddEvaluation()
		return m.evaluate(state, player), nil
	}

	v := math.Inf(1)
	for _, a := range state.Actions() {
		next, err := state.Result(a)
		if err != nil {
			return 0, err
		}
		value, err := m.maxValue(next, player, alpha, beta, depth-1)
		if err != nil {
			return 0, err
		}
		v = math.Min(v, value)
		if v <= alpha {
			m.metrics.AddCutoff()
			return v, nil
		}
		beta = math.Min(beta, v)
	}
	return v, nil
}

func (m *Minimax) maxValue(state game.State, player game.Player, alpha, beta float64, depth int) (float64, error) {
	m.metrics.AddNode()
	if state.IsTerminal() {
		return state.Utility(0), nil
	}
	if depth <= 0 {
		m.metrics.AddEvaluation()
		return m.evaluate(state, player), nil
	}

	v := math.Inf(-1)
	for _, a := range state.Actions() {
		next, err := state.Result(a)
		if err != nil {
			return 0, err
		}
		value, err := m.minValue(next, player, alpha, beta, depth-1)
		if err != nil {
			return 0, err
		}
		v = math.Max(v, value)
		if v >= beta {
			m.metrics.AddCutoff()
			return v, nil
		}
		alpha = math.Max(alpha, v)
	}
	return v, nil
}
