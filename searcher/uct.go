package searcher

import (
	"fmt"
	"isolation/game"
	"isolation/utils"
	"time"

	"github.com/rs/zerolog/log"
)

// UCT is a single-threaded Monte Carlo tree searcher with a fixed iteration
// budget and an optional wall-clock cutoff.
type UCT struct {
	config
}

func NewUCT(options ...Option) *UCT {
	return &UCT{config: newConfig(options)}
}

func (u *UCT) Name() string {
	return "uct"
}

// Search builds a fresh tree from state and returns the root action with the
// highest mean reward.
func (u *UCT) Search(state game.State) (game.Action, error) {
	t, err := u.buildTree(state)
	if err != nil {
		return game.NoLocation, err
	}

	child, ok := t.bestChild(0, 0, u.rand)
	if !ok {
		return game.NoLocation, ErrNoMoveFound
	}
	return t.nodes[child].action, nil
}

func (u *UCT) buildTree(state game.State) (*tree, error) {
	if state == nil {
		panic("cannot search a nil state")
	}
	if !state.IsTerminal() && len(state.Actions()) == 0 {
		return nil, ErrEmptyActionSet
	}

	u.metrics.Start(u.Name())
	t := newTree(state)
	start := time.Now()
	for i := 0; i < u.iterations; i++ {
		if u.duration > 0 && time.Since(start) >= u.duration {
			break
		}
		if err := u.simulate(t); err != nil {
			return nil, fmt.Errorf("uct iteration %d: %w", i, err)
		}
	}
	u.metrics.SetTree(t.size(), t.maxDepth)

	log.Debug().
		Int("nodes", t.size()).
		Int("depth", t.maxDepth).
		Int("visits", t.root().visits).
		Dur("elapsed", time.Since(start)).
		Msg("uct tree built")
	return t, nil
}

func (u *UCT) simulate(t *tree) error {
	leaf, ok, err := u.treePolicy(t)
	if err != nil {
		return err
	}
	if !ok { // Nothing to expand, skip the backup
		u.metrics.AddSkipped()
		return nil
	}
	reward, err := u.rollout(t.nodes[leaf].state)
	if err != nil {
		return err
	}
	t.backup(leaf, reward)
	u.metrics.AddIteration()
	return nil
}

// treePolicy descends from the root by UCT score until it reaches a node with
// an unexpanded action, which it expands, or a terminal node.
func (u *UCT) treePolicy(t *tree) (int, bool, error) {
	id := 0
	for !t.nodes[id].state.IsTerminal() {
		if !t.fullyExpanded(id) {
			child, ok, err := t.expand(id)
			if ok {
				u.metrics.AddExpansion()
			}
			return child, ok, err
		}
		child, ok := t.bestChild(id, u.exploration, u.rand)
		if !ok {
			return id, true, nil
		}
		id = child
	}
	return id, true, nil
}

// rollout plays uniformly random actions until the game ends. It returns LOSS
// when the player to move at the start still has a liberty at the end, WIN
// otherwise.
func (u *UCT) rollout(state game.State) (float64, error) {
	player := state.Player()
	for !state.IsTerminal() {
		actions := state.Actions()
		if len(actions) == 0 {
			break
		}
		next, err := state.Result(utils.Choice(u.rand, actions))
		if err != nil {
			return 0, err
		}
		state = next
	}

	if len(state.Liberties(state.Location(player))) > 0 {
		return LOSS, nil
	}
	return WIN, nil
}
