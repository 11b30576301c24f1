package searcher

import (
	"isolation/game"

	"golang.org/x/exp/slices"
)

const noParent = -1

// node is a search tree node addressed by its index in the tree arena. A
// parent always has a smaller index than its children.
type node struct {
	state    game.State
	parent   int
	action   game.Action // Action from parent to this node
	depth    int
	reward   float64
	visits   int // Starts at 1 so scoring never divides by zero
	children []int
	expanded []game.Action
	actions  []game.Action // Cached state.Actions()
}

// tree owns every node of one search and is discarded as a unit
type tree struct {
	nodes    []node
	maxDepth int
}

func newTree(state game.State) *tree {
	return &tree{
		nodes: []node{{
			state:  state,
			parent: noParent,
			action: game.NoLocation,
			visits: 1,
		}},
	}
}

func (t *tree) root() *node {
	return &t.nodes[0]
}

func (t *tree) actions(id int) []game.Action {
	n := &t.nodes[id]
	if n.actions == nil {
		n.actions = n.state.Actions()
	}
	return n.actions
}

func (t *tree) fullyExpanded(id int) bool {
	return len(t.nodes[id].expanded) == len(t.actions(id))
}

// unexpanded lists the actions of a node without a child yet, in the state's
// action order
func (t *tree) unexpanded(id int) []game.Action {
	expanded := t.nodes[id].expanded
	var actions []game.Action
	for _, a := range t.actions(id) {
		if !slices.Contains(expanded, a) {
			actions = append(actions, a)
		}
	}
	return actions
}

// expand adds a child for one unexpanded action. It reports false when every
// action already has a child.
func (t *tree) expand(id int) (int, bool, error) {
	actions := t.unexpanded(id)
	if len(actions) == 0 {
		return id, false, nil
	}
	action := actions[0]
	state, err := t.nodes[id].state.Result(action)
	if err != nil {
		return id, false, err
	}
	return t.addChild(id, action, state), true, nil
}

func (t *tree) addChild(parent int, action game.Action, state game.State) int {
	depth := t.nodes[parent].depth + 1
	t.nodes = append(t.nodes, node{
		state:  state,
		parent: parent,
		action: action,
		depth:  depth,
		visits: 1,
	})
	child := len(t.nodes) - 1

	p := &t.nodes[parent]
	p.children = append(p.children, child)
	p.expanded = append(p.expanded, action)
	if depth > t.maxDepth {
		t.maxDepth = depth
	}
	return child
}

// backup adds reward to the node and every ancestor, negating it at each
// level so each node holds the reward of the player who moved into it.
func (t *tree) backup(id int, reward float64) {
	for id != noParent {
		n := &t.nodes[id]
		n.visits++
		n.reward += reward
		reward = -reward
		id = n.parent
	}
}

func (t *tree) size() int {
	return len(t.nodes)
}
