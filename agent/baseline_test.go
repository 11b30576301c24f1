package agent

import (
	"errors"
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/searcher"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRandomAgent(t *testing.T) {
	state := midgame(t)
	a := NewRandom(7)

	for i := 0; i < 50; i++ {
		var submitted []game.Action
		require.NoError(t, a.Decide(state, collect(&submitted)))
		require.Len(t, submitted, 1)
		require.Contains(t, state.Actions(), submitted[0])
	}
	require.Equal(t, Random, a.(Reporter).LastMetric().Decision)

	err := a.Decide(stubState{ply: 4, terminal: true}, func(game.Action) {})
	require.True(t, errors.Is(err, searcher.ErrEmptyActionSet))
}

func TestGreedyAgent(t *testing.T) {
	t.Run("trapping the opponent", func(t *testing.T) {
		state, err := game.NewPosition(2, [2]game.Location{game.At(7, 5), game.At(10, 8)}, game.At(8, 7))
		require.NoError(t, err)
		a := NewGreedy(1)
		var submitted []game.Action

		require.NoError(t, a.Decide(state, collect(&submitted)))

		require.Equal(t, []game.Action{game.At(9, 6)}, submitted)
		require.Equal(t, Greedy, a.(Reporter).LastMetric().Decision)
	})

	t.Run("playing a legal action", func(t *testing.T) {
		state := midgame(t)
		var submitted []game.Action

		require.NoError(t, NewGreedy(2).Decide(state, collect(&submitted)))

		require.Len(t, submitted, 1)
		require.Contains(t, state.Actions(), submitted[0])
	})

	t.Run("signalling an empty action set", func(t *testing.T) {
		err := NewGreedy(1).Decide(stubState{ply: 4, terminal: true}, func(game.Action) {})

		require.True(t, errors.Is(err, searcher.ErrEmptyActionSet))
	})
}

func TestNew(t *testing.T) {
	configs := []metrics.AgentConfig{
		{ID: 0, Strategy: "random"},
		{ID: 1, Strategy: "greedy"},
		{ID: 2, Strategy: "custom", Iterations: 10},
		{ID: 3, Strategy: "custom", Search: "uct", Duration: 50 * time.Millisecond},
		{ID: 4, Strategy: "custom", Search: "alphabeta", Depth: 2},
		{ID: 5, Strategy: "minimax", Depth: 2},
	}
	state := midgame(t)

	for _, config := range configs {
		a, err := New(config, 11)
		require.NoError(t, err, "Config %d", config.ID)
		_, ok := a.(Reporter)
		require.True(t, ok, "Config %d should report metrics", config.ID)

		var submitted []game.Action
		require.NoError(t, a.Decide(state, collect(&submitted)), "Config %d", config.ID)
		require.Len(t, submitted, 1)
		require.Contains(t, state.Actions(), submitted[0], "Config %d", config.ID)
	}

	t.Run("recording search metrics", func(t *testing.T) {
		a, err := New(metrics.AgentConfig{Strategy: "custom", Iterations: 10}, 3)
		require.NoError(t, err)

		require.NoError(t, a.Decide(state, func(game.Action) {}))

		metric := a.(Reporter).LastMetric()
		require.Equal(t, Search, metric.Decision)
		require.Equal(t, "uct", metric.Search)
		require.Equal(t, 10, metric.Iterations)
	})

	t.Run("rejecting unknown strategies", func(t *testing.T) {
		_, err := New(metrics.AgentConfig{Strategy: "oracle"}, 1)
		require.Error(t, err)

		_, err = New(metrics.AgentConfig{Strategy: "custom", Search: "beam"}, 1)
		require.Error(t, err)
	})
}
