package experiments

import (
	"context"
	"encoding/csv"
	"isolation/experiments/metrics"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	record := func(agent1, agent2, winner int, forfeit string) metrics.GameRecord {
		return metrics.GameRecord{Agent1: agent1, Agent2: agent2, WinningAgent: winner, GameMetric: metrics.GameMetric{Forfeit: forfeit}}
	}
	records := []metrics.GameRecord{
		record(2, 3, 3, ""),
		record(1, 4, 1, ""),
		record(1, 4, 1, ""),
		record(1, 4, 4, "timeout"),
		record(1, 4, 1, ""),
	}

	summaries := Summarize(records)

	require.Len(t, summaries, 2)
	require.Equal(t, 2, summaries[0].Agent, "Matchups keep their order of first appearance")
	require.Equal(t, 3, summaries[0].Opponent)
	require.Equal(t, 1, summaries[0].Games)
	require.Zero(t, summaries[0].WinRate)
	require.Zero(t, summaries[0].StdDev, "A single game has no spread")
	require.Zero(t, summaries[0].Forfeits)

	s := summaries[1]
	require.Equal(t, 4, s.Games)
	require.Equal(t, 3, s.Wins)
	require.Equal(t, 1, s.Forfeits)
	require.InDelta(t, 0.75, s.WinRate, 1e-9)
	require.InDelta(t, 0.5, s.StdDev, 1e-9)
	require.InDelta(t, 0.26, s.Lower, 1e-9)
	require.Equal(t, 1.0, s.Upper, "Upper bound is clamped")

	SortByWinRate(summaries)
	require.Equal(t, 1, summaries[0].Agent)

	t.Run("ignoring forfeits of the opponent", func(t *testing.T) {
		summaries := Summarize([]metrics.GameRecord{record(5, 6, 5, "illegal"), record(5, 6, 5, "")})

		require.Zero(t, summaries[0].Forfeits)
		require.Equal(t, 2, summaries[0].Wins)
	})
}

func TestRun(t *testing.T) {
	random := metrics.AgentConfig{ID: 1, Strategy: "random"}
	greedy := metrics.AgentConfig{ID: 2, Strategy: "greedy"}
	cfg := Config{
		Name:     "test",
		Games:    4,
		Parallel: 2,
		Limit:    time.Second,
		Seed:     7,
		Out:      t.TempDir(),
	}

	results, err := Run(context.Background(), cfg, []metrics.AgentConfig{random, greedy}, []MatchUp{{random, greedy}})

	require.NoError(t, err)
	require.Len(t, results.Games, 4)
	moves := 0
	for i, g := range results.Games {
		require.Equal(t, i+1, g.ID)
		require.Equal(t, 1, g.Agent1)
		require.Equal(t, 2, g.Agent2)
		require.Contains(t, []int{1, 2}, g.WinningAgent)
		require.Empty(t, g.Forfeit)
		moves += g.TotalMoves
	}
	require.Equal(t, 1, results.Games[0].StartingAgent)
	require.Equal(t, 2, results.Games[1].StartingAgent, "Starting agent alternates")
	require.Len(t, results.Moves, moves)

	for name, rows := range map[string]int{
		"agent_configs.csv": 2,
		"game_records.csv":  4,
		"move_records.csv":  moves,
	} {
		f, err := os.Open(filepath.Join(results.Dir, name))
		require.NoError(t, err)
		records, err := csv.NewReader(f).ReadAll()
		f.Close()
		require.NoError(t, err)
		require.Len(t, records, rows+1, "%s should hold a header and one row per record", name)
	}

	t.Run("reproducing results from a seed", func(t *testing.T) {
		cfg := cfg
		cfg.Out = ""
		again, err := Run(context.Background(), cfg, []metrics.AgentConfig{random, greedy}, []MatchUp{{random, greedy}})

		require.NoError(t, err)
		require.Empty(t, again.Dir)
		for i := range again.Games {
			require.Equal(t, results.Games[i].WinningAgent, again.Games[i].WinningAgent)
			require.Equal(t, results.Games[i].TotalMoves, again.Games[i].TotalMoves)
		}
	})

	t.Run("rejecting an unknown agent", func(t *testing.T) {
		bad := metrics.AgentConfig{ID: 9, Strategy: "oracle"}

		_, err := Run(context.Background(), Config{Games: 1}, nil, []MatchUp{{random, bad}})

		require.Error(t, err)
	})
}

func TestSuites(t *testing.T) {
	for name, suite := range Suites {
		configs, matchUps := suite()
		require.NotEmpty(t, matchUps, name)
		for _, m := range matchUps {
			require.Contains(t, configs, m[0], name)
			require.Contains(t, configs, m[1], name)
		}
	}
}
