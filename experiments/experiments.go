package experiments

import (
	"context"
	"fmt"
	"isolation/agent"
	"isolation/engine"
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/meta"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	NumGames  = 20 // Per matchup
	TimeLimit = meta.TIME_LIMIT

	prime = 1099511628211
)

type Config struct {
	Name     string
	Games    int // Per matchup, the starting agent alternates between games
	Parallel int // Games played at once
	Limit    time.Duration
	Seed     uint64
	Out      string // Root directory of the CSV files, nothing is written when empty
}

type MatchUp [2]metrics.AgentConfig

type Results struct {
	Configs []metrics.AgentConfig
	Games   []metrics.GameRecord
	Moves   []metrics.MoveRecord
	Dir     string // Where the CSV files were written
}

// Baselines pits the UCT agent against every baseline and against the
// alpha-beta agent
func Baselines() ([]metrics.AgentConfig, []MatchUp) {
	uct := metrics.AgentConfig{ID: 1, Strategy: "custom", Search: "uct", Iterations: meta.ITERATIONS}
	alphaBeta := metrics.AgentConfig{ID: 2, Strategy: "custom", Search: "alphabeta", Depth: meta.DEPTH}
	greedy := metrics.AgentConfig{ID: 3, Strategy: "greedy"}
	random := metrics.AgentConfig{ID: 4, Strategy: "random"}

	configs := []metrics.AgentConfig{uct, alphaBeta, greedy, random}
	matchUps := []MatchUp{
		{uct, random},
		{uct, greedy},
		{uct, alphaBeta},
		{alphaBeta, greedy},
	}
	return configs, matchUps
}

// Iterations pairs UCT agents of growing iteration budgets against the default
// budget
func Iterations() ([]metrics.AgentConfig, []MatchUp) {
	baseline := metrics.AgentConfig{ID: 0, Strategy: "custom", Search: "uct", Iterations: meta.ITERATIONS}
	configs := []metrics.AgentConfig{baseline}
	matchUps := []MatchUp{}
	for i, iterations := range []int{50, 100, 200, 400} {
		config := metrics.AgentConfig{ID: i + 1, Strategy: "custom", Search: "uct", Iterations: iterations}
		configs = append(configs, config)
		matchUps = append(matchUps, MatchUp{baseline, config})
	}
	return configs, matchUps
}

// Suites lists the named experiments
var Suites = map[string]func() ([]metrics.AgentConfig, []MatchUp){
	"baselines":  Baselines,
	"iterations": Iterations,
}

type job struct {
	id      int
	matchUp int
	first   metrics.AgentConfig // Plays Player1
	second  metrics.AgentConfig
	seed    uint64
}

// Run plays cfg.Games games for each matchup, cfg.Parallel at a time, and
// writes the records under cfg.Out
func Run(ctx context.Context, cfg Config, configs []metrics.AgentConfig, matchUps []MatchUp) (*Results, error) {
	if cfg.Games <= 0 {
		cfg.Games = NumGames
	}
	if cfg.Parallel <= 0 {
		cfg.Parallel = 1
	}
	if cfg.Limit <= 0 {
		cfg.Limit = TimeLimit
	}

	var jobs []job
	for mi, matchUp := range matchUps {
		for i := 0; i < cfg.Games; i++ {
			first, second := matchUp[0], matchUp[1]
			if i%2 == 1 {
				first, second = second, first
			}
			id := len(jobs) + 1
			jobs = append(jobs, job{
				id:      id,
				matchUp: mi,
				first:   first,
				second:  second,
				seed:    cfg.Seed*prime + uint64(id),
			})
		}
	}

	log.Info().Msgf("starting %s experiment: %d matchups, %d games", cfg.Name, len(matchUps), len(jobs))

	games := make([]metrics.GameRecord, len(jobs))
	moves := make([][]metrics.MoveRecord, len(jobs))
	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(cfg.Parallel)
	for _, j := range jobs {
		j := j
		grp.Go(func() error {
			gameMetric, moveMetrics, err := runGame(ctx, cfg.Limit, j.first, j.second, j.seed)
			if err != nil {
				return fmt.Errorf("game %d: %w", j.id, err)
			}

			matchUp := matchUps[j.matchUp]
			record := metrics.GameRecord{
				ID:           j.id,
				Agent1:       matchUp[0].ID,
				Agent2:       matchUp[1].ID,
				WinningAgent: j.second.ID,
				GameMetric:   gameMetric,
			}
			if gameMetric.Winner == game.Player(0).String() {
				record.WinningAgent = j.first.ID
			}
			games[j.id-1] = record
			for _, mm := range moveMetrics {
				moves[j.id-1] = append(moves[j.id-1], metrics.MoveRecord{Game: j.id, MoveMetric: mm})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: agent %d", j.matchUp+1, len(matchUps), j.id, record.WinningAgent)
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	results := &Results{Configs: configs, Games: games}
	for _, m := range moves {
		results.Moves = append(results.Moves, m...)
	}
	log.Info().Msgf("completed %s experiment", cfg.Name)

	if cfg.Out == "" {
		return results, nil
	}
	dir, err := store(cfg.Out, cfg.Name, results)
	if err != nil {
		return nil, err
	}
	results.Dir = dir
	return results, nil
}

// runGame plays a single game, first moving first
func runGame(ctx context.Context, limit time.Duration, first, second metrics.AgentConfig, seed uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	a1, err := agent.New(first, seed)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	a2, err := agent.New(second, seed^prime)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	e := engine.NewLocalEngine([2]agent.Agent{a1, a2}, limit)
	_, gameMetric, moveMetrics, err := e.Run(ctx)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	gameMetric.StartingAgent = first.ID
	return gameMetric, moveMetrics, nil
}

func store(root, name string, results *Results) (string, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(results.Configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(results.Games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(results.Moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")
	return writer.Dir(), nil
}
