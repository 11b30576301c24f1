package main

import (
	"context"
	"flag"
	"fmt"
	"isolation/agent"
	"isolation/engine"
	"isolation/experiments/metrics"
	"isolation/meta"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

type playCommand struct {
	p1         string
	p2         string
	search     string
	iterations int
	depth      int
	limit      time.Duration
	seed       uint64
}

func (*playCommand) Name() string     { return "play" }
func (*playCommand) Synopsis() string { return "Play one game of Isolation between two agents" }
func (*playCommand) Usage() string {
	return `play [flags]

Play a game between two agents and print the final board.
Agents are custom, minimax, greedy or random.
`
}

func (c *playCommand) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.p1, "p1", "custom", "agent playing first")
	flags.StringVar(&c.p2, "p2", "minimax", "agent playing second")
	flags.StringVar(&c.search, "search", "uct", "search of custom agents: uct or alphabeta")
	flags.IntVar(&c.iterations, "iterations", meta.ITERATIONS, "UCT iterations per move")
	flags.IntVar(&c.depth, "depth", meta.DEPTH, "alpha-beta iterative deepening depth")
	flags.DurationVar(&c.limit, "limit", meta.TIME_LIMIT, "time limit per move")
	flags.Uint64Var(&c.seed, "seed", 0, "random seed, 0 for the current time")
}

func (c *playCommand) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.seed == 0 {
		c.seed = uint64(time.Now().UnixNano())
	}

	var agents [2]agent.Agent
	for i, strategy := range []string{c.p1, c.p2} {
		config := metrics.AgentConfig{
			ID:         i + 1,
			Strategy:   strategy,
			Search:     c.search,
			Iterations: c.iterations,
			Depth:      c.depth,
		}
		a, err := agent.New(config, c.seed+uint64(i)*2)
		if err != nil {
			log.Error().Err(err).Msgf("-p%d", i+1)
			return subcommands.ExitUsageError
		}
		agents[i] = a
	}

	e := engine.NewLocalEngine(agents, c.limit)
	winner, gameMetric, _, err := e.Run(ctx)
	if err != nil {
		log.Error().Err(err).Msg("game interrupted")
		return subcommands.ExitFailure
	}

	fmt.Println(e.State)
	fmt.Printf("%s wins after %d moves", winner, gameMetric.TotalMoves)
	if gameMetric.Forfeit != "" {
		fmt.Printf(" (forfeit: %s)", gameMetric.Forfeit)
	}
	fmt.Println()
	log.Info().Uint64("seed", c.seed).Dur("duration", gameMetric.Duration).Msg("done")
	return subcommands.ExitSuccess
}
