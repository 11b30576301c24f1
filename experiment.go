package main

import (
	"context"
	"flag"
	"fmt"
	"isolation/experiments"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

type experimentCommand struct {
	name     string
	games    int
	parallel int
	limit    time.Duration
	seed     uint64
	out      string
}

func (*experimentCommand) Name() string     { return "experiment" }
func (*experimentCommand) Synopsis() string { return "Play agent matchups and report win rates" }
func (*experimentCommand) Usage() string {
	return `experiment [flags]

Play every matchup of a suite (baselines or iterations), write the game and
move records as CSV and print the win rate of each matchup's first agent.
`
}

func (c *experimentCommand) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.name, "name", "baselines", "experiment suite")
	flags.IntVar(&c.games, "games", experiments.NumGames, "games per matchup")
	flags.IntVar(&c.parallel, "parallel", 4, "games played in parallel")
	flags.DurationVar(&c.limit, "limit", experiments.TimeLimit, "time limit per move")
	flags.Uint64Var(&c.seed, "seed", 0, "random seed, 0 for the current time")
	flags.StringVar(&c.out, "out", "experiments/results", "directory to write CSV files to, empty to skip")
}

func (c *experimentCommand) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	suite, ok := experiments.Suites[c.name]
	if !ok {
		log.Error().Str("name", c.name).Msg("unknown experiment suite")
		return subcommands.ExitUsageError
	}
	if c.seed == 0 {
		c.seed = uint64(time.Now().UnixNano())
	}

	configs, matchUps := suite()
	results, err := experiments.Run(ctx, experiments.Config{
		Name:     c.name,
		Games:    c.games,
		Parallel: c.parallel,
		Limit:    c.limit,
		Seed:     c.seed,
		Out:      c.out,
	}, configs, matchUps)
	if err != nil {
		log.Error().Err(err).Msg("experiment failed")
		return subcommands.ExitFailure
	}

	summaries := experiments.Summarize(results.Games)
	experiments.SortByWinRate(summaries)
	tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "agent\topponent\tgames\twins\tforfeits\twin rate\t95%% CI\n")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%.3f\t[%.3f, %.3f]\n",
			s.Agent, s.Opponent, s.Games, s.Wins, s.Forfeits, s.WinRate, s.Lower, s.Upper)
	}
	tw.Flush()

	log.Info().Uint64("seed", c.seed).Str("dir", results.Dir).Msg("done")
	return subcommands.ExitSuccess
}
