package experiments

import (
	"cmp"
	"isolation/experiments/metrics"
	"math"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// z-score of a two-sided 95% confidence interval
const z95 = 1.96

// Summary is the win rate of Agent against Opponent over their matchup
type Summary struct {
	Agent    int
	Opponent int
	Games    int
	Wins     int
	Forfeits int // Games lost by Agent on a forfeit
	WinRate  float64
	StdDev   float64
	Lower    float64 // Bounds of the 95% confidence interval, clamped to [0, 1]
	Upper    float64
}

// Summarize reports the win rate of the first agent of every matchup, in
// matchup order of first appearance
func Summarize(records []metrics.GameRecord) []Summary {
	type key struct{ agent, opponent int }
	var keys []key
	outcomes := map[key][]float64{}
	forfeits := map[key]int{}
	for _, r := range records {
		k := key{r.Agent1, r.Agent2}
		if _, ok := outcomes[k]; !ok {
			keys = append(keys, k)
		}
		won := 0.0
		if r.WinningAgent == r.Agent1 {
			won = 1
		} else if r.Forfeit != "" {
			forfeits[k]++
		}
		outcomes[k] = append(outcomes[k], won)
	}

	summaries := make([]Summary, 0, len(keys))
	for _, k := range keys {
		x := outcomes[k]
		mean, std := stat.MeanStdDev(x, nil)
		if len(x) < 2 {
			std = 0
		}
		margin := z95 * std / math.Sqrt(float64(len(x)))
		summaries = append(summaries, Summary{
			Agent:    k.agent,
			Opponent: k.opponent,
			Games:    len(x),
			Wins:     int(floats.Sum(x)),
			Forfeits: forfeits[k],
			WinRate:  mean,
			StdDev:   std,
			Lower:    math.Max(0, mean-margin),
			Upper:    math.Min(1, mean+margin),
		})
	}
	return summaries
}

// SortByWinRate orders summaries from the highest win rate down, keeping
// matchup order among equal rates
func SortByWinRate(summaries []Summary) {
	slices.SortStableFunc(summaries, func(a, b Summary) int {
		return cmp.Compare(b.WinRate, a.WinRate)
	})
}
