package agent

import (
	"encoding/json"
	"fmt"
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/meta"
	"isolation/searcher"
	"isolation/utils"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

// Context is carried from one decision to the next within a match. It only
// holds statistics and is not needed for correct play.
type Context struct {
	Decisions int                  `json:"decisions"`
	Searches  int                  `json:"searches"`
	Anomalies int                  `json:"anomalies"`
	Last      metrics.SearchMetric `json:"last"`
}

type Option func(c *Custom)

// Custom plays the opening at random, returns forced moves immediately and
// searches every other position.
type Custom struct {
	mu       sync.Mutex
	searcher searcher.Searcher
	metrics  metrics.Collector
	rand     *rand.Rand
	opening  int
	context  Context
	last     metrics.MoveMetric
}

// WithSearcher replaces the default UCT searcher. The searcher should record
// into the collector passed with WithMetrics for metrics to be reported.
func WithSearcher(s searcher.Searcher) Option {
	return func(c *Custom) {
		if s != nil {
			c.searcher = s
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(c *Custom) {
		if collector != nil {
			c.metrics = collector
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(c *Custom) {
		c.rand = utils.NewRand(seed)
	}
}

func WithOpeningPlies(plies int) Option {
	return func(c *Custom) {
		if plies >= 0 {
			c.opening = plies
		}
	}
}

func WithContext(ctx Context) Option {
	return func(c *Custom) {
		c.context = ctx
	}
}

func NewCustom(options ...Option) *Custom {
	c := &Custom{ // Default values
		metrics: metrics.NewDummyCollector(),
		opening: meta.OPENING_PLIES,
	}
	for _, option := range options {
		option(c)
	}
	if c.rand == nil {
		c.rand = utils.NewRand(uint64(time.Now().UnixNano()))
	}
	if c.searcher == nil {
		c.searcher = searcher.NewUCT(searcher.WithRand(c.rand), searcher.WithMetrics(c.metrics))
	}
	return c
}

func (c *Custom) Decide(state game.State, submit Submit) error {
	if state == nil {
		panic("cannot decide on a nil state")
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	start := time.Now()
	actions := state.Actions()
	if len(actions) == 0 {
		return searcher.ErrEmptyActionSet
	}
	c.context.Decisions++

	action, decision := c.choose(state, actions)
	c.last = metrics.MoveMetric{
		Step:     state.PlyCount() + 1,
		Player:   int(state.Player()),
		Decision: decision,
		Elapsed:  time.Since(start),
	}
	if decision == Search || decision == Fallback {
		c.last.SearchMetric = c.metrics.Complete()
		c.context.Last = c.last.SearchMetric
	}

	log.Debug().
		Stringer("player", state.Player()).
		Int("ply", state.PlyCount()).
		Str("decision", decision).
		Stringer("action", action).
		Msg("decided")
	submit(action)
	return nil
}

func (c *Custom) choose(state game.State, actions []game.Action) (game.Action, string) {
	if len(actions) == 1 {
		return actions[0], Single
	}
	if state.PlyCount() < c.opening {
		return utils.Choice(c.rand, actions), Opening
	}

	c.context.Searches++
	action, err := c.searcher.Search(state)
	if err == nil && slices.Contains(actions, action) {
		return action, Search
	}

	// Recover with a random legal action but keep the anomaly visible
	c.context.Anomalies++
	fallback := utils.Choice(c.rand, actions)
	log.Warn().
		Err(err).
		Str("searcher", c.searcher.Name()).
		Stringer("action", action).
		Stringer("fallback", fallback).
		Int("ply", state.PlyCount()).
		Int("anomalies", c.context.Anomalies).
		Msg("search produced no legal move, playing at random")
	return fallback, Fallback
}

func (c *Custom) LastMetric() metrics.MoveMetric {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.last
}

func (c *Custom) Context() Context {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.context
}

// MarshalContext serializes the carry-over context for another agent instance
func (c *Custom) MarshalContext() ([]byte, error) {
	data, err := json.Marshal(c.Context())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal agent context: %w", err)
	}
	return data, nil
}

func UnmarshalContext(data []byte) (Context, error) {
	var ctx Context
	if err := json.Unmarshal(data, &ctx); err != nil {
		return Context{}, fmt.Errorf("failed to unmarshal agent context: %w", err)
	}
	return ctx, nil
}
