package metrics

import (
	"sync/atomic"
	"time"
)

type AgentConfig struct {
	ID         int
	Strategy   string // custom, minimax, greedy or random
	Search     string // uct or alphabeta, for the custom strategy
	Iterations int
	Depth      int
	Duration   time.Duration
}

type SearchMetric struct {
	Search      string
	Duration    time.Duration
	Iterations  int // Completed UCT iterations
	Skipped     int // UCT iterations that expanded nothing
	Expansions  int
	TreeSize    int
	MaxDepth    int
	Nodes       int // Minimax nodes visited
	Evaluations int
	Cutoffs     int
}

type MoveMetric struct {
	Step     int
	Player   int
	Action   int    // Destination square, -1 when the move was forfeited
	Decision string // single, opening, search, fallback, random, greedy or timeout
	Elapsed  time.Duration
	SearchMetric
}

type GameMetric struct {
	StartingAgent int    // AgentConfig.ID
	Winner        string // Player name
	Forfeit       string // Reason the loser forfeited, "" for a normal finish
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
	TotalMoves    int
}

type Collector interface {
	Start(search string)
	AddIteration()
	AddSkipped()
	AddExpansion()
	AddNode()
	AddEvaluation()
	AddCutoff()
	SetTree(size, maxDepth int)
	Complete() SearchMetric
}

type collector struct {
	search      string
	startTime   time.Time
	iterations  atomic.Int32
	skipped     atomic.Int32
	expansions  atomic.Int32
	nodes       atomic.Int32
	evaluations atomic.Int32
	cutoffs     atomic.Int32
	treeSize    atomic.Int32
	maxDepth    atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search
func (m *collector) Start(search string) {
	m.search = search
	m.startTime = time.Now()
	m.iterations.Store(0)
	m.skipped.Store(0)
	m.expansions.Store(0)
	m.nodes.Store(0)
	m.evaluations.Store(0)
	m.cutoffs.Store(0)
	m.treeSize.Store(0)
	m.maxDepth.Store(0)
}

func (m *collector) AddIteration() {
	m.iterations.Add(1)
}

func (m *collector) AddSkipped() {
	m.skipped.Add(1)
}

func (m *collector) AddExpansion() {
	m.expansions.Add(1)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddEvaluation() {
	m.evaluations.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) SetTree(size, maxDepth int) {
	m.treeSize.Store(int32(size))
	m.maxDepth.Store(int32(maxDepth))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Search:      m.search,
		Duration:    time.Since(m.startTime),
		Iterations:  int(m.iterations.Load()),
		Skipped:     int(m.skipped.Load()),
		Expansions:  int(m.expansions.Load()),
		TreeSize:    int(m.treeSize.Load()),
		MaxDepth:    int(m.maxDepth.Load()),
		Nodes:       int(m.nodes.Load()),
		Evaluations: int(m.evaluations.Load()),
		Cutoffs:     int(m.cutoffs.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(search string)        {}
func (m *dummyCollector) AddIteration()              {}
func (m *dummyCollector) AddSkipped()                {}
func (m *dummyCollector) AddExpansion()              {}
func (m *dummyCollector) AddNode()                   {}
func (m *dummyCollector) AddEvaluation()             {}
func (m *dummyCollector) AddCutoff()                 {}
func (m *dummyCollector) SetTree(size, maxDepth int) {}
func (m *dummyCollector) Complete() SearchMetric     { return SearchMetric{} }
