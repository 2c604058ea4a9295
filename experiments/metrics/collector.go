package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarizes one search call.
type SearchMetric struct {
	Duration     time.Duration
	Iterations   int
	Playouts     int
	PlayoutMoves int // total moves played across all rollouts
}

// MoveMetric ties a search metric to one position in a game.
type MoveMetric struct {
	Step   int
	Player string
	SearchMetric
}

// GameMetric summarizes one finished game.
type GameMetric struct {
	StartingPlayer string
	Winner         string // "-" for a draw
	Moves          int
	Duration       time.Duration
}

// Collector accumulates search diagnostics. Implementations must be safe
// for concurrent use.
type Collector interface {
	Start()
	AddIteration()
	AddPlayout(moves int)
	Complete() SearchMetric
}

type collector struct {
	startTime    time.Time
	iterations   atomic.Int64
	playouts     atomic.Int64
	playoutMoves atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	c.startTime = time.Now()
	c.iterations.Store(0)
	c.playouts.Store(0)
	c.playoutMoves.Store(0)
}

func (c *collector) AddIteration() {
	c.iterations.Add(1)
}

func (c *collector) AddPlayout(moves int) {
	c.playouts.Add(1)
	c.playoutMoves.Add(int64(moves))
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Duration:     time.Since(c.startTime),
		Iterations:   int(c.iterations.Load()),
		Playouts:     int(c.playouts.Load()),
		PlayoutMoves: int(c.playoutMoves.Load()),
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a collector that records nothing, for searches
// that do not need diagnostics.
func NewDummyCollector() Collector {
	return dummyCollector{}
}

func (dummyCollector) Start()               {}
func (dummyCollector) AddIteration()        {}
func (dummyCollector) AddPlayout(moves int) {}
func (dummyCollector) Complete() SearchMetric {
	return SearchMetric{}
}
