package searcher

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/rand"

	"github.com/dustinmichels/monte-carlo-tictactoe/experiments/metrics"
	"github.com/dustinmichels/monte-carlo-tictactoe/game"
)

type Option func(m *MCTS)

// MCTS searches a game tree by repeated randomized playouts. Exactly one
// of the iteration or duration budgets must be set. An MCTS value is not
// safe for concurrent use; see FindMoveParallel for the parallel variant.
type MCTS struct {
	iterations   int
	duration     time.Duration
	exploration  float64
	cSquared     float64
	rollout      Policy
	randomExpand bool
	seed         uint64
	seeded       bool
	rng          *rand.Rand
	metrics      metrics.Collector
}

// WithIterations runs a fixed number of search iterations per move.
func WithIterations(iterations int) Option {
	return func(m *MCTS) {
		m.iterations = iterations
	}
}

// WithDuration runs full iterations until the budget elapses.
func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		m.duration = duration
	}
}

// WithExploration sets the UCB1 exploration constant C. The default is
// sqrt(2).
func WithExploration(c float64) Option {
	return func(m *MCTS) {
		m.exploration = c
	}
}

// WithRollout sets the playout policy used during simulation. The default
// is UniformRandom.
func WithRollout(policy Policy) Option {
	return func(m *MCTS) {
		m.rollout = policy
	}
}

// WithRandomExpansion expands untried moves in random order instead of
// legal-move order.
func WithRandomExpansion() Option {
	return func(m *MCTS) {
		m.randomExpand = true
	}
}

// WithSeed fixes the random source so repeated searches from the same
// state produce identical trees and move choices.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.seed = seed
		m.seeded = true
	}
}

// WithMetrics attaches a collector for search diagnostics.
func WithMetrics(collector metrics.Collector) Option {
	return func(m *MCTS) {
		if collector != nil {
			m.metrics = collector
		}
	}
}

// NewMCTS validates the options and returns a ready engine. Configuration
// problems are reported here, before any search work happens.
func NewMCTS(options ...Option) (*MCTS, error) {
	m := &MCTS{
		exploration: DefaultExploration,
		rollout:     UniformRandom{},
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}

	if m.iterations != 0 && m.duration != 0 {
		return nil, fmt.Errorf("%w: iteration and duration budgets are mutually exclusive", ErrConfiguration)
	}
	if m.iterations < 0 {
		return nil, fmt.Errorf("%w: iterations must be positive, got %d", ErrConfiguration, m.iterations)
	}
	if m.duration < 0 {
		return nil, fmt.Errorf("%w: duration must be positive, got %v", ErrConfiguration, m.duration)
	}
	if m.iterations == 0 && m.duration == 0 {
		return nil, fmt.Errorf("%w: an iteration or duration budget is required", ErrConfiguration)
	}
	if m.exploration <= 0 {
		return nil, fmt.Errorf("%w: exploration constant must be positive, got %v", ErrConfiguration, m.exploration)
	}

	m.cSquared = m.exploration * m.exploration
	if !m.seeded {
		m.seed = uint64(time.Now().UnixNano())
	}
	m.rng = rand.New(rand.NewSource(m.seed))
	return m, nil
}

// FindMove searches from state and returns the best move found within the
// configured budget: the most visited root move, ties broken by mean
// reward and then by move order.
func (m *MCTS) FindMove(state game.State) (game.Move, error) {
	stats, err := m.Search(state)
	if err != nil {
		return nil, err
	}
	return bestMove(stats), nil
}

// Search runs the configured budget from state and returns the root's
// per-move statistics. It returns ErrTerminalState if state is already
// won or drawn.
func (m *MCTS) Search(state game.State) ([]Stat, error) {
	if state.Classify().Over() {
		return nil, fmt.Errorf("%w: no move to find", ErrTerminalState)
	}

	t := newTree(state)
	m.metrics.Start()

	var err error
	if m.iterations > 0 {
		err = m.iterate(t)
	} else {
		err = m.countdown(t)
	}
	if err != nil {
		return nil, err
	}
	return t.rootStats(), nil
}

func (m *MCTS) iterate(t *tree) error {
	for i := 0; i < m.iterations; i++ {
		if err := m.simulate(t); err != nil {
			return err
		}
	}
	return nil
}

// countdown runs full iterations until the budget elapses. Elapsed time
// is checked only between iterations so every tree update is the result
// of a complete iteration, and at least one iteration always runs so a
// move choice is available even under the smallest budget.
func (m *MCTS) countdown(t *tree) error {
	start := time.Now()
	for {
		if err := m.simulate(t); err != nil {
			return err
		}
		if time.Since(start) >= m.duration {
			return nil
		}
	}
}

// simulate runs one search iteration: selection, expansion, rollout and
// backpropagation.
func (m *MCTS) simulate(t *tree) error {
	leaf := m.selectNode(t)
	leaf, err := m.expandNode(t, leaf)
	if err != nil {
		return err
	}
	result, err := m.rolloutFrom(t.nodes[leaf].state)
	if err != nil {
		return err
	}
	t.backup(leaf, result)
	m.metrics.AddIteration()
	return nil
}

// selectNode descends from the root through fully expanded nodes by UCB1
// and returns the first node that still has untried moves, or a terminal
// node.
func (m *MCTS) selectNode(t *tree) int {
	id := 0
	for t.nodes[id].fullyExpanded() && len(t.nodes[id].children) > 0 {
		id = t.bestChild(id, m.cSquared)
	}
	return id
}

// expandNode materializes one untried move of id, if any. Terminal nodes
// are returned unchanged and rolled out directly.
func (m *MCTS) expandNode(t *tree, id int) (int, error) {
	n := &t.nodes[id]
	if n.result.Over() || len(n.untried) == 0 {
		return id, nil
	}
	i := 0
	if m.randomExpand {
		i = m.rng.Intn(len(n.untried))
	}
	return t.expand(id, i)
}

// rolloutFrom plays state to completion with the rollout policy. The tree
// is never touched during a rollout.
func (m *MCTS) rolloutFrom(state game.State) (game.Result, error) {
	result := state.Classify()
	depth := 0
	for !result.Over() {
		move := m.rollout.Pick(m.rng, state, state.LegalMoves())
		next, err := state.Play(move)
		if err != nil {
			return game.Result{}, fmt.Errorf("rollout: %w", err)
		}
		state = next
		result = state.Classify()
		depth++
	}
	m.metrics.AddPlayout(depth)
	return result, nil
}

// Stat aggregates the search statistics for one root move.
type Stat struct {
	Move    game.Move
	Visits  int
	Rewards float64
}

// bestMove picks the most visited move; ties fall back to mean reward,
// then to the earlier move.
func bestMove(stats []Stat) game.Move {
	var best game.Move
	bestVisits := -1
	bestMean := math.Inf(-1)
	for _, s := range stats {
		mean := math.Inf(-1)
		if s.Visits > 0 {
			mean = s.Rewards / float64(s.Visits)
		}
		if s.Visits > bestVisits || (s.Visits == bestVisits && mean > bestMean) {
			best = s.Move
			bestVisits = s.Visits
			bestMean = mean
		}
	}
	return best
}
