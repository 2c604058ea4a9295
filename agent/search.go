package agent

import (
	"github.com/dustinmichels/monte-carlo-tictactoe/experiments/metrics"
	"github.com/dustinmichels/monte-carlo-tictactoe/game"
	"github.com/dustinmichels/monte-carlo-tictactoe/searcher"
)

// SearchAgent drives a Monte Carlo Tree Search per move. Each FindMove
// call builds and discards a fresh tree rooted at the given state.
type SearchAgent struct {
	name      string
	mcts      *searcher.MCTS
	collector metrics.Collector
}

// NewSearcher builds an MCTS-backed agent. The options are passed through
// to searcher.NewMCTS; a metrics collector is attached on top of them.
func NewSearcher(name string, options ...searcher.Option) (*SearchAgent, error) {
	collector := metrics.NewCollector()
	mcts, err := searcher.NewMCTS(append(options, searcher.WithMetrics(collector))...)
	if err != nil {
		return nil, err
	}
	return &SearchAgent{
		name:      name,
		mcts:      mcts,
		collector: collector,
	}, nil
}

func (a *SearchAgent) Name() string { return a.name }

func (a *SearchAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric, error) {
	move, err := a.mcts.FindMove(state)
	if err != nil {
		return nil, metrics.SearchMetric{}, err
	}
	return move, a.collector.Complete(), nil
}
