package searcher

import (
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dustinmichels/monte-carlo-tictactoe/game"
)

// FindMoveParallel implements root parallelization: it runs independent
// searches on engines built by newEngine, one per worker, and picks the
// move with the highest merged root visit count. Each worker owns its
// tree exclusively; only the root-statistics merge is locked. Give every
// worker a distinct seed or the trees will be identical.
func FindMoveParallel(state game.State, workers int, newEngine func(worker int) (*MCTS, error)) (game.Move, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("%w: workers must be positive, got %d", ErrConfiguration, workers)
	}
	if state.Classify().Over() {
		return nil, fmt.Errorf("%w: no move to find", ErrTerminalState)
	}

	var mu sync.Mutex
	var merged []Stat

	var g errgroup.Group
	for worker := 0; worker < workers; worker++ {
		worker := worker
		g.Go(func() error {
			m, err := newEngine(worker)
			if err != nil {
				return err
			}
			stats, err := m.Search(state)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			merged = mergeStats(merged, stats)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return bestMove(merged), nil
}

// mergeStats folds stats into the accumulator, summing visit and reward
// totals per move.
func mergeStats(into, stats []Stat) []Stat {
outer:
	for _, s := range stats {
		for i := range into {
			if into[i].Move == s.Move {
				into[i].Visits += s.Visits
				into[i].Rewards += s.Rewards
				continue outer
			}
		}
		into = append(into, s)
	}
	return into
}
