// Package agent provides playing agents over the game.State interface:
// policy-driven baselines and a Monte Carlo Tree Search agent.
package agent

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/dustinmichels/monte-carlo-tictactoe/experiments/metrics"
	"github.com/dustinmichels/monte-carlo-tictactoe/game"
	"github.com/dustinmichels/monte-carlo-tictactoe/searcher"
)

// Agent picks a move for the side to play in the given state. The metric
// is zero for agents that do not search.
type Agent interface {
	Name() string
	FindMove(state game.State) (game.Move, metrics.SearchMetric, error)
}

// PolicyAgent promotes a rollout policy to a standalone agent.
type PolicyAgent struct {
	name   string
	policy searcher.Policy
	rng    *rand.Rand
}

// NewRandom plays uniformly random legal moves.
func NewRandom(seed uint64) *PolicyAgent {
	return newPolicyAgent("random", searcher.UniformRandom{}, seed)
}

// NewGreedy plays an immediate win when one exists, random otherwise.
func NewGreedy(seed uint64) *PolicyAgent {
	return newPolicyAgent("greedy", searcher.HeuristicWeighted{}, seed)
}

// NewBlocker plays a win, then a block, then a random move.
func NewBlocker(seed uint64) *PolicyAgent {
	return newPolicyAgent("blocker", searcher.FixedOpponentModel{}, seed)
}

func newPolicyAgent(name string, policy searcher.Policy, seed uint64) *PolicyAgent {
	return &PolicyAgent{
		name:   name,
		policy: policy,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

func (a *PolicyAgent) Name() string { return a.name }

func (a *PolicyAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return nil, metrics.SearchMetric{}, fmt.Errorf("%w: agent %s has no move", searcher.ErrTerminalState, a.name)
	}
	return a.policy.Pick(a.rng, state, moves), metrics.SearchMetric{}, nil
}
