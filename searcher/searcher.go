// Package searcher implements Monte Carlo Tree Search over the game.State
// interface. A search builds a fresh tree per call, runs the
// select/expand/rollout/backup loop for a configured budget, and picks the
// root move with the highest visit count.
package searcher

import (
	"errors"
	"math"
)

// Rewards backpropagated from a finished rollout, scored from the
// perspective of the player who chose the move into a node.
const (
	Win  = 1.0
	Loss = -Win
	Draw = 0.0
)

// DefaultExploration is the UCB1 exploration constant, sqrt(2).
const DefaultExploration = math.Sqrt2

var (
	// ErrTerminalState is returned when a search is requested on a state
	// that is already won or drawn.
	ErrTerminalState = errors.New("searcher: state is terminal")

	// ErrConfiguration is returned for an invalid option set.
	ErrConfiguration = errors.New("searcher: invalid configuration")
)

// ucb1 scores a child during selection. The normalizer is C^2 * ln(N)
// where N is the parent's visit count. An unvisited child scores +Inf so
// it is picked before any visited sibling.
func ucb1(rewards float64, visits int, normalizer float64) float64 {
	if visits == 0 {
		return math.Inf(1)
	}
	return rewards/float64(visits) + math.Sqrt(normalizer/float64(visits))
}
