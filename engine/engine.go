// Package engine runs games between two agents.
package engine

import (
	"github.com/dustinmichels/monte-carlo-tictactoe/experiments/metrics"
	"github.com/dustinmichels/monte-carlo-tictactoe/game"
)

// MaxMoves caps a single game against a misbehaving state adapter.
const MaxMoves = 100

// Engine plays a game to completion and reports the result along with
// per-game and per-move metrics.
type Engine interface {
	Run() (game.Result, metrics.GameMetric, []metrics.MoveMetric, error)
}
