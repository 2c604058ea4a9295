package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/dustinmichels/monte-carlo-tictactoe/agent"
	"github.com/dustinmichels/monte-carlo-tictactoe/experiments/metrics"
	"github.com/dustinmichels/monte-carlo-tictactoe/game"
)

// Local alternates two agents on a single board in process.
type Local struct {
	agents map[game.Player]agent.Agent
	first  game.Player
	start  game.State
}

type Option func(*Local)

// WithFirstPlayer sets the side that opens the game. X opens by default.
func WithFirstPlayer(p game.Player) Option {
	return func(l *Local) {
		if p != game.NoPlayer {
			l.first = p
		}
	}
}

// WithState starts the game from a given position instead of an empty
// board. The position's side to move overrides WithFirstPlayer.
func WithState(s game.State) Option {
	return func(l *Local) {
		if s != nil {
			l.start = s
		}
	}
}

// NewLocal pairs the agent playing X with the agent playing O.
func NewLocal(x, o agent.Agent, options ...Option) *Local {
	l := &Local{
		agents: map[game.Player]agent.Agent{
			game.PlayerX: x,
			game.PlayerO: o,
		},
		first: game.PlayerX,
	}
	for _, option := range options {
		option(l)
	}
	if l.start == nil {
		l.start = game.NewBoard(l.first)
	}
	return l
}

// Run plays the game to completion, validating every move an agent
// returns before applying it.
func (l *Local) Run() (game.Result, metrics.GameMetric, []metrics.MoveMetric, error) {
	startTime := time.Now()
	state := l.start
	first := state.Player()

	log.Debug().Stringer("first", first).Msg("game started")

	var moveMetrics []metrics.MoveMetric
	step := 0
	result := state.Classify()
	for !result.Over() {
		if step >= MaxMoves {
			return game.Result{}, metrics.GameMetric{}, nil,
				fmt.Errorf("engine: no result after %d moves", MaxMoves)
		}

		player := state.Player()
		a := l.agents[player]
		move, searchMetric, err := a.FindMove(state)
		if err != nil {
			return game.Result{}, metrics.GameMetric{}, nil,
				fmt.Errorf("agent %s: %w", a.Name(), err)
		}
		if !contains(state.LegalMoves(), move) {
			return game.Result{}, metrics.GameMetric{}, nil,
				fmt.Errorf("agent %s played %v: %w", a.Name(), move, game.ErrIllegalMove)
		}

		next, err := state.Play(move)
		if err != nil {
			return game.Result{}, metrics.GameMetric{}, nil,
				fmt.Errorf("agent %s played %v: %w", a.Name(), move, err)
		}

		step++
		log.Debug().
			Int("step", step).
			Stringer("player", player).
			Stringer("move", move).
			Msg("move played")

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player.String(),
			SearchMetric: searchMetric,
		})
		state = next
		result = state.Classify()
	}

	gameMetric := metrics.GameMetric{
		StartingPlayer: first.String(),
		Winner:         result.Winner.String(),
		Moves:          step,
		Duration:       time.Since(startTime),
	}

	log.Debug().
		Stringer("winner", result.Winner).
		Int("moves", step).
		Msg("game over")

	return result, gameMetric, moveMetrics, nil
}

func contains(moves []game.Move, move game.Move) bool {
	for _, m := range moves {
		if m == move {
			return true
		}
	}
	return false
}
