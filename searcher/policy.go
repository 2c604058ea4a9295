package searcher

import (
	"golang.org/x/exp/rand"

	"github.com/dustinmichels/monte-carlo-tictactoe/game"
)

// Policy chooses a rollout move given a state and its legal moves.
// Implementations must not mutate state or moves; moves is never empty.
type Policy interface {
	Name() string
	Pick(rng *rand.Rand, state game.State, moves []game.Move) game.Move
}

// UniformRandom plays a uniformly random legal move. This is the default
// rollout policy.
type UniformRandom struct{}

func (UniformRandom) Name() string { return "uniform" }

func (UniformRandom) Pick(rng *rand.Rand, _ game.State, moves []game.Move) game.Move {
	return moves[rng.Intn(len(moves))]
}

// HeuristicWeighted takes an immediate win when one exists and otherwise
// plays a random move.
type HeuristicWeighted struct{}

func (HeuristicWeighted) Name() string { return "heuristic" }

func (HeuristicWeighted) Pick(rng *rand.Rand, state game.State, moves []game.Move) game.Move {
	if move := winningMove(state, moves, state.Player()); move != nil {
		return move
	}
	return moves[rng.Intn(len(moves))]
}

// FixedOpponentModel plays an immediate win, then blocks the opponent's
// immediate win, then plays a random move.
type FixedOpponentModel struct{}

func (FixedOpponentModel) Name() string { return "fixed-opponent" }

func (FixedOpponentModel) Pick(rng *rand.Rand, state game.State, moves []game.Move) game.Move {
	if move := winningMove(state, moves, state.Player()); move != nil {
		return move
	}
	if move := blockingMove(state, moves); move != nil {
		return move
	}
	return moves[rng.Intn(len(moves))]
}

// winningMove returns a move that immediately wins the game for player,
// or nil when there is none.
func winningMove(state game.State, moves []game.Move, player game.Player) game.Move {
	for _, move := range moves {
		next, err := state.Play(move)
		if err != nil {
			continue
		}
		if result := next.Classify(); result.Status == game.Won && result.Winner == player {
			return move
		}
	}
	return nil
}

// blockingMove returns a move that denies the opponent an immediate win
// on their reply. It returns nil when the opponent has no immediate win,
// or when no single move removes it.
func blockingMove(state game.State, moves []game.Move) game.Move {
	opponent := state.Player().Opponent()

	var safe game.Move
	threatened := false
	for _, move := range moves {
		next, err := state.Play(move)
		if err != nil {
			continue
		}
		if winningMove(next, next.LegalMoves(), opponent) == nil {
			if safe == nil {
				safe = move
			}
		} else {
			threatened = true
		}
	}
	if !threatened {
		return nil
	}
	return safe
}
