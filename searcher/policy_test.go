package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/dustinmichels/monte-carlo-tictactoe/game"
)

func TestUniformRandomPicksLegalMove(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	state := game.NewBoard(game.PlayerX)
	moves := state.LegalMoves()

	for i := 0; i < 20; i++ {
		require.Contains(t, moves, UniformRandom{}.Pick(rng, state, moves))
	}
}

func TestHeuristicWeightedTakesWin(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	// X holds 0 and 1; 2 wins on the spot
	state := mustPlay(t, game.PlayerX, 0, 3, 1, 4)
	moves := state.LegalMoves()

	for i := 0; i < 20; i++ {
		require.Equal(t, game.Cell(2), HeuristicWeighted{}.Pick(rng, state, moves))
	}
}

func TestHeuristicWeightedFallsBackToRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	state := game.NewBoard(game.PlayerX)
	moves := state.LegalMoves()

	require.Contains(t, moves, HeuristicWeighted{}.Pick(rng, state, moves))
}

func TestFixedOpponentModel(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	t.Run("prefers its own win over a block", func(t *testing.T) {
		// X can win at 2; O threatens 8 on the bottom row
		state := mustPlay(t, game.PlayerX, 0, 6, 1, 7)
		moves := state.LegalMoves()

		require.Equal(t, game.Cell(2), FixedOpponentModel{}.Pick(rng, state, moves))
	})

	t.Run("blocks the opponent's win", func(t *testing.T) {
		// O to move; X threatens 2
		state := mustPlay(t, game.PlayerX, 0, 4, 1)
		moves := state.LegalMoves()

		for i := 0; i < 20; i++ {
			require.Equal(t, game.Cell(2), FixedOpponentModel{}.Pick(rng, state, moves))
		}
	})

	t.Run("plays randomly without a threat", func(t *testing.T) {
		state := game.NewBoard(game.PlayerX)
		moves := state.LegalMoves()

		require.Contains(t, moves, FixedOpponentModel{}.Pick(rng, state, moves))
	})
}

func TestWinningMove(t *testing.T) {
	state := mustPlay(t, game.PlayerX, 0, 3, 1, 4)

	require.Equal(t, game.Cell(2), winningMove(state, state.LegalMoves(), game.PlayerX))
	require.Nil(t, winningMove(game.NewBoard(game.PlayerX), game.NewBoard(game.PlayerX).LegalMoves(), game.PlayerX))
}

func TestBlockingMove(t *testing.T) {
	t.Run("finds the only safe reply", func(t *testing.T) {
		state := mustPlay(t, game.PlayerX, 0, 4, 1) // O must answer at 2

		require.Equal(t, game.Cell(2), blockingMove(state, state.LegalMoves()))
	})

	t.Run("nil when the opponent has no threat", func(t *testing.T) {
		state := game.NewBoard(game.PlayerX)

		require.Nil(t, blockingMove(state, state.LegalMoves()))
	})
}
