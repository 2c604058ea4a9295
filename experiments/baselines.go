package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/dustinmichels/monte-carlo-tictactoe/agent"
	"github.com/dustinmichels/monte-carlo-tictactoe/experiments/metrics"
	"github.com/dustinmichels/monte-carlo-tictactoe/searcher"
)

// SearcherBuilder builds a fresh iteration-budgeted MCTS agent per game.
func SearcherBuilder(name string, iterations int) Builder {
	return Builder{
		Name: name,
		New: func(seed uint64) (agent.Agent, error) {
			return agent.NewSearcher(name,
				searcher.WithIterations(iterations),
				searcher.WithSeed(seed),
			)
		},
	}
}

// RandomBuilder builds a fresh uniform-random agent per game.
func RandomBuilder() Builder {
	return Builder{
		Name: "random",
		New: func(seed uint64) (agent.Agent, error) {
			return agent.NewRandom(seed), nil
		},
	}
}

// BlockerBuilder builds a fresh win-then-block agent per game.
func BlockerBuilder() Builder {
	return Builder{
		Name: "blocker",
		New: func(seed uint64) (agent.Agent, error) {
			return agent.NewBlocker(seed), nil
		},
	}
}

// RunBaselines plays the MCTS agent against each baseline and itself,
// writing CSV records under resultsDir.
func RunBaselines(resultsDir string, games, iterations int, confidence float64) error {
	mcts := SearcherBuilder(fmt.Sprintf("mcts-%d", iterations), iterations)
	matchups := []Matchup{
		{X: mcts, O: RandomBuilder(), Games: games},
		{X: mcts, O: BlockerBuilder(), Games: games},
		{X: mcts, O: mcts, Games: games},
	}

	writer, err := metrics.NewWriter(resultsDir)
	if err != nil {
		return fmt.Errorf("experiments: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("writing baseline results")

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord
	for _, matchup := range matchups {
		log.Info().
			Str("x", matchup.X.Name).
			Str("o", matchup.O.Name).
			Int("games", matchup.Games).
			Msg("starting matchup")

		summary, gameRecs, moveRecs, err := Run(matchup, confidence)
		if err != nil {
			return fmt.Errorf("experiments: matchup %s vs %s: %w", matchup.X.Name, matchup.O.Name, err)
		}

		log.Info().
			Str("x", matchup.X.Name).
			Str("o", matchup.O.Name).
			Stringer("summary", summary).
			Msg("matchup finished")

		// Keep game IDs unique across matchups
		offset := len(gameRecords)
		for i := range gameRecs {
			gameRecs[i].ID += offset
		}
		for i := range moveRecs {
			moveRecs[i].Game += offset
		}
		gameRecords = append(gameRecords, gameRecs...)
		moveRecords = append(moveRecords, moveRecs...)
	}

	if err := writer.WriteGames(gameRecords); err != nil {
		return fmt.Errorf("experiments: %w", err)
	}
	if err := writer.WriteMoves(moveRecords); err != nil {
		return fmt.Errorf("experiments: %w", err)
	}
	return nil
}
