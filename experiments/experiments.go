// Package experiments pits agents against each other over many games and
// records the outcomes.
package experiments

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/dustinmichels/monte-carlo-tictactoe/agent"
	"github.com/dustinmichels/monte-carlo-tictactoe/engine"
	"github.com/dustinmichels/monte-carlo-tictactoe/experiments/metrics"
	"github.com/dustinmichels/monte-carlo-tictactoe/game"
)

// Builder constructs a fresh agent per game, so games stay independent.
type Builder struct {
	Name string
	New  func(seed uint64) (agent.Agent, error)
}

// Matchup pits two agent builders against each other for a number of
// games. The first agent plays X. The opening side rotates every game to
// cancel the first-move advantage.
type Matchup struct {
	X     Builder
	O     Builder
	Games int
}

// Summary tallies a matchup's outcomes. The win rate and margin are for
// the X agent, draws counting half.
type Summary struct {
	XWins   int
	OWins   int
	Draws   int
	WinRate float64
	Margin  float64
}

func (s Summary) String() string {
	return fmt.Sprintf("X %d / O %d / drawn %d (X score %.2f ± %.2f)",
		s.XWins, s.OWins, s.Draws, s.WinRate, s.Margin)
}

// Run plays the matchup and reports a summary plus the raw records. The
// confidence level for the win-rate margin is a percentage, e.g. 95.
func Run(matchup Matchup, confidence float64) (Summary, []metrics.GameRecord, []metrics.MoveRecord, error) {
	if matchup.Games <= 0 {
		return Summary{}, nil, nil, fmt.Errorf("experiments: games must be positive, got %d", matchup.Games)
	}

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord
	results := make([]game.Result, 0, matchup.Games)

	for i := 0; i < matchup.Games; i++ {
		seed := uint64(i) + 1

		x, err := matchup.X.New(seed)
		if err != nil {
			return Summary{}, nil, nil, fmt.Errorf("building agent %s: %w", matchup.X.Name, err)
		}
		o, err := matchup.O.New(seed)
		if err != nil {
			return Summary{}, nil, nil, fmt.Errorf("building agent %s: %w", matchup.O.Name, err)
		}

		first := game.PlayerX
		if i%2 == 1 {
			first = game.PlayerO
		}

		var e engine.Engine = engine.NewLocal(x, o, engine.WithFirstPlayer(first))
		result, gameMetric, moveMetrics, err := e.Run()
		if err != nil {
			return Summary{}, nil, nil, fmt.Errorf("game %d: %w", i+1, err)
		}

		results = append(results, result)
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         i + 1,
			AgentX:     matchup.X.Name,
			AgentO:     matchup.O.Name,
			GameMetric: gameMetric,
		})
		for _, m := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{Game: i + 1, MoveMetric: m})
		}

		log.Debug().
			Int("game", i+1).
			Stringer("winner", result.Winner).
			Msg("matchup game finished")
	}

	return summarize(results, confidence), gameRecords, moveRecords, nil
}

func summarize(results []game.Result, confidence float64) Summary {
	tally := lo.CountValuesBy(results, func(r game.Result) game.Player {
		if r.Status == game.Drawn {
			return game.NoPlayer
		}
		return r.Winner
	})

	n := float64(len(results))
	score := (float64(tally[game.PlayerX]) + 0.5*float64(tally[game.NoPlayer])) / n
	z := zValue(confidence)

	return Summary{
		XWins:   tally[game.PlayerX],
		OWins:   tally[game.PlayerO],
		Draws:   tally[game.NoPlayer],
		WinRate: score,
		Margin:  z * math.Sqrt(score*(1-score)/n),
	}
}
