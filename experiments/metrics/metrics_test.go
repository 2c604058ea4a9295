package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start()

	for i := 0; i < 5; i++ {
		c.AddIteration()
	}
	c.AddPlayout(4)
	c.AddPlayout(6)

	metric := c.Complete()
	require.Equal(t, 5, metric.Iterations)
	require.Equal(t, 2, metric.Playouts)
	require.Equal(t, 10, metric.PlayoutMoves)
	require.GreaterOrEqual(t, metric.Duration, time.Duration(0))

	// Start resets the counters for the next search
	c.Start()
	require.Equal(t, 0, c.Complete().Iterations)
}

func TestDummyCollector(t *testing.T) {
	c := NewDummyCollector()
	c.Start()
	c.AddIteration()
	c.AddPlayout(3)

	require.Equal(t, SearchMetric{}, c.Complete())
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	games := []GameRecord{
		{ID: 1, AgentX: "mcts", AgentO: "random", GameMetric: GameMetric{
			StartingPlayer: "X", Winner: "X", Moves: 7, Duration: 20 * time.Millisecond,
		}},
	}
	moves := []MoveRecord{
		{Game: 1, MoveMetric: MoveMetric{Step: 1, Player: "X", SearchMetric: SearchMetric{
			Iterations: 100, Playouts: 100, PlayoutMoves: 560,
		}}},
	}

	require.NoError(t, w.WriteGames(games))
	require.NoError(t, w.WriteMoves(moves))

	gamesCSV, err := os.ReadFile(filepath.Join(w.Dir(), "games.csv"))
	require.NoError(t, err)
	gameLines := strings.Split(strings.TrimSpace(string(gamesCSV)), "\n")
	require.Len(t, gameLines, 2, "Header plus one record")
	require.Contains(t, gameLines[1], "mcts")
	require.Contains(t, gameLines[1], "random")

	movesCSV, err := os.ReadFile(filepath.Join(w.Dir(), "moves.csv"))
	require.NoError(t, err)
	moveLines := strings.Split(strings.TrimSpace(string(movesCSV)), "\n")
	require.Len(t, moveLines, 2)
	require.Contains(t, moveLines[1], "560")
}
