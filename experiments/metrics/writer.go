package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// GameRecord is one game's row in games.csv.
type GameRecord struct {
	ID     int
	AgentX string
	AgentO string
	GameMetric
}

// MoveRecord is one search's row in moves.csv.
type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// Writer stores experiment records as CSV files under a timestamped
// directory.
type Writer struct {
	dir string
}

func NewWriter(baseDir string) (*Writer, error) {
	dir := filepath.Join(baseDir, time.Now().UTC().Format("20060102T150405Z"))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create results directory: %w", err)
	}
	return &Writer{dir: dir}, nil
}

// Dir returns the directory records are written to.
func (w *Writer) Dir() string { return w.dir }

func (w *Writer) WriteGames(records []GameRecord) error {
	rows := [][]string{{
		"id", "agent_x", "agent_o", "starting_player", "winner", "moves",
		"duration_ms",
	}}
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.ID),
			r.AgentX,
			r.AgentO,
			r.StartingPlayer,
			r.Winner,
			strconv.Itoa(r.Moves),
			strconv.FormatInt(r.Duration.Milliseconds(), 10),
		})
	}
	return w.writeFile("games.csv", rows)
}

func (w *Writer) WriteMoves(records []MoveRecord) error {
	rows := [][]string{{
		"game", "step", "player", "iterations", "playouts", "playout_moves",
		"duration_ms",
	}}
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.Game),
			strconv.Itoa(r.Step),
			r.Player,
			strconv.Itoa(r.Iterations),
			strconv.Itoa(r.Playouts),
			strconv.Itoa(r.PlayoutMoves),
			strconv.FormatInt(r.Duration.Milliseconds(), 10),
		})
	}
	return w.writeFile("moves.csv", rows)
}

func (w *Writer) writeFile(name string, rows [][]string) error {
	f, err := os.Create(filepath.Join(w.dir, name))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}
	return writer.Error()
}
