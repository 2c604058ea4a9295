package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Size is the side length of the board.
const Size = 3

const numCells = Size * Size

// Cell addresses a square on the board, row-major from the top left.
type Cell int

func (c Cell) String() string {
	return strconv.Itoa(int(c))
}

// The eight winning lines: rows, columns, diagonals.
var lines = [8][3]Cell{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Board is a tic-tac-toe position. Boards are values: Play returns a new
// Board and never mutates the receiver.
type Board struct {
	cells [numCells]Player
	turn  Player
}

// NewBoard returns an empty board with first to move. NoPlayer defaults
// to X opening the game.
func NewBoard(first Player) Board {
	if first == NoPlayer {
		first = PlayerX
	}
	return Board{turn: first}
}

// Player returns the side to move.
func (b Board) Player() Player { return b.turn }

// Cell returns the occupant of c, or NoPlayer if the square is empty.
func (b Board) Cell(c Cell) Player { return b.cells[c] }

// LegalMoves returns the empty cells in row-major order, or nil once the
// game is over.
func (b Board) LegalMoves() []Move {
	if b.Classify().Over() {
		return nil
	}
	moves := make([]Move, 0, numCells)
	for i, p := range b.cells {
		if p == NoPlayer {
			moves = append(moves, Cell(i))
		}
	}
	return moves
}

// Play marks the given cell for the side to move and returns the new
// position.
func (b Board) Play(move Move) (State, error) {
	c, ok := move.(Cell)
	if !ok {
		return nil, fmt.Errorf("%w: %v is not a cell", ErrIllegalMove, move)
	}
	if c < 0 || int(c) >= numCells {
		return nil, fmt.Errorf("%w: cell %d out of range", ErrIllegalMove, int(c))
	}
	if b.Classify().Over() {
		return nil, fmt.Errorf("%w: game is over", ErrIllegalMove)
	}
	if b.cells[c] != NoPlayer {
		return nil, fmt.Errorf("%w: cell %d is occupied", ErrIllegalMove, int(c))
	}
	next := b
	next.cells[c] = b.turn
	next.turn = b.turn.Opponent()
	return next, nil
}

// Classify scans the winning lines and reports the game status.
func (b Board) Classify() Result {
	for _, line := range lines {
		p := b.cells[line[0]]
		if p != NoPlayer && p == b.cells[line[1]] && p == b.cells[line[2]] {
			return Result{Status: Won, Winner: p}
		}
	}
	for _, p := range b.cells {
		if p == NoPlayer {
			return Result{Status: Ongoing}
		}
	}
	return Result{Status: Drawn}
}

func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		if row > 0 {
			sb.WriteString("\n---+---+---\n")
		}
		for col := 0; col < Size; col++ {
			if col > 0 {
				sb.WriteByte('|')
			}
			sb.WriteString(" " + b.cells[row*Size+col].String() + " ")
		}
	}
	return sb.String()
}
