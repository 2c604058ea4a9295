package game

import "errors"

// ErrIllegalMove is returned by Play when the move is not among the
// state's legal moves.
var ErrIllegalMove = errors.New("game: illegal move")

// Player identifies a side in a two-player game.
type Player uint8

const (
	NoPlayer Player = iota
	PlayerX
	PlayerO
)

func (p Player) String() string {
	switch p {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return "-"
	}
}

// Opponent returns the other side.
func (p Player) Opponent() Player {
	switch p {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return NoPlayer
	}
}

// Status classifies a state as ongoing or finished.
type Status uint8

const (
	Ongoing Status = iota
	Won
	Drawn
)

// Result is the classification of a state. Winner is set only when Status
// is Won.
type Result struct {
	Status Status
	Winner Player
}

// Over reports whether the game has finished.
func (r Result) Over() bool { return r.Status != Ongoing }

// Move is one ply in the game. Move values must be comparable with ==.
type Move interface {
	String() string
}

// State is an immutable snapshot of the game. Operations on State always
// return a new copy.
type State interface {
	// Player returns the side to move.
	Player() Player
	// LegalMoves returns the moves playable from this state in a stable
	// order, empty iff the state is terminal.
	LegalMoves() []Move
	// Play applies a move and returns the successor state. It returns
	// ErrIllegalMove if the move is not in LegalMoves.
	Play(Move) (State, error)
	// Classify reports whether the game is ongoing, won or drawn.
	Classify() Result
}
