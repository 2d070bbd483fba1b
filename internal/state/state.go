// Package state defines the game state contract the AI players consume: moves, players and the
// State interface a board has to implement to be searched.
//
// The AI never mutates a State: every ply produces a new one with State.Act.
package state

import (
	"fmt"
)

// PlayerNum is the either 0 or 1 corresponding to the first player to move or the second player to move.
type PlayerNum uint8

const (
	PlayerFirst PlayerNum = iota
	PlayerSecond

	// PlayerInvalid represents an invalid PlayerNum.
	PlayerInvalid
)

// NumPlayers is fixed to 2.
const NumPlayers = 2

// String returns "First", "Second" or "Invalid".
func (p PlayerNum) String() string {
	switch p {
	case PlayerFirst:
		return "First"
	case PlayerSecond:
		return "Second"
	default:
		return "Invalid"
	}
}

// Opponent returns the other player. PlayerInvalid is returned for an invalid player.
func (p PlayerNum) Opponent() PlayerNum {
	if p >= PlayerInvalid {
		return PlayerInvalid
	}
	return 1 - p
}

// Move is a board coordinate a player moves its piece to.
type Move struct {
	Row, Col int
}

// NoMove is returned when there are no legal moves available. It is also the location of a
// player that hasn't placed its piece yet.
var NoMove = Move{-1, -1}

// IsNoMove returns whether m is the NoMove sentinel.
func (m Move) IsNoMove() bool {
	return m == NoMove
}

// String returns a text representation of Move.
func (m Move) String() string {
	if m.IsNoMove() {
		return "(no move)"
	}
	return fmt.Sprintf("(%d, %d)", m.Row, m.Col)
}

// State is an immutable snapshot of a match: board plus whose turn it is.
//
// Implementations must be deterministic: the same state always enumerates the same legal moves
// in the same order, since the order decides ties during search.
type State interface {
	// NextPlayer is the player to move.
	NextPlayer() PlayerNum

	// LegalMoves available to player. It returns an empty slice if there are none.
	LegalMoves(player PlayerNum) []Move

	// Act returns a new State after NextPlayer plays move. The receiver is not changed.
	Act(move Move) State

	// IsLoser returns whether the match is over and player lost it.
	IsLoser(player PlayerNum) bool

	// IsWinner returns whether the match is over and player won it.
	IsWinner(player PlayerNum) bool

	// Opponent of player.
	Opponent(player PlayerNum) PlayerNum

	// NumOpenCells returns the number of blank cells left on the board.
	NumOpenCells() int

	// Location of player's piece, or NoMove if it hasn't been placed yet.
	Location(player PlayerNum) Move
}

// IsFinished returns whether either player won the match.
func IsFinished(s State) bool {
	p := s.NextPlayer()
	return s.IsLoser(p) || s.IsWinner(p)
}

// Winner of the match, or PlayerInvalid if the match is not finished.
func Winner(s State) PlayerNum {
	p := s.NextPlayer()
	if s.IsWinner(p) {
		return p
	}
	if s.IsLoser(p) {
		return s.Opponent(p)
	}
	return PlayerInvalid
}
