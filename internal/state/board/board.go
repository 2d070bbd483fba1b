// Package board implements a minimal knight-move Isolation board, implementing state.State.
//
// Each player owns one piece. A piece not yet placed may go to any blank cell; once placed it moves
// like a chess knight onto blank cells inside the board. Every cell visited is blocked for the rest
// of the match. The player to move without any legal moves loses.
package board

import (
	"slices"
	"strings"

	"github.com/gomlx/exceptions"
	. "github.com/janpfeifer/isolationGo/internal/state"
)

// knightDirections in the order moves are enumerated.
var knightDirections = [8]Move{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// DefaultSize of the board used by the classic match.
const DefaultSize = 7

// Board holds the blocked cells, the location of each player and who plays next.
// It implements state.State, and it is never modified after it is created: Act returns a new Board.
type Board struct {
	width, height int
	blocked       []bool
	locations     [NumPlayers]Move
	nextPlayer    PlayerNum

	// MoveNumber starts at 1 and is incremented at every Act.
	MoveNumber int
}

// Assert Board is a State.
var _ State = (*Board)(nil)

// New creates an empty board of the given dimensions, with PlayerFirst to move and no pieces placed.
func New(width, height int) *Board {
	if width <= 0 || height <= 0 {
		exceptions.Panicf("invalid board dimensions %dx%d", width, height)
	}
	return &Board{
		width:      width,
		height:     height,
		blocked:    make([]bool, width*height),
		locations:  [NumPlayers]Move{NoMove, NoMove},
		nextPlayer: PlayerFirst,
		MoveNumber: 1,
	}
}

// Clone makes a deep copy of the board.
func (b *Board) Clone() *Board {
	newB := &Board{}
	*newB = *b
	newB.blocked = slices.Clone(b.blocked)
	return newB
}

// Width of the board.
func (b *Board) Width() int { return b.width }

// Height of the board.
func (b *Board) Height() int { return b.height }

// InBounds returns whether the move falls inside the board.
func (b *Board) InBounds(m Move) bool {
	return m.Row >= 0 && m.Row < b.height && m.Col >= 0 && m.Col < b.width
}

// IsBlank returns whether the cell is inside the board and was never visited.
func (b *Board) IsBlank(m Move) bool {
	return b.InBounds(m) && !b.blocked[m.Row*b.width+m.Col]
}

// WithLocations returns a new board with the pieces of the first and second players placed at the given
// cells (NoMove leaves the piece unplaced). Used to set up positions, it doesn't change the player to move.
func (b *Board) WithLocations(first, second Move) *Board {
	newB := b.Clone()
	for player, loc := range []Move{first, second} {
		newB.locations[player] = loc
		if loc.IsNoMove() {
			continue
		}
		if !newB.IsBlank(loc) {
			exceptions.Panicf("cannot place player %s at %s: cell is blocked or outside the %dx%d board",
				PlayerNum(player), loc, b.width, b.height)
		}
		newB.blocked[loc.Row*b.width+loc.Col] = true
	}
	return newB
}

// WithBlocked returns a new board with the given cells blocked.
func (b *Board) WithBlocked(cells ...Move) *Board {
	newB := b.Clone()
	for _, cell := range cells {
		if !newB.InBounds(cell) {
			exceptions.Panicf("cannot block %s: outside the %dx%d board", cell, b.width, b.height)
		}
		newB.blocked[cell.Row*b.width+cell.Col] = true
	}
	return newB
}

// WithNextPlayer returns a new board with the given player to move.
func (b *Board) WithNextPlayer(player PlayerNum) *Board {
	newB := b.Clone()
	newB.nextPlayer = player
	return newB
}

// NextPlayer implements state.State.
func (b *Board) NextPlayer() PlayerNum { return b.nextPlayer }

// Opponent implements state.State.
func (b *Board) Opponent(player PlayerNum) PlayerNum { return player.Opponent() }

// Location implements state.State.
func (b *Board) Location(player PlayerNum) Move { return b.locations[player] }

// NumOpenCells implements state.State.
func (b *Board) NumOpenCells() int {
	count := 0
	for _, blocked := range b.blocked {
		if !blocked {
			count++
		}
	}
	return count
}

// BlankCells enumerates the blank cells in row-major order.
func (b *Board) BlankCells() []Move {
	cells := make([]Move, 0, len(b.blocked))
	for idx, blocked := range b.blocked {
		if !blocked {
			cells = append(cells, Move{Row: idx / b.width, Col: idx % b.width})
		}
	}
	return cells
}

// LegalMoves implements state.State.
func (b *Board) LegalMoves(player PlayerNum) []Move {
	loc := b.locations[player]
	if loc.IsNoMove() {
		return b.BlankCells()
	}
	moves := make([]Move, 0, len(knightDirections))
	for _, dir := range knightDirections {
		target := Move{Row: loc.Row + dir.Row, Col: loc.Col + dir.Col}
		if b.IsBlank(target) {
			moves = append(moves, target)
		}
	}
	return moves
}

// IsLoser implements state.State: player lost if it is its turn and it can't move.
func (b *Board) IsLoser(player PlayerNum) bool {
	return player == b.nextPlayer && len(b.LegalMoves(player)) == 0
}

// IsWinner implements state.State: player won if it is the opponent's turn and the opponent can't move.
func (b *Board) IsWinner(player PlayerNum) bool {
	opponent := player.Opponent()
	return opponent == b.nextPlayer && len(b.LegalMoves(opponent)) == 0
}

// Act implements state.State. It panics if move is not legal for the player to move.
func (b *Board) Act(move Move) State {
	return b.Play(move)
}

// Play is like Act, but returns the concrete *Board.
func (b *Board) Play(move Move) *Board {
	if !slices.Contains(b.LegalMoves(b.nextPlayer), move) {
		exceptions.Panicf("illegal move %s for player %s at move #%d", move, b.nextPlayer, b.MoveNumber)
	}
	newB := b.Clone()
	newB.blocked[move.Row*b.width+move.Col] = true
	newB.locations[b.nextPlayer] = move
	newB.nextPlayer = b.nextPlayer.Opponent()
	newB.MoveNumber++
	return newB
}

// String returns a plain text dump of the board, for debugging: "1" and "2" are the players' pieces,
// "#" blocked cells and "." blank ones.
func (b *Board) String() string {
	var sb strings.Builder
	for row := range b.height {
		for col := range b.width {
			cell := Move{Row: row, Col: col}
			switch {
			case cell == b.locations[PlayerFirst]:
				sb.WriteString(" 1")
			case cell == b.locations[PlayerSecond]:
				sb.WriteString(" 2")
			case !b.IsBlank(cell):
				sb.WriteString(" #")
			default:
				sb.WriteString(" .")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
