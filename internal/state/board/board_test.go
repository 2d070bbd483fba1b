package board

import (
	"testing"

	. "github.com/janpfeifer/isolationGo/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	b := New(DefaultSize, DefaultSize)
	assert.Equal(t, DefaultSize, b.Width())
	assert.Equal(t, DefaultSize, b.Height())
	assert.Equal(t, PlayerFirst, b.NextPlayer())
	assert.Equal(t, 49, b.NumOpenCells())
	assert.Len(t, b.LegalMoves(PlayerFirst), 49)
	assert.Len(t, b.LegalMoves(PlayerSecond), 49)
	assert.Equal(t, NoMove, b.Location(PlayerFirst))
	assert.Equal(t, Move{0, 0}, b.LegalMoves(PlayerFirst)[0])
	assert.Equal(t, Move{6, 6}, b.LegalMoves(PlayerFirst)[48])
	assert.False(t, IsFinished(b))
	assert.Equal(t, PlayerInvalid, Winner(b))

	wide := New(5, 3)
	assert.Equal(t, 5, wide.Width())
	assert.Equal(t, 3, wide.Height())
	assert.Equal(t, 15, wide.NumOpenCells())

	assert.Panics(t, func() { New(0, 3) })
}

func TestKnightMoves(t *testing.T) {
	b := New(7, 7).WithLocations(Move{3, 3}, Move{1, 2})
	assert.Equal(t, []Move{{1, 4}, {2, 1}, {2, 5}, {4, 1}, {4, 5}, {5, 2}, {5, 4}}, b.LegalMoves(PlayerFirst))
	assert.Equal(t, 47, b.NumOpenCells())

	b = b.WithBlocked(Move{1, 4}, Move{5, 4})
	assert.Equal(t, []Move{{2, 1}, {2, 5}, {4, 1}, {4, 5}, {5, 2}}, b.LegalMoves(PlayerFirst))

	// Corner.
	b = New(5, 5).WithLocations(Move{0, 0}, NoMove)
	assert.Equal(t, []Move{{1, 2}, {2, 1}}, b.LegalMoves(PlayerFirst))
	assert.Len(t, b.LegalMoves(PlayerSecond), 24)
}

func TestPlay(t *testing.T) {
	b0 := New(5, 5)
	b1 := b0.Play(Move{2, 2})
	assert.Equal(t, PlayerSecond, b1.NextPlayer())
	assert.Equal(t, Move{2, 2}, b1.Location(PlayerFirst))
	assert.Equal(t, 2, b1.MoveNumber)
	assert.False(t, b1.IsBlank(Move{2, 2}))

	// Original board is not changed.
	assert.True(t, b0.IsBlank(Move{2, 2}))
	assert.Equal(t, PlayerFirst, b0.NextPlayer())
	assert.Equal(t, NoMove, b0.Location(PlayerFirst))

	// Second player can't land on the first player's cell.
	assert.NotContains(t, b1.LegalMoves(PlayerSecond), Move{2, 2})
	assert.Panics(t, func() { b1.Play(Move{2, 2}) })
	assert.Panics(t, func() { b1.Play(Move{5, 0}) })

	s2 := b1.Act(Move{0, 0})
	b2 := s2.(*Board)
	assert.Equal(t, Move{0, 0}, b2.Location(PlayerSecond))

	// First player now moves like a knight, visited cells are blocked.
	assert.Equal(t, []Move{{0, 1}, {0, 3}, {1, 0}, {1, 4}, {3, 0}, {3, 4}, {4, 1}, {4, 3}}, b2.LegalMoves(PlayerFirst))
	assert.Panics(t, func() { b2.Play(Move{1, 1}) })
	b3 := b2.Play(Move{0, 1})
	assert.Equal(t, []Move{{1, 2}, {2, 1}}, b3.LegalMoves(PlayerSecond))
	assert.False(t, b3.IsBlank(Move{2, 2}))
}

func TestEndOfMatch(t *testing.T) {
	// A knight in the center of a 3x3 board can't move.
	b := New(3, 3).WithLocations(Move{1, 1}, Move{0, 0})
	assert.True(t, b.IsLoser(PlayerFirst))
	assert.False(t, b.IsWinner(PlayerFirst))
	assert.True(t, b.IsWinner(PlayerSecond))
	assert.False(t, b.IsLoser(PlayerSecond))
	assert.True(t, IsFinished(b))
	assert.Equal(t, PlayerSecond, Winner(b))

	// Not over while it's not the stuck player's turn.
	b = b.WithNextPlayer(PlayerSecond)
	assert.False(t, b.IsLoser(PlayerFirst))
	assert.False(t, b.IsWinner(PlayerSecond))
	assert.False(t, IsFinished(b))

	// Play until the end.
	b = New(3, 3).WithLocations(Move{0, 0}, Move{2, 2})
	for !IsFinished(b) {
		moves := b.LegalMoves(b.NextPlayer())
		require.NotEmpty(t, moves)
		b = b.Play(moves[0])
	}
	assert.NotEqual(t, PlayerInvalid, Winner(b))
}

func TestWithLocations(t *testing.T) {
	b := New(3, 3)
	assert.Panics(t, func() { b.WithLocations(Move{3, 0}, NoMove) })
	assert.Panics(t, func() { b.WithLocations(Move{1, 1}, Move{1, 1}) })
	assert.Panics(t, func() { b.WithBlocked(Move{-1, 0}) })
}

func TestString(t *testing.T) {
	b := New(3, 3).WithLocations(Move{0, 0}, Move{2, 2}).WithBlocked(Move{1, 1})
	assert.Equal(t, " 1 . .\n . # .\n . . 2\n", b.String())
}
