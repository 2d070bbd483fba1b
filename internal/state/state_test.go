package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayerNum(t *testing.T) {
	assert.Equal(t, PlayerSecond, PlayerFirst.Opponent())
	assert.Equal(t, PlayerFirst, PlayerSecond.Opponent())
	assert.Equal(t, "First", PlayerFirst.String())
	assert.Equal(t, "Second", PlayerSecond.String())
	assert.Equal(t, PlayerInvalid, PlayerInvalid.Opponent())
}

func TestMove(t *testing.T) {
	assert.True(t, NoMove.IsNoMove())
	assert.False(t, Move{0, 0}.IsNoMove())
	assert.Equal(t, "(2, 3)", Move{2, 3}.String())
	assert.Equal(t, "(no move)", NoMove.String())
}
