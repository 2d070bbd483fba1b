package minimax

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/janpfeifer/isolationGo/internal/ai/linear"
	"github.com/janpfeifer/isolationGo/internal/parameters"
	"github.com/janpfeifer/isolationGo/internal/searchers"
	. "github.com/janpfeifer/isolationGo/internal/state"
	"github.com/janpfeifer/isolationGo/internal/state/board"
	"github.com/janpfeifer/isolationGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var neverExpires = searchers.FixedClock(time.Hour)

func TestMinimax(t *testing.T) {
	tree := statetest.NewTree(statetest.Branch("root",
		statetest.Branch("A", statetest.Leaf("A1", 3), statetest.Leaf("A2", 12)),
		statetest.Branch("B", statetest.Leaf("B1", 5), statetest.Leaf("B2", 4)),
		statetest.Leaf("C", 1),
	))
	scorer := &statetest.Scorer{}
	mm := New(scorer)
	move, score, aborted := mm.Minimax(tree, 2, neverExpires)
	require.False(t, aborted)
	assert.Equal(t, statetest.MoveTo(1), move)
	assert.Equal(t, 4.0, score)
	assert.Equal(t, []string{"A1", "A2", "B1", "B2", "C"}, scorer.Evaluated)
	assert.Equal(t, 5, mm.Evals())

	// Value from the perspective of the first player, at the second player's turn.
	value, aborted := mm.Value(tree.Act(statetest.MoveTo(0)), PlayerFirst, 1, neverExpires)
	require.False(t, aborted)
	assert.Equal(t, 3.0, value)
	value, _ = mm.Value(tree.Act(statetest.MoveTo(0)), PlayerSecond, 1, neverExpires)
	assert.Equal(t, -3.0, value)

	// Aborted.
	_, _, aborted = mm.Minimax(tree, 2, searchers.FixedClock(0))
	assert.True(t, aborted)
}

func TestAllMovesLose(t *testing.T) {
	tree := statetest.NewTree(statetest.Branch("root",
		statetest.Leaf("A", math.Inf(-1)), statetest.Leaf("B", math.Inf(-1))))
	move, score, _ := New(&statetest.Scorer{}).Minimax(tree, 1, neverExpires)
	assert.Equal(t, NoMove, move)
	assert.Equal(t, math.Inf(-1), score)
}

func TestSearch(t *testing.T) {
	b := board.New(4, 4).WithLocations(Move{0, 0}, Move{3, 3})
	var depths []int
	mm := New(linear.PreTrainedBest).WithMaxDepth(3).
		WithDepthObserver(func(depth int, _ Move, _ float64) { depths = append(depths, depth) })
	move := mm.Search(b, neverExpires)
	assert.Contains(t, b.LegalMoves(PlayerFirst), move)
	assert.Equal(t, []int{1, 2, 3}, depths)

	// Fallback when the clock is already out.
	move = New(linear.PreTrainedBest).Search(b, searchers.FixedClock(0))
	assert.Contains(t, b.LegalMoves(PlayerFirst), move)

	// No moves.
	stuck := board.New(3, 3).WithLocations(Move{1, 1}, Move{0, 0})
	assert.Equal(t, NoMove, New(linear.PreTrainedBest).Search(stuck, neverExpires))
}

func TestNewFromParams(t *testing.T) {
	params := parameters.NewFromConfigString("minimax,max_depth=2,timeout=1ms,linear")
	s, err := NewFromParams(linear.PreTrainedBest, params)
	require.NoError(t, err)
	require.IsType(t, &Searcher{}, s)
	mm := s.(*Searcher)
	assert.Equal(t, 2, mm.maxDepth)
	assert.Equal(t, time.Millisecond, mm.timeout)
	assert.Equal(t, parameters.Params{"linear": ""}, params)

	s, err = NewFromParams(linear.PreTrainedBest, parameters.NewFromConfigString("ab"))
	require.NoError(t, err)
	assert.Nil(t, s)

	_, err = NewFromParams(linear.PreTrainedBest, parameters.NewFromConfigString("minimax,max_depth=-2"))
	assert.Error(t, err)
	_, err = NewFromParams(linear.PreTrainedBest, parameters.NewFromConfigString("minimax,timeout=-5ms"))
	assert.Error(t, err)

	// Zero timeout still stops once the context is done.
	s, err = NewFromParams(linear.PreTrainedBest, parameters.NewFromConfigString("minimax,timeout=0s"))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	b := board.New(4, 4).WithLocations(Move{0, 0}, Move{3, 3})
	assert.Contains(t, b.LegalMoves(PlayerFirst), s.Search(b, searchers.ContextClock(ctx, time.Hour)))
}
