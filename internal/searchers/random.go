package searchers

import (
	"math/rand/v2"

	"github.com/janpfeifer/isolationGo/internal/ai"
	"github.com/janpfeifer/isolationGo/internal/parameters"
	. "github.com/janpfeifer/isolationGo/internal/state"
)

// RandomMove returns one of moves picked uniformly at random.
// It returns NoMove if moves is empty.
func RandomMove(moves []Move) Move {
	if len(moves) == 0 {
		return NoMove
	}
	return moves[rand.IntN(len(moves))]
}

// NewRandom returns a Searcher that plays a random legal move, without looking at the clock.
func NewRandom() Searcher {
	return randomSearcher{}
}

// randomSearcher plays uniformly at random.
type randomSearcher struct{}

// Assert randomSearcher is a Searcher.
var _ Searcher = randomSearcher{}

// Search implements the Searcher interface.
func (randomSearcher) Search(s State, _ Clock) Move {
	return RandomMove(s.LegalMoves(s.NextPlayer()))
}

// String implements the Searcher interface.
func (randomSearcher) String() string {
	return "random"
}

// NewRandomFromParams returns the random searcher if the parameter "random" is set, otherwise nil, nil.
// The scorer is ignored.
func NewRandomFromParams(_ ai.ValueScorer, params parameters.Params) (Searcher, error) {
	useRandom, err := parameters.PopParamOr(params, "random", false)
	if err != nil || !useRandom {
		return nil, err
	}
	return NewRandom(), nil
}
