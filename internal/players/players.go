// Package players provides a factory of AI players from configuration strings.
// It also allows scorer and searcher providers to register themselves.
package players

import (
	"github.com/janpfeifer/isolationGo/internal/ai"
	"github.com/janpfeifer/isolationGo/internal/parameters"
	"github.com/janpfeifer/isolationGo/internal/searchers"
	. "github.com/janpfeifer/isolationGo/internal/state"
)

// Player is anything that is able to play the game.
type Player interface {
	// Play returns the move chosen for s.NextPlayer(), before clock runs out.
	// It returns NoMove only if there are no legal moves.
	Play(s State, clock searchers.Clock) Move

	// Finalize is called at the end of a match.
	Finalize()

	// String describes the player, for logging.
	String() string
}

// ScorerBuilder creates a scorer from the parameters, popping the ones it used.
// It returns nil, nil if the parameters don't select it.
type ScorerBuilder func(params parameters.Params) (ai.ValueScorer, error)

// SearcherBuilder creates a searcher from the parameters, popping the ones it used.
// It returns nil, nil if the parameters don't select it.
type SearcherBuilder func(scorer ai.ValueScorer, params parameters.Params) (searchers.Searcher, error)

var (
	// RegisteredScorers are tried, in order, when creating a new player.
	RegisteredScorers []ScorerBuilder

	// RegisteredSearchers are tried, in order, when creating a new player.
	RegisteredSearchers []SearcherBuilder
)

// RegisterScorer so it can be used by any of the front-ends. Usually called from an init() function.
func RegisterScorer(builder ScorerBuilder) {
	RegisteredScorers = append(RegisteredScorers, builder)
}

// RegisterSearcher so it can be used by any of the front-ends. Usually called from an init() function.
func RegisterSearcher(builder SearcherBuilder) {
	RegisteredSearchers = append(RegisteredSearchers, builder)
}

var (
	// DefaultPlayerConfig is used if no configuration was given to the AI. The value may be changed by the
	// binary.
	DefaultPlayerConfig = "linear,ab"
)
