// Package searchers defines the Searcher interface, the clocks that bound a search in time and
// the iterative deepening loop shared by the depth-limited searchers.
package searchers

import (
	. "github.com/janpfeifer/isolationGo/internal/state"
)

// Searcher is the interface that any of the search algorithms
// must adhere to be valid.
type Searcher interface {
	// Search returns the move to play for s.NextPlayer() before the clock runs out. It returns NoMove
	// only if there are no legal moves.
	Search(s State, clock Clock) Move

	// String returns a description of the searcher, for logging.
	String() string
}
