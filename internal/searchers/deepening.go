package searchers

import (
	. "github.com/janpfeifer/isolationGo/internal/state"
	"k8s.io/klog/v2"
)

// DepthSearch runs a complete search to the given depth. If aborted is true the clock ran out before
// the search finished, and move and score are meaningless.
type DepthSearch func(depth int) (move Move, score float64, aborted bool)

// DepthObserver is called after each depth of an iterative deepening search completes.
type DepthObserver func(depth int, move Move, score float64)

// IterativeDeepening calls search with depth 1, 2, 3, ... until it aborts, or until maxDepth completes
// if maxDepth > 0.
//
// It returns the move of the last depth that completed and the depth it was found at. The result of an
// aborted depth is always discarded. If no depth completed, or the last completed depth returned NoMove,
// a random move among legalMoves is returned (with depth 0 if no depth completed).
//
// If legalMoves is empty, it returns NoMove without calling search.
func IterativeDeepening(legalMoves []Move, maxDepth int, search DepthSearch, observer DepthObserver) (
	bestMove Move, depthReached int) {
	if len(legalMoves) == 0 {
		return NoMove, 0
	}
	bestMove = NoMove
	for depth := 1; maxDepth <= 0 || depth <= maxDepth; depth++ {
		move, score, aborted := search(depth)
		if aborted {
			break
		}
		bestMove, depthReached = move, depth
		if observer != nil {
			observer(depth, move, score)
		}
	}
	if bestMove.IsNoMove() {
		bestMove = RandomMove(legalMoves)
		if klog.V(2).Enabled() {
			klog.Infof("No move found after %d completed depths, playing random move %s", depthReached, bestMove)
		}
	}
	return
}
