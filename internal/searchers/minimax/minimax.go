// Package minimax implements a plain minimax searcher, without pruning.
//
// It plays the same moves as the alpha-beta searcher, only slower, and it serves as a reference
// to verify the pruning.
package minimax

import (
	"fmt"
	"math"
	"time"

	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/isolationGo/internal/ai"
	"github.com/janpfeifer/isolationGo/internal/searchers"
	. "github.com/janpfeifer/isolationGo/internal/state"
	"k8s.io/klog/v2"
)

// Searcher implements searchers.Searcher with iterative deepening minimax.
type Searcher struct {
	scorer   ai.ValueScorer
	timeout  time.Duration
	maxDepth int
	observer searchers.DepthObserver

	nodes, evals int
}

var _ searchers.Searcher = (*Searcher)(nil)

// DefaultTimeout is the remaining time below which the search is abandoned.
const DefaultTimeout = 10 * time.Millisecond

// New returns a minimax searcher using scorer for the leaf states.
func New(scorer ai.ValueScorer) *Searcher {
	if scorer == nil {
		exceptions.Panicf("minimax.New requires a scorer")
	}
	return &Searcher{scorer: scorer, timeout: DefaultTimeout}
}

// WithTimeout sets the remaining time threshold below which the search is abandoned.
func (mm *Searcher) WithTimeout(timeout time.Duration) *Searcher {
	if timeout < 0 {
		exceptions.Panicf("negative timeout %s", timeout)
	}
	mm.timeout = timeout
	return mm
}

// WithMaxDepth limits the iterative deepening. 0 means no limit.
func (mm *Searcher) WithMaxDepth(maxDepth int) *Searcher {
	mm.maxDepth = max(maxDepth, 0)
	return mm
}

// WithDepthObserver registers a function called after each completed depth.
func (mm *Searcher) WithDepthObserver(observer searchers.DepthObserver) *Searcher {
	mm.observer = observer
	return mm
}

// Evals returns the number of calls to the scorer during the last search.
func (mm *Searcher) Evals() int { return mm.evals }

// String implements searchers.Searcher.
func (mm *Searcher) String() string {
	return fmt.Sprintf("minimax(scorer=%s, timeout=%s, max_depth=%d)", mm.scorer, mm.timeout, mm.maxDepth)
}

// Search implements searchers.Searcher.
func (mm *Searcher) Search(s State, clock searchers.Clock) Move {
	mm.nodes, mm.evals = 0, 0
	start := time.Now()
	move, depth := searchers.IterativeDeepening(s.LegalMoves(s.NextPlayer()), mm.maxDepth,
		func(depth int) (Move, float64, bool) {
			return mm.Minimax(s, depth, clock)
		},
		mm.observer)
	klog.V(2).Infof("minimax: move %s, depth=%d, nodes=%d, evals=%d, elapsed=%s",
		move, depth, mm.nodes, mm.evals, time.Since(start))
	return move
}

// Minimax searches to the given depth, scoring from the perspective of s.NextPlayer().
// If aborted is true, the clock ran out and move and score must be ignored.
func (mm *Searcher) Minimax(s State, depth int, clock searchers.Clock) (move Move, score float64, aborted bool) {
	score, move, aborted = mm.recursion(s, s.NextPlayer(), depth, true, clock)
	return
}

// Value returns the minimax value of s to the given depth, from the perspective of agent,
// who may or may not be the player to move in s.
func (mm *Searcher) Value(s State, agent PlayerNum, depth int, clock searchers.Clock) (score float64, aborted bool) {
	score, _, aborted = mm.recursion(s, agent, depth, s.NextPlayer() == agent, clock)
	return
}

func (mm *Searcher) recursion(s State, agent PlayerNum, depthLeft int, maximizing bool, clock searchers.Clock) (
	bestScore float64, bestMove Move, aborted bool) {
	if clock() < mm.timeout {
		return 0, NoMove, true
	}
	mm.nodes++
	if depthLeft <= 0 {
		mm.evals++
		return mm.scorer.Score(s, agent), s.Location(agent), false
	}
	moves := s.LegalMoves(s.NextPlayer())
	if len(moves) == 0 {
		mm.evals++
		return mm.scorer.Score(s, agent), NoMove, false
	}
	bestMove = NoMove
	bestScore = math.Inf(1)
	if maximizing {
		bestScore = math.Inf(-1)
	}
	for _, move := range moves {
		score, _, childAborted := mm.recursion(s.Act(move), agent, depthLeft-1, !maximizing, clock)
		if childAborted {
			return 0, NoMove, true
		}
		if (maximizing && score > bestScore) || (!maximizing && score < bestScore) {
			bestScore, bestMove = score, move
		}
	}
	return
}
