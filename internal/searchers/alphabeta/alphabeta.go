package alphabeta

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

// Searcher implements the searchers.Searcher interface.
// It is used by players.SearcherScorer, along with the scorer, to implement an AI player (players.Player interface).
//
// It runs alpha-beta pruning searches of increasing depth (iterative deepening), until the clock
// gets below the timeout threshold, and plays the move found by the last search that completed.
//
// A Searcher must not be used concurrently: it keeps the statistics of the last search.
type Searcher struct {
	scorer    ai.ValueScorer
	timeout   time.Duration
	maxDepth  int
	observer  searchers.DepthObserver
	stats     Stats
	startTime time.Time
}

// Assert that Searcher implements searchers.Searcher.
var _ searchers.Searcher = (*Searcher)(nil)

// Stats stores running stats collected during the search: for benchmarking, monitoring and debugging purposes.
type Stats struct {
	// Nodes visited, including the ones aborted by the clock.
	Nodes int

	// Evals is the number of calls to the scorer.
	Evals int

	// Prunes counts the cutoffs.
	Prunes int

	// Depth of the last completed search, 0 if none completed.
	Depth int
}

// DefaultTimeout is the remaining time below which the search is abandoned.
const DefaultTimeout = 10 * time.Millisecond

// New returns an Alpha-Beta Pruning based searchers.Searcher implementation.
// There are many other optional configurations, see methods Searcher.With...
//
// The one obligatory parameter is the scorer used for the leaf states.
//
// See: wikipedia.org/wiki/Alpha-beta_pruning
func New(scorer ai.ValueScorer) *Searcher {
	if scorer == nil {
		exceptions.Panicf("alphabeta.New requires a scorer")
	}
	return &Searcher{
		scorer:  scorer,
		timeout: DefaultTimeout,
	}
}

// WithTimeout sets the remaining time threshold: when the clock reports less than timeout, the search
// in progress is abandoned, and the result of the last completed depth is used.
//
// The default is 10ms (DefaultTimeout).
func (ab *Searcher) WithTimeout(timeout time.Duration) *Searcher {
	if timeout < 0 {
		exceptions.Panicf("negative timeout %s", timeout)
	}
	ab.timeout = timeout
	return ab
}

// WithMaxDepth limits the iterative deepening to maxDepth plies (ply singular). Each player
// playing counts as one ply. See https://en.wikipedia.org/wiki/Ply_(game_theory).
//
// The default is 0, which means no limit: the search deepens until the clock runs out.
func (ab *Searcher) WithMaxDepth(maxDepth int) *Searcher {
	ab.maxDepth = max(maxDepth, 0)
	return ab
}

// WithDepthObserver registers a function called after each completed depth of the iterative deepening.
func (ab *Searcher) WithDepthObserver(observer searchers.DepthObserver) *Searcher {
	ab.observer = observer
	return ab
}

// Stats of the last search.
func (ab *Searcher) Stats() Stats {
	return ab.stats
}

// String implements searchers.Searcher.
func (ab *Searcher) String() string {
	return fmt.Sprintf("alphabeta(scorer=%s, timeout=%s, max_depth=%d)", ab.scorer, ab.timeout, ab.maxDepth)
}

// Search implements the Searcher interface.
//
// It returns NoMove only if the player to move has no legal moves. If not even the depth 1 search
// completes before the clock runs out, a random legal move is returned.
func (ab *Searcher) Search(s State, clock searchers.Clock) Move {
	ab.stats = Stats{}
	ab.startTime = time.Now()
	legalMoves := s.LegalMoves(s.NextPlayer())
	move, depth := searchers.IterativeDeepening(legalMoves, ab.maxDepth,
		func(depth int) (Move, float64, bool) {
			return ab.AlphaBeta(s, depth, clock)
		},
		ab.observeDepth)
	ab.stats.Depth = depth

	if klog.V(2).Enabled() {
		elapsedTime := time.Since(ab.startTime).Seconds()
		klog.Infof("alphabeta: move %s, counts: %+v", move, ab.stats)
		if elapsedTime > 0 {
			klog.Infof("  nodes/s=%.1f, evals/s=%.1f",
				float64(ab.stats.Nodes)/elapsedTime, float64(ab.stats.Evals)/elapsedTime)
		}
	}
	return move
}

func (ab *Searcher) observeDepth(depth int, move Move, score float64) {
	if klog.V(3).Enabled() {
		klog.Infof("alphabeta: depth %d completed in %s: move=%s, score=%.3f, nodes=%d, prunes=%d",
			depth, time.Since(ab.startTime), move, score, ab.stats.Nodes, ab.stats.Prunes)
	}
	if ab.observer != nil {
		ab.observer(depth, move, score)
	}
}

// timedOut reads the clock.
func (ab *Searcher) timedOut(clock searchers.Clock) bool {
	return clock() < ab.timeout
}

// AlphaBeta searches to the given depth, scoring from the perspective of s.NextPlayer().
//
// It returns the best move found and its score. If the clock runs out before the search completes,
// aborted is true and move and score must be ignored.
func (ab *Searcher) AlphaBeta(s State, depth int, clock searchers.Clock) (move Move, score float64, aborted bool) {
	if ab.timedOut(clock) {
		return NoMove, 0, true
	}
	score, move, aborted = ab.recursion(s, s.NextPlayer(), depth, math.Inf(-1), math.Inf(1), true, clock)
	return
}

// recursion of the alpha-beta pruning algorithm, with depthLeft plies to go.
//
// The score is always from the perspective of agent, the player that started the search: maximizing
// tells whether it's agent's turn at this node (maximizing) or its opponent's (minimizing).
//
// When depthLeft is 0 the move returned is agent's location, it's not a decision.
func (ab *Searcher) recursion(s State, agent PlayerNum, depthLeft int, alpha, beta float64, maximizing bool,
	clock searchers.Clock) (bestScore float64, bestMove Move, aborted bool) {
	if ab.timedOut(clock) {
		return 0, NoMove, true
	}
	ab.stats.Nodes++

	if depthLeft <= 0 {
		ab.stats.Evals++
		return ab.scorer.Score(s, agent), s.Location(agent), false
	}
	moves := s.LegalMoves(s.NextPlayer())
	if len(moves) == 0 {
		ab.stats.Evals++
		return ab.scorer.Score(s, agent), NoMove, false
	}

	bestMove = NoMove
	if maximizing {
		bestScore = math.Inf(-1)
	} else {
		bestScore = math.Inf(1)
	}
	for _, move := range moves {
		score, _, childAborted := ab.recursion(s.Act(move), agent, depthLeft-1, alpha, beta, !maximizing, clock)
		if childAborted {
			return 0, NoMove, true
		}
		if maximizing {
			if score > bestScore {
				bestScore, bestMove = score, move
			}
			if score >= beta {
				// Opponent will never let the match get here.
				ab.stats.Prunes++
				return
			}
			alpha = max(alpha, score)
		} else {
			if score < bestScore {
				bestScore, bestMove = score, move
			}
			if score <= alpha {
				ab.stats.Prunes++
				return
			}
			beta = min(beta, score)
		}
	}
	return
}
