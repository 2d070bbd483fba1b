package alphabeta

import (
	"github.com/janpfeifer/isolationGo/internal/ai"
	"github.com/janpfeifer/isolationGo/internal/parameters"
	"github.com/janpfeifer/isolationGo/internal/searchers"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// NewFromParams creates an alpha-beta searcher if the parameter "ab" is set. Otherwise, it returns nil, nil.
//
// It pops the parameters it uses:
//
//   - ab (bool): selects the alpha-beta searcher.
//   - timeout (time.Duration): remaining time below which the search is abandoned. Default is DefaultTimeout.
//   - max_depth (int): limit to the iterative deepening. Default is 0, meaning no limit.
func NewFromParams(scorer ai.ValueScorer, params parameters.Params) (searchers.Searcher, error) {
	useAB, err := parameters.PopParamOr(params, "ab", false)
	if err != nil {
		return nil, err
	}
	if !useAB {
		return nil, nil
	}
	if scorer == nil {
		return nil, errors.New("alpha-beta searcher requires a scorer")
	}
	timeout, err := parameters.PopParamOr(params, "timeout", DefaultTimeout)
	if err != nil {
		return nil, err
	}
	if timeout < 0 {
		return nil, errors.Errorf("invalid timeout=%s for alpha-beta searcher, it must be >= 0", timeout)
	}
	maxDepth, err := parameters.PopParamOr(params, "max_depth", 0)
	if err != nil {
		return nil, err
	}
	if maxDepth < 0 {
		return nil, errors.Errorf("invalid max_depth=%d for alpha-beta searcher, it must be >= 0", maxDepth)
	}
	ab := New(scorer).WithTimeout(timeout).WithMaxDepth(maxDepth)
	klog.V(1).Infof("Created searcher %s", ab)
	return ab, nil
}
