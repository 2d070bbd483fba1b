package minimax

import (
	"github.com/janpfeifer/isolationGo/internal/ai"
	"github.com/janpfeifer/isolationGo/internal/parameters"
	"github.com/janpfeifer/isolationGo/internal/searchers"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// NewFromParams creates a minimax searcher if the parameter "minimax" is set. Otherwise, it returns nil, nil.
// It also pops "timeout" and "max_depth", with the same meaning as for the alpha-beta searcher.
func NewFromParams(scorer ai.ValueScorer, params parameters.Params) (searchers.Searcher, error) {
	useMinimax, err := parameters.PopParamOr(params, "minimax", false)
	if err != nil || !useMinimax {
		return nil, err
	}
	if scorer == nil {
		return nil, errors.New("minimax searcher requires a scorer")
	}
	timeout, err := parameters.PopParamOr(params, "timeout", DefaultTimeout)
	if err != nil {
		return nil, err
	}
	if timeout < 0 {
		return nil, errors.Errorf("invalid timeout=%s for minimax searcher, it must be >= 0", timeout)
	}
	maxDepth, err := parameters.PopParamOr(params, "max_depth", 0)
	if err != nil {
		return nil, err
	}
	if maxDepth < 0 {
		return nil, errors.Errorf("invalid max_depth=%d for minimax searcher, it must be >= 0", maxDepth)
	}
	mm := New(scorer).WithTimeout(timeout).WithMaxDepth(maxDepth)
	klog.V(1).Infof("Created searcher %s", mm)
	return mm, nil
}
