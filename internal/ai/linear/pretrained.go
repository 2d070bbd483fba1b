package linear

import (
	"github.com/janpfeifer/isolationGo/internal/ai"
	"github.com/janpfeifer/isolationGo/internal/parameters"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Embedded models.

var (
	// PreTrainedCustom is own - 2*opp + (open/2 + 2*own)/13: the mobility differential dominates,
	// while the open cells and an extra bonus on own mobility break ties.
	PreTrainedCustom = NewWithWeights(
		// IdOwnMoves: mobility + 2/13 bonus.
		1+2.0/13,
		// IdOpponentMoves
		-2,
		// IdOpenCells
		0.5/13,
		// Bias: *Must always be last*
		0,
	).WithName("custom")

	// PreTrainedImproved is own - opp.
	PreTrainedImproved = NewWithWeights(1, -1, 0, 0).WithName("improved")

	// PreTrainedOpen is own moves only.
	PreTrainedOpen = NewWithWeights(1, 0, 0, 0).WithName("open")

	// PreTrainedAggressive is own - 2*opp, chasing the opponent.
	PreTrainedAggressive = NewWithWeights(1, -2, 0, 0).WithName("aggressive")

	// PreTrainedBest is an alias to the current best linear model.
	PreTrainedBest = PreTrainedCustom.Clone().WithName("best")

	embedded = []*Scorer{PreTrainedBest, PreTrainedCustom, PreTrainedImproved, PreTrainedOpen, PreTrainedAggressive}
)

// NewFromParams returns the linear scorer if "linear" is set, otherwise it returns nil (and no error).
// It returns an error if the model is not embedded, and it is a path to a file that can't be loaded or parsed.
func NewFromParams(params parameters.Params) (ai.ValueScorer, error) {
	if _, found := params["linear"]; !found {
		return nil, nil
	}
	modelName, err := parameters.PopParamOr(params, "linear", "best")
	if err != nil {
		return nil, err
	}
	if modelName == "" {
		modelName = "best"
	}
	var selected *Scorer
	for _, scorer := range embedded {
		if modelName == scorer.name {
			selected = scorer
		}
	}
	if selected == nil {
		selected, err = LoadFromFile(modelName)
		if err != nil {
			err = errors.WithMessagef(err, "failed to load model \"linear=%s\"", modelName)
			return nil, err
		}
	}
	klog.V(1).Infof("Linear model %s with weights %v", selected, selected.weights)
	return selected, nil
}
