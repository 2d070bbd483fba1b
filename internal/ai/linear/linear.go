// Package linear implements a pure Go linear scorer over a small set of mobility features.
//
// The weights are not learned: they are tunable heuristics, either embedded (see PreTrainedBest and
// friends) or read from a file.
package linear

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/isolationGo/internal/ai"
	. "github.com/janpfeifer/isolationGo/internal/state"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Feature indices of the vector returned by Features.
const (
	IdOwnMoves = iota
	IdOpponentMoves
	IdOpenCells

	// NumFeatures is the number of features, not counting the bias.
	NumFeatures
)

// FeatureNames used when printing models.
var FeatureNames = [NumFeatures]string{"OwnMoves", "OpponentMoves", "OpenCells"}

// Features returns the feature vector of state s from the perspective of player.
func Features(s State, player PlayerNum) []float64 {
	features := make([]float64, NumFeatures)
	features[IdOwnMoves] = float64(len(s.LegalMoves(player)))
	features[IdOpponentMoves] = float64(len(s.LegalMoves(s.Opponent(player))))
	features[IdOpenCells] = float64(s.NumOpenCells())
	return features
}

// Scorer is a linear model (one weight per feature + bias) on the feature set.
// It implements ai.ValueScorer.
type Scorer struct {
	name    string
	weights []float64
}

// NewWithWeights creates a new Scorer with the given weights, the last one being the bias.
// Ownership of the weights is transferred.
func NewWithWeights(weights ...float64) *Scorer {
	if len(weights) != NumFeatures+1 {
		exceptions.Panicf("linear model requires %d weights + 1 bias, got %d values", NumFeatures, len(weights))
	}
	return &Scorer{weights: weights}
}

// WithName sets the name of the model, used by String.
func (s *Scorer) WithName(name string) *Scorer {
	s.name = name
	return s
}

// Clone returns a copy of the model.
func (s *Scorer) Clone() *Scorer {
	return &Scorer{name: s.name, weights: append([]float64(nil), s.weights...)}
}

// Assert Scorer is an ai.ValueScorer.
var _ ai.ValueScorer = (*Scorer)(nil)

// String implements ai.ValueScorer.
func (s *Scorer) String() string {
	if s.name == "" {
		return "linear"
	}
	return "linear:" + s.name
}

// Weights returns a copy of the model weights, the last one being the bias.
func (s *Scorer) Weights() []float64 {
	return append([]float64(nil), s.weights...)
}

// Score implements ai.ValueScorer.
func (s *Scorer) Score(st State, player PlayerNum) float64 {
	if isEnd, score := ai.IsEndGameAndScore(st, player); isEnd {
		return score
	}
	return s.ScoreFeatures(Features(st, player))
}

// ScoreFeatures is like Score, but it takes the raw features as input.
func (s *Scorer) ScoreFeatures(features []float64) float64 {
	// Sum start with bias.
	sum := s.weights[NumFeatures]
	for ii, feature := range features {
		sum += feature * s.weights[ii]
	}
	return sum
}

// AsText outputs the model in the format read by LoadFromFile.
func (s *Scorer) AsText() string {
	parts := make([]string, 0, 2*(NumFeatures+1))
	for ii, name := range FeatureNames {
		parts = append(parts, "# "+name, fmt.Sprintf("%g", s.weights[ii]))
	}
	parts = append(parts, "# Bias", fmt.Sprintf("%g", s.weights[NumFeatures]))
	return strings.Join(parts, "\n") + "\n"
}

// Cache of linear models read from disk.
var (
	cacheLinearScorers = map[string]*Scorer{}
	muCache            sync.Mutex
)

// LoadFromFile reads the model weights from fileName: one value per line, the bias last.
// Empty lines and lines starting with "#" or "//" are ignored.
//
// Models are cached by fileName, and reused if the same file is requested again.
func LoadFromFile(fileName string) (*Scorer, error) {
	muCache.Lock()
	defer muCache.Unlock()
	if cached, ok := cacheLinearScorers[fileName]; ok {
		klog.V(1).Infof("Using cache for model '%s'", fileName)
		return cached, nil
	}

	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read linear model file %s", fileName)
	}
	valuesStr := strings.Split(string(data), "\n")
	weights := make([]float64, 0, NumFeatures+1)
	for lineNum, valueStr := range valuesStr {
		valueStr = strings.TrimSpace(valueStr)
		if valueStr == "" || strings.HasPrefix(valueStr, "#") || strings.HasPrefix(valueStr, "//") {
			// Skip empty lines and comments.
			continue
		}
		f64, err := strconv.ParseFloat(valueStr, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse value in file %s, at line number #%d",
				fileName, lineNum+1)
		}
		weights = append(weights, f64)
	}
	if len(weights) != NumFeatures+1 {
		return nil, errors.Errorf("linear model file %s has %d values, but %d features + 1 bias are required",
			fileName, len(weights), NumFeatures)
	}
	s := NewWithWeights(weights...).WithName(fileName)
	cacheLinearScorers[fileName] = s
	return s, nil
}
