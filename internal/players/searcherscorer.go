package players

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/janpfeifer/isolationGo/internal/ai"
	"github.com/janpfeifer/isolationGo/internal/generics"
	"github.com/janpfeifer/isolationGo/internal/parameters"
	"github.com/janpfeifer/isolationGo/internal/profilers"
	"github.com/janpfeifer/isolationGo/internal/searchers"
	. "github.com/janpfeifer/isolationGo/internal/state"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// SearcherScorer is a standard set up for an AI: a searcher and a scorer.
// It implements the Player interface.
type SearcherScorer struct {
	Searcher searchers.Searcher
	Scorer   ai.ValueScorer

	// MatchName is used for logging only.
	MatchName string

	numMoves int
}

// Assert that SearcherScorer is a Player.
var _ Player = &SearcherScorer{}

// New creates a new AI player given the configuration string.
//
// Args:
//
//   - config: a comma-separated list of parameters with optional values associated. Exactly one scorer
//     (e.g. "linear") and one searcher (e.g. "ab") must be defined. If empty, the default is given by
//     DefaultPlayerConfig. E.g.: "linear=custom,ab,timeout=10ms"
//
// Typical parameters:
//
//   - linear (string): Configure to use the linear scorer. Default value is "best", and other valid values are
//     "custom", "improved", "open", "aggressive" or a path to the linear model to be loaded.
//   - ab (bool): Use the iterative deepening alpha-beta pruning searcher.
//   - minimax (bool): Use the iterative deepening minimax searcher, without pruning.
//   - random (bool): Play random moves.
//   - timeout (time.Duration): The searcher abandons the search when less than this is left in the clock.
//     Default is 10ms.
//   - max_depth (int): Max depth of search, default is 0, meaning the search is limited only by the clock.
//
// More details on the config are dependent on the module used.
func New(config string) (*SearcherScorer, error) {
	if config == "" {
		config = DefaultPlayerConfig
	}
	player, err := NewFromParams(parameters.NewFromConfigString(config))
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to create AI player from %q", config)
	}
	return player, nil
}

// NewFromParams creates a new AI player from the parsed parameters. See New for the parameters accepted.
// The params are consumed by the scorer and searcher builders.
func NewFromParams(params parameters.Params) (*SearcherScorer, error) {
	if len(RegisteredScorers) == 0 {
		return nil, errors.New("no registered scorers. Perhaps you need to import _ \"github.com/janpfeifer/isolationGo/internal/players/default\" to your binary ?")
	}
	if len(RegisteredSearchers) == 0 {
		return nil, errors.New("no registered searchers. Perhaps you need to import _ \"github.com/janpfeifer/isolationGo/internal/players/default\" to your binary ?")
	}
	player := &SearcherScorer{}

	// Find scorer.
	for _, builder := range RegisteredScorers {
		s, err := builder(params)
		if err != nil {
			return nil, err
		}
		if s == nil {
			// Not this type of scorer.
			continue
		}
		if player.Scorer != nil {
			return nil, errors.Errorf("multiple scorers defined: %s and %s", player.Scorer, s)
		}
		player.Scorer = s
	}
	if player.Scorer == nil {
		return nil, errors.New("no scorer defined")
	}

	// Find searcher.
	for _, builder := range RegisteredSearchers {
		s, err := builder(player.Scorer, params)
		if err != nil {
			return nil, err
		}
		if s == nil {
			continue
		}
		if player.Searcher != nil {
			return nil, errors.Errorf("multiple searchers defined: %s and %s", player.Searcher, s)
		}
		player.Searcher = s
	}
	if player.Searcher == nil {
		return nil, errors.New("no searcher defined")
	}

	// Check that all parameters were processed.
	if len(params) > 0 {
		return nil, errors.Errorf("unknown AI parameters \"%s\" passed",
			strings.Join(slices.Collect(generics.SortedKeys(params)), "\", \""))
	}
	klog.V(1).Infof("Created player %s", player)
	return player, nil
}

// WithMatchName sets the name of the match used in the logs.
func (p *SearcherScorer) WithMatchName(name string) *SearcherScorer {
	p.MatchName = name
	return p
}

// String implements Player.
func (p *SearcherScorer) String() string {
	if p.Searcher == nil {
		return fmt.Sprintf("<finalized>[%s]", p.MatchName)
	}
	return p.Searcher.String()
}

// Play implements the Player interface: it chooses a move for the player to move in s.
func (p *SearcherScorer) Play(s State, clock searchers.Clock) Move {
	p.numMoves++
	var move Move
	profilers.LabelSearch(context.Background(), p.Searcher.String(), p.MatchName, func(context.Context) {
		move = p.Searcher.Search(s, clock)
	})
	if klog.V(2).Enabled() {
		klog.Infof("[%s] Move #%d: AI %s (%s) playing %s, %s left",
			p.MatchName, p.numMoves, s.NextPlayer(), p.Scorer, move, clock())
	}
	return move
}

// Finalize is called at the end of a match.
func (p *SearcherScorer) Finalize() {
	if klog.V(1).Enabled() {
		klog.Infof("[%s] Player (scorer=%s) finalized after %d moves", p.MatchName, p.Scorer, p.numMoves)
	}
	p.Scorer = nil
	p.Searcher = nil
}
