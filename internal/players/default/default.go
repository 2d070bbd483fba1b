// Package _default registers the default players that can be included in any
// front-end for isolationGo.
//
// Currently, it includes the linear scorers and the alpha-beta, minimax and random searchers.
package _default

import (
	"github.com/janpfeifer/isolationGo/internal/ai/linear"
	"github.com/janpfeifer/isolationGo/internal/players"
	"github.com/janpfeifer/isolationGo/internal/searchers"
	"github.com/janpfeifer/isolationGo/internal/searchers/alphabeta"
	"github.com/janpfeifer/isolationGo/internal/searchers/minimax"
)

func init() {
	players.RegisterScorer(linear.NewFromParams)
	players.RegisterSearcher(alphabeta.NewFromParams)
	players.RegisterSearcher(minimax.NewFromParams)
	players.RegisterSearcher(searchers.NewRandomFromParams)
}
