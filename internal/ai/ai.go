// Package ai (Artificial Intelligence) defines standard interfaces that AIs for the game
// have to implement.
package ai

import (
	"math"

	. "github.com/janpfeifer/isolationGo/internal/state"
)

var (
	// WinScore for a match won: it is strictly larger than any score of a match not finished.
	WinScore = math.Inf(1)

	// LossScore for a match lost: it is strictly smaller than any score of a match not finished.
	LossScore = math.Inf(-1)
)

// ValueScorer or aka. as a "value scorer" returns a score (value) for a given state, from the perspective
// of the given player: higher is better for player.
//
// Scorers must be deterministic and free of side effects, and return WinScore / LossScore for finished matches.
type ValueScorer interface {
	Score(s State, player PlayerNum) float64
	String() string
}

// IsEndGameAndScore returns weather it's the end of the game, and the hard-coded score of a win/loss
// for player if it is finished.
// If isEnd is false, the score should be ignored.
func IsEndGameAndScore(s State, player PlayerNum) (isEnd bool, score float64) {
	if s.IsLoser(player) {
		return true, LossScore
	}
	if s.IsWinner(player) {
		return true, WinScore
	}
	return false, 0
}

// ScorerFunc adapts a plain function to a ValueScorer.
type ScorerFunc struct {
	Name string
	Fn   func(s State, player PlayerNum) float64
}

// Score implements ValueScorer.
func (f ScorerFunc) Score(s State, player PlayerNum) float64 {
	return f.Fn(s, player)
}

// String implements ValueScorer.
func (f ScorerFunc) String() string {
	return f.Name
}
