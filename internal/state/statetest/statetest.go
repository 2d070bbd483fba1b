// Package statetest provides synthetic game trees with known leaf scores, to test searchers.
package statetest

import (
	"fmt"
	"strings"

	"github.com/gomlx/exceptions"
	. "github.com/janpfeifer/isolationGo/internal/state"
)

// Node of a synthetic game tree. Children are reached by the moves returned by MoveTo.
//
// Score is the value of the node from PlayerFirst's perspective, returned by Scorer whenever
// the node is evaluated (at a leaf or at the search depth limit).
type Node struct {
	Name     string
	Score    float64
	Children []*Node
}

// Leaf creates a node without children.
func Leaf(name string, score float64) *Node {
	return &Node{Name: name, Score: score}
}

// Branch creates an internal node. Its score is only used if the search is cut by depth there.
func Branch(name string, children ...*Node) *Node {
	return &Node{Name: name, Children: children}
}

// MoveTo returns the move that leads to the child with index idx.
func MoveTo(idx int) Move {
	return Move{Row: 0, Col: idx}
}

// Tree is a state.State walking over a tree of Node. Players alternate at every level,
// PlayerFirst plays at the root.
type Tree struct {
	Node       *Node
	nextPlayer PlayerNum
}

// Assert Tree is a State.
var _ State = (*Tree)(nil)

// NewTree returns the state at the root of the tree, with PlayerFirst to play.
func NewTree(root *Node) *Tree {
	return &Tree{Node: root, nextPlayer: PlayerFirst}
}

// NextPlayer implements state.State.
func (t *Tree) NextPlayer() PlayerNum { return t.nextPlayer }

// LegalMoves implements state.State: one move per child, for the player to move. The opponent
// has no moves in a tree.
func (t *Tree) LegalMoves(player PlayerNum) []Move {
	if player != t.nextPlayer {
		return nil
	}
	moves := make([]Move, len(t.Node.Children))
	for idx := range moves {
		moves[idx] = MoveTo(idx)
	}
	return moves
}

// Act implements state.State.
func (t *Tree) Act(move Move) State {
	if move.Row != 0 || move.Col < 0 || move.Col >= len(t.Node.Children) {
		exceptions.Panicf("invalid move %s on node %q with %d children", move, t.Node.Name, len(t.Node.Children))
	}
	return &Tree{Node: t.Node.Children[move.Col], nextPlayer: t.nextPlayer.Opponent()}
}

// IsLoser implements state.State. Trees have no terminal states: leaves are scored by Scorer.
func (t *Tree) IsLoser(PlayerNum) bool { return false }

// IsWinner implements state.State.
func (t *Tree) IsWinner(PlayerNum) bool { return false }

// Opponent implements state.State.
func (t *Tree) Opponent(player PlayerNum) PlayerNum { return player.Opponent() }

// NumOpenCells implements state.State.
func (t *Tree) NumOpenCells() int { return 0 }

// Location implements state.State. Trees have no pieces.
func (t *Tree) Location(PlayerNum) Move { return NoMove }

// Scorer returns the Node.Score of the tree states, and keeps track of which nodes were evaluated.
// It implements ai.ValueScorer.
type Scorer struct {
	Evaluated []string
}

// Score returns the node score from player's perspective.
func (s *Scorer) Score(st State, player PlayerNum) float64 {
	t, ok := st.(*Tree)
	if !ok {
		exceptions.Panicf("statetest.Scorer can only score *statetest.Tree, got %T", st)
	}
	s.Evaluated = append(s.Evaluated, t.Node.Name)
	if player == PlayerSecond {
		return -t.Node.Score
	}
	return t.Node.Score
}

// Evals returns the number of calls to Score.
func (s *Scorer) Evals() int { return len(s.Evaluated) }

// Reset the list of evaluated nodes.
func (s *Scorer) Reset() { s.Evaluated = nil }

// String implements ai.ValueScorer.
func (s *Scorer) String() string {
	return fmt.Sprintf("statetest.Scorer(evals=%s)", strings.Join(s.Evaluated, ","))
}
