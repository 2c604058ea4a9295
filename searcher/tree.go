package searcher

import (
	"fmt"
	"math"

	"github.com/dustinmichels/monte-carlo-tictactoe/game"
)

const noParent = -1

// node is one vertex of the search tree. Rewards are accumulated from the
// perspective of chooser, the player whose move led into the node.
type node struct {
	state    game.State
	move     game.Move // inbound move, nil at the root
	chooser  game.Player
	result   game.Result
	parent   int
	children []int
	untried  []game.Move // legal moves not yet expanded
	rewards  float64
	visits   int
}

func (n *node) fullyExpanded() bool { return len(n.untried) == 0 }

// tree is an arena of nodes rooted at the state under search. Nodes refer
// to each other by index, parents upward and children downward. A tree
// lives for exactly one search call and is discarded with its result.
type tree struct {
	nodes []node
}

func newTree(root game.State) *tree {
	t := &tree{nodes: make([]node, 0, 64)}
	// In an alternating game the root position was reached by the
	// opponent of the side to move.
	t.add(root, nil, root.Player().Opponent(), noParent)
	return t
}

func (t *tree) add(state game.State, move game.Move, chooser game.Player, parent int) int {
	id := len(t.nodes)
	t.nodes = append(t.nodes, node{
		state:   state,
		move:    move,
		chooser: chooser,
		result:  state.Classify(),
		parent:  parent,
		untried: state.LegalMoves(),
	})
	return id
}

// expand materializes untried move i of the given node as a new child and
// returns the child's id.
func (t *tree) expand(id, i int) (int, error) {
	move := t.nodes[id].untried[i]
	next, err := t.nodes[id].state.Play(move)
	if err != nil {
		return noParent, fmt.Errorf("expanding %v: %w", move, err)
	}
	chooser := t.nodes[id].state.Player()
	t.nodes[id].untried = append(t.nodes[id].untried[:i], t.nodes[id].untried[i+1:]...)

	child := t.add(next, move, chooser, id)
	t.nodes[id].children = append(t.nodes[id].children, child)
	return child, nil
}

// bestChild returns the child of id maximizing UCB1. Ties keep the first
// child encountered, so selection is deterministic.
func (t *tree) bestChild(id int, cSquared float64) int {
	parent := &t.nodes[id]
	normalizer := cSquared * math.Log(float64(parent.visits))

	best := noParent
	bestScore := math.Inf(-1)
	for _, child := range parent.children {
		score := ucb1(t.nodes[child].rewards, t.nodes[child].visits, normalizer)
		if score > bestScore {
			best = child
			bestScore = score
		}
	}
	return best
}

// backup walks from id to the root, crediting the rollout result at each
// node from its chooser's perspective.
func (t *tree) backup(id int, result game.Result) {
	for id != noParent {
		n := &t.nodes[id]
		n.visits++
		n.rewards += reward(n.chooser, result)
		id = n.parent
	}
}

// reward scores a terminal result for the given player.
func reward(player game.Player, result game.Result) float64 {
	switch {
	case result.Status == game.Drawn:
		return Draw
	case result.Winner == player:
		return Win
	default:
		return Loss
	}
}

// rootStats summarizes the root's children in the root state's legal-move
// order, independent of the order they were expanded in, so downstream
// tiebreaks follow move order.
func (t *tree) rootStats() []Stat {
	root := &t.nodes[0]
	stats := make([]Stat, 0, len(root.children))
	for _, move := range root.state.LegalMoves() {
		for _, child := range root.children {
			c := &t.nodes[child]
			if c.move == move {
				stats = append(stats, Stat{Move: c.move, Visits: c.visits, Rewards: c.rewards})
				break
			}
		}
	}
	return stats
}
