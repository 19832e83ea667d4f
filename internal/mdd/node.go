package mdd

import "github.com/alpsolve/alp/internal/model"

// Node is one open search node: a state reached by following Path from
// the root, the reward accumulated getting there (Cost), and an
// admissible upper bound on the best total reward any completion of
// this node can reach (Bound = Cost + relaxation.FastUpperBound(State)).
//
// Relaxed marks a node built by folding several discarded siblings into
// one via Relaxation.Merge (applyWidth's relaxed layer): its Cost/Bound
// are a valid bound on what those siblings could have reached, but its
// Path is inherited from one arbitrary sibling and does not correspond
// to any real decision sequence for State. Relaxed nodes, and every
// descendant reached through them, must never be reported as a
// solution even if State.Terminal() holds.
type Node struct {
	State   *model.AlpState
	Depth   int
	Cost    int
	Bound   int
	Path    []model.Decision
	Relaxed bool
}

// child builds the successor node reached by applying d from n. A child
// of a relaxed node is itself relaxed: Path still isn't a real decision
// sequence once a fabricated ancestor's Path is its prefix.
func (n *Node) child(next *model.AlpState, d model.Decision, cost, bound int) *Node {
	path := make([]model.Decision, len(n.Path)+1)
	copy(path, n.Path)
	path[len(n.Path)] = d

	return &Node{State: next, Depth: n.Depth + 1, Cost: n.Cost + cost, Bound: bound, Path: path, Relaxed: n.Relaxed}
}
