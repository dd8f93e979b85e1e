// Package extract implements a cost-directed extractor: picking, for a
// given class, the cheapest concrete term it represents under a
// pluggable cost function, and reconstructing it as a RecExpr.
package extract

import "github.com/herbie-fp/eggcore/internal/egraph"

// Cost is the extractor's accumulator type. Costs are summed
// bottom-up and compared with plain ordering, so any CostFunction that
// returns non-negative values composes correctly.
type Cost int64

// CostFunction scores one e-node given its already-known children
// costs. ok is false when a child's cost is not yet known, signaling
// the extractor to defer this node to a later relaxation pass.
type CostFunction interface {
	NodeCost(n egraph.ENode, childCost func(egraph.Id) (Cost, bool)) (cost Cost, ok bool)
}

// AstSize is the default cost function: leaves (constants, symbols)
// are free, every internal node costs 1, and a node's cost is the sum
// of its children's costs plus its own — i.e. the extracted term's
// operator-node count.
type AstSize struct{}

func (AstSize) NodeCost(n egraph.ENode, childCost func(egraph.Id) (Cost, bool)) (Cost, bool) {
	total := Cost(0)
	if !n.IsLeaf() {
		total = 1
	}
	for _, child := range n.Children {
		c, ok := childCost(child)
		if !ok {
			return 0, false
		}
		total += c
	}
	return total, true
}
