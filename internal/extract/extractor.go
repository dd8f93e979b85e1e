package extract

import (
	"fmt"

	"github.com/tliron/commonlog"

	"github.com/herbie-fp/eggcore/internal/egraph"
	"github.com/herbie-fp/eggcore/internal/lang"
)

type best struct {
	cost Cost
	node egraph.ENode
}

// Extractor caches the best known e-node per class across calls. When no
// class is marked dirty since the last extraction, the cached choices are
// reused as they are; when any class is dirty, the relaxation pass runs
// again over every class, starting from the cached choices (cached
// entries are only ever replaced by cheaper ones, never discarded).
type Extractor struct {
	g    *egraph.EGraph
	cost CostFunction
	memo map[egraph.Id]best
	log  commonlog.Logger
}

// New creates an Extractor over g using the given cost function.
func New(g *egraph.EGraph, cost CostFunction) *Extractor {
	return &Extractor{g: g, cost: cost, memo: make(map[egraph.Id]best), log: commonlog.GetLogger("eggcore.extract")}
}

// Extract returns the cheapest concrete term represented by root's
// class, along with its cost.
func (e *Extractor) Extract(root egraph.Id) (*lang.RecExpr, Cost, error) {
	e.relax()

	root = e.g.Find(root)
	b, ok := e.memo[root]
	if !ok {
		return nil, 0, fmt.Errorf("class %d has no extractable term (cyclic without a base case)", root)
	}

	rec := &lang.RecExpr{}
	visited := make(map[egraph.Id]int)
	e.build(rec, root, visited)
	return rec, b.cost, nil
}

// relax recomputes best for every class when at least one class is
// marked dirty (or nothing is cached yet), iterating to a fixed point: a
// class's best choice can depend on a sibling class whose own best just
// improved in the same pass.
func (e *Extractor) relax() {
	dirty := false
	for _, id := range e.g.ClassIDs() {
		if e.g.Dirty(id) {
			dirty = true
			break
		}
	}
	if !dirty && len(e.memo) > 0 {
		return
	}

	for changed := true; changed; {
		changed = false
		for _, id := range e.g.ClassIDs() {
			class := e.g.Class(id)
			for _, n := range class.Nodes {
				cost, ok := e.cost.NodeCost(n, e.childCost)
				if !ok {
					continue
				}
				if cur, have := e.memo[id]; !have || cost < cur.cost {
					e.memo[id] = best{cost: cost, node: n}
					changed = true
				}
			}
		}
	}
	e.log.Debugf("extraction relaxation settled over %d classes", len(e.memo))
	e.g.ClearDirty()
}

func (e *Extractor) childCost(id egraph.Id) (Cost, bool) {
	b, ok := e.memo[e.g.Find(id)]
	if !ok {
		return 0, false
	}
	return b.cost, true
}

// build reconstructs the chosen e-node tree into rec in post-order,
// reusing a node index for any class already visited on this path so
// shared subterms are shared in the output too.
func (e *Extractor) build(rec *lang.RecExpr, id egraph.Id, visited map[egraph.Id]int) int {
	id = e.g.Find(id)
	if idx, ok := visited[id]; ok {
		return idx
	}

	n := e.memo[id].node
	children := make([]int, len(n.Children))
	for i, c := range n.Children {
		children[i] = e.build(rec, c, visited)
	}

	node := lang.Node{Kind: n.Kind, Token: n.Token, Const: n.Const, Sym: n.Sym, Children: children}
	rec.Nodes = append(rec.Nodes, node)
	idx := len(rec.Nodes) - 1
	visited[id] = idx
	return idx
}
