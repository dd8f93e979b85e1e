package egraph

import (
	"sort"

	"github.com/sasha-s/go-deadlock"
	"github.com/tliron/commonlog"

	"github.com/herbie-fp/eggcore/internal/lang"
)

// Config holds the per-engine flags for constant folding and
// leaf-pruning, modeled as a construction-time field rather than
// process-global state. LeafPrune is read by the graph itself;
// FoldConstants only records the choice, since folding is decided by the
// Analysis passed to New (ConstFold folds, NoopAnalysis does not).
type Config struct {
	FoldConstants bool
	LeafPrune     bool
}

// EGraph is the container: classes keyed by Id, a hash-cons
// memo, a worklist driving rebuild, an analysis, and the per-engine
// unsound latch.
//
// mu is a sasha-s/go-deadlock mutex, not because EGraph supports
// concurrent mutation (it doesn't — callers must serialize access) but as a cheap
// guard that turns an accidental second caller into an immediate,
// diagnosable deadlock-detector trip instead of silently corrupting
// memo/classes state.
type EGraph struct {
	mu deadlock.Mutex

	uf      UnionFind
	memo    map[string]Id
	classes map[Id]*EClass

	worklist []Id

	analysis Analysis
	config   Config
	unsound  bool

	log commonlog.Logger
}

// New constructs an empty e-graph parameterized over analysis.
func New(analysis Analysis, config Config) *EGraph {
	return &EGraph{
		memo:     make(map[string]Id),
		classes:  make(map[Id]*EClass),
		analysis: analysis,
		config:   config,
		log:      commonlog.GetLogger("eggcore.egraph"),
	}
}

// NewDefault constructs an e-graph using the default ConstFold analysis.
func NewDefault(config Config) *EGraph {
	return New(ConstFold{}, config)
}

// Find resolves any Id to its current canonical Id.
func (g *EGraph) Find(id Id) Id { return g.uf.Find(id) }

// Unsound reports whether the analysis merge step has observed two
// incompatible folded values for the same class.
func (g *EGraph) Unsound() bool { return g.unsound }

func (g *EGraph) markUnsound() {
	if !g.unsound {
		g.log.Warning("analysis merge observed two incompatible folded values; AnalysisUnsoundness latched")
	}
	g.unsound = true
}

// Class returns the e-class for a (possibly non-canonical) Id.
func (g *EGraph) Class(id Id) *EClass { return g.classes[g.Find(id)] }

// Size returns the current total e-node count across all classes.
func (g *EGraph) Size() int {
	n := 0
	for _, c := range g.classes {
		n += len(c.Nodes)
	}
	return n
}

// NumClasses returns the current number of (canonical) e-classes.
func (g *EGraph) NumClasses() int { return len(g.classes) }

// ClassIDs returns every canonical class Id, in a deterministic
// ascending order.
func (g *EGraph) ClassIDs() []Id {
	ids := make([]Id, 0, len(g.classes))
	for id := range g.classes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Add canonicalizes n's children, consults the memo, and either returns
// the existing class Id or allocates a new singleton class.
func (g *EGraph) Add(n ENode) Id {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.add(n)
}

func (g *EGraph) add(n ENode) Id {
	n = n.Canonicalize(&g.uf)
	key := n.key()
	if id, ok := g.memo[key]; ok {
		return id
	}

	id := g.uf.Make()
	class := newEClass(id, n)
	g.classes[id] = class
	g.memo[key] = id

	for _, child := range n.Children {
		g.classes[g.Find(child)].addParent(n, id)
	}

	class.Data = g.analysis.Make(g, n)
	g.analysis.Modify(g, id)
	return id
}

// AddExpr adds a concrete term bottom-up, by post-order traversal of the
// source term.
func (g *EGraph) AddExpr(e *lang.RecExpr) Id {
	ids := make([]Id, len(e.Nodes))
	for i, n := range e.Nodes {
		children := make([]Id, len(n.Children))
		for j, c := range n.Children {
			children[j] = ids[c]
		}
		ids[i] = g.Add(ENode{Kind: n.Kind, Token: n.Token, Const: n.Const, Sym: n.Sym, Children: children})
	}
	return ids[e.Root()]
}

// Union merges the classes of a and b, returning the surviving root and
// whether a merge actually occurred.
func (g *EGraph) Union(a, b Id) (Id, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.union(a, b)
}

func (g *EGraph) union(a, b Id) (Id, bool) {
	ra, rb := g.uf.Find(a), g.uf.Find(b)
	if ra == rb {
		return ra, false
	}

	root, changed := g.uf.Union(ra, rb)
	if !changed {
		return root, false
	}

	winner := root
	loser := ra
	if loser == winner {
		loser = rb
	}
	winnerClass, loserClass := g.classes[winner], g.classes[loser]

	if g.analysis.Merge(g, &winnerClass.Data, loserClass.Data) {
		g.enqueue(winner)
	}

	winnerClass.Nodes = append(winnerClass.Nodes, loserClass.Nodes...)
	winnerClass.Parents = append(winnerClass.Parents, loserClass.Parents...)
	winnerClass.dirty = true
	delete(g.classes, loser)

	g.enqueue(winner)
	g.analysis.Modify(g, winner)
	return winner, true
}

func (g *EGraph) enqueue(id Id) {
	g.worklist = append(g.worklist, id)
}

// Rebuild restores canonicity, hash-consing, parent-list integrity, and
// analysis congruence by propagating congruence closure over the
// worklist to a fixed point.
// A second call with an empty worklist is a no-op.
func (g *EGraph) Rebuild() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rebuild()
}

func (g *EGraph) rebuild() {
	for len(g.worklist) > 0 {
		todo := dedupByCanonical(g.worklist, &g.uf)
		g.worklist = g.worklist[:0]
		g.log.Debugf("rebuild pass over %d classes", len(todo))

		for _, id := range todo {
			g.repairClass(id)
		}
	}

	if g.config.LeafPrune {
		for _, c := range g.classes {
			pruneLeaf(c)
		}
	}
}

// repairClass re-canonicalizes every parent e-node of the class named by
// id: it removes the stale memo entry for each parent, recomputes its
// canonical form, and deduplicates the parent list by canonical node —
// two parents that become syntactically equal after canonicalizing
// their children are unioned (this is congruence closure's propagation
// step). The deduplicated, re-canonicalized list becomes the class's
// new parent list.
func (g *EGraph) repairClass(id Id) {
	root := g.Find(id)
	class := g.classes[root]
	if class == nil {
		return
	}
	class.dirty = true

	parents := class.Parents
	class.Parents = nil

	for i := range parents {
		delete(g.memo, parents[i].Node.key())
		parents[i].Node = parents[i].Node.Canonicalize(&g.uf)
	}

	sort.Slice(parents, func(i, j int) bool { return parents[i].Node.key() < parents[j].Node.key() })

	deduped := parents[:0]
	for i, p := range parents {
		if i > 0 && p.Node.key() == deduped[len(deduped)-1].Node.key() {
			g.union(deduped[len(deduped)-1].Class, p.Class)
			continue
		}
		deduped = append(deduped, p)
	}

	for i := range deduped {
		deduped[i].Class = g.Find(deduped[i].Class)
		g.memo[deduped[i].Node.key()] = deduped[i].Class
	}

	class.Parents = deduped

	g.repairNodes(class)
}

// repairNodes re-canonicalizes and deduplicates a class's own e-node
// set, the congruence-closure counterpart to the Parents pass above:
// merging two other classes can make two e-nodes already sitting in
// this same class (e.g. (neg a) and (neg b) once Find(a) == Find(b))
// canonically equal, which must collapse to a single entry to preserve
// "no two e-nodes in a class are canonically equal after rebuild".
func (g *EGraph) repairNodes(class *EClass) {
	root := class.ID
	nodes := class.Nodes

	for i := range nodes {
		delete(g.memo, nodes[i].key())
		nodes[i] = nodes[i].Canonicalize(&g.uf)
	}

	sort.Slice(nodes, func(i, j int) bool { return nodes[i].key() < nodes[j].key() })

	deduped := nodes[:0]
	for i, n := range nodes {
		if i > 0 && n.key() == deduped[len(deduped)-1].key() {
			continue
		}
		deduped = append(deduped, n)
	}

	for _, n := range deduped {
		g.memo[n.key()] = root
	}

	class.Nodes = deduped
}

func dedupByCanonical(worklist []Id, uf *UnionFind) []Id {
	seen := make(map[Id]struct{}, len(worklist))
	out := make([]Id, 0, len(worklist))
	for _, id := range worklist {
		canon := uf.Find(id)
		if _, ok := seen[canon]; !ok {
			seen[canon] = struct{}{}
			out = append(out, canon)
		}
	}
	return out
}

func pruneLeaf(c *EClass) {
	v, ok := c.Data.(*FoldValue)
	if !ok || !v.isDefined() {
		return
	}
	for _, n := range c.Nodes {
		if n.IsLeaf() {
			c.Nodes = []ENode{n}
			return
		}
	}
}

// ClearDirty marks every class's extraction cache fresh; called by
// internal/extract after it finishes a full relaxation pass.
func (g *EGraph) ClearDirty() {
	for _, c := range g.classes {
		c.dirty = false
	}
}

// Dirty reports whether the class named by id changed since the last
// ClearDirty call.
func (g *EGraph) Dirty(id Id) bool {
	c := g.classes[g.Find(id)]
	return c == nil || c.dirty
}
