package match

import (
	"github.com/herbie-fp/eggcore/internal/egraph"
	"github.com/herbie-fp/eggcore/internal/lang"
)

// Match is one successful match of a Pattern against an e-graph: the
// root class it matched and the hole bindings that made it match.
type Match struct {
	Root  egraph.Id
	Subst Substitution
}

// Search finds every (root, substitution) pair in g satisfying pattern.
// Each e-class is tried independently; within a
// class, every e-node is tried and every substitution found is kept,
// with duplicates at the same root dropped.
func Search(g *egraph.EGraph, pattern *Pattern) []Match {
	var out []Match
	for _, id := range g.ClassIDs() {
		seen := make(map[string]struct{})
		for _, subst := range matchClass(g, pattern, id, Substitution{}) {
			key := subst.key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, Match{Root: id, Subst: subst})
		}
	}
	return out
}

// matchClass returns every substitution (extending base) under which
// pattern matches some e-node owned by the class named by id.
func matchClass(g *egraph.EGraph, pattern *Pattern, id egraph.Id, base Substitution) []Substitution {
	if pattern.IsHole() {
		if next, ok := base.merge(pattern.Hole, g.Find(id)); ok {
			return []Substitution{next}
		}
		return nil
	}

	class := g.Class(id)
	if class == nil {
		return nil
	}

	var out []Substitution
	for _, n := range class.Nodes {
		out = append(out, matchNode(g, pattern, n, base)...)
	}
	return out
}

// matchNode matches pattern (known non-hole) against one concrete e-node,
// recursing into matchClass for each child.
func matchNode(g *egraph.EGraph, pattern *Pattern, n egraph.ENode, base Substitution) []Substitution {
	switch {
	case pattern.Const != nil:
		if n.Kind == lang.KindConst && n.Const.Equal(*pattern.Const) {
			return []Substitution{base}
		}
		return nil

	case pattern.Sym != nil:
		if n.Kind == lang.KindSymbol && n.Sym.Equal(*pattern.Sym) {
			return []Substitution{base}
		}
		return nil

	default: // compound pattern
		isCompound := n.Kind == lang.KindOp || n.Kind == lang.KindOther
		if !isCompound || n.Token != pattern.Op || len(n.Children) != len(pattern.Args) {
			return nil
		}
		substs := []Substitution{base}
		for i, argPattern := range pattern.Args {
			var next []Substitution
			for _, s := range substs {
				next = append(next, matchClass(g, argPattern, n.Children[i], s)...)
			}
			substs = next
			if len(substs) == 0 {
				return nil
			}
		}
		return substs
	}
}
