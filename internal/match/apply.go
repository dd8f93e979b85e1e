package match

import (
	"github.com/herbie-fp/eggcore/internal/egraph"
	"github.com/herbie-fp/eggcore/internal/lang"
)

// Instantiate adds pattern to g under subst, returning the class Id of
// the resulting e-node. Every hole in pattern must be bound in subst;
// callers validate this at rule-registration time, not here.
func Instantiate(g *egraph.EGraph, pattern *Pattern, subst Substitution) egraph.Id {
	switch {
	case pattern.IsHole():
		return subst[pattern.Hole]

	case pattern.Const != nil:
		return g.Add(egraph.ENode{Kind: lang.KindConst, Const: *pattern.Const})

	case pattern.Sym != nil:
		return g.Add(egraph.ENode{Kind: lang.KindSymbol, Sym: *pattern.Sym})

	default:
		children := make([]egraph.Id, len(pattern.Args))
		for i, arg := range pattern.Args {
			children[i] = Instantiate(g, arg, subst)
		}
		kind := lang.KindOp
		if !lang.IsOperator(pattern.Op) {
			kind = lang.KindOther
		}
		return g.Add(egraph.ENode{Kind: kind, Token: pattern.Op, Children: children})
	}
}
