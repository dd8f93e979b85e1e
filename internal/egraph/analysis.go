package egraph

import "github.com/herbie-fp/eggcore/internal/lang"

// Data is one class's analysis lattice element. The shape is entirely
// up to the Analysis implementation in use; the default one (below) uses
// *FoldValue.
type Data any

// Analysis is a user-pluggable lattice computed bottom-up over e-nodes.
// Resolved once at EGraph construction; an EGraph carries exactly one
// Analysis.
type Analysis interface {
	// Make computes the datum for a newly-inserted e-node from the data
	// of its already-canonical children.
	Make(g *EGraph, n ENode) Data

	// Merge is the lattice join; it mutates *to in place if needed and
	// reports whether the result differs from the original *to. g is
	// supplied so an incompatible join can trip g's per-engine Unsound
	// latch.
	Merge(g *EGraph, to *Data, from Data) (changed bool)

	// Modify runs after every add of a new class and every effective
	// union; it may itself call g.add/g.union, e.g. to fold in a known
	// constant/symbol leaf.
	Modify(g *EGraph, id Id)
}

// FoldValue is Option<Constant | Symbol>: the default analysis lattice
// used for constant folding. Absent is the bottom element.
type FoldValue struct {
	Const *lang.Constant
	Sym   *lang.Symbol
}

func (v *FoldValue) isDefined() bool { return v != nil && (v.Const != nil || v.Sym != nil) }

// ConstFold is the default Analysis: folds arithmetic over known
// constants, propagates known symbols, and leaves everything else at
// the bottom element.
type ConstFold struct{}

func (ConstFold) Make(g *EGraph, n ENode) Data {
	switch n.Kind {
	case lang.KindConst:
		c := n.Const
		return &FoldValue{Const: &c}
	case lang.KindSymbol:
		s := n.Sym
		return &FoldValue{Sym: &s}
	case lang.KindOther:
		return (*FoldValue)(nil)
	}

	args := make([]*FoldValue, len(n.Children))
	for i, child := range n.Children {
		v, _ := g.classes[child].Data.(*FoldValue)
		if !v.isDefined() {
			return (*FoldValue)(nil)
		}
		args[i] = v
	}
	return foldOp(n.Token, args)
}

func foldOp(token string, args []*FoldValue) *FoldValue {
	constArg := func(i int) (lang.Constant, bool) {
		if args[i].Const == nil {
			return lang.Constant{}, false
		}
		return *args[i].Const, true
	}
	wrap := func(c lang.Constant) *FoldValue { return &FoldValue{Const: &c} }

	switch token {
	case "+", "+.f64", "+.p16", "+.c":
		a, ok1 := constArg(0)
		b, ok2 := constArg(1)
		if ok1 && ok2 {
			return wrap(lang.Add(a, b))
		}
	case "-", "-.f64", "-.p16", "-.c":
		a, ok1 := constArg(0)
		b, ok2 := constArg(1)
		if ok1 && ok2 {
			return wrap(lang.Sub(a, b))
		}
	case "*", "*.f64", "*.p16", "*.c":
		a, ok1 := constArg(0)
		b, ok2 := constArg(1)
		if ok1 && ok2 {
			return wrap(lang.Mul(a, b))
		}
	case "/", "/.f64", "/.p16", "/.c":
		a, ok1 := constArg(0)
		b, ok2 := constArg(1)
		if ok1 && ok2 {
			if q, ok := lang.Div(a, b); ok {
				return wrap(q)
			}
		}
	case "neg", "neg.f64":
		a, ok := constArg(0)
		if ok {
			return wrap(lang.Neg(a))
		}
	case "pow":
		a, ok1 := constArg(0)
		b, ok2 := constArg(1)
		if ok1 && ok2 && b.Rat().IsInt() {
			if r, ok := lang.Pow(a, b.Rat().Num().Int64()); ok {
				return wrap(r)
			}
		}
	case "sqrt", "sqrt.f64":
		a, ok := constArg(0)
		if ok {
			if r, ok := lang.Sqrt(a); ok {
				return wrap(r)
			}
		}
	case "fabs", "fabs.f64":
		a, ok := constArg(0)
		if ok {
			if a.Rat().Sign() < 0 {
				return wrap(lang.Neg(a))
			}
			return wrap(a)
		}
	}
	return (*FoldValue)(nil)
}

// Merge implements the lattice join:
// None ⊔ None = None; Some(x) ⊔ None = Some(x); None ⊔ Some(y) = Some(y)
// (changed); Some(x) ⊔ Some(y) = Some(x), latching Unsound if x != y.
func (ConstFold) Merge(g *EGraph, to *Data, from Data) bool {
	toVal, _ := (*to).(*FoldValue)
	fromVal, _ := from.(*FoldValue)

	if !fromVal.isDefined() {
		return false
	}
	if !toVal.isDefined() {
		*to = fromVal
		return true
	}

	equal := false
	switch {
	case toVal.Const != nil && fromVal.Const != nil:
		equal = toVal.Const.Equal(*fromVal.Const)
	case toVal.Sym != nil && fromVal.Sym != nil:
		equal = toVal.Sym.Equal(*fromVal.Sym)
	}
	if !equal {
		g.markUnsound()
	}
	return false
}

// Modify folds the known value back into the e-graph as a leaf e-node
// and unions it with id, pruning siblings to that leaf when
// leaf-pruning is enabled.
func (ConstFold) Modify(g *EGraph, id Id) {
	v, _ := g.classes[g.Find(id)].Data.(*FoldValue)
	if !v.isDefined() {
		return
	}

	var leaf ENode
	switch {
	case v.Const != nil:
		leaf = ENode{Kind: lang.KindConst, Const: *v.Const}
	case v.Sym != nil:
		leaf = ENode{Kind: lang.KindSymbol, Sym: *v.Sym}
	}

	// add/union, not the exported Add/Union: Modify runs while g.mu is
	// already held by the add or union call that triggered it.
	leafID := g.add(leaf)
	g.union(leafID, id)

	if g.config.LeafPrune {
		root := g.Find(id)
		g.classes[root].Nodes = []ENode{leaf}
	}
}

