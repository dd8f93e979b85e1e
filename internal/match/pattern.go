// Package match implements patterns and e-matching over an e-graph (spec
// §4.4): compiling a hole-bearing S-expression into a Pattern, searching
// an EGraph for every (substitution, root class) that satisfies it, and
// instantiating a RHS pattern back into concrete e-nodes under apply.
package match

import (
	"fmt"

	"github.com/herbie-fp/eggcore/grammar"
	"github.com/herbie-fp/eggcore/internal/lang"
)

// Pattern is a term with "?name" holes, compiled once per rule and
// reused across every search call.
type Pattern struct {
	// Hole names the pattern variable when this node is a leaf hole;
	// empty otherwise.
	Hole string

	Const *lang.Constant
	Sym   *lang.Symbol

	// Op and Args are set for a compound pattern node.
	Op   string
	Args []*Pattern
}

// IsHole reports whether p is a pattern-variable leaf.
func (p *Pattern) IsHole() bool { return p.Hole != "" }

// IsLeaf reports whether p is a hole, constant, or symbol (no children).
func (p *Pattern) IsLeaf() bool { return p.Op == "" }

// Holes returns the set of distinct hole names appearing in p, in
// first-occurrence order.
func (p *Pattern) Holes() []string {
	seen := make(map[string]bool)
	var out []string
	var walk func(*Pattern)
	walk = func(n *Pattern) {
		if n.IsHole() {
			if !seen[n.Hole] {
				seen[n.Hole] = true
				out = append(out, n.Hole)
			}
			return
		}
		for _, c := range n.Args {
			walk(c)
		}
	}
	walk(p)
	return out
}

// FromSexpr compiles a parsed S-expression (as read for a rule's LHS or
// RHS) into a Pattern. Unlike internal/lang.FromSexpr, holes are
// accepted here; this is the dedicated pattern-lowering path rule
// compilation uses.
func FromSexpr(e *grammar.Sexpr) (*Pattern, error) {
	switch {
	case e.Number != nil:
		c, ok := lang.ParseConstant(*e.Number)
		if !ok {
			return nil, fmt.Errorf("bad rational literal %q at %s", *e.Number, e.Pos)
		}
		return &Pattern{Const: &c}, nil

	case e.Hole != nil:
		name := (*e.Hole)[1:] // strip leading '?'
		return &Pattern{Hole: name}, nil

	case e.Symbol != nil:
		s := lang.Intern(*e.Symbol)
		return &Pattern{Sym: &s}, nil

	case e.List != nil:
		args := make([]*Pattern, len(e.List.Args))
		for i, a := range e.List.Args {
			p, err := FromSexpr(a)
			if err != nil {
				return nil, err
			}
			args[i] = p
		}
		info, known := lang.Lookup(e.List.Op)
		if !known {
			lang.RegisterOther(e.List.Op, len(args))
		} else if info.Arity != len(args) {
			return nil, fmt.Errorf("operator %q expects %d argument(s), got %d at %s", e.List.Op, info.Arity, len(args), e.List.Pos)
		}
		return &Pattern{Op: e.List.Op, Args: args}, nil

	default:
		return nil, fmt.Errorf("empty S-expression at %s", e.Pos)
	}
}
