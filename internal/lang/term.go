package lang

import (
	"fmt"
	"slices"
	"strings"

	"github.com/herbie-fp/eggcore/grammar"
)

// Node is one node of a concrete term, referencing its children by index
// into the owning RecExpr's flat, post-order node list (child indices
// are always strictly less than the node's own index).
type Node struct {
	Kind     Kind
	Token    string // operator token, set iff Kind is KindOp or KindOther
	Const    Constant
	Sym      Symbol
	Children []int
}

// Arity returns the number of children this node carries.
func (n Node) Arity() int { return len(n.Children) }

// RecExpr is a flat, post-order concrete term: the surface-level
// counterpart of an e-graph class, used both as add_expr's input and as
// the extractor's output.
type RecExpr struct {
	Nodes []Node
}

// Root returns the index of the top-level node (always the last one
// appended in post-order construction).
func (e *RecExpr) Root() int { return len(e.Nodes) - 1 }

// add appends a node and returns its index, reusing the index of an
// identical node already present so repeated subterms are shared.
func (e *RecExpr) add(n Node) int {
	for i, m := range e.Nodes {
		if m.Kind == n.Kind && m.Token == n.Token && m.Const.Equal(n.Const) && m.Sym.Equal(n.Sym) && slices.Equal(m.Children, n.Children) {
			return i
		}
	}
	e.Nodes = append(e.Nodes, n)
	return len(e.Nodes) - 1
}

// FromSexpr lowers a parsed term into a RecExpr, arity-checking every
// compound form against the operator table. Holes are rejected; use
// internal/match.FromSexpr for pattern lowering.
func FromSexpr(e *grammar.Sexpr) (*RecExpr, error) {
	rec := &RecExpr{}
	if _, err := lowerInto(rec, e); err != nil {
		return nil, err
	}
	return rec, nil
}

func lowerInto(rec *RecExpr, e *grammar.Sexpr) (int, error) {
	switch {
	case e.Number != nil:
		c, ok := ParseConstant(*e.Number)
		if !ok {
			return 0, fmt.Errorf("bad rational literal %q at %s", *e.Number, e.Pos)
		}
		return rec.add(Node{Kind: KindConst, Const: c}), nil

	case e.Hole != nil:
		return 0, fmt.Errorf("unexpected pattern hole %q in concrete term at %s", *e.Hole, e.Pos)

	case e.Symbol != nil:
		return rec.add(Node{Kind: KindSymbol, Sym: Intern(*e.Symbol)}), nil

	case e.List != nil:
		children := make([]int, len(e.List.Args))
		for i, arg := range e.List.Args {
			idx, err := lowerInto(rec, arg)
			if err != nil {
				return 0, err
			}
			children[i] = idx
		}
		info, known := Lookup(e.List.Op)
		kind := KindOp
		if !known {
			kind = KindOther
			RegisterOther(e.List.Op, len(children))
			info.Arity = len(children)
		}
		if info.Arity != len(children) {
			return 0, fmt.Errorf("operator %q expects %d argument(s), got %d at %s", e.List.Op, info.Arity, len(children), e.List.Pos)
		}
		return rec.add(Node{Kind: kind, Token: e.List.Op, Children: children}), nil

	default:
		return 0, fmt.Errorf("empty S-expression at %s", e.Pos)
	}
}

// Print renders a RecExpr back into S-expression surface syntax.
func Print(e *RecExpr) string {
	if len(e.Nodes) == 0 {
		return ""
	}
	return printNode(e, e.Root())
}

func printNode(e *RecExpr, idx int) string {
	n := e.Nodes[idx]
	switch n.Kind {
	case KindConst:
		return n.Const.String()
	case KindSymbol:
		return n.Sym.String()
	default:
		parts := make([]string, 0, len(n.Children)+1)
		parts = append(parts, n.Token)
		for _, c := range n.Children {
			parts = append(parts, printNode(e, c))
		}
		return "(" + strings.Join(parts, " ") + ")"
	}
}

// AstSize is the node count of a RecExpr, leaves included, for quick size
// checks. It is separate from internal/extract.AstSize, which counts only
// operator nodes.
func AstSize(e *RecExpr) int { return len(e.Nodes) }
