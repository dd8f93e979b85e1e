package egraph

import (
	"strconv"
	"strings"

	"github.com/herbie-fp/eggcore/internal/lang"
)

// ENode is one operator application with ordered child class Ids (spec
// §3). Two e-nodes are canonically equal iff their ops are equal
// (including payload) and each child Id, after Find, is equal.
type ENode struct {
	Kind     lang.Kind
	Token    string // set iff Kind is KindOp or KindOther
	Const    lang.Constant
	Sym      lang.Symbol
	Children []Id
}

// Canonicalize replaces each child Id by its current Find, as required
// before every memo lookup/insert.
func (n ENode) Canonicalize(u *UnionFind) ENode {
	if len(n.Children) == 0 {
		return n
	}
	out := ENode{Kind: n.Kind, Token: n.Token, Const: n.Const, Sym: n.Sym, Children: make([]Id, len(n.Children))}
	for i, c := range n.Children {
		out.Children[i] = u.Find(c)
	}
	return out
}

// key returns the hash-cons memo key. Two e-nodes
// canonically equal under the same union-find state always produce the
// same key, so the memo map keyed by this string realizes the "no two
// classes contain canonically-equal e-nodes" invariant.
func (n ENode) key() string {
	switch n.Kind {
	case lang.KindConst:
		return n.Const.Key()
	case lang.KindSymbol:
		return n.Sym.Key()
	default:
		var b strings.Builder
		b.WriteString(n.Token)
		b.WriteByte('(')
		for i, c := range n.Children {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(int(c)))
		}
		b.WriteByte(')')
		return b.String()
	}
}

// Arity returns the number of children.
func (n ENode) Arity() int { return len(n.Children) }

// IsLeaf reports whether n is a Constant or Symbol leaf.
func (n ENode) IsLeaf() bool { return n.Kind == lang.KindConst || n.Kind == lang.KindSymbol }
