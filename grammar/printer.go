package grammar

import "strings"

// String renders the parse tree back into S-expression text. The engine
// does not use it (it prints extracted internal/lang.RecExpr values
// instead, see internal/lang.Print).
func (e *Sexpr) String() string {
	switch {
	case e == nil:
		return ""
	case e.Number != nil:
		return *e.Number
	case e.Hole != nil:
		return *e.Hole
	case e.Symbol != nil:
		return *e.Symbol
	case e.List != nil:
		return e.List.String()
	default:
		return ""
	}
}

func (l *SList) String() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(l.Op)
	for _, arg := range l.Args {
		b.WriteByte(' ')
		b.WriteString(arg.String())
	}
	b.WriteByte(')')
	return b.String()
}

func (p *Program) String() string {
	parts := make([]string, len(p.Exprs))
	for i, e := range p.Exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, "\n")
}

func (r *RuleDecl) String() string {
	return "(" + r.Name + " " + r.Lhs.String() + " " + r.Rhs.String() + ")"
}
