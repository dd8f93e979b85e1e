// Package grammar holds the participle-driven grammar for the S-expression
// surface syntax: atoms (rational literals, pattern holes,
// symbols/operators) and compound forms (op arg ...).
//
// The package is split in two: grammar owns the lexer and parse-tree
// struct tags, and a separate internal/parser package builds the
// participle.Parser and lowers the parse tree into the engine's own
// types.
package grammar

import "github.com/alecthomas/participle/v2/lexer"

// Sexpr is one parsed atom or compound form. Exactly one of Number, Hole,
// Symbol or List is set.
type Sexpr struct {
	Pos lexer.Position

	Number *string `  @Rational`
	Hole   *string `| @Hole`
	Symbol *string `| @Ident`
	List   *SList  `| @@`
}

// SList is a compound form (op arg ...). Op is an exact-match operator
// token.
type SList struct {
	Pos lexer.Position

	Op   string   `"(" @Ident`
	Args []*Sexpr `@@* ")"`
}

// Program is a sequence of top-level terms, as read from a file or typed
// at the REPL one or more at a time.
type Program struct {
	Pos   lexer.Position
	Exprs []*Sexpr `@@*`
}

// RuleDecl is one (name lhs rhs) triple. Lhs and Rhs reuse the Sexpr
// grammar, so holes are syntactically legal in terms too;
// internal/lang.FromSexpr rejects them when lowering a concrete term.
type RuleDecl struct {
	Pos lexer.Position

	Name string `"(" @Ident`
	Lhs  *Sexpr `@@`
	Rhs  *Sexpr `@@ ")"`
}

// RuleFile is a sequence of rule declarations.
type RuleFile struct {
	Pos   lexer.Position
	Rules []*RuleDecl `@@*`
}
