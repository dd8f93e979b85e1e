// Package token SPDX-License-Identifier: Apache-2.0
//
// Package token names the lexical categories produced by the grammar
// lexer when scanning S-expression terms, patterns and rule files.
package token

type TokenType string

// Values match the rule names SexpLexer registers them under, since
// those names double as the token kinds the participle struct tags in
// grammar.go select on (@Rational, @Hole, @Ident, ...).
const (
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	// Comment runs from ';' to end of line.
	Comment TokenType = "Comment"

	// LParen and RParen delimit compound forms: (op arg ...).
	LParen TokenType = "LParen"
	RParen TokenType = "RParen"

	// Rational is an integer or p/q literal, e.g. 3, -4, 1/2.
	Rational TokenType = "Rational"

	// Hole is a pattern variable, e.g. ?x, ?a1.
	Hole TokenType = "Hole"

	// Ident is an operator token or a free symbol/variable name. Operator
	// tokens may contain punctuation (+, -, *, /, pow, sqrt.f64, ...), so
	// this category is deliberately broad; internal/lang.Lookup decides
	// whether a given Ident names a known operator or a free Symbol.
	Ident TokenType = "Ident"

	Whitespace TokenType = "Whitespace"
)
