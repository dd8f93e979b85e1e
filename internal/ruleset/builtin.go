// Package ruleset holds a small built-in catalog of algebraic rewrite
// rules (commutativity, associativity, and identity elimination) used
// by the CLI/REPL demo and by engine tests, distinct from the hundreds
// of FPCore accuracy rules a real Herbie ruleset carries; this engine
// ships no built-in mathematical identity database.
package ruleset

import (
	"fmt"

	"github.com/herbie-fp/eggcore/internal/parser"
	"github.com/herbie-fp/eggcore/internal/rewrite"
)

// builtinSource is a rule file in the same (name lhs rhs) surface
// syntax internal/parser.ParseRuleSource accepts, so the
// catalog is exercised through the exact same lowering path a
// user-supplied rule file takes.
const builtinSource = `
(+-commutative (+ ?a ?b) (+ ?b ?a))
(*-commutative (* ?a ?b) (* ?b ?a))
(+-associate (+ ?a (+ ?b ?c)) (+ (+ ?a ?b) ?c))
(*-associate (* ?a (* ?b ?c)) (* (* ?a ?b) ?c))
(+-lft-identity (+ 0 ?a) ?a)
(+-rgt-identity (+ ?a 0) ?a)
(*-lft-identity (* 1 ?a) ?a)
(*-rgt-identity (* ?a 1) ?a)
(*-lft-zero (* 0 ?a) 0)
(sub-neg (- ?a ?b) (+ ?a (neg ?b)))
(neg-neg (neg (neg ?a)) ?a)
(div-1 (/ ?a 1) ?a)
`

// Builtin compiles and returns the built-in catalog.
func Builtin() ([]*rewrite.Rule, error) {
	file, err := parser.ParseRuleSource("builtin", builtinSource)
	if err != nil {
		return nil, fmt.Errorf("builtin ruleset: %w", err)
	}
	rules, err := rewrite.FromRuleFile(file)
	if err != nil {
		return nil, fmt.Errorf("builtin ruleset: %w", err)
	}
	return rules, nil
}
