// Package rewrite implements a two-phase search/apply rewrite driver and
// a bounded iteration runner: applying a ruleset to an e-graph to a
// fixed point, a node-count ceiling, or an iteration cap, whichever
// comes first.
package rewrite

import (
	"fmt"

	"github.com/herbie-fp/eggcore/grammar"
	"github.com/herbie-fp/eggcore/internal/match"
)

// Rule is one compiled (name lhs rhs) rewrite.
type Rule struct {
	Name string
	Lhs  *match.Pattern
	Rhs  *match.Pattern
}

// FromDecl compiles one parsed rule declaration, validating that the
// RHS references no hole absent from the LHS. Validated once at
// registration rather than at every apply.
func FromDecl(decl *grammar.RuleDecl) (*Rule, error) {
	lhs, err := match.FromSexpr(decl.Lhs)
	if err != nil {
		return nil, fmt.Errorf("rule %q: lhs: %w", decl.Name, err)
	}
	rhs, err := match.FromSexpr(decl.Rhs)
	if err != nil {
		return nil, fmt.Errorf("rule %q: rhs: %w", decl.Name, err)
	}
	if err := match.ValidateHoles(lhs, rhs); err != nil {
		return nil, fmt.Errorf("rule %q: %w", decl.Name, err)
	}
	return &Rule{Name: decl.Name, Lhs: lhs, Rhs: rhs}, nil
}

// FromRuleFile compiles every declaration in a parsed rule file,
// stopping at the first invalid rule.
func FromRuleFile(file *grammar.RuleFile) ([]*Rule, error) {
	rules := make([]*Rule, len(file.Rules))
	for i, decl := range file.Rules {
		r, err := FromDecl(decl)
		if err != nil {
			return nil, err
		}
		rules[i] = r
	}
	return rules, nil
}
