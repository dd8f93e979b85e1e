package rewrite

import (
	"github.com/herbie-fp/eggcore/internal/egraph"
	engineerrors "github.com/herbie-fp/eggcore/internal/errors"
	"github.com/herbie-fp/eggcore/internal/match"
)

// RuleStats reports how many matches one rule produced and how many of
// its applications actually merged two distinct classes during one
// Step, surfaced in IterationReport.
type RuleStats struct {
	Name    string
	Matches int
	Unions  int
}

// StepResult summarizes one search/apply pass.
type StepResult struct {
	Rules   []RuleStats
	Changed bool
}

// Step runs a two-phase search/apply pass: every rule's search() is run
// first, against a single snapshot of the e-graph, and only then are
// all collected matches applied. This keeps a rule's later matches from
// seeing e-classes created by an earlier rule's apply within the same
// step, matching egg's standard semantics.
//
// If applying a rule's full match set would push the e-graph's node
// count past nodeLimit (a value <= 0 means unbounded), Step stops after
// that rule and returns a BudgetExceeded error; unions already
// performed are kept, so the iteration's partial effect is retained.
func Step(g *egraph.EGraph, rules []*Rule, nodeLimit int) (StepResult, error) {
	type pending struct {
		rule    *Rule
		matches []match.Match
	}

	found := make([]pending, len(rules))
	for i, r := range rules {
		found[i] = pending{rule: r, matches: match.Search(g, r.Lhs)}
	}

	result := StepResult{Rules: make([]RuleStats, len(rules))}

	for i, p := range found {
		stats := RuleStats{Name: p.rule.Name, Matches: len(p.matches)}

		for _, m := range p.matches {
			rhsID := match.Instantiate(g, p.rule.Rhs, m.Subst)
			if _, changed := g.Union(m.Root, rhsID); changed {
				stats.Unions++
				result.Changed = true
			}
		}

		result.Rules[i] = stats

		if nodeLimit > 0 && g.Size() > nodeLimit {
			g.Rebuild()
			return result, engineerrors.NewBudgetExceeded(nodeLimit, g.Size())
		}
	}

	g.Rebuild()
	return result, nil
}
