package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herbie-fp/eggcore/grammar"
	"github.com/herbie-fp/eggcore/internal/egraph"
	"github.com/herbie-fp/eggcore/internal/lang"
	"github.com/herbie-fp/eggcore/internal/parser"
)

func mustExpr(t *testing.T, g *egraph.EGraph, src string) egraph.Id {
	t.Helper()
	sexpr, err := parser.ParseSexpr("test", src)
	require.NoError(t, err)
	expr, err := lang.FromSexpr(sexpr)
	require.NoError(t, err)
	return g.AddExpr(expr)
}

func mustRuleDecl(t *testing.T, name, lhs, rhs string) *grammar.RuleDecl {
	t.Helper()
	lhsSexpr, err := parser.ParseSexpr("test", lhs)
	require.NoError(t, err)
	rhsSexpr, err := parser.ParseSexpr("test", rhs)
	require.NoError(t, err)
	return &grammar.RuleDecl{Name: name, Lhs: lhsSexpr, Rhs: rhsSexpr}
}

func mustRule(t *testing.T, name, lhs, rhs string) *Rule {
	t.Helper()
	r, err := FromDecl(mustRuleDecl(t, name, lhs, rhs))
	require.NoError(t, err)
	return r
}

func TestFromDeclRejectsUnboundHole(t *testing.T) {
	decl := mustRuleDecl(t, "bad-rule", "(+ ?x 0)", "?y")
	_, err := FromDecl(decl)
	assert.Error(t, err)
}

func TestStepAppliesCommutativity(t *testing.T) {
	g := egraph.NewDefault(egraph.Config{})
	lhs := mustExpr(t, g, "(+ a b)")
	rhs := mustExpr(t, g, "(+ b a)")
	g.Rebuild()
	require.NotEqual(t, g.Find(lhs), g.Find(rhs))

	rule := mustRule(t, "+-commutative", "(+ ?x ?y)", "(+ ?y ?x)")
	step, err := Step(g, []*Rule{rule}, 0)
	require.NoError(t, err)

	assert.True(t, step.Changed)
	assert.Equal(t, g.Find(lhs), g.Find(rhs))
}

func TestRunStopsAtSaturation(t *testing.T) {
	g := egraph.NewDefault(egraph.Config{})
	mustExpr(t, g, "(+ a b)")
	g.Rebuild()

	rule := mustRule(t, "+-commutative", "(+ ?x ?y)", "(+ ?y ?x)")
	result := Run(g, []*Rule{rule}, 0, 10)

	assert.Equal(t, StopSaturated, result.Stop)
	assert.LessOrEqual(t, len(result.Iterations), 10)
	assert.False(t, result.Unsound)
}

// TestRunAssociateCommuteSevenAddends exercises spec scenario 4: under
// only +-commutative and +-associate, the seven-addend sum
// (+ 1 (+ 2 (+ 3 (+ 4 (+ 5 (+ 6 7)))))) expands, after 4 iterations,
// into exactly one e-class per non-empty subset of the seven addends
// (every associativity/commutativity re-parenthesization groups some
// subset into one sub-sum), i.e. 2^7 - 1 = 127 e-classes. Constant
// folding is disabled so no subset's sum is accidentally collapsed
// into another subset's leaf value.
func TestRunAssociateCommuteSevenAddends(t *testing.T) {
	g := egraph.New(egraph.NoopAnalysis{}, egraph.Config{})
	mustExpr(t, g, "(+ 1 (+ 2 (+ 3 (+ 4 (+ 5 (+ 6 7))))))")
	g.Rebuild()

	comm := mustRule(t, "+-commutative", "(+ ?a ?b)", "(+ ?b ?a)")
	assoc := mustRule(t, "+-associate", "(+ ?a (+ ?b ?c))", "(+ (+ ?a ?b) ?c)")

	result := Run(g, []*Rule{comm, assoc}, 0, 4)

	require.Len(t, result.Iterations, 4)
	assert.Equal(t, 127, g.NumClasses())
}

func TestRunStopsAtNodeLimit(t *testing.T) {
	g := egraph.NewDefault(egraph.Config{})
	mustExpr(t, g, "(+ a (+ b (+ c (+ d e))))")
	g.Rebuild()

	assoc := mustRule(t, "+-assoc", "(+ ?x (+ ?y ?z))", "(+ (+ ?x ?y) ?z)")
	result := Run(g, []*Rule{assoc}, g.Size(), 50)

	assert.Equal(t, StopNodeLimit, result.Stop)
}
