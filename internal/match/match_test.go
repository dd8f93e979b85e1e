package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herbie-fp/eggcore/internal/egraph"
	"github.com/herbie-fp/eggcore/internal/lang"
	"github.com/herbie-fp/eggcore/internal/parser"
)

func mustPattern(t *testing.T, src string) *Pattern {
	t.Helper()
	sexpr, err := parser.ParseSexpr("test", src)
	require.NoError(t, err)
	p, err := FromSexpr(sexpr)
	require.NoError(t, err)
	return p
}

func mustExpr(t *testing.T, g *egraph.EGraph, src string) egraph.Id {
	t.Helper()
	sexpr, err := parser.ParseSexpr("test", src)
	require.NoError(t, err)
	expr, err := lang.FromSexpr(sexpr)
	require.NoError(t, err)
	return g.AddExpr(expr)
}

func TestSearchFindsMatchAndBindsHoles(t *testing.T) {
	g := egraph.NewDefault(egraph.Config{})
	root := mustExpr(t, g, "(+ a b)")
	g.Rebuild()

	pattern := mustPattern(t, "(+ ?x ?y)")
	matches := Search(g, pattern)

	require.Len(t, matches, 1)
	assert.Equal(t, g.Find(root), matches[0].Root)
	assert.Len(t, matches[0].Subst, 2)
}

func TestSearchNonLinearPatternRequiresSameClass(t *testing.T) {
	g := egraph.NewDefault(egraph.Config{})
	mustExpr(t, g, "(+ a a)")
	distinct := mustExpr(t, g, "(+ a b)")
	g.Rebuild()

	pattern := mustPattern(t, "(+ ?x ?x)")
	matches := Search(g, pattern)

	require.Len(t, matches, 1)
	assert.NotEqual(t, g.Find(distinct), matches[0].Root)
}

func TestInstantiateBuildsSubstitutedTerm(t *testing.T) {
	g := egraph.NewDefault(egraph.Config{})
	a := mustExpr(t, g, "a")
	g.Rebuild()

	pattern := mustPattern(t, "(+ ?x ?x)")
	subst := Substitution{"x": g.Find(a)}
	id := Instantiate(g, pattern, subst)

	class := g.Class(id)
	require.Len(t, class.Nodes, 1)
	assert.Equal(t, class.Nodes[0].Children[0], class.Nodes[0].Children[1])
}

func TestValidateHolesRejectsUnboundRHS(t *testing.T) {
	lhs := mustPattern(t, "(+ ?x 0)")
	rhs := mustPattern(t, "?y")
	assert.Error(t, ValidateHoles(lhs, rhs))

	okRhs := mustPattern(t, "?x")
	assert.NoError(t, ValidateHoles(lhs, okRhs))
}
