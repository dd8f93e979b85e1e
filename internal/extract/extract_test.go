package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herbie-fp/eggcore/internal/egraph"
	"github.com/herbie-fp/eggcore/internal/lang"
	"github.com/herbie-fp/eggcore/internal/parser"
)

func mustAdd(t *testing.T, g *egraph.EGraph, src string) egraph.Id {
	t.Helper()
	sexpr, err := parser.ParseSexpr("test", src)
	require.NoError(t, err)
	expr, err := lang.FromSexpr(sexpr)
	require.NoError(t, err)
	return g.AddExpr(expr)
}

func TestExtractPicksCheapestOfTwoEquivalentTerms(t *testing.T) {
	g := egraph.NewDefault(egraph.Config{})
	big := mustAdd(t, g, "(+ (* x 1) (* x 1))")
	small := mustAdd(t, g, "x")

	g.Union(big, small)
	g.Rebuild()

	ex := New(g, AstSize{})
	rec, cost, err := ex.Extract(big)
	require.NoError(t, err)

	assert.Equal(t, "x", lang.Print(rec))
	assert.Equal(t, Cost(0), cost)
}

func TestExtractSharesCommonSubterm(t *testing.T) {
	g := egraph.NewDefault(egraph.Config{})
	root := mustAdd(t, g, "(+ x x)")
	g.Rebuild()

	ex := New(g, AstSize{})
	rec, _, err := ex.Extract(root)
	require.NoError(t, err)
	require.Len(t, rec.Nodes, 2) // one symbol node, one shared + node
	assert.Equal(t, rec.Nodes[1].Children[0], rec.Nodes[1].Children[1])
}

func TestExtractIsStableAcrossRepeatedCalls(t *testing.T) {
	g := egraph.NewDefault(egraph.Config{})
	root := mustAdd(t, g, "(+ a b)")
	g.Rebuild()

	ex := New(g, AstSize{})
	first, _, err := ex.Extract(root)
	require.NoError(t, err)
	second, _, err := ex.Extract(root)
	require.NoError(t, err)

	assert.Equal(t, lang.Print(first), lang.Print(second))
}
