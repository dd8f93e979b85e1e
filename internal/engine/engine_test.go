package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herbie-fp/eggcore/internal/ruleset"
)

func TestEngineConstantFoldsArithmeticOnAdd(t *testing.T) {
	e := New(DefaultConfig())
	id, err := e.AddExpr("(+ 2 3)")
	require.NoError(t, err)

	best, err := e.Best(id)
	require.NoError(t, err)
	assert.Equal(t, "5", best)
}

func TestEngineCommutativityMakesTwoOrdersEquivalent(t *testing.T) {
	e := New(DefaultConfig())
	lhs, err := e.AddExpr("(+ x y)")
	require.NoError(t, err)
	rhs, err := e.AddExpr("(+ y x)")
	require.NoError(t, err)

	rules, err := ruleset.Builtin()
	require.NoError(t, err)
	e.AddRuleSet(rules)

	result := e.RunIteration()
	assert.False(t, result.Unsound)
	assert.Equal(t, e.Graph().Find(lhs), e.Graph().Find(rhs))
}

func TestEngineIdentityEliminationShrinksExtractedTerm(t *testing.T) {
	e := New(DefaultConfig())
	id, err := e.AddExpr("(+ x 0)")
	require.NoError(t, err)

	rules, err := ruleset.Builtin()
	require.NoError(t, err)
	e.AddRuleSet(rules)
	e.RunIteration()

	best, err := e.Best(id)
	require.NoError(t, err)
	assert.Equal(t, "x", best)
}

func TestEngineAddRulesRejectsUnboundHoleFile(t *testing.T) {
	e := New(DefaultConfig())
	_, err := e.AddRules("(bad-rule (+ ?x 0) ?y)")
	assert.Error(t, err)
}

func TestEngineNodeLimitStopsRunIterationEarly(t *testing.T) {
	config := DefaultConfig()
	config.NodeLimit = 1
	e := New(config)
	_, err := e.AddExpr("(+ a (+ b (+ c d)))")
	require.NoError(t, err)

	rules, err := ruleset.Builtin()
	require.NoError(t, err)
	e.AddRuleSet(rules)

	result := e.RunIteration()
	assert.NotEmpty(t, result.Iterations)
}

func TestEngineIndependentInstancesDoNotShareUnsoundLatch(t *testing.T) {
	a := New(DefaultConfig())
	idA1, err := a.AddExpr("1")
	require.NoError(t, err)
	idA2, err := a.AddExpr("2")
	require.NoError(t, err)
	a.Graph().Union(idA1, idA2)
	a.Graph().Rebuild()
	assert.True(t, a.Unsound())

	b := New(DefaultConfig())
	_, err = b.AddExpr("(+ 1 1)")
	require.NoError(t, err)
	assert.False(t, b.Unsound(), "a fresh engine must not observe another engine's unsound latch")
}
