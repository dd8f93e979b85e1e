package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSexprAtom(t *testing.T) {
	sexpr, err := ParseSexpr("test", "42")
	require.NoError(t, err)
	require.NotNil(t, sexpr.Number)
	assert.Equal(t, "42", *sexpr.Number)
}

func TestParseSexprHole(t *testing.T) {
	sexpr, err := ParseSexpr("test", "?x")
	require.NoError(t, err)
	require.NotNil(t, sexpr.Hole)
	assert.Equal(t, "?x", *sexpr.Hole)
}

func TestParseSexprCompound(t *testing.T) {
	sexpr, err := ParseSexpr("test", "(+ 1 2)")
	require.NoError(t, err)
	require.NotNil(t, sexpr.List)
	assert.Equal(t, "+", sexpr.List.Op)
	assert.Len(t, sexpr.List.Args, 2)
}

func TestParseSexprRejectsMalformedInput(t *testing.T) {
	_, err := ParseSexpr("test", "(+ 1")
	assert.Error(t, err)
}

func TestParseExprSourceReadsMultipleTerms(t *testing.T) {
	prog, err := ParseExprSource("test", "1 (+ 2 3) x")
	require.NoError(t, err)
	assert.Len(t, prog.Exprs, 3)
}

func TestParseRuleSourceReadsTriples(t *testing.T) {
	file, err := ParseRuleSource("test", "(+-comm (+ ?a ?b) (+ ?b ?a))")
	require.NoError(t, err)
	require.Len(t, file.Rules, 1)
	assert.Equal(t, "+-comm", file.Rules[0].Name)
}
