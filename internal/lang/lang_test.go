package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herbie-fp/eggcore/internal/parser"
)

func TestConstantArithmeticIsExact(t *testing.T) {
	a, ok := NewConstantRat(1, 3)
	require.True(t, ok)
	b, ok := NewConstantRat(1, 6)
	require.True(t, ok)

	sum := Add(a, b)
	assert.Equal(t, "1/2", sum.String())

	_, ok = Div(a, NewConstantInt(0))
	assert.False(t, ok, "division by zero must be rejected")
}

func TestConstantPowIntegerExponent(t *testing.T) {
	two := NewConstantInt(2)
	r, ok := Pow(two, 10)
	require.True(t, ok)
	assert.Equal(t, "1024", r.String())

	_, ok = Pow(NewConstantInt(0), -1)
	assert.False(t, ok)
}

func TestConstantSqrtOnlyExactForPerfectSquares(t *testing.T) {
	nine := NewConstantInt(9)
	r, ok := Sqrt(nine)
	require.True(t, ok)
	assert.Equal(t, "3", r.String())

	two := NewConstantInt(2)
	_, ok = Sqrt(two)
	assert.False(t, ok)
}

func TestSymbolInterningReturnsEqualValues(t *testing.T) {
	a := Intern("x")
	b := Intern("x")
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Key(), b.Key())
}

func TestOperatorTableHasExactlyOneArityPerToken(t *testing.T) {
	info, ok := Lookup("+")
	require.True(t, ok)
	assert.Equal(t, 2, info.Arity)

	info, ok = Lookup("neg")
	require.True(t, ok)
	assert.Equal(t, 1, info.Arity)

	_, ok = Lookup("frobnicate")
	assert.False(t, ok)
}

func TestFromSexprRejectsWrongArity(t *testing.T) {
	sexpr, err := parser.ParseSexpr("test", "(+ 1 2 3)")
	require.NoError(t, err)
	_, err = FromSexpr(sexpr)
	assert.Error(t, err)
}

func TestFromSexprRejectsHoleInConcreteTerm(t *testing.T) {
	sexpr, err := parser.ParseSexpr("test", "(+ ?x 1)")
	require.NoError(t, err)
	_, err = FromSexpr(sexpr)
	assert.Error(t, err)
}

func TestFromSexprSharesRepeatedSubterm(t *testing.T) {
	sexpr, err := parser.ParseSexpr("test", "(+ x x)")
	require.NoError(t, err)
	expr, err := FromSexpr(sexpr)
	require.NoError(t, err)

	root := expr.Nodes[expr.Root()]
	assert.Equal(t, root.Children[0], root.Children[1])
}

func TestPrintRoundTripsThroughFromSexpr(t *testing.T) {
	sexpr, err := parser.ParseSexpr("test", "(+ (* 2 x) (neg y))")
	require.NoError(t, err)
	expr, err := FromSexpr(sexpr)
	require.NoError(t, err)
	assert.Equal(t, "(+ (* 2 x) (neg y))", Print(expr))
}
