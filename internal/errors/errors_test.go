package errors

import (
	"testing"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporterFormatIncludesSourceLineAndCaret(t *testing.T) {
	source := "(+ a\n   b))"
	r := NewReporter("test.sexpr", source)
	err := NewParseError(ErrorMalformedSexpr, "unexpected )", lexer.Position{Filename: "test.sexpr", Line: 2, Column: 5})

	out := r.Format(err)
	assert.Contains(t, out, "E1001")
	assert.Contains(t, out, "unexpected )")
	assert.Contains(t, out, "b))")
}

func TestInvariantWrapsWithStackTrace(t *testing.T) {
	err := Invariant("class %d missing parent entry", 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "E3001")
	assert.Contains(t, err.Error(), "class 7 missing parent entry")
}

func TestBudgetErrorMessage(t *testing.T) {
	err := NewBudgetExceeded(100, 142)
	assert.Contains(t, err.Error(), "E2001")
	assert.Contains(t, err.Error(), "100")
	assert.Contains(t, err.Error(), "142")
}

func TestCategoryGroupsCodesByRange(t *testing.T) {
	assert.Equal(t, "ParseError", Category(ErrorMalformedSexpr))
	assert.Equal(t, "BudgetExceeded", Category(ErrorBudgetExceeded))
	assert.Equal(t, "InvariantViolation", Category(ErrorInvariantViolation))
}
