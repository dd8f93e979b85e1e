package grammar_test

import (
	"testing"

	"github.com/alecthomas/participle/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herbie-fp/eggcore/grammar"
)

func buildTestParser(t *testing.T) *participle.Parser[grammar.Sexpr] {
	t.Helper()
	p, err := participle.Build[grammar.Sexpr](
		participle.Lexer(grammar.SexpLexer),
		participle.Elide("Whitespace", "Comment"),
	)
	require.NoError(t, err)
	return p
}

func TestSexprStringRoundTrips(t *testing.T) {
	p := buildTestParser(t)
	sexpr, err := p.ParseString("test", "(+ 1 (neg ?x))")
	require.NoError(t, err)
	assert.Equal(t, "(+ 1 (neg ?x))", sexpr.String())
}
