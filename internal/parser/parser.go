// Package parser builds the participle parsers over grammar.SexpLexer and
// lowers their parse trees into the engine's own term/pattern/rule types
// (internal/lang, internal/match, internal/rewrite).
package parser

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"

	"github.com/herbie-fp/eggcore/grammar"
)

var (
	exprParser  = buildParser[grammar.Sexpr]()
	progParser  = buildParser[grammar.Program]()
	rulesParser = buildParser[grammar.RuleFile]()
)

func buildParser[T any]() *participle.Parser[T] {
	p, err := participle.Build[T](
		participle.Lexer(grammar.SexpLexer),
		participle.Elide("Whitespace", "Comment"),
	)
	if err != nil {
		panic(fmt.Errorf("failed to build parser: %w", err))
	}
	return p
}

// ParseExprFile reads a file holding one or more top-level terms.
func ParseExprFile(path string) (*grammar.Program, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseExprSource(path, string(source))
}

// ParseExprSource parses a sequence of top-level terms from source text.
func ParseExprSource(sourceName, source string) (*grammar.Program, error) {
	return progParser.ParseString(sourceName, source)
}

// ParseSexpr parses exactly one term or pattern (holes are syntactically
// legal here; internal/lang.FromSexpr rejects them for concrete terms).
func ParseSexpr(sourceName, source string) (*grammar.Sexpr, error) {
	return exprParser.ParseString(sourceName, source)
}

// ParseRuleFile reads a file holding a sequence of (name lhs rhs) triples.
func ParseRuleFile(path string) (*grammar.RuleFile, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseRuleSource(path, string(source))
}

// ParseRuleSource parses a sequence of (name lhs rhs) triples from source text.
func ParseRuleSource(sourceName, source string) (*grammar.RuleFile, error) {
	return rulesParser.ParseString(sourceName, source)
}
