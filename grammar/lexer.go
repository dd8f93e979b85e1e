package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/herbie-fp/eggcore/token"
)

// SexpLexer tokenizes the S-expression surface syntax shared by terms,
// patterns and rule files. Order matters: Rational is tried
// before Ident so that numeric literals are not swallowed by the
// catch-all operator/symbol rule. Rule names come from token.TokenType
// so the lexical categories are defined in one place and the parse
// tree's token kinds (surfaced in error reporting) always agree with
// the names the lexer itself assigns.
var SexpLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{string(token.Comment), `;[^\n]*`, nil},
		{string(token.Whitespace), `[ \t\r\n]+`, nil},
		{string(token.LParen), `\(`, nil},
		{string(token.RParen), `\)`, nil},
		{string(token.Rational), `-?[0-9]+(/[0-9]+)?`, nil},
		{string(token.Hole), `\?[a-zA-Z_][a-zA-Z0-9_]*`, nil},
		{string(token.Ident), `[^\s()]+`, nil},
	},
})
