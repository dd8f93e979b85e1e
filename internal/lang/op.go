// Package lang defines the FPCore term schema: the closed operator set
// with its fixed arities, exact rational constants and
// interned symbols, and RecExpr, the flat concrete-term
// representation produced by the parser and reconstructed by the
// extractor.
//
// A small closed vocabulary with a re-exported, registry-queryable table.
package lang

import "github.com/iancoleman/strcase"

// Kind discriminates the four e-node shapes: a
// named operator of fixed arity, the two payload-carrying leaves, and an
// open "other" form kept for forward-compatible rule files.
// Represented as a small integer since matching on kind+arity is
// performance-critical.
type Kind uint8

const (
	KindOp Kind = iota
	KindConst
	KindSymbol
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindOp:
		return "op"
	case KindConst:
		return "const"
	case KindSymbol:
		return "symbol"
	case KindOther:
		return "other"
	default:
		return "unknown"
	}
}

// OpInfo describes one entry of the closed operator set: its exact
// string token and its single fixed arity. Historical multi-arity
// variants of an operator are not supported; each token has exactly one
// arity.
type OpInfo struct {
	Token string
	Arity int
}

// operatorTable is the single source of truth for arity. Type-suffixed
// variants (+.f64, *.p16, +.c, ...) are distinct tokens with their own
// entries, not derived from a base token at runtime: lookups are an
// exact string match.
var operatorTable = buildTable([]OpInfo{
	{"+", 2}, {"-", 2}, {"*", 2}, {"/", 2},
	{"neg", 1}, {"pow", 2}, {"sqrt", 1}, {"fabs", 1},
	{"sin", 1}, {"cos", 1}, {"tan", 1}, {"exp", 1}, {"log", 1},

	{"+.f64", 2}, {"-.f64", 2}, {"*.f64", 2}, {"/.f64", 2},
	{"neg.f64", 1}, {"sqrt.f64", 1}, {"fabs.f64", 1},

	{"+.p16", 2}, {"-.p16", 2}, {"*.p16", 2}, {"/.p16", 2},

	{"+.c", 2}, {"-.c", 2}, {"*.c", 2}, {"/.c", 2},
})

func buildTable(entries []OpInfo) map[string]OpInfo {
	m := make(map[string]OpInfo, len(entries))
	for _, e := range entries {
		m[e.Token] = e
	}
	return m
}

// Lookup returns the arity table entry for an operator token.
func Lookup(token string) (OpInfo, bool) {
	info, ok := operatorTable[token]
	return info, ok
}

// Arity returns the fixed arity of a known operator token, or -1 if the
// token is not part of the closed operator set.
func Arity(token string) int {
	if info, ok := operatorTable[token]; ok {
		return info.Arity
	}
	return -1
}

// IsOperator reports whether token names a known operator, as opposed to
// a free Symbol.
func IsOperator(token string) bool {
	_, ok := operatorTable[token]
	return ok
}

// RegisterOther extends the table at runtime for the "other" open form,
// recording the arity seen the first time the token is used so later
// uses can be arity-checked too. It never overrides an entry already
// present in the closed set.
func RegisterOther(token string, arity int) {
	if _, ok := operatorTable[token]; ok {
		return
	}
	operatorTable[token] = OpInfo{Token: token, Arity: arity}
}

// GoName produces a Go-identifier-safe label for an operator token, used
// only for diagnostics/log fields (e.g. "+.f64" -> "PlusF64").
func GoName(token string) string {
	return strcase.ToCamel(sanitize(token))
}

func sanitize(token string) string {
	out := make([]rune, 0, len(token))
	for _, r := range token {
		switch r {
		case '+':
			out = append(out, []rune("plus ")...)
		case '-':
			out = append(out, []rune("minus ")...)
		case '*':
			out = append(out, []rune("times ")...)
		case '/':
			out = append(out, []rune("over ")...)
		case '.':
			out = append(out, ' ')
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
