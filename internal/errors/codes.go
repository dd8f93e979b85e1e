// Package errors implements the engine's error codes and diagnostics for
// three categories: ParseError, BudgetExceeded and InvariantViolation.
// Saturation and analysis unsoundness are not errors here; they are
// reported by internal/rewrite's StopReason and the e-graph's Unsound
// latch.
//
// Error code ranges:
// E1xxx: ParseError (malformed S-expression, unknown operator, wrong arity)
// E2xxx: BudgetExceeded / runner stop conditions
// E3xxx: InvariantViolation (programming bug, fatal)
package errors

const (
	// E1001: Malformed S-expression (scanner/grammar rejected the input).
	ErrorMalformedSexpr = "E1001"

	// E1002: Reference to an operator token outside the closed operator set.
	ErrorUnknownOperator = "E1002"

	// E1003: Operator applied with the wrong number of arguments for its
	// fixed arity.
	ErrorWrongArity = "E1003"

	// E1004: Malformed rational literal (not an integer or p/q form).
	ErrorBadRational = "E1004"

	// E1005: A rewrite rule's RHS references a hole absent from its LHS.
	ErrorUnboundHole = "E1005"

	// E2001: node_limit exceeded during apply; current iteration aborted.
	ErrorBudgetExceeded = "E2001"

	// E3001: a post-rebuild e-graph invariant failed to hold (canonicity,
	// hash-consing, parent-list integrity, or analysis congruence).
	ErrorInvariantViolation = "E3001"
)

// Description returns a human-readable description of the error code.
func Description(code string) string {
	switch code {
	case ErrorMalformedSexpr:
		return "input is not a well-formed S-expression"
	case ErrorUnknownOperator:
		return "operator token is not part of the closed operator set"
	case ErrorWrongArity:
		return "operator applied with the wrong number of arguments"
	case ErrorBadRational:
		return "literal is not a valid integer or p/q rational"
	case ErrorUnboundHole:
		return "rule RHS references a hole not bound by its LHS"
	case ErrorBudgetExceeded:
		return "node_limit exceeded; current iteration aborted"
	case ErrorInvariantViolation:
		return "an e-graph invariant failed to hold after rebuild"
	default:
		return "unknown error code"
	}
}

// Category groups a code into one of the taxonomy's buckets.
func Category(code string) string {
	switch {
	case code >= "E1000" && code < "E2000":
		return "ParseError"
	case code >= "E2000" && code < "E3000":
		return "BudgetExceeded"
	case code >= "E3000" && code < "E4000":
		return "InvariantViolation"
	default:
		return "Unknown"
	}
}
