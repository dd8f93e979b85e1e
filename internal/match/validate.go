package match

import "fmt"

// ValidateHoles checks that every hole referenced by rhs is bound by
// lhs, rejecting dangling RHS holes when a ruleset is registered rather
// than deferring the failure to the first apply. The error carries no
// position; internal/rewrite.FromDecl prefixes it with the rule's name.
func ValidateHoles(lhs, rhs *Pattern) error {
	bound := make(map[string]bool)
	for _, h := range lhs.Holes() {
		bound[h] = true
	}
	for _, h := range rhs.Holes() {
		if !bound[h] {
			return fmt.Errorf("rule RHS references unbound hole ?%s", h)
		}
	}
	return nil
}
