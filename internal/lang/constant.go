package lang

import (
	"math/big"
	"strings"
)

// Constant is an arbitrary-precision rational, compared and hashed by
// value. math/big.Rat already keeps numerator/denominator
// reduced with a positive denominator, so RatString is a canonical key.
type Constant struct {
	r *big.Rat
}

// NewConstantInt builds an integer constant.
func NewConstantInt(n int64) Constant {
	return Constant{r: new(big.Rat).SetInt64(n)}
}

// NewConstantRat builds a p/q constant; q must be non-zero.
func NewConstantRat(p, q int64) (Constant, bool) {
	if q == 0 {
		return Constant{}, false
	}
	return Constant{r: new(big.Rat).SetFrac(big.NewInt(p), big.NewInt(q))}, true
}

// ParseConstant parses an integer or a p/q rational literal. Decimal
// literals are rejected.
func ParseConstant(lit string) (Constant, bool) {
	if strings.ContainsAny(lit, ".eEpP") {
		return Constant{}, false
	}
	r, ok := new(big.Rat).SetString(lit)
	if !ok {
		return Constant{}, false
	}
	return Constant{r: r}, true
}

// Rat exposes the underlying rational for arithmetic (internal/egraph's
// constant-folding analysis).
func (c Constant) Rat() *big.Rat { return c.r }

// IsZero reports whether the constant is exactly zero.
func (c Constant) IsZero() bool { return c.r.Sign() == 0 }

// String renders the constant using the same p/q surface syntax it was
// parsed from (an integer denominator of 1 prints without a slash).
func (c Constant) String() string {
	if c.r.IsInt() {
		return c.r.Num().String()
	}
	return c.r.RatString()
}

// Equal compares two constants by value.
func (c Constant) Equal(o Constant) bool {
	if c.r == nil || o.r == nil {
		return c.r == o.r
	}
	return c.r.Cmp(o.r) == 0
}

// Key returns the canonical hash-cons key for this constant, used by
// internal/egraph to build e-node memo keys.
func (c Constant) Key() string { return "#" + c.String() }

// Add, Sub, Mul return the exact rational result of the corresponding
// arithmetic operator. Div returns false for division by zero (spec
// §4.3: "division by zero yields undefined").
func Add(a, b Constant) Constant { return Constant{r: new(big.Rat).Add(a.r, b.r)} }
func Sub(a, b Constant) Constant { return Constant{r: new(big.Rat).Sub(a.r, b.r)} }
func Mul(a, b Constant) Constant { return Constant{r: new(big.Rat).Mul(a.r, b.r)} }

func Div(a, b Constant) (Constant, bool) {
	if b.IsZero() {
		return Constant{}, false
	}
	return Constant{r: new(big.Rat).Quo(a.r, b.r)}, true
}

func Neg(a Constant) Constant { return Constant{r: new(big.Rat).Neg(a.r)} }

// Pow raises a to an integer exponent exactly. Returns false for negative exponents of zero.
func Pow(a Constant, exp int64) (Constant, bool) {
	if exp == 0 {
		return NewConstantInt(1), true
	}
	neg := exp < 0
	if neg {
		exp = -exp
	}
	result := new(big.Rat).SetInt64(1)
	base := new(big.Rat).Set(a.r)
	for exp > 0 {
		if exp&1 == 1 {
			result.Mul(result, base)
		}
		base.Mul(base, base)
		exp >>= 1
	}
	if neg {
		if result.Sign() == 0 {
			return Constant{}, false
		}
		result.Inv(result)
	}
	return Constant{r: result}, true
}

// Sqrt returns the exact square root only when both numerator and
// denominator of the (necessarily non-negative) value are perfect
// squares, leaving the partial case to rewriting.
func Sqrt(a Constant) (Constant, bool) {
	if a.r.Sign() < 0 {
		return Constant{}, false
	}
	numSqrt, ok := perfectSquareRoot(a.r.Num())
	if !ok {
		return Constant{}, false
	}
	denSqrt, ok := perfectSquareRoot(a.r.Denom())
	if !ok {
		return Constant{}, false
	}
	return Constant{r: new(big.Rat).SetFrac(numSqrt, denSqrt)}, true
}

func perfectSquareRoot(n *big.Int) (*big.Int, bool) {
	if n.Sign() < 0 {
		return nil, false
	}
	root := new(big.Int).Sqrt(n)
	check := new(big.Int).Mul(root, root)
	if check.Cmp(n) != 0 {
		return nil, false
	}
	return root, true
}
