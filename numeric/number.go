/*
File    : cas-go/numeric/number.go
*/

// Package numeric stands in for the "arbitrary-precision numeric kernel"
// that the calculator language's parser and simplifier treat as an
// external collaborator (integers and decimals, with comparison and
// arithmetic). It is built on math/big so that term-folding never loses
// precision regardless of how large or how precisely-fractional a
// constant gets.
package numeric

import (
	"math/big"
	"strings"
)

// Number is an exact rational value: an arbitrary-precision integer or
// an arbitrary-precision exact fraction. Every arithmetic operation
// returns an exact result; there is no rounding.
type Number struct {
	r *big.Rat
}

// Zero is the additive identity.
var Zero = Int(0)

// One is the multiplicative identity.
var One = Int(1)

// Int builds a Number from a machine integer.
func Int(n int64) Number {
	return Number{r: new(big.Rat).SetInt64(n)}
}

// FromBigInt builds a Number from an arbitrary-precision integer.
func FromBigInt(n *big.Int) Number {
	return Number{r: new(big.Rat).SetInt(n)}
}

// Parse builds a Number from the lexeme of an Int or Float token (e.g.
// "42", "3.14", "1000000000000000000000"). It reports false if lexeme is
// not a valid base-10 integer or decimal.
func Parse(lexeme string) (Number, bool) {
	r, ok := new(big.Rat).SetString(lexeme)
	if !ok {
		return Number{}, false
	}
	return Number{r: r}, true
}

// String renders the number in decimal form: as a plain integer when it
// has no fractional part, or as "num/den" otherwise.
func (n Number) String() string {
	if n.r == nil {
		return "0"
	}
	if n.r.IsInt() {
		return n.r.Num().String()
	}
	return n.r.RatString()
}

// IsZero reports whether n is exactly 0.
func (n Number) IsZero() bool {
	return n.r == nil || n.r.Sign() == 0
}

// IsOne reports whether n is exactly 1.
func (n Number) IsOne() bool {
	return n.r != nil && n.r.Cmp(One.r) == 0
}

// IsNegOne reports whether n is exactly -1.
func (n Number) IsNegOne() bool {
	return n.r != nil && n.r.Sign() < 0 && n.Neg().IsOne()
}

// IsInt reports whether n has no fractional part.
func (n Number) IsInt() bool {
	return n.r == nil || n.r.IsInt()
}

// Sign returns -1, 0, or 1 according to the sign of n.
func (n Number) Sign() int {
	if n.r == nil {
		return 0
	}
	return n.r.Sign()
}

// Cmp compares n and m, returning -1, 0, or 1.
func (n Number) Cmp(m Number) int {
	return n.ratOrZero().Cmp(m.ratOrZero())
}

// Equal reports whether n and m denote the same exact value.
func (n Number) Equal(m Number) bool {
	return n.Cmp(m) == 0
}

func (n Number) ratOrZero() *big.Rat {
	if n.r == nil {
		return new(big.Rat)
	}
	return n.r
}

// Add returns n+m.
func (n Number) Add(m Number) Number {
	return Number{r: new(big.Rat).Add(n.ratOrZero(), m.ratOrZero())}
}

// Sub returns n-m.
func (n Number) Sub(m Number) Number {
	return Number{r: new(big.Rat).Sub(n.ratOrZero(), m.ratOrZero())}
}

// Mul returns n*m.
func (n Number) Mul(m Number) Number {
	return Number{r: new(big.Rat).Mul(n.ratOrZero(), m.ratOrZero())}
}

// Quo returns n/m. It reports ok=false when m is zero, leaving the
// division unperformed.
func (n Number) Quo(m Number) (Number, bool) {
	if m.IsZero() {
		return Number{}, false
	}
	return Number{r: new(big.Rat).Quo(n.ratOrZero(), m.ratOrZero())}, true
}

// Neg returns -n.
func (n Number) Neg() Number {
	return Number{r: new(big.Rat).Neg(n.ratOrZero())}
}

// Abs returns |n|.
func (n Number) Abs() Number {
	return Number{r: new(big.Rat).Abs(n.ratOrZero())}
}

// AbsUint returns the non-negative integer part of |n|, truncating any
// fraction. Used by the default complexity heuristic, which scores a
// numeric primary by its truncated absolute value.
func (n Number) AbsUint() uint64 {
	abs := n.Abs().ratOrZero()
	q := new(big.Int).Quo(abs.Num(), abs.Denom())
	if !q.IsUint64() {
		return ^uint64(0)
	}
	return q.Uint64()
}

// GCD returns the greatest common divisor of the numerators of n and m,
// which is their GCD when both are integers. Used by the
// ReduceFraction rewrite rule to cancel a common factor out of an
// integer numerator and an integer-reciprocal denominator.
func (n Number) GCD(m Number) Number {
	a := new(big.Int).Abs(n.ratOrZero().Num())
	b := new(big.Int).Abs(m.ratOrZero().Num())
	g := new(big.Int).GCD(nil, nil, a, b)
	return FromBigInt(g)
}

// Reciprocal returns 1/n and reports ok=false when n is zero.
func (n Number) Reciprocal() (Number, bool) {
	if n.IsZero() {
		return Number{}, false
	}
	return Number{r: new(big.Rat).Inv(n.ratOrZero())}, true
}

// key renders a sortable, collision-free string for use in canonical
// ordering and hashing. Two equal numbers always produce the same key.
func (n Number) key() string {
	var b strings.Builder
	b.WriteString(n.ratOrZero().RatString())
	return b.String()
}

// Key exposes the canonical sort key for n.
func (n Number) Key() string {
	return n.key()
}
