/*
File    : cas-go/algebra/expr.go
*/

// Package algebra defines the canonical algebraic expression tree the
// simplifier operates on, distinct from the parser's syntax tree. Where
// the parser AST preserves exactly how something was written (`a - b`,
// `a / b`, `-a`), the algebraic tree desugars all of that into just
// three associative-commutative-aware shapes — Add, Mul, Exp — plus a
// Primary leaf, per spec.md §3/§4.3.
package algebra

import (
	"sort"
	"strings"

	"github.com/casforge/cas-go/numeric"
)

// PrimaryKind distinguishes the three leaf shapes a Primary can hold.
type PrimaryKind int

const (
	PrimaryNumber PrimaryKind = iota
	PrimarySymbol
	PrimaryCall
)

// Primary is a leaf of the algebraic tree: a number, a bare symbol, or a
// function call whose arguments are themselves algebraic expressions.
// The simplifier treats a call as a leaf and does not rewrite inside its
// arguments.
type Primary struct {
	Kind   PrimaryKind
	Number numeric.Number
	Symbol string
	Name   string // Call's function name
	Args   []Expr // Call's arguments
}

func NumberPrimary(n numeric.Number) Expr { return Expr{Tag: TagPrimary, Primary: Primary{Kind: PrimaryNumber, Number: n}} }
func SymbolPrimary(s string) Expr         { return Expr{Tag: TagPrimary, Primary: Primary{Kind: PrimarySymbol, Symbol: s}} }
func CallPrimary(name string, args []Expr) Expr {
	return Expr{Tag: TagPrimary, Primary: Primary{Kind: PrimaryCall, Name: name, Args: args}}
}

// Tag identifies which of the four shapes an Expr holds.
type Tag int

const (
	TagPrimary Tag = iota
	TagAdd
	TagMul
	TagExp
)

// Expr is the algebraic expression tree. It is a closed tagged union:
// exactly one of Primary / Terms / Factors / (Base, Power) is
// meaningful, selected by Tag. A plain struct (rather than an
// interface-per-variant, as the parser AST uses) mirrors the Rust
// original's single `enum Expr`, and makes structural equality and
// cloning trivial value operations, which the simplifier leans on
// heavily.
type Expr struct {
	Tag     Tag
	Primary Primary // valid when Tag == TagPrimary

	Terms   []Expr // valid when Tag == TagAdd
	Factors []Expr // valid when Tag == TagMul

	Base  *Expr // valid when Tag == TagExp
	Power *Expr // valid when Tag == TagExp
}

// Add builds a flattened, identity-collapsed Add node from terms.
// Nested Adds among terms are flattened (invariant 1); numeric terms
// are folded into a single constant, dropped if zero unless it is the
// only term remaining (invariant 2/3).
func Add(terms ...Expr) Expr {
	flat := make([]Expr, 0, len(terms))
	for _, t := range terms {
		if t.Tag == TagAdd {
			flat = append(flat, t.Terms...)
		} else {
			flat = append(flat, t)
		}
	}

	sum := numeric.Zero
	haveNumber := false
	var rest []Expr
	for _, t := range flat {
		if t.Tag == TagPrimary && t.Primary.Kind == PrimaryNumber {
			sum = sum.Add(t.Primary.Number)
			haveNumber = true
			continue
		}
		rest = append(rest, t)
	}

	if haveNumber && !sum.IsZero() {
		rest = append(rest, NumberPrimary(sum))
	}

	if len(rest) == 0 {
		return NumberPrimary(numeric.Zero)
	}
	if len(rest) == 1 {
		return rest[0]
	}
	return Expr{Tag: TagAdd, Terms: rest}
}

// Mul builds a flattened, identity-collapsed Mul node from factors.
// Nested Muls are flattened; numeric factors fold into one constant; a
// zero constant annihilates the whole product; a one constant (and no
// other numeric factor) is dropped.
func Mul(factors ...Expr) Expr {
	flat := make([]Expr, 0, len(factors))
	for _, f := range factors {
		if f.Tag == TagMul {
			flat = append(flat, f.Factors...)
		} else {
			flat = append(flat, f)
		}
	}

	product := numeric.One
	haveNumber := false
	var rest []Expr
	for _, f := range flat {
		if f.Tag == TagPrimary && f.Primary.Kind == PrimaryNumber {
			product = product.Mul(f.Primary.Number)
			haveNumber = true
			continue
		}
		rest = append(rest, f)
	}

	if haveNumber && product.IsZero() {
		return NumberPrimary(numeric.Zero)
	}
	if haveNumber && !product.IsOne() {
		rest = append(rest, NumberPrimary(product))
	}

	if len(rest) == 0 {
		return NumberPrimary(numeric.One)
	}
	if len(rest) == 1 {
		return rest[0]
	}
	return Expr{Tag: TagMul, Factors: rest}
}

// Exp builds an exponentiation node. Unlike Add/Mul it is not
// variadic/flattening — `Exp(Exp(b,p), q)` is a distinct shape that the
// PowerPower rewrite rule collapses, not something Exp itself folds.
func Exp(base, power Expr) Expr {
	b, p := base, power
	return Expr{Tag: TagExp, Base: &b, Power: &p}
}

// Neg returns `-1 * e`, the canonical desugaring of unary minus.
func Neg(e Expr) Expr {
	return Mul(NumberPrimary(numeric.Int(-1)), e)
}

// Sub returns `a + (-1 * b)`, the canonical desugaring of subtraction.
func Sub(a, b Expr) Expr {
	return Add(a, Neg(b))
}

// Div returns `a * b^-1`, the canonical desugaring of division.
func Div(a, b Expr) Expr {
	return Mul(a, Exp(b, NumberPrimary(numeric.Int(-1))))
}

// IsNumber reports whether e is a Primary number, and returns it.
func (e Expr) IsNumber() (numeric.Number, bool) {
	if e.Tag == TagPrimary && e.Primary.Kind == PrimaryNumber {
		return e.Primary.Number, true
	}
	return numeric.Number{}, false
}

// Equal reports whether a and b are structurally equal, ignoring
// sibling order within Add/Mul (spec.md §4.4's "deterministic equality
// that ignores sibling ordering within AC operators").
func Equal(a, b Expr) bool {
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case TagPrimary:
		return equalPrimary(a.Primary, b.Primary)
	case TagAdd:
		return equalMultiset(a.Terms, b.Terms)
	case TagMul:
		return equalMultiset(a.Factors, b.Factors)
	case TagExp:
		return Equal(*a.Base, *b.Base) && Equal(*a.Power, *b.Power)
	}
	return false
}

func equalPrimary(a, b Primary) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case PrimaryNumber:
		return a.Number.Equal(b.Number)
	case PrimarySymbol:
		return a.Symbol == b.Symbol
	case PrimaryCall:
		if a.Name != b.Name || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !Equal(a.Args[i], b.Args[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// equalMultiset reports whether two expression slices contain the same
// elements up to permutation, matched via each element's canonical sort
// key for an O(n log n) comparison instead of O(n²).
func equalMultiset(a, b []Expr) bool {
	if len(a) != len(b) {
		return false
	}
	as := sortedCopy(a)
	bs := sortedCopy(b)
	for i := range as {
		if !Equal(as[i], bs[i]) {
			return false
		}
	}
	return true
}

func sortedCopy(es []Expr) []Expr {
	out := make([]Expr, len(es))
	copy(out, es)
	sort.Slice(out, func(i, j int) bool { return SortKey(out[i]) < SortKey(out[j]) })
	return out
}

// SortKey returns a canonical string key for e, used to give Add/Mul
// children a deterministic order when comparing, so that equalMultiset
// can sort instead of doing pairwise comparison. Add and Mul nodes
// themselves keep their children in the order they were assembled in.
func SortKey(e Expr) string {
	var b strings.Builder
	writeSortKey(&b, e)
	return b.String()
}

func writeSortKey(b *strings.Builder, e Expr) {
	switch e.Tag {
	case TagPrimary:
		switch e.Primary.Kind {
		case PrimaryNumber:
			b.WriteString("0:")
			b.WriteString(e.Primary.Number.Key())
		case PrimarySymbol:
			b.WriteString("1:")
			b.WriteString(e.Primary.Symbol)
		case PrimaryCall:
			b.WriteString("2:")
			b.WriteString(e.Primary.Name)
			for _, arg := range e.Primary.Args {
				b.WriteByte(',')
				writeSortKey(b, arg)
			}
		}
	case TagAdd:
		b.WriteString("3:[")
		for i, t := range sortedCopy(e.Terms) {
			if i > 0 {
				b.WriteByte(',')
			}
			writeSortKey(b, t)
		}
		b.WriteByte(']')
	case TagMul:
		b.WriteString("4:[")
		for i, f := range sortedCopy(e.Factors) {
			if i > 0 {
				b.WriteByte(',')
			}
			writeSortKey(b, f)
		}
		b.WriteByte(']')
	case TagExp:
		b.WriteString("5:(")
		writeSortKey(b, *e.Base)
		b.WriteByte('^')
		writeSortKey(b, *e.Power)
		b.WriteByte(')')
	}
}
