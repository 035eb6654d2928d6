/*
File    : cas-go/simplify/rules.go
*/
package simplify

import (
	"github.com/casforge/cas-go/algebra"
	"github.com/casforge/cas-go/numeric"
)

// rule is a single rewrite attempt: given the current node (and the
// active complexity heuristic, needed only by DistributiveProperty's
// gate), it returns a strictly different expression and true when it
// applies, or e unchanged and false otherwise.
type rule func(e algebra.Expr, complexity ComplexityFunc) (algebra.Expr, bool)

// ruleTable lists every rule in the fixed trial order spec.md's rule
// table specifies. tryRules walks it top to bottom and commits to the
// first match.
// It is filled in by init because distributiveProperty's gate calls back
// into simplifyNode, which reads ruleTable.
var ruleTable []struct {
	step Step
	fn   rule
}

func init() {
	ruleTable = []struct {
		step Step
		fn   rule
	}{
		{AddZero, addZero},
		{MultiplyZero, multiplyZero},
		{MultiplyOne, multiplyOne},
		{CombineLikeFactors, combineLikeFactors},
		{ReduceFraction, reduceFraction},
		{PowerZero, powerZero},
		{PowerOne, powerOne},
		{PowerZeroLeft, powerZeroLeft},
		{PowerOneLeft, powerOneLeft},
		{PowerPower, powerPower},
		{DistributePower, distributePower},
		{DistributiveProperty, distributiveProperty},
	}
}

// tryRules attempts every rule at e in order, returning the first one
// that fires.
func tryRules(e algebra.Expr, complexity ComplexityFunc) (algebra.Expr, Step, bool) {
	for _, r := range ruleTable {
		if newExpr, ok := r.fn(e, complexity); ok {
			return newExpr, r.step, true
		}
	}
	return e, 0, false
}

func isNumber(e algebra.Expr) (numeric.Number, bool) { return e.IsNumber() }

// addZero drops a single zero term from an Add, collapsing per the
// Add-identity invariant.
func addZero(e algebra.Expr, _ ComplexityFunc) (algebra.Expr, bool) {
	if e.Tag != algebra.TagAdd {
		return e, false
	}
	idx := -1
	for i, t := range e.Terms {
		if n, ok := isNumber(t); ok && n.IsZero() {
			idx = i
			break
		}
	}
	if idx < 0 {
		return e, false
	}
	kept := removeAt(e.Terms, idx)
	return collapseOrNode(kept, algebra.TagAdd, numeric.Zero), true
}

// multiplyZero collapses a Mul containing a zero factor to 0.
func multiplyZero(e algebra.Expr, _ ComplexityFunc) (algebra.Expr, bool) {
	if e.Tag != algebra.TagMul {
		return e, false
	}
	for _, f := range e.Factors {
		if n, ok := isNumber(f); ok && n.IsZero() {
			return algebra.NumberPrimary(numeric.Zero), true
		}
	}
	return e, false
}

// multiplyOne drops a single one factor from a Mul.
func multiplyOne(e algebra.Expr, _ ComplexityFunc) (algebra.Expr, bool) {
	if e.Tag != algebra.TagMul {
		return e, false
	}
	idx := -1
	for i, f := range e.Factors {
		if n, ok := isNumber(f); ok && n.IsOne() {
			idx = i
			break
		}
	}
	if idx < 0 {
		return e, false
	}
	kept := removeAt(e.Factors, idx)
	return collapseOrNode(kept, algebra.TagMul, numeric.One), true
}

// baseAndExponent views a Mul factor as (base, exponent), treating a
// bare factor as having an implicit exponent of 1.
func baseAndExponent(f algebra.Expr) (base, exponent algebra.Expr) {
	if f.Tag == algebra.TagExp {
		return *f.Base, *f.Power
	}
	return f, algebra.NumberPrimary(numeric.One)
}

// combineLikeFactors finds the first pair of Mul factors that share the
// same base (ignoring an implicit exponent of 1) and folds them into a
// single factor with the summed exponent.
func combineLikeFactors(e algebra.Expr, _ ComplexityFunc) (algebra.Expr, bool) {
	if e.Tag != algebra.TagMul {
		return e, false
	}
	for i := 0; i < len(e.Factors); i++ {
		baseI, expI := baseAndExponent(e.Factors[i])
		for j := i + 1; j < len(e.Factors); j++ {
			baseJ, expJ := baseAndExponent(e.Factors[j])
			if !algebra.Equal(baseI, baseJ) {
				continue
			}
			newExp := algebra.Add(expI, expJ)
			var combined algebra.Expr
			switch {
			case isExactNumber(newExp, numeric.Zero):
				combined = algebra.NumberPrimary(numeric.One)
			case isExactNumber(newExp, numeric.One):
				combined = baseI
			default:
				combined = algebra.Exp(baseI, newExp)
			}
			kept := removeIndices(e.Factors, i, j)
			kept = append(kept, combined)
			return collapseOrNode(kept, algebra.TagMul, numeric.One), true
		}
	}
	return e, false
}

func isExactNumber(e algebra.Expr, want numeric.Number) bool {
	n, ok := isNumber(e)
	return ok && n.Equal(want)
}

// reduceFraction finds an integer factor and an integer-reciprocal
// factor (Exp(Number, -1)) in a Mul and cancels their common divisor.
func reduceFraction(e algebra.Expr, _ ComplexityFunc) (algebra.Expr, bool) {
	if e.Tag != algebra.TagMul {
		return e, false
	}
	for i, f := range e.Factors {
		num, isInt := isNumber(f)
		if !isInt || !num.IsInt() || num.IsZero() {
			continue
		}
		for j, g := range e.Factors {
			if i == j || g.Tag != algebra.TagExp {
				continue
			}
			denomNum, isDenomInt := isNumber(*g.Base)
			powNum, isPow := isNumber(*g.Power)
			if !isDenomInt || !isPow || !powNum.IsNegOne() || !denomNum.IsInt() || denomNum.IsZero() {
				continue
			}
			gcd := num.GCD(denomNum)
			if gcd.IsOne() || gcd.IsZero() {
				continue
			}
			reducedNum, _ := num.Quo(gcd)
			reducedDenom, _ := denomNum.Quo(gcd)

			kept := removeIndices(e.Factors, i, j)
			kept = append(kept, algebra.NumberPrimary(reducedNum))
			if !reducedDenom.IsOne() {
				kept = append(kept, algebra.Exp(algebra.NumberPrimary(reducedDenom), algebra.NumberPrimary(numeric.Int(-1))))
			}
			return collapseOrNode(kept, algebra.TagMul, numeric.One), true
		}
	}
	return e, false
}

// powerZero: a^0 = 1.
func powerZero(e algebra.Expr, _ ComplexityFunc) (algebra.Expr, bool) {
	if e.Tag != algebra.TagExp {
		return e, false
	}
	if n, ok := isNumber(*e.Power); ok && n.IsZero() {
		return algebra.NumberPrimary(numeric.One), true
	}
	return e, false
}

// powerOne: a^1 = a.
func powerOne(e algebra.Expr, _ ComplexityFunc) (algebra.Expr, bool) {
	if e.Tag != algebra.TagExp {
		return e, false
	}
	if n, ok := isNumber(*e.Power); ok && n.IsOne() {
		return *e.Base, true
	}
	return e, false
}

// powerZeroLeft: 0^a = 0, when a is a known positive number. A
// non-numeric or non-positive exponent can't be judged safe (0^0 and
// 0^-1 are not 0), so the rule simply doesn't fire there.
func powerZeroLeft(e algebra.Expr, _ ComplexityFunc) (algebra.Expr, bool) {
	if e.Tag != algebra.TagExp {
		return e, false
	}
	base, ok := isNumber(*e.Base)
	if !ok || !base.IsZero() {
		return e, false
	}
	if power, ok := isNumber(*e.Power); ok && power.Sign() > 0 {
		return algebra.NumberPrimary(numeric.Zero), true
	}
	return e, false
}

// powerOneLeft: 1^a = 1.
func powerOneLeft(e algebra.Expr, _ ComplexityFunc) (algebra.Expr, bool) {
	if e.Tag != algebra.TagExp {
		return e, false
	}
	if n, ok := isNumber(*e.Base); ok && n.IsOne() {
		return algebra.NumberPrimary(numeric.One), true
	}
	return e, false
}

// powerPower: (b^p)^q = b^(p*q).
func powerPower(e algebra.Expr, _ ComplexityFunc) (algebra.Expr, bool) {
	if e.Tag != algebra.TagExp || e.Base.Tag != algebra.TagExp {
		return e, false
	}
	inner := *e.Base
	newPower := algebra.Mul(*inner.Power, *e.Power)
	return algebra.Exp(*inner.Base, newPower), true
}

// distributePower: (f1*f2*...)^q = f1^q * f2^q * ...
func distributePower(e algebra.Expr, _ ComplexityFunc) (algebra.Expr, bool) {
	if e.Tag != algebra.TagExp || e.Base.Tag != algebra.TagMul {
		return e, false
	}
	factors := make([]algebra.Expr, len(e.Base.Factors))
	for i, f := range e.Base.Factors {
		factors[i] = algebra.Exp(f, *e.Power)
	}
	return algebra.Mul(factors...), true
}

// distributiveProperty: a*(b+c)*... = a*b*... + a*c*..., applied to the
// first Add factor whose distribution passes the gate. Gated by
// complexity since this is the only rule that can increase node count:
// it commits only when the distributed result, once simplified, is
// strictly simpler than the original.
func distributiveProperty(e algebra.Expr, complexity ComplexityFunc) (algebra.Expr, bool) {
	if e.Tag != algebra.TagMul {
		return e, false
	}
	for i, f := range e.Factors {
		if f.Tag != algebra.TagAdd {
			continue
		}
		rest := removeAt(e.Factors, i)
		restProduct := algebra.Mul(rest...)

		newTerms := make([]algebra.Expr, len(f.Terms))
		for j, term := range f.Terms {
			newTerms[j] = algebra.Mul(restProduct, term)
		}
		distributed := algebra.Add(newTerms...)

		simplified, _ := simplifyNode(distributed, complexity, noopCollector{})
		if complexity(simplified) < complexity(e) {
			return distributed, true
		}
	}
	return e, false
}

// removeAt returns a copy of es with the element at idx removed.
func removeAt(es []algebra.Expr, idx int) []algebra.Expr {
	out := make([]algebra.Expr, 0, len(es)-1)
	for i, e := range es {
		if i != idx {
			out = append(out, e)
		}
	}
	return out
}

// removeIndices returns a copy of es with the elements at i and j
// removed (i and j may be given in either order).
func removeIndices(es []algebra.Expr, i, j int) []algebra.Expr {
	out := make([]algebra.Expr, 0, len(es)-2)
	for k, e := range es {
		if k != i && k != j {
			out = append(out, e)
		}
	}
	return out
}

// collapseOrNode rebuilds an Add/Mul node from a possibly-shrunk child
// list: zero children collapses to identity, one child is returned
// bare, otherwise a fresh node of tag holds the list untouched (no
// re-flattening or re-folding — that happens when simplifyNode later
// rebuilds the node through algebra.Add/algebra.Mul).
func collapseOrNode(children []algebra.Expr, tag algebra.Tag, identity numeric.Number) algebra.Expr {
	if len(children) == 0 {
		return algebra.NumberPrimary(identity)
	}
	if len(children) == 1 {
		return children[0]
	}
	if tag == algebra.TagAdd {
		return algebra.Expr{Tag: algebra.TagAdd, Terms: children}
	}
	return algebra.Expr{Tag: algebra.TagMul, Factors: children}
}
