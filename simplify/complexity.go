/*
File    : cas-go/simplify/complexity.go
*/
package simplify

import "github.com/casforge/cas-go/algebra"

// ComplexityFunc scores an expression; lower means simpler. The
// simplifier uses this purely to gate DistributiveProperty (the one
// rule that can increase node count) — it is otherwise just a
// monotonic progress metric, not consulted to choose between rules.
type ComplexityFunc func(algebra.Expr) int

// DefaultComplexity is the heuristic described by spec.md §4.5: a
// post-order sum where a Number contributes its truncated absolute
// value, a Symbol its name length, a Call the combined length of its
// name and argument list, and Add/Mul/Exp a small fixed overhead on
// top of their children's complexity.
func DefaultComplexity(e algebra.Expr) int {
	switch e.Tag {
	case algebra.TagPrimary:
		switch e.Primary.Kind {
		case algebra.PrimaryNumber:
			return int(e.Primary.Number.AbsUint())
		case algebra.PrimarySymbol:
			return len(e.Primary.Symbol)
		case algebra.PrimaryCall:
			total := len(e.Primary.Name) + len(e.Primary.Args)
			for _, arg := range e.Primary.Args {
				total += DefaultComplexity(arg)
			}
			return total
		}
		return 0
	case algebra.TagAdd:
		total := 3 + len(e.Terms)
		for _, t := range e.Terms {
			total += DefaultComplexity(t)
		}
		return total
	case algebra.TagMul:
		total := 2 + len(e.Factors)
		for _, f := range e.Factors {
			total += DefaultComplexity(f)
		}
		return total
	case algebra.TagExp:
		return 1 + DefaultComplexity(*e.Base) + DefaultComplexity(*e.Power)
	}
	return 0
}
