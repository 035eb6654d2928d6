/*
File    : cas-go/simplify/simplify.go
*/
package simplify

import "github.com/casforge/cas-go/algebra"

// Simplify reduces expr to a fixed point using the default complexity
// heuristic, discarding the trace of which rules fired.
func Simplify(expr algebra.Expr) algebra.Expr {
	result, _ := simplifyNode(expr, DefaultComplexity, noopCollector{})
	return result
}

// SimplifyWith reduces expr to a fixed point using a caller-supplied
// complexity heuristic instead of the default one.
func SimplifyWith(expr algebra.Expr, complexity ComplexityFunc) algebra.Expr {
	result, _ := simplifyNode(expr, complexity, noopCollector{})
	return result
}

// SimplifyWithSteps reduces expr using the default heuristic and
// returns the ordered sequence of rule names that fired along the way.
func SimplifyWithSteps(expr algebra.Expr) (algebra.Expr, []Step) {
	collector := &SliceCollector{}
	result, _ := simplifyNode(expr, DefaultComplexity, collector)
	return result, collector.Steps
}

// simplifyNode implements the driver algorithm of spec.md §4.5: try
// every rule at the current node in fixed order; on a match, replace
// the node, record the step, and restart without descending. Only once
// no rule fires at this node does it recurse into children, rebuilding
// the node from their simplified forms. It loops back to rule-trying
// whenever a descendant changed, and returns once a full pass changes
// nothing.
func simplifyNode(e algebra.Expr, complexity ComplexityFunc, collector StepCollector) (algebra.Expr, bool) {
	changedAtLeastOnce := false

	for {
		if newExpr, step, matched := tryRules(e, complexity); matched {
			e = newExpr
			collector.Push(step)
			changedAtLeastOnce = true
			continue
		}

		changedInPass := false
		switch e.Tag {
		case algebra.TagPrimary:
			return e, changedAtLeastOnce

		case algebra.TagAdd:
			terms := make([]algebra.Expr, len(e.Terms))
			for i, t := range e.Terms {
				simplified, changed := simplifyNode(t, complexity, collector)
				terms[i] = simplified
				changedInPass = changedInPass || changed
			}
			e = algebra.Add(terms...)

		case algebra.TagMul:
			factors := make([]algebra.Expr, len(e.Factors))
			for i, f := range e.Factors {
				simplified, changed := simplifyNode(f, complexity, collector)
				factors[i] = simplified
				changedInPass = changedInPass || changed
			}
			e = algebra.Mul(factors...)

		case algebra.TagExp:
			base, baseChanged := simplifyNode(*e.Base, complexity, collector)
			power, powerChanged := simplifyNode(*e.Power, complexity, collector)
			e = algebra.Exp(base, power)
			changedInPass = baseChanged || powerChanged
		}

		changedAtLeastOnce = changedAtLeastOnce || changedInPass
		if !changedInPass {
			return e, changedAtLeastOnce
		}
	}
}
