/*
File    : cas-go/algebra/convert.go
*/
package algebra

import (
	"github.com/casforge/cas-go/parser"
)

// ToAlgebraic converts a parsed syntax tree into its canonical algebraic
// form, per spec.md §4.3: subtraction and division are desugared,
// unary minus becomes multiplication by -1, and every Add/Mul
// constructor call along the way flattens and numerically folds as it
// goes, so the result is already in normal form before any rewrite rule
// ever runs.
//
// An assignment converts to its right-hand side. Nodes with no algebraic
// meaning (unit, block, if, loop, break, continue) convert to a Symbol
// primary with an empty name; their contents are not carried over.
func ToAlgebraic(e parser.Expr) Expr {
	switch n := e.(type) {
	case *parser.NumberLiteral:
		return NumberPrimary(n.Value)
	case *parser.SymbolLiteral:
		return SymbolPrimary(n.Name)
	case *parser.UnitLiteral:
		return SymbolPrimary("")
	case *parser.Paren:
		return ToAlgebraic(n.Inner)
	case *parser.Call:
		args := make([]Expr, len(n.Args))
		for i, a := range n.Args {
			args[i] = ToAlgebraic(a)
		}
		return CallPrimary(n.Name.Name, args)
	case *parser.Unary:
		operand := ToAlgebraic(n.Operand)
		if n.Op == parser.OpNeg {
			return Neg(operand)
		}
		return operand
	case *parser.Binary:
		left := ToAlgebraic(n.Left)
		right := ToAlgebraic(n.Right)
		switch n.Op {
		case parser.OpAdd:
			return Add(left, right)
		case parser.OpSub:
			return Sub(left, right)
		case parser.OpMul:
			return Mul(left, right)
		case parser.OpDiv:
			return Div(left, right)
		case parser.OpPow:
			return Exp(left, right)
		default:
			// Comparison operators (==, !=, <, <=, >, >=) have no
			// algebraic reduction; represent the comparison as an
			// uninterpreted call so it survives conversion intact.
			return CallPrimary(comparisonName(n.Op), []Expr{left, right})
		}
	case *parser.Assign:
		return ToAlgebraic(n.Value)
	default:
		// Block / If / Loop / Break / Continue: opaque from the
		// algebraic tree's point of view.
		return SymbolPrimary("")
	}
}

func comparisonName(op parser.BinaryOp) string {
	switch op {
	case parser.OpEq:
		return "eq"
	case parser.OpNe:
		return "ne"
	case parser.OpLt:
		return "lt"
	case parser.OpLe:
		return "le"
	case parser.OpGt:
		return "gt"
	case parser.OpGe:
		return "ge"
	}
	return "cmp"
}
