/*
File    : cas-go/parser/parser_expressions.go
*/
package parser

import "github.com/casforge/cas-go/lexer"

// bindingPower is the (left, right) binding power pair used by the Pratt
// engine. A higher number binds tighter. Left < Right means the operator
// is left-associative; Left > Right means right-associative.
type bindingPower struct {
	Left, Right int
}

// infixBindingPower returns the binding power of kind as an infix
// operator, and whether kind is an infix operator at all.
//
// Precedence, loosest to tightest: comparisons, additive, multiplicative
// (including implicit juxtaposition), exponentiation. Per spec.md's
// explicit statement that unary prefix operators bind tighter than any
// binary operator, exponentiation's left binding power (10) is still
// lower than unary's binding power (11, see prefixBindingPower) — an
// intentional departure from the usual `-x^2 == -(x^2)` convention:
// here `-x^2` parses as `(-x)^2`.
func infixBindingPower(kind lexer.TokenKind) (bindingPower, bool) {
	switch kind {
	case lexer.Eq, lexer.Ne, lexer.Lt, lexer.Le, lexer.Gt, lexer.Ge:
		return bindingPower{1, 2}, true
	case lexer.Plus, lexer.Minus:
		return bindingPower{3, 4}, true
	case lexer.Star, lexer.Slash:
		return bindingPower{5, 6}, true
	case lexer.Caret:
		return bindingPower{10, 9}, true // right-associative
	}
	return bindingPower{}, false
}

// prefixBindingPower is the binding power a unary prefix operator binds
// its operand with. 11 is higher than every infixBindingPower.Left, so a
// unary operator always grabs just its immediate operand before any
// binary operator to its right gets a chance at it.
const prefixBindingPower = 11

func binaryOpFor(kind lexer.TokenKind) BinaryOp {
	switch kind {
	case lexer.Plus:
		return OpAdd
	case lexer.Minus:
		return OpSub
	case lexer.Star:
		return OpMul
	case lexer.Slash:
		return OpDiv
	case lexer.Caret:
		return OpPow
	case lexer.Eq:
		return OpEq
	case lexer.Ne:
		return OpNe
	case lexer.Lt:
		return OpLt
	case lexer.Le:
		return OpLe
	case lexer.Gt:
		return OpGt
	case lexer.Ge:
		return OpGe
	}
	panic("binaryOpFor: not a binary operator token")
}

// startsImplicitMultiplicand reports whether the current token can begin
// a term directly juxtaposed against a preceding one with no operator
// between them, e.g. the `x` in `3x`, the `(` in `3(x+1)`, the second
// call in `f(x)g(x)`.
func (p *Parser) startsImplicitMultiplicand() bool {
	switch p.current().Kind {
	case lexer.Int, lexer.Float, lexer.Ident, lexer.LParen:
		return true
	}
	return false
}

// parseExpr parses a full expression at the given minimum binding power,
// the standard Pratt/precedence-climbing loop. It is the entry point
// every higher-level production (paren, call argument, assignment value,
// block element, if/loop body) eventually calls through.
func parseExpr(p *Parser, minBP int) Result[Expr] {
	lhsRes := parsePrefix(p)
	if !lhsRes.Ok {
		return lhsRes
	}
	lhs := lhsRes.Value
	errs := append([]Error{}, lhsRes.Errs...)

	for {
		// Implicit multiplication binds at the same power as '*'.
		if p.startsImplicitMultiplicand() {
			bp, _ := infixBindingPower(lexer.Star)
			if bp.Left < minBP {
				break
			}
			start := lhs.Span().Start
			rhsRes := parseExpr(p, bp.Right)
			if !rhsRes.Ok {
				break
			}
			errs = append(errs, rhsRes.Errs...)
			lhs = &Binary{
				Op: OpMul, Left: lhs, Right: rhsRes.Value,
				span: lexer.Span{Start: start, End: rhsRes.Value.Span().End},
			}
			continue
		}

		kind := p.current().Kind
		bp, isInfix := infixBindingPower(kind)
		if !isInfix || bp.Left < minBP {
			break
		}
		opTok := p.advance()
		start := lhs.Span().Start
		rhsRes := parseExpr(p, bp.Right)
		if !rhsRes.Ok {
			// Nothing usable followed the operator: synthesize an empty
			// symbol as the right operand and forward a recoverable error
			// (mirrors the empty-symbol recovery pattern used throughout
			// this grammar, spec.md §4.2).
			placeholder := &SymbolLiteral{Name: "", span: lexer.Span{Start: opTok.Span.End, End: opTok.Span.End}}
			errs = append(errs, NewError(MissingArgument{}, opTok.Span))
			lhs = &Binary{
				Op: binaryOpFor(kind), Left: lhs, Right: placeholder, OpSpan: opTok.Span,
				span: lexer.Span{Start: start, End: placeholder.Span().End},
			}
			break
		}
		errs = append(errs, rhsRes.Errs...)
		lhs = &Binary{
			Op: binaryOpFor(kind), Left: lhs, Right: rhsRes.Value, OpSpan: opTok.Span,
			span: lexer.Span{Start: start, End: rhsRes.Value.Span().End},
		}
	}

	return recovered[Expr](lhs, errs...)
}

// parsePrefix parses a unary-prefix-or-atom expression: either `- EXPR`
// / `+ EXPR` at prefixBindingPower, or an atom from parseAtom.
func parsePrefix(p *Parser) Result[Expr] {
	tok := p.current()
	var op UnaryOp
	switch tok.Kind {
	case lexer.Minus:
		op = OpNeg
	case lexer.Plus:
		op = OpPos
	default:
		return parseAtom(p)
	}
	p.advance()
	operandRes := parseExpr(p, prefixBindingPower)
	if !operandRes.Ok {
		placeholder := &SymbolLiteral{Name: "", span: lexer.Span{Start: tok.Span.End, End: tok.Span.End}}
		errs := append([]Error{NewError(MissingArgument{}, tok.Span)}, operandRes.Errs...)
		return recovered[Expr](&Unary{Op: op, Operand: placeholder, span: lexer.Span{Start: tok.Span.Start, End: placeholder.Span().End}}, errs...)
	}
	return recovered[Expr](&Unary{
		Op: op, Operand: operandRes.Value,
		span: lexer.Span{Start: tok.Span.Start, End: operandRes.Value.Span().End},
	}, operandRes.Errs...)
}

// ParseExpression parses one top-level expression from the parser's
// remaining input, without requiring it to consume the whole source
// (callers that want "exactly one expression, then EOF" should check
// p.atEnd() themselves — see Parse in parser.go).
func ParseExpression(p *Parser) Result[Expr] {
	return parseExpr(p, 0)
}
