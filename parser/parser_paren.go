/*
File    : cas-go/parser/parser_paren.go
*/
package parser

import "github.com/casforge/cas-go/lexer"

// parseParen parses a parenthesized expression `( EXPR )`.
//
// Two recovery paths, both grounded on cas-parser's Paren::std_parse:
//   - `()`, i.e. a `(` whose inner expression fails to parse and which is
//     immediately followed by `)`: reported as EmptyParenthesis, and
//     recovered with a synthesized zero-width empty-symbol inner
//     expression placed just after the `(`, so later stages (the
//     algebraic conversion) see a structurally normal Paren.
//   - a `(` whose inner expression never reaches a closing `)`: reported
//     as UnclosedParenthesis{Opening: true}, recovered by treating the
//     input consumed so far as the whole parenthesized expression (the
//     synthesized closing span collapses to the point right after the
//     inner expression, so Paren's span still satisfies the
//     contains-its-child invariant).
func parseParen(p *Parser) Result[Expr] {
	open, isOpen := p.match(lexer.LParen)
	if !isOpen {
		return fatal[Expr]()
	}

	innerRes := TryParse(p, func(p *Parser) Result[Expr] { return parseExpr(p, 0) })
	if !innerRes.Ok {
		if closeTok, closed := p.match(lexer.RParen); closed {
			span := lexer.Span{Start: open.Span.Start, End: closeTok.Span.End}
			fake := &SymbolLiteral{Name: "", span: lexer.Span{Start: open.Span.End, End: open.Span.End}}
			return recovered[Expr](&Paren{Inner: fake, span: span}, NewError(EmptyParenthesis{}, span))
		}
		// Nothing usable at all between '(' and wherever we are now: this
		// whole paren production fails fatally, exactly like the Rust
		// original's `Err(errs)` branch.
		return fatal[Expr]()
	}

	errs := append([]Error{}, innerRes.Errs...)
	closeTok, closed := p.match(lexer.RParen)
	var end int
	if closed {
		end = closeTok.Span.End
	} else {
		end = innerRes.Value.Span().End
		errs = append(errs, NewError(UnclosedParenthesis{Opening: true}, open.Span))
	}

	return recovered[Expr](&Paren{
		Inner: innerRes.Value,
		span:  lexer.Span{Start: open.Span.Start, End: end},
	}, errs...)
}
