/*
File    : cas-go/parser/parser_loops.go
*/
package parser

import "github.com/casforge/cas-go/lexer"

// parseLoop parses a `loop { ... }` expression. Grounded on
// cas-parser's loop_expr.rs Loop::std_parse. Unlike the original, the
// body here is always required to be a Block (parseLoop parses it with
// parseBlock), but Loop.Body is typed as a general Expr to match the
// original's shape.
func parseLoop(p *Parser) Result[Expr] {
	loopTok, isLoop := p.match(lexer.KwLoop)
	if !isLoop {
		return fatal[Expr]()
	}
	bodyRes := TryParse(p, parseBlock)
	if !bodyRes.Ok {
		return fatal[Expr]()
	}
	return recovered[Expr](&Loop{
		Body:     bodyRes.Value,
		LoopSpan: loopTok.Span,
		span:     lexer.Span{Start: loopTok.Span.Start, End: bodyRes.Value.Span().End},
	}, bodyRes.Errs...)
}

// parseBreak parses a `break` expression, optionally followed by a
// value. The value is attempted but never required: `break` alone is
// valid, so a failed attempt to parse a following expression is not an
// error, just evidence there was no value (grounded on loop_expr.rs
// Break::std_parse).
func parseBreak(p *Parser) Result[Expr] {
	breakTok, isBreak := p.match(lexer.KwBreak)
	if !isBreak {
		return fatal[Expr]()
	}
	valueRes := TryParse(p, func(p *Parser) Result[Expr] { return parseExpr(p, 0) })
	brk := &Break{BreakSpan: breakTok.Span, span: breakTok.Span}
	if valueRes.Ok {
		brk.Value = valueRes.Value
		brk.span = lexer.Span{Start: breakTok.Span.Start, End: valueRes.Value.Span().End}
		return recovered[Expr](brk, valueRes.Errs...)
	}
	return ok[Expr](brk)
}

// parseContinue parses a `continue` expression.
func parseContinue(p *Parser) Result[Expr] {
	tok, isContinue := p.match(lexer.KwContinue)
	if !isContinue {
		return fatal[Expr]()
	}
	return ok[Expr](&Continue{span: tok.Span})
}
