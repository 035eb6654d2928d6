/*
File    : cas-go/parser/parser_conditionals.go
*/
package parser

import "github.com/casforge/cas-go/lexer"

// parseIf parses `if COND BLOCK` optionally followed by `else BLOCK` or
// `else if ...` (an else-if chain, represented by nesting another If
// under Else).
func parseIf(p *Parser) Result[Expr] {
	ifTok, isIf := p.match(lexer.KwIf)
	if !isIf {
		return fatal[Expr]()
	}

	condRes := TryParse(p, func(p *Parser) Result[Expr] { return parseExpr(p, 0) })
	if !condRes.Ok {
		return fatal[Expr]()
	}
	errs := append([]Error{}, condRes.Errs...)

	thenRes := TryParse(p, parseBlock)
	if !thenRes.Ok {
		return fatal[Expr]()
	}
	errs = append(errs, thenRes.Errs...)

	node := &If{
		Cond: condRes.Value,
		Then: thenRes.Value,
		span: lexer.Span{Start: ifTok.Span.Start, End: thenRes.Value.Span().End},
	}

	if _, hasElse := p.match(lexer.KwElse); hasElse {
		var elseRes Result[Expr]
		if p.at(lexer.KwIf) {
			elseRes = parseIf(p)
		} else {
			blockRes := TryParse(p, parseBlock)
			elseRes = Result[Expr]{Value: blockRes.Value, Errs: blockRes.Errs, Ok: blockRes.Ok}
		}
		if elseRes.Ok {
			errs = append(errs, elseRes.Errs...)
			node.Else = elseRes.Value
			node.span.End = elseRes.Value.Span().End
		}
	}

	return recovered[Expr](node, errs...)
}
