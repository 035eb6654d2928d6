/*
File    : cas-go/parser/parser_block.go
*/
package parser

import "github.com/casforge/cas-go/lexer"

// parseBlock parses a brace-delimited sequence of expressions, each
// separated by an optional comma or simply by the start of the next
// expression. The block's value is its last expression.
func parseBlock(p *Parser) Result[*Block] {
	open, isOpen := p.match(lexer.LBrace)
	if !isOpen {
		return fatal[*Block]()
	}

	var exprs []Expr
	var errs []Error

	for !p.at(lexer.RBrace) && !p.atEnd() {
		stmtRes := TryParse(p, parseAssignOrExpr)
		if !stmtRes.Ok {
			// Could not make progress: bail out of the block rather than
			// looping forever: the caller still gets whatever statements
			// were collected so far.
			break
		}
		exprs = append(exprs, stmtRes.Value)
		errs = append(errs, stmtRes.Errs...)
		p.match(lexer.Comma) // optional statement separator
	}

	closeTok, closed := p.match(lexer.RBrace)
	var end int
	if closed {
		end = closeTok.Span.End
	} else {
		end = p.current().Span.Start
		errs = append(errs, NewError(UnclosedParenthesis{Opening: true}, open.Span))
	}

	return recovered[*Block](&Block{Exprs: exprs, span: lexer.Span{Start: open.Span.Start, End: end}}, errs...)
}
