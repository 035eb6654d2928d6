/*
File    : cas-go/parser/parser_literals.go
*/
package parser

import (
	"github.com/casforge/cas-go/lexer"
	"github.com/casforge/cas-go/numeric"
)

// parseAtom parses the tightest-binding productions: number and symbol
// literals, parenthesized expressions, and calls. Every other production
// (unary, binary, implicit multiplication) is built on top of this one
// by parsePrefix / parseExpr.
func parseAtom(p *Parser) Result[Expr] {
	tok := p.current()
	switch tok.Kind {
	case lexer.Int, lexer.Float:
		return parseNumberLiteral(p)
	case lexer.Ident:
		return parseIdentOrCall(p)
	case lexer.LParen:
		return parseParen(p)
	case lexer.LBrace:
		blockRes := parseBlock(p)
		return Result[Expr]{Value: blockRes.Value, Errs: blockRes.Errs, Ok: blockRes.Ok}
	case lexer.KwIf:
		return parseIf(p)
	case lexer.KwLoop:
		return parseLoop(p)
	case lexer.KwBreak:
		return parseBreak(p)
	case lexer.KwContinue:
		return parseContinue(p)
	}
	return fatal[Expr]()
}

// parseNumberLiteral parses an integer or real literal. A lexeme the
// numeric kernel can't parse is reported as MalformedNumber and
// recovered as the number zero — this can only happen if the lexer's
// own digit-scanning and the numeric kernel's grammar for Rat.SetString
// disagree, which would be a bug in one of them rather than a condition
// a user triggers from valid input.
func parseNumberLiteral(p *Parser) Result[Expr] {
	tok := p.advance()
	val, parsed := numeric.Parse(tok.Lexeme)
	if !parsed {
		return recovered[Expr](
			&NumberLiteral{Lexeme: tok.Lexeme, Value: numeric.Zero, span: tok.Span},
			NewError(MalformedNumber{Lexeme: tok.Lexeme}, tok.Span),
		)
	}
	return ok[Expr](&NumberLiteral{Lexeme: tok.Lexeme, Value: val, span: tok.Span})
}

// parseIdentOrCall parses a bare identifier as either a SymbolLiteral or,
// when immediately followed by '(', a Call.
func parseIdentOrCall(p *Parser) Result[Expr] {
	tok := p.advance()
	if p.at(lexer.LParen) {
		return parseCallArgs(p, Symbol{Name: tok.Lexeme, span: tok.Span})
	}
	return ok[Expr](&SymbolLiteral{Name: tok.Lexeme, span: tok.Span})
}
