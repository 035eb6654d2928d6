/*
File    : cas-go/parser/parser.go
*/
package parser

import "github.com/casforge/cas-go/lexer"

// Parse parses src as a single top-level expression (optionally an
// assignment) and returns the resulting tree along with any recoverable
// errors gathered along the way. It always returns a usable Expr: on a
// fatal failure right at the start (e.g. empty input, or input that
// starts with a token no production recognizes), it synthesizes an
// empty-symbol placeholder spanning the whole input, exactly as every
// other recovery path in this grammar does, and reports an "expected an
// expression" error instead. Every Unknown token in the input is
// additionally reported as a recoverable UnknownCharacter error.
//
// Trailing input after the first expression (anything other than EOF)
// is not itself an error: spec.md's grammar describes a single
// expression parse, and callers wanting strict "whole buffer must
// parse" behavior can check len(src) against the returned Expr's
// Span().End themselves.
func Parse(src string) (Expr, []Error) {
	p := NewParser(src)
	res := parseAssignOrExpr(p)
	var expr Expr
	var errs []Error
	if res.Ok {
		expr, errs = res.Value, res.Errs
	} else {
		placeholder := &SymbolLiteral{Name: "", span: lexer.Span{Start: 0, End: len(src)}}
		expr, errs = placeholder, []Error{NewError(unparsableInput{}, placeholder.span)}
	}
	for _, tok := range p.tokens {
		if tok.Kind == lexer.Unknown {
			errs = append(errs, NewError(UnknownCharacter{Ch: tok.Lexeme[0]}, tok.Span))
		}
	}
	return expr, errs
}

// unparsableInput is reported when the very first token of the input
// cannot begin any expression production at all (e.g. a stray `)` or
// `,` with nothing before it).
type unparsableInput struct{}

func (unparsableInput) Message() string { return "expected an expression" }
