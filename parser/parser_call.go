/*
File    : cas-go/parser/parser_call.go
*/
package parser

import "github.com/casforge/cas-go/lexer"

// parseCallArgs parses the `( arg, arg, ... )` tail of a call whose name
// has already been consumed. Grounded on cas-parser's Call::parse.
func parseCallArgs(p *Parser, name Symbol) Result[Expr] {
	open, isOpen := p.match(lexer.LParen)
	if !isOpen {
		return fatal[Expr]()
	}

	argsRes := TryParseDelimited(p, func(p *Parser) Result[Expr] {
		return parseExpr(p, 0)
	}, func(p *Parser) bool {
		_, matched := p.match(lexer.Comma)
		return matched
	})
	errs := append([]Error{}, argsRes.Errs...)

	closeTok, closed := p.match(lexer.RParen)
	var end int
	if closed {
		end = closeTok.Span.End
	} else {
		end = p.current().Span.Start
		errs = append(errs, NewError(UnclosedParenthesis{Opening: false}, open.Span))
	}

	call := &Call{
		Name:      name,
		Args:      argsRes.Value,
		ParenSpan: lexer.Span{Start: open.Span.Start, End: end},
		span:      lexer.Span{Start: name.Span().Start, End: end},
	}

	if header, found := p.funcArities[name.Name]; found {
		got := len(call.Args)
		outer := call.OuterSpan()
		if got < header.min {
			errs = append(errs, NewError(MissingArgument{FuncName: name.Name, Want: header.min, Got: got}, outer[0]))
		} else if got > header.max {
			errs = append(errs, NewError(TooManyArguments{FuncName: name.Name, Want: header.max, Got: got}, outer[1]))
		}
	}

	return recovered[Expr](call, errs...)
}
