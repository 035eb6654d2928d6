/*
File    : cas-go/parser/parser_assignments.go
*/
package parser

import "github.com/casforge/cas-go/lexer"

// parseParam parses one function-header parameter: a bare symbol, or a
// symbol with a default value (`y = 1`). Grounded on cas-parser's
// assign.rs Param::std_parse.
func parseParam(p *Parser) Result[Param] {
	nameTok, isIdent := p.match(lexer.Ident)
	if !isIdent {
		return fatal[Param]()
	}
	name := Symbol{Name: nameTok.Lexeme, span: nameTok.Span}

	if _, hasDefault := p.match(lexer.Assign); hasDefault {
		defRes := TryParse(p, func(p *Parser) Result[Expr] { return parseExpr(p, 0) })
		if !defRes.Ok {
			return recovered[Param](Param{Name: name}, NewError(MissingArgument{}, p.current().Span))
		}
		return recovered[Param](Param{Name: name, Default: defRes.Value}, defRes.Errs...)
	}
	return ok[Param](Param{Name: name})
}

// parseFuncHeader parses a function header `name(param, param, ...)`.
// Grounded on cas-parser's assign.rs FuncHeader::std_parse.
func parseFuncHeader(p *Parser) Result[*FuncHeader] {
	nameTok, isIdent := p.match(lexer.Ident)
	if !isIdent {
		return fatal[*FuncHeader]()
	}
	name := Symbol{Name: nameTok.Lexeme, span: nameTok.Span}

	if _, isOpen := p.match(lexer.LParen); !isOpen {
		return fatal[*FuncHeader]()
	}

	paramsRes := TryParseDelimited(p, parseParam, func(p *Parser) bool {
		_, matched := p.match(lexer.Comma)
		return matched
	})

	closeTok, closed := p.match(lexer.RParen)
	if !closed {
		return fatal[*FuncHeader]()
	}

	header := &FuncHeader{
		Name:   name,
		Params: paramsRes.Value,
		span:   lexer.Span{Start: name.Span().Start, End: closeTok.Span.End},
	}
	return recovered[*FuncHeader](header, paramsRes.Errs...)
}

// assignTargetFromExpr converts an already-parsed general expression
// into an AssignTarget, for every assignment whose left side did not
// parse as a function header: a plain symbol (`x = 1`) becomes a Symbol
// target with no error, and anything else (e.g. `(x) = 1`, `1 + 2 = 3`)
// is an error. Grounded on cas-parser's assign.rs
// AssignTarget::try_from_with_op: a Call recovers as its own name (since
// a caller almost always meant to declare that function), anything else
// recovers as an empty symbol.
func assignTargetFromExpr(expr Expr, opSpan lexer.Span) (AssignTarget, []Error) {
	switch e := expr.(type) {
	case *SymbolLiteral:
		sym := Symbol{Name: e.Name, span: e.span}
		return AssignTarget{Symbol: &sym}, nil
	case *Call:
		sym := e.Name
		return AssignTarget{Symbol: &sym}, []Error{NewError(InvalidAssignmentLhs{IsCall: true}, e.span, opSpan)}
	default:
		sym := Symbol{Name: "", span: expr.Span()}
		return AssignTarget{Symbol: &sym}, []Error{NewError(InvalidAssignmentLhs{IsCall: false}, expr.Span(), opSpan)}
	}
}

// parseAssignOrExpr parses a top-level expression, recognizing an
// assignment when a `=` follows a valid target.
//
// A function header (`name(param, ...)`, optionally with defaults) is
// tried first, since it shares a token prefix with an ordinary call and
// only parseParam's Ident-only requirement tells the two apart. If the
// header parses but no `=` follows, the tokens were just a call after
// all, so the cursor is rolled back and the input is re-parsed as a
// general expression. Otherwise a bare-symbol target is recognized the
// same way the original grammar does it: parse a general expression,
// then convert it to a target via assignTargetFromExpr once `=` shows
// up, recovering an InvalidAssignmentLhs error for anything that isn't
// a plain symbol or call.
func parseAssignOrExpr(p *Parser) Result[Expr] {
	snap := p.snapshot()
	if headerRes := TryParse(p, parseFuncHeader); headerRes.Ok {
		if opTok, isAssign := p.match(lexer.Assign); isAssign {
			registerFuncArity(p, headerRes.Value)
			errs := append([]Error{}, headerRes.Errs...)
			target := AssignTarget{Func: headerRes.Value}

			valueRes := TryParse(p, func(p *Parser) Result[Expr] { return parseExpr(p, 0) })
			if !valueRes.Ok {
				placeholder := &SymbolLiteral{Name: "", span: lexer.Span{Start: opTok.Span.End, End: opTok.Span.End}}
				errs = append(errs, NewError(MissingArgument{}, opTok.Span))
				assign := &Assign{Target: target, Value: placeholder, span: lexer.Span{Start: target.Span().Start, End: placeholder.span.End}}
				return recovered[Expr](assign, errs...)
			}
			errs = append(errs, valueRes.Errs...)
			assign := &Assign{
				Target: target,
				Value:  valueRes.Value,
				span:   lexer.Span{Start: target.Span().Start, End: valueRes.Value.Span().End},
			}
			return recovered[Expr](assign, errs...)
		}
		p.restore(snap)
	}

	exprRes := parseExpr(p, 0)
	if !exprRes.Ok {
		return exprRes
	}

	opTok, isAssign := p.match(lexer.Assign)
	if !isAssign {
		return exprRes
	}

	target, targetErrs := assignTargetFromExpr(exprRes.Value, opTok.Span)
	errs := append(append([]Error{}, exprRes.Errs...), targetErrs...)

	valueRes := TryParse(p, func(p *Parser) Result[Expr] { return parseExpr(p, 0) })
	if !valueRes.Ok {
		placeholder := &SymbolLiteral{Name: "", span: lexer.Span{Start: opTok.Span.End, End: opTok.Span.End}}
		errs = append(errs, NewError(MissingArgument{}, opTok.Span))
		assign := &Assign{Target: target, Value: placeholder, span: lexer.Span{Start: target.Span().Start, End: placeholder.span.End}}
		return recovered[Expr](assign, errs...)
	}
	errs = append(errs, valueRes.Errs...)

	assign := &Assign{
		Target: target,
		Value:  valueRes.Value,
		span:   lexer.Span{Start: target.Span().Start, End: valueRes.Value.Span().End},
	}
	return recovered[Expr](assign, errs...)
}

// registerFuncArity records header's argument-count range so that later
// calls to header.Name can be arity-checked. min is the count of leading
// parameters with no default (a default parameter can never be followed
// by a non-default one in well-formed input, so min is simply the
// number of parameters up to the first Default).
func registerFuncArity(p *Parser, header *FuncHeader) {
	min := 0
	for _, param := range header.Params {
		if param.Default != nil {
			break
		}
		min++
	}
	p.funcArities[header.Name.Name] = arity{min: min, max: len(header.Params)}
}
