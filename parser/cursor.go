/*
File    : cas-go/parser/cursor.go
*/
package parser

import "github.com/casforge/cas-go/lexer"

// Parser wraps a cursor over a pre-scanned token stream. Tokenizing the
// whole source up front (rather than pulling tokens lazily, as the
// teacher interpreter's two-token lookahead did) makes backtracking a
// plain integer save/restore instead of a lexer-state snapshot, which is
// what try_parse's "restore the cursor" contract needs.
type Parser struct {
	Src    string
	tokens []lexer.Token
	pos    int

	// funcArities records, for every function assignment seen so far,
	// the minimum and maximum argument count its header accepts (min
	// counts parameters with no default; max counts all parameters).
	// Populated by registerFuncArity when parseAssignOrExpr parses a
	// function-header assignment; consulted by
	// parseCallArgs to arity-check later calls against them.
	funcArities map[string]arity
}

// arity is the argument-count range a previously-declared function
// header accepts.
type arity struct {
	min, max int
}

// NewParser tokenizes src and returns a parser positioned before the
// first token.
func NewParser(src string) *Parser {
	lex := lexer.NewLexer(src)
	tokens := lex.Tokens()
	// Always end with an EOF token so current()/peek() never run off the
	// end of the slice.
	eofPos := len(src)
	tokens = append(tokens, lexer.Token{Kind: lexer.EOF, Span: lexer.Span{Start: eofPos, End: eofPos}})
	return &Parser{Src: src, tokens: tokens, funcArities: make(map[string]arity)}
}

// snapshot captures the cursor position for later restoration.
type snapshot int

func (p *Parser) snapshot() snapshot {
	return snapshot(p.pos)
}

func (p *Parser) restore(s snapshot) {
	p.pos = int(s)
}

// current returns the token under the cursor without consuming it.
func (p *Parser) current() lexer.Token {
	return p.tokens[p.pos]
}

// peek returns the token n positions ahead of the cursor (peek(0) ==
// current()).
func (p *Parser) peek(n int) lexer.Token {
	idx := p.pos + n
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[idx]
}

// advance consumes and returns the current token.
func (p *Parser) advance() lexer.Token {
	tok := p.current()
	if tok.Kind != lexer.EOF {
		p.pos++
	}
	return tok
}

// at reports whether the current token has the given kind.
func (p *Parser) at(kind lexer.TokenKind) bool {
	return p.current().Kind == kind
}

// match consumes and returns the current token if it has the given kind.
func (p *Parser) match(kind lexer.TokenKind) (lexer.Token, bool) {
	if p.at(kind) {
		return p.advance(), true
	}
	return lexer.Token{}, false
}

// atEnd reports whether the cursor has reached the end of the token
// stream (the implicit EOF token).
func (p *Parser) atEnd() bool {
	return p.at(lexer.EOF)
}
