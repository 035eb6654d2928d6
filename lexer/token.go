/*
File    : cas-go/lexer/token.go
*/

// Package lexer performs lexical analysis of cas-go source text, turning
// a source string into a stream of tagged lexemes. Every token carries a
// byte span over the source so that the parser and its callers can report
// precise, pretty-printable diagnostics.
package lexer

import "fmt"

// TokenKind identifies the syntactic category of a Token. It is a closed
// enumeration: every token produced by the lexer has exactly one of these
// kinds.
type TokenKind string

const (
	// EOF marks the end of the input stream.
	EOF TokenKind = "EOF"
	// Unknown is produced for a byte that cannot start any valid token.
	// The parser surfaces these as recoverable UnknownCharacter errors.
	Unknown TokenKind = "Unknown"

	// Int is an integer literal: 42, 0, 1000000000000000000000.
	Int TokenKind = "Int"
	// Float is a decimal literal with at least one digit after the dot:
	// 3.14, 0.5.
	Float TokenKind = "Float"
	// Ident is a maximal run of identifier characters that is not a keyword.
	Ident TokenKind = "Ident"

	// Arithmetic operators.
	Plus  TokenKind = "+"
	Minus TokenKind = "-"
	Star  TokenKind = "*"
	Slash TokenKind = "/"
	Caret TokenKind = "^" // exponentiation, not bitwise xor

	// Comparison operators, the loosest-binding infix operators.
	Eq TokenKind = "=="
	Ne TokenKind = "!="
	Lt TokenKind = "<"
	Le TokenKind = "<="
	Gt TokenKind = ">"
	Ge TokenKind = ">="

	// Assign is '=', used by assignment expressions (x = 1, f(x) = x^2).
	Assign TokenKind = "="

	// Structural tokens.
	LParen TokenKind = "("
	RParen TokenKind = ")"
	LBrace TokenKind = "{"
	RBrace TokenKind = "}"
	Comma  TokenKind = ","

	// Keywords.
	KwIf       TokenKind = "if"
	KwElse     TokenKind = "else"
	KwLoop     TokenKind = "loop"
	KwBreak    TokenKind = "break"
	KwContinue TokenKind = "continue"
)

// keywords maps reserved identifier spellings to their keyword TokenKind.
// Anything not found here that looks like an identifier lexes as Ident.
var keywords = map[string]TokenKind{
	"if":       KwIf,
	"else":     KwElse,
	"loop":     KwLoop,
	"break":    KwBreak,
	"continue": KwContinue,
}

// lookupIdent classifies an identifier-shaped lexeme as a keyword or a
// plain identifier.
func lookupIdent(ident string) TokenKind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return Ident
}

// Span is a half-open byte range [Start, End) into the source text.
type Span struct {
	Start int
	End   int
}

// Join returns the smallest span that contains both s and other.
func (s Span) Join(other Span) Span {
	start, end := s.Start, s.End
	if other.Start < start {
		start = other.Start
	}
	if other.End > end {
		end = other.End
	}
	return Span{Start: start, End: end}
}

// Contains reports whether s fully contains other, as required of every
// parent/child span pair in the AST.
func (s Span) Contains(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

// Token is a single lexical token: its kind, the exact source text it was
// scanned from, and its byte span.
type Token struct {
	Kind    TokenKind
	Lexeme  string
	Span    Span
	Line    int // 1-indexed, for human-facing diagnostics
	Column  int // 1-indexed, for human-facing diagnostics
}

// String renders the token as "lexeme:kind", for debugging.
func (t Token) String() string {
	return fmt.Sprintf("%s:%s", t.Lexeme, t.Kind)
}
