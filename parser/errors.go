/*
File    : cas-go/parser/errors.go
*/
package parser

import (
	"fmt"
	"strings"

	"github.com/casforge/cas-go/lexer"
)

// ErrorKind is the closed set of diagnostic kinds the parser can report.
// Every kind carries whatever fields it needs to render a useful message;
// every Error additionally carries the span(s) the kind applies to.
type ErrorKind interface {
	// Message renders a short, human-readable description of the error,
	// not including any source-text context.
	Message() string
}

// UnclosedParenthesis is reported when a '(' is never matched by a ')',
// or a block's '{' by a '}'. The parenthesized-expression and block
// paths set Opening to true; the call-argument path sets it to false.
// It is kept as a field (rather than a no-payload marker) because it is
// part of the closed external contract described by the spec.
type UnclosedParenthesis struct {
	Opening bool
}

func (e UnclosedParenthesis) Message() string {
	return "unclosed parenthesis"
}

// EmptyParenthesis is reported for a `()` with nothing inside.
type EmptyParenthesis struct{}

func (e EmptyParenthesis) Message() string { return "empty parenthesized expression" }

// InvalidAssignmentLhs is reported when the left side of `=` is neither a
// bare symbol nor a function header (the only two valid assignment
// targets). IsCall is set when it is a call whose arguments are not all
// valid parameters, e.g. `f(1) = 2`.
type InvalidAssignmentLhs struct {
	IsCall bool
}

func (e InvalidAssignmentLhs) Message() string {
	if e.IsCall {
		return "invalid assignment target: a function assignment's parameters must all be bare symbols"
	}
	return "invalid assignment target: expected a symbol or a function header"
}

// MissingArgument is reported either for a trailing separator with
// nothing following it (FuncName empty), or when a call supplies fewer
// arguments than a previously-declared function header requires.
type MissingArgument struct {
	FuncName string
	Want     int
	Got      int
}

func (e MissingArgument) Message() string {
	if e.FuncName == "" {
		return "expected an argument"
	}
	return fmt.Sprintf("%s expects at least %d argument(s), got %d", e.FuncName, e.Want, e.Got)
}

// TooManyArguments is reported when a call supplies more arguments than a
// previously-declared function header accepts.
type TooManyArguments struct {
	FuncName string
	Want     int
	Got      int
}

func (e TooManyArguments) Message() string {
	return fmt.Sprintf("%s expects at most %d argument(s), got %d", e.FuncName, e.Want, e.Got)
}

// TypeMismatch is part of the shared Error contract but is never
// constructed by this parser: the grammar has only two primitive literal
// shapes (number, symbol), between which no syntax-level mismatch can
// occur. It exists so that an external evaluator (out of scope here, per
// spec.md §1) can surface its own type errors through the same Error
// type this package defines.
type TypeMismatch struct {
	Expected string
	Got      string
}

func (e TypeMismatch) Message() string {
	return fmt.Sprintf("type mismatch: expected %s, got %s", e.Expected, e.Got)
}

// UnknownCharacter is reported for a byte the tokenizer cannot classify.
type UnknownCharacter struct {
	Ch byte
}

func (e UnknownCharacter) Message() string {
	return fmt.Sprintf("unknown character %q", e.Ch)
}

// MalformedNumber is reported for a numeric lexeme that cannot be parsed
// by the numeric kernel (e.g. overflowed exponent syntax, if this grammar
// grows one).
type MalformedNumber struct {
	Lexeme string
}

func (e MalformedNumber) Message() string {
	return fmt.Sprintf("malformed number literal %q", e.Lexeme)
}

// Error is a single structured parse diagnostic. It always carries at
// least one span and exactly one kind.
type Error struct {
	Spans []lexer.Span
	Kind  ErrorKind
}

// NewError builds an Error from one or more spans and a kind.
func NewError(kind ErrorKind, spans ...lexer.Span) Error {
	return Error{Spans: spans, Kind: kind}
}

func (e Error) Error() string {
	return e.Kind.Message()
}

// Pretty renders the error against the original source text, underlining
// the first span with a caret line. It is meant for CLI / REPL use; the
// core parser never formats diagnostics itself.
func (e Error) Pretty(src string) string {
	if len(e.Spans) == 0 {
		return e.Kind.Message()
	}
	span := e.Spans[0]
	line, col, lineText := lineAndColumn(src, span.Start)

	width := span.End - span.Start
	if width < 1 {
		width = 1
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d:%d: %s\n", line, col, e.Kind.Message())
	b.WriteString(lineText)
	b.WriteByte('\n')
	for i := 1; i < col; i++ {
		b.WriteByte(' ')
	}
	for i := 0; i < width; i++ {
		b.WriteByte('^')
	}
	return b.String()
}

// lineAndColumn finds the 1-indexed line and column of byte offset pos in
// src, along with the full text of that line (without its trailing
// newline).
func lineAndColumn(src string, pos int) (line, col int, lineText string) {
	line = 1
	lineStart := 0
	for i := 0; i < pos && i < len(src); i++ {
		if src[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	lineEnd := len(src)
	if idx := strings.IndexByte(src[lineStart:], '\n'); idx >= 0 {
		lineEnd = lineStart + idx
	}
	col = pos - lineStart + 1
	return line, col, src[lineStart:lineEnd]
}
