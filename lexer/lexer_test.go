/*
File    : cas-go/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// kindsOf strips positions off a token slice, leaving just the sequence
// of kinds+lexemes for easy comparison.
func kindsOf(toks []Token) []Token {
	out := make([]Token, len(toks))
	for i, tok := range toks {
		out[i] = Token{Kind: tok.Kind, Lexeme: tok.Lexeme}
	}
	return out
}

func TestLexer_Tokens(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "arithmetic",
			input: "123 + 2   31 - 12",
			expected: []Token{
				{Kind: Int, Lexeme: "123"},
				{Kind: Plus, Lexeme: "+"},
				{Kind: Int, Lexeme: "2"},
				{Kind: Int, Lexeme: "31"},
				{Kind: Minus, Lexeme: "-"},
				{Kind: Int, Lexeme: "12"},
			},
		},
		{
			name:  "identifiers and braces",
			input: "{ } + x - a12",
			expected: []Token{
				{Kind: LBrace, Lexeme: "{"},
				{Kind: RBrace, Lexeme: "}"},
				{Kind: Plus, Lexeme: "+"},
				{Kind: Ident, Lexeme: "x"},
				{Kind: Minus, Lexeme: "-"},
				{Kind: Ident, Lexeme: "a12"},
			},
		},
		{
			name:  "keywords",
			input: "loop { break } continue",
			expected: []Token{
				{Kind: KwLoop, Lexeme: "loop"},
				{Kind: LBrace, Lexeme: "{"},
				{Kind: KwBreak, Lexeme: "break"},
				{Kind: RBrace, Lexeme: "}"},
				{Kind: KwContinue, Lexeme: "continue"},
			},
		},
		{
			name:  "floats and exponent",
			input: "3.14 ^ 2",
			expected: []Token{
				{Kind: Float, Lexeme: "3.14"},
				{Kind: Caret, Lexeme: "^"},
				{Kind: Int, Lexeme: "2"},
			},
		},
		{
			name:  "comparisons for if conditions",
			input: "a <= b == c != d >= e < f > g",
			expected: []Token{
				{Kind: Ident, Lexeme: "a"},
				{Kind: Le, Lexeme: "<="},
				{Kind: Ident, Lexeme: "b"},
				{Kind: Eq, Lexeme: "=="},
				{Kind: Ident, Lexeme: "c"},
				{Kind: Ne, Lexeme: "!="},
				{Kind: Ident, Lexeme: "d"},
				{Kind: Ge, Lexeme: ">="},
				{Kind: Ident, Lexeme: "e"},
				{Kind: Lt, Lexeme: "<"},
				{Kind: Ident, Lexeme: "f"},
				{Kind: Gt, Lexeme: ">"},
				{Kind: Ident, Lexeme: "g"},
			},
		},
		{
			name:  "unknown character recovers as Unknown",
			input: "3 @ 4",
			expected: []Token{
				{Kind: Int, Lexeme: "3"},
				{Kind: Unknown, Lexeme: "@"},
				{Kind: Int, Lexeme: "4"},
			},
		},
		{
			name:  "line comment is skipped",
			input: "1 + 2 // trailing comment\n+ 3",
			expected: []Token{
				{Kind: Int, Lexeme: "1"},
				{Kind: Plus, Lexeme: "+"},
				{Kind: Int, Lexeme: "2"},
				{Kind: Plus, Lexeme: "+"},
				{Kind: Int, Lexeme: "3"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lex := NewLexer(tt.input)
			assert.Equal(t, tt.expected, kindsOf(lex.Tokens()))
		})
	}
}

func TestLexer_Spans(t *testing.T) {
	lex := NewLexer("ab + 12")
	toks := lex.Tokens()
	assert.Equal(t, Span{Start: 0, End: 2}, toks[0].Span)
	assert.Equal(t, Span{Start: 3, End: 4}, toks[1].Span)
	assert.Equal(t, Span{Start: 5, End: 7}, toks[2].Span)
}

func TestLexer_EOF(t *testing.T) {
	lex := NewLexer("")
	tok := lex.NextToken()
	assert.Equal(t, EOF, tok.Kind)
}
