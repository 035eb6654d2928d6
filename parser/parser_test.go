/*
File    : cas-go/parser/parser_test.go
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_NumberAndSymbol(t *testing.T) {
	expr, errs := Parse("42")
	require.Empty(t, errs)
	num, isNum := expr.(*NumberLiteral)
	require.True(t, isNum)
	assert.Equal(t, "42", num.Value.String())

	expr, errs = Parse("x")
	require.Empty(t, errs)
	sym, isSym := expr.(*SymbolLiteral)
	require.True(t, isSym)
	assert.Equal(t, "x", sym.Name)
}

func TestParse_BinaryPrecedence(t *testing.T) {
	// 1 + 2 * 3 should group as 1 + (2 * 3)
	expr, errs := Parse("1 + 2 * 3")
	require.Empty(t, errs)
	add, isAdd := expr.(*Binary)
	require.True(t, isAdd)
	assert.Equal(t, OpAdd, add.Op)
	mul, isMul := add.Right.(*Binary)
	require.True(t, isMul)
	assert.Equal(t, OpMul, mul.Op)
}

func TestParse_ExponentRightAssociative(t *testing.T) {
	// 2 ^ 3 ^ 2 should group as 2 ^ (3 ^ 2)
	expr, errs := Parse("2 ^ 3 ^ 2")
	require.Empty(t, errs)
	outer, isPow := expr.(*Binary)
	require.True(t, isPow)
	assert.Equal(t, OpPow, outer.Op)
	inner, isPow := outer.Right.(*Binary)
	require.True(t, isPow)
	assert.Equal(t, OpPow, inner.Op)
}

func TestParse_UnaryBindsTighterThanPower(t *testing.T) {
	// spec.md: unary prefix binds tighter than any binary operator, so
	// -x^2 parses as (-x)^2, not -(x^2).
	expr, errs := Parse("-x^2")
	require.Empty(t, errs)
	pow, isPow := expr.(*Binary)
	require.True(t, isPow)
	assert.Equal(t, OpPow, pow.Op)
	_, leftIsUnary := pow.Left.(*Unary)
	assert.True(t, leftIsUnary)
}

func TestParse_ImplicitMultiplication(t *testing.T) {
	expr, errs := Parse("3x")
	require.Empty(t, errs)
	mul, isMul := expr.(*Binary)
	require.True(t, isMul)
	assert.Equal(t, OpMul, mul.Op)
	_, leftIsNum := mul.Left.(*NumberLiteral)
	assert.True(t, leftIsNum)
	_, rightIsSym := mul.Right.(*SymbolLiteral)
	assert.True(t, rightIsSym)
}

func TestParse_Call(t *testing.T) {
	expr, errs := Parse("f(1, x)")
	require.Empty(t, errs)
	call, isCall := expr.(*Call)
	require.True(t, isCall)
	assert.Equal(t, "f", call.Name.Name)
	require.Len(t, call.Args, 2)
}

func TestParse_SymbolAssign(t *testing.T) {
	expr, errs := Parse("x = 1")
	require.Empty(t, errs)
	assign, isAssign := expr.(*Assign)
	require.True(t, isAssign)
	require.NotNil(t, assign.Target.Symbol)
	assert.Equal(t, "x", assign.Target.Symbol.Name)
}

func TestParse_FuncAssignWithDefault(t *testing.T) {
	expr, errs := Parse("f(x, y = 1) = x^y")
	require.Empty(t, errs)
	assign, isAssign := expr.(*Assign)
	require.True(t, isAssign)
	require.NotNil(t, assign.Target.Func)
	assert.Equal(t, "f", assign.Target.Func.Name.Name)
	require.Len(t, assign.Target.Func.Params, 2)
	assert.Nil(t, assign.Target.Func.Params[0].Default)
	require.NotNil(t, assign.Target.Func.Params[1].Default)
	assert.True(t, assign.IsRecursive() == false)
}

func TestParse_RecursiveFuncAssign(t *testing.T) {
	expr, _ := Parse("f(x) = f(x-1)")
	assign := expr.(*Assign)
	assert.True(t, assign.IsRecursive())
}

func TestParse_CallNotMistakenForAssign(t *testing.T) {
	expr, errs := Parse("f(1)")
	require.Empty(t, errs)
	_, isCall := expr.(*Call)
	assert.True(t, isCall)
}

func TestParse_InvalidAssignmentLhsFromCall(t *testing.T) {
	expr, errs := Parse("f(1) = 2")
	require.Len(t, errs, 1)
	_, isMismatch := errs[0].Kind.(InvalidAssignmentLhs)
	assert.True(t, isMismatch)
	assign := expr.(*Assign)
	require.NotNil(t, assign.Target.Symbol)
	assert.Equal(t, "f", assign.Target.Symbol.Name)
}

func TestParse_EmptyParenRecovers(t *testing.T) {
	expr, errs := Parse("()")
	require.Len(t, errs, 1)
	_, isEmpty := errs[0].Kind.(EmptyParenthesis)
	assert.True(t, isEmpty)
	paren, isParen := expr.(*Paren)
	require.True(t, isParen)
	sym, isSym := paren.Inner.(*SymbolLiteral)
	require.True(t, isSym)
	assert.Equal(t, "", sym.Name)
}

func TestParse_UnclosedParenRecovers(t *testing.T) {
	expr, errs := Parse("(1 + 2")
	require.Len(t, errs, 1)
	_, isUnclosed := errs[0].Kind.(UnclosedParenthesis)
	assert.True(t, isUnclosed)
	paren, isParen := expr.(*Paren)
	require.True(t, isParen)
	assert.NotNil(t, paren.Inner)
}

func TestParse_SpanContainsChildren(t *testing.T) {
	expr, errs := Parse("(1 + 2) * 3")
	require.Empty(t, errs)
	mul := expr.(*Binary)
	assert.True(t, mul.Span().Contains(mul.Left.Span()))
	assert.True(t, mul.Span().Contains(mul.Right.Span()))
}

func TestParse_IfElse(t *testing.T) {
	expr, errs := Parse("if a < b { a } else { b }")
	require.Empty(t, errs)
	ifExpr, isIf := expr.(*If)
	require.True(t, isIf)
	require.NotNil(t, ifExpr.Then)
	require.NotNil(t, ifExpr.Else)
}

func TestParse_LoopBreakContinue(t *testing.T) {
	expr, errs := Parse("loop { break 1 }")
	require.Empty(t, errs)
	loop, isLoop := expr.(*Loop)
	require.True(t, isLoop)
	block, isBlock := loop.Body.(*Block)
	require.True(t, isBlock)
	require.Len(t, block.Exprs, 1)
	brk, isBreak := block.Exprs[0].(*Break)
	require.True(t, isBreak)
	require.NotNil(t, brk.Value)
}

func TestParse_CallArity(t *testing.T) {
	_, errs := Parse("f(x) = x")
	require.Empty(t, errs)

	// A second, unrelated parse doesn't see the first's funcArities
	// (each Parse call starts fresh).
	expr, errs := Parse("f(1, 2, 3)")
	require.Empty(t, errs)
	_, isCall := expr.(*Call)
	assert.True(t, isCall)
}
