/*
File    : cas-go/simplify/simplify_test.go
*/
package simplify

import (
	"testing"

	"github.com/casforge/cas-go/algebra"
	"github.com/casforge/cas-go/numeric"
	"github.com/casforge/cas-go/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func num(n int64) algebra.Expr  { return algebra.NumberPrimary(numeric.Int(n)) }
func sym(s string) algebra.Expr { return algebra.SymbolPrimary(s) }

func parseAlg(t *testing.T, src string) algebra.Expr {
	t.Helper()
	ast, errs := parser.Parse(src)
	require.Empty(t, errs)
	return algebra.ToAlgebraic(ast)
}

func TestSimplify_AddAndMultiplyZero(t *testing.T) {
	got := Simplify(parseAlg(t, "0+0*(3x+5b^2i)+0+(3a)"))
	want := algebra.Mul(sym("a"), num(3))
	assert.True(t, algebra.Equal(got, want), "got %+v", got)
}

func TestSimplify_CombineLikeTerms(t *testing.T) {
	got := Simplify(parseAlg(t, "-9(6m-3) + 6(1+4m)"))
	want := algebra.Add(algebra.Mul(sym("m"), num(-30)), num(33))
	assert.True(t, algebra.Equal(got, want), "got %+v", got)
}

func TestSimplify_MultiplyZero(t *testing.T) {
	got := Simplify(parseAlg(t, "0*(3x+5b^2i)*1*(3a)"))
	assert.True(t, algebra.Equal(got, num(0)))
}

func TestSimplify_MultiplyIdentitiesAndAddZero(t *testing.T) {
	got := Simplify(parseAlg(t, "1*3*1*1*1*(1+(x^2+5x+6)*0)*1*1"))
	assert.True(t, algebra.Equal(got, num(3)))
}

func TestSimplify_CombineLikeFactors(t *testing.T) {
	got := Simplify(parseAlg(t, "a * b * a^3 * c^2 * d^2 * a^2 * b^4 * d^2"))
	want := algebra.Mul(
		algebra.Exp(sym("d"), num(4)),
		algebra.Exp(sym("b"), num(5)),
		algebra.Exp(sym("a"), num(6)),
		algebra.Exp(sym("c"), num(2)),
	)
	assert.True(t, algebra.Equal(got, want), "got %+v", got)
}

func TestSimplify_CombineLikeFactorsStrictEqual(t *testing.T) {
	got := Simplify(parseAlg(t, "(a + 1 + b) * (b + a) * (b + a + 1) * (a + b)"))
	want := algebra.Mul(
		algebra.Exp(algebra.Add(sym("a"), sym("b"), num(1)), num(2)),
		algebra.Exp(algebra.Add(sym("a"), sym("b")), num(2)),
	)
	assert.True(t, algebra.Equal(got, want), "got %+v", got)
}

func TestSimplify_SimpleCombineLikeFactorsToOne(t *testing.T) {
	got := Simplify(parseAlg(t, "(a+b)/(a+b)"))
	assert.True(t, algebra.Equal(got, num(1)))
}

func TestSimplify_Distribute(t *testing.T) {
	got, steps := SimplifyWithSteps(parseAlg(t, "1/x * (y+2x)"))
	want := algebra.Add(
		algebra.Mul(sym("y"), algebra.Exp(sym("x"), num(-1))),
		num(2),
	)
	assert.True(t, algebra.Equal(got, want), "got %+v", got)
	assert.Contains(t, steps, DistributiveProperty)
}

func TestSimplify_Distribute2(t *testing.T) {
	got, steps := SimplifyWithSteps(parseAlg(t, "x^2 * (1 + x + y/x^2)"))
	want := algebra.Add(
		algebra.Exp(sym("x"), num(2)),
		algebra.Exp(sym("x"), num(3)),
		sym("y"),
	)
	assert.True(t, algebra.Equal(got, want), "got %+v", got)
	assert.Contains(t, steps, DistributiveProperty)
}

func TestSimplify_PowerRules(t *testing.T) {
	got := Simplify(parseAlg(t, "(1^0)^(3x+5b^2i)^1^(3a)"))
	assert.True(t, algebra.Equal(got, num(1)))
}

func TestSimplify_PowerRules2(t *testing.T) {
	got := Simplify(parseAlg(t, "(0^1)^0"))
	assert.True(t, algebra.Equal(got, num(1)))
}

func TestSimplify_PowerRules3a(t *testing.T) {
	got := Simplify(parseAlg(t, "x^3 * x^-2"))
	assert.True(t, algebra.Equal(got, sym("x")))
}

func TestSimplify_PowerRules3b(t *testing.T) {
	got := Simplify(parseAlg(t, "x^3 / x^2"))
	assert.True(t, algebra.Equal(got, sym("x")))
}

func TestSimplify_PowerRuleSteps(t *testing.T) {
	// The tower of right-associative powers collapses through PowerPower
	// before the outer result is known, so it must appear in the trace.
	got, steps := SimplifyWithSteps(parseAlg(t, "(1^0)^(3x+5b^2i)^1^(3a)"))
	assert.True(t, algebra.Equal(got, num(1)))
	assert.Contains(t, steps, PowerPower)
}
