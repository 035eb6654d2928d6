/*
File    : cas-go/algebra/expr_test.go
*/
package algebra

import (
	"testing"

	"github.com/casforge/cas-go/numeric"
	"github.com/stretchr/testify/assert"
)

func num(n int64) Expr { return NumberPrimary(numeric.Int(n)) }
func sym(s string) Expr { return SymbolPrimary(s) }

func TestAdd_FlattensAndFolds(t *testing.T) {
	got := Add(num(1), Add(num(2), sym("x")), num(3))
	want := Add(sym("x"), num(6))
	assert.True(t, Equal(got, want))
}

func TestAdd_DropsZero(t *testing.T) {
	got := Add(num(0), sym("x"))
	assert.True(t, Equal(got, sym("x")))
}

func TestAdd_AllZeroCollapsesToZero(t *testing.T) {
	got := Add(num(0), num(0))
	assert.True(t, Equal(got, num(0)))
}

func TestMul_AnnihilatesOnZero(t *testing.T) {
	got := Mul(num(0), sym("x"), sym("y"))
	assert.True(t, Equal(got, num(0)))
}

func TestMul_DropsOne(t *testing.T) {
	got := Mul(num(1), sym("x"))
	assert.True(t, Equal(got, sym("x")))
}

func TestSubAndDivDesugar(t *testing.T) {
	sub := Sub(sym("a"), sym("b"))
	assert.Equal(t, TagAdd, sub.Tag)

	div := Div(sym("a"), sym("b"))
	assert.Equal(t, TagMul, div.Tag)
	assert.Equal(t, TagExp, div.Factors[1].Tag)
}

func TestEqual_IgnoresAddMulOrdering(t *testing.T) {
	a := Add(sym("x"), sym("y"), num(1))
	b := Add(num(1), sym("y"), sym("x"))
	assert.True(t, Equal(a, b))

	c := Mul(sym("x"), sym("y"))
	d := Mul(sym("y"), sym("x"))
	assert.True(t, Equal(c, d))
}

func TestEqual_DistinguishesDifferentShapes(t *testing.T) {
	assert.False(t, Equal(sym("x"), num(1)))
	assert.False(t, Equal(Add(sym("x"), sym("y")), Mul(sym("x"), sym("y"))))
}

func TestCallPrimary_ArgsCompared(t *testing.T) {
	a := CallPrimary("f", []Expr{sym("x")})
	b := CallPrimary("f", []Expr{sym("x")})
	c := CallPrimary("f", []Expr{sym("y")})
	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
}
