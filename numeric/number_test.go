/*
File    : cas-go/numeric/number_test.go
*/
package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	n, ok := Parse("42")
	require.True(t, ok)
	assert.Equal(t, "42", n.String())

	n, ok = Parse("3.14")
	require.True(t, ok)
	assert.Equal(t, "157/50", n.String())

	_, ok = Parse("not-a-number")
	assert.False(t, ok)
}

func TestArithmetic(t *testing.T) {
	a, _ := Parse("3")
	b, _ := Parse("4")
	assert.Equal(t, "7", a.Add(b).String())
	assert.Equal(t, "-1", a.Sub(b).String())
	assert.Equal(t, "12", a.Mul(b).String())

	q, ok := a.Quo(b)
	require.True(t, ok)
	assert.Equal(t, "3/4", q.String())

	_, ok = a.Quo(Zero)
	assert.False(t, ok)
}

func TestPredicates(t *testing.T) {
	assert.True(t, Zero.IsZero())
	assert.True(t, One.IsOne())
	assert.True(t, Int(-1).IsNegOne())
	assert.True(t, Int(5).IsInt())
	n, _ := Parse("1/2")
	assert.False(t, n.IsInt())
}

func TestAbsUint(t *testing.T) {
	assert.Equal(t, uint64(9), Int(-9).AbsUint())
	assert.Equal(t, uint64(0), Zero.AbsUint())
}

func TestCmpAndEqual(t *testing.T) {
	assert.True(t, Int(3).Equal(Int(3)))
	assert.Equal(t, -1, Int(2).Cmp(Int(3)))
	assert.Equal(t, 1, Int(3).Cmp(Int(2)))
}
