package context

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/db47h/bigfloat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	c := New(0, bigfloat.ToZero)
	assert.Equal(t, uint(DefaultPrec), c.Prec())
	assert.Equal(t, bigfloat.ToZero, c.Mode())
	assert.Equal(t, Overflow, c.Traps())
	assert.Equal(t, Condition(0), c.Flags())

	c.SetPrec(7).SetPrec(0)
	assert.Equal(t, uint(DefaultPrec), c.Prec())

	z := New(12, bigfloat.ToNearestEven).New()
	assert.Equal(t, uint(12), z.Prec())
	assert.True(t, z.IsZero())
}

func TestContextRound(t *testing.T) {
	c := New(4, bigfloat.ToNearestEven)
	x, acc := bigfloat.FromFloat(8, -5.75, bigfloat.ToZero)
	require.Equal(t, bigfloat.Exact, acc)

	z := c.Round(nil, x)
	require.NotNil(t, z)
	assert.Equal(t, uint(4), z.Prec())
	f, _ := z.BigFloat(nil).Float64()
	assert.Equal(t, -6.0, f)
	assert.True(t, c.Flags().Inexact())
	assert.False(t, c.Flags().Overflow())
	assert.NoError(t, c.Err())

	// z is reused when it has the right precision
	assert.Same(t, z, c.Abs(z, x))
	f, _ = z.BigFloat(nil).Float64()
	assert.Equal(t, 6.0, f)

	// exact operations raise nothing
	c.ClearFlags()
	y := c.NewFloat64(0.5)
	c.Neg(z, y)
	f, _ = z.BigFloat(nil).Float64()
	assert.Equal(t, -0.5, f)
	assert.Equal(t, Condition(0), c.Flags())
}

func TestContextOverflow(t *testing.T) {
	c := New(2, bigfloat.AwayFromZero)
	huge := new(big.Float).SetMantExp(big.NewFloat(0.875), bigfloat.MaxExp)
	x := bigfloat.New(3)
	require.Equal(t, bigfloat.Exact, x.SetBigFloat(huge, bigfloat.ToZero))

	z := c.Round(nil, x)
	assert.True(t, z.IsInf())
	assert.Equal(t, Inexact|Overflow, c.Flags())

	// pending error: operations are no-ops
	w := c.New()
	assert.Same(t, w, c.Round(w, x))
	assert.True(t, w.IsZero())

	err := c.Err()
	require.Error(t, err)
	var ce *ConditionError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, Overflow, ce.Cond)
	assert.Equal(t, "bigfloat: overflow", err.Error())
	assert.NoError(t, c.Err())

	// untrapped, only flags
	c.SetTraps(0).ClearFlags()
	c.Round(w, x)
	assert.True(t, w.IsInf())
	assert.True(t, c.Flags().Overflow())
	assert.NoError(t, c.Err())
}

func TestContextTrapInexact(t *testing.T) {
	c := New(8, bigfloat.ToNearestEven).SetTraps(Inexact)
	c.NewFloat64(math.Pi)
	err := c.Err()
	require.Error(t, err)
	assert.Equal(t, "bigfloat: inexact", err.Error())
}

func TestConditionString(t *testing.T) {
	assert.Equal(t, "none", Condition(0).String())
	assert.Equal(t, "inexact", Inexact.String())
	assert.Equal(t, "inexact, overflow", (Inexact | Overflow).String())
	assert.Nil(t, (Inexact | Overflow).GoError(0))
	assert.EqualError(t, (Inexact | Overflow).GoError(Overflow), "bigfloat: overflow")
}
