// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides IEEE-754 style contexts for bigfloat Floats.
//
// A Context holds a precision and a rounding mode. Factory functions of the
// form
//
//    func (c *Context) NewT(x T) *bigfloat.Float
//
// create a new bigfloat.Float of c's precision set to the value of x rounded
// using c's rounding mode.
//
// Operators of the form
//
//    func (c *Context) UnaryOp(z, x *bigfloat.Float) *bigfloat.Float
//
// set z to the result of the operation, rounded to c's precision using c's
// rounding mode, and return z. If z is nil or its precision is not c's, a new
// Float is allocated and returned instead.
//
// Every operation raises condition flags describing its result (Inexact,
// Overflow). Flags accumulate until cleared. Conditions selected as traps
// also produce an error: once an error is pending, further operations with
// the context are no-ops (they simply return the receiver z) until
// (*Context).Err is called to check for errors.
package context

import (
	"math/big"

	"github.com/db47h/bigfloat"
)

// DefaultPrec is the precision used by contexts created with a precision
// of 0.
const DefaultPrec = 64

// A Context is a wrapper around Floats that facilitates management of
// rounding modes, precision and error handling.
//
// A Context is not safe for concurrent use.
type Context struct {
	prec  uint32
	mode  bigfloat.RoundingMode
	traps Condition
	flags Condition
	err   error
}

// New creates a new context with the given precision and rounding mode. If
// prec is 0, it will be set to DefaultPrec. Overflow is trapped.
func New(prec uint, mode bigfloat.RoundingMode) *Context {
	return new(Context).SetMode(mode).SetPrec(prec).SetTraps(Overflow)
}

// Mode returns the rounding mode of c.
func (c *Context) Mode() bigfloat.RoundingMode {
	return c.mode
}

// Prec returns the mantissa precision of c in bits.
func (c *Context) Prec() uint {
	return uint(c.prec)
}

// Traps returns the conditions that c turns into errors.
func (c *Context) Traps() Condition {
	return c.traps
}

// SetMode sets c's rounding mode to mode and returns c.
func (c *Context) SetMode(mode bigfloat.RoundingMode) *Context {
	c.mode = mode
	return c
}

// SetPrec sets c's precision to prec and returns c.
//
// If prec > MaxPrec, it is set to MaxPrec. If prec == 0, it is set to
// DefaultPrec.
func (c *Context) SetPrec(prec uint) *Context {
	// special case
	if prec == 0 {
		prec = DefaultPrec
	}
	// general case
	if prec > bigfloat.MaxPrec {
		prec = bigfloat.MaxPrec
	}
	c.prec = uint32(prec)
	return c
}

// SetTraps sets the conditions that c turns into errors and returns c.
func (c *Context) SetTraps(traps Condition) *Context {
	c.traps = traps
	return c
}

// Flags returns the conditions raised since c was created or its flags were
// last cleared.
func (c *Context) Flags() Condition {
	return c.flags
}

// ClearFlags clears c's condition flags and returns c.
func (c *Context) ClearFlags() *Context {
	c.flags = 0
	return c
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// New returns a new bigfloat.Float with value +0 and c's precision.
func (c *Context) New() *bigfloat.Float {
	return bigfloat.New(uint(c.prec))
}

// NewFloat64 returns a new *bigfloat.Float set to the (possibly rounded)
// value of x.
func (c *Context) NewFloat64(x float64) *bigfloat.Float {
	z, acc := bigfloat.FromFloat(uint(c.prec), x, c.mode)
	c.raise(acc)
	return z
}

// NewBigFloat returns a new *bigfloat.Float set to the (possibly rounded)
// value of x.
func (c *Context) NewBigFloat(x *big.Float) *bigfloat.Float {
	z := c.New()
	c.raise(z.SetBigFloat(x, c.mode))
	return z
}

// Round sets z to the value of x rounded using c's precision and rounding
// mode, and returns z.
func (c *Context) Round(z, x *bigfloat.Float) *bigfloat.Float {
	if c.err != nil {
		return z
	}
	z = c.apply(z)
	c.raise(z.Copy(x, c.mode))
	return z
}

// Neg sets z to the (possibly rounded) value of x with its sign negated,
// and returns z.
func (c *Context) Neg(z, x *bigfloat.Float) *bigfloat.Float {
	if c.err != nil {
		return z
	}
	z = c.apply(z)
	c.raise(z.Neg(x, c.mode))
	return z
}

// Abs sets z to the (possibly rounded) value |x| (the absolute value of x)
// and returns z.
func (c *Context) Abs(z, x *bigfloat.Float) *bigfloat.Float {
	if c.err != nil {
		return z
	}
	z = c.apply(z)
	c.raise(z.Abs(x, c.mode))
	return z
}

// apply returns z if it has c's precision, a new Float otherwise.
func (c *Context) apply(z *bigfloat.Float) *bigfloat.Float {
	if z == nil || z.Prec() != uint(c.prec) {
		return c.New()
	}
	return z
}

// raise records the conditions resulting from acc.
func (c *Context) raise(acc bigfloat.Accuracy) {
	var cond Condition
	switch acc {
	case bigfloat.Exact:
		return
	case bigfloat.Overflow:
		cond = Inexact | Overflow
	default:
		cond = Inexact
	}
	c.flags |= cond
	if c.err == nil {
		c.err = cond.GoError(c.traps)
	}
}
