// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements conversions between Float and math/big.Float.

package bigfloat

import (
	"math"
	"math/big"

	"golang.org/x/exp/constraints"
)

// BigFloat sets z to the exact value of x and returns z. If z is nil, a new
// big.Float is allocated. z's precision is set to x's precision.
//
// BigFloat panics with ErrNaN if x is a NaN.
func (x *Float) BigFloat(z *big.Float) *big.Float {
	if z == nil {
		z = new(big.Float)
	}
	neg, e := unpack(x.se)
	z.SetPrec(uint(x.prec))
	switch e.Form {
	case Zero:
		z.SetInt64(0)
	case Inf:
		return z.SetInf(neg)
	case NaN:
		panic(ErrNaN{"bigfloat: NaN has no big.Float representation"})
	case Finite:
		ws := make([]big.Word, len(x.mant))
		for i, w := range x.mant {
			ws[i] = big.Word(w)
		}
		// the mantissa words hold an integer m with x = m × 2**(exp - n*_W)
		z.SetInt(new(big.Int).SetBits(ws))
		z.SetMantExp(z, int(e.Exp)-len(ws)*_W)
	}
	if neg {
		z.Neg(z)
	}
	return z
}

// SetBigFloat sets z to the value of x rounded to z's precision using mode,
// and returns the accuracy of the result.
//
// Values whose exponent exceeds MaxExp are set to ±Inf with accuracy
// Overflow. Values whose exponent is below MinExp underflow to ±0. Both
// cases ignore mode: ToZero does not saturate to the largest finite value,
// as in math/big.
func (z *Float) SetBigFloat(x *big.Float, mode RoundingMode) Accuracy {
	neg := x.Signbit()
	if x.IsInf() {
		z.SetInf(neg)
		return Exact
	}
	if x.Sign() == 0 {
		z.SetZero(neg)
		return Exact
	}

	mant := new(big.Float)
	exp := x.MantExp(mant) // |x| = |mant| × 2**exp with 0.5 <= |mant| < 1
	if exp > MaxExp {
		z.SetInf(neg)
		return Overflow
	}
	if exp < MinExp {
		z.SetZero(neg)
		return makeAcc(neg)
	}

	// t is x at its minimal precision; the copy engine does the rounding.
	t := New(x.MinPrec())
	mant.SetMantExp(mant, len(t.mant)*_W)
	m, _ := mant.Int(nil)
	for i, w := range m.Abs(m).Bits() {
		t.mant[i] = Word(w)
	}
	t.setSignExp(neg, Exponent{Form: Finite, Exp: int32(exp)})
	if debugFloat {
		t.validate()
	}
	return z.Copy(t, mode)
}

// FromFloat returns a new Float of precision prec set to the value of x
// rounded using mode, and the accuracy of the result. A NaN x yields a NaN
// Float.
func FromFloat[T constraints.Float](prec uint, x T, mode RoundingMode) (*Float, Accuracy) {
	z := New(prec)
	f := float64(x)
	if math.IsNaN(f) {
		z.SetNaN()
		return z, Exact
	}
	return z, z.SetBigFloat(new(big.Float).SetFloat64(f), mode)
}
