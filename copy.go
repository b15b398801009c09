// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

// CopyWithSign sets z to the value of x, with the sign set to neg, rounded
// to z's precision using mode, and returns the accuracy of the result
// relative to the exact value of ±|x|.
//
// Zeros, infinities and NaNs are copied exactly. If z's precision is larger
// or equal to x's, the result is Exact. Otherwise x's mantissa is rounded;
// if rounding carries past the largest finite exponent, z is set to ±Inf
// and the result is Overflow.
//
// z and x may be the same Float. Distinct Floats must not share mantissa
// storage.
func (z *Float) CopyWithSign(x *Float, mode RoundingMode, neg bool) Accuracy {
	if z.prec == 0 {
		panic("bigfloat: destination has no precision")
	}
	if z != x && alias(z.mant, x.mant) {
		panic("bigfloat: destination and source share mantissa storage")
	}
	if debugFloat {
		x.validate()
		z.validate()
	}

	e := x.Exponent()
	z.setSignExp(neg, e)
	if e.Form != Finite {
		return Exact
	}

	if z.prec >= x.prec {
		// widen: x's words go to the top of z's mantissa
		n := len(z.mant) - len(x.mant)
		for i := range z.mant[:n] {
			z.mant[i] = 0
		}
		copy(z.mant[n:], x.mant)
		return Exact
	}

	return z.round(x, mode)
}

// Copy sets z to the value of x, rounded to z's precision using mode, and
// returns the accuracy of the result. See CopyWithSign.
func (z *Float) Copy(x *Float, mode RoundingMode) Accuracy {
	return z.CopyWithSign(x, mode, x.Signbit())
}

// Abs sets z to the (possibly rounded) value |x| (the absolute value of x)
// and returns the accuracy of the result.
func (z *Float) Abs(x *Float, mode RoundingMode) Accuracy {
	return z.CopyWithSign(x, mode, false)
}

// Neg sets z to the (possibly rounded) value of x with its sign negated,
// and returns the accuracy of the result.
func (z *Float) Neg(x *Float, mode RoundingMode) Accuracy {
	return z.CopyWithSign(x, mode, !x.Signbit())
}
