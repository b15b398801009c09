// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

// magnitudeMode is a rounding mode that only depends on the magnitude of a
// value. It is obtained by resolving a RoundingMode against a known sign.
type magnitudeMode byte

const (
	nearestEven magnitudeMode = iota
	nearestAway
	toZero
	awayFromZero
)

// knownSign resolves mode against the sign of the value being rounded.
func knownSign(mode RoundingMode, neg bool) magnitudeMode {
	switch mode {
	case ToNearestEven:
		return nearestEven
	case ToNearestAway:
		return nearestAway
	case ToZero:
		return toZero
	case AwayFromZero:
		return awayFromZero
	case ToPositiveInf:
		if neg {
			return toZero
		}
		return awayFromZero
	case ToNegativeInf:
		if neg {
			return awayFromZero
		}
		return toZero
	}
	panic("bigfloat: invalid rounding mode " + mode.String())
}

// roundBits returns the rounding bit and the sticky bit of a mantissa x
// truncated to its k most significant words minus the padding of a prec bit
// mantissa. In other words, the rounding bit is the most significant bit
// discarded when keeping the top prec bits of x, and the sticky bit is 1 if
// any bit below the rounding bit is set.
//
// There are k*_W + padding(prec) discarded bits, of which there is at least
// one. Only x[:k+1] is accessed.
func roundBits(x nat, k int, prec uint32) (rbit, sbit uint) {
	d := uint(k)*_W + padding(prec) // number of discarded bits
	return x.bit(d - 1), x.sticky(d - 1)
}

// round sets z to x rounded to z's precision and returns the accuracy of
// the result. The sign and exponent of z must already be set to those of x
// (with a possibly different sign) and x must be finite and strictly wider
// than z.
func (z *Float) round(x *Float, mode RoundingMode) Accuracy {
	if x.prec <= z.prec || len(x.mant) < len(z.mant) {
		panic("bigfloat: round: source precision must be larger than destination precision")
	}
	neg := z.Signbit()
	k := len(x.mant) - len(z.mant)

	rbit, sbit := roundBits(x.mant, k, z.prec)

	// truncate
	copy(z.mant, x.mant[k:])
	if rbit|sbit == 0 {
		return Exact
	}
	ulp := Word(1) << padding(z.prec)
	z.mant[0] &^= ulp - 1

	inc := false
	switch knownSign(mode, neg) {
	case nearestEven:
		inc = rbit != 0 && (sbit != 0 || z.mant[0]&ulp != 0)
	case nearestAway:
		inc = rbit != 0
	case toZero:
		// nothing to do
	case awayFromZero:
		inc = true
	}
	if !inc {
		return makeAcc(neg)
	}

	if addVW(z.mant, z.mant, ulp) != 0 {
		// carry out of the most significant word: the mantissa wrapped
		// around to zero and becomes 0.1000... with exponent+1.
		z.mant[len(z.mant)-1] = 1 << (_W - 1)
		e := z.Exponent()
		if e.Exp == MaxExp {
			z.SetInf(neg)
			return Overflow
		}
		z.setSignExp(neg, Exponent{Form: Finite, Exp: e.Exp + 1})
	}
	return makeAcc(!neg)
}
