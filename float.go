// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"fmt"
	"strconv"
)

const debugFloat = false // enable for debugging

// A nonzero finite Float represents a multi-precision binary floating point
// number
//
//   sign × mantissa × 2**exponent
//
// with 0.5 <= mantissa < 1.0, and MinExp <= exponent <= MaxExp.
// A Float may also be zero (+0, -0), infinite (+Inf, -Inf) or NaN.
//
// Each Float owns a mantissa of exactly as many words as its precision
// requires; the precision is set when the Float is created and never
// changes. Operations write into the receiver's existing mantissa and never
// allocate.
//
// The zero value of a Float has no precision and cannot be the destination
// of an operation. Use New or FromParts to create Floats.
type Float struct {
	mant nat
	prec uint32
	se   uint64 // packed sign and biased exponent, see repr.go
}

// Internal representation: The mantissa bits x.mant of a nonzero finite
// Float x are stored in a nat slice of wordsFor(x.prec) words;
// the slice may contain unused padding bits in x.mant[0], which are always
// zero.
//
// A zero, infinite or NaN Float x ignores x.mant.
//
// x                 form      neg      mant         exp
// ----------------------------------------------------------
// ±0                Zero      sign     -            -
// 0 < |x| < +Inf    Finite    sign     mantissa     exponent
// ±Inf              Inf       sign     -            -
// NaN               NaN       sign     -            -

// New returns a new Float of value +0 with a mantissa of prec bits.
// New panics if prec is 0 or larger than MaxPrec.
func New(prec uint) *Float {
	if prec == 0 || prec > MaxPrec {
		panic(fmt.Sprintf("bigfloat: invalid precision %d", prec))
	}
	p := uint32(prec)
	return &Float{mant: nat(nil).make(wordsFor(p)), prec: p}
}

// FromParts returns a new Float of precision prec with the given sign,
// exponent and mantissa words. See SetParts.
func FromParts(prec uint, neg bool, exp Exponent, mant []Word) *Float {
	return New(prec).SetParts(neg, exp, mant)
}

// SetParts sets z to the value with the given sign, exponent and mantissa
// words (least significant word first) and returns z.
//
// For finite values, mant must hold exactly as many words as z's mantissa,
// have its most significant bit set, and its unused low-order bits cleared.
// The mantissa is ignored for zero, infinite and NaN values. SetParts panics
// if these conditions are not met.
func (z *Float) SetParts(neg bool, exp Exponent, mant []Word) *Float {
	z.se = pack(neg, exp)
	if exp.Form == Finite {
		if !nat(mant).normalized(z.prec) {
			panic(fmt.Sprintf("bigfloat: mantissa %x is not a normalized %d-bit mantissa", mant, z.prec))
		}
		copy(z.mant, mant)
	}
	return z
}

// Prec returns the mantissa precision of x in bits.
// The result is 0 for the zero value of a Float.
func (x *Float) Prec() uint {
	return uint(x.prec)
}

// Signbit reports whether x is negative or negative zero.
func (x *Float) Signbit() bool {
	neg, _ := unpack(x.se)
	return neg
}

// Sign returns:
//
//	-1 if x <   0
//	 0 if x is ±0 or NaN
//	+1 if x >   0
//
func (x *Float) Sign() int {
	neg, e := unpack(x.se)
	if e.Form == Zero || e.Form == NaN {
		return 0
	}
	if neg {
		return -1
	}
	return 1
}

// Exponent returns the exponent class of x and, for finite values,
// its exponent.
func (x *Float) Exponent() Exponent {
	_, e := unpack(x.se)
	return e
}

// Mant returns the mantissa words of x, least significant word first.
// The returned slice aliases x; its content is only meaningful if x is
// finite. Writes through it must keep the mantissa normalized: the top bit
// of the last word set and the low padding bits of word 0 clear. Use
// SetParts to replace the mantissa with validation.
func (x *Float) Mant() []Word {
	return x.mant
}

// IsZero reports whether x is +0 or -0.
func (x *Float) IsZero() bool {
	return x.Exponent().Form == Zero
}

// IsInf reports whether x is +Inf or -Inf.
func (x *Float) IsInf() bool {
	return x.Exponent().Form == Inf
}

// IsNaN reports whether x is a NaN.
func (x *Float) IsNaN() bool {
	return x.Exponent().Form == NaN
}

// IsFinite reports whether x is a nonzero finite value.
func (x *Float) IsFinite() bool {
	return x.Exponent().Form == Finite
}

// SetZero sets z to -0 if signbit is set, or +0 if signbit is not set,
// and returns z.
func (z *Float) SetZero(signbit bool) *Float {
	z.se = pack(signbit, Exponent{Form: Zero})
	return z
}

// SetInf sets z to the infinite Float -Inf if signbit is
// set, or +Inf if signbit is not set, and returns z. The
// precision of z is unchanged.
func (z *Float) SetInf(signbit bool) *Float {
	z.se = pack(signbit, Exponent{Form: Inf})
	return z
}

// SetNaN sets z to a positive NaN and returns z.
func (z *Float) SetNaN() *Float {
	z.se = pack(false, Exponent{Form: NaN})
	return z
}

// setSignExp sets the sign and exponent of z, leaving the mantissa untouched.
func (z *Float) setSignExp(neg bool, e Exponent) {
	z.se = pack(neg, e)
}

func (x *Float) validate() {
	if !debugFloat {
		// avoid performance bugs
		panic("validate called but debugFloat is not set")
	}
	if x.prec == 0 {
		panic("zero precision Float")
	}
	if len(x.mant) != wordsFor(x.prec) {
		panic(fmt.Sprintf("mantissa length %d != %d for precision %d", len(x.mant), wordsFor(x.prec), x.prec))
	}
	if !x.IsFinite() {
		return
	}
	if !x.mant.normalized(x.prec) {
		panic(fmt.Sprintf("mantissa %x of %s is not normalized for precision %d", []Word(x.mant), x.Exponent(), x.prec))
	}
}

// GoString implements fmt.GoStringer. It prints the raw representation of x
// and is meant for debugging.
func (x *Float) GoString() string {
	neg, e := unpack(x.se)
	s := "+"
	if neg {
		s = "-"
	}
	return "bigfloat.Float{prec: " + strconv.FormatUint(uint64(x.prec), 10) +
		", sign: " + s + ", exp: " + e.String() + fmt.Sprintf(", mant: %#x}", []Word(x.mant))
}
