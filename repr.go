// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import "strconv"

// Sign and exponent of a Float are stored packed in a single uint64:
//
//   63  62         32 31                             0
//   s   0 ........ 0  biased exponent (expBits wide)
//
// The biased exponent b encodes the Form of the value:
//
//   b == 0                   ±0
//   1 <= b <= biasedInf-1    finite, exponent b - expBias
//   b == biasedInf           ±Inf
//   b == biasedNaN           NaN
//
// biasedInf sits right above the largest finite exponent so that
// incrementing the exponent of a value at MaxExp yields ±Inf.
//
// Nothing outside this file should look at the packed bits.
const (
	expBits   = 32
	signShift = 63
	expMask   = 1<<expBits - 1
	expBias   = 1 << (expBits - 1)

	biasedZero = 0
	biasedInf  = expMask - 1
	biasedNaN  = expMask
)

// Exponent limits.
const (
	MaxExp = biasedInf - 1 - expBias // largest finite exponent
	MinExp = 1 - expBias             // smallest finite exponent
)

// An Exponent is the exponent class of a Float, along with the actual
// exponent value of finite values.
type Exponent struct {
	Form Form
	Exp  int32 // only meaningful if Form == Finite
}

// FiniteExp returns the Exponent of a finite value with exponent e.
// It panics if e is outside [MinExp, MaxExp].
func FiniteExp(e int32) Exponent {
	if e < MinExp || e > MaxExp {
		panic("bigfloat: exponent out of range: " + strconv.Itoa(int(e)))
	}
	return Exponent{Form: Finite, Exp: e}
}

func (e Exponent) String() string {
	if e.Form == Finite {
		return strconv.Itoa(int(e.Exp))
	}
	return e.Form.String()
}

// pack returns the storage representation of sign neg and exponent e.
func pack(neg bool, e Exponent) uint64 {
	var b uint64
	switch e.Form {
	case Zero:
		b = biasedZero
	case Finite:
		if e.Exp < MinExp || e.Exp > MaxExp {
			panic("bigfloat: exponent out of range: " + strconv.Itoa(int(e.Exp)))
		}
		b = uint64(int64(e.Exp) + expBias)
	case Inf:
		b = biasedInf
	case NaN:
		b = biasedNaN
	default:
		panic("bigfloat: invalid form " + e.Form.String())
	}
	if neg {
		b |= 1 << signShift
	}
	return b
}

// unpack is the inverse of pack.
func unpack(se uint64) (neg bool, e Exponent) {
	neg = se>>signShift != 0
	switch b := se & expMask; b {
	case biasedZero:
		e.Form = Zero
	case biasedInf:
		e.Form = Inf
	case biasedNaN:
		e.Form = NaN
	default:
		e = Exponent{Form: Finite, Exp: int32(int64(b) - expBias)}
	}
	return neg, e
}
