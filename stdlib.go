// This file mirrors types and constants from math/big.

package bigfloat

import (
	"math"
	"math/bits"
)

// A Word represents a single digit of a mantissa.
type Word uint

const _W = bits.UintSize // word size in bits

// Precision limits.
const (
	MaxPrec = math.MaxUint32 // largest (theoretically) supported precision; likely memory-limited
)

// RoundingMode determines how a Float value is rounded to the
// desired precision. Rounding may change the Float value; the
// rounding error is described by the Accuracy returned by the operation.
//
// The values are identical to those of big.RoundingMode.
type RoundingMode byte

// These constants define supported rounding modes.
const (
	ToNearestEven RoundingMode = iota // == IEEE 754-2008 roundTiesToEven
	ToNearestAway                     // == IEEE 754-2008 roundTiesToAway
	ToZero                            // == IEEE 754-2008 roundTowardZero
	AwayFromZero                      // no IEEE 754-2008 equivalent
	ToNegativeInf                     // == IEEE 754-2008 roundTowardNegative
	ToPositiveInf                     // == IEEE 754-2008 roundTowardPositive
)

//go:generate stringer -type=RoundingMode

// Accuracy describes the rounding error produced by an operation that
// generated a Float value, relative to the exact value.
//
// Overflow reports that the magnitude of the result went past the largest
// finite exponent and that the result has been set to ±Inf.
type Accuracy int8

// Constants describing the Accuracy of a Float.
const (
	Below    Accuracy = -1
	Exact    Accuracy = 0
	Above    Accuracy = +1
	Overflow Accuracy = +2
)

//go:generate stringer -type=Accuracy

func makeAcc(above bool) Accuracy {
	if above {
		return Above
	}
	return Below
}

// A Form describes the class of a Float's exponent.
type Form byte

// The Form value order is relevant - do not change!
const (
	Zero Form = iota
	Finite
	Inf
	NaN
)

//go:generate stringer -type=Form

// An ErrNaN panic is raised by a Float operation that cannot represent
// a NaN in its result. An ErrNaN implements the error interface.
type ErrNaN struct {
	msg string
}

func (err ErrNaN) Error() string {
	return err.msg
}

// alias reports whether x and y share the same base array.
func alias(x, y []Word) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}
