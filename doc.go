// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bigfloat implements correctly rounded precision conversion of
arbitrary-precision binary floating-point values.

A Float is a sign, an exponent class (±0, finite, ±Inf or NaN) and, for
finite values, a normalized mantissa of a fixed number of bits. Unlike
big.Float, the precision of a Float is fixed when it is created:

    x := bigfloat.New(256) // x is a 256 bits +0

and every operation writes into the existing mantissa of its receiver
without allocating. Values can also be built from their parts:

    x := bigfloat.FromParts(8, false, bigfloat.FiniteExp(3), mant)

or converted from float32, float64 and *big.Float values with FromFloat and
SetBigFloat.

The core operation is a copy between Floats of different precisions:

    func (z *Float) Copy(x *Float, mode RoundingMode) Accuracy
    func (z *Float) CopyWithSign(x *Float, mode RoundingMode, neg bool) Accuracy
    func (z *Float) Abs(x *Float, mode RoundingMode) Accuracy
    func (z *Float) Neg(x *Float, mode RoundingMode) Accuracy

The receiver z is the destination and keeps its own precision. Widening or
same-precision copies are always Exact. Narrowing copies round x's mantissa
to z's precision using mode and report how the stored value compares to the
exact one: Below, Above, or Overflow if rounding carried the exponent past
MaxExp and z was set to ±Inf. Overflow is a regular result, not an error.

Operations panic on contract violations, for instance when the destination
has no precision or shares its mantissa storage with the source.

Arithmetic operators, parsing and formatting are not provided by this
package; they are expected to use Copy for their final rounding step.

The context subpackage wraps precision, rounding mode and condition flags in
a single value.
*/
package bigfloat
