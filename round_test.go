// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnownSign(t *testing.T) {
	td := []struct {
		mode     RoundingMode
		pos, neg magnitudeMode
	}{
		{ToNearestEven, nearestEven, nearestEven},
		{ToNearestAway, nearestAway, nearestAway},
		{ToZero, toZero, toZero},
		{AwayFromZero, awayFromZero, awayFromZero},
		{ToPositiveInf, awayFromZero, toZero},
		{ToNegativeInf, toZero, awayFromZero},
	}
	for _, d := range td {
		t.Run(d.mode.String(), func(t *testing.T) {
			assert.Equal(t, d.pos, knownSign(d.mode, false))
			assert.Equal(t, d.neg, knownSign(d.mode, true))
		})
	}
	assert.Panics(t, func() { knownSign(RoundingMode(42), false) })
}

func TestRoundBits(t *testing.T) {
	td := []struct {
		name       string
		xPrec      uint
		x          string
		prec       uint32
		rbit, sbit uint
	}{
		// partial word, same word count
		{"partial/exact", 8, "1011_0000", 4, 0, 0},
		{"partial/round", 8, "1011_1000", 4, 1, 0},
		{"partial/sticky", 8, "1011_0001", 4, 0, 1},
		{"partial/both", 8, "1011_1001", 4, 1, 1},
		// destination ends on a word boundary
		{"aligned/exact", 2 * _W, "1", _W, 0, 0},
		{"aligned/round", _W + 1, "1" + zeros(_W-1) + "1", _W, 1, 0},
		{"aligned/sticky", 2 * _W, "1" + zeros(_W) + "01", _W, 0, 1},
		{"aligned/both", 2 * _W, "1" + zeros(_W-1) + "1" + zeros(_W-2) + "1", _W, 1, 1},
		// destination ends inside a word, several words discarded
		{"partial-multi/round", 3 * _W, "1" + zeros(7) + "1", 8, 1, 0},
		{"partial-multi/sticky", 3 * _W, "1" + zeros(2*_W+10) + "1", 8, 0, 1},
		{"partial-multi/low-word", 3 * _W, "1" + zeros(3*_W-2) + "1", 8, 0, 1},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			x := nat(mant(d.xPrec, d.x))
			k := len(x) - wordsFor(d.prec)
			rbit, sbit := roundBits(x, k, d.prec)
			assert.Equal(t, d.rbit, rbit, "round bit")
			assert.Equal(t, d.sbit, sbit, "sticky bit")
		})
	}
}

// TestRoundBitsBounds checks that roundBits never reads past x[k]: x is
// cut right after x[k], any access beyond it would panic.
func TestRoundBitsBounds(t *testing.T) {
	for _, prec := range []uint32{1, 5, _W - 1, _W, _W + 3, 2 * _W} {
		t.Run(strconv.Itoa(int(prec)), func(t *testing.T) {
			x := nat(mant(3*_W, "1"))
			k := len(x) - wordsFor(prec)
			assert.NotPanics(t, func() {
				rbit, sbit := roundBits(x[:k+1], k, prec)
				assert.Equal(t, uint(0), rbit)
				assert.Equal(t, uint(0), sbit)
			})
		})
	}
}

func zeros(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '0'
	}
	return string(b)
}
