// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import "math/bits"

//-----------------------------------------------------------------------------
// Arithmetic primitives
//

// addVW sets z to x + y, propagating the carry from z[0] to z[len(z)-1].
// The resulting carry c is either 0 or 1. z and x may be the same slice.
func addVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := 0; i < len(z) && i < len(x); i++ {
		if c == 0 {
			// copy remaining words
			copy(z[i:], x[i:])
			return 0
		}
		zi, cc := bits.Add(uint(x[i]), uint(c), 0)
		z[i], c = Word(zi), Word(cc)
	}
	return c
}
