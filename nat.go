package bigfloat

// nat is the mantissa of a Float, an unsigned integer x of the form
//
//   x = x[n-1]*_B^(n-1) + x[n-2]*_B^(n-2) + ... + x[1]*_B + x[0]
//
// with _B = 2**_W, stored in a slice of length n. The mantissa of a finite
// Float with precision prec is left-aligned: it is exactly wordsFor(prec)
// words long, the most significant bit of x[n-1] is set and the
// padding(prec) least significant bits of x[0] are zero.
type nat []Word

// wordsFor returns the number of words needed to hold prec bits.
func wordsFor(prec uint32) int {
	return int((uint64(prec) + _W - 1) / _W)
}

// padding returns the number of unused low-order bits of x[0] in a
// mantissa of prec bits.
func padding(prec uint32) uint {
	return (_W - uint(prec)%_W) % _W
}

func (z nat) make(n int) nat {
	if n <= cap(z) {
		return z[:n] // reuse z
	}
	return make(nat, n)
}

// bit returns the value of the i'th bit of x.
func (x nat) bit(i uint) uint {
	j := i / _W
	if j >= uint(len(x)) {
		return 0
	}
	return uint(x[j] >> (i % _W) & 1)
}

// sticky returns 1 if there's a 1 bit within the
// i least significant bits, otherwise it returns 0.
func (x nat) sticky(i uint) uint {
	j := i / _W
	if j >= uint(len(x)) {
		if len(x) == 0 {
			return 0
		}
		return 1
	}
	// 0 <= j < len(x)
	for _, x := range x[:j] {
		if x != 0 {
			return 1
		}
	}
	if x[j]<<(_W-i%_W) != 0 {
		return 1
	}
	return 0
}

// normalized reports whether x is a valid mantissa for prec bits.
func (x nat) normalized(prec uint32) bool {
	n := len(x)
	return n == wordsFor(prec) && n > 0 &&
		x[n-1]>>(_W-1) != 0 &&
		x[0]&(1<<padding(prec)-1) == 0
}
