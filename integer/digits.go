package integer

import "fmt"

// digits is an unsigned integer x of the form
//
//  x = x[n-1]*10^(n-1) + x[n-2]*10^(n-2) + ... + x[1]*10 + x[0]
//
// with 0 <= x[i] <= 9, stored least significant digit first. The slice
// length is the number of significant digits and the capacity is the
// allocated storage.
//
// A store is normalized if it has no leading 0 digits, except for zero which
// is the single digit 0. During arithmetic denormalized stores occur but are
// always normalized before a result is returned.
type digits []byte

// zeroDigits backs the zero value of Int. It is never written to.
var zeroDigits = digits{0}

// makeDigits returns a zeroed store of length n with room for at least c
// digits (and always at least one).
func makeDigits(n, c int) digits {
	if c < n {
		c = n
	}
	if c < 1 {
		c = 1
	}
	return make(digits, n, c)
}

func (x digits) isZero() bool {
	return len(x) == 0 || (len(x) == 1 && x[0] == 0)
}

// norm truncates leading zero digits without reallocating.
func (z digits) norm() digits {
	n := len(z)
	for n > 1 && z[n-1] == 0 {
		n--
	}
	if n == 0 {
		z = append(z[:0], 0)
		n = 1
	}
	z = z[:n]

	if debugInteger {
		z.check()
	}

	return z
}

// check panics if a digit is out of range.
func (x digits) check() {
	for i, d := range x {
		if d > 9 {
			panic(fmt.Sprintf("BUG: digit %d at %d out of range (len=%d cap=%d)", d, i, len(x), cap(x)))
		}
	}
}

// clone copies x into a new store sized to its length.
func (x digits) clone() digits {
	z := make(digits, len(x))
	copy(z, x)
	return z
}

// setUint64 writes the decimal expansion of v into z.
func (z digits) setUint64(v uint64) digits {
	z = z[:0]
	if v == 0 {
		return append(z, 0)
	}
	for v != 0 {
		z = append(z, byte(v%10))
		v /= 10
	}
	return z
}

// prepend sets z = z*10 + d in place. The store grows when its capacity is
// exhausted.
func (z digits) prepend(d byte) digits {
	if z.isZero() {
		return append(z[:0], d)
	}
	z = append(z, 0)
	copy(z[1:], z[:len(z)-1])
	z[0] = d
	return z
}

// subInPlace sets z = z - y in place. z must be >= y.
func (z digits) subInPlace(y digits) digits {
	var borrow byte
	for i := range z {
		s := borrow
		if i < len(y) {
			s += y[i]
		}
		if s == 0 {
			if i >= len(y) {
				break
			}
			continue
		}
		if z[i] < s {
			z[i] = z[i] + 10 - s
			borrow = 1
		} else {
			z[i] -= s
			borrow = 0
		}
	}
	return z.norm()
}
