package integer

import "math"

// Int is a signed decimal integer of arbitrary size.
//
// The zero value for an Int represents the value 0.
type Int struct {
	neg bool   // sign
	abs digits // absolute value of the integer
}

// newInt returns an Int with room for capacity digits holding v. The
// capacity is never less than one digit.
func newInt(v uint64, capacity int, neg bool) *Int {
	z := &Int{
		neg: neg,
		abs: makeDigits(0, capacity).setUint64(v),
	}
	z.normalize()

	return z
}

// zero returns canonical zero.
func zero() *Int {
	return &Int{abs: makeDigits(1, 1)}
}

// mag returns the digits of x, treating an empty store as zero.
func (x *Int) mag() digits {
	if len(x.abs) == 0 {
		return zeroDigits
	}
	return x.abs
}

// normalize trims leading zero digits and clears the sign of zero.
func (z *Int) normalize() {
	z.abs = z.abs.norm()
	if z.abs.isZero() {
		z.neg = false
	}
}

// Clone returns a copy of x. The copy is sized to the significant digits of
// x, not to its capacity.
func (x *Int) Clone() *Int {
	return &Int{
		neg: x.neg,
		abs: x.mag().clone(),
	}
}

// Sign returns:
//
//  -1 if x <  0
//   0 if x == 0
//  +1 if x >  0
func (x *Int) Sign() int {
	if x.mag().isZero() {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// IsZero reports whether x is 0.
func (x *Int) IsZero() bool {
	return x.mag().isZero()
}

// Len returns the number of significant decimal digits of x. Zero has one
// digit.
func (x *Int) Len() int {
	return len(x.mag())
}

// Cap returns the number of digits x can hold without reallocating.
func (x *Int) Cap() int {
	return cap(x.mag())
}

// Neg returns -x.
func (x *Int) Neg() *Int {
	z := x.Clone()
	z.neg = !z.neg
	z.normalize()

	return z
}

// Abs returns |x|.
func (x *Int) Abs() *Int {
	z := x.Clone()
	z.neg = false

	return z
}

// Uint64 returns the magnitude of x as a uint64. The boolean is false if the
// magnitude does not fit.
func (x *Int) Uint64() (v uint64, ok bool) {
	abs := x.mag()
	if len(abs) > 20 {
		return 0, false
	}
	for i := len(abs) - 1; i >= 0; i-- {
		d := uint64(abs[i])
		if v > (math.MaxUint64-d)/10 {
			return 0, false
		}
		v = v*10 + d
	}
	return v, true
}

// Int64 returns x as an int64. The boolean is false if x does not fit.
func (x *Int) Int64() (v int64, ok bool) {
	u, ok := x.Uint64()
	if !ok {
		return 0, false
	}
	if x.neg {
		if u > 1<<63 {
			return 0, false
		}
		return int64(-u), true
	}
	if u > math.MaxInt64 {
		return 0, false
	}
	return int64(u), true
}
