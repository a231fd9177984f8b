package integer

import (
	"math/bits"

	"github.com/calebcase/oops"
)

// QuoRem returns the quotient x/y and the remainder x%y for y != 0. The
// quotient is truncated toward zero and the remainder has the sign of x:
//
//  q*y + r == x
//
// If y == 0, ErrDivisionByZero is returned.
func (x *Int) QuoRem(y *Int) (q, r *Int, err error) {
	if y.IsZero() {
		return nil, nil, oops.Trace(ErrDivisionByZero)
	}

	a, b := x.mag(), y.mag()

	if a.less(b) {
		return zero(), x.Clone(), nil
	}

	if k, ok := b.pow10(); ok {
		return x.quoRemPow10(k, x.neg != y.neg)
	}

	q, r = longDivide(a, b)
	q.neg = x.neg != y.neg
	q.normalize()
	r.neg = x.neg
	r.normalize()

	return q, r, nil
}

// Quo returns x/y truncated toward zero.
func (x *Int) Quo(y *Int) (*Int, error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

// Rem returns the remainder of x/y with the sign of x.
func (x *Int) Rem(y *Int) (*Int, error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

// pow10 reports whether x == 10^k for some k > 0.
func (x digits) pow10() (k int, ok bool) {
	if len(x) < 2 || x[len(x)-1] != 1 {
		return 0, false
	}
	for _, d := range x[:len(x)-1] {
		if d != 0 {
			return 0, false
		}
	}
	return len(x) - 1, true
}

// quoRemPow10 divides x by 10^k. The quotient comes from the shifter and the
// remainder is a copy of the low k digits.
func (x *Int) quoRemPow10(k int, neg bool) (q, r *Int, err error) {
	q = x.Shift(-k)
	q.neg = neg
	q.normalize()

	a := x.mag()
	if k > len(a) {
		k = len(a)
	}
	r = &Int{
		neg: x.neg,
		abs: makeDigits(k, k),
	}
	copy(r.abs, a[:k])
	r.normalize()

	return q, r, nil
}

// longDivide computes a/b with schoolbook long division. Each dividend digit
// is shifted into a running remainder from which b is subtracted until the
// remainder drops below b. Requires a >= b > 0.
func longDivide(a, b digits) (q, r *Int) {
	// The quotient of an n by an m digit number has at most n-m+1 digits.
	qd := makeDigits(len(a)-len(b)+1, len(a)-len(b)+1)

	// The remainder is always below 10*b, so it needs at most m+1 digits.
	rd := makeDigits(1, len(b)+1)

	for i := len(a) - 1; i >= 0; i-- {
		rd = rd.prepend(a[i])
		for !rd.less(b) {
			rd = rd.subInPlace(b)
			qd[i]++
		}
	}

	return &Int{abs: qd}, &Int{abs: rd}
}

// QuoRemNative returns the quotient x/d and the remainder x%d for a native
// integer divisor, with the same conventions as QuoRem. The digits of x are
// swept once from the most significant end.
func QuoRemNative[T Integer](x *Int, d T) (q, r *Int, err error) {
	abs, neg := magnitude(d)
	return x.quoRemUint64(abs, neg)
}

// QuoNative returns x/d truncated toward zero.
func QuoNative[T Integer](x *Int, d T) (*Int, error) {
	q, _, err := QuoRemNative(x, d)
	return q, err
}

// RemNative returns the remainder of x/d with the sign of x.
func RemNative[T Integer](x *Int, d T) (*Int, error) {
	_, r, err := QuoRemNative(x, d)
	return r, err
}

func (x *Int) quoRemUint64(d uint64, dneg bool) (q, r *Int, err error) {
	if d == 0 {
		return nil, nil, oops.Trace(ErrDivisionByZero)
	}

	a := x.mag()
	if a.isZero() {
		return zero(), zero(), nil
	}

	qd := makeDigits(len(a), len(a))

	// rem < d holds before every step, so rem*10+digit < 10*d and the high
	// word of the 128 bit accumulator is always below d.
	var rem uint64
	for i := len(a) - 1; i >= 0; i-- {
		hi, lo := bits.Mul64(rem, 10)
		lo, carry := bits.Add64(lo, uint64(a[i]), 0)
		hi += carry

		if hi == 0 && lo < d {
			qd[i] = 0
			rem = lo
			continue
		}

		var digit uint64
		digit, rem = bits.Div64(hi, lo, d)
		qd[i] = byte(digit)
	}

	q = &Int{
		neg: x.neg != dneg,
		abs: qd,
	}
	q.normalize()

	r = newInt(rem, widthDigits[8], x.neg)

	return q, r, nil
}
