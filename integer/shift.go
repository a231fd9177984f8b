package integer

// Shift returns x * 10^n for n > 0 and x / 10^-n truncated toward zero for
// n < 0. Digits are moved with a single allocation and bulk copy.
func (x *Int) Shift(n int) *Int {
	a := x.mag()

	switch {
	case n == 0:
		return x.Clone()
	case n <= -len(a):
		return zero()
	case n > 0:
		z := &Int{
			neg: x.neg,
			abs: makeDigits(len(a)+n, len(a)+n),
		}
		// The low n digits are already zero.
		copy(z.abs[n:], a)
		z.normalize()

		return z
	}

	z := &Int{
		neg: x.neg,
		abs: makeDigits(len(a)+n, len(a)+n),
	}
	copy(z.abs, a[-n:])
	z.normalize()

	return z
}
