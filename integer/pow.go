package integer

import "math"

var ten = New(10)

// Pow returns x**exp. Powers of ten are built with Shift; any other base is
// multiplied exp times starting from 1.
func Pow(x *Int, exp uint) *Int {
	if x.Equal(ten) && exp <= math.MaxInt {
		return ten.Shift(int(exp) - 1)
	}

	z := New(1)
	for i := uint(0); i < exp; i++ {
		z = z.Mul(x)
	}

	return z
}
