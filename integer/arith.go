package integer

// absAdd returns |x| + |y|.
func absAdd(x, y digits) digits {
	n := len(x)
	if len(y) > n {
		n = len(y)
	}

	z := makeDigits(n+1, n+1)

	var carry byte
	for i := range z {
		s := carry
		if i < len(x) {
			s += x[i]
		}
		if i < len(y) {
			s += y[i]
		}
		z[i] = s % 10
		carry = s / 10
	}

	return z.norm()
}

// absSub returns |x| - |y|. The caller must ensure |x| >= |y|.
func absSub(x, y digits) digits {
	z := makeDigits(len(x), cap(x))

	if x.equal(y) {
		z = z[:1]
		z[0] = 0
		return z
	}

	var borrow byte
	for i := range x {
		s := borrow
		if i < len(y) {
			s += y[i]
		}
		if x[i] < s {
			z[i] = x[i] + 10 - s
			borrow = 1
		} else {
			z[i] = x[i] - s
			borrow = 0
		}
	}

	return z.norm()
}

// sameSignAdd returns |x| + |y| carrying the sign of x.
func (x *Int) sameSignAdd(y *Int) *Int {
	z := &Int{
		neg: x.neg,
		abs: absAdd(x.mag(), y.mag()),
	}
	z.normalize()

	return z
}

// sameSignSub returns |x| - |y| carrying the sign of x, flipped when |x| <
// |y|.
func (x *Int) sameSignSub(y *Int) *Int {
	var z *Int
	if x.mag().less(y.mag()) {
		z = &Int{
			neg: !x.neg,
			abs: absSub(y.mag(), x.mag()),
		}
	} else {
		z = &Int{
			neg: x.neg,
			abs: absSub(x.mag(), y.mag()),
		}
	}
	z.normalize()

	return z
}

// Add returns x + y.
func (x *Int) Add(y *Int) *Int {
	switch {
	case y.IsZero():
		return x.Clone()
	case x.IsZero():
		return y.Clone()
	case x.neg != y.neg:
		return x.sameSignSub(y)
	}
	return x.sameSignAdd(y)
}

// Sub returns x - y.
func (x *Int) Sub(y *Int) *Int {
	switch {
	case y.IsZero():
		return x.Clone()
	case x.IsZero():
		return y.Neg()
	case x.neg != y.neg:
		return x.sameSignAdd(y)
	}
	return x.sameSignSub(y)
}

// Mul returns x * y.
func (x *Int) Mul(y *Int) *Int {
	if x.IsZero() || y.IsZero() {
		return zero()
	}

	a, b := x.mag(), y.mag()

	// The product of an n and an m digit number has at most n+m digits.
	z := makeDigits(len(a)+len(b), len(a)+len(b))

	for i := range b {
		// t is at most 9 + 9 + 9*9 = 99, so the carry is a single digit.
		var t byte
		j := 0
		for ; j < len(a); j++ {
			t = z[i+j] + t/10 + b[i]*a[j]
			z[i+j] = t % 10
		}
		z[i+j] = t / 10
	}

	p := &Int{
		neg: x.neg != y.neg,
		abs: z,
	}
	p.normalize()

	return p
}
