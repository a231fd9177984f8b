package integer

// cmp compares the magnitudes x and y and returns:
//
//  -1 if x <  y
//   0 if x == y
//  +1 if x >  y
func (x digits) cmp(y digits) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (x digits) equal(y digits) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

func (x digits) less(y digits) bool {
	return x.cmp(y) < 0
}

// CmpAbs compares the absolute values of x and y and returns:
//
//  -1 if |x| <  |y|
//   0 if |x| == |y|
//  +1 if |x| >  |y|
func (x *Int) CmpAbs(y *Int) int {
	return x.mag().cmp(y.mag())
}

// Cmp compares x and y and returns:
//
//  -1 if x <  y
//   0 if x == y
//  +1 if x >  y
func (x *Int) Cmp(y *Int) int {
	switch {
	case x.Equal(y):
		return 0
	case x.Less(y):
		return -1
	}
	return 1
}

// Equal reports whether x == y.
func (x *Int) Equal(y *Int) bool {
	if x.neg != y.neg {
		return false
	}
	return x.mag().equal(y.mag())
}

// Less reports whether x < y.
func (x *Int) Less(y *Int) bool {
	switch {
	case !x.neg && y.neg:
		return false
	case x.neg && !y.neg:
		return true
	case x.neg && y.neg:
		return y.mag().less(x.mag())
	}
	return x.mag().less(y.mag())
}

// LessEqual reports whether x <= y.
func (x *Int) LessEqual(y *Int) bool {
	return !y.Less(x)
}

// Greater reports whether x > y.
func (x *Int) Greater(y *Int) bool {
	return y.Less(x)
}

// GreaterEqual reports whether x >= y.
func (x *Int) GreaterEqual(y *Int) bool {
	return !x.Less(y)
}
