package integer

import "fmt"

// MustParse is like Parse but panics if the text is not a valid numeral.
func MustParse(text string) *Int {
	x, err := Parse(text)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", text, err))
	}
	return x
}

// MustQuo is like Quo but panics on division by zero.
func (x *Int) MustQuo(y *Int) *Int {
	q, err := x.Quo(y)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", y, err))
	}
	return q
}

// MustRem is like Rem but panics on division by zero.
func (x *Int) MustRem(y *Int) *Int {
	r, err := x.Rem(y)
	if err != nil {
		panic(fmt.Sprintf("MustRem(%v) failed: %v", y, err))
	}
	return r
}
