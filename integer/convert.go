package integer

import (
	"fmt"
	"unsafe"

	"github.com/calebcase/oops"
)

// Integer is the set of native integer types that convert to an Int.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// widthDigits maps a byte width to the number of decimal digits needed for
// any value of that width.
var widthDigits = [...]int{
	1: 3,
	2: 5,
	3: 8,
	4: 10,
	5: 13,
	6: 15,
	7: 17,
	8: 20,
}

// capacityOf returns the digit capacity for values of T.
func capacityOf[T Integer]() int {
	var v T
	w := int(unsafe.Sizeof(v))
	if w >= len(widthDigits) {
		w = len(widthDigits) - 1
	}
	return widthDigits[w]
}

// magnitude splits v into its absolute value and sign. The most negative
// value of a signed type is handled without overflow.
func magnitude[T Integer](v T) (abs uint64, neg bool) {
	if v < 0 {
		return uint64(-(v + 1)) + 1, true
	}
	return uint64(v), false
}

// New returns an Int set to v. The digit store is sized by the width of T.
func New[T Integer](v T) *Int {
	abs, neg := magnitude(v)
	return newInt(abs, capacityOf[T](), neg)
}

// Parse returns the Int represented by the decimal text. The grammar is
//
//  '-'? digit*
//
// Empty text and a lone '-' denote zero. Any other byte after the optional
// sign is an error matching ErrSyntax.
func Parse(text string) (_ *Int, err error) {
	z := &Int{
		abs: makeDigits(len(text), len(text)),
	}

	s := text
	if len(s) > 0 && s[0] == '-' {
		z.neg = true
		s = s[1:]
	}

	if i := invalidDigit(s); i >= 0 {
		return nil, oops.Trace(Error.Wrap(fmt.Errorf("%w: %q has non-digit %q at offset %d",
			ErrSyntax, text, s[i], len(text)-len(s)+i)))
	}

	z.abs = z.abs[:len(s)]
	for i := range s {
		z.abs[i] = s[len(s)-1-i] - '0'
	}
	z.normalize()

	return z, nil
}

// invalidDigit returns the index of the first non-digit in s or -1.
func invalidDigit(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return i
		}
	}
	return -1
}
