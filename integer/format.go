package integer

import (
	"fmt"
	"io"

	"github.com/calebcase/oops"
)

// Append appends the canonical decimal form of x to buf.
func (x *Int) Append(buf []byte) []byte {
	a := x.mag()
	if x.neg {
		buf = append(buf, '-')
	}
	for i := len(a) - 1; i >= 0; i-- {
		buf = append(buf, '0'+a[i])
	}
	return buf
}

// String returns the canonical decimal form of x: a '-' if x is negative
// followed by the digits, most significant first, without leading zeros.
func (x *Int) String() string {
	if x == nil {
		return "<nil>"
	}
	return string(x.Append(make([]byte, 0, len(x.mag())+1)))
}

// Format implements fmt.Formatter for the verbs 'd', 's' and 'v'. The width
// and the '+', ' ', '-' and '0' flags are honored as for native integers.
func (x *Int) Format(s fmt.State, ch rune) {
	switch ch {
	case 'd', 's', 'v':
	default:
		fmt.Fprintf(s, "%%!%c(integer.Int=%s)", ch, x.String())
		return
	}

	if x == nil {
		_, _ = io.WriteString(s, "<nil>")
		return
	}

	a := x.mag()

	// Arithmetic sign
	var sign byte
	switch {
	case x.neg:
		sign = '-'
	case s.Flag('+'):
		sign = '+'
	case s.Flag(' '):
		sign = ' '
	}

	// Padding
	width := len(a)
	if sign != 0 {
		width++
	}
	lspaces, tspaces, lzeroes := 0, 0, 0
	if w, ok := s.Width(); ok && w > width {
		switch {
		case s.Flag('-'):
			tspaces = w - width
		case s.Flag('0'):
			lzeroes = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	buf := make([]byte, 0, width)
	for i := 0; i < lspaces; i++ {
		buf = append(buf, ' ')
	}
	if sign != 0 {
		buf = append(buf, sign)
	}
	for i := 0; i < lzeroes; i++ {
		buf = append(buf, '0')
	}
	for i := len(a) - 1; i >= 0; i-- {
		buf = append(buf, '0'+a[i])
	}
	for i := 0; i < tspaces; i++ {
		buf = append(buf, ' ')
	}

	_, _ = s.Write(buf)
}

// MarshalText implements encoding.TextMarshaler.
func (x *Int) MarshalText() (text []byte, err error) {
	if x == nil {
		return nil, oops.Trace(ErrNotNullable)
	}
	return x.Append(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (z *Int) UnmarshalText(text []byte) (err error) {
	x, err := Parse(string(text))
	if err != nil {
		return err
	}

	*z = *x

	return nil
}
