package integer

import "github.com/zeebo/errs"

// Error is the error class for this package.
var Error = errs.Class("integer")

var (
	// ErrDivisionByZero is returned when a divisor is zero.
	ErrDivisionByZero = Error.New("division by zero")

	// ErrSyntax is returned when decimal text contains a non-digit.
	ErrSyntax = Error.New("invalid numeral")

	// ErrInvalidEncoding is returned when binary data cannot be decoded.
	ErrInvalidEncoding = Error.New("invalid encoding")

	// ErrNotNullable is returned when a nil value meets a schema that does
	// not allow it, or is marshaled to text.
	ErrNotNullable = Error.New("value is not nullable")
)
