package control

import "github.com/zeebo/errs"

// Error is the error class for this package.
var Error = errs.Class("control")

// ErrInvalidOperation is returned when a field accessor does not apply to
// the current field type.
var ErrInvalidOperation = Error.New("invalid operation")
