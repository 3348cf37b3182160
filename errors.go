package human

import "errors"

// ErrInvalidInput is returned when a constructor is given a value outside
// the formatter's domain, such as a negative byte count or duration.
var ErrInvalidInput = errors.New("invalid input")
