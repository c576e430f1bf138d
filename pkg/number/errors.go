package number

import "errors"

// ErrInvalidValue is returned by decoders and parsers when the input is not
// a number. Out-of-range numbers are never an error; they are normalized.
var ErrInvalidValue = errors.New("value is not a number")
