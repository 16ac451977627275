package colorconv

import (
	"errors"
)

var (
	// ErrBadLength is returned when a slice input does not contain
	// exactly three values.
	ErrBadLength = errors.New("bad length")

	// ErrIntConversion is returned when a channel value cannot be
	// represented as an 8-bit unsigned integer.
	ErrIntConversion = errors.New("int conversion")
)
