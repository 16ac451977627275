// Package colorconv provides fallible conversions from integer sequences
// to validated RGB colors.
//
// A Color holds three 8-bit channels and can only be built through the
// conversion entry points, so an observable Color always has all channels
// in [0,255].
//
// # Quick Start
//
// From a triple of signed 16-bit values:
//
//	c, err := colorconv.FromTriple(183, 65, 14)
//
// From a fixed array of any integer type:
//
//	c, err := colorconv.FromArray([3]int{183, 65, 14})
//
// From a slice, whose length is validated at runtime:
//
//	c, err := colorconv.FromSlice([]int32{183, 65, 14})
//
// # Errors
//
// Failures are classified with errors.Is against two sentinels:
//
//   - ErrBadLength: a slice input did not contain exactly three values.
//     Length is checked before any value, so a long slice of in-range
//     values still reports ErrBadLength.
//   - ErrIntConversion: at least one value is outside [0,255].
//
// Conversions never panic on invalid input; every failure is an error
// value returned to the caller.
package colorconv
