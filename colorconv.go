package colorconv

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Integer is the set of integer types accepted by the generic conversion
// entry points.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Color is a validated RGB color. Channels are always in [0,255] once a
// Color has been constructed; the conversion entry points below are the
// only way to build one from untrusted values.
//
// Color is a comparable value type; use == for structural equality.
type Color struct {
	R uint8
	G uint8
	B uint8
}

var _ color.Color = Color{}

// channel narrows v to an 8-bit channel value.
func channel[T Integer](v T) (uint8, error) {
	if v < 0 || uint64(v) > math.MaxUint8 {
		return 0, fmt.Errorf("%w: value %v out of range", ErrIntConversion, v)
	}

	return uint8(v), nil
}

// FromTriple converts an (r, g, b) triple of signed 16-bit values into a
// Color.
//
// The conversion is all-or-nothing: if any component lies outside [0,255],
// the result is ErrIntConversion regardless of which component failed.
// ErrBadLength cannot occur for this form.
func FromTriple(r, g, b int16) (Color, error) {
	return FromArray([3]int16{r, g, b})
}

// FromArray converts a fixed three-element array into a Color, mapping
// elements positionally (0 to R, 1 to G, 2 to B). Any element outside
// [0,255] yields ErrIntConversion. The arity is fixed by the type, so
// ErrBadLength cannot occur.
func FromArray[T Integer](arr [3]T) (Color, error) {
	return FromSlice(arr[:])
}

// FromSlice converts a slice of integer values into a Color.
//
// The length is validated before any value: a slice that does not contain
// exactly three elements yields ErrBadLength even if every element is in
// range. Only then are the elements narrowed positionally to channels;
// any out-of-range element yields ErrIntConversion.
func FromSlice[T Integer](values []T) (Color, error) {
	if len(values) != 3 {
		return Color{}, fmt.Errorf("%w: got %d values, want 3", ErrBadLength, len(values))
	}

	var channels [3]uint8
	for i, v := range values {
		c, err := channel(v)
		if err != nil {
			return Color{}, err
		}
		channels[i] = c
	}

	return Color{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// Must returns c, panicking if err is non-nil. Intended for constants and
// tests with inputs known to be valid.
func Must(c Color, err error) Color {
	if err != nil {
		panic(fmt.Sprintf("colorconv: %v", err))
	}

	return c
}

// String returns a string representation of the Color.
func (c Color) String() string {
	return fmt.Sprintf("Color(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex returns the color as a lowercase "#rrggbb" string.
func (c Color) Hex() string {
	return c.Colorful().Hex()
}

// Colorful converts c to a go-colorful color with channels scaled to
// the [0,1] range, for color-space math and formatting.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// RGBA implements image/color.Color. The alpha channel is always fully
// opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}
