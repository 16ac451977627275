package colorconv_test

import (
	"errors"
	"fmt"

	"github.com/hupe1980/colorconv"
)

// ExampleFromTriple demonstrates converting a triple of signed values.
func ExampleFromTriple() {
	c, err := colorconv.FromTriple(183, 65, 14)
	if err != nil {
		panic(err)
	}

	fmt.Println(c)
	// Output: Color(183, 65, 14)
}

// ExampleFromArray demonstrates the fixed-arity generic form.
func ExampleFromArray() {
	c, err := colorconv.FromArray([3]int{183, 65, 14})
	if err != nil {
		panic(err)
	}

	fmt.Println(c.Hex())
	// Output: #b7410e
}

// ExampleFromSlice demonstrates runtime length validation.
func ExampleFromSlice() {
	c, err := colorconv.FromSlice([]int32{183, 65, 14})
	fmt.Println(c, err)

	_, err = colorconv.FromSlice([]int32{0, 0, 0, 0})
	fmt.Println(err)
	// Output:
	// Color(183, 65, 14) <nil>
	// bad length: got 4 values, want 3
}

// ExampleFromSlice_classify demonstrates classifying failures with errors.Is.
func ExampleFromSlice_classify() {
	_, err := colorconv.FromSlice([]int{-1, 255, 255})

	switch {
	case errors.Is(err, colorconv.ErrBadLength):
		fmt.Println("wrong number of channels")
	case errors.Is(err, colorconv.ErrIntConversion):
		fmt.Println("channel out of range")
	default:
		fmt.Println("ok")
	}
	// Output: channel out of range
}

// ExampleMust demonstrates building a color constant from trusted values.
func ExampleMust() {
	rust := colorconv.Must(colorconv.FromTriple(183, 65, 14))

	fmt.Println(rust.Hex())
	// Output: #b7410e
}
