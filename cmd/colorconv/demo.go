package main

import (
	"fmt"

	"github.com/hupe1980/colorconv"
	"github.com/hupe1980/colorconv/stats"
	"github.com/spf13/cobra"
)

// demoCmd runs a fixed set of sample conversions. Failures are printed,
// never fatal; the command always exits 0.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the sample conversions",
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger()

		c, err := colorconv.FromTriple(183, 65, 14)
		logger.LogConversion("triple", c, err)
		report("triple (183, 65, 14)", c, err)

		c, err = colorconv.FromArray([3]int{183, 65, 14})
		logger.LogConversion("array", c, err)
		report("array [183, 65, 14]", c, err)

		c, err = colorconv.FromSlice([]int{183, 65, 14})
		logger.LogConversion("slice", c, err)
		report("slice [183, 65, 14]", c, err)

		c, err = colorconv.FromTriple(-1, 255, 255)
		logger.LogConversion("triple", c, err)
		report("triple (-1, 255, 255)", c, err)

		c, err = colorconv.FromSlice([]int{0, 0, 0, 0})
		logger.LogConversion("slice", c, err)
		report("slice [0, 0, 0, 0]", c, err)

		values := []float64{3.5, 0.3, 13.0, 11.7}
		fmt.Printf("mean of %v = %v\n", values, stats.Mean(values))
	},
}

// report prints one conversion outcome in a human-readable form.
func report(input string, c colorconv.Color, err error) {
	if err != nil {
		fmt.Printf("%-22s -> error: %v\n", input, err)
		return
	}
	fmt.Printf("%-22s -> %s %s\n", input, c, c.Hex())
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
