package main

import (
	"fmt"
	"strconv"

	"github.com/hupe1980/colorconv"
	"github.com/spf13/cobra"
)

// convertCmd converts channel values given as arguments. The argument
// count is deliberately not constrained by cobra so that wrong-length
// inputs surface as the library's bad-length error.
var convertCmd = &cobra.Command{
	Use:   "convert R G B",
	Short: "Convert three channel values to an RGB color",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		values := make([]int64, 0, len(args))
		for _, arg := range args {
			v, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid channel value %q: %w", arg, err)
			}
			values = append(values, v)
		}

		c, err := colorconv.FromSlice(values)
		if err != nil {
			return err
		}

		fmt.Printf("%s %s\n", c, c.Hex())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
