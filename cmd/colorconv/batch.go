package main

import (
	"fmt"
	"os"

	"github.com/hupe1980/colorconv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// batchEntry is one conversion request read from the YAML input.
type batchEntry struct {
	Name     string  `yaml:"name"`
	Channels []int64 `yaml:"channels"`
}

var batchFile string

// batchCmd converts every channel triple listed in a YAML file. Entries
// that fail are reported individually; the command itself only fails on
// unreadable or malformed input files.
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Convert channel triples listed in a YAML file",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(batchFile)
		if err != nil {
			return err
		}

		var entries []batchEntry
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return fmt.Errorf("parse %s: %w", batchFile, err)
		}

		logger := newLogger()
		for _, e := range entries {
			name := e.Name
			if name == "" {
				name = fmt.Sprintf("%v", e.Channels)
			}

			c, err := colorconv.FromSlice(e.Channels)
			logger.LogConversion("slice", c, err)
			if err != nil {
				fmt.Printf("%s: error: %v\n", name, err)
				continue
			}
			fmt.Printf("%s: %s %s\n", name, c, c.Hex())
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVarP(&batchFile, "file", "f", "colors.yaml", "YAML file with channel triples")
	rootCmd.AddCommand(batchCmd)
}
