package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [words...]",
		Short: "Show the morphological readings of words",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := openSession()
			if err != nil {
				return err
			}
			defer v.Close()

			words, err := wordArgs(args)
			if err != nil {
				return err
			}
			for _, word := range words {
				readings, err := v.Analyze(word)
				if err != nil {
					return err
				}
				if len(readings) == 0 {
					fmt.Printf("%s: (no readings)\n", word)
					continue
				}
				for i, reading := range readings {
					fmt.Printf("%s, reading %d:\n", word, i+1)
					keys := make([]string, 0, len(reading))
					for k := range reading {
						keys = append(keys, k)
					}
					sort.Strings(keys)
					for _, k := range keys {
						fmt.Printf("  %s = %s\n", k, reading[k])
					}
				}
			}
			return nil
		},
	}
}
