package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHyphenateCmd() *cobra.Command {
	var (
		separator      string
		showPattern    bool
		native         bool
		contextChanges bool
	)

	cmd := &cobra.Command{
		Use:   "hyphenate [words...]",
		Short: "Show hyphenation points of words",
		Long: `Hyphenate each word with the separator inserted at every break
point. With --pattern the raw hyphenation mask is printed instead.
With --native the hyphenated form is produced by the engine itself,
which needs libvoikko 4.2.0 or later.`,
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
				var out string
				switch {
				case showPattern:
					out, err = v.Hyphens(word)
				case native:
					out, err = v.InsertHyphens(word, separator, contextChanges)
				default:
					out, err = v.Hyphenate(word, separator)
				}
				if err != nil {
					return err
				}
				fmt.Printf("%s: %s\n", word, out)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&separator, "separator", "s", "-", "string inserted at hyphenation points")
	cmd.Flags().BoolVar(&showPattern, "pattern", false, "print the raw hyphenation mask")
	cmd.Flags().BoolVar(&native, "native", false, "let the engine insert the separators")
	cmd.Flags().BoolVar(&contextChanges, "context-changes", false, "allow spelling changes around break points (with --native)")
	return cmd
}
