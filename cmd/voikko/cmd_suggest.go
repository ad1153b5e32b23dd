package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newSuggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest [words...]",
		Short: "Suggest correct spellings for misspelled words",
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
				suggestions, err := v.Suggest(word)
				if err != nil {
					return err
				}
				if len(suggestions) == 0 {
					fmt.Printf("%s: (no suggestions)\n", word)
					continue
				}
				fmt.Printf("%s: %s\n", word, strings.Join(suggestions, ", "))
			}
			return nil
		},
	}
}
