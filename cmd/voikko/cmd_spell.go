package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tekstikone/voikko"
)

func newSpellCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "spell [words...]",
		Short: "Check the spelling of words",
		Long: `Check the spelling of each word and print its verdict.
Words are read from stdin, one per line, when none are given.`,
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
				result, err := v.Spell(word)
				if err != nil {
					return err
				}
				if quiet {
					if result != voikko.SpellOk {
						fmt.Println(word)
					}
					continue
				}
				fmt.Printf("%s: %s\n", word, result)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only misspelled words")
	return cmd
}
