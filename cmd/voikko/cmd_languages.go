package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tekstikone/voikko"
)

func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List languages with spelling, hyphenation and grammar support",
		RunE: func(cmd *cobra.Command, args []string) error {
			sections := []struct {
				name string
				list func(string) ([]string, error)
			}{
				{"spelling", voikko.SupportedSpellingLanguages},
				{"hyphenation", voikko.SupportedHyphenationLanguages},
				{"grammar", voikko.SupportedGrammarCheckingLanguages},
			}
			for _, s := range sections {
				tags, err := s.list(dictPath)
				if err != nil {
					return err
				}
				if len(tags) == 0 {
					fmt.Printf("%-12s (none)\n", s.name)
					continue
				}
				fmt.Printf("%-12s %s\n", s.name, strings.Join(tags, " "))
			}
			return nil
		},
	}
}
