package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newGrammarCmd() *cobra.Command {
	var explainLang string

	cmd := &cobra.Command{
		Use:   "grammar [text]",
		Short: "Check text for grammar errors",
		Long: `Check text for grammar errors. Positions are reported in Unicode
characters from the start of the text. Text should begin at a
paragraph or sentence boundary for sensible results.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := openSession()
			if err != nil {
				return err
			}
			defer v.Close()

			text, err := textArg(args)
			if err != nil {
				return err
			}
			found, err := v.GrammarErrors(text, explainLang)
			if err != nil {
				return err
			}
			if len(found) == 0 {
				fmt.Println("no grammar errors")
				return nil
			}
			for _, ge := range found {
				fmt.Printf("chars %d-%d [code %d]: %s\n",
					ge.StartPos, ge.StartPos+ge.Length, ge.Code, ge.Description)
				if len(ge.Suggestions) > 0 {
					fmt.Printf("  suggest: %s\n", strings.Join(ge.Suggestions, ", "))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&explainLang, "explain", "en", "language for error descriptions")
	return cmd
}
