package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [text]",
		Short: "Split text into tokens",
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
			tokens, err := v.Tokens(text)
			if err != nil {
				return err
			}
			for _, tok := range tokens {
				fmt.Printf("%-12s %q\n", tok.Kind, tok.Text)
			}
			return nil
		},
	}
}
