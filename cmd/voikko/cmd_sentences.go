package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSentencesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sentences [text]",
		Short: "Split text into sentences",
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
			sentences, err := v.Sentences(text)
			if err != nil {
				return err
			}
			for _, s := range sentences {
				fmt.Printf("%-10s %q\n", s.NextStartType, s.Text)
			}
			return nil
		},
	}
}
