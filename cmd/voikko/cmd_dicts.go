package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tekstikone/voikko"
)

func newDictsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dicts",
		Short: "List installed dictionaries",
		RunE: func(cmd *cobra.Command, args []string) error {
			dicts, err := voikko.ListDictionaries(dictPath)
			if err != nil {
				return err
			}
			if len(dicts) == 0 {
				fmt.Println("no dictionaries found")
				return nil
			}
			for _, d := range dicts {
				tag := d.Language
				if d.Script != "" {
					tag += "-" + d.Script
				}
				if d.Variant != "" {
					tag += "-x-" + d.Variant
				}
				fmt.Printf("%-24s %s\n", tag, d.Description)
			}
			return nil
		},
	}
}
