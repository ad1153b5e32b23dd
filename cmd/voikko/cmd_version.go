package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tekstikone/voikko"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the linked engine library version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(voikko.Version())
		},
	}
}
