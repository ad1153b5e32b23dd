package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tekstikone/voikko"
	"github.com/tekstikone/voikko/engine"
)

var (
	language string
	dictPath string
	verbose  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "voikko",
		Short: "Spell checking, hyphenation and grammar tools for Finnish and other languages",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger, err := zap.NewDevelopment()
				if err != nil {
					fmt.Fprintf(os.Stderr, "logger: %v\n", err)
					return
				}
				voikko.SetLogger(logger)
				engine.SetLogger(logger)
			}
		},
	}
	rootCmd.PersistentFlags().StringVarP(&language, "language", "l", "fi", "BCP 47 language tag for the session")
	rootCmd.PersistentFlags().StringVarP(&dictPath, "path", "p", "", "extra dictionary search directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log engine activity")

	rootCmd.AddCommand(newSpellCmd())
	rootCmd.AddCommand(newSuggestCmd())
	rootCmd.AddCommand(newHyphenateCmd())
	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newSentencesCmd())
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newGrammarCmd())
	rootCmd.AddCommand(newDictsCmd())
	rootCmd.AddCommand(newLanguagesCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newInteractiveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openSession creates a session from the global flags.
func openSession() (*voikko.Voikko, error) {
	var opts []voikko.Option
	if dictPath != "" {
		opts = append(opts, voikko.WithDictionaryPath(dictPath))
	}
	return voikko.New(language, opts...)
}

// wordArgs returns args as the word list, or one word per line from
// stdin when no args were given.
func wordArgs(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var words []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		for _, w := range strings.Fields(scanner.Text()) {
			words = append(words, w)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return words, nil
}

// textArg returns the args joined with spaces, or all of stdin when no
// args were given.
func textArg(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}
