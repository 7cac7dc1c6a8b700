package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/oddword/internal/config"
)

var flagWordsFile string

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "List the word catalog",
	Long: `Shows every word pair in the catalog. Loading a catalog also
validates it, so this doubles as a check for custom word files.

Examples:
  oddword words
  oddword words --words ./my-words.yaml`,
	Run: runWords,
}

func init() {
	wordsCmd.Flags().StringVar(&flagWordsFile, "words", "", "Path to custom word catalog YAML")
}

func runWords(cmd *cobra.Command, args []string) {
	catalog, err := config.LoadWords(flagWordsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	pairs := catalog.Pairs()

	fmt.Printf("Word catalog (%d pairs):\n", len(pairs))
	fmt.Println()

	// Calculate column width
	maxLen := 7 // "Correct" header
	for _, p := range pairs {
		if len(p.Correct) > maxLen {
			maxLen = len(p.Correct)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxLen, "Correct", "Decoy")
	fmt.Printf("  %-*s  %s\n", maxLen, "-------", "-----")

	for _, p := range pairs {
		fmt.Printf("  %-*s  %s\n", maxLen, p.Correct, p.Decoy)
	}

	fmt.Println()
	fmt.Println("All pairs valid: equal length, exactly one letter differs.")
}
