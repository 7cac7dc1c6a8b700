// oddword is a terminal word-spotting game: every stage shows a grid of
// identical words with one impostor, and you have to tap it before the
// timer runs out.
//
// Usage:
//
//	oddword play              - Play the game
//	oddword results           - Show recorded runs
//	oddword words             - List the word catalog
//	oddword serve             - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible rounds
//	--db <path>     - Set database path (default: ~/.oddword/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "oddword",
	Short: "Oddword - Spot the one word that differs",
	Long: `Oddword is a terminal puzzle game. Each stage fills the screen with
copies of the same word plus exactly one impostor that differs by a
single letter. Find and tap the impostor before time runs out.

Available commands:
  play     - Play the game
  results  - View recorded runs
  words    - List the word catalog
  serve    - Start SSH server for remote play

Examples:
  oddword play
  oddword play --words ./my-words.yaml
  oddword results
  oddword serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.oddword/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(serveCmd)
}
