package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/oddword/internal/storage"
)

var flagResultsMode string

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show recorded runs",
	Long: `Display the top 10 runs for a mode, best stage first.

Examples:
  oddword results
  oddword results --mode hard`,
	Run: runResults,
}

func init() {
	resultsCmd.Flags().StringVar(&flagResultsMode, "mode", "easy", "Mode to show: easy or hard")
}

func runResults(cmd *cobra.Command, args []string) {
	mode := flagResultsMode
	if mode != "easy" && mode != "hard" {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q (use easy or hard)\n", mode)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns(mode, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Runs - %s mode\n", mode)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'oddword play' to record the first run!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-10s  %-8s  %s\n", "Rank", "Stage", "Outcome", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-10s  %-8s  %s\n", "----", "-----", "-------", "----", "----")

	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-10s  %-8s  %s\n",
			i+1, entry.StageReached, entry.Outcome,
			fmt.Sprintf("%ds", entry.DurationSecs), dateStr)
	}

	fmt.Println()
	best, err := store.BestStage(mode)
	if err == nil && best > 0 {
		fmt.Printf("Best stage: %d\n", best)
	}
}
