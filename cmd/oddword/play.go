package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/oddword/internal/config"
	"github.com/vovakirdan/oddword/internal/platform/tui"
	"github.com/vovakirdan/oddword/internal/storage"
)

var (
	flagConfig string
	flagWords  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game at the stage select screen.

Controls:
  W/A/S/D or arrows  - Move the cursor
  Enter/Space        - Tap the selected word
  T                  - Toggle easy/hard mode (stage select only)
  Tab                - Open the results board (stage select only)
  B/Esc              - Back to stage select
  Q/Ctrl+C           - Quit

Examples:
  oddword play
  oddword play --seed 42
  oddword play --config ./my-oddword.yaml
  oddword play --words ./my-words.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagWords, "words", "", "Path to custom word catalog YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	catalog, err := config.LoadWords(flagWords)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading word catalog: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early so the first frame is sized correctly
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := tui.RuntimeConfig{
		Width:  width,
		Height: height,
		Seed:   flagSeed,
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	// Loop between the game and the results board until the user quits.
	for {
		result, runErr := tui.RunGame(cfg, catalog, store, rt)
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			os.Exit(1)
		}

		if !result.WantsResults {
			return
		}

		rt.Width = result.Width
		rt.Height = result.Height

		back, resErr := tui.RunResults(store, rt.Width, rt.Height)
		if resErr != nil {
			fmt.Fprintf(os.Stderr, "Error showing results: %v\n", resErr)
			os.Exit(1)
		}
		if !back {
			return
		}
	}
}
