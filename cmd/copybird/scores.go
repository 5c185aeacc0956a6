package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/copybird/internal/config"
	"github.com/vovakirdan/copybird/internal/platform/tui"
	"github.com/vovakirdan/copybird/internal/storage"
)

var (
	flagPlain bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show high scores",
	Long: `Browse the high scores for each difficulty.

With --plain the top 10 scores of one difficulty are printed instead.
With --clear every score of the named difficulty is deleted.

Examples:
  copybird scores
  copybird scores hard
  copybird scores easy --plain
  copybird scores hard --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print the table instead of opening the browser")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the scores of the given difficulty")
}

func runScores(cmd *cobra.Command, args []string) {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	d, err := difficultyFlag(name, config.Default())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagClear && name == "" {
		fmt.Fprintln(os.Stderr, "Error: --clear needs a difficulty, e.g. 'copybird scores hard --clear'")
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	switch {
	case flagClear:
		err = clearScores(os.Stdout, store, d)
	case flagPlain:
		err = printScores(os.Stdout, store, d)
	default:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		err = tui.RunScoreboard(store, d, width, height)
	}

	// Close store before potential exit
	store.Close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func clearScores(w io.Writer, store *storage.Store, d config.Difficulty) error {
	if err := store.ClearScores(d); err != nil {
		return err
	}
	fmt.Fprintf(w, "Cleared %s scores.\n", d)
	return nil
}

// printScores writes the top 10 of a difficulty with a stats footer.
func printScores(w io.Writer, store *storage.Store, d config.Difficulty) error {
	scores, err := store.TopScores(d, 10)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", d)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'copybird --difficulty %s' to set the first high score!\n", d)
		return nil
	}

	fmt.Fprintln(w, tui.RenderScoreTable(scores))
	fmt.Fprintln(w)

	stats, err := store.DifficultyStats(d)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Best: %d\n", stats.HighScore)
	fmt.Fprintln(w, tui.RenderStats(stats))
	return nil
}
