package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/copybird/internal/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List sprite themes",
	Long:  `Shows the sprite themes that can be picked with --theme or cycled in game with T.`,
	Run:   runThemes,
}

func runThemes(cmd *cobra.Command, args []string) {
	themes := theme.List()

	if len(themes) == 0 {
		fmt.Println("No themes available.")
		return
	}

	fmt.Println("Available themes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, t := range themes {
		if len(t.ID) > maxIDLen {
			maxIDLen = len(t.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, t := range themes {
		fmt.Printf("  %-*s  %s\n", maxIDLen, t.ID, t.Title)
	}

	fmt.Println()
	fmt.Println("Run 'copybird --theme <id>' to play with a theme.")
}
