package cmd

import (
	"fmt"
	"strings"

	"taskdeck/internal/deck"

	"github.com/spf13/cobra"
)

var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "List the built-in slide deck",
	Run: func(cmd *cobra.Command, args []string) {
		catalog := deck.Default()

		fmt.Printf("%-4s  %-8s  %-22s  %s\n", "ID", "Kind", "Category", "Title")
		fmt.Println(strings.Repeat("─", 72))
		for _, s := range catalog.Slides() {
			fmt.Printf("%-4d  %-8s  %-22s  %s\n", s.ID, s.Kind, s.Category, s.Title)
		}
	},
}
