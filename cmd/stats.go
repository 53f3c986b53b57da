package cmd

import (
	"context"
	"fmt"
	"strings"

	"taskdeck/internal/store"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics from the event log",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		repo := s.EventRepo()

		total, err := repo.AwardTotal(ctx, "")
		if err != nil {
			return fmt.Errorf("sum awards: %w", err)
		}
		quizStats, err := repo.QuizTotals(ctx)
		if err != nil {
			return fmt.Errorf("sum quiz rounds: %w", err)
		}

		fmt.Println("Totals")
		fmt.Println(strings.Repeat("─", 48))
		fmt.Printf("%-24s %d\n", "Experience awarded", total)
		fmt.Printf("%-24s %d\n", "Quiz rounds", quizStats.Rounds)
		if quizStats.Rounds > 0 {
			fmt.Printf("%-24s %d (%d%%)\n", "Quiz correct",
				quizStats.Correct, quizStats.Correct*100/quizStats.Rounds)
			fmt.Printf("%-24s %d\n", "Quiz timed out", quizStats.TimedOut)
			fmt.Printf("%-24s %d\n", "Fallback questions", quizStats.Fallbacks)
		}

		awards, err := repo.QueryAwards(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query awards: %w", err)
		}
		if len(awards) == 0 {
			return nil
		}

		fmt.Println()
		fmt.Println("Recent Awards")
		fmt.Println(strings.Repeat("─", 48))
		fmt.Printf("%-19s  %-6s  %-14s  %s\n", "Timestamp", "Slide", "Reason", "XP")
		for _, a := range awards {
			fmt.Printf("%-19s  %-6d  %-14s  +%d\n",
				a.Timestamp.Local().Format("2006-01-02 15:04:05"),
				a.SlideID, a.Reason, a.Amount)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 10, "Number of recent awards to show")
}
