package cmd

import (
	"fmt"
	"os"

	"taskdeck/internal/app"
	"taskdeck/internal/llm"
	"taskdeck/internal/quiz"
	"taskdeck/internal/store"
	"taskdeck/internal/tutor"

	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	opts := app.Options{
		EventRepo: eventRepo,
	}

	provider, configured, err := llm.NewProviderFromEnv(ctx, eventRepo)
	switch {
	case err != nil:
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Tutor replies and quiz questions fall back to built-in content.")
	case !configured:
		fmt.Fprintln(os.Stderr, "No API key found; tutor replies and quiz questions use built-in content.")
	default:
		opts.Responder = tutor.NewLLMResponder(provider)
		opts.Generator = quiz.New(provider, quiz.DefaultConfig())
	}

	return app.Run(opts)
}
