package cmd

import (
	"fmt"
	"os"

	"github.com/sidverma/skillgap/internal/app"
	"github.com/sidverma/skillgap/internal/llm"
	"github.com/sidverma/skillgap/internal/questiongen"
	"github.com/sidverma/skillgap/internal/report"
	"github.com/sidverma/skillgap/internal/store"
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

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Running with placeholder questions; the report will be unavailable.")
		// An empty mock fails every call, so the generator serves its
		// built-in question sets.
		provider = llm.NewMockProvider()
	}

	generator := questiongen.New(provider, questiongen.DefaultConfig())
	reporter := report.NewService(provider, report.DefaultConfig())

	return app.Run(generator, reporter)
}
