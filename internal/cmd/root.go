package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pthm/publint/internal/ui"
)

var (
	// Global flags
	verbose    bool
	format     string
	configPath string
)

var RootCmd = &cobra.Command{
	Use:   "publint",
	Short: "A pre-publish linter for written content",
	Long: `publint scores articles for linguistic quality and publication risk
before they go live.

It runs five heuristic analyzers (readability, SEO, humanness,
structure, voice) over markdown content, aggregates them into a single
quality score with auto-fix suggestions, layers compliance and
severity signals into a risk assessment, and runs an independent
pre-publish checklist.`,
}

func Execute() error {
	return RootCmd.Execute()
}

var sharedUI *ui.UI

// GetUI returns the process-wide UI, constructed on first use so flag
// parsing has already happened.
func GetUI() *ui.UI {
	if sharedUI == nil {
		sharedUI = ui.New(os.Stdout, os.Stderr, format)
	}
	return sharedUI
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	RootCmd.PersistentFlags().StringVarP(&format, "format", "f", "terminal", "Output format (terminal, json)")
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to publint.yaml (default: search current directory)")
}
