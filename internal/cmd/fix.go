package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pthm/publint/internal/config"
	"github.com/pthm/publint/internal/fixer"
	"github.com/pthm/publint/internal/quality"
)

var (
	dryRun        bool
	minConfidence int
)

var fixCmd = &cobra.Command{
	Use:   "fix [file...]",
	Short: "Apply auto-fix suggestions to articles",
	Long: `Rewrite articles in place using the quality analyzer's auto-fix
suggestions. Only suggestions at or above the confidence threshold are
applied; spans are validated against the file content before editing.

Examples:
  publint fix draft.md
  publint fix --dry-run draft.md
  publint fix --min-confidence 90 draft.md`,
	Args:         cobra.MinimumNArgs(1),
	RunE:         runFix,
	SilenceUsage: true,
}

func init() {
	fixCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show fixes without applying them")
	fixCmd.Flags().IntVar(&minConfidence, "min-confidence", quality.RecommendedMinConfidence,
		"Minimum suggestion confidence to apply")
	RootCmd.AddCommand(fixCmd)
}

func runFix(cmd *cobra.Command, args []string) error {
	u := GetUI()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	for _, path := range args {
		article, err := loadArticle(path)
		if err != nil {
			return err
		}

		qcfg := withArticleKeywords(cfg.QualityConfig(), article)
		score, err := quality.Analyze(article.Content, qcfg)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		result := fixer.Apply(article.Content, score.Suggestions, minConfidence)
		if !result.Changed() {
			fmt.Printf("%s %s: nothing to fix\n", u.Styles.Success.Render(u.Styles.IconSuccess), path)
			continue
		}

		for _, s := range result.Applied {
			verb := "Fixed"
			if dryRun {
				verb = "Would fix"
			}
			fmt.Printf("%s %s @%d: %q -> %q\n",
				u.Styles.Suggestion.Render(u.Styles.IconSuggestion),
				verb, s.Start, s.Original, s.Replacement)
		}
		if verbose {
			for _, s := range result.Skipped {
				fmt.Printf("  %s skipped %q: %s\n",
					u.Styles.Subheader.Render("-"), s.Suggestion.Original, s.Reason)
			}
		}

		if dryRun {
			continue
		}
		if err := os.WriteFile(path, []byte(result.Content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Printf("%s %s: applied %d fix(es)\n",
			u.Styles.Success.Render(u.Styles.IconSuccess), path, len(result.Applied))
	}

	return nil
}
