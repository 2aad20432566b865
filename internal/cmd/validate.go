package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pthm/publint/internal/config"
	"github.com/pthm/publint/internal/quality"
	"github.com/pthm/publint/internal/reporter"
	"github.com/pthm/publint/internal/ui"
	"github.com/pthm/publint/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file...]",
	Short: "Run the pre-publish checklist",
	Long: `Run the independent pre-publish checklist over one or more articles:
content metadata, quality thresholds, SEO signals, and compliance.

The command exits non-zero when any article cannot publish.

Examples:
  publint validate draft.md
  publint validate --format json draft.md`,
	Args:         cobra.MinimumNArgs(1),
	RunE:         runValidate,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	u := GetUI()

	progress := u.StartProgress()
	defer func() {
		if progress != nil {
			progress.Done(nil)
		}
	}()

	progress.SetStage(ui.StageLoadConfig)
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	progress.SetStage(ui.StageAnalyze)
	progress.SetArticleCount(len(args))

	rep := newReporter(u)
	unpublishable := 0
	for _, path := range args {
		progress.ArticleStart(path)

		article, err := loadArticle(path)
		if err != nil {
			return err
		}

		qcfg := withArticleKeywords(cfg.QualityConfig(), article)
		score, err := quality.Analyze(article.Content, qcfg)
		if err != nil {
			// Validation still runs without a score; the missing
			// prerequisite surfaces as its own blocking check.
			fmt.Fprintln(os.Stderr, u.Styles.Warning.Render(
				fmt.Sprintf("%s quality analysis failed for %s: %v", u.Styles.IconWarning, path, err)))
			score = nil
		}

		result, err := validate.Run(article, score, cfg.ValidationConfig())
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if !result.CanPublish {
			unpublishable++
		}

		progress.ArticleDone()

		if err := rep.Report(&reporter.Report{Path: path, Validation: result}); err != nil {
			return err
		}
	}

	progress.Done(nil)
	progress = nil

	if unpublishable > 0 {
		return fmt.Errorf("%d article(s) cannot publish", unpublishable)
	}
	return nil
}
