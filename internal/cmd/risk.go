package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pthm/publint/internal/config"
	"github.com/pthm/publint/internal/reporter"
	"github.com/pthm/publint/internal/risk"
	"github.com/pthm/publint/internal/ui"
)

var riskCmd = &cobra.Command{
	Use:   "risk [file...]",
	Short: "Assess publication risk",
	Long: `Score the risk of publishing one or more articles: AI-detection
exposure, compliance violations, quality deficits, and structural
issues, with hard blocking gates.

Examples:
  publint risk draft.md
  publint risk --format json draft.md`,
	Args:         cobra.MinimumNArgs(1),
	RunE:         runRisk,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(riskCmd)
}

func runRisk(cmd *cobra.Command, args []string) error {
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

	progress.SetStage(ui.StageAssess)

	rep := newReporter(u)
	blocked := 0
	for _, path := range args {
		article, err := loadArticle(path)
		if err != nil {
			return err
		}

		qcfg := withArticleKeywords(cfg.QualityConfig(), article)
		assessment, err := risk.Assess(article.Content, qcfg, cfg.RiskConfig())
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		blocked += len(assessment.BlockingIssues)

		report := &reporter.Report{Path: path, Risk: assessment}
		if verbose {
			report.Quality = assessment.Quality
		}
		if err := rep.Report(report); err != nil {
			return err
		}
	}

	progress.Done(nil)
	progress = nil

	if blocked > 0 {
		return fmt.Errorf("%d blocking issue(s) found", blocked)
	}
	return nil
}
