package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pthm/publint/internal/config"
	"github.com/pthm/publint/internal/quality"
	"github.com/pthm/publint/internal/reporter"
	"github.com/pthm/publint/internal/ui"
)

var checkKeyword string

var checkCmd = &cobra.Command{
	Use:   "check [file...]",
	Short: "Score articles for quality",
	Long: `Run the quality analyzers over one or more articles and report the
aggregate score, issues, and auto-fix suggestions.

Examples:
  publint check draft.md
  publint check --keyword "content strategy" draft.md
  publint check --format json draft.md > report.json`,
	Args:         cobra.MinimumNArgs(1),
	RunE:         runCheck,
	SilenceUsage: true,
}

func init() {
	checkCmd.Flags().StringVarP(&checkKeyword, "keyword", "k", "", "Primary keyword (overrides config and frontmatter)")
	RootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
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
	errors := 0
	for _, path := range args {
		progress.ArticleStart(path)

		article, err := loadArticle(path)
		if err != nil {
			return err
		}

		qcfg := withArticleKeywords(cfg.QualityConfig(), article)
		if checkKeyword != "" {
			qcfg.PrimaryKeyword = checkKeyword
		}

		score, err := quality.Analyze(article.Content, qcfg)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		errors += score.ErrorCount()

		progress.ArticleDone()

		if err := rep.Report(&reporter.Report{Path: path, Quality: score}); err != nil {
			return err
		}
	}

	progress.Done(nil)
	progress = nil

	if errors > 0 {
		return fmt.Errorf("%d quality error(s) found", errors)
	}
	return nil
}

// newReporter picks the reporter for the active format flag.
func newReporter(u *ui.UI) reporter.Reporter {
	if u.IsJSON() {
		return reporter.NewJSONReporter(os.Stdout)
	}
	return reporter.NewTerminalReporter(os.Stdout, u.Styles, verbose)
}
