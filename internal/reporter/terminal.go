package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/pthm/publint/internal/quality"
	"github.com/pthm/publint/internal/risk"
	"github.com/pthm/publint/internal/ui"
	"github.com/pthm/publint/internal/validate"
)

// TerminalReporter renders results for human readers, with styling
// degraded automatically when output is not a TTY.
type TerminalReporter struct {
	w       io.Writer
	styles  *ui.Styles
	verbose bool
}

// NewTerminalReporter creates a new terminal reporter
func NewTerminalReporter(w io.Writer, styles *ui.Styles, verbose bool) *TerminalReporter {
	return &TerminalReporter{w: w, styles: styles, verbose: verbose}
}

// Report renders the report sections that are present
func (r *TerminalReporter) Report(report *Report) error {
	if report.Path != "" {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, r.styles.Header.Render(report.Path))
	}

	if report.Quality != nil {
		r.printQuality(report.Quality)
	}
	if report.Risk != nil {
		r.printRisk(report.Risk)
	}
	if report.Validation != nil {
		r.printValidation(report.Validation)
	}
	return nil
}

func (r *TerminalReporter) printQuality(score *quality.Score) {
	fmt.Fprintln(r.w)
	fmt.Fprintf(r.w, "%s %s\n", r.styles.Header.Render("Quality"),
		r.styles.ScoreStyle(float64(score.Overall)).Render(fmt.Sprintf("%d/100", score.Overall)))
	fmt.Fprintf(r.w, "  %s\n", r.styles.Subheader.Render(fmt.Sprintf(
		"readability %.0f  seo %.0f  humanness %.0f  structure %.0f  voice %.0f  (%d words)",
		score.Readability.Score, score.SEO.Score, score.Humanness.Score,
		score.Structure.Score, score.Voice.Score, score.WordCount())))

	for _, issue := range score.Issues {
		r.printIssue(issue)
	}

	if n := len(score.Suggestions); n > 0 {
		fmt.Fprintf(r.w, "  %s %d auto-fix suggestion(s) available, run publint fix\n",
			r.styles.Suggestion.Render(r.styles.IconSuggestion), n)
	}

	r.printSummary(score)
}

func (r *TerminalReporter) printIssue(issue quality.Issue) {
	var style = r.styles.Info
	icon := r.styles.IconInfo
	switch issue.Severity {
	case quality.SeverityError:
		style = r.styles.Error
		icon = r.styles.IconError
	case quality.SeverityWarning:
		style = r.styles.Warning
		icon = r.styles.IconWarning
	}

	location := ""
	if issue.Offset >= 0 {
		location = fmt.Sprintf(" @%d", issue.Offset)
	}

	fmt.Fprintf(r.w, "  %s %s%s %s\n",
		style.Render(icon),
		r.styles.Tag.Render("["+string(issue.Type)+"]"),
		r.styles.Location.Render(location),
		issue.Message)
	if r.verbose && issue.Suggestion != "" {
		fmt.Fprintf(r.w, "      %s\n", r.styles.Subheader.Render(issue.Suggestion))
	}
}

func (r *TerminalReporter) printRisk(a *risk.Assessment) {
	fmt.Fprintln(r.w)
	fmt.Fprintf(r.w, "%s %s (score %d)\n",
		r.styles.Header.Render("Risk"),
		r.styles.LevelStyle(string(a.Level)).Render(string(a.Level)), a.Score)
	fmt.Fprintf(r.w, "  %s\n", r.styles.Subheader.Render(fmt.Sprintf(
		"ai %d/40  compliance %d/30  quality %d/20  structure %d/10",
		a.Factors.AIDetectionRisk, a.Factors.ComplianceViolations,
		a.Factors.QualityDeficits, a.Factors.StructuralIssues)))

	for _, bi := range a.BlockingIssues {
		fmt.Fprintf(r.w, "  %s %s %s\n",
			r.styles.Error.Render(r.styles.IconError),
			r.styles.Tag.Render("["+bi.Category+"]"),
			bi.Message)
		fmt.Fprintf(r.w, "      %s\n", r.styles.Subheader.Render(bi.Resolution))
	}

	if r.verbose {
		for _, rec := range a.Recommendations {
			fmt.Fprintf(r.w, "  %s %s (%s, ~%d points)\n",
				r.styles.Suggestion.Render(r.styles.IconSuggestion),
				rec.Message, rec.Priority, rec.Improvement)
		}
	}

	if a.AutoPublishEligible {
		fmt.Fprintf(r.w, "  %s eligible for auto-publish\n", r.styles.Success.Render(r.styles.IconSuccess))
	} else {
		fmt.Fprintf(r.w, "  %s not eligible for auto-publish\n", r.styles.Error.Render(r.styles.IconError))
	}
}

func (r *TerminalReporter) printValidation(result *validate.Result) {
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.styles.Header.Render("Pre-publish checks"))

	for _, check := range result.Checks {
		if check.Status == validate.StatusSkipped && !r.verbose {
			continue
		}

		var style = r.styles.Info
		icon := r.styles.IconInfo
		switch check.Status {
		case validate.StatusPass:
			style = r.styles.Success
			icon = r.styles.IconSuccess
		case validate.StatusFail:
			style = r.styles.Error
			icon = r.styles.IconError
		case validate.StatusWarning:
			style = r.styles.Warning
			icon = r.styles.IconWarning
		case validate.StatusSkipped:
			style = r.styles.Subheader
			icon = "-"
		}

		blocking := ""
		if check.IsBlocking && check.Status == validate.StatusFail {
			blocking = " (blocking)"
		}
		fmt.Fprintf(r.w, "  %s %s %s%s\n",
			style.Render(icon), r.styles.Tag.Render("["+check.ID+"]"), check.Message, blocking)
	}

	fmt.Fprintln(r.w)
	if result.CanPublish {
		fmt.Fprintf(r.w, "%s ready to publish (%d passed, %d warnings)\n",
			r.styles.Success.Render(r.styles.IconSuccess), result.Passed, result.Warnings)
	} else {
		fmt.Fprintf(r.w, "%s cannot publish (%d failed)\n",
			r.styles.Error.Render(r.styles.IconError), result.Failed)
	}
}

func (r *TerminalReporter) printSummary(score *quality.Score) {
	summary := ComputeSummary(score)
	if summary.TotalIssues == 0 {
		fmt.Fprintf(r.w, "  %s no issues found\n", r.styles.Success.Render(r.styles.IconSuccess))
		return
	}

	parts := []string{}
	if summary.Errors > 0 {
		parts = append(parts, r.styles.Error.Render(fmt.Sprintf("%d errors", summary.Errors)))
	}
	if summary.Warnings > 0 {
		parts = append(parts, r.styles.Warning.Render(fmt.Sprintf("%d warnings", summary.Warnings)))
	}
	if summary.Infos > 0 {
		parts = append(parts, r.styles.Info.Render(fmt.Sprintf("%d info", summary.Infos)))
	}
	fmt.Fprintf(r.w, "  %d issue(s): %s\n", summary.TotalIssues, strings.Join(parts, ", "))
}
