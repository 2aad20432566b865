package reporter

import (
	"github.com/pthm/publint/internal/quality"
	"github.com/pthm/publint/internal/risk"
	"github.com/pthm/publint/internal/validate"
)

// Report bundles the results of one analysis run. Sections the run did
// not produce stay nil and are omitted from output.
type Report struct {
	Path       string           `json:"path"`
	Quality    *quality.Score   `json:"quality,omitempty"`
	Risk       *risk.Assessment `json:"risk,omitempty"`
	Validation *validate.Result `json:"validation,omitempty"`
}

// Reporter defines the interface for outputting analysis results
type Reporter interface {
	// Report outputs the analysis results
	Report(r *Report) error
}

// Summary holds summary statistics for a run
type Summary struct {
	TotalIssues int
	Errors      int
	Warnings    int
	Infos       int
	Suggestions int
}

// ComputeSummary computes summary statistics from a quality score
func ComputeSummary(score *quality.Score) Summary {
	if score == nil {
		return Summary{}
	}

	s := Summary{
		TotalIssues: len(score.Issues),
		Suggestions: len(score.Suggestions),
	}
	for _, issue := range score.Issues {
		switch issue.Severity {
		case quality.SeverityError:
			s.Errors++
		case quality.SeverityWarning:
			s.Warnings++
		case quality.SeverityInfo:
			s.Infos++
		}
	}
	return s
}
