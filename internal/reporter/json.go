package reporter

import (
	"encoding/json"
	"io"

	"github.com/pthm/publint/internal/quality"
	"github.com/pthm/publint/internal/risk"
	"github.com/pthm/publint/internal/validate"
)

// JSONReporter outputs results as JSON
type JSONReporter struct {
	w io.Writer
}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

// JSONOutput represents the JSON output format. The quality section is
// the same schema the risk assessment embeds, so pipelines decode one
// shape regardless of command.
type JSONOutput struct {
	Path       string           `json:"path"`
	Quality    *quality.Score   `json:"quality,omitempty"`
	Risk       *risk.Assessment `json:"risk,omitempty"`
	Validation *validate.Result `json:"validation,omitempty"`
}

// Report outputs the report as indented JSON
func (r *JSONReporter) Report(report *Report) error {
	output := JSONOutput{
		Path:       report.Path,
		Quality:    report.Quality,
		Risk:       report.Risk,
		Validation: report.Validation,
	}

	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
