package quality

import (
	"encoding/json"
	"fmt"
)

// Severity grades an issue. Only errors gate publication; the rest is
// advisory.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalJSON renders the severity as its name.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON parses a severity name.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "info":
		*s = SeverityInfo
	case "warning":
		*s = SeverityWarning
	case "error":
		*s = SeverityError
	default:
		return fmt.Errorf("unknown severity %q", name)
	}
	return nil
}

// IssueType categorizes a quality issue.
type IssueType string

const (
	IssueReadability  IssueType = "readability"
	IssueSEO          IssueType = "seo"
	IssueAIDetected   IssueType = "ai_detected"
	IssueRepetition   IssueType = "repetition"
	IssueStructure    IssueType = "structure"
	IssueVoice        IssueType = "voice"
	IssueBannedPhrase IssueType = "banned_phrase"
	IssueLength       IssueType = "length"
)

// Issue is one finding derived from the sub-score thresholds. Offset
// is a character offset into the original content, or -1 when the
// issue has no single location.
type Issue struct {
	Type        IssueType `json:"type"`
	Severity    Severity  `json:"severity"`
	Message     string    `json:"message"`
	Offset      int       `json:"offset"`
	Suggestion  string    `json:"suggestion,omitempty"`
	AutoFixable bool      `json:"autoFixable"`
}

// Suggestion is a concrete replacement the caller can apply to the
// original content. Start and End are byte offsets into the exact
// input given to Analyze, so the edit applies without re-scanning.
type Suggestion struct {
	IssueType   IssueType `json:"issueType"`
	Original    string    `json:"original"`
	Replacement string    `json:"replacement"`
	Start       int       `json:"start"`
	End         int       `json:"end"`
	Confidence  int       `json:"confidence"`
	Explanation string    `json:"explanation"`
}

// RecommendedMinConfidence is the confidence floor below which
// suggestions should not be auto-applied.
const RecommendedMinConfidence = 70
