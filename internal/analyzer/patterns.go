package analyzer

import (
	"encoding/json"
	"fmt"
)

// PatternSeverity weights an AI-cliché pattern. The weights feed the
// humanness score and the risk assessor's AI-detection factor.
type PatternSeverity int

const (
	SeverityLow PatternSeverity = iota
	SeverityMedium
	SeverityHigh
)

func (s PatternSeverity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// MarshalJSON renders the severity as its tier name.
func (s PatternSeverity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON parses a severity tier name.
func (s *PatternSeverity) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "low":
		*s = SeverityLow
	case "medium":
		*s = SeverityMedium
	case "high":
		*s = SeverityHigh
	default:
		return fmt.Errorf("unknown pattern severity %q", name)
	}
	return nil
}

// Weight returns the scoring weight for the severity tier.
func (s PatternSeverity) Weight() int {
	switch s {
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 4
	default:
		return 1
	}
}

// ClichePattern is one entry in the AI-cliché table: the phrase to
// match (case-insensitive), its severity tier, and an optional
// replacement used to generate auto-fix suggestions.
type ClichePattern struct {
	Phrase      string
	Severity    PatternSeverity
	Replacement string
}

// ClichePatterns is the fixed table of AI-tell phrases. Extending the
// detector means adding a row here; no analyzer control flow changes.
var ClichePatterns = []ClichePattern{
	{Phrase: "delve into", Severity: SeverityHigh, Replacement: "explore"},
	{Phrase: "let's explore", Severity: SeverityHigh, Replacement: "consider"},
	{Phrase: "in today's fast-paced world", Severity: SeverityHigh, Replacement: "today"},
	{Phrase: "it's important to note that", Severity: SeverityHigh, Replacement: "note that"},
	{Phrase: "in the ever-evolving landscape", Severity: SeverityHigh, Replacement: "as things change"},
	{Phrase: "unlock the potential", Severity: SeverityHigh, Replacement: "make the most"},
	{Phrase: "a testament to", Severity: SeverityHigh, Replacement: "proof of"},
	{Phrase: "game-changer", Severity: SeverityMedium, Replacement: "major shift"},
	{Phrase: "revolutionize", Severity: SeverityMedium, Replacement: "transform"},
	{Phrase: "seamlessly", Severity: SeverityMedium, Replacement: "smoothly"},
	{Phrase: "in conclusion", Severity: SeverityMedium, Replacement: "finally"},
	{Phrase: "furthermore", Severity: SeverityLow, Replacement: ""},
	{Phrase: "moreover", Severity: SeverityLow, Replacement: ""},
	{Phrase: "leverage", Severity: SeverityMedium, Replacement: "use"},
	{Phrase: "robust", Severity: SeverityLow, Replacement: "strong"},
	{Phrase: "dive deep", Severity: SeverityMedium, Replacement: "look closely"},
	{Phrase: "embark on a journey", Severity: SeverityHigh, Replacement: "start"},
	{Phrase: "navigate the complexities", Severity: SeverityHigh, Replacement: "work through"},
	{Phrase: "at the end of the day", Severity: SeverityLow, Replacement: "ultimately"},
	{Phrase: "harness the power", Severity: SeverityHigh, Replacement: "use"},
	{Phrase: "treasure trove", Severity: SeverityMedium, Replacement: "wealth"},
	{Phrase: "whether you're a beginner or", Severity: SeverityMedium, Replacement: "at any level,"},
	{Phrase: "look no further", Severity: SeverityMedium, Replacement: ""},
	{Phrase: "elevate your", Severity: SeverityMedium, Replacement: "improve your"},
	{Phrase: "the world of", Severity: SeverityLow, Replacement: ""},
}

// idiomPhrases are informal idioms counted as human signals.
var idiomPhrases = []string{
	"piece of cake",
	"hit the nail on the head",
	"cut corners",
	"off the top of my head",
	"long story short",
	"under the weather",
	"back to the drawing board",
	"spill the beans",
	"break the ice",
	"on the same page",
	"a grain of salt",
	"out of the blue",
	"for what it's worth",
	"easier said than done",
	"the elephant in the room",
}

// personalPronouns mark first/second-person presence.
var personalPronouns = map[string]bool{
	"i": true, "me": true, "my": true, "mine": true, "myself": true,
	"we": true, "us": true, "our": true, "ours": true,
	"you": true, "your": true, "yours": true, "yourself": true,
}
