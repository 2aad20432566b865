package quality

import (
	"fmt"
	"strings"

	"github.com/pthm/publint/internal/analyzer"
)

// suggestionConfidence is the fixed confidence of dictionary-driven
// replacements.
const suggestionConfidence = 80

// collectSuggestions matches the cliché replacement dictionary against
// the original content and emits one suggestion per occurrence, with
// byte offsets into that exact input. Table order then offset order
// keeps output deterministic.
func collectSuggestions(content string) []Suggestion {
	lower := strings.ToLower(content)

	var suggestions []Suggestion
	for _, p := range analyzer.ClichePatterns {
		if p.Replacement == "" {
			continue
		}
		from := 0
		for {
			i := strings.Index(lower[from:], p.Phrase)
			if i < 0 {
				break
			}
			start := from + i
			end := start + len(p.Phrase)
			suggestions = append(suggestions, Suggestion{
				IssueType:   IssueAIDetected,
				Original:    content[start:end],
				Replacement: p.Replacement,
				Start:       start,
				End:         end,
				Confidence:  suggestionConfidence,
				Explanation: fmt.Sprintf("%q is a common AI-generated filler; %q reads more naturally", p.Phrase, p.Replacement),
			})
			from = end
		}
	}
	return suggestions
}

// hasReplacement reports whether the cliché table carries a
// replacement for the phrase.
func hasReplacement(phrase string) bool {
	for _, p := range analyzer.ClichePatterns {
		if p.Phrase == phrase {
			return p.Replacement != ""
		}
	}
	return false
}
