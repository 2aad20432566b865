// Package fixer applies auto-fix suggestions to content by byte span.
// Application is pure: the caller decides what to do with the rewritten
// content (write it back, diff it, print it).
package fixer

import (
	"sort"
	"strings"

	"github.com/pthm/publint/internal/quality"
)

// Skip reasons reported for suggestions that were not applied.
const (
	SkipLowConfidence = "confidence below threshold"
	SkipInvalidSpan   = "span outside content bounds"
	SkipStaleSpan     = "content at span no longer matches"
	SkipOverlap       = "span overlaps an earlier fix"
)

// Skipped pairs a suggestion with the reason it was not applied.
type Skipped struct {
	Suggestion quality.Suggestion
	Reason     string
}

// Result is the outcome of applying suggestions to one piece of
// content.
type Result struct {
	Content string
	Applied []quality.Suggestion
	Skipped []Skipped
}

// Changed reports whether any suggestion was applied.
func (r Result) Changed() bool {
	return len(r.Applied) > 0
}

// Apply rewrites content with every suggestion at or above the
// confidence threshold. Spans are validated against the exact input:
// a suggestion whose span no longer contains its original text is
// skipped rather than corrupting the content. Overlapping spans are
// resolved first-come by offset. A threshold <= 0 uses the
// recommended floor.
func Apply(content string, suggestions []quality.Suggestion, minConfidence int) Result {
	if minConfidence <= 0 {
		minConfidence = quality.RecommendedMinConfidence
	}

	ordered := make([]quality.Suggestion, len(suggestions))
	copy(ordered, suggestions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Start < ordered[j].Start
	})

	result := Result{}
	var sb strings.Builder
	cursor := 0

	for _, s := range ordered {
		switch {
		case s.Confidence < minConfidence:
			result.Skipped = append(result.Skipped, Skipped{s, SkipLowConfidence})
			continue
		case s.Start < 0 || s.End > len(content) || s.Start >= s.End:
			result.Skipped = append(result.Skipped, Skipped{s, SkipInvalidSpan})
			continue
		case content[s.Start:s.End] != s.Original:
			result.Skipped = append(result.Skipped, Skipped{s, SkipStaleSpan})
			continue
		case s.Start < cursor:
			result.Skipped = append(result.Skipped, Skipped{s, SkipOverlap})
			continue
		}

		sb.WriteString(content[cursor:s.Start])
		sb.WriteString(s.Replacement)
		cursor = s.End
		result.Applied = append(result.Applied, s)
	}
	sb.WriteString(content[cursor:])

	result.Content = sb.String()
	return result
}
