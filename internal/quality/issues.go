package quality

import (
	"fmt"
	"strings"

	"github.com/pthm/publint/internal/analyzer"
)

// Fixed issue thresholds. These run in a deterministic order so that
// identical input yields identical issue ordering.
const (
	gradeLevelCeiling     = 12.0
	passiveVoiceCeiling   = 20.0
	sentenceLengthCeiling = 25.0
	repetitionCeiling     = 3
	varietyFloor          = 30.0
)

// collectIssues derives the issue list from the sub-score metrics.
func collectIssues(content string, s *Score, cfg Config) []Issue {
	issues := make([]Issue, 0, 8)

	// Readability thresholds.
	if s.Readability.GradeLevel > gradeLevelCeiling {
		issues = append(issues, Issue{
			Type:       IssueReadability,
			Severity:   SeverityWarning,
			Message:    fmt.Sprintf("grade level %.1f is above the %.0f ceiling", s.Readability.GradeLevel, gradeLevelCeiling),
			Offset:     -1,
			Suggestion: "shorten sentences and prefer simpler words",
		})
	}
	if s.Readability.PassiveVoicePct > passiveVoiceCeiling {
		issues = append(issues, Issue{
			Type:       IssueReadability,
			Severity:   SeverityWarning,
			Message:    fmt.Sprintf("%.0f%% of sentences use passive voice", s.Readability.PassiveVoicePct),
			Offset:     -1,
			Suggestion: "rewrite passive constructions in active voice",
		})
	}
	if s.Readability.AvgSentenceLength > sentenceLengthCeiling {
		issues = append(issues, Issue{
			Type:       IssueReadability,
			Severity:   SeverityWarning,
			Message:    fmt.Sprintf("average sentence length %.1f words is above %.0f", s.Readability.AvgSentenceLength, sentenceLengthCeiling),
			Offset:     -1,
			Suggestion: "split long sentences",
		})
	}

	// SEO thresholds apply only when a keyword is configured.
	if cfg.PrimaryKeyword != "" {
		if !s.SEO.KeywordInTitle {
			issues = append(issues, Issue{
				Type:       IssueSEO,
				Severity:   SeverityError,
				Message:    fmt.Sprintf("primary keyword %q missing from title", cfg.PrimaryKeyword),
				Offset:     -1,
				Suggestion: "work the keyword into the title naturally",
			})
		}
		if !s.SEO.KeywordInFirstParagraph {
			issues = append(issues, Issue{
				Type:       IssueSEO,
				Severity:   SeverityWarning,
				Message:    fmt.Sprintf("primary keyword %q missing from the first paragraph", cfg.PrimaryKeyword),
				Offset:     -1,
				Suggestion: "mention the keyword early",
			})
		}
		if s.SEO.KeywordDensity > 3 {
			issues = append(issues, Issue{
				Type:       IssueSEO,
				Severity:   SeverityError,
				Message:    fmt.Sprintf("keyword density %.1f%% reads as stuffing", s.SEO.KeywordDensity),
				Offset:     -1,
				Suggestion: "cut keyword repetitions; aim for 1-3%",
			})
		}
	}
	if !s.SEO.ValidHeadingHierarchy {
		issues = append(issues, Issue{
			Type:       IssueSEO,
			Severity:   SeverityWarning,
			Message:    "heading levels skip at least one level",
			Offset:     -1,
			Suggestion: "keep heading levels sequential",
		})
	}

	// Humanness thresholds.
	for _, m := range s.Humanness.Patterns {
		if m.Severity != analyzer.SeverityHigh {
			continue
		}
		offset := -1
		if len(m.Locations) > 0 {
			offset = m.Locations[0]
		}
		issues = append(issues, Issue{
			Type:        IssueAIDetected,
			Severity:    SeverityError,
			Message:     fmt.Sprintf("AI-tell phrase %q appears %d time(s)", m.Phrase, m.Count),
			Offset:      offset,
			Suggestion:  "rephrase in your own words",
			AutoFixable: hasReplacement(m.Phrase),
		})
	}
	if s.Humanness.RepetitivePhrases > repetitionCeiling {
		issues = append(issues, Issue{
			Type:       IssueRepetition,
			Severity:   SeverityWarning,
			Message:    fmt.Sprintf("%d three-word phrases repeat more than twice", s.Humanness.RepetitivePhrases),
			Offset:     -1,
			Suggestion: "vary the phrasing",
		})
	}
	if s.Humanness.VarietyIndex < varietyFloor {
		issues = append(issues, Issue{
			Type:       IssueRepetition,
			Severity:   SeverityWarning,
			Message:    fmt.Sprintf("sentence-length variety %.0f is below %.0f; lengths are too uniform", s.Humanness.VarietyIndex, varietyFloor),
			Offset:     -1,
			Suggestion: "mix short and long sentences",
		})
	}

	// Structure thresholds.
	if !s.Structure.HasIntroduction {
		issues = append(issues, Issue{
			Type:       IssueStructure,
			Severity:   SeverityWarning,
			Message:    "no substantial introduction paragraph",
			Offset:     -1,
			Suggestion: "open with a paragraph of at least 50 words",
		})
	}
	if !s.Structure.HasConclusion {
		issues = append(issues, Issue{
			Type:       IssueStructure,
			Severity:   SeverityWarning,
			Message:    "no recognizable conclusion",
			Offset:     -1,
			Suggestion: "close with a summary paragraph",
		})
	}

	// Voice and banned phrases are hard errors.
	for _, phrase := range s.Voice.AvoidedPhrases {
		issues = append(issues, Issue{
			Type:       IssueVoice,
			Severity:   SeverityError,
			Message:    fmt.Sprintf("avoided phrase %q present", phrase),
			Offset:     phraseOffset(content, phrase),
			Suggestion: "remove or rephrase",
		})
	}
	for _, phrase := range cfg.BannedPhrases {
		if phrase == "" {
			continue
		}
		if off := phraseOffset(content, phrase); off >= 0 {
			issues = append(issues, Issue{
				Type:       IssueBannedPhrase,
				Severity:   SeverityError,
				Message:    fmt.Sprintf("banned phrase %q present", phrase),
				Offset:     off,
				Suggestion: "remove the banned phrase",
			})
		}
	}

	// Length bounds.
	wc := s.Readability.WordCount
	if wc < cfg.MinWordCount {
		issues = append(issues, Issue{
			Type:       IssueLength,
			Severity:   SeverityWarning,
			Message:    fmt.Sprintf("word count %d is below the %d minimum", wc, cfg.MinWordCount),
			Offset:     -1,
			Suggestion: "expand thin sections",
		})
	} else if wc > cfg.MaxWordCount {
		issues = append(issues, Issue{
			Type:       IssueLength,
			Severity:   SeverityWarning,
			Message:    fmt.Sprintf("word count %d is above the %d maximum", wc, cfg.MaxWordCount),
			Offset:     -1,
			Suggestion: "trim or split the article",
		})
	}

	return issues
}

// phraseOffset returns the byte offset of the first case-insensitive
// occurrence of phrase, or -1.
func phraseOffset(content, phrase string) int {
	return strings.Index(strings.ToLower(content), strings.ToLower(phrase))
}
