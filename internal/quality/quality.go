// Package quality aggregates the five content analyzers into a single
// Quality Score with derived issues and auto-fix suggestions. Analyze
// is a pure function of (content, config): identical inputs always
// produce identical output, byte for byte.
package quality

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/pthm/publint/internal/analyzer"
	"github.com/pthm/publint/internal/parser"
)

// Aggregation weights over the five sub-scores. Empirically chosen;
// tune here, nowhere else.
const (
	weightReadability = 0.20
	weightSEO         = 0.20
	weightHumanness   = 0.30
	weightStructure   = 0.15
	weightVoice       = 0.15
)

// Score is the aggregate quality result for one piece of content. It
// marshals to the camelCase schema pipelines consume.
type Score struct {
	Overall     int                       `json:"overall"`
	Readability analyzer.ReadabilityScore `json:"readability"`
	SEO         analyzer.SEOScore         `json:"seo"`
	Humanness   analyzer.HumannessScore   `json:"humanness"`
	Structure   analyzer.StructureScore   `json:"structure"`
	Voice       analyzer.VoiceScore       `json:"voice"`
	Issues      []Issue                   `json:"issues"`
	Suggestions []Suggestion              `json:"suggestions"`
}

// WordCount returns the content's word count.
func (s *Score) WordCount() int {
	return s.Readability.WordCount
}

// ErrorCount counts error-severity issues.
func (s *Score) ErrorCount() int {
	n := 0
	for _, issue := range s.Issues {
		if issue.Severity == SeverityError {
			n++
		}
	}
	return n
}

// Analyze scores content against the configuration. It fails fast on
// malformed input or contradictory configuration rather than returning
// a degraded score.
func Analyze(content string, cfg Config) (*Score, error) {
	if !utf8.ValidString(content) {
		return nil, fmt.Errorf("content is not valid UTF-8 text")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid quality config: %w", err)
	}
	cfg = cfg.WithDefaults()

	doc := parser.Parse([]byte(content))
	plain := doc.PlainText

	s := &Score{
		Readability: analyzer.NewReadability(cfg.TargetReadabilityGrade).Analyze(plain),
		SEO:         analyzer.NewSEO(cfg.PrimaryKeyword, cfg.SecondaryKeywords).Analyze(doc),
		Humanness:   analyzer.NewHumanness().Analyze(content, plain),
		Structure:   analyzer.NewStructure().Analyze(doc),
		Voice:       analyzer.NewVoice(cfg.VoiceProfile).Analyze(plain),
	}

	overall := weightReadability*s.Readability.Score +
		weightSEO*s.SEO.Score +
		weightHumanness*s.Humanness.Score +
		weightStructure*s.Structure.Score +
		weightVoice*s.Voice.Score
	s.Overall = int(math.Round(overall))

	s.Issues = collectIssues(content, s, cfg)
	s.Suggestions = collectSuggestions(content)

	return s, nil
}
