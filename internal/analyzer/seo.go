package analyzer

import (
	"strings"

	"github.com/pthm/publint/internal/parser"
	"github.com/pthm/publint/internal/textutil"
)

// Keyword density band: 1-3% is optimal, above 3% reads as stuffing.
const (
	densityOptimalMin = 1.0
	densityOptimalMax = 3.0
)

// SEOScore is the SEO sub-score and its metrics.
type SEOScore struct {
	Score                   float64 `json:"score"`
	KeywordInTitle          bool    `json:"keywordInTitle"`
	KeywordInFirstParagraph bool    `json:"keywordInFirstParagraph"`
	KeywordInHeadings       bool    `json:"keywordInHeadings"`
	KeywordDensity          float64 `json:"keywordDensity"`
	SecondaryKeywordsFound  int     `json:"secondaryKeywordsFound"`
	ValidHeadingHierarchy   bool    `json:"validHeadingHierarchy"`
	AllImagesHaveAlt        bool    `json:"allImagesHaveAlt"`
	WordCount               int     `json:"wordCount"`
	InternalLinks           int     `json:"internalLinks"`
	ExternalLinks           int     `json:"externalLinks"`
}

// SEO checks keyword placement, density, and document structure
// against search heuristics. Secondary keywords earn a small coverage
// bonus; only the primary keyword drives placement and density.
type SEO struct {
	PrimaryKeyword    string
	SecondaryKeywords []string
}

// NewSEO returns an SEO analyzer for the given keywords.
func NewSEO(primary string, secondary []string) SEO {
	return SEO{PrimaryKeyword: primary, SecondaryKeywords: secondary}
}

// Analyze scores the parsed document. Scoring starts from a base of 50
// and applies fixed bonuses and penalties, clamped to [0,100].
func (a SEO) Analyze(doc *parser.Document) SEOScore {
	words := textutil.Words(doc.PlainText)

	s := SEOScore{
		ValidHeadingHierarchy: doc.ValidHeadingHierarchy(),
		AllImagesHaveAlt:      doc.AllImagesHaveAlt(),
		WordCount:             len(words),
		InternalLinks:         doc.InternalLinkCount(),
		ExternalLinks:         doc.ExternalLinkCount(),
	}

	score := 50.0

	keyword := strings.ToLower(strings.TrimSpace(a.PrimaryKeyword))
	if keyword != "" {
		s.KeywordInTitle = strings.Contains(strings.ToLower(doc.Title), keyword)
		s.KeywordInFirstParagraph = strings.Contains(strings.ToLower(doc.FirstParagraph()), keyword)
		for _, h := range doc.Headings {
			if strings.Contains(strings.ToLower(h.Text), keyword) {
				s.KeywordInHeadings = true
				break
			}
		}
		s.KeywordDensity = keywordDensity(doc.PlainText, keyword, len(words))

		if s.KeywordInTitle {
			score += 10
		}
		if s.KeywordInFirstParagraph {
			score += 10
		}
		if s.KeywordInHeadings {
			score += 5
		}
		if s.KeywordDensity >= densityOptimalMin && s.KeywordDensity <= densityOptimalMax {
			score += 10
		} else if s.KeywordDensity > densityOptimalMax {
			score -= 10
		}
	}

	lowerPlain := strings.ToLower(doc.PlainText)
	for _, kw := range a.SecondaryKeywords {
		k := strings.ToLower(strings.TrimSpace(kw))
		if k != "" && strings.Contains(lowerPlain, k) {
			s.SecondaryKeywordsFound++
		}
	}
	if bonus := 2 * s.SecondaryKeywordsFound; bonus > 0 {
		if bonus > 6 {
			bonus = 6
		}
		score += float64(bonus)
	}

	if s.ValidHeadingHierarchy && len(doc.Headings) > 0 {
		score += 10
	}
	if s.AllImagesHaveAlt {
		score += 5
	}

	switch {
	case s.WordCount >= 1500:
		score += 10
	case s.WordCount >= 1000:
		score += 5
	}

	if s.InternalLinks >= 3 {
		score += 5
	}
	if s.ExternalLinks >= 1 {
		score += 5
	}

	s.Score = clamp(score)
	return s
}

// keywordDensity is keyword occurrences per hundred words.
func keywordDensity(plain, keyword string, wordCount int) float64 {
	if wordCount == 0 || keyword == "" {
		return 0
	}
	occurrences := strings.Count(strings.ToLower(plain), keyword)
	return float64(occurrences) / float64(wordCount) * 100
}
