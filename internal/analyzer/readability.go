package analyzer

import (
	"math"
	"regexp"

	"github.com/pthm/publint/internal/textutil"
)

// DefaultTargetGrade is the grade level the readability score centers
// on when the caller does not configure one.
const DefaultTargetGrade = 9.0

// Passive voice is detected from two surface patterns: a to-be
// auxiliary followed by an -ed or -en participle.
var (
	passiveEdRe = regexp.MustCompile(`(?i)\b(?:is|are|was|were|be|been|being)\s+\w+ed\b`)
	passiveEnRe = regexp.MustCompile(`(?i)\b(?:is|are|was|were|be|been|being)\s+\w+en\b`)
)

// ReadabilityScore is the readability sub-score and its metrics.
type ReadabilityScore struct {
	Score             float64 `json:"score"`
	FleschEase        float64 `json:"fleschEase"`
	GradeLevel        float64 `json:"gradeLevel"`
	GunningFog        float64 `json:"gunningFog"`
	SMOG              float64 `json:"smog"`
	AvgSentenceLength float64 `json:"avgSentenceLength"`
	AvgWordLength     float64 `json:"avgWordLength"`
	ComplexWordPct    float64 `json:"complexWordPct"`
	PassiveVoicePct   float64 `json:"passiveVoicePct"`
	WordCount         int     `json:"wordCount"`
	SentenceCount     int     `json:"sentenceCount"`
	SyllableCount     int     `json:"syllableCount"`
}

// Readability computes grade-level and ease metrics from plain text.
type Readability struct {
	TargetGrade float64
}

// NewReadability returns a readability analyzer centered on the given
// target grade; zero means the default.
func NewReadability(targetGrade float64) Readability {
	if targetGrade <= 0 {
		targetGrade = DefaultTargetGrade
	}
	return Readability{TargetGrade: targetGrade}
}

// Analyze derives the readability metrics from plain (markup-free)
// text. Zero-sentence input never divides by zero; denominators are
// floored at one.
func (r Readability) Analyze(plain string) ReadabilityScore {
	words := textutil.Words(plain)
	sentences := textutil.Sentences(plain)

	s := ReadabilityScore{
		WordCount:     len(words),
		SentenceCount: len(sentences),
		SyllableCount: textutil.TotalSyllables(words),
	}

	wordCount := math.Max(1, float64(s.WordCount))
	sentenceCount := math.Max(1, float64(s.SentenceCount))

	s.AvgSentenceLength = float64(s.WordCount) / sentenceCount

	totalChars := 0
	complexWords := 0
	for _, w := range words {
		totalChars += len(w)
		if textutil.Syllables(w) >= 3 {
			complexWords++
		}
	}
	s.AvgWordLength = float64(totalChars) / wordCount
	s.ComplexWordPct = float64(complexWords) / wordCount * 100

	avgSyllables := float64(s.SyllableCount) / wordCount
	s.FleschEase = 206.835 - 1.015*s.AvgSentenceLength - 84.6*avgSyllables
	s.GradeLevel = 0.39*s.AvgSentenceLength + 11.8*avgSyllables - 15.59
	s.GunningFog = 0.4 * (s.AvgSentenceLength + s.ComplexWordPct)
	s.SMOG = 1.0430*math.Sqrt(float64(complexWords)*30/sentenceCount) + 3.1291

	s.PassiveVoicePct = passivePct(sentences)

	s.Score = clamp(100 - 10*math.Abs(s.GradeLevel-r.TargetGrade))
	return s
}

// passivePct returns the percentage of sentences containing a passive
// construction.
func passivePct(sentences []string) float64 {
	if len(sentences) == 0 {
		return 0
	}
	passive := 0
	for _, s := range sentences {
		if passiveEdRe.MatchString(s) || passiveEnRe.MatchString(s) {
			passive++
		}
	}
	return float64(passive) / float64(len(sentences)) * 100
}
