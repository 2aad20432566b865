package analyzer

import (
	"math"
	"strings"

	"github.com/pthm/publint/internal/textutil"
)

// PatternMatch records one cliché pattern found in the content, with
// the byte offsets of every occurrence in the original input.
type PatternMatch struct {
	Phrase    string          `json:"phrase"`
	Severity  PatternSeverity `json:"severity"`
	Count     int             `json:"count"`
	Locations []int           `json:"locations"`
}

// HumannessScore is the AI-detection sub-score and its metrics.
// Predictability is reported for the risk assessor but never folded
// into Score.
type HumannessScore struct {
	Score             float64        `json:"score"`
	Patterns          []PatternMatch `json:"patterns,omitempty"`
	VarietyIndex      float64        `json:"varietyIndex"`
	RepetitivePhrases int            `json:"repetitivePhrases"`
	PronounCount      int            `json:"pronounCount"`
	ContractionCount  int            `json:"contractionCount"`
	IdiomCount        int            `json:"idiomCount"`
	Predictability    float64        `json:"predictability"`
}

// HighSeverityCount sums occurrences of high-severity patterns.
func (h HumannessScore) HighSeverityCount() int {
	n := 0
	for _, p := range h.Patterns {
		if p.Severity == SeverityHigh {
			n += p.Count
		}
	}
	return n
}

// MaxSinglePatternCount returns the highest occurrence count of any
// single high-severity pattern.
func (h HumannessScore) MaxSinglePatternCount() int {
	max := 0
	for _, p := range h.Patterns {
		if p.Severity == SeverityHigh && p.Count > max {
			max = p.Count
		}
	}
	return max
}

// Humanness scores how unlikely content is to read as AI-generated.
type Humanness struct{}

// NewHumanness returns a stateless humanness analyzer.
func NewHumanness() Humanness {
	return Humanness{}
}

// Analyze runs the cliché table, sentence-variety, and human-signal
// heuristics over the content. The raw (unstripped) content is scanned
// for patterns so match offsets stay valid against the original input;
// plain text drives the statistical signals.
func (Humanness) Analyze(raw, plain string) HumannessScore {
	s := HumannessScore{
		Patterns: matchPatterns(raw),
	}

	sentences := textutil.Sentences(plain)
	s.VarietyIndex = varietyIndex(sentences)
	s.RepetitivePhrases = repeatedTrigrams(plain)

	words := textutil.Words(plain)
	for _, w := range words {
		lw := strings.ToLower(w)
		if personalPronouns[lw] {
			s.PronounCount++
		}
		if strings.Contains(w, "'") {
			s.ContractionCount++
		}
	}

	lowerPlain := strings.ToLower(plain)
	for _, idiom := range idiomPhrases {
		s.IdiomCount += strings.Count(lowerPlain, idiom)
	}

	patternPenalty := 0
	for _, m := range s.Patterns {
		patternPenalty += m.Count * m.Severity.Weight()
	}

	score := 100.0
	score -= float64(patternPenalty) * 2
	score -= float64(s.RepetitivePhrases) * 2
	score -= math.Max(0, 50-s.VarietyIndex)
	score += math.Min(10, float64(s.PronounCount))
	score += math.Min(10, float64(s.ContractionCount))
	score += math.Min(5, float64(s.IdiomCount)*2)
	s.Score = clamp(score)

	s.Predictability = clamp(float64(patternPenalty)*3 + math.Max(0, 50-s.VarietyIndex))

	return s
}

// matchPatterns scans content against the cliché table, recording the
// byte offset of every case-insensitive occurrence. Table order is
// preserved so output is deterministic.
func matchPatterns(content string) []PatternMatch {
	lower := strings.ToLower(content)

	var matches []PatternMatch
	for _, p := range ClichePatterns {
		var locs []int
		from := 0
		for {
			i := strings.Index(lower[from:], p.Phrase)
			if i < 0 {
				break
			}
			locs = append(locs, from+i)
			from += i + len(p.Phrase)
		}
		if len(locs) > 0 {
			matches = append(matches, PatternMatch{
				Phrase:    p.Phrase,
				Severity:  p.Severity,
				Count:     len(locs),
				Locations: locs,
			})
		}
	}
	return matches
}

// varietyIndex maps the standard deviation of sentence word counts
// onto a 0-100 scale. Uniform sentence lengths are an AI tell, so low
// deviation means a low index.
func varietyIndex(sentences []string) float64 {
	if len(sentences) < 2 {
		return 0
	}

	lengths := make([]float64, len(sentences))
	sum := 0.0
	for i, s := range sentences {
		lengths[i] = float64(len(textutil.Words(s)))
		sum += lengths[i]
	}
	mean := sum / float64(len(lengths))

	variance := 0.0
	for _, l := range lengths {
		variance += (l - mean) * (l - mean)
	}
	variance /= float64(len(lengths))

	return math.Min(100, math.Sqrt(variance)*10)
}

// repeatedTrigrams counts distinct three-word sequences appearing more
// than twice.
func repeatedTrigrams(text string) int {
	words := textutil.Words(strings.ToLower(text))
	if len(words) < 3 {
		return 0
	}

	counts := make(map[string]int)
	for i := 0; i+2 < len(words); i++ {
		counts[words[i]+" "+words[i+1]+" "+words[i+2]]++
	}

	repeated := 0
	for _, c := range counts {
		if c > 2 {
			repeated++
		}
	}
	return repeated
}

// clamp bounds a score to [0,100].
func clamp(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
