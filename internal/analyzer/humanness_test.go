package analyzer

import (
	"strings"
	"testing"
)

const humanText = `I think we've all been there. You try something, it doesn't work,
and you start over. Last week I spent three days chasing a bug that turned
out to be a typo. Honestly? That's the job. But here's what I learned from
it, and why I'd do it again without hesitation.`

func TestHumannessCleanText(t *testing.T) {
	s := NewHumanness().Analyze(humanText, humanText)

	if len(s.Patterns) != 0 {
		t.Errorf("Patterns = %+v, want none", s.Patterns)
	}
	if s.PronounCount == 0 {
		t.Error("PronounCount = 0, want > 0")
	}
	if s.ContractionCount == 0 {
		t.Error("ContractionCount = 0, want > 0")
	}
	if s.Score < 0 || s.Score > 100 {
		t.Errorf("Score = %f, out of bounds", s.Score)
	}
}

func TestHumannessPatternDetection(t *testing.T) {
	text := "Let's explore the options. We will delve into the details."
	s := NewHumanness().Analyze(text, text)

	if len(s.Patterns) != 2 {
		t.Fatalf("Patterns = %+v, want 2 matches", s.Patterns)
	}

	byPhrase := map[string]PatternMatch{}
	for _, m := range s.Patterns {
		byPhrase[m.Phrase] = m
	}

	m, ok := byPhrase["let's explore"]
	if !ok || m.Count != 1 || m.Severity != SeverityHigh {
		t.Errorf("let's explore match = %+v", m)
	}
	if len(m.Locations) != 1 || m.Locations[0] != 0 {
		t.Errorf("Locations = %v, want [0]", m.Locations)
	}

	if m := byPhrase["delve into"]; m.Count != 1 {
		t.Errorf("delve into match = %+v", m)
	}
	if s.HighSeverityCount() != 2 {
		t.Errorf("HighSeverityCount = %d, want 2", s.HighSeverityCount())
	}
}

func TestHumannessMonotonicity(t *testing.T) {
	// Adding occurrences of a high-severity pattern must never raise
	// the score.
	base := humanText
	prev := NewHumanness().Analyze(base, base).Score
	for i := 1; i <= 4; i++ {
		text := base + strings.Repeat(" Let's explore this further.", i)
		got := NewHumanness().Analyze(text, text).Score
		if got > prev {
			t.Errorf("score rose from %f to %f after adding pattern occurrence %d", prev, got, i)
		}
		prev = got
	}
}

func TestHumannessRepetitivePhrases(t *testing.T) {
	text := strings.Repeat("the quick brown fox jumps. ", 4)
	s := NewHumanness().Analyze(text, text)
	if s.RepetitivePhrases == 0 {
		t.Error("RepetitivePhrases = 0, want > 0 for repeated trigrams")
	}
}

func TestHumannessVarietyIndex(t *testing.T) {
	uniform := strings.Repeat("This sentence has exactly six words. ", 8)
	varied := "Short one. This sentence runs quite a bit longer than the first one did. Tiny. " +
		"And now a medium length sentence to mix it up a little."

	u := NewHumanness().Analyze(uniform, uniform)
	v := NewHumanness().Analyze(varied, varied)

	if u.VarietyIndex != 0 {
		t.Errorf("uniform VarietyIndex = %f, want 0", u.VarietyIndex)
	}
	if v.VarietyIndex <= u.VarietyIndex {
		t.Errorf("varied VarietyIndex = %f, want > %f", v.VarietyIndex, u.VarietyIndex)
	}
}

func TestHumannessPredictabilityNotInScore(t *testing.T) {
	// Two texts with identical pattern counts and signals but
	// different predictability inputs still clamp to bounds.
	s := NewHumanness().Analyze(humanText, humanText)
	if s.Predictability < 0 || s.Predictability > 100 {
		t.Errorf("Predictability = %f, out of bounds", s.Predictability)
	}
}

func TestMaxSinglePatternCount(t *testing.T) {
	text := "Let's explore one. Let's explore two. Let's explore three. We delve into it."
	s := NewHumanness().Analyze(text, text)
	if got := s.MaxSinglePatternCount(); got != 3 {
		t.Errorf("MaxSinglePatternCount = %d, want 3", got)
	}
}
