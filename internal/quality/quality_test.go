package quality

import (
	"reflect"
	"strings"
	"testing"
)

// testArticle builds a markdown article around the given keyword with
// intro, sections, and conclusion. Density lands inside the 1-3% band.
func testArticle(keyword string, sections int) string {
	filler := "Readers keep coming back when the writing respects their time and attention. "
	kwSentence := "A solid " + keyword + " gives every piece a clear job to do. "

	var sb strings.Builder
	sb.WriteString("# A durable " + keyword + " playbook\n\n")

	// Intro: 60+ words, keyword present.
	sb.WriteString(kwSentence)
	sb.WriteString(strings.Repeat(filler, 5))
	sb.WriteString("\n\n")

	for i := 0; i < sections; i++ {
		sb.WriteString("## Section " + string(rune('A'+i)) + "\n\n")
		sb.WriteString(strings.Repeat(filler, 25))
		sb.WriteString(strings.Repeat(kwSentence, 5))
		sb.WriteString("\n\n")
	}

	// Conclusion.
	sb.WriteString("Overall, the work pays off. ")
	sb.WriteString(strings.Repeat(filler, 5))
	sb.WriteString("\n")
	return sb.String()
}

func TestAnalyzeEmptyContent(t *testing.T) {
	s, err := Analyze("", Config{})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if s.WordCount() != 0 {
		t.Errorf("WordCount = %d, want 0", s.WordCount())
	}
	if s.Structure.HasIntroduction || s.Structure.HasConclusion {
		t.Error("empty content reported intro/conclusion")
	}
	if s.Overall >= 50 {
		t.Errorf("Overall = %d, want below 50 for empty content", s.Overall)
	}
	if s.Overall < 0 || s.Overall > 100 {
		t.Errorf("Overall = %d, out of bounds", s.Overall)
	}
}

func TestAnalyzeInvalidInput(t *testing.T) {
	if _, err := Analyze(string([]byte{0xff, 0xfe, 0xfd}), Config{}); err == nil {
		t.Error("Analyze accepted invalid UTF-8")
	}
}

func TestAnalyzeInvalidConfig(t *testing.T) {
	cfg := Config{MinWordCount: 2000, MaxWordCount: 500}
	if _, err := Analyze("some text", cfg); err == nil {
		t.Error("Analyze accepted minWordCount > maxWordCount")
	}
}

func TestAnalyzeAIPhrases(t *testing.T) {
	clean := testArticle("content strategy", 4)
	tainted := clean + "\nWhen in doubt, let's explore. Again, let's explore. Once more, let's explore.\n"

	cfg := Config{PrimaryKeyword: "content strategy"}

	cleanScore, err := Analyze(clean, cfg)
	if err != nil {
		t.Fatal(err)
	}
	taintedScore, err := Analyze(tainted, cfg)
	if err != nil {
		t.Fatal(err)
	}

	if taintedScore.Humanness.Score >= cleanScore.Humanness.Score {
		t.Errorf("humanness did not drop: %f >= %f",
			taintedScore.Humanness.Score, cleanScore.Humanness.Score)
	}

	var aiIssue *Issue
	for i := range taintedScore.Issues {
		if taintedScore.Issues[i].Type == IssueAIDetected {
			aiIssue = &taintedScore.Issues[i]
			break
		}
	}
	if aiIssue == nil {
		t.Fatal("no ai_detected issue emitted")
	}
	if aiIssue.Severity != SeverityError {
		t.Errorf("ai_detected severity = %s, want error", aiIssue.Severity)
	}

	found := false
	for _, sug := range taintedScore.Suggestions {
		if strings.EqualFold(sug.Original, "let's explore") {
			found = true
			if tainted[sug.Start:sug.End] != sug.Original {
				t.Errorf("suggestion span [%d:%d] = %q, want %q",
					sug.Start, sug.End, tainted[sug.Start:sug.End], sug.Original)
			}
		}
	}
	if !found {
		t.Error("no suggestion with original \"let's explore\"")
	}
}

func TestAnalyzeWellOptimizedArticle(t *testing.T) {
	content := testArticle("content strategy", 4)
	s, err := Analyze(content, Config{PrimaryKeyword: "content strategy"})
	if err != nil {
		t.Fatal(err)
	}

	if s.WordCount() < 1500 {
		t.Fatalf("WordCount = %d, want >= 1500 (test fixture too small)", s.WordCount())
	}
	if d := s.SEO.KeywordDensity; d < 1 || d > 3 {
		t.Fatalf("KeywordDensity = %f, want within 1-3%% (fixture drifted)", d)
	}
	if s.SEO.Score < 80 {
		t.Errorf("SEO score = %f, want >= 80", s.SEO.Score)
	}
	if s.Structure.Score < 80 {
		t.Errorf("Structure score = %f, want >= 80", s.Structure.Score)
	}
}

func TestAnalyzeDeterminism(t *testing.T) {
	content := testArticle("content strategy", 3) + "\nLet's explore the details. We delve into them.\n"
	cfg := Config{PrimaryKeyword: "content strategy", BannedPhrases: []string{"synergy"}}

	a, err := Analyze(content, cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Analyze(content, cfg)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Error("repeated analysis of identical input differs")
	}
	if !reflect.DeepEqual(a.Issues, b.Issues) {
		t.Error("issue ordering differs between runs")
	}
	if !reflect.DeepEqual(a.Suggestions, b.Suggestions) {
		t.Error("suggestion offsets differ between runs")
	}
}

func TestAnalyzeBannedPhrases(t *testing.T) {
	content := testArticle("widgets", 3) + "\nOur synergy is unmatched.\n"
	s, err := Analyze(content, Config{BannedPhrases: []string{"synergy"}})
	if err != nil {
		t.Fatal(err)
	}

	found := false
	for _, issue := range s.Issues {
		if issue.Type == IssueBannedPhrase {
			found = true
			if issue.Severity != SeverityError {
				t.Errorf("banned phrase severity = %s, want error", issue.Severity)
			}
			if issue.Offset < 0 || !strings.EqualFold(content[issue.Offset:issue.Offset+len("synergy")], "synergy") {
				t.Errorf("banned phrase offset %d does not point at the phrase", issue.Offset)
			}
		}
	}
	if !found {
		t.Error("no banned_phrase issue emitted")
	}
}

func TestOverallWeights(t *testing.T) {
	// The aggregate must stay inside [0,100] for adversarial input too.
	inputs := []string{
		"",
		"#",
		strings.Repeat("a ", 10000),
		strings.Repeat("Let's explore. ", 200),
	}
	for _, in := range inputs {
		s, err := Analyze(in, Config{})
		if err != nil {
			t.Fatalf("Analyze(%q...) error = %v", in[:min(len(in), 12)], err)
		}
		if s.Overall < 0 || s.Overall > 100 {
			t.Errorf("Overall = %d, out of bounds", s.Overall)
		}
	}
}
