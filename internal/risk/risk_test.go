package risk

import (
	"reflect"
	"strings"
	"testing"

	"github.com/pthm/publint/internal/quality"
)

const cleanArticle = `# Field Notes From A Yearlong Newsletter Experiment

When we started the newsletter, nobody on the team expected it to survive past spring. It did, and the reasons surprised us. This introduction walks through what we measured, what we ignored, and which habits actually moved the numbers over twelve busy months of weekly publishing to a list of three thousand subscribers.

## What we measured

Open rates told us less than reply rates. A short issue that asked one concrete question earned more responses than any polished essay. We tracked both anyway.

## What we changed

Halfway through the year we cut the word count in half. Readers noticed immediately. Complaints dropped, forwards went up, and writing time fell from six hours to two.

## What we kept

The sign-off stayed the same every week. Familiarity, it turns out, is not the enemy of attention.

Overall, the experiment earned its keep. We plan to run it for another year, with the same small scope and the same stubborn focus on replies over opens.
`

const linkedSources = `
For sourcing, see [the archive](https://content-mill.example/archive) and [their mirror](https://www.content-mill.example/mirror), plus [this campus study](https://writing.university.edu/study).
`

// lenientThresholds keeps the quality-minimum gate out of the way so
// tests can isolate the link and phrase gates.
var lenientThresholds = QualityThresholds{Minimum: 1, Acceptable: 2}

func TestLevelBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  Level
	}{
		{0, LevelLow},
		{25, LevelLow},
		{26, LevelMedium},
		{50, LevelMedium},
		{51, LevelHigh},
		{75, LevelHigh},
		{76, LevelCritical},
		{100, LevelCritical},
	}
	for _, tt := range tests {
		if got := LevelFor(tt.score); got != tt.want {
			t.Errorf("LevelFor(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestFactorsScore(t *testing.T) {
	tests := []struct {
		name    string
		factors Factors
		want    int
	}{
		{"zero", Factors{}, 0},
		{"sum", Factors{AIDetectionRisk: 10, ComplianceViolations: 5, QualityDeficits: 3, StructuralIssues: 2}, 20},
		{"all caps", Factors{AIDetectionRisk: 40, ComplianceViolations: 30, QualityDeficits: 20, StructuralIssues: 10}, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.factors.Score(); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAssessBlockedLinks(t *testing.T) {
	cfg := Config{
		BlockedDomains:    []string{"content-mill.example"},
		BlockEduLinks:     true,
		QualityThresholds: lenientThresholds,
	}

	a, err := Assess(cleanArticle+linkedSources, quality.Config{}, cfg)
	if err != nil {
		t.Fatalf("Assess() error = %v", err)
	}

	if a.Factors.ComplianceViolations != 30 {
		t.Errorf("ComplianceViolations = %d, want 30 (cap)", a.Factors.ComplianceViolations)
	}
	if a.Level != LevelCritical {
		t.Errorf("Level = %s, want CRITICAL", a.Level)
	}
	if a.AutoPublishEligible {
		t.Error("AutoPublishEligible = true with blocking issues present")
	}

	if len(a.BlockingIssues) != 2 {
		t.Fatalf("got %d blocking issues, want 2: %+v", len(a.BlockingIssues), a.BlockingIssues)
	}
	categories := map[string]bool{}
	for _, bi := range a.BlockingIssues {
		categories[bi.Category] = true
	}
	if !categories["edu_link"] || !categories["blocked_domain"] {
		t.Errorf("blocking categories = %v, want edu_link and blocked_domain", categories)
	}

	if a.Analysis.EduLinks != 1 || a.Analysis.BlockedDomainLinks != 2 {
		t.Errorf("link counts = %d edu / %d blocked, want 1 / 2",
			a.Analysis.EduLinks, a.Analysis.BlockedDomainLinks)
	}
}

func TestAssessEduLinksAllowed(t *testing.T) {
	cfg := Config{QualityThresholds: lenientThresholds}

	a, err := Assess(cleanArticle+linkedSources, quality.Config{}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	for _, bi := range a.BlockingIssues {
		if bi.Category == "edu_link" || bi.Category == "blocked_domain" {
			t.Errorf("unexpected %s blocking issue with no domain policy configured", bi.Category)
		}
	}
	if a.Factors.ComplianceViolations != 0 {
		t.Errorf("ComplianceViolations = %d, want 0 with no domain policy", a.Factors.ComplianceViolations)
	}
}

func TestAssessGatePrecedence(t *testing.T) {
	cfg := Config{
		AutoPublishThreshold: 100,
		BlockedDomains:       []string{"content-mill.example"},
		QualityThresholds:    lenientThresholds,
	}

	blocked, err := Assess(cleanArticle+linkedSources, quality.Config{}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if blocked.Score > cfg.AutoPublishThreshold {
		t.Fatalf("fixture drifted: score %d above threshold", blocked.Score)
	}
	if len(blocked.BlockingIssues) == 0 {
		t.Fatal("fixture drifted: no blocking issues")
	}
	if blocked.AutoPublishEligible {
		t.Error("eligible despite blocking issues")
	}

	clean, err := Assess(cleanArticle, quality.Config{}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(clean.BlockingIssues) != 0 {
		t.Fatalf("clean article produced blocking issues: %+v", clean.BlockingIssues)
	}
	if !clean.AutoPublishEligible {
		t.Errorf("clean article ineligible at score %d, threshold %d",
			clean.Score, cfg.AutoPublishThreshold)
	}
}

func TestAIDetectionRiskMonotonic(t *testing.T) {
	cfg := Config{QualityThresholds: lenientThresholds}

	prevRisk := -1
	prevHumanness := 101.0
	for k := 0; k <= 5; k++ {
		content := cleanArticle + "\n" + strings.Repeat("Let's explore the options here. ", k) + "\n"
		a, err := Assess(content, quality.Config{}, cfg)
		if err != nil {
			t.Fatal(err)
		}
		if a.Factors.AIDetectionRisk < prevRisk {
			t.Errorf("aiDetectionRisk dropped from %d to %d at %d occurrences",
				prevRisk, a.Factors.AIDetectionRisk, k)
		}
		if a.Analysis.HumannessScore > prevHumanness {
			t.Errorf("humanness rose from %f to %f at %d occurrences",
				prevHumanness, a.Analysis.HumannessScore, k)
		}
		prevRisk = a.Factors.AIDetectionRisk
		prevHumanness = a.Analysis.HumannessScore
	}
}

func TestAssessAnalysisPredictability(t *testing.T) {
	cfg := Config{QualityThresholds: lenientThresholds}
	content := cleanArticle + "\nLet's explore the options here. Let's explore them again.\n"

	a, err := Assess(content, quality.Config{}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if a.Analysis.Predictability != a.Quality.Humanness.Predictability {
		t.Errorf("Analysis.Predictability = %f, humanness reports %f",
			a.Analysis.Predictability, a.Quality.Humanness.Predictability)
	}
	if a.Analysis.Predictability <= 0 {
		t.Errorf("Predictability = %f, want positive for pattern-laden content",
			a.Analysis.Predictability)
	}
}

func TestAssessScoreEqualsFactorSum(t *testing.T) {
	cfg := Config{
		BlockedDomains:    []string{"content-mill.example"},
		BlockEduLinks:     true,
		QualityThresholds: lenientThresholds,
	}
	a, err := Assess(cleanArticle+linkedSources, quality.Config{}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if a.Score != a.Factors.Score() {
		t.Errorf("Score = %d, Factors.Score() = %d", a.Score, a.Factors.Score())
	}
	if a.Factors.AIDetectionRisk > 40 || a.Factors.ComplianceViolations > 30 ||
		a.Factors.QualityDeficits > 20 || a.Factors.StructuralIssues > 10 {
		t.Errorf("factor cap exceeded: %+v", a.Factors)
	}
}

func TestAssessDeterminism(t *testing.T) {
	cfg := Config{
		BlockedDomains:    []string{"content-mill.example"},
		BlockEduLinks:     true,
		BannedPhrases:     []string{"synergy"},
		QualityThresholds: lenientThresholds,
	}
	content := cleanArticle + linkedSources + "\nPure synergy, twice the synergy.\n"

	a, err := Assess(content, quality.Config{}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Assess(content, quality.Config{}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("repeated assessment of identical input differs")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"zero value", Config{}, false},
		{"explicit thresholds", Config{QualityThresholds: QualityThresholds{Minimum: 40, Acceptable: 60}}, false},
		{"minimum above acceptable", Config{QualityThresholds: QualityThresholds{Minimum: 80, Acceptable: 60}}, true},
		{"negative auto-publish", Config{AutoPublishThreshold: -1}, true},
		{"auto-publish above 100", Config{AutoPublishThreshold: 101}, true},
		{"ai threshold above 100", Config{AIDetectionThreshold: 150}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRecommendationOrdering(t *testing.T) {
	recs := recommendations(Factors{
		AIDetectionRisk:      10,
		ComplianceViolations: 30,
		QualityDeficits:      20,
		StructuralIssues:     4,
	})
	if len(recs) != 4 {
		t.Fatalf("got %d recommendations, want 4", len(recs))
	}
	wantPriorities := []string{"high", "high", "medium", "low"}
	for i, want := range wantPriorities {
		if recs[i].Priority != want {
			t.Errorf("recs[%d].Priority = %s, want %s", i, recs[i].Priority, want)
		}
	}
	// Within equal priority, larger improvement first.
	if recs[0].Improvement < recs[1].Improvement {
		t.Errorf("high-priority recommendations out of order: %d before %d",
			recs[0].Improvement, recs[1].Improvement)
	}
}
