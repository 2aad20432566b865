// Package risk layers compliance and severity signals on top of a
// quality score to produce a four-level risk classification and a hard
// publish gate. Assess is a pure function of (content, configs):
// identical inputs always produce identical output.
package risk

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pthm/publint/internal/parser"
	"github.com/pthm/publint/internal/quality"
)

// Level classifies a risk score.
type Level string

const (
	LevelLow      Level = "LOW"
	LevelMedium   Level = "MEDIUM"
	LevelHigh     Level = "HIGH"
	LevelCritical Level = "CRITICAL"
)

// LevelFor maps a risk score onto its level. Fixed breakpoints; a
// score of exactly 25, 50, or 75 stays in the lower band.
func LevelFor(score int) Level {
	switch {
	case score <= 25:
		return LevelLow
	case score <= 50:
		return LevelMedium
	case score <= 75:
		return LevelHigh
	default:
		return LevelCritical
	}
}

// Factor caps. The risk score is the capped factors summed, clamped to
// [0,100].
const (
	capAIDetection = 40
	capCompliance  = 30
	capQuality     = 20
	capStructural  = 10
)

// Default thresholds.
const (
	defaultAutoPublishThreshold = 30
	defaultAIDetectionThreshold = 25.0
	defaultQualityMinimum       = 50
	defaultQualityAcceptable    = 70
)

// Sub-score floors feeding the quality-deficit factor.
const (
	readabilityFloor = 60.0
	seoFloor         = 50.0
)

// Per-violation compliance points.
const (
	pointsPerEduLink       = 10
	pointsPerBlockedDomain = 10
	pointsPerAvoidedPhrase = 5
	pointsPerExtraBanned   = 3
)

// QualityThresholds bound the overall quality score. Minimum gates
// publication outright; acceptable marks the comfortable floor.
type QualityThresholds struct {
	Minimum    int `yaml:"minimum"`
	Acceptable int `yaml:"acceptable"`
}

// Config tunes the risk assessment.
type Config struct {
	AutoPublishThreshold int               `yaml:"autoPublishThreshold"`
	AIDetectionThreshold float64           `yaml:"aiDetectionThreshold"`
	QualityThresholds    QualityThresholds `yaml:"qualityThresholds"`
	BlockedDomains       []string          `yaml:"blockedDomains"`
	BannedPhrases        []string          `yaml:"bannedPhrases"`
	BlockEduLinks        bool              `yaml:"blockEduLinks"`
}

// WithDefaults fills zero-valued thresholds with the defaults.
func (c Config) WithDefaults() Config {
	if c.AutoPublishThreshold == 0 {
		c.AutoPublishThreshold = defaultAutoPublishThreshold
	}
	if c.AIDetectionThreshold == 0 {
		c.AIDetectionThreshold = defaultAIDetectionThreshold
	}
	if c.QualityThresholds.Minimum == 0 {
		c.QualityThresholds.Minimum = defaultQualityMinimum
	}
	if c.QualityThresholds.Acceptable == 0 {
		c.QualityThresholds.Acceptable = defaultQualityAcceptable
	}
	return c
}

// Validate rejects contradictory or out-of-range thresholds.
func (c Config) Validate() error {
	if c.AutoPublishThreshold < 0 || c.AutoPublishThreshold > 100 {
		return fmt.Errorf("autoPublishThreshold %d outside [0,100]", c.AutoPublishThreshold)
	}
	if c.AIDetectionThreshold < 0 || c.AIDetectionThreshold > 100 {
		return fmt.Errorf("aiDetectionThreshold %.1f outside [0,100]", c.AIDetectionThreshold)
	}
	min, acc := c.QualityThresholds.Minimum, c.QualityThresholds.Acceptable
	if min < 0 || acc < 0 {
		return fmt.Errorf("quality thresholds must not be negative")
	}
	if acc != 0 && min > acc {
		return fmt.Errorf("quality minimum %d exceeds acceptable %d", min, acc)
	}
	return nil
}

// Factors are the four independently capped risk buckets.
type Factors struct {
	AIDetectionRisk      int `json:"aiDetectionRisk"`
	ComplianceViolations int `json:"complianceViolations"`
	QualityDeficits      int `json:"qualityDeficits"`
	StructuralIssues     int `json:"structuralIssues"`
}

// Score sums the factors, clamped to [0,100].
func (f Factors) Score() int {
	s := f.AIDetectionRisk + f.ComplianceViolations + f.QualityDeficits + f.StructuralIssues
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

// BlockingIssue is a hard gate: any entry forces publication
// ineligibility regardless of the numeric score.
type BlockingIssue struct {
	ID         string `json:"id"`
	Category   string `json:"category"`
	Severity   string `json:"severity"`
	Message    string `json:"message"`
	Resolution string `json:"resolution"`
}

// Recommendation suggests one remediation, with the rough score
// improvement it would buy.
type Recommendation struct {
	Priority    string `json:"priority"`
	Message     string `json:"message"`
	Improvement int    `json:"improvement"`
}

// Analysis snapshots the metrics the factors were derived from.
type Analysis struct {
	QualityOverall       int     `json:"qualityOverall"`
	HumannessScore       float64 `json:"humannessScore"`
	Predictability       float64 `json:"predictability"`
	HighSeverityPatterns int     `json:"highSeverityPatterns"`
	WordCount            int     `json:"wordCount"`
	EduLinks             int     `json:"eduLinks"`
	BlockedDomainLinks   int     `json:"blockedDomainLinks"`
	AvoidedPhrases       int     `json:"avoidedPhrases"`
	BannedOccurrences    int     `json:"bannedOccurrences"`
}

// Assessment is the full risk result for one piece of content.
type Assessment struct {
	Level               Level            `json:"level"`
	Score               int              `json:"score"`
	Factors             Factors          `json:"factors"`
	BlockingIssues      []BlockingIssue  `json:"blockingIssues"`
	AutoPublishEligible bool             `json:"autoPublishEligible"`
	Recommendations     []Recommendation `json:"recommendations"`
	Analysis            Analysis         `json:"analysis"`
	Quality             *quality.Score   `json:"quality"`
}

// Assess scores the publication risk of content. It runs the quality
// analysis internally and layers link compliance, banned-phrase, and
// severity signals on top. Any blocking issue escalates the level to
// CRITICAL and forces auto-publish ineligibility.
func Assess(content string, qualityCfg quality.Config, cfg Config) (*Assessment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid risk config: %w", err)
	}
	cfg = cfg.WithDefaults()

	score, err := quality.Analyze(content, qualityCfg)
	if err != nil {
		return nil, err
	}

	doc := parser.Parse([]byte(content))
	edu, blocked := scanLinks(doc, cfg)
	banned := bannedOccurrences(content, cfg.BannedPhrases)
	highCount := score.Humanness.HighSeverityCount()

	a := &Assessment{
		Quality: score,
		Analysis: Analysis{
			QualityOverall:       score.Overall,
			HumannessScore:       score.Humanness.Score,
			Predictability:       score.Humanness.Predictability,
			HighSeverityPatterns: highCount,
			WordCount:            score.WordCount(),
			EduLinks:             edu,
			BlockedDomainLinks:   blocked,
			AvoidedPhrases:       len(score.Voice.AvoidedPhrases),
			BannedOccurrences:    banned,
		},
	}

	a.Factors = Factors{
		AIDetectionRisk:      aiDetectionRisk(score, cfg),
		ComplianceViolations: complianceViolations(score, cfg, edu, blocked, banned),
		QualityDeficits:      qualityDeficits(score, cfg),
		StructuralIssues:     structuralIssues(score),
	}
	a.Score = a.Factors.Score()

	a.BlockingIssues = blockingIssues(score, cfg, edu, blocked)
	a.Recommendations = recommendations(a.Factors)

	a.Level = LevelFor(a.Score)
	if len(a.BlockingIssues) > 0 {
		a.Level = LevelCritical
	}
	a.AutoPublishEligible = a.Score <= cfg.AutoPublishThreshold && len(a.BlockingIssues) == 0
	return a, nil
}

// aiDetectionRisk tiers the humanness score and adds points per
// high-severity pattern occurrence. Capped at 40.
func aiDetectionRisk(s *quality.Score, cfg Config) int {
	h := s.Humanness.Score

	risk := 0
	switch {
	case h < cfg.AIDetectionThreshold:
		risk = 40
	case h < 50:
		risk = 30
	case h < 70:
		risk = 20
	case h < 85:
		risk = 10
	}

	patternRisk := 3 * s.Humanness.HighSeverityCount()
	if patternRisk > 10 {
		patternRisk = 10
	}
	return capped(risk+patternRisk, capAIDetection)
}

// complianceViolations scores link and phrase violations. Capped at 30.
func complianceViolations(s *quality.Score, cfg Config, edu, blocked, banned int) int {
	v := 0
	if cfg.BlockEduLinks {
		v += edu * pointsPerEduLink
	}
	v += blocked * pointsPerBlockedDomain
	v += len(s.Voice.AvoidedPhrases) * pointsPerAvoidedPhrase
	v += banned * pointsPerExtraBanned
	return capped(v, capCompliance)
}

// qualityDeficits scores the gap below the configured thresholds plus
// fixed sub-score floors. Capped at 20.
func qualityDeficits(s *quality.Score, cfg Config) int {
	d := 0
	switch {
	case s.Overall < cfg.QualityThresholds.Minimum:
		d = 20
	case s.Overall < cfg.QualityThresholds.Acceptable:
		d = 10
	}
	if s.Readability.Score < readabilityFloor {
		d += 3
	}
	if s.SEO.Score < seoFloor {
		d += 3
	}
	return capped(d, capQuality)
}

// structuralIssues scores composition defects at 2 points each. Capped
// at 10.
func structuralIssues(s *quality.Score) int {
	i := 0
	if !s.Structure.HasIntroduction {
		i += 2
	}
	if !s.Structure.HasConclusion {
		i += 2
	}
	if s.Structure.HeadingCount < 3 {
		i += 2
	}
	if !s.SEO.ValidHeadingHierarchy {
		i += 2
	}
	if s.Structure.SectionBalance < 50 {
		i += 2
	}
	return capped(i, capStructural)
}

// blockingIssues computes the hard gates, one per category, in a fixed
// order.
func blockingIssues(s *quality.Score, cfg Config, edu, blocked int) []BlockingIssue {
	var issues []BlockingIssue

	if s.Humanness.Score < cfg.AIDetectionThreshold {
		issues = append(issues, BlockingIssue{
			ID:         "ai-detection",
			Category:   "ai_detection",
			Severity:   "critical",
			Message:    fmt.Sprintf("humanness score %.1f is below the AI-detection threshold %.1f", s.Humanness.Score, cfg.AIDetectionThreshold),
			Resolution: "rewrite the flagged sections in a natural voice",
		})
	}
	if max := s.Humanness.MaxSinglePatternCount(); max >= 3 {
		issues = append(issues, BlockingIssue{
			ID:         "ai-pattern-repetition",
			Category:   "ai_pattern",
			Severity:   "error",
			Message:    fmt.Sprintf("a high-severity AI-tell phrase appears %d times", max),
			Resolution: "vary or remove the repeated phrase",
		})
	}
	if cfg.BlockEduLinks && edu > 0 {
		issues = append(issues, BlockingIssue{
			ID:         "edu-links",
			Category:   "edu_link",
			Severity:   "error",
			Message:    fmt.Sprintf("%d link(s) to .edu domains while .edu linking is blocked", edu),
			Resolution: "replace .edu links with approved sources",
		})
	}
	if blocked > 0 {
		issues = append(issues, BlockingIssue{
			ID:         "blocked-domains",
			Category:   "blocked_domain",
			Severity:   "critical",
			Message:    fmt.Sprintf("%d link(s) point at blocked domains", blocked),
			Resolution: "remove links to blocked domains",
		})
	}
	if s.Overall < cfg.QualityThresholds.Minimum {
		issues = append(issues, BlockingIssue{
			ID:         "quality-minimum",
			Category:   "quality",
			Severity:   "error",
			Message:    fmt.Sprintf("quality score %d is below the minimum %d", s.Overall, cfg.QualityThresholds.Minimum),
			Resolution: "address the quality issues before publishing",
		})
	}
	if len(s.Voice.AvoidedPhrases) > 0 {
		issues = append(issues, BlockingIssue{
			ID:         "avoided-phrases",
			Category:   "avoided_phrase",
			Severity:   "error",
			Message:    fmt.Sprintf("%d phrase(s) from the voice profile's avoid list are present", len(s.Voice.AvoidedPhrases)),
			Resolution: "remove or rephrase the avoided phrases",
		})
	}
	return issues
}

// recommendations derives one remediation per non-zero factor,
// prioritized and sorted by priority then improvement. Greedy
// ordering, not guaranteed optimal.
func recommendations(f Factors) []Recommendation {
	var recs []Recommendation
	if f.AIDetectionRisk > 0 {
		recs = append(recs, Recommendation{
			Priority:    "high",
			Message:     "rewrite AI-flagged phrasing and vary sentence lengths",
			Improvement: f.AIDetectionRisk,
		})
	}
	if f.ComplianceViolations > 0 {
		recs = append(recs, Recommendation{
			Priority:    "high",
			Message:     "remove blocked links and disallowed phrases",
			Improvement: f.ComplianceViolations,
		})
	}
	if f.QualityDeficits > 0 {
		recs = append(recs, Recommendation{
			Priority:    "medium",
			Message:     "raise the overall quality score above the acceptable threshold",
			Improvement: f.QualityDeficits,
		})
	}
	if f.StructuralIssues > 0 {
		recs = append(recs, Recommendation{
			Priority:    "low",
			Message:     "add the missing introduction, conclusion, or section headings",
			Improvement: f.StructuralIssues,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		pi, pj := priorityRank(recs[i].Priority), priorityRank(recs[j].Priority)
		if pi != pj {
			return pi < pj
		}
		return recs[i].Improvement > recs[j].Improvement
	})
	return recs
}

func priorityRank(p string) int {
	switch p {
	case "high":
		return 0
	case "medium":
		return 1
	default:
		return 2
	}
}

// scanLinks counts external links hitting .edu domains and the
// configured blocked domains.
func scanLinks(doc *parser.Document, cfg Config) (edu, blocked int) {
	for _, link := range doc.Links {
		if link.Internal {
			continue
		}
		host := parser.HostOf(link.URL)
		if host == "" {
			continue
		}
		if strings.HasSuffix(host, ".edu") {
			edu++
		}
		for _, domain := range cfg.BlockedDomains {
			if parser.DomainMatches(host, domain) {
				blocked++
				break
			}
		}
	}
	return edu, blocked
}

// bannedOccurrences counts occurrences of configured banned phrases
// beyond the first per phrase. The first occurrence is already an
// error-severity quality issue; repeats add risk on top.
func bannedOccurrences(content string, phrases []string) int {
	lower := strings.ToLower(content)
	extra := 0
	for _, phrase := range phrases {
		p := strings.ToLower(strings.TrimSpace(phrase))
		if p == "" {
			continue
		}
		if n := strings.Count(lower, p); n > 1 {
			extra += n - 1
		}
	}
	return extra
}

func capped(v, limit int) int {
	if v > limit {
		return limit
	}
	if v < 0 {
		return 0
	}
	return v
}
