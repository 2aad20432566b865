// Package validate runs the pre-publish checklist: independent
// pass/fail/warning rules over article metadata, the quality score,
// SEO signals, and compliance signals. It is a policy layer separate
// from the risk assessment; a publishing pipeline may require both.
package validate

import (
	"fmt"
	"strings"
	"time"

	"github.com/pthm/publint/internal/parser"
	"github.com/pthm/publint/internal/quality"
	"github.com/pthm/publint/internal/textutil"
)

// Status is the outcome of one validation check.
type Status string

const (
	StatusPass    Status = "pass"
	StatusFail    Status = "fail"
	StatusWarning Status = "warning"
	StatusSkipped Status = "skipped"
)

// Check categories.
const (
	CategoryContent    = "content"
	CategoryQuality    = "quality"
	CategorySEO        = "seo"
	CategoryCompliance = "compliance"
)

// Check is one checklist rule outcome. A failing check with IsBlocking
// set vetoes publication.
type Check struct {
	ID               string `json:"id"`
	Category         string `json:"category"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	Status           Status `json:"status"`
	Message          string `json:"message"`
	AutoFixAvailable bool   `json:"autoFixAvailable"`
	IsBlocking       bool   `json:"isBlocking"`
}

// Result aggregates every check. CanPublish is true iff no check is
// simultaneously failing and blocking.
type Result struct {
	Checks     []Check `json:"checks"`
	CanPublish bool    `json:"canPublish"`
	Passed     int     `json:"passed"`
	Failed     int     `json:"failed"`
	Warnings   int     `json:"warnings"`
	Skipped    int     `json:"skipped"`
}

// Article is the metadata and content under validation.
type Article struct {
	Title             string
	MetaDescription   string
	Content           string
	FeaturedImage     string
	PrimaryKeyword    string
	SecondaryKeywords []string
	UpdatedAt         time.Time
}

// Default validation bounds.
const (
	defaultMinWordCount   = 300
	defaultMaxWordCount   = 5000
	defaultMinTitleLength = 30
	defaultMaxTitleLength = 60
	defaultMinMetaLength  = 120
	defaultMaxMetaLength  = 160
	defaultMinQuality     = 60
	defaultHumannessFloor = 40.0
)

// Config tunes the checklist. Zero-valued optional fields
// (MinInternalLinks, MaxContentAge, RequireFeaturedImage) skip their
// checks rather than failing them.
type Config struct {
	MinWordCount         int           `yaml:"minWordCount"`
	MaxWordCount         int           `yaml:"maxWordCount"`
	MinTitleLength       int           `yaml:"minTitleLength"`
	MaxTitleLength       int           `yaml:"maxTitleLength"`
	MinMetaLength        int           `yaml:"minMetaLength"`
	MaxMetaLength        int           `yaml:"maxMetaLength"`
	RequireFeaturedImage bool          `yaml:"requireFeaturedImage"`
	MinQualityScore      int           `yaml:"minQualityScore"`
	HumannessFloor       float64       `yaml:"humannessFloor"`
	AllowCriticalIssues  bool          `yaml:"allowCriticalIssues"`
	MinInternalLinks     int           `yaml:"minInternalLinks"`
	MinExternalLinks     int           `yaml:"minExternalLinks"`
	BlockedDomains       []string      `yaml:"blockedDomains"`
	BannedPhrases        []string      `yaml:"bannedPhrases"`
	MaxContentAge        time.Duration `yaml:"maxContentAge"`
}

// WithDefaults fills zero-valued required bounds with the defaults.
func (c Config) WithDefaults() Config {
	if c.MinWordCount == 0 {
		c.MinWordCount = defaultMinWordCount
	}
	if c.MaxWordCount == 0 {
		c.MaxWordCount = defaultMaxWordCount
	}
	if c.MinTitleLength == 0 {
		c.MinTitleLength = defaultMinTitleLength
	}
	if c.MaxTitleLength == 0 {
		c.MaxTitleLength = defaultMaxTitleLength
	}
	if c.MinMetaLength == 0 {
		c.MinMetaLength = defaultMinMetaLength
	}
	if c.MaxMetaLength == 0 {
		c.MaxMetaLength = defaultMaxMetaLength
	}
	if c.MinQualityScore == 0 {
		c.MinQualityScore = defaultMinQuality
	}
	if c.HumannessFloor == 0 {
		c.HumannessFloor = defaultHumannessFloor
	}
	return c
}

// Validate rejects contradictory bounds.
func (c Config) Validate() error {
	if c.MinWordCount < 0 || c.MaxWordCount < 0 {
		return fmt.Errorf("word-count bounds must not be negative")
	}
	if c.MaxWordCount != 0 && c.MinWordCount > c.MaxWordCount {
		return fmt.Errorf("minWordCount %d exceeds maxWordCount %d", c.MinWordCount, c.MaxWordCount)
	}
	if c.MaxTitleLength != 0 && c.MinTitleLength > c.MaxTitleLength {
		return fmt.Errorf("minTitleLength %d exceeds maxTitleLength %d", c.MinTitleLength, c.MaxTitleLength)
	}
	return nil
}

// Run executes every checklist group against the article. The quality
// score is optional; when nil, quality-dependent checks are skipped
// and a blocking warning records the gap instead of crashing.
func Run(article Article, score *quality.Score, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid validation config: %w", err)
	}
	cfg = cfg.WithDefaults()

	doc := parser.Parse([]byte(article.Content))

	var checks []Check
	checks = append(checks, contentChecks(article, doc, cfg)...)
	checks = append(checks, qualityChecks(score, cfg)...)
	checks = append(checks, seoChecks(article, doc, cfg)...)
	checks = append(checks, complianceChecks(article, doc, cfg)...)

	r := &Result{Checks: checks, CanPublish: true}
	for _, c := range checks {
		switch c.Status {
		case StatusPass:
			r.Passed++
		case StatusFail:
			r.Failed++
			if c.IsBlocking {
				r.CanPublish = false
			}
		case StatusWarning:
			r.Warnings++
		case StatusSkipped:
			r.Skipped++
		}
	}
	return r, nil
}

func contentChecks(article Article, doc *parser.Document, cfg Config) []Check {
	var checks []Check

	wc := len(textutil.Words(doc.PlainText))
	wordCount := Check{
		ID:          "content-word-count",
		Category:    CategoryContent,
		Name:        "Word count",
		Description: fmt.Sprintf("content length within %d-%d words", cfg.MinWordCount, cfg.MaxWordCount),
		IsBlocking:  true,
	}
	switch {
	case wc < cfg.MinWordCount:
		wordCount.Status = StatusFail
		wordCount.Message = fmt.Sprintf("word count %d is below the %d minimum", wc, cfg.MinWordCount)
	case wc > cfg.MaxWordCount:
		wordCount.Status = StatusWarning
		wordCount.Message = fmt.Sprintf("word count %d is above the %d maximum", wc, cfg.MaxWordCount)
	default:
		wordCount.Status = StatusPass
		wordCount.Message = fmt.Sprintf("word count %d", wc)
	}
	checks = append(checks, wordCount)

	title := Check{
		ID:          "content-title",
		Category:    CategoryContent,
		Name:        "Title",
		Description: fmt.Sprintf("title present, %d-%d characters", cfg.MinTitleLength, cfg.MaxTitleLength),
	}
	switch n := len(article.Title); {
	case n == 0:
		title.Status = StatusFail
		title.IsBlocking = true
		title.Message = "article has no title"
	case n < cfg.MinTitleLength || n > cfg.MaxTitleLength:
		title.Status = StatusWarning
		title.Message = fmt.Sprintf("title length %d is outside %d-%d", n, cfg.MinTitleLength, cfg.MaxTitleLength)
	default:
		title.Status = StatusPass
		title.Message = fmt.Sprintf("title length %d", n)
	}
	checks = append(checks, title)

	meta := Check{
		ID:          "content-meta-description",
		Category:    CategoryContent,
		Name:        "Meta description",
		Description: fmt.Sprintf("meta description present, %d-%d characters", cfg.MinMetaLength, cfg.MaxMetaLength),
	}
	switch n := len(article.MetaDescription); {
	case n == 0:
		meta.Status = StatusWarning
		meta.Message = "article has no meta description"
	case n < cfg.MinMetaLength || n > cfg.MaxMetaLength:
		meta.Status = StatusWarning
		meta.Message = fmt.Sprintf("meta description length %d is outside %d-%d", n, cfg.MinMetaLength, cfg.MaxMetaLength)
	default:
		meta.Status = StatusPass
		meta.Message = fmt.Sprintf("meta description length %d", n)
	}
	checks = append(checks, meta)

	image := Check{
		ID:          "content-featured-image",
		Category:    CategoryContent,
		Name:        "Featured image",
		Description: "featured image set when required",
	}
	switch {
	case !cfg.RequireFeaturedImage:
		image.Status = StatusSkipped
		image.Message = "featured image not required"
	case article.FeaturedImage == "":
		image.Status = StatusFail
		image.IsBlocking = true
		image.Message = "featured image required but not set"
	default:
		image.Status = StatusPass
		image.Message = "featured image set"
	}
	checks = append(checks, image)

	return checks
}

func qualityChecks(score *quality.Score, cfg Config) []Check {
	if score == nil {
		return []Check{{
			ID:          "quality-score-available",
			Category:    CategoryQuality,
			Name:        "Quality score",
			Description: "quality analysis available for this article",
			Status:      StatusWarning,
			IsBlocking:  true,
			Message:     "no quality score supplied; run the quality analysis first",
		}}
	}

	checks := []Check{{
		ID:          "quality-score-available",
		Category:    CategoryQuality,
		Name:        "Quality score",
		Description: "quality analysis available for this article",
		Status:      StatusPass,
		Message:     fmt.Sprintf("overall quality %d", score.Overall),
	}}

	overall := Check{
		ID:          "quality-overall",
		Category:    CategoryQuality,
		Name:        "Overall quality",
		Description: fmt.Sprintf("overall quality score at least %d", cfg.MinQualityScore),
		IsBlocking:  true,
	}
	if score.Overall < cfg.MinQualityScore {
		overall.Status = StatusFail
		overall.Message = fmt.Sprintf("overall quality %d is below the %d minimum", score.Overall, cfg.MinQualityScore)
	} else {
		overall.Status = StatusPass
		overall.Message = fmt.Sprintf("overall quality %d", score.Overall)
	}
	checks = append(checks, overall)

	ai := Check{
		ID:          "quality-ai-detection",
		Category:    CategoryQuality,
		Name:        "AI detection",
		Description: fmt.Sprintf("humanness score at least %.0f", cfg.HumannessFloor),
		IsBlocking:  true,
	}
	if score.Humanness.Score < cfg.HumannessFloor {
		ai.Status = StatusFail
		ai.Message = fmt.Sprintf("humanness %.1f is below the %.0f floor", score.Humanness.Score, cfg.HumannessFloor)
	} else {
		ai.Status = StatusPass
		ai.Message = fmt.Sprintf("humanness %.1f", score.Humanness.Score)
	}
	checks = append(checks, ai)

	critical := Check{
		ID:          "quality-critical-issues",
		Category:    CategoryQuality,
		Name:        "Critical issues",
		Description: "no error-severity quality issues",
	}
	if n := score.ErrorCount(); n > 0 {
		critical.Message = fmt.Sprintf("%d error-severity issue(s) present", n)
		if cfg.AllowCriticalIssues {
			critical.Status = StatusWarning
		} else {
			critical.Status = StatusFail
			critical.IsBlocking = true
		}
		critical.AutoFixAvailable = anyAutoFixable(score.Issues)
	} else {
		critical.Status = StatusPass
		critical.Message = "no error-severity issues"
	}
	checks = append(checks, critical)

	return checks
}

func seoChecks(article Article, doc *parser.Document, cfg Config) []Check {
	var checks []Check

	keyword := Check{
		ID:          "seo-keyword-placement",
		Category:    CategorySEO,
		Name:        "Keyword placement",
		Description: "primary keyword in title and first paragraph",
	}
	if article.PrimaryKeyword == "" {
		keyword.Status = StatusSkipped
		keyword.Message = "no primary keyword configured"
	} else {
		kw := strings.ToLower(article.PrimaryKeyword)
		inTitle := strings.Contains(strings.ToLower(titleOf(article, doc)), kw)
		inFirst := strings.Contains(strings.ToLower(doc.FirstParagraph()), kw)
		switch {
		case inTitle && inFirst:
			keyword.Status = StatusPass
			keyword.Message = "keyword present in title and first paragraph"
		case !inTitle:
			keyword.Status = StatusFail
			keyword.Message = fmt.Sprintf("primary keyword %q missing from title", article.PrimaryKeyword)
		default:
			keyword.Status = StatusWarning
			keyword.Message = fmt.Sprintf("primary keyword %q missing from the first paragraph", article.PrimaryKeyword)
		}
	}
	checks = append(checks, keyword)

	headings := Check{
		ID:          "seo-heading-structure",
		Category:    CategorySEO,
		Name:        "Heading structure",
		Description: "single top-level heading, no skipped levels",
	}
	switch {
	case len(doc.Headings) == 0:
		headings.Status = StatusWarning
		headings.Message = "content has no headings"
	case len(doc.HeadingsOfLevel(1)) != 1:
		headings.Status = StatusWarning
		headings.Message = fmt.Sprintf("%d top-level headings, want exactly 1", len(doc.HeadingsOfLevel(1)))
	case !doc.ValidHeadingHierarchy():
		headings.Status = StatusWarning
		headings.Message = "heading levels skip at least one level"
	default:
		headings.Status = StatusPass
		headings.Message = "heading structure is valid"
	}
	checks = append(checks, headings)

	links := Check{
		ID:          "seo-links",
		Category:    CategorySEO,
		Name:        "Link counts",
		Description: "internal and external link minimums",
	}
	if cfg.MinInternalLinks == 0 && cfg.MinExternalLinks == 0 {
		links.Status = StatusSkipped
		links.Message = "no link minimums configured"
	} else {
		internal, external := doc.InternalLinkCount(), doc.ExternalLinkCount()
		if internal < cfg.MinInternalLinks || external < cfg.MinExternalLinks {
			links.Status = StatusWarning
			links.Message = fmt.Sprintf("%d internal / %d external links, want at least %d / %d",
				internal, external, cfg.MinInternalLinks, cfg.MinExternalLinks)
		} else {
			links.Status = StatusPass
			links.Message = fmt.Sprintf("%d internal / %d external links", internal, external)
		}
	}
	checks = append(checks, links)

	alt := Check{
		ID:          "seo-image-alt",
		Category:    CategorySEO,
		Name:        "Image alt text",
		Description: "every image carries alternative text",
	}
	switch {
	case len(doc.Images) == 0:
		alt.Status = StatusSkipped
		alt.Message = "content has no images"
	case doc.AllImagesHaveAlt():
		alt.Status = StatusPass
		alt.Message = fmt.Sprintf("all %d image(s) have alt text", len(doc.Images))
	default:
		alt.Status = StatusWarning
		alt.Message = "at least one image is missing alt text"
	}
	checks = append(checks, alt)

	return checks
}

func complianceChecks(article Article, doc *parser.Document, cfg Config) []Check {
	var checks []Check

	banned := Check{
		ID:          "compliance-banned-phrases",
		Category:    CategoryCompliance,
		Name:        "Banned phrases",
		Description: "no configured banned phrase appears in the content",
		IsBlocking:  true,
	}
	if len(cfg.BannedPhrases) == 0 {
		banned.Status = StatusSkipped
		banned.IsBlocking = false
		banned.Message = "no banned phrases configured"
	} else {
		var found []string
		lower := strings.ToLower(article.Content)
		for _, phrase := range cfg.BannedPhrases {
			p := strings.ToLower(strings.TrimSpace(phrase))
			if p != "" && strings.Contains(lower, p) {
				found = append(found, phrase)
			}
		}
		if len(found) > 0 {
			banned.Status = StatusFail
			banned.Message = fmt.Sprintf("banned phrase(s) present: %s", strings.Join(found, ", "))
		} else {
			banned.Status = StatusPass
			banned.Message = "no banned phrases found"
		}
	}
	checks = append(checks, banned)

	domains := Check{
		ID:          "compliance-blocked-domains",
		Category:    CategoryCompliance,
		Name:        "Blocked domains",
		Description: "no link points at a blocked domain",
		IsBlocking:  true,
	}
	if len(cfg.BlockedDomains) == 0 {
		domains.Status = StatusSkipped
		domains.IsBlocking = false
		domains.Message = "no blocked domains configured"
	} else {
		n := blockedLinkCount(doc, cfg.BlockedDomains)
		if n > 0 {
			domains.Status = StatusFail
			domains.Message = fmt.Sprintf("%d link(s) point at blocked domains", n)
		} else {
			domains.Status = StatusPass
			domains.Message = "no links to blocked domains"
		}
	}
	checks = append(checks, domains)

	freshness := Check{
		ID:          "compliance-freshness",
		Category:    CategoryCompliance,
		Name:        "Content freshness",
		Description: "content updated within the configured window",
	}
	switch {
	case cfg.MaxContentAge == 0 || article.UpdatedAt.IsZero():
		freshness.Status = StatusSkipped
		freshness.Message = "no freshness window configured"
	case time.Since(article.UpdatedAt) > cfg.MaxContentAge:
		freshness.Status = StatusWarning
		freshness.Message = fmt.Sprintf("content last updated %s ago, window is %s",
			time.Since(article.UpdatedAt).Round(time.Hour), cfg.MaxContentAge)
	default:
		freshness.Status = StatusPass
		freshness.Message = "content is within the freshness window"
	}
	checks = append(checks, freshness)

	return checks
}

// titleOf prefers the explicit metadata title, falling back to the
// document's first top-level heading.
func titleOf(article Article, doc *parser.Document) string {
	if article.Title != "" {
		return article.Title
	}
	return doc.Title
}

func blockedLinkCount(doc *parser.Document, domains []string) int {
	n := 0
	for _, link := range doc.Links {
		if link.Internal {
			continue
		}
		host := parser.HostOf(link.URL)
		for _, domain := range domains {
			if parser.DomainMatches(host, domain) {
				n++
				break
			}
		}
	}
	return n
}

func anyAutoFixable(issues []quality.Issue) bool {
	for _, issue := range issues {
		if issue.AutoFixable {
			return true
		}
	}
	return false
}
