package analyzer

import (
	"math"
	"strings"

	"github.com/pthm/publint/internal/parser"
	"github.com/pthm/publint/internal/textutil"
)

// A paragraph of at least this many words counts as a real
// introduction or conclusion.
const substantialParagraphWords = 50

// Average paragraph length target band, in words.
const (
	paragraphBandMin = 50
	paragraphBandMax = 150
)

var conclusionIndicators = []string{
	"in conclusion", "to conclude", "in summary", "to sum up",
	"finally", "ultimately", "overall", "takeaway", "wrapping up",
}

// StructureScore is the structure sub-score and its metrics.
type StructureScore struct {
	Score              float64 `json:"score"`
	HasIntroduction    bool    `json:"hasIntroduction"`
	HasConclusion      bool    `json:"hasConclusion"`
	HeadingCount       int     `json:"headingCount"`
	ParagraphCount     int     `json:"paragraphCount"`
	AvgParagraphLength float64 `json:"avgParagraphLength"`
	HasBulletList      bool    `json:"hasBulletList"`
	HasNumberedList    bool    `json:"hasNumberedList"`
	SectionBalance     float64 `json:"sectionBalance"`
	TitleHeadings      int     `json:"titleHeadings"`
	SectionHeadings    int     `json:"sectionHeadings"`
}

// Structure checks document composition: intro, conclusion, heading
// and paragraph balance, list usage.
type Structure struct{}

// NewStructure returns a stateless structure analyzer.
func NewStructure() Structure {
	return Structure{}
}

// Analyze scores the parsed document's composition. A base of 50 is
// adjusted by fixed additive bonuses, clamped to [0,100].
func (Structure) Analyze(doc *parser.Document) StructureScore {
	s := StructureScore{
		HeadingCount:    len(doc.Headings),
		ParagraphCount:  len(doc.Paragraphs),
		HasBulletList:   doc.HasBulletList,
		HasNumberedList: doc.HasNumberedList,
		TitleHeadings:   len(doc.HeadingsOfLevel(1)),
		SectionHeadings: len(doc.HeadingsOfLevel(2)),
	}

	totalWords := 0
	for _, p := range doc.Paragraphs {
		totalWords += len(textutil.Words(p.Text))
	}
	if s.ParagraphCount > 0 {
		s.AvgParagraphLength = float64(totalWords) / float64(s.ParagraphCount)
	}

	if first := doc.FirstParagraph(); len(textutil.Words(first)) >= substantialParagraphWords {
		s.HasIntroduction = true
	}
	if last := doc.LastParagraph(); last != "" {
		lower := strings.ToLower(last)
		for _, ind := range conclusionIndicators {
			if strings.Contains(lower, ind) {
				s.HasConclusion = true
				break
			}
		}
		if !s.HasConclusion && len(textutil.Words(last)) >= substantialParagraphWords {
			s.HasConclusion = true
		}
	}

	s.SectionBalance = sectionBalance(doc)

	score := 50.0
	if s.HasIntroduction {
		score += 10
	}
	if s.HasConclusion {
		score += 10
	}
	if s.TitleHeadings == 1 {
		score += 5
	}
	if s.SectionHeadings >= 3 {
		score += 10
	}
	if s.HasBulletList {
		score += 5
	}
	if s.HasNumberedList {
		score += 5
	}
	if s.SectionBalance > 70 {
		score += 5
	}
	if s.AvgParagraphLength >= paragraphBandMin && s.AvgParagraphLength <= paragraphBandMax {
		score += 5
	}

	s.Score = clamp(score)
	return s
}

// sectionBalance derives a 0-100 balance score from the spread of word
// counts across sections. Sections are delimited by the document's
// section-level headings (h2 under a single h1 title, otherwise the
// shallowest level present). One section or none scores a neutral 100.
func sectionBalance(doc *parser.Document) float64 {
	level := sectionLevel(doc)
	if level == 0 {
		return 100
	}

	counts := sectionWordCounts(doc, level)
	if len(counts) < 2 {
		return 100
	}

	sum := 0.0
	for _, c := range counts {
		sum += c
	}
	mean := sum / float64(len(counts))
	if mean == 0 {
		return 0
	}

	variance := 0.0
	for _, c := range counts {
		variance += (c - mean) * (c - mean)
	}
	variance /= float64(len(counts))

	// Coefficient of variation maps spread onto the score: identical
	// sections score 100, a spread equal to the mean scores 0.
	cv := math.Sqrt(variance) / mean
	return clamp(100 - cv*100)
}

// sectionLevel picks the heading level that delimits sections.
func sectionLevel(doc *parser.Document) int {
	if len(doc.Headings) == 0 {
		return 0
	}
	if len(doc.HeadingsOfLevel(1)) == 1 && len(doc.HeadingsOfLevel(2)) > 0 {
		return 2
	}
	min := 7
	for _, h := range doc.Headings {
		if h.Level < min {
			min = h.Level
		}
	}
	return min
}

// sectionWordCounts splits paragraphs into sections by comparing their
// offsets against the delimiting headings.
func sectionWordCounts(doc *parser.Document, level int) []float64 {
	headings := doc.HeadingsOfLevel(level)
	if len(headings) == 0 {
		return nil
	}

	counts := make([]float64, len(headings))
	for _, p := range doc.Paragraphs {
		idx := -1
		for i, h := range headings {
			if p.Offset >= h.Offset {
				idx = i
			}
		}
		if idx >= 0 {
			counts[idx] += float64(len(textutil.Words(p.Text)))
		}
	}
	return counts
}
