package parser

import (
	"strings"
	"testing"
)

const sampleArticle = `---
title: Sample Article
keywords:
  - testing
---
# Sample Article

This is the opening paragraph with enough words to matter.

## First Section

Some body text with [an internal link](/about) and
[an external link](https://example.com/page).

![chart of results](chart.png)

## Second Section

- one
- two

1. first
2. second

Closing thoughts go here.
`

func TestParse(t *testing.T) {
	doc := Parse([]byte(sampleArticle))

	if doc.Title != "Sample Article" {
		t.Errorf("Title = %q, want %q", doc.Title, "Sample Article")
	}
	if doc.Frontmatter == nil {
		t.Fatal("expected frontmatter to be parsed")
	}
	if got := doc.Frontmatter["title"]; got != "Sample Article" {
		t.Errorf("frontmatter title = %v", got)
	}
	if len(doc.Headings) != 3 {
		t.Fatalf("Headings = %d, want 3", len(doc.Headings))
	}
	if doc.Headings[1].Level != 2 || doc.Headings[1].Text != "First Section" {
		t.Errorf("unexpected second heading: %+v", doc.Headings[1])
	}
	if !strings.HasPrefix(doc.FirstParagraph(), "This is the opening") {
		t.Errorf("FirstParagraph = %q", doc.FirstParagraph())
	}
	if doc.LastParagraph() != "Closing thoughts go here." {
		t.Errorf("LastParagraph = %q", doc.LastParagraph())
	}
	if got := doc.InternalLinkCount(); got != 1 {
		t.Errorf("InternalLinkCount = %d, want 1", got)
	}
	if got := doc.ExternalLinkCount(); got != 1 {
		t.Errorf("ExternalLinkCount = %d, want 1", got)
	}
	if len(doc.Images) != 1 || doc.Images[0].Alt != "chart of results" {
		t.Errorf("Images = %+v", doc.Images)
	}
	if !doc.AllImagesHaveAlt() {
		t.Error("AllImagesHaveAlt = false, want true")
	}
	if !doc.HasBulletList || !doc.HasNumberedList {
		t.Errorf("list detection: bullet=%v numbered=%v", doc.HasBulletList, doc.HasNumberedList)
	}
}

func TestParsePlainText(t *testing.T) {
	doc := Parse([]byte("Just a plain sentence.\n\nAnd another one."))

	if doc.Title != "" {
		t.Errorf("Title = %q, want empty", doc.Title)
	}
	if len(doc.Paragraphs) != 2 {
		t.Errorf("Paragraphs = %d, want 2", len(doc.Paragraphs))
	}
	if doc.Frontmatter != nil {
		t.Errorf("Frontmatter = %v, want nil", doc.Frontmatter)
	}
}

func TestParseEmpty(t *testing.T) {
	doc := Parse(nil)
	if len(doc.Paragraphs) != 0 || len(doc.Headings) != 0 {
		t.Errorf("empty parse produced content: %+v", doc)
	}
	if doc.PlainText != "" {
		t.Errorf("PlainText = %q, want empty", doc.PlainText)
	}
}

func TestValidHeadingHierarchy(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{
			name:    "clean descent",
			content: "# A\n\n## B\n\n### C\n\n## D\n",
			want:    true,
		},
		{
			name:    "skipped level",
			content: "# A\n\n### C\n",
			want:    false,
		},
		{
			name:    "no headings",
			content: "just text\n",
			want:    true,
		},
		{
			name:    "jump back up is fine",
			content: "# A\n\n## B\n\n### C\n\n# E\n\n## F\n",
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Parse([]byte(tt.content))
			if got := doc.ValidHeadingHierarchy(); got != tt.want {
				t.Errorf("ValidHeadingHierarchy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSplitFrontmatter(t *testing.T) {
	fm, body := SplitFrontmatter([]byte("---\ntitle: Hi\n---\nBody text"))
	if fm == nil || fm["title"] != "Hi" {
		t.Errorf("frontmatter = %v", fm)
	}
	if string(body) != "Body text" {
		t.Errorf("body = %q", string(body))
	}

	fm, body = SplitFrontmatter([]byte("no frontmatter here"))
	if fm != nil {
		t.Errorf("frontmatter = %v, want nil", fm)
	}
	if string(body) != "no frontmatter here" {
		t.Errorf("body = %q", string(body))
	}
}

func TestHostOf(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://Example.COM/path", "example.com"},
		{"https://user@sub.example.com:8080/x?q=1", "sub.example.com"},
		{"/relative/path", ""},
		{"#fragment", ""},
		{"mailto:someone@example.com", ""},
	}
	for _, tt := range tests {
		if got := HostOf(tt.url); got != tt.want {
			t.Errorf("HostOf(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestDomainMatches(t *testing.T) {
	tests := []struct {
		host, domain string
		want         bool
	}{
		{"spam.example", "spam.example", true},
		{"www.spam.example", "spam.example", true},
		{"notspam.example", "spam.example", false},
		{"spam.example.org", "spam.example", false},
		{"anything", "", false},
	}
	for _, tt := range tests {
		if got := DomainMatches(tt.host, tt.domain); got != tt.want {
			t.Errorf("DomainMatches(%q, %q) = %v, want %v", tt.host, tt.domain, got, tt.want)
		}
	}
}
