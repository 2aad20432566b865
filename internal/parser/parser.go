// Package parser turns raw article content into a Document: the
// structural view (title, headings, paragraphs, links, images) that the
// SEO and structure analyzers work from. Markdown is parsed with
// goldmark; YAML frontmatter is split off and decoded separately.
package parser

import (
	"net/url"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is the parsed structural view of one piece of content.
type Document struct {
	// Source is the content body with frontmatter removed.
	Source []byte

	// Frontmatter holds decoded YAML frontmatter, or nil.
	Frontmatter map[string]interface{}

	Title      string
	Headings   []Heading
	Paragraphs []Paragraph
	Links      []Link
	Images     []Image

	HasBulletList   bool
	HasNumberedList bool

	// PlainText is the body with markup stripped.
	PlainText string
}

// Heading is a single heading with its level and byte offset into the
// document source.
type Heading struct {
	Level  int
	Text   string
	Offset int
}

// Paragraph is a prose block with its byte offset into the source.
type Paragraph struct {
	Text   string
	Offset int
}

// Link is a hyperlink found in the content.
type Link struct {
	URL      string
	Text     string
	Internal bool
	Offset   int
}

// Image is an image reference with its alternative text.
type Image struct {
	URL    string
	Alt    string
	Offset int
}

// FirstParagraph returns the text of the first paragraph, or "".
func (d *Document) FirstParagraph() string {
	if len(d.Paragraphs) == 0 {
		return ""
	}
	return d.Paragraphs[0].Text
}

// LastParagraph returns the text of the last paragraph, or "".
func (d *Document) LastParagraph() string {
	if len(d.Paragraphs) == 0 {
		return ""
	}
	return d.Paragraphs[len(d.Paragraphs)-1].Text
}

// HeadingsOfLevel returns all headings at the given level, in order.
func (d *Document) HeadingsOfLevel(level int) []Heading {
	var out []Heading
	for _, h := range d.Headings {
		if h.Level == level {
			out = append(out, h)
		}
	}
	return out
}

// ValidHeadingHierarchy reports whether heading levels never skip a
// level on the way down (an h2 followed directly by an h4 is invalid).
func (d *Document) ValidHeadingHierarchy() bool {
	prev := 0
	for _, h := range d.Headings {
		if prev > 0 && h.Level > prev+1 {
			return false
		}
		prev = h.Level
	}
	return true
}

// InternalLinkCount counts links that stay on-site (relative URLs or
// bare fragments).
func (d *Document) InternalLinkCount() int {
	n := 0
	for _, l := range d.Links {
		if l.Internal {
			n++
		}
	}
	return n
}

// ExternalLinkCount counts links that leave the site.
func (d *Document) ExternalLinkCount() int {
	return len(d.Links) - d.InternalLinkCount()
}

// AllImagesHaveAlt reports whether every image carries alternative
// text. Vacuously true when there are no images.
func (d *Document) AllImagesHaveAlt() bool {
	for _, img := range d.Images {
		if strings.TrimSpace(img.Alt) == "" {
			return false
		}
	}
	return true
}

// isInternalLink classifies a URL as on-site. Anything without a
// scheme and host is treated as internal.
func isInternalLink(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return true
	}
	return u.Scheme == "" || u.Host == ""
}

// HostOf returns the lowercased host of a URL, or "" when the URL has
// none or does not parse.
func HostOf(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}

// DomainMatches reports whether host is domain or a subdomain of it.
func DomainMatches(host, domain string) bool {
	domain = strings.ToLower(strings.TrimSpace(domain))
	if domain == "" || host == "" {
		return false
	}
	return host == domain || strings.HasSuffix(host, "."+domain)
}

// SplitFrontmatter extracts YAML frontmatter between --- delimiters.
// Returns the decoded frontmatter (nil if absent or malformed) and the
// remaining content.
func SplitFrontmatter(content []byte) (map[string]interface{}, []byte) {
	s := string(content)
	if !strings.HasPrefix(s, "---") {
		return nil, content
	}

	rest := s[3:]
	endIdx := strings.Index(rest, "\n---")
	if endIdx == -1 {
		return nil, content
	}

	var frontmatter map[string]interface{}
	if err := yaml.Unmarshal([]byte(strings.TrimSpace(rest[:endIdx])), &frontmatter); err != nil {
		return nil, content
	}

	remaining := rest[endIdx+4:]
	if strings.HasPrefix(remaining, "\n") {
		remaining = remaining[1:]
	}
	return frontmatter, []byte(remaining)
}
