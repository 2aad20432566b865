package parser

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/pthm/publint/internal/textutil"
)

// Parse builds a Document from raw article content. Frontmatter is
// split off first; the remaining body is walked as markdown. Plain
// text without any markup still parses: it becomes a sequence of
// paragraphs with no headings or links.
func Parse(content []byte) *Document {
	frontmatter, body := SplitFrontmatter(content)

	doc := &Document{
		Source:      body,
		Frontmatter: frontmatter,
	}

	md := goldmark.New()
	reader := text.NewReader(body)
	root := md.Parser().Parse(reader)

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			h := Heading{
				Level:  node.Level,
				Text:   string(node.Text(body)),
				Offset: nodeOffset(node),
			}
			doc.Headings = append(doc.Headings, h)
			if node.Level == 1 && doc.Title == "" {
				doc.Title = h.Text
			}

		case *ast.Paragraph:
			// Only prose blocks count as paragraphs; list items and
			// blockquote bodies are structural, not flow.
			if _, ok := node.Parent().(*ast.Document); ok {
				doc.Paragraphs = append(doc.Paragraphs, Paragraph{
					Text:   string(node.Text(body)),
					Offset: nodeOffset(node),
				})
			}

		case *ast.Link:
			u := string(node.Destination)
			doc.Links = append(doc.Links, Link{
				URL:      u,
				Text:     string(node.Text(body)),
				Internal: isInternalLink(u),
				Offset:   inlineOffset(node),
			})

		case *ast.AutoLink:
			u := string(node.URL(body))
			doc.Links = append(doc.Links, Link{
				URL:      u,
				Text:     u,
				Internal: isInternalLink(u),
				Offset:   inlineOffset(node),
			})

		case *ast.Image:
			doc.Images = append(doc.Images, Image{
				URL:    string(node.Destination),
				Alt:    string(node.Text(body)),
				Offset: inlineOffset(node),
			})

		case *ast.List:
			if node.IsOrdered() {
				doc.HasNumberedList = true
			} else {
				doc.HasBulletList = true
			}
		}

		return ast.WalkContinue, nil
	})

	doc.PlainText = textutil.StripMarkup(string(body))
	return doc
}

// nodeOffset returns the byte offset of a block node's first line.
func nodeOffset(n ast.Node) int {
	if n.Lines().Len() > 0 {
		return n.Lines().At(0).Start
	}
	return 0
}

// inlineOffset returns the byte offset of an inline node via its first
// text child, falling back to the enclosing block.
func inlineOffset(n ast.Node) int {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			return t.Segment.Start
		}
	}
	if parent := n.Parent(); parent != nil {
		return nodeOffset(parent)
	}
	return 0
}
