// Package textutil provides the low-level text segmentation primitives
// shared by all analyzers: word, sentence, and paragraph splitting,
// syllable estimation, and markup stripping. Everything here is a pure
// function over its input.
package textutil

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	sentenceEndRe  = regexp.MustCompile(`[.!?]+(?:\s+|$)`)
	markupPatterns = []struct {
		re   *regexp.Regexp
		repl string
	}{
		{regexp.MustCompile("(?s)```.*?```"), " "},               // fenced code blocks
		{regexp.MustCompile("`[^`\n]*`"), " "},                   // inline code
		{regexp.MustCompile(`!\[([^\]]*)\]\([^)]*\)`), " "},      // images drop entirely
		{regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`), "$1"},      // links keep label
		{regexp.MustCompile(`<[^>\n]+>`), " "},                   // raw HTML tags
		{regexp.MustCompile(`(?m)^#{1,6}\s*`), ""},               // heading markers
		{regexp.MustCompile(`(?m)^\s*>\s?`), ""},                 // blockquote markers
		{regexp.MustCompile(`(?m)^\s*([-*+]|\d+[.)])\s+`), ""},   // list markers
		{regexp.MustCompile(`(?m)^(\s*[-*_]){3,}\s*$`), " "},     // horizontal rules
		{regexp.MustCompile(`[*_]{1,3}([^*_]+)[*_]{1,3}`), "$1"}, // emphasis
	}
)

// Words splits text into words. Punctuation is trimmed from both ends
// but internal apostrophes and hyphens are kept, so "don't" and
// "well-known" each count as one word.
func Words(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r)
	})

	words := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}

// Sentences splits text into sentences on terminal punctuation followed
// by whitespace or end of input. Degenerate input without terminators
// yields the whole text as a single sentence.
func Sentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var sentences []string
	last := 0
	for _, loc := range sentenceEndRe.FindAllStringIndex(text, -1) {
		s := strings.TrimSpace(text[last:loc[1]])
		if s != "" {
			sentences = append(sentences, s)
		}
		last = loc[1]
	}
	if rest := strings.TrimSpace(text[last:]); rest != "" {
		sentences = append(sentences, rest)
	}
	return sentences
}

// Paragraphs splits text into paragraphs on blank lines, dropping
// empty blocks.
func Paragraphs(text string) []string {
	blocks := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n")
	paragraphs := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if p := strings.TrimSpace(b); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// Syllables estimates the syllable count of a single word using a
// vowel-group heuristic. Trailing silent "e" and the "ed"/"es"
// suffixes are stripped before counting; very short words fall back
// to one syllable.
func Syllables(word string) int {
	word = strings.ToLower(strings.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r)
	}))
	if len(word) <= 3 {
		if word == "" {
			return 0
		}
		return 1
	}

	if strings.HasSuffix(word, "ed") || strings.HasSuffix(word, "es") {
		word = word[:len(word)-2]
	} else if strings.HasSuffix(word, "e") {
		word = word[:len(word)-1]
	}

	count := 0
	prevVowel := false
	for _, r := range word {
		isVowel := strings.ContainsRune("aeiouy", r)
		if isVowel && !prevVowel {
			count++
		}
		prevVowel = isVowel
	}

	if count == 0 {
		count = 1
	}
	return count
}

// TotalSyllables sums syllable estimates over words.
func TotalSyllables(words []string) int {
	total := 0
	for _, w := range words {
		total += Syllables(w)
	}
	return total
}

// StripMarkup removes markdown and inline HTML surface syntax, leaving
// the readable text. Link labels survive; image references, code, and
// structural markers do not.
func StripMarkup(text string) string {
	for _, p := range markupPatterns {
		text = p.re.ReplaceAllString(text, p.repl)
	}
	return strings.TrimSpace(text)
}
