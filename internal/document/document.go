// Package document holds the immutable resume text value shared by every
// stage of the analysis pipeline.
package document

import "strings"

// Document is an immutable view of a resume's plain text, created once per
// analysis and never mutated afterwards. Derived views (lines, lowercased
// text, counts) are computed up front so extractors can share them without
// re-scanning the raw text.
type Document struct {
	raw       string
	lower     string
	lines     []string
	wordCount int
}

// New builds a Document from raw resume text. The empty string is a valid
// input and yields a document with zero words and a single empty line.
func New(text string) Document {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	return Document{
		raw:       normalized,
		lower:     strings.ToLower(normalized),
		lines:     strings.Split(normalized, "\n"),
		wordCount: len(strings.Fields(normalized)),
	}
}

// Raw returns the normalized resume text.
func (d Document) Raw() string { return d.raw }

// Lower returns the lowercased resume text.
func (d Document) Lower() string { return d.lower }

// Lines returns the resume split on newlines. Callers must not modify the
// returned slice.
func (d Document) Lines() []string { return d.lines }

// WordCount returns the number of whitespace-separated tokens.
func (d Document) WordCount() int { return d.wordCount }

// LineCount returns the number of lines.
func (d Document) LineCount() int { return len(d.lines) }

// ParagraphBreaks returns the number of blank-line separations, used by the
// formatting red-flag check.
func (d Document) ParagraphBreaks() int {
	return strings.Count(d.raw, "\n\n")
}
