package sections

import (
	"regexp"
	"strings"

	"resume-analyzer/internal/document"
)

var labeledLine = regexp.MustCompile(`(?m)^[•\-\*]?\s*([A-Za-z ]+)\s*:\s*(.+)$`)

// Labeled maps normalized section names (lowercase, underscores for spaces)
// to the comma-separated items found on their header lines. It is a generic
// capture used by rendering layers; the dedicated extractors above remain the
// source of truth for scoring.
type Labeled map[string][]string

// ExtractLabeled scans every "Header: a, b, c" line in the document.
func ExtractLabeled(doc document.Document) Labeled {
	out := Labeled{}
	for _, match := range labeledLine.FindAllStringSubmatch(doc.Raw(), -1) {
		key := strings.ToLower(strings.TrimSpace(match[1]))
		key = strings.ReplaceAll(key, " ", "_")
		if key == "" {
			continue
		}
		out[key] = append(out[key], splitItems(match[2], ",", 0)...)
	}
	return out
}
