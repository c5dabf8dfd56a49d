package sections

import (
	"regexp"

	"resume-analyzer/internal/document"
)

var projectsHeader = regexp.MustCompile(`(?mi)^[•\-\*]?\s*(?:Projects|Project Experience)\s*:?\s*(.*)$`)

// Projects holds detected project items as a deduplicated set.
type Projects struct {
	Items []string `json:"items"`
	Count int      `json:"count"`
	Score int      `json:"score"`
}

// ExtractProjects captures comma/semicolon-separated items from project
// header lines, discarding fragments of three characters or fewer.
func ExtractProjects(doc document.Document) Projects {
	var items []string
	for _, match := range projectsHeader.FindAllStringSubmatch(doc.Raw(), -1) {
		if match[1] == "" {
			continue
		}
		items = append(items, splitItems(match[1], ",;", 3)...)
	}
	deduped := uniqueSorted(items)
	return Projects{Items: deduped, Count: len(deduped)}
}
