package sections

import (
	"regexp"
	"strings"

	"resume-analyzer/internal/document"
	"resume-analyzer/internal/entities"
)

var (
	educationHeader = regexp.MustCompile(`(?mi)^[•\-\*]?\s*Education\s*:\s*(.+)$`)
	yearInRange     = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
)

var degreeKeywords = []string{
	"bachelor", "master", "phd", "b.sc", "m.sc", "b.tech", "m.tech",
	"mba", "bachelors", "masters", "doctor", "ba", "ma", "bs", "ms",
}

// Education holds header-anchored entries plus entity-derived degrees,
// universities and years. All fields are deduplicated sets.
type Education struct {
	Entries      []string `json:"entries"`
	Degrees      []string `json:"degrees"`
	Universities []string `json:"universities"`
	Years        []string `json:"years"`
	Score        int      `json:"score"`
}

// ExtractEducation combines an "Education:" header scan with entity-span
// filtering: ORG spans become universities, DATE spans or in-range years
// become years, and spans containing a degree keyword become degrees.
func ExtractEducation(doc document.Document, spans []entities.Span) Education {
	var entries []string
	for _, match := range educationHeader.FindAllStringSubmatch(doc.Raw(), -1) {
		entries = append(entries, splitItems(match[1], ",;", 0)...)
	}

	var degrees, universities, years []string
	for _, span := range spans {
		if span.Label == entities.LabelOrg {
			universities = append(universities, span.Text)
		}
		if span.Label == entities.LabelDate || yearInRange.MatchString(span.Text) {
			years = append(years, span.Text)
		}
		if containsDegreeKeyword(span.Text) {
			degrees = append(degrees, span.Text)
		}
	}

	return Education{
		Entries:      uniqueSorted(entries),
		Degrees:      uniqueSorted(degrees),
		Universities: uniqueSorted(universities),
		Years:        uniqueSorted(years),
	}
}

func containsDegreeKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, keyword := range degreeKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
