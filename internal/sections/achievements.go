package sections

import (
	"regexp"

	"resume-analyzer/internal/document"
)

var (
	achievementsHeader   = regexp.MustCompile(`(?mi)^[•\-\*]?\s*(?:Achievements|Awards)\s*:?\s*(.*)$`)
	certificationsHeader = regexp.MustCompile(`(?mi)^[•\-\*]?\s*(?:Certifications|Courses)\s*:?\s*(.*)$`)
)

// Achievements holds detected achievement/award items.
type Achievements struct {
	Items []string `json:"items"`
	Count int      `json:"count"`
	Score int      `json:"score"`
}

// Certifications holds detected certification/course items.
type Certifications struct {
	Items []string `json:"items"`
	Count int      `json:"count"`
	Score int      `json:"score"`
}

// ExtractAchievements captures items from "Achievements:"/"Awards:" lines.
func ExtractAchievements(doc document.Document) Achievements {
	items := headerItems(doc, achievementsHeader)
	return Achievements{Items: items, Count: len(items)}
}

// ExtractCertifications captures items from "Certifications:"/"Courses:" lines.
func ExtractCertifications(doc document.Document) Certifications {
	items := headerItems(doc, certificationsHeader)
	return Certifications{Items: items, Count: len(items)}
}

func headerItems(doc document.Document, header *regexp.Regexp) []string {
	var items []string
	for _, match := range header.FindAllStringSubmatch(doc.Raw(), -1) {
		if match[1] == "" {
			continue
		}
		items = append(items, splitItems(match[1], ",;", 2)...)
	}
	return uniqueSorted(items)
}
