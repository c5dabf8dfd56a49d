package sections

import (
	"regexp"
	"strings"

	"resume-analyzer/internal/document"
)

var experienceHeader = regexp.MustCompile(`(?i)\bexperience\b`)

// windowCeiling bounds how many lines are captured after a section header.
const windowCeiling = 10

// Experience holds the captured experience block. YearsEstimate is a coarse
// proxy equal to half the captured line count; it does not parse date ranges.
type Experience struct {
	Entries       []string `json:"entries"`
	YearsEstimate int      `json:"yearsOfExperienceEstimate"`
	Score         int      `json:"score"`
}

// ExtractExperience captures the lines following the first line mentioning
// "experience", stopping at the first blank line or the window ceiling.
func ExtractExperience(doc document.Document) Experience {
	entries := []string{}
	lines := doc.Lines()
	for i, line := range lines {
		if !experienceHeader.MatchString(line) {
			continue
		}
		for j := i + 1; j < len(lines) && j < i+windowCeiling; j++ {
			trimmed := strings.TrimSpace(lines[j])
			if trimmed == "" {
				break
			}
			entries = append(entries, trimmed)
		}
		break
	}
	return Experience{
		Entries:       entries,
		YearsEstimate: len(entries) / 2,
	}
}
