package sections

import (
	"strings"

	"resume-analyzer/internal/document"
)

var leadershipKeywords = []string{
	"lead", "president", "organizer", "head", "captain",
	"coordinator", "manager", "director",
}

// Leadership holds lines that mention a leadership keyword.
type Leadership struct {
	Roles []string `json:"roles"`
	Count int      `json:"count"`
	Score int      `json:"score"`
}

// ExtractLeadership collects every line containing a leadership keyword.
// Count reflects the number of matching lines before deduplication, so a
// repeated role still counts toward the leadership sub-score.
func ExtractLeadership(doc document.Document) Leadership {
	var found []string
	for _, line := range doc.Lines() {
		lower := strings.ToLower(line)
		for _, keyword := range leadershipKeywords {
			if strings.Contains(lower, keyword) {
				found = append(found, strings.TrimSpace(line))
				break
			}
		}
	}
	return Leadership{Roles: uniqueSorted(found), Count: len(found)}
}
