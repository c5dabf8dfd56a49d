package aggregate

import (
	"regexp"
	"strings"
)

// Seniority levels derived from a job title.
const (
	LevelUnknown = iota
	LevelJunior
	LevelMid
	LevelSenior
	LevelLead
	LevelManager
	LevelPrincipal
	LevelExecutive
)

var levelPatterns = []struct {
	level   int
	pattern *regexp.Regexp
}{
	{LevelJunior, regexp.MustCompile(`\b(junior|entry-level|associate)\b`)},
	{LevelMid, regexp.MustCompile(`\b(mid-level|mid)\b`)},
	{LevelSenior, regexp.MustCompile(`\b(senior|sr)\b`)},
	{LevelLead, regexp.MustCompile(`\b(lead|staff)\b`)},
	{LevelManager, regexp.MustCompile(`\b(manager|director)\b`)},
	{LevelPrincipal, regexp.MustCompile(`\b(principal|architect)\b`)},
	{LevelExecutive, regexp.MustCompile(`\b(vp|vice president|c-level|chief)\b`)},
}

// JobLevel maps a job title to a 1-7 seniority level, from junior up to
// executive, or LevelUnknown when the title carries no seniority marker.
func JobLevel(title string) int {
	lower := strings.ToLower(title)
	for _, entry := range levelPatterns {
		if entry.pattern.MatchString(lower) {
			return entry.level
		}
	}
	return LevelUnknown
}
