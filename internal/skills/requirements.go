package skills

import (
	"strings"

	"resume-analyzer/internal/document"
	"resume-analyzer/internal/positions"
)

// RequirementsMatch splits a position's required and preferred skills into
// found and missing sets for one resume. The four lists are always present.
type RequirementsMatch struct {
	RequiredFound      []string `json:"requiredFound"`
	RequiredMissing    []string `json:"requiredMissing"`
	PreferredFound     []string `json:"preferredFound"`
	PreferredMissing   []string `json:"preferredMissing"`
	RequiredMatchRate  float64  `json:"requiredMatchRate"`
	PreferredMatchRate float64  `json:"preferredMatchRate"`
}

// MatchRequirements checks each required and preferred skill against the
// resume text. Match rates are percentages; an empty skill list yields a 100%
// rate since nothing is missing.
func MatchRequirements(doc document.Document, req positions.Requirements) RequirementsMatch {
	match := RequirementsMatch{
		RequiredFound:    []string{},
		RequiredMissing:  []string{},
		PreferredFound:   []string{},
		PreferredMissing: []string{},
	}
	match.RequiredFound, match.RequiredMissing = splitFound(doc, req.Required)
	match.PreferredFound, match.PreferredMissing = splitFound(doc, req.Preferred)
	match.RequiredMatchRate = rate(len(match.RequiredFound), len(req.Required))
	match.PreferredMatchRate = rate(len(match.PreferredFound), len(req.Preferred))
	return match
}

func splitFound(doc document.Document, skills []string) (found, missing []string) {
	found, missing = []string{}, []string{}
	for _, skill := range skills {
		if strings.Contains(doc.Lower(), strings.ToLower(skill)) {
			found = append(found, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	return found, missing
}

func rate(found, total int) float64 {
	if total == 0 {
		return 100
	}
	return float64(found) / float64(total) * 100
}
