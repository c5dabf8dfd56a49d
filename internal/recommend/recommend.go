// Package recommend derives prioritized, actionable improvement suggestions
// from the gaps the scorers and matchers identified. Generation is rule-based
// and deterministic: identical inputs always yield identical suggestions.
package recommend

import (
	"fmt"
	"strings"
)

// Impact levels carried by each recommendation.
const (
	ImpactHigh   = "High"
	ImpactMedium = "Medium"
	ImpactLow    = "Low"
)

// Trigger thresholds.
const (
	atsCriticalBelow        = 50
	semanticCriticalBelow   = 40
	experienceQualityBelow  = 40
	preferredMissingAbove   = 3
	quantifiedEnoughAt      = 3
	matchingTermsEnoughAt   = 5
	maxSkillsInActionString = 3
)

// Item is one suggestion: what is wrong, what to do about it and how much it
// matters.
type Item struct {
	Category string `json:"category"`
	Issue    string `json:"issue"`
	Action   string `json:"action"`
	Impact   string `json:"impact"`
}

// Set groups items into three priority buckets. Buckets are independent and
// always present; a resume without qualifying gaps gets empty lists.
type Set struct {
	Critical   []Item `json:"critical"`
	Important  []Item `json:"important"`
	NiceToHave []Item `json:"niceToHave"`
}

// Input is the normalized gap data the generator works from.
type Input struct {
	PositionLabel      string
	ATSTotal           int
	SemanticScore      float64
	RedFlags           []string
	RequiredMissing    []string
	PreferredMissing   []string
	ExperienceQuality  int
	QuantifiedCount    int
	CertificationCount int
	MatchingTermCount  int
}

// Generate produces at most one item per triggering condition.
func Generate(in Input) Set {
	set := Set{Critical: []Item{}, Important: []Item{}, NiceToHave: []Item{}}

	if in.ATSTotal < atsCriticalBelow {
		set.Critical = append(set.Critical, Item{
			Category: "ATS Compatibility",
			Issue:    "Resume may not pass ATS screening",
			Action:   "Add more action verbs and quantified achievements",
			Impact:   ImpactHigh,
		})
	}
	if in.SemanticScore < semanticCriticalBelow {
		set.Critical = append(set.Critical, Item{
			Category: "Job Relevance",
			Issue:    "Low semantic match with job requirements",
			Action:   fmt.Sprintf("Include more %s specific keywords and skills", in.PositionLabel),
			Impact:   ImpactHigh,
		})
	}
	for _, flag := range in.RedFlags {
		set.Critical = append(set.Critical, Item{
			Category: "Content Quality",
			Issue:    flag,
			Action:   "Review and improve resume content",
			Impact:   ImpactHigh,
		})
	}

	if len(in.RequiredMissing) > 0 {
		set.Important = append(set.Important, Item{
			Category: "Core Skills",
			Issue:    fmt.Sprintf("Missing key skills: %s", joinFirst(in.RequiredMissing, maxSkillsInActionString)),
			Action:   "Add these skills to your technical skills section",
			Impact:   ImpactMedium,
		})
	}
	if len(in.PreferredMissing) > preferredMissingAbove {
		set.Important = append(set.Important, Item{
			Category: "Preferred Skills",
			Issue:    fmt.Sprintf("Missing %d preferred skills", len(in.PreferredMissing)),
			Action:   fmt.Sprintf("Consider adding: %s", joinFirst(in.PreferredMissing, maxSkillsInActionString)),
			Impact:   ImpactMedium,
		})
	}
	if in.ExperienceQuality < experienceQualityBelow {
		set.Important = append(set.Important, Item{
			Category: "Experience Quality",
			Issue:    "Experience descriptions lack depth",
			Action:   "Add more detailed work experience with quantified achievements",
			Impact:   ImpactMedium,
		})
	}

	if in.QuantifiedCount < quantifiedEnoughAt {
		set.NiceToHave = append(set.NiceToHave, Item{
			Category: "Achievement Quantification",
			Issue:    "Insufficient quantified achievements",
			Action:   "Add specific numbers, percentages, and metrics to accomplishments",
			Impact:   ImpactLow,
		})
	}
	if in.CertificationCount == 0 {
		set.NiceToHave = append(set.NiceToHave, Item{
			Category: "Certifications",
			Issue:    "No relevant certifications",
			Action:   fmt.Sprintf("Consider getting certifications relevant to %s roles", in.PositionLabel),
			Impact:   ImpactLow,
		})
	}
	if in.MatchingTermCount < matchingTermsEnoughAt {
		set.NiceToHave = append(set.NiceToHave, Item{
			Category: "Keyword Optimization",
			Issue:    "Limited keyword overlap with job requirements",
			Action:   "Research job postings and include more relevant industry terms",
			Impact:   ImpactLow,
		})
	}

	return set
}

func joinFirst(items []string, limit int) string {
	if len(items) > limit {
		items = items[:limit]
	}
	return strings.Join(items, ", ")
}
