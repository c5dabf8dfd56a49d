package semantic

import (
	"context"
	"strings"

	"resume-analyzer/internal/document"
	"resume-analyzer/internal/positions"
)

// Match grade thresholds.
const (
	matchExcellent = 80
	matchGood      = 65
	matchFair      = 50

	// neutralScore is returned by the fallback when a position has no
	// configured skills to compare against.
	neutralScore = 50
)

// MatchResult is the position-match outcome exposed on the analysis result.
type MatchResult struct {
	SimilarityScore float64  `json:"similarityScore"`
	MatchingTerms   []string `json:"matchingTerms"`
	Grade           string   `json:"matchGrade"`
	Fallback        bool     `json:"fallback"`
}

// Match compares the resume against the position's job-description template
// using the given engine. A nil engine or an engine error switches to the
// keyword-overlap fallback; Match itself never fails.
func Match(ctx context.Context, engine Engine, doc document.Document, pos positions.Position) MatchResult {
	if engine != nil {
		sim, err := engine.Similarity(ctx, doc.Raw(), pos.Template)
		if err == nil {
			if sim.MatchingTerms == nil {
				sim.MatchingTerms = []string{}
			}
			return MatchResult{
				SimilarityScore: sim.Score,
				MatchingTerms:   sim.MatchingTerms,
				Grade:           matchGrade(sim.Score),
			}
		}
	}
	return fallbackMatch(doc, pos)
}

// fallbackMatch is the deterministic degraded path: the ratio of the
// position's skills found in the text, scaled to 0-100.
func fallbackMatch(doc document.Document, pos positions.Position) MatchResult {
	required := pos.AllSkills()
	if len(required) == 0 {
		return MatchResult{
			SimilarityScore: neutralScore,
			MatchingTerms:   []string{},
			Grade:           matchGrade(neutralScore),
			Fallback:        true,
		}
	}

	found := []string{}
	for _, skill := range required {
		if strings.Contains(doc.Lower(), strings.ToLower(skill)) {
			found = append(found, skill)
		}
	}
	score := float64(len(found)) / float64(len(required)) * 100
	if len(found) > topTermCount {
		found = found[:topTermCount]
	}
	return MatchResult{
		SimilarityScore: score,
		MatchingTerms:   found,
		Grade:           matchGrade(score),
		Fallback:        true,
	}
}

func matchGrade(score float64) string {
	switch {
	case score >= matchExcellent:
		return "Excellent Match"
	case score >= matchGood:
		return "Good Match"
	case score >= matchFair:
		return "Fair Match"
	default:
		return "Poor Match"
	}
}
