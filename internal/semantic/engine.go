// Package semantic scores how well a resume matches a position's
// job-description template. The statistical text-similarity capability is
// pluggable; a deterministic keyword-overlap fallback covers its absence.
package semantic

import "context"

// Similarity is the outcome of comparing a resume against a job description.
// Score is on a 0-100 scale; MatchingTerms lists the strongest shared terms.
type Similarity struct {
	Score         float64  `json:"score"`
	MatchingTerms []string `json:"matchingTerms"`
}

// Engine computes text similarity between a resume and a job description.
// Implementations may call remote services; an error switches the matcher to
// its keyword-overlap fallback rather than failing the analysis.
type Engine interface {
	Similarity(ctx context.Context, resumeText, jobDescription string) (Similarity, error)
}
