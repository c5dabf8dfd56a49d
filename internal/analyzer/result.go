package analyzer

import (
	"crypto/sha256"
	"encoding/hex"

	"resume-analyzer/internal/aggregate"
	"resume-analyzer/internal/recommend"
	"resume-analyzer/internal/scoring"
	"resume-analyzer/internal/sections"
	"resume-analyzer/internal/semantic"
	"resume-analyzer/internal/skills"
)

// Meta identifies one analysis. Fingerprint is derived from the input so
// identical requests produce identical results, with no hidden randomness.
type Meta struct {
	Fingerprint   string `json:"fingerprint"`
	Position      string `json:"position"`
	PositionLabel string `json:"positionLabel"`
	WordCount     int    `json:"wordCount"`
	LineCount     int    `json:"lineCount"`
}

// AnalysisResult is the complete assessment for one resume. It is built once
// per call and then owned by the caller; every field serializes to a tree of
// primitives, and list/map fields are always present even when empty.
type AnalysisResult struct {
	Meta Meta `json:"meta"`

	Sections sections.Extracted       `json:"sections"`
	Skills   skills.Match             `json:"skillAnalysis"`
	Required skills.RequirementsMatch `json:"requirementsMatch"`

	Base     scoring.Breakdown  `json:"baseScore"`
	Tech     scoring.TechSkills `json:"techSkills"`
	ATS      scoring.ATSResult  `json:"atsAnalysis"`
	Quality  scoring.Quality    `json:"experienceAnalysis"`
	RedFlags []string           `json:"redFlags"`

	Semantic semantic.MatchResult `json:"semanticAnalysis"`

	Weighted aggregate.Result `json:"finalScore"`

	Recommendations recommend.Set `json:"recommendations"`
}

// fingerprint derives the deterministic analysis identifier from the resolved
// position and the raw text.
func fingerprint(position, text string) string {
	sum := sha256.Sum256([]byte(position + "\x00" + text))
	return hex.EncodeToString(sum[:])
}
