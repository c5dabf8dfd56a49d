// Package skills matches resume text against per-position skill databases
// with exact and variation-based matching, scoring each hit by the context it
// appears in.
package skills

import (
	"strings"

	"resume-analyzer/internal/document"
	"resume-analyzer/internal/keywords"
	"resume-analyzer/internal/positions"
)

// relevance scoring constants. A matched skill starts at baseRelevance and is
// boosted per occurrence line, capped at maxRelevance.
const (
	baseRelevance    = 1.0
	sectionBoost     = 0.5
	actionVerbBoost  = 0.3
	quantifierBoost  = 0.4
	maxRelevance     = 3.0
	skillScoreWeight = 5 // aggregator normalization: skills found x 5, capped 100
)

// Match is the outcome of matching one resume against one position's skill
// database. Found preserves the configured category and skill order; Scores
// maps each matched skill (or variation) to its context relevance.
type Match struct {
	Found  map[string][]string `json:"foundSkills"`
	Scores map[string]float64  `json:"skillScores"`
	Total  int                 `json:"totalSkills"`
}

// MatchPosition performs case-insensitive substring matching of the
// position's skills and their known variations against the resume text.
func MatchPosition(doc document.Document, pos positions.Position, variations map[string][]string) Match {
	match := Match{
		Found:  make(map[string][]string, len(pos.Skills)),
		Scores: make(map[string]float64),
	}

	for _, category := range pos.Categories() {
		found := []string{}
		for _, skill := range pos.Skills[category] {
			if strings.Contains(doc.Lower(), skill) {
				found = append(found, skill)
				match.Scores[skill] = contextScore(doc, skill)
			}
			for _, variation := range variations[skill] {
				if strings.Contains(doc.Lower(), variation) && !contains(found, variation) {
					found = append(found, variation)
					match.Scores[variation] = contextScore(doc, variation)
				}
			}
		}
		match.Found[category] = found
		match.Total += len(found)
	}
	return match
}

// NormalizedScore maps the match onto the aggregator's 0-100 scale.
func (m Match) NormalizedScore() float64 {
	score := float64(m.Total * skillScoreWeight)
	if score > 100 {
		score = 100
	}
	return score
}

// contextScore rates how relevantly a skill is used: mentions on experience or
// project lines, next to action verbs, or next to quantified results all push
// the score up.
func contextScore(doc document.Document, skill string) float64 {
	score := baseRelevance
	for _, line := range doc.Lines() {
		lower := strings.ToLower(line)
		if !strings.Contains(lower, skill) {
			continue
		}
		if containsAny(lower, keywords.SectionKeywords) {
			score += sectionBoost
		}
		if containsAny(lower, keywords.ActionVerbs) {
			score += actionVerbBoost
		}
		if quantified(lower) {
			score += quantifierBoost
		}
	}
	if score > maxRelevance {
		score = maxRelevance
	}
	return score
}

func quantified(line string) bool {
	for _, pattern := range keywords.Quantifiers {
		if pattern.MatchString(line) {
			return true
		}
	}
	return false
}

func containsAny(text string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(text, needle) {
			return true
		}
	}
	return false
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
