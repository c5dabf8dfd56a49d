// Package keywords holds the shared keyword tables and patterns used by the
// skill matcher, the scorers and the red-flag detector. Everything here is
// read-only configuration initialized at package load.
package keywords

import "regexp"

// ActionVerbs are the resume action verbs recognized by the ATS and
// experience-quality scorers.
var ActionVerbs = []string{
	"achieved", "administered", "analyzed", "built", "collaborated", "created",
	"delivered", "developed", "executed", "implemented", "improved", "increased",
	"led", "managed", "optimized", "organized", "reduced", "resolved", "streamlined",
}

// RedFlagVerbs is the smaller verb list used by the red-flag detector. A
// resume matching none of these is flagged as lacking action verbs.
var RedFlagVerbs = []string{
	"managed", "developed", "built", "led", "created", "analyzed", "designed",
	"initiated", "collaborated", "implemented", "achieved", "improved", "optimized",
}

// Quantifiers are the patterns that recognize quantified achievements:
// percentages, currency amounts, magnitudes and counted nouns.
var Quantifiers = []*regexp.Regexp{
	regexp.MustCompile(`\d+%`),
	regexp.MustCompile(`\$\d+`),
	regexp.MustCompile(`(?i)\d+\s*(million|thousand|k|m)\b`),
	regexp.MustCompile(`(?i)\d+\s*(users|customers|clients)`),
	regexp.MustCompile(`(?i)\d+\s*(projects|teams|people)`),
	regexp.MustCompile(`(?i)\d+\s*(years|months)`),
	regexp.MustCompile(`(?i)\d+x\s*improvement`),
}

// quantifierFlag is the single combined pattern used by the red-flag detector
// and the content-quality bonus.
var quantifierFlag = regexp.MustCompile(`(?i)\b\d+%|\$\d+|\d+\s*(users|customers|projects|years)`)

// SectionKeywords mark lines that belong to experience-like content; a skill
// mentioned on such a line is considered more relevant.
var SectionKeywords = []string{"experience", "project", "work", "job"}

// TechnicalTerms indicate technical depth in experience descriptions.
var TechnicalTerms = []string{
	"api", "database", "framework", "algorithm", "optimization",
	"integration", "architecture", "scalability", "performance",
}

// HasQuantifier reports whether text contains at least one quantified
// achievement according to the combined red-flag pattern.
func HasQuantifier(text string) bool {
	return quantifierFlag.MatchString(text)
}

// CountQuantifiers returns the number of distinct quantifier patterns that
// match the text at least once.
func CountQuantifiers(text string) int {
	count := 0
	for _, pattern := range Quantifiers {
		if pattern.MatchString(text) {
			count++
		}
	}
	return count
}
