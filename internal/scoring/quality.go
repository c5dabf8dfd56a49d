package scoring

import (
	"strings"

	"resume-analyzer/internal/keywords"
)

// experienceMarkers pick the sentences that describe work history.
var experienceMarkers = []string{"experience", "worked", "developed", "managed", "led", "built"}

// Quality is the 0-100 experience-quality score used as the aggregator's
// experience component.
type Quality struct {
	Score               int     `json:"qualityScore"`
	ActionVerbDiversity int     `json:"actionVerbDiversity"`
	QuantifiedResults   int     `json:"quantifiedResults"`
	TechnicalDepth      int     `json:"technicalDepth"`
	AvgSentenceLength   float64 `json:"avgSentenceLength"`
	SentenceCount       int     `json:"experienceSentenceCount"`
}

// ExperienceQuality rates the experience-describing sentences: distinct
// action verbs (x3, cap 30), quantified results (x5, cap 25), technical-term
// mentions (x2, cap 20) and a detail bonus from average sentence length.
func ExperienceQuality(allSentences []string) Quality {
	var experienceSentences []string
	for _, sent := range allSentences {
		lower := strings.ToLower(sent)
		for _, marker := range experienceMarkers {
			if strings.Contains(lower, marker) {
				experienceSentences = append(experienceSentences, sent)
				break
			}
		}
	}

	var q Quality
	q.SentenceCount = len(experienceSentences)

	verbsUsed := map[string]bool{}
	totalWords := 0
	for _, sent := range experienceSentences {
		lower := strings.ToLower(sent)
		for _, verb := range keywords.ActionVerbs {
			if strings.Contains(lower, verb) {
				verbsUsed[verb] = true
			}
		}
		for _, pattern := range keywords.Quantifiers {
			if pattern.MatchString(sent) {
				q.QuantifiedResults++
			}
		}
		for _, term := range keywords.TechnicalTerms {
			if strings.Contains(lower, term) {
				q.TechnicalDepth++
			}
		}
		totalWords += len(strings.Fields(sent))
	}
	q.ActionVerbDiversity = len(verbsUsed)

	if len(experienceSentences) > 0 {
		q.AvgSentenceLength = float64(totalWords) / float64(len(experienceSentences))
	}

	score := capped(q.ActionVerbDiversity*3, 30) +
		capped(q.QuantifiedResults*5, 25) +
		capped(q.TechnicalDepth*2, 20)
	switch {
	case q.AvgSentenceLength >= 15:
		score += 15
	case q.AvgSentenceLength >= 10:
		score += 10
	default:
		score += 5
	}
	q.Score = capped(score, 100)
	return q
}
