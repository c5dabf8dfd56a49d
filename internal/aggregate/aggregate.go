// Package aggregate combines the independent component scores into the final
// position-weighted result: one weighted total, a letter grade and an
// estimated percentile bucket.
package aggregate

import (
	"math"

	"resume-analyzer/internal/positions"
)

// Components are the four normalized (0-100) inputs to the weighted score.
type Components struct {
	Skills            float64 `json:"skills"`
	ATSCompatibility  float64 `json:"atsCompatibility"`
	JobMatch          float64 `json:"jobMatch"`
	ExperienceQuality float64 `json:"experienceQuality"`
}

// Result is the final weighted assessment.
type Result struct {
	FinalScore float64    `json:"finalScore"`
	Components Components `json:"componentScores"`
	Grade      string     `json:"grade"`
	Percentile int        `json:"percentile"`
}

// Weighted combines the component scores using the position's weight vector.
// Inputs are expected on a 0-100 scale; the output is clamped the same way.
func Weighted(c Components, w positions.Weights) Result {
	final := c.Skills*w.Skills +
		c.ATSCompatibility*w.ATS +
		c.JobMatch*w.Semantic +
		c.ExperienceQuality*w.Experience
	final = round1(math.Min(math.Max(final, 0), 100))

	return Result{
		FinalScore: final,
		Components: Components{
			Skills:            round1(c.Skills),
			ATSCompatibility:  round1(c.ATSCompatibility),
			JobMatch:          round1(c.JobMatch),
			ExperienceQuality: round1(c.ExperienceQuality),
		},
		Grade:      Grade(final),
		Percentile: Percentile(final),
	}
}

// Grade maps a 0-100 score onto the ten-tier letter scale.
func Grade(score float64) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 85:
		return "A"
	case score >= 80:
		return "A-"
	case score >= 75:
		return "B+"
	case score >= 70:
		return "B"
	case score >= 65:
		return "B-"
	case score >= 60:
		return "C+"
	case score >= 55:
		return "C"
	case score >= 50:
		return "C-"
	default:
		return "D"
	}
}

// Percentile estimates where the score falls in a typical resume population.
// It is a monotonic step function, not a measured distribution.
func Percentile(score float64) int {
	switch {
	case score >= 85:
		return 95
	case score >= 80:
		return 85
	case score >= 75:
		return 75
	case score >= 70:
		return 65
	case score >= 65:
		return 50
	case score >= 60:
		return 35
	case score >= 55:
		return 25
	case score >= 50:
		return 15
	default:
		return 5
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
