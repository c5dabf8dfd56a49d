// Package scoring implements the deterministic scorers: the 90-point base
// score over section sub-scores, the independent 0-100 ATS compatibility
// score, the red-flag detector and the experience-quality analyzer.
package scoring

import (
	"resume-analyzer/internal/document"
	"resume-analyzer/internal/keywords"
	"resume-analyzer/internal/sections"
)

// Per-section caps for the base score. Their sum is MaxPossibleScore.
const (
	capPersonalInfo   = 10
	capExperience     = 15
	capTechSkills     = 20
	capProjects       = 10
	capEducation      = 8
	capAchievements   = 8
	capCertifications = 6
	capLeadership     = 5
	capContentQuality = 8

	redFlagPenalty = 2

	// MaxPossibleScore is the sum of all positive section caps.
	MaxPossibleScore = capPersonalInfo + capExperience + capTechSkills +
		capProjects + capEducation + capAchievements + capCertifications +
		capLeadership + capContentQuality
)

// Breakdown maps each scoring component to its awarded points. Summing the
// component caps yields MaxPossibleScore; Final is clamped to
// [0, MaxPossibleScore] after the red-flag penalty.
type Breakdown struct {
	PersonalInfo   int `json:"personalInfo"`
	Experience     int `json:"experience"`
	TechSkills     int `json:"techSkills"`
	Projects       int `json:"projects"`
	Education      int `json:"education"`
	Achievements   int `json:"achievements"`
	Certifications int `json:"certifications"`
	Leadership     int `json:"leadership"`
	ContentQuality int `json:"contentQuality"`

	RedFlagPenalty int     `json:"redFlagPenalty"`
	Final          int     `json:"final"`
	MaxPossible    int     `json:"maxPossible"`
	Percentage     float64 `json:"percentage"`
}

// Base computes the composite section score. It fills in the Score field of
// each section result so callers get sub-scores alongside the extracted data.
func Base(doc document.Document, ex *sections.Extracted, tech TechSkills, redFlags []string) Breakdown {
	b := Breakdown{MaxPossible: MaxPossibleScore}

	b.PersonalInfo = personalScore(ex.Personal)
	b.Experience = capped(len(ex.Experience.Entries)*2, capExperience)
	b.TechSkills = tech.Score
	b.Projects = capped(ex.Projects.Count*3, capProjects)
	b.Education = capped(len(ex.Education.Degrees)*4+len(ex.Education.Universities)*2, capEducation)
	b.Achievements = capped(ex.Achievements.Count*2, capAchievements)
	b.Certifications = capped(ex.Certifications.Count*2, capCertifications)
	b.Leadership = capped(ex.Leadership.Count*2, capLeadership)
	b.ContentQuality = contentQuality(doc)
	b.RedFlagPenalty = len(redFlags) * redFlagPenalty

	total := b.PersonalInfo + b.Experience + b.TechSkills + b.Projects +
		b.Education + b.Achievements + b.Certifications + b.Leadership +
		b.ContentQuality - b.RedFlagPenalty
	b.Final = clamp(total, 0, MaxPossibleScore)
	b.Percentage = float64(b.Final) / float64(MaxPossibleScore) * 100

	ex.Personal.Score = b.PersonalInfo
	ex.Experience.Score = b.Experience
	ex.Projects.Score = b.Projects
	ex.Education.Score = b.Education
	ex.Achievements.Score = b.Achievements
	ex.Certifications.Score = b.Certifications
	ex.Leadership.Score = b.Leadership

	return b
}

// personalScore awards presence points: name 3, email 3, phone 2, links 2.
func personalScore(info sections.PersonalInfo) int {
	score := 0
	if info.Name != "" {
		score += 3
	}
	if info.Email != "" {
		score += 3
	}
	if info.Phone != "" {
		score += 2
	}
	if len(info.Links) > 0 {
		score += 2
	}
	return score
}

func contentQuality(doc document.Document) int {
	score := 0
	if wc := doc.WordCount(); wc >= 200 && wc <= 600 {
		score += 3
	}
	if keywords.HasQuantifier(doc.Raw()) {
		score += 3
	}
	if doc.LineCount() > 15 {
		score += 2
	}
	return capped(score, capContentQuality)
}

func capped(score, cap int) int {
	if score > cap {
		return cap
	}
	return score
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
