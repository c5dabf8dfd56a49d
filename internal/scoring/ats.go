package scoring

import (
	"regexp"
	"strings"

	"resume-analyzer/internal/document"
	"resume-analyzer/internal/keywords"
	"resume-analyzer/internal/sections"
)

// ATS grade thresholds.
const (
	atsExcellent = 85
	atsGood      = 70
	atsFair      = 55
)

// loosePhonePattern is the separator-tolerant contact check used only for ATS
// completeness; extraction keeps the stricter pattern.
var loosePhonePattern = regexp.MustCompile(`\+?[\d\s\-()]{10,}`)

var recognizedSections = []string{"experience", "education", "skills", "projects"}

// ATSResult is the 0-100 compatibility score with its per-factor detail.
type ATSResult struct {
	Total       int          `json:"totalScore"`
	Grade       string       `json:"grade"`
	ActionVerbs CountedScore `json:"actionVerbs"`
	Quantified  CountedScore `json:"quantifiedAchievements"`
	Sections    CountedScore `json:"sections"`
	Length      LengthScore  `json:"length"`
	Contact     ContactScore `json:"contactInfo"`
}

// CountedScore pairs an occurrence count with the points it earned.
type CountedScore struct {
	Count int `json:"count"`
	Score int `json:"score"`
}

// LengthScore is the word-count band score.
type LengthScore struct {
	WordCount int `json:"wordCount"`
	Score     int `json:"score"`
}

// ContactScore reports contact-info completeness.
type ContactScore struct {
	Email bool `json:"email"`
	Phone bool `json:"phone"`
	Score int  `json:"score"`
}

// ATS scores resume compatibility with automated screening: action-verb
// density, quantified achievements, section structure, length band and
// contact completeness.
func ATS(doc document.Document) ATSResult {
	var r ATSResult

	verbCount := 0
	for _, verb := range keywords.ActionVerbs {
		if strings.Contains(doc.Lower(), verb) {
			verbCount++
		}
	}
	r.ActionVerbs = CountedScore{Count: verbCount, Score: capped(verbCount*2, 20)}

	quantCount := keywords.CountQuantifiers(doc.Raw())
	r.Quantified = CountedScore{Count: quantCount, Score: capped(quantCount*5, 25)}

	sectionCount := 0
	for _, section := range recognizedSections {
		if strings.Contains(doc.Lower(), section) {
			sectionCount++
		}
	}
	r.Sections = CountedScore{Count: sectionCount, Score: sectionCount * 5}

	r.Length = LengthScore{WordCount: doc.WordCount(), Score: lengthScore(doc.WordCount())}

	email := sections.HasEmail(doc.Raw())
	phone := loosePhonePattern.MatchString(doc.Raw())
	contact := 0
	if email {
		contact += 5
	}
	if phone {
		contact += 5
	}
	r.Contact = ContactScore{Email: email, Phone: phone, Score: contact}

	total := r.ActionVerbs.Score + r.Quantified.Score + r.Sections.Score + r.Length.Score + r.Contact.Score
	r.Total = capped(total, 100)
	r.Grade = atsGrade(r.Total)
	return r
}

func lengthScore(wordCount int) int {
	switch {
	case wordCount >= 300 && wordCount <= 800:
		return 15
	case (wordCount >= 200 && wordCount < 300) || (wordCount > 800 && wordCount <= 1000):
		return 10
	default:
		return 5
	}
}

func atsGrade(score int) string {
	switch {
	case score >= atsExcellent:
		return "Excellent"
	case score >= atsGood:
		return "Good"
	case score >= atsFair:
		return "Fair"
	default:
		return "Needs Improvement"
	}
}
