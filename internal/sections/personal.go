package sections

import (
	"regexp"
	"strings"

	"resume-analyzer/internal/document"
	"resume-analyzer/internal/entities"
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`(?:\+?1[-\s]?)?\(?[0-9]{3}\)?[-\s]?[0-9]{3}[-\s]?[0-9]{4}`)
	linkPattern  = regexp.MustCompile(`(?i)https?://[^\s]+|linkedin\.com/[^\s]+|github\.com/[^\s]+`)
	namePattern  = regexp.MustCompile(`^([A-Z][a-z]+(?:\s[A-Z][a-z]+)+)`)

	// City, ST or a numbered street line near the top of the resume.
	addressPattern = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s[A-Z][a-z]+)*,\s*[A-Z]{2}\b` +
		`|\b\d{1,5}\s+[A-Z][a-z]+\s+(?:Street|St|Avenue|Ave|Road|Rd|Drive|Dr|Lane|Ln|Blvd)\b`)
)

// PersonalInfo is the contact block extracted from a resume. Links is always
// non-nil; the remaining fields are empty strings when undetected.
type PersonalInfo struct {
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Phone   string   `json:"phone"`
	Address string   `json:"address"`
	Links   []string `json:"links"`
	Score   int      `json:"score"`
}

// Personal extracts name and contact details. The name comes from the first
// PERSON span with at least two tokens; when entity recognition yields
// nothing, the first five lines are scanned for a capitalized multi-word run.
func Personal(doc document.Document, spans []entities.Span) PersonalInfo {
	info := PersonalInfo{Links: []string{}}

	if email := emailPattern.FindString(doc.Raw()); email != "" {
		info.Email = email
	}
	if phone := phonePattern.FindString(doc.Raw()); phone != "" {
		info.Phone = phone
	}
	if links := linkPattern.FindAllString(doc.Raw(), -1); links != nil {
		info.Links = links
	}

	head := doc.Lines()
	if len(head) > 5 {
		head = head[:5]
	}
	for _, line := range head {
		if address := addressPattern.FindString(line); address != "" {
			info.Address = address
			break
		}
	}

	for _, span := range spans {
		if span.Label == entities.LabelPerson && len(strings.Fields(span.Text)) >= 2 {
			info.Name = span.Text
			break
		}
	}
	if info.Name == "" {
		lines := doc.Lines()
		if len(lines) > 5 {
			lines = lines[:5]
		}
		for _, line := range lines {
			if match := namePattern.FindString(strings.TrimSpace(line)); match != "" {
				info.Name = match
				break
			}
		}
	}

	return info
}

// HasEmail reports whether the text contains an email address, for callers
// that only need the presence check.
func HasEmail(text string) bool { return emailPattern.MatchString(text) }
