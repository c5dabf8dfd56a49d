package entities

import (
	"regexp"
	"sort"
	"strings"
)

var (
	datePattern = regexp.MustCompile(`\b(?:19|20)\d{2}(?:\s*[-–]\s*(?:(?:19|20)\d{2}|[Pp]resent))?\b` +
		`|\b(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:tember)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)\s+(?:19|20)\d{2}\b`)

	orgPattern = regexp.MustCompile(`\b(?:[A-Z][\w&.'-]*\s+){0,4}(?:University|Institute|College|Academy|School|Corp\.?|Corporation|Inc\.?|Ltd\.?|LLC|Labs?|Technologies|Tech|Systems|Solutions|Software|Company|Group|Consulting)\b` +
		`|\bUniversity\s+of\s+[A-Z][\w'-]*(?:\s+[A-Z][\w'-]*)?`)

	degreePattern = regexp.MustCompile(`(?i)\b(?:bachelor|master|doctor)(?:'?s)?(?:\s+of\s+[A-Za-z]+(?:\s+[A-Za-z]+)?)?|\b(?:B\.?Sc|M\.?Sc|B\.?Tech|M\.?Tech|MBA|PhD|Ph\.D)\b`)

	personPattern = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,2}\b`)
)

// personStopwords are capitalized tokens that disqualify a candidate person
// name; they cover section headers, months and organization suffixes the
// person pattern would otherwise pick up.
var personStopwords = map[string]bool{
	"Experience": true, "Education": true, "Skills": true, "Projects": true,
	"Certifications": true, "Achievements": true, "Awards": true, "Summary": true,
	"Objective": true, "Leadership": true, "Courses": true, "Resume": true,
	"University": true, "Institute": true, "College": true, "School": true,
	"Corp": true, "Inc": true, "Ltd": true, "Company": true, "Group": true,
	"Technologies": true, "Systems": true, "Solutions": true, "Software": true,
	"Senior": true, "Junior": true, "Lead": true, "Engineer": true,
	"Developer": true, "Manager": true, "Director": true, "Analyst": true,
	"Scientist": true, "January": true, "February": true, "March": true,
	"April": true, "May": true, "June": true, "July": true, "August": true,
	"September": true, "October": true, "November": true, "December": true,
	"Bachelor": true, "Master": true, "Doctor": true,
}

// Heuristic is the offline Extractor used when no external recognition model
// is wired in. It tags spans with regular expressions: four-digit years and
// month-year pairs as DATE, phrases ending in organization suffixes as ORG,
// title-cased two/three-word runs as PERSON and degree phrases as OTHER so
// the education extractor can pick them up.
type Heuristic struct{}

type candidate struct {
	offset int
	span   Span
}

// Extract scans the text sentence by sentence and returns the spans in
// document order together with the sentence boundaries.
func (Heuristic) Extract(text string) ([]Span, []string) {
	sents := splitSentences(text)
	sentences := make([]string, 0, len(sents))
	candidates := make([]candidate, 0, 16)

	for _, sent := range sents {
		sentences = append(sentences, sent.text)
		candidates = append(candidates, matchAll(sent, datePattern, LabelDate)...)
		candidates = append(candidates, matchAll(sent, orgPattern, LabelOrg)...)
		candidates = append(candidates, matchAll(sent, degreePattern, LabelOther)...)
		for _, c := range matchAll(sent, personPattern, LabelPerson) {
			if isPersonCandidate(c.span.Text) {
				candidates = append(candidates, c)
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].offset < candidates[j].offset
	})

	spans := make([]Span, 0, len(candidates))
	for _, c := range candidates {
		spans = append(spans, c.span)
	}
	return spans, sentences
}

func matchAll(sent sentence, pattern *regexp.Regexp, label Label) []candidate {
	var out []candidate
	for _, loc := range pattern.FindAllStringIndex(sent.text, -1) {
		matched := strings.TrimSpace(sent.text[loc[0]:loc[1]])
		if matched == "" {
			continue
		}
		out = append(out, candidate{
			offset: sent.offset + loc[0],
			span:   Span{Text: matched, Label: label, Sentence: sent.text},
		})
	}
	return out
}

func isPersonCandidate(text string) bool {
	for _, word := range strings.Fields(text) {
		if personStopwords[strings.Trim(word, ".,")] {
			return false
		}
		if len(word) < 2 {
			return false
		}
	}
	return true
}

type sentence struct {
	text   string
	offset int
}

// splitSentences cuts the text on newlines and on terminal punctuation
// followed by whitespace, keeping byte offsets so spans can be ordered across
// sentence boundaries.
func splitSentences(text string) []sentence {
	var out []sentence
	start := 0
	flush := func(end int) {
		raw := text[start:end]
		trimmed := strings.TrimSpace(raw)
		if trimmed != "" {
			out = append(out, sentence{text: trimmed, offset: start + strings.Index(raw, trimmed)})
		}
		start = end
	}
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			flush(i)
			start = i + 1
		case '.', '!', '?':
			if i+1 == len(text) || text[i+1] == ' ' || text[i+1] == '\n' || text[i+1] == '\t' {
				flush(i + 1)
			}
		}
	}
	if start < len(text) {
		flush(len(text))
	}
	return out
}
