// Package sections contains the heuristic extractors that pull individual
// resume sections out of raw text. Each extractor is a pure function of the
// document (plus read-only entity spans) and returns a result whose list
// fields are always present, possibly empty.
package sections

import (
	"sort"
	"strings"

	"resume-analyzer/internal/document"
	"resume-analyzer/internal/entities"
)

// Extracted bundles every section result for a single resume.
type Extracted struct {
	Personal       PersonalInfo   `json:"personalInfo"`
	Experience     Experience     `json:"experience"`
	Projects       Projects       `json:"projects"`
	Education      Education      `json:"education"`
	Achievements   Achievements   `json:"achievements"`
	Certifications Certifications `json:"certifications"`
	Leadership     Leadership     `json:"leadership"`
	Labeled        Labeled        `json:"labeled"`
}

// Extract runs every section extractor over the document. The entity
// extractor may return nothing; every extractor tolerates zero spans.
func Extract(doc document.Document, extractor entities.Extractor) Extracted {
	spans, _ := extractor.Extract(doc.Raw())
	return ExtractWithSpans(doc, spans)
}

// ExtractWithSpans is Extract for callers that already hold the entity spans.
func ExtractWithSpans(doc document.Document, spans []entities.Span) Extracted {
	return Extracted{
		Personal:       Personal(doc, spans),
		Experience:     ExtractExperience(doc),
		Projects:       ExtractProjects(doc),
		Education:      ExtractEducation(doc, spans),
		Achievements:   ExtractAchievements(doc),
		Certifications: ExtractCertifications(doc),
		Leadership:     ExtractLeadership(doc),
		Labeled:        ExtractLabeled(doc),
	}
}

// uniqueSorted deduplicates case-insensitively and sorts the survivors so
// set-valued fields are deterministic across runs.
func uniqueSorted(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, trimmed)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}

// splitItems breaks a captured section line into individual entries, keeping
// only those longer than the minimum length.
func splitItems(text string, separators string, minLen int) []string {
	items := strings.FieldsFunc(text, func(r rune) bool {
		return strings.ContainsRune(separators, r)
	})
	out := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if len(trimmed) > minLen {
			out = append(out, trimmed)
		}
	}
	return out
}
