package scoring

import (
	"fmt"
	"strings"

	"resume-analyzer/internal/document"
	"resume-analyzer/internal/grammar"
	"resume-analyzer/internal/keywords"
	"resume-analyzer/internal/sections"
)

const (
	shortResumeWords = 150
	longResumeWords  = 800

	// grammarCheckWindow bounds how much text is handed to the grammar
	// checker; issues beyond the opening are rarely worth a flag.
	grammarCheckWindow = 500
	grammarIssueLimit  = 3

	minParagraphBreaks = 2
)

// DetectRedFlags returns human-readable quality deficiencies. Each flag is
// independent of the others and each costs two points in the base score.
func DetectRedFlags(doc document.Document, checker grammar.Checker) []string {
	flags := []string{}

	switch wc := doc.WordCount(); {
	case wc < shortResumeWords:
		flags = append(flags, "Resume too short (< 150 words)")
	case wc > longResumeWords:
		flags = append(flags, "Resume too long (> 800 words)")
	}

	if !containsAnyWord(doc.Lower(), keywords.RedFlagVerbs) {
		flags = append(flags, "Lacks strong action verbs")
	}

	if !keywords.HasQuantifier(doc.Lower()) {
		flags = append(flags, "Missing quantified achievements")
	}

	if !sections.HasEmail(doc.Raw()) {
		flags = append(flags, "Missing email address")
	}

	if checker != nil {
		window := doc.Raw()
		if len(window) > grammarCheckWindow {
			window = window[:grammarCheckWindow]
		}
		if issues := checker.Check(window); len(issues) > grammarIssueLimit {
			flags = append(flags, fmt.Sprintf("Multiple grammar issues detected (%d)", len(issues)))
		}
	}

	if doc.ParagraphBreaks() < minParagraphBreaks {
		flags = append(flags, "Poor formatting - lacks proper spacing")
	}

	return flags
}

func containsAnyWord(text string, words []string) bool {
	for _, word := range words {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}
