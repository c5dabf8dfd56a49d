// Package entities defines the named-entity-recognition capability consumed
// by the section extractors. The pipeline only depends on the Extractor
// interface; any model able to tag PERSON/ORG/DATE spans satisfies it.
package entities

// Label classifies an extracted span.
type Label string

const (
	LabelPerson Label = "PERSON"
	LabelOrg    Label = "ORG"
	LabelDate   Label = "DATE"
	LabelOther  Label = "OTHER"
)

// Span is a contiguous text fragment tagged with a semantic category, along
// with the sentence it was found in.
type Span struct {
	Text     string `json:"text"`
	Label    Label  `json:"label"`
	Sentence string `json:"sentence"`
}

// Extractor extracts labeled entity spans and sentence boundaries from raw
// text. Implementations must preserve document order and must degrade to an
// empty result rather than failing when the underlying model is unavailable.
type Extractor interface {
	Extract(text string) ([]Span, []string)
}

// Noop is an Extractor that always returns nothing. It stands in when no
// recognition model is configured; downstream extractors fall back to their
// regex paths.
type Noop struct{}

// Extract returns empty spans and sentences.
func (Noop) Extract(string) ([]Span, []string) {
	return []Span{}, []string{}
}
