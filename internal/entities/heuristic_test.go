package entities

import (
	"reflect"
	"testing"
)

func spansWithLabel(spans []Span, label Label) []string {
	var out []string
	for _, s := range spans {
		if s.Label == label {
			out = append(out, s.Text)
		}
	}
	return out
}

func TestHeuristicExtract(t *testing.T) {
	text := "John Smith\n" +
		"Software Engineer at Acme Corp from 2019 - 2022\n" +
		"Education: Stanford University, Bachelor of Science, 2018"

	spans, sentences := Heuristic{}.Extract(text)

	if got := spansWithLabel(spans, LabelPerson); !reflect.DeepEqual(got, []string{"John Smith"}) {
		t.Errorf("PERSON spans = %v, want [John Smith]", got)
	}
	orgs := spansWithLabel(spans, LabelOrg)
	if len(orgs) != 2 || orgs[0] != "Acme Corp" || orgs[1] != "Stanford University" {
		t.Errorf("ORG spans = %v, want [Acme Corp, Stanford University]", orgs)
	}
	dates := spansWithLabel(spans, LabelDate)
	if !reflect.DeepEqual(dates, []string{"2019 - 2022", "2018"}) {
		t.Errorf("DATE spans = %v, want [2019 - 2022, 2018]", dates)
	}
	if len(sentences) != 3 {
		t.Errorf("sentences = %v, want 3 entries", sentences)
	}
}

func TestHeuristicSpansInDocumentOrder(t *testing.T) {
	spans, _ := Heuristic{}.Extract("Worked at Globex Inc since 2020. Maria Garcia led the team.")
	var labels []Label
	for _, s := range spans {
		labels = append(labels, s.Label)
	}
	want := []Label{LabelOrg, LabelDate, LabelPerson}
	if !reflect.DeepEqual(labels, want) {
		t.Fatalf("span order = %v, want %v", labels, want)
	}
}

func TestHeuristicDegreeSpans(t *testing.T) {
	spans, _ := Heuristic{}.Extract("Master of Science in Computer Science")
	degrees := spansWithLabel(spans, LabelOther)
	if len(degrees) == 0 {
		t.Fatal("expected at least one OTHER span for a degree phrase")
	}
}

func TestHeuristicRejectsHeaderNames(t *testing.T) {
	spans, _ := Heuristic{}.Extract("Work Experience\nTechnical Skills")
	if got := spansWithLabel(spans, LabelPerson); len(got) != 0 {
		t.Fatalf("PERSON spans = %v, want none for section headers", got)
	}
}

func TestHeuristicEmptyInput(t *testing.T) {
	spans, sentences := Heuristic{}.Extract("")
	if len(spans) != 0 || len(sentences) != 0 {
		t.Fatalf("Extract(\"\") = %v, %v, want empty results", spans, sentences)
	}
}

func TestNoop(t *testing.T) {
	spans, sentences := Noop{}.Extract("John Smith worked at Acme Corp in 2020.")
	if len(spans) != 0 || len(sentences) != 0 {
		t.Fatalf("Noop.Extract returned %v, %v, want empty results", spans, sentences)
	}
}

func TestSplitSentences(t *testing.T) {
	got := splitSentences("First sentence. Second one!\nThird line")
	want := []string{"First sentence.", "Second one!", "Third line"}
	var texts []string
	for _, s := range got {
		texts = append(texts, s.text)
	}
	if !reflect.DeepEqual(texts, want) {
		t.Fatalf("splitSentences = %v, want %v", texts, want)
	}
}
