package semantic

import (
	"context"
	"reflect"
	"testing"
)

func TestTFIDFSimilarityIdenticalTexts(t *testing.T) {
	text := "python developer building distributed systems"
	sim, err := TFIDF{}.Similarity(context.Background(), text, text)
	if err != nil {
		t.Fatalf("Similarity() error = %v", err)
	}
	if sim.Score < 99.9 || sim.Score > 100 {
		t.Fatalf("Score = %v, want ~100 for identical texts", sim.Score)
	}
	if len(sim.MatchingTerms) == 0 {
		t.Fatal("want matching terms for identical texts")
	}
}

func TestTFIDFSimilarityDisjointTexts(t *testing.T) {
	sim, err := TFIDF{}.Similarity(context.Background(),
		"gardening watercolor painting", "kubernetes golang microservices")
	if err != nil {
		t.Fatalf("Similarity() error = %v", err)
	}
	if sim.Score != 0 {
		t.Errorf("Score = %v, want 0 for disjoint texts", sim.Score)
	}
	if len(sim.MatchingTerms) != 0 {
		t.Errorf("MatchingTerms = %v, want none", sim.MatchingTerms)
	}
}

func TestTFIDFSimilarityDeterministic(t *testing.T) {
	resume := "experienced python developer, shipped django and react applications"
	job := "we need a python developer with django experience"

	first, _ := TFIDF{}.Similarity(context.Background(), resume, job)
	for i := 0; i < 5; i++ {
		again, _ := TFIDF{}.Similarity(context.Background(), resume, job)
		if again.Score != first.Score {
			t.Fatalf("run %d: Score = %v, want %v", i, again.Score, first.Score)
		}
		if !reflect.DeepEqual(again.MatchingTerms, first.MatchingTerms) {
			t.Fatalf("run %d: MatchingTerms = %v, want %v", i, again.MatchingTerms, first.MatchingTerms)
		}
	}
	if first.Score <= 0 || first.Score > 100 {
		t.Fatalf("Score = %v, want in (0, 100]", first.Score)
	}
}

func TestTFIDFMatchingTermsLimit(t *testing.T) {
	text := "alpha bravo charlie delta echo foxtrot golf hotel india juliett kilo lima"
	sim, _ := TFIDF{}.Similarity(context.Background(), text, text)
	if len(sim.MatchingTerms) > topTermCount {
		t.Fatalf("MatchingTerms has %d entries, want at most %d", len(sim.MatchingTerms), topTermCount)
	}
}

func TestTerms(t *testing.T) {
	counts := terms("The Python developer")
	// "the" is a stop-word; unigrams plus the surviving bigram remain.
	want := map[string]int{"python": 1, "developer": 1, "python developer": 1}
	if !reflect.DeepEqual(counts, want) {
		t.Fatalf("terms() = %v, want %v", counts, want)
	}
}

func TestTermsEmpty(t *testing.T) {
	if counts := terms(""); len(counts) != 0 {
		t.Fatalf("terms(\"\") = %v, want empty", counts)
	}
}
