package gemini

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

type fakeGenerator struct {
	response string
	err      error
	prompt   string
}

func (f *fakeGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

func TestEngineSimilarity(t *testing.T) {
	gen := &fakeGenerator{response: `{"score": 82, "matching_terms": ["python", "sql"]}`}
	engine := NewEngine(gen, nil)

	sim, err := engine.Similarity(context.Background(), "resume body", "job body")
	if err != nil {
		t.Fatalf("Similarity() error = %v", err)
	}
	if sim.Score != 82 {
		t.Errorf("Score = %v, want 82", sim.Score)
	}
	if want := []string{"python", "sql"}; !reflect.DeepEqual(sim.MatchingTerms, want) {
		t.Errorf("MatchingTerms = %v, want %v", sim.MatchingTerms, want)
	}
	if !strings.Contains(gen.prompt, "resume body") || !strings.Contains(gen.prompt, "job body") {
		t.Error("prompt missing the resume or job description")
	}
}

func TestEngineSimilarityGeneratorError(t *testing.T) {
	engine := NewEngine(&fakeGenerator{err: errors.New("quota exceeded")}, nil)
	if _, err := engine.Similarity(context.Background(), "a", "b"); err == nil {
		t.Fatal("want the generator error to propagate")
	}
}

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantScore float64
		wantErr   bool
	}{
		{
			name:      "plain json",
			raw:       `{"score": 75, "matching_terms": ["go"]}`,
			wantScore: 75,
		},
		{
			name:      "fenced json",
			raw:       "```json\n{\"score\": 60, \"matching_terms\": []}\n```",
			wantScore: 60,
		},
		{
			name:      "string score",
			raw:       `{"score": "55.5", "matching_terms": []}`,
			wantScore: 55.5,
		},
		{
			name:      "score above range",
			raw:       `{"score": 250, "matching_terms": []}`,
			wantScore: 100,
		},
		{
			name:      "negative score",
			raw:       `{"score": -10, "matching_terms": []}`,
			wantScore: 0,
		},
		{
			name:    "no score",
			raw:     `{"matching_terms": ["x"]}`,
			wantErr: true,
		},
		{
			name:    "not json",
			raw:     "I think it is a good match.",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim, err := parseResponse(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatal("want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseResponse() error = %v", err)
			}
			if sim.Score != tt.wantScore {
				t.Fatalf("Score = %v, want %v", sim.Score, tt.wantScore)
			}
			if sim.MatchingTerms == nil {
				t.Fatal("MatchingTerms must be non-nil")
			}
		})
	}
}

func TestParseResponseNullTerms(t *testing.T) {
	sim, err := parseResponse(`{"score": 40}`)
	if err != nil {
		t.Fatal(err)
	}
	if sim.MatchingTerms == nil || len(sim.MatchingTerms) != 0 {
		t.Fatalf("MatchingTerms = %v, want empty non-nil", sim.MatchingTerms)
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`{"score": 1}`, `{"score": 1}`},
		{"```json\n{\"score\": 1}\n```", `{"score": 1}`},
		{"```\n{\"score\": 1}\n```", `{"score": 1}`},
		{"  {\"score\": 1}  ", `{"score": 1}`},
	}
	for _, tt := range tests {
		if got := extractJSON(tt.raw); got != tt.want {
			t.Errorf("extractJSON(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestCoerceFloat(t *testing.T) {
	if v, ok := coerceFloat(float64(42)); !ok || v != 42 {
		t.Errorf("coerceFloat(42) = %v, %v", v, ok)
	}
	if v, ok := coerceFloat(" 7.5 "); !ok || v != 7.5 {
		t.Errorf("coerceFloat(\" 7.5 \") = %v, %v", v, ok)
	}
	if _, ok := coerceFloat("not a number"); ok {
		t.Error("coerceFloat accepted a non-numeric string")
	}
	if _, ok := coerceFloat(nil); ok {
		t.Error("coerceFloat accepted nil")
	}
}
