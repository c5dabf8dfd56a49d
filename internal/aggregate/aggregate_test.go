package aggregate

import (
	"testing"

	"resume-analyzer/internal/positions"
)

func TestWeighted(t *testing.T) {
	c := Components{
		Skills:            80,
		ATSCompatibility:  60,
		JobMatch:          70,
		ExperienceQuality: 50,
	}
	w := positions.Weights{Skills: 0.4, ATS: 0.3, Semantic: 0.2, Experience: 0.1}

	r := Weighted(c, w)

	// 32 + 18 + 14 + 5
	if r.FinalScore != 69 {
		t.Errorf("FinalScore = %v, want 69", r.FinalScore)
	}
	if r.Grade != "B-" {
		t.Errorf("Grade = %q, want B-", r.Grade)
	}
	if r.Percentile != 50 {
		t.Errorf("Percentile = %d, want 50", r.Percentile)
	}
	if r.Components.Skills != 80 {
		t.Errorf("Components.Skills = %v, want 80", r.Components.Skills)
	}
}

func TestWeightedRounding(t *testing.T) {
	c := Components{Skills: 33.333, ATSCompatibility: 33.333, JobMatch: 33.333, ExperienceQuality: 33.333}
	w := positions.Weights{Skills: 0.25, ATS: 0.25, Semantic: 0.25, Experience: 0.25}
	if r := Weighted(c, w); r.FinalScore != 33.3 {
		t.Fatalf("FinalScore = %v, want 33.3", r.FinalScore)
	}
}

func TestWeightedClamps(t *testing.T) {
	w := positions.Weights{Skills: 1}
	if r := Weighted(Components{Skills: 150}, w); r.FinalScore != 100 {
		t.Errorf("FinalScore = %v, want clamp to 100", r.FinalScore)
	}
	if r := Weighted(Components{Skills: -20}, w); r.FinalScore != 0 {
		t.Errorf("FinalScore = %v, want clamp to 0", r.FinalScore)
	}
}

func TestGrade(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{95, "A+"}, {90, "A+"},
		{89.9, "A"}, {85, "A"},
		{80, "A-"}, {75, "B+"}, {70, "B"}, {65, "B-"},
		{60, "C+"}, {55, "C"}, {50, "C-"},
		{49.9, "D"}, {0, "D"},
	}
	for _, tt := range tests {
		if got := Grade(tt.score); got != tt.want {
			t.Errorf("Grade(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestPercentileMonotonic(t *testing.T) {
	previous := -1
	for score := 0.0; score <= 100; score++ {
		p := Percentile(score)
		if p < previous {
			t.Fatalf("Percentile(%v) = %d, below previous %d", score, p, previous)
		}
		previous = p
	}
}

func TestPercentile(t *testing.T) {
	tests := []struct {
		score float64
		want  int
	}{
		{90, 95}, {82, 85}, {77, 75}, {72, 65}, {67, 50},
		{62, 35}, {57, 25}, {52, 15}, {30, 5},
	}
	for _, tt := range tests {
		if got := Percentile(tt.score); got != tt.want {
			t.Errorf("Percentile(%v) = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestJobLevel(t *testing.T) {
	tests := []struct {
		title string
		want  int
	}{
		{"Junior Software Engineer", LevelJunior},
		{"Associate Consultant", LevelJunior},
		{"Senior Data Scientist", LevelSenior},
		{"Staff Engineer", LevelLead},
		{"Engineering Manager", LevelManager},
		{"Principal Architect", LevelPrincipal},
		{"VP of Engineering", LevelExecutive},
		{"Chief Technology Officer", LevelExecutive},
		{"Software Engineer", LevelUnknown},
		{"", LevelUnknown},
	}
	for _, tt := range tests {
		if got := JobLevel(tt.title); got != tt.want {
			t.Errorf("JobLevel(%q) = %d, want %d", tt.title, got, tt.want)
		}
	}
}
