package recommend

import (
	"strings"
	"testing"
)

func TestGenerateAllTriggers(t *testing.T) {
	in := Input{
		PositionLabel:      "Software Engineer",
		ATSTotal:           30,
		SemanticScore:      20,
		RedFlags:           []string{"Missing email address", "Resume too short (< 150 words)"},
		RequiredMissing:    []string{"python", "sql", "git", "docker"},
		PreferredMissing:   []string{"aws", "kubernetes", "terraform", "react"},
		ExperienceQuality:  10,
		QuantifiedCount:    0,
		CertificationCount: 0,
		MatchingTermCount:  1,
	}

	set := Generate(in)

	// ATS + semantic + one per red flag.
	if len(set.Critical) != 4 {
		t.Fatalf("Critical has %d items, want 4", len(set.Critical))
	}
	if len(set.Important) != 3 {
		t.Fatalf("Important has %d items, want 3", len(set.Important))
	}
	if len(set.NiceToHave) != 3 {
		t.Fatalf("NiceToHave has %d items, want 3", len(set.NiceToHave))
	}

	if got := set.Critical[2].Issue; got != "Missing email address" {
		t.Errorf("red-flag item Issue = %q", got)
	}
	if got := set.Important[0].Issue; !strings.Contains(got, "python, sql, git") {
		t.Errorf("Core Skills Issue = %q, want first three missing skills", got)
	}
	if got := set.Important[0].Issue; strings.Contains(got, "docker") {
		t.Errorf("Core Skills Issue = %q, want at most three skills listed", got)
	}
	if got := set.NiceToHave[1].Action; !strings.Contains(got, "Software Engineer") {
		t.Errorf("certification Action = %q, want the position label", got)
	}
}

func TestGenerateNoTriggers(t *testing.T) {
	in := Input{
		PositionLabel:      "Data Scientist",
		ATSTotal:           90,
		SemanticScore:      85,
		ExperienceQuality:  80,
		QuantifiedCount:    5,
		CertificationCount: 2,
		MatchingTermCount:  8,
	}

	set := Generate(in)

	if len(set.Critical) != 0 || len(set.Important) != 0 || len(set.NiceToHave) != 0 {
		t.Fatalf("got %+v, want empty buckets", set)
	}
	if set.Critical == nil || set.Important == nil || set.NiceToHave == nil {
		t.Fatal("buckets must be non-nil")
	}
}

func TestGeneratePreferredThreshold(t *testing.T) {
	in := Input{
		ATSTotal:           100,
		SemanticScore:      100,
		ExperienceQuality:  100,
		QuantifiedCount:    5,
		CertificationCount: 1,
		MatchingTermCount:  9,
		PreferredMissing:   []string{"a", "b", "c"},
	}
	if set := Generate(in); len(set.Important) != 0 {
		t.Fatalf("Important = %v, want none at exactly three missing preferred skills", set.Important)
	}

	in.PreferredMissing = append(in.PreferredMissing, "d")
	set := Generate(in)
	if len(set.Important) != 1 {
		t.Fatalf("Important = %v, want one above the threshold", set.Important)
	}
	if !strings.Contains(set.Important[0].Issue, "4 preferred skills") {
		t.Fatalf("Issue = %q", set.Important[0].Issue)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	in := Input{ATSTotal: 40, RedFlags: []string{"x"}, MatchingTermCount: 2}
	first := Generate(in)
	second := Generate(in)
	if len(first.Critical) != len(second.Critical) ||
		first.Critical[0] != second.Critical[0] {
		t.Fatal("identical inputs produced different recommendations")
	}
}

func TestJoinFirst(t *testing.T) {
	if got := joinFirst([]string{"a", "b", "c", "d"}, 3); got != "a, b, c" {
		t.Errorf("joinFirst = %q", got)
	}
	if got := joinFirst([]string{"a"}, 3); got != "a" {
		t.Errorf("joinFirst = %q", got)
	}
	if got := joinFirst(nil, 3); got != "" {
		t.Errorf("joinFirst(nil) = %q", got)
	}
}
