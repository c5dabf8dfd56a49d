package positions

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Default != "software_engineer" {
		t.Errorf("Default = %q, want software_engineer", cfg.Default)
	}
	want := []string{"data_scientist", "marketing_manager", "product_manager", "software_engineer"}
	if got := cfg.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	if len(cfg.Variations["javascript"]) == 0 {
		t.Error("variations table missing javascript entries")
	}
	for name, pos := range cfg.Positions {
		if pos.Label == "" {
			t.Errorf("position %q has no label", name)
		}
		if pos.Template == "" {
			t.Errorf("position %q has no template", name)
		}
		if len(pos.Requirements.Required) == 0 {
			t.Errorf("position %q has no required skills", name)
		}
	}
}

func TestResolve(t *testing.T) {
	cfg := Default()

	name, pos := cfg.Resolve("data_scientist")
	if name != "data_scientist" || pos.Label != "Data Scientist" {
		t.Errorf("Resolve(data_scientist) = %q, %q", name, pos.Label)
	}

	name, pos = cfg.Resolve("astronaut")
	if name != "software_engineer" || pos.Label != "Software Engineer" {
		t.Errorf("Resolve(astronaut) = %q, %q, want the default", name, pos.Label)
	}

	if name, _ = cfg.Resolve(""); name != "software_engineer" {
		t.Errorf("Resolve(\"\") = %q, want the default", name)
	}
}

func TestCategoriesSorted(t *testing.T) {
	_, pos := Default().Resolve("software_engineer")
	categories := pos.Categories()
	for i := 1; i < len(categories); i++ {
		if categories[i-1] >= categories[i] {
			t.Fatalf("Categories() not strictly sorted: %v", categories)
		}
	}
}

func TestAllSkills(t *testing.T) {
	pos := Position{Skills: map[string][]string{
		"b_tools": {"docker"},
		"a_core":  {"python", "sql"},
	}}
	want := []string{"python", "sql", "docker"}
	if got := pos.AllSkills(); !reflect.DeepEqual(got, want) {
		t.Fatalf("AllSkills() = %v, want %v", got, want)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "positions.yaml")
	data := []byte(`default: tester
positions:
  tester:
    label: Tester
    weights: {skills: 0.5, ats: 0.2, semantic: 0.2, experience: 0.1}
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if name, pos := cfg.Resolve("anything"); name != "tester" || pos.Label != "Tester" {
		t.Fatalf("Resolve = %q, %q", name, pos.Label)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("Load() on a missing file returned nil error")
	}
}

func TestValidateRejectsBadWeights(t *testing.T) {
	_, err := parse([]byte(`default: x
positions:
  x:
    label: X
    weights: {skills: 0.9, ats: 0.9, semantic: 0, experience: 0}
`))
	if err == nil {
		t.Fatal("parse accepted weights that do not sum to 1.0")
	}
}

func TestValidateRejectsMissingDefault(t *testing.T) {
	_, err := parse([]byte(`default: absent
positions:
  x:
    label: X
    weights: {skills: 1, ats: 0, semantic: 0, experience: 0}
`))
	if err == nil {
		t.Fatal("parse accepted a default that is not configured")
	}
}

func TestWeightsSumToOne(t *testing.T) {
	for name, pos := range Default().Positions {
		sum := pos.Weights.Skills + pos.Weights.ATS + pos.Weights.Semantic + pos.Weights.Experience
		if sum < 0.999 || sum > 1.001 {
			t.Errorf("position %q weights sum to %v", name, sum)
		}
	}
}
