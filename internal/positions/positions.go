// Package positions loads the static per-position configuration: skill
// databases, textual skill variations, job requirements, scoring weights and
// job-description templates. Configuration is loaded once at startup and is
// read-only afterwards, so any number of concurrent analyses may share it.
package positions

import (
	_ "embed"
	"fmt"
	"math"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Weights distributes the final score across the four analysis components.
// The four values must sum to 1.0.
type Weights struct {
	Skills     float64 `yaml:"skills" json:"skills"`
	ATS        float64 `yaml:"ats" json:"ats"`
	Semantic   float64 `yaml:"semantic" json:"semantic"`
	Experience float64 `yaml:"experience" json:"experience"`
}

// Requirements lists the skills a position expects.
type Requirements struct {
	Required  []string `yaml:"required" json:"required"`
	Preferred []string `yaml:"preferred" json:"preferred"`
}

// Position is the configuration for one target job role.
type Position struct {
	Label        string              `yaml:"label" json:"label"`
	Skills       map[string][]string `yaml:"skills" json:"skills"`
	Requirements Requirements        `yaml:"requirements" json:"requirements"`
	Weights      Weights             `yaml:"weights" json:"weights"`
	Template     string              `yaml:"template" json:"template"`
}

// Config is the full position database plus the global variation table.
type Config struct {
	Default    string              `yaml:"default"`
	Positions  map[string]Position `yaml:"positions"`
	Variations map[string][]string `yaml:"variations"`
}

// Default parses the embedded configuration. The embedded file is validated
// by tests, so a parse failure here is a build defect and panics.
func Default() *Config {
	cfg, err := parse(defaultsYAML)
	if err != nil {
		panic(fmt.Sprintf("positions: embedded defaults invalid: %v", err))
	}
	return cfg
}

// Load reads a configuration file from disk, falling back on validation of
// the same invariants the embedded defaults satisfy.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read positions config %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse positions config %s: %w", path, err)
	}
	return cfg, nil
}

func parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if len(c.Positions) == 0 {
		return fmt.Errorf("no positions configured")
	}
	if _, ok := c.Positions[c.Default]; !ok {
		return fmt.Errorf("default position %q is not configured", c.Default)
	}
	for name, pos := range c.Positions {
		sum := pos.Weights.Skills + pos.Weights.ATS + pos.Weights.Semantic + pos.Weights.Experience
		if math.Abs(sum-1.0) > 1e-9 {
			return fmt.Errorf("position %q: weights sum to %.3f, want 1.0", name, sum)
		}
	}
	return nil
}

// Resolve returns the configuration for the named position, falling back to
// the default for unknown names. The returned string is the canonical
// position name actually used. Resolution never fails.
func (c *Config) Resolve(name string) (string, Position) {
	if pos, ok := c.Positions[name]; ok {
		return name, pos
	}
	return c.Default, c.Positions[c.Default]
}

// Names returns the configured position names in sorted order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Positions))
	for name := range c.Positions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Categories returns the position's skill category names in sorted order so
// iteration over the database is deterministic.
func (p Position) Categories() []string {
	categories := make([]string, 0, len(p.Skills))
	for category := range p.Skills {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// AllSkills flattens every category into one list, preserving category order
// and the configured order within each category.
func (p Position) AllSkills() []string {
	var out []string
	for _, category := range p.Categories() {
		out = append(out, p.Skills[category]...)
	}
	return out
}
