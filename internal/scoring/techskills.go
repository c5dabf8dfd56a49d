package scoring

import (
	"sort"
	"strings"

	"resume-analyzer/internal/document"
)

// techCategories is the position-independent keyword table behind the
// technical-skills sub-score. Programming and database hits are worth two
// points, everything else one.
var techCategories = map[string][]string{
	"programming":  {"python", "java", "javascript", "c++", "c#", "go", "rust", "swift", "kotlin", "php", "ruby", "scala", "r", "matlab"},
	"web":          {"html", "css", "react", "angular", "vue", "node.js", "express", "django", "flask", "spring", "laravel"},
	"database":     {"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch", "oracle", "sqlite"},
	"cloud":        {"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "jenkins", "gitlab", "github actions"},
	"data_science": {"pandas", "numpy", "scikit-learn", "tensorflow", "pytorch", "keras", "matplotlib", "seaborn", "tableau", "power bi"},
	"tools":        {"git", "jira", "confluence", "slack", "trello", "figma", "photoshop", "excel", "powerpoint"},
}

var doublePointCategories = map[string]bool{"programming": true, "database": true}

const diversityBonus = 5 // awarded when skills span at least four categories

// TechSkills is the technical-skills sub-score with its supporting matches.
type TechSkills struct {
	Score      int                 `json:"score"`
	ByCategory map[string][]string `json:"skillsByCategory"`
	TotalFound int                 `json:"totalSkillsFound"`
}

// ScoreTechSkills matches the static keyword table against the resume text.
func ScoreTechSkills(doc document.Document) TechSkills {
	result := TechSkills{ByCategory: make(map[string][]string, len(techCategories))}

	names := make([]string, 0, len(techCategories))
	for name := range techCategories {
		names = append(names, name)
	}
	sort.Strings(names)

	total := 0
	categoriesWithSkills := 0
	for _, category := range names {
		found := []string{}
		for _, skill := range techCategories[category] {
			if strings.Contains(doc.Lower(), skill) {
				found = append(found, skill)
				if doublePointCategories[category] {
					total += 2
				} else {
					total++
				}
			}
		}
		result.ByCategory[category] = found
		result.TotalFound += len(found)
		if len(found) > 0 {
			categoriesWithSkills++
		}
	}
	if categoriesWithSkills >= 4 {
		total += diversityBonus
	}

	result.Score = capped(total, capTechSkills)
	return result
}
