package extraction

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// baselineRole is returned when no archetype keyword appears at all.
const baselineRole = "Software Engineer"

// roleArchetype associates a role label with the keyword phrases that signal
// it. Matching is plain substring search over the lower-cased résumé.
type roleArchetype struct {
	label    string
	keywords []string
}

// roleArchetypes is the fixed set used by weighted role detection. Order
// matters: it breaks score ties deterministically.
var roleArchetypes = []roleArchetype{
	{
		label:    "Software Engineer",
		keywords: []string{"software engineer", "software development", "backend", "microservices", "java", "golang", "c++", "api design"},
	},
	{
		label:    "Data Scientist",
		keywords: []string{"machine learning", "data science", "deep learning", "tensorflow", "pytorch", "statistics", "nlp", "model training"},
	},
	{
		label:    "Data Analyst",
		keywords: []string{"data analysis", "sql", "excel", "tableau", "power bi", "dashboards", "reporting"},
	},
	{
		label:    "DevOps Engineer",
		keywords: []string{"devops", "kubernetes", "docker", "terraform", "ci/cd", "jenkins", "infrastructure", "site reliability"},
	},
	{
		label:    "Frontend Developer",
		keywords: []string{"react", "javascript", "typescript", "css", "html", "frontend", "user interface"},
	},
}

// fallbackRoles scores each archetype by how many of its keyword phrases
// occur in the résumé and returns the best role plus the runner-up (when the
// runner-up scored at all). A résumé matching nothing gets the baseline role.
func fallbackRoles(resumeText string) types.Profile {
	resume := strings.ToLower(resumeText)

	scores := make([]int, len(roleArchetypes))
	for i, arch := range roleArchetypes {
		for _, kw := range arch.keywords {
			if strings.Contains(resume, kw) {
				scores[i]++
			}
		}
	}

	best, second := -1, -1
	for i, score := range scores {
		switch {
		case best == -1 || score > scores[best]:
			second = best
			best = i
		case second == -1 || score > scores[second]:
			second = i
		}
	}

	profile := types.Profile{Kind: types.ProfileRoles, FromFallback: true}

	if best == -1 || scores[best] == 0 {
		profile.Terms = []string{baselineRole}
		return profile
	}

	profile.Terms = []string{roleArchetypes[best].label}
	if second != -1 && scores[second] > 0 {
		profile.Terms = append(profile.Terms, roleArchetypes[second].label)
	}
	return profile
}
