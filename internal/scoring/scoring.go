// Package scoring provides the pure score functions used to rank a job
// posting against a résumé. All scores are in [0,100]; no function here has
// side effects or shared state.
package scoring

import (
	"regexp"
	"strings"
)

// Weights for the final blended score. They sum to 1.0, so FinalScore stays
// in [0,100] without re-clamping as long as each component is in [0,100].
const (
	locationWeight   = 0.50
	skillWeight      = 0.30
	experienceWeight = 0.15
	semanticWeight   = 0.05
)

// LocationScore compares the candidate's preferred location against a job
// location. Exact case-insensitive match scores 100, substring containment in
// either direction 70, any other non-empty pair 40, and 0 when either side is
// empty.
func LocationScore(userLocation, jobLocation string) float64 {
	if userLocation == "" || jobLocation == "" {
		return 0
	}

	u := strings.ToLower(userLocation)
	j := strings.ToLower(jobLocation)

	switch {
	case u == j:
		return 100
	case strings.Contains(j, u) || strings.Contains(u, j):
		return 70
	default:
		return 40
	}
}

// SkillScore is the fraction of the job's listed skills that appear as whole
// words in the résumé, scaled to [0,100]. jobSkills is a comma-separated
// string; tokens are trimmed and matched case-insensitively. An empty skill
// list scores 0.
func SkillScore(resumeText, jobSkills string) float64 {
	skills := SplitSkills(jobSkills)
	if len(skills) == 0 {
		return 0
	}

	resume := strings.ToLower(resumeText)
	matches := 0
	for _, skill := range skills {
		if ContainsWholeWord(resume, skill) {
			matches++
		}
	}

	return float64(matches) / float64(len(skills)) * 100
}

// ExperienceScore compares extracted years of experience. A job that states
// no requirement (0 years) is neutral and scores 50; otherwise the score is
// bucketed by the absolute difference.
func ExperienceScore(resumeYears, jobYears int) float64 {
	if jobYears == 0 {
		return 50
	}

	diff := resumeYears - jobYears
	if diff < 0 {
		diff = -diff
	}

	switch {
	case diff == 0:
		return 100
	case diff <= 2:
		return 70
	case diff <= 4:
		return 50
	default:
		return 20
	}
}

// FinalScore blends the four components with fixed weights
// (0.50 location, 0.30 skill, 0.15 experience, 0.05 semantic).
func FinalScore(location, skill, experience, semantic float64) float64 {
	return locationWeight*location +
		skillWeight*skill +
		experienceWeight*experience +
		semanticWeight*semantic
}

// SplitSkills splits a comma-separated skill string into trimmed, lower-cased
// tokens, dropping empties.
func SplitSkills(csv string) []string {
	if csv == "" {
		return nil
	}

	parts := strings.Split(csv, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		s := strings.ToLower(strings.TrimSpace(p))
		if s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// ContainsWholeWord reports whether needle occurs in haystack bounded by
// non-word characters. Both arguments are expected to be lower-cased already;
// needle is quoted so tokens like "c++" cannot break the pattern.
func ContainsWholeWord(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	re, err := regexp.Compile(`\b` + regexp.QuoteMeta(needle) + `\b`)
	if err != nil {
		return false
	}
	return re.MatchString(haystack)
}
