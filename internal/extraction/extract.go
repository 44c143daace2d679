// Package extraction derives a skill set or an ordered role list from free
// résumé text. The AI path is one text-completion call whose output is
// normalized through a strict-then-permissive parse chain; whenever the
// service is unreachable or the response is unusable, a deterministic
// corpus-bounded fallback takes over. No error escapes this package: the
// worst case is an empty profile.
package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/types"
)

// maxResumePromptChars caps how much résumé text goes into the prompt.
const maxResumePromptChars = 3000

// maxRoles caps the AI-recommended role list.
const maxRoles = 3

// JobSource provides a snapshot of the job corpus. Fallback skill extraction
// is corpus-bounded by design: a skill never seen in any posting cannot be
// discovered.
type JobSource interface {
	FetchAllJobs(ctx context.Context) ([]types.Job, error)
}

// Extractor wraps the LLM client and the corpus source. A nil client means
// fallback-only operation.
type Extractor struct {
	client llm.Client
	jobs   JobSource
}

// New creates an Extractor.
func New(client llm.Client, jobs JobSource) *Extractor {
	return &Extractor{client: client, jobs: jobs}
}

// ExtractSkills returns the deduplicated, lower-cased skill set found in the
// résumé. The AI path is skipped entirely when the liveness probe fails; a
// malformed or empty AI response falls back silently.
func (e *Extractor) ExtractSkills(ctx context.Context, resumeText string) types.Profile {
	if e.client == nil || !e.client.Available(ctx) {
		return e.fallbackSkills(ctx, resumeText)
	}

	resp, err := e.client.Complete(ctx, buildSkillPrompt(resumeText), llm.TierLite)
	if err != nil {
		return e.fallbackSkills(ctx, resumeText)
	}

	terms, ok := parseTermList(resp)
	if !ok {
		return e.fallbackSkills(ctx, resumeText)
	}

	skills := normalizeSkills(terms)
	if len(skills) == 0 {
		return e.fallbackSkills(ctx, resumeText)
	}

	return types.Profile{Kind: types.ProfileSkills, Terms: skills}
}

// RecommendRoles returns up to three role labels, best match first. The
// fallback scores a fixed set of role archetypes by keyword occurrence.
func (e *Extractor) RecommendRoles(ctx context.Context, resumeText string) types.Profile {
	if e.client == nil || !e.client.Available(ctx) {
		return fallbackRoles(resumeText)
	}

	resp, err := e.client.Complete(ctx, buildRolePrompt(resumeText), llm.TierLite)
	if err != nil {
		return fallbackRoles(resumeText)
	}

	terms, ok := parseTermList(resp)
	if !ok {
		return fallbackRoles(resumeText)
	}

	roles := normalizeRoles(terms)
	if len(roles) == 0 {
		return fallbackRoles(resumeText)
	}

	return types.Profile{Kind: types.ProfileRoles, Terms: roles}
}

// parseTermList runs the response through a strict schema gate first, then
// the permissive repair chain. The first success short-circuits.
func parseTermList(resp string) ([]string, bool) {
	cleaned := llm.CleanJSONBlock(resp)
	if schemas.ValidateTermList(cleaned) == nil {
		var terms []string
		if err := json.Unmarshal([]byte(cleaned), &terms); err == nil {
			return terms, true
		}
	}
	return llm.ParseStringArray(resp)
}

// fallbackSkills intersects the distinct skill tokens of the whole corpus
// with the résumé text (whole-word, case-insensitive). The result is sorted
// so extraction stays deterministic.
func (e *Extractor) fallbackSkills(ctx context.Context, resumeText string) types.Profile {
	profile := types.Profile{Kind: types.ProfileSkills, FromFallback: true}

	jobs, err := e.jobs.FetchAllJobs(ctx)
	if err != nil || len(jobs) == 0 {
		return profile
	}

	corpus := make(map[string]struct{})
	for _, job := range jobs {
		for _, skill := range scoring.SplitSkills(job.Skills) {
			corpus[skill] = struct{}{}
		}
	}

	resume := strings.ToLower(resumeText)
	for skill := range corpus {
		if scoring.ContainsWholeWord(resume, skill) {
			profile.Terms = append(profile.Terms, skill)
		}
	}
	sort.Strings(profile.Terms)

	return profile
}

// normalizeSkills lower-cases, trims, and deduplicates skill tokens, sorting
// the result for deterministic downstream behavior.
func normalizeSkills(terms []string) []string {
	seen := make(map[string]struct{}, len(terms))
	var out []string
	for _, t := range terms {
		s := strings.ToLower(strings.TrimSpace(t))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// normalizeRoles trims and deduplicates while preserving order (best match
// first), capped at maxRoles.
func normalizeRoles(terms []string) []string {
	seen := make(map[string]struct{}, len(terms))
	var out []string
	for _, t := range terms {
		r := strings.TrimSpace(t)
		if r == "" {
			continue
		}
		key := strings.ToLower(r)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
		if len(out) == maxRoles {
			break
		}
	}
	return out
}

func buildSkillPrompt(resumeText string) string {
	var sb strings.Builder

	sb.WriteString("You are a technical skill extraction expert. Analyze this resume and extract ONLY the technical skills mentioned.\n\n")
	sb.WriteString("Rules:\n")
	sb.WriteString("1. Extract programming languages, frameworks, libraries, tools, databases, cloud platforms\n")
	sb.WriteString("2. Return skills exactly as they appear in the resume\n")
	sb.WriteString("3. Do NOT add skills that are not explicitly mentioned\n")
	sb.WriteString("4. Return ONLY a JSON array of strings\n")
	sb.WriteString("5. Example format: [\"Python\", \"TensorFlow\", \"AWS\", \"Docker\", \"MySQL\"]\n\n")
	sb.WriteString("Resume:\n")
	sb.WriteString(truncate(resumeText, maxResumePromptChars))
	sb.WriteString("\n\nReturn only the JSON array, nothing else.\n")

	return sb.String()
}

func buildRolePrompt(resumeText string) string {
	var sb strings.Builder

	sb.WriteString("You are a career advisor. Based on this resume, recommend the job roles the candidate fits best.\n\n")
	sb.WriteString("Rules:\n")
	sb.WriteString(fmt.Sprintf("1. Recommend at most %d role titles, best match first\n", maxRoles))
	sb.WriteString("2. Use short conventional titles, e.g. \"Data Scientist\" or \"DevOps Engineer\"\n")
	sb.WriteString("3. Return ONLY a JSON array of strings\n")
	sb.WriteString("4. Example format: [\"Backend Developer\", \"DevOps Engineer\"]\n\n")
	sb.WriteString("Resume:\n")
	sb.WriteString(truncate(resumeText, maxResumePromptChars))
	sb.WriteString("\n\nReturn only the JSON array, nothing else.\n")

	return sb.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
