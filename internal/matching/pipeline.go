// Package matching orchestrates the job matching pipeline: filter the corpus
// by the extracted profile, rank the survivors lexically, blend the retrieval
// rank into the heuristic scores, and return a bounded ordered result. The
// pipeline is stateless across calls; each match sees one corpus snapshot.
package matching

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/retrieval"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Mode selects the filter criterion the pipeline applies.
type Mode string

// Pipeline modes
const (
	// ModeSkills filters jobs whose skill list overlaps the extracted skills.
	ModeSkills Mode = "skills"
	// ModeRoles filters jobs whose title or skills mention a recommended role.
	ModeRoles Mode = "roles"
)

// Decay selects how a retrieval rank converts into the semantic component.
type Decay string

// Rank-decay policies
const (
	// DecayLinear maps rank r of n to (1 - r/n) * 100.
	DecayLinear Decay = "linear"
	// DecayHarmonic maps rank r of n to 100 / (1 + r/(n-1)).
	DecayHarmonic Decay = "harmonic"
)

// Config parameterizes the pipeline. The two historical variants are the two
// default constructors; nothing else differs between them.
type Config struct {
	Mode      Mode
	TopK      int    // retrieval depth
	TruncateN int    // final result cap
	Decay     Decay  // semantic rank-decay policy
	Location  string // default candidate location when a request gives none
}

// DefaultLocation is the documented default candidate location.
const DefaultLocation = "Hyderabad"

// SkillsConfig returns the skill-based variant defaults.
func SkillsConfig() Config {
	return Config{Mode: ModeSkills, TopK: 15, TruncateN: 10, Decay: DecayLinear, Location: DefaultLocation}
}

// RolesConfig returns the role-based variant defaults.
func RolesConfig() Config {
	return Config{Mode: ModeRoles, TopK: 10, TruncateN: 5, Decay: DecayHarmonic, Location: DefaultLocation}
}

// JobSource provides a fresh snapshot of the job corpus per match.
type JobSource interface {
	FetchAllJobs(ctx context.Context) ([]types.Job, error)
}

// Matcher runs the pipeline against a job source.
type Matcher struct {
	jobs JobSource
	cfg  Config
}

// New creates a Matcher.
func New(jobs JobSource, cfg Config) *Matcher {
	return &Matcher{jobs: jobs, cfg: cfg}
}

// Config returns the matcher's pipeline configuration.
func (m *Matcher) Config() Config {
	return m.cfg
}

// Match runs filter → retrieve → score → rank → truncate. An empty location
// falls back to the configured default. Any corpus failure or empty
// intermediate stage yields an empty result, never an error.
func (m *Matcher) Match(ctx context.Context, resumeText string, profile types.Profile, location string) []types.RankedJob {
	if profile.IsEmpty() {
		return nil
	}

	jobs, err := m.jobs.FetchAllJobs(ctx)
	if err != nil || len(jobs) == 0 {
		return nil
	}

	if location == "" {
		location = m.cfg.Location
	}

	filtered := m.filter(jobs, profile)
	if len(filtered) == 0 {
		return nil
	}

	selected := m.retrieve(filtered, resumeText)

	resumeYears := scoring.ExtractYears(resumeText)

	results := make([]types.RankedJob, 0, len(selected))
	for rank, jobIndex := range selected {
		job := filtered[jobIndex]

		components := types.ScoreComponents{
			Location:   scoring.LocationScore(location, job.Location),
			Skill:      scoring.SkillScore(resumeText, job.Skills),
			Experience: scoring.ExperienceScore(resumeYears, scoring.ExtractYears(job.Description)),
			Semantic:   semanticScore(rank, len(selected), m.cfg.Decay),
		}

		final := scoring.FinalScore(components.Location, components.Skill, components.Experience, components.Semantic)

		results = append(results, types.RankedJob{
			ID:          job.ID,
			Title:       job.Title,
			Company:     job.Company,
			Location:    job.Location,
			Description: job.Description,
			Skills:      job.Skills,
			FinalScore:  round2(final),
			Components:  components,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].FinalScore > results[j].FinalScore
	})

	if len(results) > m.cfg.TruncateN {
		results = results[:m.cfg.TruncateN]
	}
	return results
}

// filter keeps jobs that mention at least one profile term, per mode.
func (m *Matcher) filter(jobs []types.Job, profile types.Profile) []types.Job {
	var filtered []types.Job
	for _, job := range jobs {
		if m.jobMatches(job, profile.Terms) {
			filtered = append(filtered, job)
		}
	}
	return filtered
}

func (m *Matcher) jobMatches(job types.Job, terms []string) bool {
	jobSkills := strings.ToLower(job.Skills)
	jobTitle := strings.ToLower(job.Title)
	skillTokens := scoring.SplitSkills(job.Skills)

	for _, term := range terms {
		t := strings.ToLower(strings.TrimSpace(term))
		if t == "" {
			continue
		}

		switch m.cfg.Mode {
		case ModeRoles:
			if strings.Contains(jobTitle, t) || strings.Contains(jobSkills, t) {
				return true
			}
		default: // ModeSkills
			if strings.Contains(jobSkills, t) {
				return true
			}
			for _, token := range skillTokens {
				if strings.Contains(token, t) || strings.Contains(t, token) {
					return true
				}
			}
		}
	}
	return false
}

// retrieve ranks the filtered jobs against the résumé and returns indices
// into the filtered slice, best first, capped at TopK. When retrieval finds
// nothing for a non-empty set, the pipeline degrades to the full filtered set
// in original order rather than dropping every candidate.
func (m *Matcher) retrieve(filtered []types.Job, resumeText string) []int {
	hits := retrieval.BuildIndex(filtered).Query(resumeText)

	if len(hits) == 0 {
		indices := make([]int, len(filtered))
		for i := range filtered {
			indices[i] = i
		}
		return indices
	}

	if m.cfg.TopK > 0 && len(hits) > m.cfg.TopK {
		hits = hits[:m.cfg.TopK]
	}

	indices := make([]int, len(hits))
	for i, h := range hits {
		indices[i] = h.JobIndex
	}
	return indices
}

// semanticScore converts a 0-based retrieval rank among n selected documents
// into a [0,100] component.
func semanticScore(rank, n int, decay Decay) float64 {
	if n <= 1 {
		return 100
	}

	r := float64(rank)
	switch decay {
	case DecayHarmonic:
		return 100 / (1 + r/float64(n-1))
	default:
		return (1 - r/float64(n)) * 100
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
