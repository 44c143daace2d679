package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-matcher/internal/types"
)

func TestPrintProfile_ShowsKindAndSource(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfile(&types.Profile{
		Kind:         types.ProfileSkills,
		Terms:        []string{"aws", "docker", "python"},
		FromFallback: true,
	})

	out := buf.String()
	assert.Contains(t, out, "EXTRACTED PROFILE")
	assert.Contains(t, out, "skills")
	assert.Contains(t, out, "fallback")
	assert.Contains(t, out, "python")
}

func TestPrintProfile_TruncatesLongTermLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfile(&types.Profile{
		Kind:  types.ProfileSkills,
		Terms: []string{"a", "b", "c", "d", "e", "f", "g"},
	})

	assert.Contains(t, buf.String(), "... and 2 more")
}

func TestPrintProfile_NilIsNoop(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintProfile(nil)
	assert.Empty(t, buf.String())
}

func TestPrintMatches_ShowsScoresAndComponents(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatches([]types.RankedJob{{
		ID:         1,
		Title:      "Backend Engineer",
		Company:    "Acme",
		FinalScore: 95.5,
		Components: types.ScoreComponents{Location: 100, Skill: 100, Experience: 70, Semantic: 100},
	}})

	out := buf.String()
	assert.Contains(t, out, "MATCHED JOBS")
	assert.Contains(t, out, "Backend Engineer @ Acme")
	assert.Contains(t, out, "95.50")
	assert.Contains(t, out, "exp=70")
}

func TestPrintMatches_EmptyList(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintMatches(nil)
	assert.Contains(t, buf.String(), "No matching jobs found")
}
