package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/matching"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfig(t, `{
		"database_url": "postgres://localhost/matcher",
		"mode": "roles",
		"location": "Pune",
		"top_k": 20,
		"port": 9090
	}`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/matcher", cfg.DatabaseURL)
	assert.Equal(t, "roles", cfg.Mode)
	assert.Equal(t, "Pune", cfg.Location)
	assert.Equal(t, 20, cfg.TopK)
	assert.Equal(t, 9090, cfg.Port)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_MalformedJSON(t *testing.T) {
	path := writeConfig(t, `{not json`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_AcceptsZeroValues(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_RejectsUnknownMode(t *testing.T) {
	cfg := &Config{Mode: "hybrid"}
	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsBadPort(t *testing.T) {
	cfg := &Config{Port: 70000}
	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsBadProbeURL(t *testing.T) {
	cfg := &Config{ProbeURL: "not a url"}
	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults_FillsEmptyFields(t *testing.T) {
	cfg := Config{Mode: "roles"}

	merged := cfg.MergeWithDefaults(Config{
		DatabaseURL: "postgres://localhost/matcher",
		Mode:        "skills",
		TopK:        15,
	})

	assert.Equal(t, "postgres://localhost/matcher", merged.DatabaseURL)
	assert.Equal(t, "roles", merged.Mode) // explicit value wins
	assert.Equal(t, 15, merged.TopK)
}

func TestMatchConfig_DefaultsToSkills(t *testing.T) {
	cfg := Config{}

	mc, err := cfg.MatchConfig()

	require.NoError(t, err)
	assert.Equal(t, matching.ModeSkills, mc.Mode)
	assert.Equal(t, 15, mc.TopK)
	assert.Equal(t, 10, mc.TruncateN)
}

func TestMatchConfig_RolesMode(t *testing.T) {
	cfg := Config{Mode: "roles"}

	mc, err := cfg.MatchConfig()

	require.NoError(t, err)
	assert.Equal(t, matching.ModeRoles, mc.Mode)
	assert.Equal(t, 5, mc.TruncateN)
}

func TestMatchConfig_AppliesOverrides(t *testing.T) {
	cfg := Config{Mode: "skills", TopK: 25, TruncateN: 3, Location: "Chennai"}

	mc, err := cfg.MatchConfig()

	require.NoError(t, err)
	assert.Equal(t, 25, mc.TopK)
	assert.Equal(t, 3, mc.TruncateN)
	assert.Equal(t, "Chennai", mc.Location)
}

func TestMatchConfig_UnknownMode(t *testing.T) {
	cfg := Config{Mode: "hybrid"}
	_, err := cfg.MatchConfig()
	assert.Error(t, err)
}
