package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStringArray_StrictArray(t *testing.T) {
	vals, ok := ParseStringArray(`["Python", "AWS", "Docker"]`)
	require.True(t, ok)
	assert.Equal(t, []string{"Python", "AWS", "Docker"}, vals)
}

func TestParseStringArray_FencedArray(t *testing.T) {
	raw := "```json\n[\"Go\", \"Kubernetes\"]\n```"
	vals, ok := ParseStringArray(raw)
	require.True(t, ok)
	assert.Equal(t, []string{"Go", "Kubernetes"}, vals)
}

func TestParseStringArray_ObjectUnwrapsFirstArray(t *testing.T) {
	raw := `{"note": "extracted", "skills": ["Python", "AWS"], "roles": ["SRE"]}`
	vals, ok := ParseStringArray(raw)
	require.True(t, ok)
	assert.Equal(t, []string{"Python", "AWS"}, vals)
}

func TestParseStringArray_ArrayBuriedInProse(t *testing.T) {
	raw := "Here are the skills I found:\n[\"Python\", \"TensorFlow\"]\nLet me know if you need more."
	vals, ok := ParseStringArray(raw)
	require.True(t, ok)
	assert.Equal(t, []string{"Python", "TensorFlow"}, vals)
}

func TestParseStringArray_SingleQuoteRepair(t *testing.T) {
	vals, ok := ParseStringArray(`['Go', 'AWS']`)
	require.True(t, ok)
	assert.Equal(t, []string{"Go", "AWS"}, vals)
}

func TestParseStringArray_SingleQuotedObjectValue(t *testing.T) {
	raw := `{'skills': ['Python', 'Docker']}`
	vals, ok := ParseStringArray(raw)
	require.True(t, ok)
	assert.Equal(t, []string{"Python", "Docker"}, vals)
}

func TestParseStringArray_ProseOnlyFails(t *testing.T) {
	_, ok := ParseStringArray("Sure, here are the skills: Python, AWS")
	assert.False(t, ok)
}

func TestParseStringArray_EmptyArrayIsSuccess(t *testing.T) {
	vals, ok := ParseStringArray(`[]`)
	assert.True(t, ok)
	assert.Empty(t, vals)
}

func TestParseStringArray_NonStringElementsDropped(t *testing.T) {
	vals, ok := ParseStringArray(`["Python", 42, null, "AWS"]`)
	require.True(t, ok)
	assert.Equal(t, []string{"Python", "AWS"}, vals)
}

func TestParseStringArray_ObjectWithoutArrayFails(t *testing.T) {
	_, ok := ParseStringArray(`{"skill": "Python"}`)
	assert.False(t, ok)
}
