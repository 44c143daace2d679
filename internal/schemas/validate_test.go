package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTermList_ValidArray(t *testing.T) {
	assert.NoError(t, ValidateTermList(`["Python", "AWS"]`))
}

func TestValidateTermList_EmptyArrayIsValid(t *testing.T) {
	assert.NoError(t, ValidateTermList(`[]`))
}

func TestValidateTermList_RejectsObject(t *testing.T) {
	err := ValidateTermList(`{"skills": ["Python"]}`)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateTermList_RejectsNonStringElements(t *testing.T) {
	assert.Error(t, ValidateTermList(`["Python", 42]`))
}

func TestValidateTermList_RejectsEmptyStrings(t *testing.T) {
	assert.Error(t, ValidateTermList(`["Python", ""]`))
}

func TestValidateTermList_MalformedJSON(t *testing.T) {
	assert.Error(t, ValidateTermList(`not json at all`))
}
