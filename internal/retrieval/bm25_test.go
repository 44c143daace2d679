package retrieval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

func job(title, company, description, skills string) types.Job {
	return types.Job{Title: title, Company: company, Description: description, Skills: skills}
}

func TestQuery_RanksOverlapHigher(t *testing.T) {
	jobs := []types.Job{
		job("Backend Engineer", "Acme", "Build Python services on AWS with Docker", "Python,AWS,Docker"),
		job("Frontend Developer", "Globex", "React and CSS work on a design system", "React,CSS"),
	}

	// "and" also appears in the frontend description, so both documents hit;
	// the heavy-overlap backend document must still rank first.
	hits := BuildIndex(jobs).Query("Python developer with AWS and Docker experience")

	require.Len(t, hits, 2)
	assert.Equal(t, 0, hits[0].JobIndex)
	assert.Greater(t, hits[0].Score, hits[1].Score)
}

func TestQuery_OmitsZeroScoreDocuments(t *testing.T) {
	jobs := []types.Job{
		job("Data Scientist", "Acme", "Machine learning with pandas", "Python,pandas"),
		job("Chef", "Bistro", "Cooking and kitchen management", "cooking"),
	}

	hits := BuildIndex(jobs).Query("pandas machine learning")

	require.Len(t, hits, 1)
	assert.Equal(t, 0, hits[0].JobIndex)
}

func TestQuery_DescendingOrder(t *testing.T) {
	jobs := []types.Job{
		job("A", "X", "python", "python"),
		job("B", "Y", "python python docker kubernetes aws react", "python"),
		job("C", "Z", "python docker", "python,docker"),
	}

	hits := BuildIndex(jobs).Query("python docker")

	require.Len(t, hits, 3)
	for i := 1; i < len(hits); i++ {
		assert.GreaterOrEqual(t, hits[i-1].Score, hits[i].Score)
	}
}

func TestQuery_EmptyIndex(t *testing.T) {
	assert.Nil(t, BuildIndex(nil).Query("anything"))
}

func TestQuery_EmptyQuery(t *testing.T) {
	jobs := []types.Job{job("A", "X", "python", "python")}
	assert.Nil(t, BuildIndex(jobs).Query(""))
	assert.Nil(t, BuildIndex(jobs).Query("  ,,, ")) // nothing tokenizes
}

func TestQuery_DuplicateQueryTermsCountOnce(t *testing.T) {
	jobs := []types.Job{job("A", "X", "python on aws", "python,aws")}

	once := BuildIndex(jobs).Query("python aws")
	twice := BuildIndex(jobs).Query("python python python aws")

	require.Len(t, once, 1)
	require.Len(t, twice, 1)
	assert.InDelta(t, once[0].Score, twice[0].Score, 1e-9)
}

func TestBuildIndex_BlankDescriptionUsesTitleAndCompany(t *testing.T) {
	jobs := []types.Job{job("Platform Engineer", "Initech", "", "Go")}

	hits := BuildIndex(jobs).Query("platform work at initech")

	require.Len(t, hits, 1)
	assert.Equal(t, 0, hits[0].JobIndex)
}

func TestQuery_TiesKeepOriginalOrder(t *testing.T) {
	// Identical documents score identically; stable sort keeps input order.
	jobs := []types.Job{
		job("A", "X", "python aws", "python,aws"),
		job("B", "Y", "python aws", "python,aws"),
	}

	hits := BuildIndex(jobs).Query("python")

	require.Len(t, hits, 2)
	assert.Equal(t, 0, hits[0].JobIndex)
	assert.Equal(t, 1, hits[1].JobIndex)
}
