package scoring

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationScore_ExactMatch(t *testing.T) {
	assert.Equal(t, 100.0, LocationScore("Hyderabad", "Hyderabad"))
	assert.Equal(t, 100.0, LocationScore("hyderabad", "HYDERABAD"))
}

func TestLocationScore_SubstringMatch(t *testing.T) {
	// Containment in either direction scores the same
	assert.Equal(t, 70.0, LocationScore("Hyderabad", "Hyderabad, India"))
	assert.Equal(t, 70.0, LocationScore("Hyderabad, India", "Hyderabad"))
}

func TestLocationScore_Mismatch(t *testing.T) {
	assert.Equal(t, 40.0, LocationScore("Hyderabad", "Bangalore"))
}

func TestLocationScore_EmptySides(t *testing.T) {
	assert.Equal(t, 0.0, LocationScore("", "Hyderabad"))
	assert.Equal(t, 0.0, LocationScore("Hyderabad", ""))
	assert.Equal(t, 0.0, LocationScore("", ""))
}

func TestSkillScore_AllMatch(t *testing.T) {
	resume := "Built services in Python and deployed them on AWS"
	assert.Equal(t, 100.0, SkillScore(resume, "Python,AWS"))
}

func TestSkillScore_PartialMatch(t *testing.T) {
	resume := "Built services in Python"
	assert.InDelta(t, 50.0, SkillScore(resume, "Python,AWS"), 0.001)
}

func TestSkillScore_WholeWordOnly(t *testing.T) {
	// "Java" must not match inside "JavaScript"
	assert.Equal(t, 0.0, SkillScore("Expert in JavaScript", "Java"))
	assert.Equal(t, 100.0, SkillScore("Expert in Java and JavaScript", "Java"))
}

func TestSkillScore_EmptySkillList(t *testing.T) {
	assert.Equal(t, 0.0, SkillScore("Python everywhere", ""))
	assert.Equal(t, 0.0, SkillScore("Python everywhere", " , ,"))
}

func TestSkillScore_UntrimmedTokens(t *testing.T) {
	resume := "Python and AWS in production"
	assert.Equal(t, 100.0, SkillScore(resume, " Python , AWS "))
}

func TestExperienceScore_NoRequirementIsNeutral(t *testing.T) {
	assert.Equal(t, 50.0, ExperienceScore(0, 0))
	assert.Equal(t, 50.0, ExperienceScore(7, 0))
}

func TestExperienceScore_Buckets(t *testing.T) {
	assert.Equal(t, 100.0, ExperienceScore(3, 3))
	assert.Equal(t, 70.0, ExperienceScore(5, 3))
	assert.Equal(t, 70.0, ExperienceScore(1, 3))
	assert.Equal(t, 50.0, ExperienceScore(7, 3))
	assert.Equal(t, 20.0, ExperienceScore(10, 3))
}

func TestFinalScore_Weights(t *testing.T) {
	// 0.50*100 + 0.30*100 + 0.15*70 + 0.05*100 = 95.5
	assert.InDelta(t, 95.5, FinalScore(100, 100, 70, 100), 0.001)
	assert.Equal(t, 0.0, FinalScore(0, 0, 0, 0))
	assert.InDelta(t, 100.0, FinalScore(100, 100, 100, 100), 0.001)
}

func TestFinalScore_StaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		score := FinalScore(rng.Float64()*100, rng.Float64()*100, rng.Float64()*100, rng.Float64()*100)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 100.0)
	}
}

func TestSplitSkills_TrimsAndLowercases(t *testing.T) {
	assert.Equal(t, []string{"python", "aws", "docker"}, SplitSkills(" Python , AWS ,Docker"))
}

func TestSplitSkills_DropsEmpties(t *testing.T) {
	assert.Equal(t, []string{"go"}, SplitSkills(",Go,, ,"))
	assert.Nil(t, SplitSkills(""))
}

func TestContainsWholeWord_Boundaries(t *testing.T) {
	assert.True(t, ContainsWholeWord("worked with python daily", "python"))
	assert.False(t, ContainsWholeWord("expert in javascript", "java"))
	assert.False(t, ContainsWholeWord("anything", ""))
}
