package training

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"portal/backend/models"
)

func TestReviewItems(t *testing.T) {
	questions := []models.AssessmentQuestion{
		question("q1", models.CategoryStride, "Spoofing"),
		question("q2", models.CategoryRisk, "Risk matrix"),
		question("q3", models.CategorySBOM, "SBOM basics"),
	}
	answers := map[string]string{
		"q1": "b", // correct
		"q2": "a", // wrong
		// q3 unanswered
	}

	items := ReviewItems(questions, answers)
	assert.Len(t, items, 3)

	assert.True(t, items[0].Correct)
	assert.Equal(t, "b", items[0].YourAnswer)

	assert.False(t, items[1].Correct)
	assert.Equal(t, "a", items[1].YourAnswer)
	assert.Equal(t, "b", items[1].CorrectAnswer)

	assert.False(t, items[2].Correct)
	assert.Empty(t, items[2].YourAnswer)
}

func TestRecommendedModules(t *testing.T) {
	modules := RecommendedModules([]models.QuestionCategory{models.CategoryStride, models.CategorySBOM})
	assert.Equal(t, []string{"threat-generation", "attack-path-analysis", "sbom-vulnerability"}, modules)

	assert.Empty(t, RecommendedModules(nil))
}

func TestRecommendedModulesAllKnown(t *testing.T) {
	for _, c := range models.KnownCategories() {
		assert.NotEmpty(t, RecommendedModules([]models.QuestionCategory{c}), "category %s", c)
	}
}
