package training

import (
	"math/rand"

	"portal/backend/models"
)

// SelectQuestions picks a balanced subset of the question bank: the bank is
// partitioned by category, each partition is shuffled independently and
// ceil(count/categories) questions are taken from it, then the concatenation
// is shuffled and truncated to count.
//
// When a category holds fewer than its share the result is shorter than
// count; that is a known degradation of a thin bank, not an error. The random
// source is injected so tests can assert the partition properties.
func SelectQuestions(bank []models.AssessmentQuestion, count int, rng *rand.Rand) []models.AssessmentQuestion {
	if count <= 0 {
		return []models.AssessmentQuestion{}
	}

	categories := models.KnownCategories()
	perCategory := (count + len(categories) - 1) / len(categories)

	selected := make([]models.AssessmentQuestion, 0, count)
	for _, category := range categories {
		pool := make([]models.AssessmentQuestion, 0, len(bank))
		for _, q := range bank {
			if q.Category == category {
				pool = append(pool, q)
			}
		}
		rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
		if len(pool) > perCategory {
			pool = pool[:perCategory]
		}
		selected = append(selected, pool...)
	}

	rng.Shuffle(len(selected), func(i, j int) { selected[i], selected[j] = selected[j], selected[i] })
	if len(selected) > count {
		selected = selected[:count]
	}
	return selected
}
