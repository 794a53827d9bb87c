package training

import (
	"math"

	"portal/backend/models"
)

type CategoryScore struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// AssessmentScore is the scored outcome of an administered question set.
// CategoryScores always contains every known category, zero-filled when no
// question of that category was administered.
type AssessmentScore struct {
	Score          int                                            `json:"score"`
	Total          int                                            `json:"total"`
	Percentage     int                                            `json:"percentage"`
	CategoryScores map[models.QuestionCategory]CategoryScore `json:"category_scores"`
}

// CalculateResults scores an answer map against the administered questions.
// Total is the administered count, not the full bank. An empty question set
// scores 0%, never a division error.
func CalculateResults(questions []models.AssessmentQuestion, answers map[string]string) AssessmentScore {
	categories := make(map[models.QuestionCategory]CategoryScore, 4)
	for _, c := range models.KnownCategories() {
		categories[c] = CategoryScore{}
	}

	correct := 0
	for _, q := range questions {
		bucket := categories[q.Category]
		bucket.Total++
		if answers[q.ID] == q.CorrectAnswer {
			correct++
			bucket.Correct++
		}
		categories[q.Category] = bucket
	}

	percentage := 0
	if len(questions) > 0 {
		percentage = int(math.Round(float64(correct) / float64(len(questions)) * 100))
	}

	return AssessmentScore{
		Score:          correct,
		Total:          len(questions),
		Percentage:     percentage,
		CategoryScores: categories,
	}
}

// WeakAreas lists the categories where the user got under half of the
// administered questions right. Categories with no administered questions are
// never weak. Order follows the catalog category order so output is stable.
func WeakAreas(score AssessmentScore) []models.QuestionCategory {
	weak := []models.QuestionCategory{}
	for _, c := range models.KnownCategories() {
		s := score.CategoryScores[c]
		if s.Total > 0 && float64(s.Correct)/float64(s.Total) < 0.5 {
			weak = append(weak, c)
		}
	}
	return weak
}

// KnowledgeGaps collects the distinct topics of questions the user answered
// incorrectly. Questions without a recorded answer are skipped: only an
// actual wrong answer counts as a gap.
func KnowledgeGaps(questions []models.AssessmentQuestion, answers map[string]string) []string {
	seen := make(map[string]bool)
	gaps := []string{}
	for _, q := range questions {
		answer, ok := answers[q.ID]
		if !ok || answer == q.CorrectAnswer {
			continue
		}
		if q.Topic == "" || seen[q.Topic] {
			continue
		}
		seen[q.Topic] = true
		gaps = append(gaps, q.Topic)
	}
	return gaps
}
