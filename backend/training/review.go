package training

import "portal/backend/models"

// ReviewItem is the per-question breakdown shown on the post-assessment
// review: what was answered, what was right, and the explanation.
type ReviewItem struct {
	QuestionID    string `json:"question_id"`
	Question      string `json:"question"`
	Topic         string `json:"topic"`
	YourAnswer    string `json:"your_answer"`
	CorrectAnswer string `json:"correct_answer"`
	Correct       bool   `json:"correct"`
	Explanation   string `json:"explanation"`
}

// ReviewItems builds the review list for the administered questions in bank
// order. Questions without a recorded answer carry an empty YourAnswer and
// count as incorrect.
func ReviewItems(questions []models.AssessmentQuestion, answers map[string]string) []ReviewItem {
	items := make([]ReviewItem, 0, len(questions))
	for _, q := range questions {
		answer := answers[q.ID]
		items = append(items, ReviewItem{
			QuestionID:    q.ID,
			Question:      q.Question,
			Topic:         q.Topic,
			YourAnswer:    answer,
			CorrectAnswer: q.CorrectAnswer,
			Correct:       answer == q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
	}
	return items
}

// categoryModules maps each question category to the modules that teach it.
var categoryModules = map[models.QuestionCategory][]string{
	models.CategoryStride:     {"threat-generation", "attack-path-analysis"},
	models.CategoryRisk:       {"risk-assessment", "mitigation-planning"},
	models.CategorySBOM:       {"sbom-vulnerability"},
	models.CategoryCompliance: {"compliance-verification", "requirements-generation"},
}

// RecommendedModules lists the modules to revisit for the given weak
// categories, deduplicated, in weak-area order.
func RecommendedModules(weak []models.QuestionCategory) []string {
	seen := make(map[string]bool)
	modules := []string{}
	for _, c := range weak {
		for _, id := range categoryModules[c] {
			if !seen[id] {
				seen[id] = true
				modules = append(modules, id)
			}
		}
	}
	return modules
}
