package training

import (
	"math"

	"portal/backend/models"
)

// Improvement compares the pre- and post-assessment percentages.
type Improvement struct {
	PrePercent  int `json:"pre_percent"`
	PostPercent int `json:"post_percent"`
	Improvement int `json:"improvement"`
}

// CompareAssessments derives the improvement view from the two stored
// results. A user may take the post-assessment without a pre-assessment on
// record; a nil pre counts as 0%, so the improvement equals the post score.
func CompareAssessments(pre, post *models.AssessmentResult) Improvement {
	imp := Improvement{
		PrePercent:  resultPercent(pre),
		PostPercent: resultPercent(post),
	}
	imp.Improvement = imp.PostPercent - imp.PrePercent
	return imp
}

func resultPercent(r *models.AssessmentResult) int {
	if r == nil || r.TotalQuestions <= 0 {
		return 0
	}
	return int(math.Round(float64(r.Score) / float64(r.TotalQuestions) * 100))
}
