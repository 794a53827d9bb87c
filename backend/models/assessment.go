package models

import (
	"encoding/json"

	"gorm.io/gorm"
)

// AssessmentType distinguishes the before/after knowledge checks.
type AssessmentType string

const (
	AssessmentPre  AssessmentType = "pre"
	AssessmentPost AssessmentType = "post"
)

type AssessmentResult struct {
	gorm.Model
	UserEmail        string         `gorm:"index;not null"`
	AssessmentType   AssessmentType `gorm:"not null"`
	Score            int
	TotalQuestions   int
	Answers          string `gorm:"type:text"` // JSON object: question ID -> chosen option ID
	TimeTakenSeconds int
}

// DecodeAnswers unmarshals the stored answer map. An empty column decodes to
// an empty map rather than an error.
func (r *AssessmentResult) DecodeAnswers() (map[string]string, error) {
	answers := map[string]string{}
	if r.Answers == "" {
		return answers, nil
	}
	if err := json.Unmarshal([]byte(r.Answers), &answers); err != nil {
		return nil, err
	}
	return answers, nil
}

// EncodeAnswers marshals the answer map into the stored column.
func (r *AssessmentResult) EncodeAnswers(answers map[string]string) error {
	data, err := json.Marshal(answers)
	if err != nil {
		return err
	}
	r.Answers = string(data)
	return nil
}
