package models

// ModuleStatus is the display status of a module for a given user, derived
// from their progress rows and the prerequisite chain.
type ModuleStatus string

const (
	ModuleLocked     ModuleStatus = "locked"
	ModuleAvailable  ModuleStatus = "available"
	ModuleInProgress ModuleStatus = "in_progress"
	ModuleCompleted  ModuleStatus = "completed"
)

// VerificationType declares how a task completion is checked. Only manual
// verification is implemented today; api_check and state_check fall back to
// manual until the TARA integration lands.
type VerificationType string

const (
	VerificationManual     VerificationType = "manual"
	VerificationAPICheck   VerificationType = "api_check"
	VerificationStateCheck VerificationType = "state_check"
)

type Module struct {
	ID            string   `yaml:"id" json:"id"`
	Title         string   `yaml:"title" json:"title"`
	Description   string   `yaml:"description" json:"description"`
	OrderIndex    int      `yaml:"order_index" json:"order_index"`
	TaskCount     int      `yaml:"task_count" json:"task_count"`
	ShieldSegment string   `yaml:"shield_segment" json:"shield_segment"`
	Prerequisites []string `yaml:"prerequisites" json:"prerequisites"`
}

type Task struct {
	ID               string           `yaml:"id" json:"id"`
	ModuleID         string           `yaml:"module_id" json:"module_id"`
	Title            string           `yaml:"title" json:"title"`
	Instructions     string           `yaml:"instructions" json:"instructions"`
	WhyItMatters     string           `yaml:"why_it_matters,omitempty" json:"why_it_matters,omitempty"`
	Tips             []string         `yaml:"tips" json:"tips"`
	DeepLink         string           `yaml:"deep_link" json:"deep_link"`
	OrderIndex       int              `yaml:"order_index" json:"order_index"`
	VerificationType VerificationType `yaml:"verification_type" json:"verification_type"`
}

// QuestionCategory groups assessment questions for the category breakdown.
type QuestionCategory string

const (
	CategoryStride     QuestionCategory = "stride"
	CategoryRisk       QuestionCategory = "risk"
	CategorySBOM       QuestionCategory = "sbom"
	CategoryCompliance QuestionCategory = "compliance"
)

// KnownCategories returns every category in catalog order. Score breakdowns
// are seeded with all of them so consumers never hit a missing bucket.
func KnownCategories() []QuestionCategory {
	return []QuestionCategory{CategoryStride, CategoryRisk, CategorySBOM, CategoryCompliance}
}

type QuestionOption struct {
	ID   string `yaml:"id" json:"id"`
	Text string `yaml:"text" json:"text"`
}

type AssessmentQuestion struct {
	ID            string           `yaml:"id" json:"id"`
	Question      string           `yaml:"question" json:"question"`
	Topic         string           `yaml:"topic" json:"topic"`
	Options       []QuestionOption `yaml:"options" json:"options"`
	CorrectAnswer string           `yaml:"correct_answer" json:"correct_answer"`
	Category      QuestionCategory `yaml:"category" json:"category"`
	Explanation   string           `yaml:"explanation" json:"explanation"`
}

type BadgeCriteria struct {
	Type  string `yaml:"type" json:"type"` // "tasks_completed", "modules_completed", "streak"
	Value int    `yaml:"value" json:"value"`
}

type Badge struct {
	ID          string        `yaml:"id" json:"id"`
	Name        string        `yaml:"name" json:"name"`
	Description string        `yaml:"description" json:"description"`
	Criteria    BadgeCriteria `yaml:"criteria" json:"criteria"`
}
