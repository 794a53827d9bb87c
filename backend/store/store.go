// Package store is the persistence collaborator: every read and write the
// portal performs against the record store, keyed by user email. The
// computation core never touches it directly; handlers fetch rows here and
// pass them in.
package store

import (
	"time"

	"portal/backend/models"
)

type Store interface {
	// UpsertUser creates the user row if needed and touches last_active_at.
	// A non-empty displayName overwrites the stored one.
	UpsertUser(email, displayName string) error
	GetUser(email string) (*models.User, error)

	GetCompletions(email string) ([]models.TaskCompletion, error)
	// RecordCompletion upserts on (user_email, task_id): re-completing a task
	// overwrites the timestamp rather than duplicating the row.
	RecordCompletion(email, taskID string, completedAt time.Time, method string) error

	GetModuleProgress(email string) ([]models.UserProgress, error)
	// UpsertModuleProgress sets the module status. started_at is written once
	// on first contact; completed_at only when the status is completed.
	UpsertModuleProgress(email, moduleID string, status models.ProgressStatus, now time.Time) error

	// GetGamification returns (nil, nil) when the user has no row yet.
	GetGamification(email string) (*models.UserGamification, error)
	UpsertGamification(email string, state models.UserGamification) error

	// GetAssessmentResults returns results newest first; callers pick the most
	// recent per type. History is retained, inserts never mutate old rows.
	GetAssessmentResults(email string) ([]models.AssessmentResult, error)
	InsertAssessmentResult(result *models.AssessmentResult) error

	// ClearUser removes every row belonging to the user. Administrative only.
	ClearUser(email string) error
}
