package store

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"portal/backend/models"
)

type gormStore struct {
	db *gorm.DB
}

// NewGormStore wraps a GORM connection in the Store interface.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) UpsertUser(email, displayName string) error {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.db.Create(&models.User{
			Email:        email,
			DisplayName:  displayName,
			LastActiveAt: time.Now().UTC(),
		}).Error
	}
	if err != nil {
		return err
	}
	if displayName != "" {
		user.DisplayName = displayName
	}
	user.LastActiveAt = time.Now().UTC()
	return s.db.Save(&user).Error
}

func (s *gormStore) GetUser(email string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *gormStore) GetCompletions(email string) ([]models.TaskCompletion, error) {
	var completions []models.TaskCompletion
	err := s.db.Where("user_email = ?", email).Order("completed_at asc").Find(&completions).Error
	return completions, err
}

func (s *gormStore) RecordCompletion(email, taskID string, completedAt time.Time, method string) error {
	var completion models.TaskCompletion
	err := s.db.Where("user_email = ? AND task_id = ?", email, taskID).First(&completion).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.db.Create(&models.TaskCompletion{
			UserEmail:          email,
			TaskID:             taskID,
			CompletedAt:        completedAt,
			VerificationMethod: method,
		}).Error
	}
	if err != nil {
		return err
	}
	completion.CompletedAt = completedAt
	completion.VerificationMethod = method
	return s.db.Save(&completion).Error
}

func (s *gormStore) GetModuleProgress(email string) ([]models.UserProgress, error) {
	var progress []models.UserProgress
	err := s.db.Where("user_email = ?", email).Find(&progress).Error
	return progress, err
}

func (s *gormStore) UpsertModuleProgress(email, moduleID string, status models.ProgressStatus, now time.Time) error {
	var progress models.UserProgress
	err := s.db.Where("user_email = ? AND module_id = ?", email, moduleID).First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		progress = models.UserProgress{
			UserEmail: email,
			ModuleID:  moduleID,
			Status:    status,
			StartedAt: &now,
		}
		if status == models.ProgressCompleted {
			progress.CompletedAt = &now
		}
		return s.db.Create(&progress).Error
	}
	if err != nil {
		return err
	}
	progress.Status = status
	if progress.StartedAt == nil {
		progress.StartedAt = &now
	}
	if status == models.ProgressCompleted && progress.CompletedAt == nil {
		progress.CompletedAt = &now
	}
	return s.db.Save(&progress).Error
}

func (s *gormStore) GetGamification(email string) (*models.UserGamification, error) {
	var gamification models.UserGamification
	err := s.db.Where("user_email = ?", email).First(&gamification).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &gamification, nil
}

func (s *gormStore) UpsertGamification(email string, state models.UserGamification) error {
	var existing models.UserGamification
	err := s.db.Where("user_email = ?", email).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		state.UserEmail = email
		return s.db.Create(&state).Error
	}
	if err != nil {
		return err
	}
	existing.CurrentStreak = state.CurrentStreak
	existing.LongestStreak = state.LongestStreak
	existing.LastActivityDate = state.LastActivityDate
	existing.ShieldSegments = state.ShieldSegments
	existing.BadgesEarned = state.BadgesEarned
	return s.db.Save(&existing).Error
}

func (s *gormStore) GetAssessmentResults(email string) ([]models.AssessmentResult, error) {
	var results []models.AssessmentResult
	err := s.db.Where("user_email = ?", email).Order("created_at desc, id desc").Find(&results).Error
	return results, err
}

func (s *gormStore) InsertAssessmentResult(result *models.AssessmentResult) error {
	return s.db.Create(result).Error
}

func (s *gormStore) ClearUser(email string) error {
	// unscoped deletes: clearing a user is an administrative reset, soft
	// deleted rows must not resurface on re-entry
	if err := s.db.Unscoped().Where("user_email = ?", email).Delete(&models.AssessmentResult{}).Error; err != nil {
		return err
	}
	if err := s.db.Unscoped().Where("user_email = ?", email).Delete(&models.TaskCompletion{}).Error; err != nil {
		return err
	}
	if err := s.db.Unscoped().Where("user_email = ?", email).Delete(&models.UserProgress{}).Error; err != nil {
		return err
	}
	if err := s.db.Unscoped().Where("user_email = ?", email).Delete(&models.UserGamification{}).Error; err != nil {
		return err
	}
	return s.db.Unscoped().Where("email = ?", email).Delete(&models.User{}).Error
}
