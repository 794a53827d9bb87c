package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// ProgressStatus is the persisted status of a module progress row. The
// display-side "locked" and "available" states are never stored; they are
// derived from prerequisites at read time.
type ProgressStatus string

const (
	ProgressNotStarted ProgressStatus = "not_started"
	ProgressInProgress ProgressStatus = "in_progress"
	ProgressCompleted  ProgressStatus = "completed"
)

type TaskCompletion struct {
	gorm.Model
	UserEmail          string `gorm:"uniqueIndex:idx_completion_user_task;not null"`
	TaskID             string `gorm:"uniqueIndex:idx_completion_user_task;not null"`
	CompletedAt        time.Time
	VerificationMethod string `gorm:"default:manual"`
}

type UserProgress struct {
	gorm.Model
	UserEmail        string         `gorm:"uniqueIndex:idx_progress_user_module;not null"`
	ModuleID         string         `gorm:"uniqueIndex:idx_progress_user_module;not null"`
	Status           ProgressStatus `gorm:"default:not_started"`
	StartedAt        *time.Time
	CompletedAt      *time.Time
	TimeSpentSeconds int
}

type UserGamification struct {
	gorm.Model
	UserEmail        string `gorm:"unique;not null"`
	CurrentStreak    int    `gorm:"default:0"`
	LongestStreak    int    `gorm:"default:0"`
	LastActivityDate *time.Time
	ShieldSegments   string // comma-separated segment IDs
	BadgesEarned     string // comma-separated badge IDs
}

// SegmentList splits the stored shield segments into a slice, empty for none.
func (g *UserGamification) SegmentList() []string {
	return splitCSV(g.ShieldSegments)
}

// BadgeList splits the stored badge IDs into a slice, empty for none.
func (g *UserGamification) BadgeList() []string {
	return splitCSV(g.BadgesEarned)
}

func splitCSV(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}

// JoinCSV is the inverse of SegmentList/BadgeList for writing back.
func JoinCSV(items []string) string {
	return strings.Join(items, ",")
}
