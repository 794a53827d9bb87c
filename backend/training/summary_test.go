package training

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"portal/backend/models"
)

func TestSummarize(t *testing.T) {
	statuses := map[string]models.ModuleStatus{
		"a": models.ModuleCompleted,
		"b": models.ModuleCompleted,
		"c": models.ModuleInProgress,
		"d": models.ModuleLocked,
	}
	gamification := &models.UserGamification{CurrentStreak: 3, LongestStreak: 5}

	stats := Summarize(statuses, 17, gamification)
	assert.Equal(t, 2, stats.ModulesCompleted)
	assert.Equal(t, 4, stats.TotalModules)
	assert.Equal(t, 17, stats.TasksCompleted)
	assert.Equal(t, 3, stats.CurrentStreak)
	assert.Equal(t, 5, stats.LongestStreak)
}

func TestSummarizeNilGamification(t *testing.T) {
	stats := Summarize(map[string]models.ModuleStatus{}, 0, nil)
	assert.Equal(t, 0, stats.CurrentStreak)
	assert.Equal(t, 0, stats.LongestStreak)
}

func TestUnlockedSegmentsFollowCatalogOrder(t *testing.T) {
	catalog := []models.Module{
		{ID: "a", OrderIndex: 1, ShieldSegment: "orientation"},
		{ID: "b", OrderIndex: 2, ShieldSegment: "documents"},
		{ID: "c", OrderIndex: 3, ShieldSegment: "threats"},
	}
	statuses := map[string]models.ModuleStatus{
		"a": models.ModuleCompleted,
		"b": models.ModuleInProgress,
		"c": models.ModuleCompleted,
	}
	assert.Equal(t, []string{"orientation", "threats"}, UnlockedSegments(catalog, statuses))
}

func TestEarnedBadges(t *testing.T) {
	badges := []models.Badge{
		{ID: "first-steps", Criteria: models.BadgeCriteria{Type: "tasks_completed", Value: 1}},
		{ID: "streak-3", Criteria: models.BadgeCriteria{Type: "streak", Value: 3}},
		{ID: "halfway-there", Criteria: models.BadgeCriteria{Type: "modules_completed", Value: 7}},
		{ID: "mystery", Criteria: models.BadgeCriteria{Type: "unknown_metric", Value: 1}},
	}

	earned := EarnedBadges(badges, BadgeProgress{
		TasksCompleted:   5,
		ModulesCompleted: 2,
		CurrentStreak:    1,
		LongestStreak:    4,
	})
	// streak badges use the longest streak, unknown criteria never award
	assert.Equal(t, []string{"first-steps", "streak-3"}, earned)
}

func TestEarnedBadgesIdempotent(t *testing.T) {
	badges := []models.Badge{
		{ID: "first-steps", Criteria: models.BadgeCriteria{Type: "tasks_completed", Value: 1}},
	}
	progress := BadgeProgress{TasksCompleted: 1}
	assert.Equal(t, EarnedBadges(badges, progress), EarnedBadges(badges, progress))
}
