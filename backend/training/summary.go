package training

import "portal/backend/models"

// SummaryStats is the dashboard aggregate composed from the status resolver,
// the completion count and the stored gamification row.
type SummaryStats struct {
	ModulesCompleted int `json:"modules_completed"`
	TotalModules     int `json:"total_modules"`
	TasksCompleted   int `json:"tasks_completed"`
	CurrentStreak    int `json:"current_streak"`
	LongestStreak    int `json:"longest_streak"`
}

// Summarize builds the dashboard summary. A nil gamification row (user has
// never completed anything) reads as zero streaks.
func Summarize(statuses map[string]models.ModuleStatus, tasksCompleted int, gamification *models.UserGamification) SummaryStats {
	stats := SummaryStats{
		TotalModules:   len(statuses),
		TasksCompleted: tasksCompleted,
	}
	for _, s := range statuses {
		if s == models.ModuleCompleted {
			stats.ModulesCompleted++
		}
	}
	if gamification != nil {
		stats.CurrentStreak = gamification.CurrentStreak
		stats.LongestStreak = gamification.LongestStreak
	}
	return stats
}

// UnlockedSegments lists the shield segments of completed modules in catalog
// order.
func UnlockedSegments(catalog []models.Module, statuses map[string]models.ModuleStatus) []string {
	segments := []string{}
	for _, m := range catalog {
		if statuses[m.ID] == models.ModuleCompleted && m.ShieldSegment != "" {
			segments = append(segments, m.ShieldSegment)
		}
	}
	return segments
}
