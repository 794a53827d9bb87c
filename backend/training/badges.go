package training

import "portal/backend/models"

// BadgeProgress carries the metrics badge criteria are evaluated against.
type BadgeProgress struct {
	TasksCompleted   int
	ModulesCompleted int
	CurrentStreak    int
	LongestStreak    int
}

// EarnedBadges evaluates every catalog badge against the user's metrics and
// returns the IDs of those earned, in catalog order. Badges are derived, not
// accumulated: rerunning on the same metrics yields the same set, and streak
// badges use the longest streak so a broken streak does not revoke them.
func EarnedBadges(badges []models.Badge, progress BadgeProgress) []string {
	earned := []string{}
	for _, b := range badges {
		var metric int
		switch b.Criteria.Type {
		case "tasks_completed":
			metric = progress.TasksCompleted
		case "modules_completed":
			metric = progress.ModulesCompleted
		case "streak":
			metric = progress.LongestStreak
		default:
			// unknown criteria type in the catalog: skip rather than award
			continue
		}
		if metric >= b.Criteria.Value {
			earned = append(earned, b.ID)
		}
	}
	return earned
}
