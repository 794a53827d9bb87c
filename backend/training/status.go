// Package training holds the pure progress computations: module unlock
// resolution, streak calculation, assessment scoring and the derived
// gamification views. Nothing in here touches the database or the HTTP layer;
// callers fetch the rows and pass them in, together with an explicit "today"
// where dates matter.
package training

import "portal/backend/models"

// ResolveStatuses computes the display status of every catalog module from a
// user's stored progress rows.
//
// A module is completed or in_progress if a row says so (completed wins when
// the store contradicts itself), available when all of its prerequisites are
// completed, and locked otherwise. A prerequisite referencing an unknown
// module ID can never appear in the completed set, so such a module stays
// locked instead of erroring. Statuses depend only on the raw completed set,
// never on another module's computed status.
func ResolveStatuses(catalog []models.Module, progress []models.UserProgress) map[string]models.ModuleStatus {
	completed := make(map[string]bool)
	inProgress := make(map[string]bool)
	for _, p := range progress {
		switch p.Status {
		case models.ProgressCompleted:
			completed[p.ModuleID] = true
		case models.ProgressInProgress:
			inProgress[p.ModuleID] = true
		}
	}

	statuses := make(map[string]models.ModuleStatus, len(catalog))
	for _, m := range catalog {
		switch {
		case completed[m.ID]:
			statuses[m.ID] = models.ModuleCompleted
		case inProgress[m.ID]:
			statuses[m.ID] = models.ModuleInProgress
		case prerequisitesMet(m.Prerequisites, completed):
			statuses[m.ID] = models.ModuleAvailable
		default:
			statuses[m.ID] = models.ModuleLocked
		}
	}
	return statuses
}

func prerequisitesMet(prerequisites []string, completed map[string]bool) bool {
	for _, id := range prerequisites {
		if !completed[id] {
			return false
		}
	}
	return true
}
