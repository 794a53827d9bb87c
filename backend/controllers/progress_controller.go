package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"portal/backend/config"
	"portal/backend/content"
	"portal/backend/middleware"
	"portal/backend/models"
	"portal/backend/store"
	"portal/backend/training"
	"portal/backend/utils"
)

type ProgressController struct {
	Store   store.Store
	Catalog *content.Catalog
	Cfg     *config.Config
	// Now supplies the current time so tests control the streak day boundary.
	Now func() time.Time
}

func NewProgressController(s store.Store, catalog *content.Catalog, cfg *config.Config) *ProgressController {
	return &ProgressController{Store: s, Catalog: catalog, Cfg: cfg, Now: func() time.Time { return time.Now().UTC() }}
}

// GetProgress godoc
// @Summary Get the user's progress rows, completions and gamification state
// @Tags progress
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress [get]
func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	email := c.Locals(middleware.EmailLocal).(string)

	progress, err := pc.Store.GetModuleProgress(email)
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch progress")
	}
	completions, err := pc.Store.GetCompletions(email)
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch completions")
	}
	gamification, err := pc.Store.GetGamification(email)
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch gamification")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"progress":     progress,
		"completions":  completions,
		"gamification": gamification,
	})
}

// GetSummary godoc
// @Summary Get the dashboard summary
// @Tags progress
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress/summary [get]
func (pc *ProgressController) GetSummary(c *fiber.Ctx) error {
	email := c.Locals(middleware.EmailLocal).(string)

	progress, err := pc.Store.GetModuleProgress(email)
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch progress")
	}
	completions, err := pc.Store.GetCompletions(email)
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch completions")
	}
	gamification, err := pc.Store.GetGamification(email)
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch gamification")
	}

	statuses := training.ResolveStatuses(pc.Catalog.Modules, progress)
	summary := training.Summarize(statuses, len(completions), gamification)

	return utils.Success(c, fiber.StatusOK, fiber.Map{"summary": summary})
}

type completeTaskRequest struct {
	ModuleID string `json:"module_id"`
	TaskID   string `json:"task_id"`
}

// CompleteTask godoc
// @Summary Mark a task complete and update derived state
// @Description Records the completion, recomputes the module status, advances the streak and refreshes shield segments and badges. Derived updates only run once the completion row is durable; a failed write leaves everything untouched.
// @Tags progress
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress/complete [post]
func (pc *ProgressController) CompleteTask(c *fiber.Ctx) error {
	email := c.Locals(middleware.EmailLocal).(string)

	var req completeTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	task, ok := pc.Catalog.TaskByID(req.TaskID)
	if !ok {
		return utils.NotFound(c, "Task not found")
	}
	if req.ModuleID != "" && req.ModuleID != task.ModuleID {
		return utils.BadRequest(c, "Task does not belong to module")
	}

	verification := training.VerifyTask(task)
	if !verification.Verified {
		return utils.Error(c, fiber.StatusUnprocessableEntity, fiber.NewError(fiber.StatusUnprocessableEntity, verification.Message))
	}

	now := pc.Now()
	if err := pc.Store.UpsertUser(email, ""); err != nil {
		return utils.InternalServerError(c, "Failed to save user")
	}
	if err := pc.Store.RecordCompletion(email, task.ID, now, verification.Method); err != nil {
		return utils.InternalServerError(c, "Failed to record completion")
	}

	moduleCompleted, err := pc.updateModuleProgress(email, task.ModuleID, now)
	if err != nil {
		return utils.InternalServerError(c, "Failed to update module progress")
	}
	gamification, err := pc.updateGamification(email, now)
	if err != nil {
		return utils.InternalServerError(c, "Failed to update gamification")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"task_id":          task.ID,
		"message":          verification.Message,
		"module_completed": moduleCompleted,
		"gamification":     gamification,
	})
}

// updateModuleProgress recomputes the owning module's status from its full
// task set: completed once every task has a completion row, in_progress
// otherwise. Reports whether the module is now complete.
func (pc *ProgressController) updateModuleProgress(email, moduleID string, now time.Time) (bool, error) {
	completions, err := pc.Store.GetCompletions(email)
	if err != nil {
		return false, err
	}
	done := make(map[string]bool, len(completions))
	for _, completion := range completions {
		done[completion.TaskID] = true
	}

	allComplete := true
	for _, t := range pc.Catalog.ModuleTasks(moduleID) {
		if !done[t.ID] {
			allComplete = false
			break
		}
	}

	status := models.ProgressInProgress
	if allComplete {
		status = models.ProgressCompleted
	}
	return allComplete, pc.Store.UpsertModuleProgress(email, moduleID, status, now)
}

// updateGamification advances the streak incrementally and re-derives shield
// segments and badges from current progress. The admin recalculate endpoint
// repairs any drift from full history.
func (pc *ProgressController) updateGamification(email string, now time.Time) (*models.UserGamification, error) {
	existing, err := pc.Store.GetGamification(email)
	if err != nil {
		return nil, err
	}

	var current, longest int
	var lastActivity *time.Time
	if existing != nil {
		current = existing.CurrentStreak
		longest = existing.LongestStreak
		lastActivity = existing.LastActivityDate
	}
	current, longest, day := training.AdvanceStreak(current, longest, lastActivity, now)

	progress, err := pc.Store.GetModuleProgress(email)
	if err != nil {
		return nil, err
	}
	completions, err := pc.Store.GetCompletions(email)
	if err != nil {
		return nil, err
	}
	statuses := training.ResolveStatuses(pc.Catalog.Modules, progress)
	summary := training.Summarize(statuses, len(completions), nil)

	state := models.UserGamification{
		UserEmail:        email,
		CurrentStreak:    current,
		LongestStreak:    longest,
		LastActivityDate: &day,
		ShieldSegments:   models.JoinCSV(training.UnlockedSegments(pc.Catalog.Modules, statuses)),
		BadgesEarned: models.JoinCSV(training.EarnedBadges(pc.Catalog.Badges, training.BadgeProgress{
			TasksCompleted:   summary.TasksCompleted,
			ModulesCompleted: summary.ModulesCompleted,
			CurrentStreak:    current,
			LongestStreak:    longest,
		})),
	}
	if err := pc.Store.UpsertGamification(email, state); err != nil {
		return nil, err
	}
	return &state, nil
}
