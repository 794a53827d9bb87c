package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"portal/backend/config"
	"portal/backend/content"
	"portal/backend/models"
	"portal/backend/store"
	"portal/backend/training"
	"portal/backend/utils"
)

type AdminController struct {
	Store   store.Store
	Catalog *content.Catalog
	Cfg     *config.Config
	Now     func() time.Time
}

func NewAdminController(s store.Store, catalog *content.Catalog, cfg *config.Config) *AdminController {
	return &AdminController{Store: s, Catalog: catalog, Cfg: cfg, Now: func() time.Time { return time.Now().UTC() }}
}

type adminUserRequest struct {
	Email string `json:"email"`
}

// RecalculateStreaks godoc
// @Summary Recalculate a user's streaks from completion history
// @Description Full recomputation from raw completions; repairs drift left by incremental updates or manual data edits.
// @Tags admin
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/recalculate-streaks [post]
func (ac *AdminController) RecalculateStreaks(c *fiber.Ctx) error {
	var req adminUserRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" {
		return utils.BadRequest(c, "Email required")
	}

	completions, err := ac.Store.GetCompletions(req.Email)
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch completions")
	}
	timestamps := make([]time.Time, len(completions))
	for i, completion := range completions {
		timestamps[i] = completion.CompletedAt
	}

	result := training.RecalculateStreak(timestamps, ac.Now())
	if result.MostRecent == nil {
		return utils.Success(c, fiber.StatusOK, fiber.Map{
			"message":        "No completions found",
			"current_streak": 0,
		})
	}

	progress, err := ac.Store.GetModuleProgress(req.Email)
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch progress")
	}
	statuses := training.ResolveStatuses(ac.Catalog.Modules, progress)
	summary := training.Summarize(statuses, len(completions), nil)

	state := models.UserGamification{
		UserEmail:        req.Email,
		CurrentStreak:    result.CurrentStreak,
		LongestStreak:    result.LongestStreak,
		LastActivityDate: result.MostRecent,
		ShieldSegments:   models.JoinCSV(training.UnlockedSegments(ac.Catalog.Modules, statuses)),
		BadgesEarned: models.JoinCSV(training.EarnedBadges(ac.Catalog.Badges, training.BadgeProgress{
			TasksCompleted:   summary.TasksCompleted,
			ModulesCompleted: summary.ModulesCompleted,
			CurrentStreak:    result.CurrentStreak,
			LongestStreak:    result.LongestStreak,
		})),
	}
	if err := ac.Store.UpsertGamification(req.Email, state); err != nil {
		return utils.InternalServerError(c, "Failed to save gamification")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"message":        "Recalculated streaks for " + req.Email,
		"current_streak": result.CurrentStreak,
		"longest_streak": result.LongestStreak,
	})
}

// ClearUser godoc
// @Summary Delete all stored data for a user
// @Tags admin
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/clear-user [post]
func (ac *AdminController) ClearUser(c *fiber.Ctx) error {
	var req adminUserRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" {
		return utils.BadRequest(c, "Email required")
	}

	if err := ac.Store.ClearUser(req.Email); err != nil {
		return utils.InternalServerError(c, "Failed to clear user data")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"message": "Cleared all data for " + req.Email,
	})
}
