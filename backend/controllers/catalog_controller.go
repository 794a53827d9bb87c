package controllers

import (
	"github.com/gofiber/fiber/v2"

	"portal/backend/config"
	"portal/backend/content"
	"portal/backend/middleware"
	"portal/backend/models"
	"portal/backend/store"
	"portal/backend/training"
	"portal/backend/utils"
)

type CatalogController struct {
	Store   store.Store
	Catalog *content.Catalog
	Cfg     *config.Config
}

func NewCatalogController(s store.Store, catalog *content.Catalog, cfg *config.Config) *CatalogController {
	return &CatalogController{Store: s, Catalog: catalog, Cfg: cfg}
}

type moduleView struct {
	models.Module
	Status         models.ModuleStatus `json:"status"`
	CompletedTasks []string            `json:"completed_tasks"`
}

// GetModules godoc
// @Summary List catalog modules with the user's statuses
// @Tags catalog
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /catalog/modules [get]
func (cc *CatalogController) GetModules(c *fiber.Ctx) error {
	email := c.Locals(middleware.EmailLocal).(string)

	progress, err := cc.Store.GetModuleProgress(email)
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch progress")
	}
	completions, err := cc.Store.GetCompletions(email)
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch completions")
	}

	statuses := training.ResolveStatuses(cc.Catalog.Modules, progress)
	completedByModule := cc.groupCompletions(completions)

	views := make([]moduleView, 0, len(cc.Catalog.Modules))
	for _, m := range cc.Catalog.Modules {
		completed := completedByModule[m.ID]
		if completed == nil {
			completed = []string{}
		}
		views = append(views, moduleView{
			Module:         m,
			Status:         statuses[m.ID],
			CompletedTasks: completed,
		})
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"modules": views})
}

// GetModuleDetails godoc
// @Summary Get one module with its tasks and the user's completed set
// @Tags catalog
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /catalog/modules/{id} [get]
func (cc *CatalogController) GetModuleDetails(c *fiber.Ctx) error {
	email := c.Locals(middleware.EmailLocal).(string)

	module, ok := cc.Catalog.ModuleByID(c.Params("id"))
	if !ok {
		return utils.NotFound(c, "Module not found")
	}

	progress, err := cc.Store.GetModuleProgress(email)
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch progress")
	}
	completions, err := cc.Store.GetCompletions(email)
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch completions")
	}

	statuses := training.ResolveStatuses(cc.Catalog.Modules, progress)
	completed := cc.groupCompletions(completions)[module.ID]
	if completed == nil {
		completed = []string{}
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"module":          module,
		"tasks":           cc.Catalog.ModuleTasks(module.ID),
		"status":          statuses[module.ID],
		"completed_tasks": completed,
	})
}

// groupCompletions maps module ID to the IDs of its completed tasks,
// preserving the module's task order. Completions whose task ID is no longer
// in the catalog are ignored.
func (cc *CatalogController) groupCompletions(completions []models.TaskCompletion) map[string][]string {
	done := make(map[string]bool, len(completions))
	for _, completion := range completions {
		done[completion.TaskID] = true
	}
	grouped := make(map[string][]string)
	for _, m := range cc.Catalog.Modules {
		for _, t := range cc.Catalog.ModuleTasks(m.ID) {
			if done[t.ID] {
				grouped[m.ID] = append(grouped[m.ID], t.ID)
			}
		}
	}
	return grouped
}
