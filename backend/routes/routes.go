package routes

import (
	"github.com/gofiber/fiber/v2"

	"portal/backend/config"
	"portal/backend/content"
	"portal/backend/controllers"
	"portal/backend/middleware"
	"portal/backend/store"
)

func SetupRoutes(app *fiber.App, s store.Store, catalog *content.Catalog, cfg *config.Config) {
	// Email entry
	usersController := controllers.NewUsersController(s, cfg)
	app.Post("/api/users", usersController.Enter)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	adminMiddleware := middleware.AdminMiddleware(cfg)

	// Catalog routes
	catalogController := controllers.NewCatalogController(s, catalog, cfg)
	catalogGroup := app.Group("/api/catalog", authMiddleware)
	catalogGroup.Get("/modules", catalogController.GetModules)
	catalogGroup.Get("/modules/:id", catalogController.GetModuleDetails)

	// Progress routes
	progressController := controllers.NewProgressController(s, catalog, cfg)
	progressGroup := app.Group("/api/progress", authMiddleware)
	progressGroup.Get("/", progressController.GetProgress)
	progressGroup.Get("/summary", progressController.GetSummary)
	progressGroup.Post("/complete", progressController.CompleteTask)

	// Assessment routes
	assessmentController := controllers.NewAssessmentController(s, catalog, cfg)
	assessmentGroup := app.Group("/api/assessment", authMiddleware)
	assessmentGroup.Get("/", assessmentController.GetResults)
	assessmentGroup.Get("/questions", assessmentController.GetQuestions)
	assessmentGroup.Post("/", assessmentController.SubmitResult)

	// Admin routes
	adminController := controllers.NewAdminController(s, catalog, cfg)
	adminGroup := app.Group("/api/admin", adminMiddleware)
	adminGroup.Post("/recalculate-streaks", adminController.RecalculateStreaks)
	adminGroup.Post("/clear-user", adminController.ClearUser)
}
