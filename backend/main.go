package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"portal/backend/config"
	"portal/backend/content"
	"portal/backend/middleware"
	"portal/backend/routes"
	"portal/backend/store"
	"portal/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Load the embedded training catalog
	catalog, err := content.Load()
	if err != nil {
		log.Fatalf("Error loading catalog: %v", err)
	}

	// Initialize database
	db, err := utils.InitDB(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, store.NewGormStore(db), catalog, cfg)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
