package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/plantops/roundsdb/internal/config"
	"github.com/plantops/roundsdb/internal/database"
	"github.com/plantops/roundsdb/internal/handlers"
	"github.com/plantops/roundsdb/internal/middleware"
	"github.com/plantops/roundsdb/internal/services"
	"github.com/plantops/roundsdb/internal/session"
	"github.com/plantops/roundsdb/internal/templates"

	_ "github.com/plantops/roundsdb/docs/api" // Swagger docs
)

// @title RoundsDB API
// @version 1.0.0
// @description Operator rounds data service with multi-database support
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/plantops/roundsdb

// @license.name MIT

// @host localhost:3000
// @BasePath /api
// @schemes http https

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run versioned migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Load round-type templates
	roundTypes, err := templates.Load()
	if err != nil {
		log.Fatalf("Failed to load round-type templates: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("roundsdb")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health probe
	app.Get("/healthz", func(c *fiber.Ctx) error {
		result := services.HealthCheck(cfg, db)
		status := fiber.StatusOK
		if result.Status != "healthy" {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(result)
	})

	// API routes under /api
	api := app.Group("/api")

	// Version middleware
	api.Use(middleware.VersionMiddleware())

	// Create handlers
	sessions := session.NewRegistry()
	roundHandler := &handlers.RoundHandler{DB: db, Sessions: sessions}
	itemHandler := &handlers.ItemHandler{DB: db, Sessions: sessions}
	stateHandler := &handlers.StateHandler{DB: db, RoundTypes: roundTypes}
	operatorHandler := &handlers.OperatorHandler{DB: db}

	// Read routes
	api.Get("/rounds/:id/export", roundHandler.ExportRound)
	api.Get("/rounds/:id/walk", roundHandler.GetWalk)
	api.Get("/rounds/:id", roundHandler.GetRound)
	api.Get("/state", stateHandler.GetState)
	api.Get("/templates", stateHandler.GetTemplates)
	api.Get("/operators", operatorHandler.ListOperators)
	api.Get("/operators/:name/rounds", operatorHandler.OperatorRounds)
	api.Get("/summary", operatorHandler.PeriodSummary)

	// Mutating routes require an operator identity
	api.Post("/rounds", middleware.RequireOperator(), roundHandler.StartRound)
	api.Delete("/rounds/:id", middleware.RequireOperator(), roundHandler.DeleteRound)
	api.Post("/rounds/:id/walk", middleware.RequireOperator(), roundHandler.BeginWalk)
	api.Delete("/rounds/:id/walk", middleware.RequireOperator(), roundHandler.RemoveWalkSection)
	api.Post("/rounds/:id/sections", middleware.RequireOperator(), itemHandler.SaveSectionItems)
	api.Post("/items", middleware.RequireOperator(), itemHandler.AddItem)
	api.Put("/items", middleware.RequireOperator(), itemHandler.UpdateItem)
	api.Delete("/items", middleware.RequireOperator(), itemHandler.DeleteItem)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}
