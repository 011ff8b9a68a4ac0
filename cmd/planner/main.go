package main

import (
	"fmt"
	"log"
	"time"

	"planner/internal/common/config"
	"planner/internal/common/middleware"
	"planner/internal/editor"
	"planner/internal/geometry"
	"planner/internal/handlers"
	"planner/internal/placement"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// ============================================================
// Planner Geometry Service
// ============================================================

func main() {
	cfg := config.Load()

	tol := geometry.Tolerance{Epsilon: cfg.Geometry.Epsilon}
	rules := placement.DefaultRules()
	rules.MinLength = cfg.Geometry.MinWallLength
	rules.MaxLength = cfg.Geometry.MaxWallLength
	rules.MinSpacing = cfg.Geometry.MinWallSpacing
	rules.SnapTolerance = cfg.Geometry.SnapTolerance

	wallHandler := handlers.NewWallHandler(
		tol,
		placement.New(tol, rules),
		editor.New(tol, editor.WithMaxJoinDistance(cfg.Geometry.MaxJoinDistance)),
	)

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Planner Geometry Service",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.Logger())
	app.Use(middleware.CORS())

	// ============================================================
	// Health Check Routes
	// ============================================================

	app.Get("/health/live", handlers.LivenessProbe)
	app.Get("/health/ready", wallHandler.ReadinessProbe)
	app.Get("/health/startup", handlers.StartupProbe)

	// ============================================================
	// Docs
	// ============================================================

	app.Get("/docs", handlers.SwaggerUI)
	app.Get("/docs/openapi.yaml", handlers.SwaggerSpec)

	// ============================================================
	// Geometry Routes
	// ============================================================

	wallHandler.Register(app.Group("/api/v1"))

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("[PLANNER] Starting Planner Geometry Service on %s (env: %s, epsilon: %g)", addr, cfg.Environment, tol.Eps())

	if err := app.Listen(addr); err != nil {
		log.Fatalf("[PLANNER] Failed to start server: %v", err)
	}
}
