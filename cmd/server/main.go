// Package main is the entry point for the API server.
// It initializes configuration, storage, the model registry and the
// hosted inference client, then wires the HTTP layer.
package main

import (
	"context"
	"log"
	"time"

	"finguard/internal/config"
	"finguard/internal/handlers"
	"finguard/internal/inference"
	"finguard/internal/registry"
	"finguard/internal/repositories"
	"finguard/internal/services/auth"
	"finguard/internal/services/compliance"
	"finguard/internal/services/dashboard"
	"finguard/internal/services/fraud"
	"finguard/internal/services/report"
	"finguard/internal/services/risk"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if repositories.DB != nil {
			if sqlDB, err := repositories.DB.DB(); err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Printf("Failed to close database connection: %v", err)
				}
			}
		}
		if repositories.CacheService != nil {
			if err := repositories.CacheService.Close(); err != nil {
				log.Printf("Failed to close Redis connection: %v", err)
			}
		}
	}()

	// Clear stale cache entries on startup.
	if repositories.CacheService != nil {
		if err := repositories.CacheService.FlushAll(context.Background()); err != nil {
			log.Printf("Failed to flush Redis cache: %v", err)
		}
	}

	models := registry.NewDefault(config.AnomalyModelPath())
	client := inference.NewClient(config.InferenceURL(), config.InferenceToken())

	userRepo := repositories.NewUserRepository(repositories.DB)
	assessmentRepo := repositories.NewAssessmentRepository(repositories.DB)

	deps := handlers.Deps{
		Auth:        auth.NewService(userRepo),
		Compliance:  compliance.NewService(client, models),
		Risk:        risk.NewService(client),
		Fraud:       fraud.NewService(client, models),
		Dashboard:   dashboard.NewService(repositories.CacheService),
		Report:      report.NewService(),
		Assessments: assessmentRepo,
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.GetEnv("FRONTEND_URL", "http://localhost:5173"),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowCredentials: true,
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	for _, path := range []string{"/api/register", "/api/login"} {
		app.Use(path, limiter.New(limiter.Config{
			Max:        5,
			Expiration: 1 * time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(429).JSON(fiber.Map{
					"error": "Too many requests. Please try again later.",
				})
			},
		}))
	}

	handlers.SetupRoutes(app, deps)

	log.Fatal(app.Listen(":" + config.GetEnv("PORT", "5001")))
}
