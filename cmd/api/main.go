package main

import (
	"context"
	"log"
	"time"

	"logistics-rates/internal/core/cache"
	"logistics-rates/internal/core/config"
	"logistics-rates/internal/core/logger"
	"logistics-rates/internal/core/ratelimit"
	"logistics-rates/internal/core/server"
	healthhandler "logistics-rates/internal/features/health/handler"
	rateadapter "logistics-rates/internal/features/rates/adapters"
	"logistics-rates/internal/features/rates/domain"
	"logistics-rates/internal/features/rates/engine"
	ratehandler "logistics-rates/internal/features/rates/handler"
	rateservice "logistics-rates/internal/features/rates/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const serviceName = "Logistics Dashboard API"

// @title Logistics Dashboard API
// @version 2.0.0
// @description Mock shipping-rate quotes for the logistics dashboard.
// @license.name MIT
// @host localhost:3001
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	srv := server.New(cfg)

	// Optional per-IP rate limiting backed by redis.
	if cfg.RateLimit.Enabled {
		redisCache, err := cache.NewRedisAdapter(cfg.RateLimit.RedisURL)
		if err != nil {
			l.Fatal("Failed to create redis adapter", zap.Error(err))
		}
		defer redisCache.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisCache.Ping(ctx); err != nil {
			cancel()
			l.Fatal("Redis health check failed", zap.Error(err))
		}
		cancel()
		l.Info("Redis connection verified")

		limiter := ratelimit.NewFixedWindowLimiter(
			redisCache,
			cfg.RateLimit.Requests,
			time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
		)
		srv.App.Use("/api", ratelimit.Middleware(limiter))
	}

	// Initialize Rate Engine, Service & Handler
	rateEngine := engine.New(domain.DefaultCarriers(), rateadapter.NewUniformJitter())
	rateSvc := rateservice.NewRateService(rateEngine)
	rateHdl := ratehandler.NewRateHandler(rateSvc)

	healthHdl := healthhandler.NewHealthHandler(serviceName, cfg.ServiceVersion)

	// Register Routes
	srv.App.Post("/api/shipping-rates", rateHdl.CalculateRates)
	srv.App.Get("/api/health", healthHdl.GetHealth)

	// JSON fallback for unknown routes.
	srv.App.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Endpoint not found",
		})
	})

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
