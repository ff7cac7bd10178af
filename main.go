package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ekrishi/config"
	controller "ekrishi/controllers"
	"ekrishi/middleware"
	"ekrishi/models"
	"ekrishi/routes"
	"ekrishi/store"
	"ekrishi/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := config.LoadConfig(); err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	cfg := config.AppConfig
	utils.SetupLogger(cfg.LogLevel, cfg.LogFormat)

	if err := utils.InitSentry(cfg.SentryDSN, cfg.Environment); err != nil {
		logrus.Warnf("Sentry disabled: %v", err)
	}
	defer utils.FlushSentry()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatalf("Failed to get DB instance: %v", err)
	}
	defer sqlDB.Close()

	teams := store.NewTeamStore(db)
	logrus.Info("🔄 Starting database migration...")
	if err := teams.InitSchema(context.Background()); err != nil {
		logrus.Fatalf("Database migration failed: %v", err)
	}
	logrus.Info("✅ Database migration completed")

	deps := routes.Dependencies{
		Teams:         teams,
		Users:         store.NewUserStore(),
		Doctors:       store.NewList[models.Doctor](),
		Rentals:       store.NewList[models.DroneRental](),
		Orders:        store.NewList[models.Order](),
		Weather:       utils.NewOpenWeatherClient(cfg.Weather.BaseURL, cfg.Weather.APIKey, cfg.Weather.Timeout),
		DefaultCity:   cfg.Weather.DefaultCity,
		BcryptCost:    cfg.BcryptCost,
		AuthRateLimit: cfg.AuthRateLimit,
	}

	if cfg.Redis.Enabled {
		redisStorage := middleware.NewRedisStorage(cfg.Redis)
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisStorage.Ping(ctx); err != nil {
			logrus.Warnf("Redis unavailable, rate limiting falls back to memory: %v", err)
			redisStorage.Close()
		} else {
			deps.RateLimitStorage = redisStorage
			defer redisStorage.Close()
		}
		cancel()
	}

	if cfg.SeedUser.Password != "" {
		seeder := controller.NewAuthController(deps.Users, cfg.BcryptCost, utils.ComponentLogger("seed"))
		if err := seeder.RegisterUser(cfg.SeedUser.Name, cfg.SeedUser.Email, cfg.SeedUser.Password); err != nil {
			logrus.Warnf("Failed to seed user %s: %v", cfg.SeedUser.Email, err)
		}
	}

	app := fiber.New(fiber.Config{
		AppName: "eKrishi",
	})
	app.Use(recover.New())
	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: len(cfg.AllowedOrigins) > 0,
		AllowedMethods:   middleware.DefaultCORSConfig().AllowedMethods,
		AllowedHeaders:   middleware.DefaultCORSConfig().AllowedHeaders,
		ExposedHeaders:   middleware.DefaultCORSConfig().ExposedHeaders,
		MaxAge:           middleware.DefaultCORSConfig().MaxAge,
	}))

	routes.SetupRoutes(app, deps)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		logrus.Info("Shutting down server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logrus.Errorf("Server shutdown failed: %v", err)
		}
	}()

	logrus.Infof("✅ Server running on http://localhost:%s", cfg.ServerPort)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}
