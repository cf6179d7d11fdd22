package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/application/usecase"
	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/infrastructure/postgres"
	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/infrastructure/rediscache"
	httpRouter "github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/interfaces/http"
	"github.com/sachingiri58/Sachin-Giri-backend-case-study/pkg/config"
	"github.com/sachingiri58/Sachin-Giri-backend-case-study/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	alertRepo := postgres.NewAlertRepository(pool)
	thresholdRepo := postgres.NewThresholdRepository(pool)
	txRunner := postgres.NewTxRunner(pool, cfg.DB.LockTimeout)

	// Threshold cache is optional: no Redis address, no cache.
	var thresholdCache usecase.ThresholdCache
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		thresholdCache = rediscache.NewThresholdCache(rdb, cfg.Redis.TTL)
	}

	upsertUC := usecase.NewCreateOrAttachUseCase(txRunner, productRepo, cfg.App.CompanyID, log.Zerolog())
	productQueryUC := usecase.NewProductQueryUseCase(productRepo, inventoryRepo)
	setQuantityUC := usecase.NewSetQuantityUseCase(txRunner, log.Zerolog())
	alertsUC := usecase.NewLowStockAlertsUseCase(alertRepo, thresholdRepo, thresholdCache, log.Zerolog())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RateLimit(25, 50))

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventory Case Study API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Upsert:       upsertUC,
		ProductQuery: productQueryUC,
		SetQuantity:  setQuantityUC,
		Alerts:       alertsUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
