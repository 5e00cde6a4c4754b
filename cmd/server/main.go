package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/loop-labs/quiz-service/internal/cache"
	"github.com/loop-labs/quiz-service/internal/catalog"
	"github.com/loop-labs/quiz-service/internal/config"
	"github.com/loop-labs/quiz-service/internal/handlers"
	"github.com/loop-labs/quiz-service/internal/repositories"
	"github.com/loop-labs/quiz-service/internal/repositories/postgres"
	"github.com/loop-labs/quiz-service/internal/services"
	"github.com/loop-labs/quiz-service/internal/utils"
	"github.com/loop-labs/quiz-service/pkg"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var logger utils.Logger
	if cfg.Environment == "production" {
		logger = utils.NewDefaultLogger()
	} else {
		logger = utils.NewDevelopmentLogger()
	}

	cat, err := loadCatalog(cfg, logger)
	if err != nil {
		logger.Error("failed to load question catalog", "error", err)
		os.Exit(1)
	}
	logger.Info("catalog loaded", "source", cfg.CatalogSource, "questions", cat.Len())

	cacheService := cache.NewNoopCache()
	if cfg.RedisURL != "" {
		redisClient, err := pkg.NewRedisClient(cfg)
		if err != nil {
			logger.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer redisClient.Close()
		cacheService = cache.NewRedisCache(redisClient, logger)
	}

	publisher, err := cfg.Events.CreateEventPublisher(utils.ToSlogLogger(logger))
	if err != nil {
		logger.Error("failed to create event publisher", "error", err)
		os.Exit(1)
	}
	defer publisher.Close()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.LoggerMiddleware(logger))

	handlers.NewHandlerManager(
		services.NewQuizService(cat, cacheService, publisher, logger, cfg.CacheTTL),
		services.NewGradingService(cat, publisher, logger),
		services.NewImportExportService(logger),
		utils.NewValidator(),
		logger,
	).SetupRoutes(router)

	logger.Info("starting quiz service", "port", cfg.Port, "environment", cfg.Environment)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// loadCatalog builds the immutable question catalog from the configured
// source. Every source ends in catalog.New, so validation applies uniformly.
func loadCatalog(cfg *config.Config, logger utils.Logger) (*catalog.Catalog, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch cfg.CatalogSource {
	case "", "embedded":
		return catalog.Default(), nil

	case "file":
		return catalogFromRepository(ctx, repositories.NewFileCatalogRepository(cfg.CatalogPath))

	case "postgres":
		db, err := pkg.InitDatabase(cfg)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(db); err != nil {
			return nil, fmt.Errorf("catalog migration failed: %w", err)
		}
		return catalogFromRepository(ctx, postgres.NewCatalogRepository(db))

	case "xlsx":
		f, err := os.Open(cfg.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("open catalog workbook: %w", err)
		}
		defer f.Close()
		questions, err := services.NewImportExportService(logger).ImportCatalogFromExcel(ctx, f)
		if err != nil {
			return nil, err
		}
		return catalog.New(questions)

	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.CatalogSource)
	}
}

func catalogFromRepository(ctx context.Context, repo repositories.CatalogRepository) (*catalog.Catalog, error) {
	questions, err := repo.ListQuestions(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.New(questions)
}
