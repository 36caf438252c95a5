package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/studyprep/exam-service/internal/cache"
	"github.com/studyprep/exam-service/internal/config"
	"github.com/studyprep/exam-service/internal/events"
	"github.com/studyprep/exam-service/internal/handlers"
	"github.com/studyprep/exam-service/internal/matrix"
	"github.com/studyprep/exam-service/internal/models"
	"github.com/studyprep/exam-service/internal/repositories/postgres"
	"github.com/studyprep/exam-service/internal/services"
	"github.com/studyprep/exam-service/internal/utils"
	"github.com/studyprep/exam-service/pkg"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	if cfg.Environment != "production" {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		logger.Error("Failed to init database", "error", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(
		&models.Subject{},
		&models.Question{},
		&models.Exam{},
		&models.ExamQuestion{},
		&models.Attempt{},
		&models.AttemptAnswer{},
	); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	cacheService := cache.NewNoopCache()
	if cfg.RedisURL != "" {
		redisClient, err := pkg.NewRedisClient(cfg)
		if err != nil {
			logger.Error("Failed to connect to redis", "error", err)
			os.Exit(1)
		}
		cacheService = cache.NewRedisCache(redisClient, logger)
	}

	var publisher events.EventPublisher = events.NewNoopEventPublisher()
	if len(cfg.KafkaBrokers) > 0 {
		publisher, err = events.NewKafkaEventPublisher(events.PublisherConfig{
			KafkaBrokers: cfg.KafkaBrokers,
			TopicName:    cfg.KafkaTopic,
			Logger:       logger,
		})
		if err != nil {
			logger.Error("Failed to create event publisher", "error", err)
			os.Exit(1)
		}
		defer publisher.Close()
	}

	repo := postgres.NewRepository(db)
	registry := matrix.NewRegistry(matrix.DefaultConfig())
	validator := utils.NewValidator()

	sampler := services.NewQuestionSampler(repo, logger)
	assembler := services.NewExamAssembler(repo, registry, sampler, logger)
	examService := services.NewExamService(repo, registry, sampler, logger, validator)
	attemptService := services.NewAttemptService(repo, publisher, cacheService, logger, validator)
	analyticsService := services.NewAnalyticsService(repo, cacheService, logger)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	handlerManager := handlers.NewHandlerManager(
		assembler,
		examService,
		attemptService,
		analyticsService,
		utils.NewSlogLogger(logger),
	)
	handlerManager.SetupRoutes(router)

	logger.Info("Starting exam service", "port", cfg.Port, "environment", cfg.Environment)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}
