package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"course-recommender/internal/api"
	"course-recommender/internal/api/handlers"
	"course-recommender/internal/matching"
	"course-recommender/internal/repository"
	"course-recommender/internal/service"
	"course-recommender/pkg/auth"
	"course-recommender/pkg/config"
	"course-recommender/pkg/logger"
	"course-recommender/pkg/postgres"

	"go.uber.org/zap"
)

// @title Course Recommender API
// @version 1.0
// @description Roadmap generation and course catalog matching for learners
// @termsOfService http://swagger.io/terms/

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level, cfg.Logger.Format); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting course recommender service", zap.String("llm_provider", cfg.LLM.Provider))

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	recRepo := repository.NewRecommendationRepository(db, appLogger)
	pathRepo := repository.NewLearningPathRepository(db, appLogger)
	catalogRepo := repository.NewCatalogRepository(db, appLogger)

	// Tokens are issued by the platform; this service only validates them
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Issuer, cfg.JWT.Expiration)

	// Initialize services
	chatModel, err := service.NewChatModel(ctx, &cfg.LLM, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize LLM model", zap.Error(err))
	}
	llmService := service.NewLLMService(chatModel, cfg.LLM.Timeout, appLogger)
	defer llmService.Close()

	matcher := matching.NewMatcher(catalogRepo, cfg.Matching.QueryTimeout, cfg.Matching.Concurrency, appLogger)

	recService := service.NewRecommendationService(
		llmService,
		matcher,
		recRepo,
		cfg.Matching.PerStageLimit,
		cfg.LLM.ClarifyMaxWords,
		cfg.Database.QueryTimeout,
		appLogger,
	)
	pathService := service.NewLearningPathService(recRepo, pathRepo, cfg.Database.QueryTimeout, appLogger)

	// Initialize handlers
	recHandler := handlers.NewRecommendationHandler(recService, appLogger)
	pathHandler := handlers.NewLearningPathHandler(pathService, appLogger)

	// Setup router
	app := api.SetupRouter(recHandler, pathHandler, jwtManager, db, &cfg.Server, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
