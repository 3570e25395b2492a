// @title DSA Tutor API
// @version 1.0
// @description Generates data structures and algorithms lessons, quizzes and study plans with a language model.
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:5000
// @BasePath /
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"dsa-tutor/internal/adapter"
	"dsa-tutor/internal/adapter/llm"
	"dsa-tutor/internal/cache"
	"dsa-tutor/internal/config"
	"dsa-tutor/internal/domain"
	"dsa-tutor/internal/handler"
	"dsa-tutor/internal/history"
	"dsa-tutor/internal/logger"
	"dsa-tutor/internal/service"
	"dsa-tutor/internal/validation"

	_ "dsa-tutor/cmd/api/docs"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		appLogger.Fatal("Invalid configuration", zap.Error(err))
	}

	ctx := context.Background()

	model, err := llm.New(ctx, cfg.LLM)
	if err != nil {
		appLogger.Fatal("Failed to create LLM client", zap.Error(err))
	}
	appLogger.Info("LLM client initialized",
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", cfg.LLM.Model),
		zap.Duration("timeout", cfg.LLM.Timeout),
	)

	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))

		cached, err := llm.NewCachedClient(model, adapter.NewRedisCacheAdapter(redisClient), cfg.LLM.Model, cfg.Cache.CompletionTTL)
		if err != nil {
			appLogger.Fatal("Failed to create completion cache", zap.Error(err))
		}
		model = cached
		appLogger.Info("Completion cache enabled", zap.Duration("ttl", cfg.Cache.CompletionTTL))
	}

	validator, err := validation.NewValidator()
	if err != nil {
		appLogger.Fatal("Failed to compile output schemas", zap.Error(err))
	}

	policies := service.Policies{
		QuizParseFailure: domain.ParsePolicy(cfg.Generation.QuizParseFailure, service.DefaultPolicies.QuizParseFailure),
		PlanParseFailure: domain.ParsePolicy(cfg.Generation.PlanParseFailure, service.DefaultPolicies.PlanParseFailure),
	}
	contentService := service.NewContentService(model, history.NewStore(cfg.History.Capacity), validator, policies)
	appLogger.Info("ContentService initialized",
		zap.Int("history_capacity", cfg.History.Capacity),
		zap.String("quiz_parse_failure", string(policies.QuizParseFailure)),
		zap.String("plan_parse_failure", string(policies.PlanParseFailure)),
	)

	contentHandler := handler.NewContentHandler(contentService, cfg.Server.CORSOrigin)
	app := handler.NewApp(cfg.Server, contentHandler)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
