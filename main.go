package main

import (
	"context"
	"log"
	"time"

	api "textwiz-backend/cmd/api"
	authRepo "textwiz-backend/internal/auth/repository"
	authUsecase "textwiz-backend/internal/auth/usecase"
	gentextUsecase "textwiz-backend/internal/gentext/usecase"
	"textwiz-backend/pkg/cache"
	"textwiz-backend/pkg/config"
	"textwiz-backend/pkg/database"
	"textwiz-backend/pkg/gemini"
)

const (
	summaryCacheCapacity = 100
	summaryCacheTTL      = 24 * time.Hour
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewMongoConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := authRepo.EnsureIndexes(ctx, db); err != nil {
		log.Fatal("Failed to create indexes: ", err)
	}

	// Initialize repositories and shared infrastructure (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	summaryCache := cache.New(summaryCacheCapacity, summaryCacheTTL, nil)
	geminiClient := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)

	// Initialize use cases
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepo, cfg)
	gentextUsecaseInstance := gentextUsecase.NewGentextUsecase(geminiClient, summaryCache)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, gentextUsecaseInstance, cfg)

	// Start server
	log.Printf("Server is running in %s on port %s", cfg.DevMode, cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
