package main

import (
	"context"
	"log"
	"time"

	"thinklie-backend/config"
	"thinklie-backend/internal/authgw"
	"thinklie-backend/internal/domain/chat"
	"thinklie-backend/internal/domain/project"
	"thinklie-backend/internal/handler"
	"thinklie-backend/internal/llm"
	appredis "thinklie-backend/internal/redis"
	"thinklie-backend/internal/repository"
	"thinklie-backend/internal/server"
	"thinklie-backend/internal/services"
	"thinklie-backend/internal/storage"
	"thinklie-backend/pkg/database"
	"thinklie-backend/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	logMode := logger.DevelopmentMode
	if cfg.AppMode == server.ReleaseMode {
		logMode = logger.ProductionMode
	}
	l := logger.New(logMode)
	logger.SetGlobalLogger(l)

	// Connect to the hosted Postgres
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&chat.Chat{},
		&chat.Message{},
		&project.Project{},
		&project.MediaObject{},
	); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	ctx := context.Background()

	// Hosted auth provider gateway
	gateway := authgw.NewClient(cfg.AuthBaseURL, cfg.AuthAPIKey)

	// LLM completion client
	completer, err := llm.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("Failed to initialize LLM client: %v", err)
	}

	// Redis-backed rate limiting; nil limiter disables it
	var limiter *appredis.RateLimiter
	if cfg.RedisHost != "" {
		rdb := appredis.NewClient(appredis.Config{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		limiter = appredis.NewRateLimiter(rdb, appredis.DefaultRateLimitConfig())
	}

	// Object storage for media uploads; optional
	var store *storage.Client
	if cfg.S3Bucket != "" {
		store, err = storage.NewClient(ctx, storage.S3Config{
			Region:     cfg.S3Region,
			Bucket:     cfg.S3Bucket,
			AccessKey:  cfg.S3AccessKey,
			SecretKey:  cfg.S3SecretKey,
			Endpoint:   cfg.S3Endpoint,
			PublicBase: cfg.S3PublicBase,
			PresignTTL: 15 * time.Minute,
		})
		if err != nil {
			log.Fatalf("Failed to initialize object storage: %v", err)
		}
	}

	chatRepo := repository.NewChatRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	mediaRepo := repository.NewMediaRepository(db)

	authService := services.NewAuthService(gateway, cfg)
	chatService := services.NewChatService(chatRepo, messageRepo, completer, l)
	projectService := services.NewProjectService(projectRepo)
	mediaService := services.NewMediaService(mediaRepo, store)

	srv := server.New(cfg, l, db)
	srv.SetupRoutes(&server.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Chat:    handler.NewChatHandler(chatService),
		Project: handler.NewProjectHandler(projectService),
		Media:   handler.NewMediaHandler(mediaService),
	}, authService, limiter)

	if err := srv.Start(); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}
}
