package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/timmy/brandkit/internal/api"
	"github.com/timmy/brandkit/internal/api/middleware"
	"github.com/timmy/brandkit/internal/config"
	"github.com/timmy/brandkit/internal/logger"
	"github.com/timmy/brandkit/internal/repository"
	"github.com/timmy/brandkit/internal/service"
	"github.com/timmy/brandkit/internal/storage"
)

func main() {
	appLogger := logger.NewFromEnv(&logger.EnvConfig{
		ServiceName: "brandkit-api",
	})
	logger.SetDefaultLogger(appLogger)
	defer logger.Sync()

	// Support CONFIG_PATH environment variable for production deployments
	configPath := os.Getenv("CONFIG_PATH")
	cfg, err := config.Load(configPath)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to load config")
	}

	db, err := repository.InitDB(&cfg.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize database")
	}

	brandRepo := repository.NewBrandRepository(db)
	jobRepo := repository.NewJobRepository(db)

	qdrantRepo, err := repository.NewQdrantRepository(&repository.QdrantConnectionConfig{
		Host:            cfg.Qdrant.Host,
		Port:            cfg.Qdrant.Port,
		Collection:      cfg.Qdrant.Collection,
		APIKey:          cfg.Qdrant.APIKey,
		UseTLS:          cfg.Qdrant.UseTLS,
		VectorDimension: cfg.Embedding.Dimensions,
	})
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize Qdrant repository")
	}
	defer qdrantRepo.Close()

	ctx := context.Background()
	if err := qdrantRepo.EnsureCollection(ctx); err != nil {
		appLogger.WithError(err).Fatal("Failed to ensure Qdrant collection")
	}

	embeddingService := service.NewEmbeddingService(&service.EmbeddingServiceConfig{
		Provider:   cfg.Embedding.Provider,
		Model:      cfg.Embedding.Model,
		APIKey:     cfg.Embedding.APIKey,
		Dimensions: cfg.Embedding.Dimensions,
	})

	generationService := service.NewGenerationService(&service.GenerationServiceConfig{
		Model:       cfg.Generation.Model,
		APIKey:      cfg.Generation.APIKey,
		BaseURL:     cfg.Generation.BaseURL,
		MaxTokens:   cfg.Generation.MaxTokens,
		Temperature: cfg.Generation.Temperature,
	})

	imageService := service.NewImageService(&service.ImageServiceConfig{
		Model:   cfg.Image.Model,
		APIKey:  cfg.Image.APIKey,
		BaseURL: cfg.Image.BaseURL,
		Size:    cfg.Image.Size,
	})

	// Logo archival is optional; without it kits carry provider URLs only.
	var archiver service.Archiver
	if cfg.Archive.Enabled {
		objectStorage, err := storage.NewStorage(&storage.S3Config{
			Endpoint:  cfg.Archive.Endpoint,
			AccessKey: cfg.Archive.AccessKey,
			SecretKey: cfg.Archive.SecretKey,
			UseSSL:    cfg.Archive.UseSSL,
			Bucket:    cfg.Archive.Bucket,
			Region:    cfg.Archive.Region,
			PublicURL: cfg.Archive.PublicURL,
		})
		if err != nil {
			appLogger.WithError(err).Fatal("Failed to initialize logo archive storage")
		}
		if err := objectStorage.EnsureBucket(ctx); err != nil {
			appLogger.WithError(err).Fatal("Failed to ensure logo archive bucket")
		}
		archiver = service.NewArchiveService(objectStorage, appLogger)
	}

	pipeline := service.NewPipelineService(
		embeddingService,
		qdrantRepo,
		generationService,
		imageService,
		archiver,
		appLogger,
		cfg.Retrieval.TopK,
		cfg.Image.Count,
	)

	router := api.SetupRouter(&api.RouterConfig{
		Pipeline:  pipeline,
		BrandRepo: brandRepo,
		JobRepo:   jobRepo,
		Logger:    appLogger,
		Mode:      cfg.Server.Mode,
		CORS: middleware.CORSConfig{
			AllowedOrigins:  cfg.Server.CORS.AllowedOrigins,
			AllowAllOrigins: cfg.Server.CORS.AllowAllOrigins,
		},
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		appLogger.WithFields(logger.Fields{
			"port": cfg.Server.Port,
			"mode": cfg.Server.Mode,
		}).Info("Starting API server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithError(err).Fatal("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.WithError(err).Fatal("Server forced to shutdown")
	}

	appLogger.Info("Server exited")
}
