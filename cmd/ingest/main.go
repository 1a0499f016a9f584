package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/timmy/brandkit/internal/config"
	"github.com/timmy/brandkit/internal/logger"
	"github.com/timmy/brandkit/internal/repository"
	"github.com/timmy/brandkit/internal/service"
	"github.com/timmy/brandkit/internal/source"
	"github.com/timmy/brandkit/internal/source/csvfile"
)

func main() {
	appLogger := logger.NewFromEnv(&logger.EnvConfig{
		ServiceName: "brandkit-ingest",
	})
	logger.SetDefaultLogger(appLogger)
	defer logger.Sync()

	datasetPath := flag.String("dataset", "", "Path to the brand dataset CSV file")
	limit := flag.Int("limit", 0, "Maximum number of records to ingest (0 for all)")
	configPath := flag.String("config", "", "Path to config file")
	flag.Parse()

	if *datasetPath == "" {
		appLogger.Fatal("Missing required flag: -dataset")
	}

	cfg, err := config.Load(*configPath)
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// A signal aborts the run between batches; committed batches stay put.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		appLogger.Warn("Received shutdown signal, aborting ingestion")
		cancel()
	}()

	if err := qdrantRepo.EnsureCollection(ctx); err != nil {
		appLogger.WithError(err).Fatal("Failed to ensure Qdrant collection")
	}

	embeddingService := service.NewEmbeddingService(&service.EmbeddingServiceConfig{
		Provider:   cfg.Embedding.Provider,
		Model:      cfg.Embedding.Model,
		APIKey:     cfg.Embedding.APIKey,
		Dimensions: cfg.Embedding.Dimensions,
	})

	ingestService := service.NewIngestService(
		qdrantRepo,
		embeddingService,
		brandRepo,
		jobRepo,
		appLogger,
		&service.IngestConfig{
			BatchSize: cfg.Ingest.BatchSize,
		},
	)

	var src source.Source = csvfile.NewAdapter(*datasetPath)

	stats, err := ingestService.IngestFromSource(ctx, src, *limit)
	if err != nil {
		appLogger.WithFields(logger.Fields{
			"upserted": stats.UpsertedRecords,
			"batches":  stats.BatchesCommitted,
		}).WithError(err).Fatal("Ingestion failed")
	}

	appLogger.WithFields(logger.Fields{
		"total":    stats.TotalRecords,
		"upserted": stats.UpsertedRecords,
		"batches":  stats.BatchesCommitted,
		"duration": stats.EndTime.Sub(stats.StartTime).String(),
	}).Info("Ingestion finished")
}
