package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/timmy/brandkit/internal/domain"
	"github.com/timmy/brandkit/internal/logger"
	"github.com/timmy/brandkit/internal/repository"
	"github.com/timmy/brandkit/internal/source"
)

// BatchEmbedder converts batches of passage text into dense vectors.
type BatchEmbedder interface {
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	GetModel() string
}

// VectorIndex receives batches of index entries and removes points by ID
// when a batch has to be rolled back.
type VectorIndex interface {
	UpsertBatch(ctx context.Context, entries []repository.IndexEntry) error
	Delete(ctx context.Context, pointID string) error
	Collection() string
}

// RecordStore persists the bookkeeping rows for ingested records.
type RecordStore interface {
	UpsertBatch(ctx context.Context, records []*domain.BrandRecord) error
}

// IngestService runs the dataset ingestion pipeline: fetch records from a
// source, build weighted embedding text, embed in batches, and upsert both
// the vector index and the bookkeeping store.
type IngestService struct {
	index     VectorIndex
	embedding BatchEmbedder
	brandRepo RecordStore
	jobRepo   *repository.JobRepository
	logger    *logger.Logger
	batchSize int
}

// IngestConfig holds configuration for the ingest service.
type IngestConfig struct {
	BatchSize int
}

// NewIngestService creates a new ingest service. brandRepo and jobRepo are
// optional; when nil the corresponding bookkeeping is skipped.
func NewIngestService(
	index VectorIndex,
	embedding BatchEmbedder,
	brandRepo RecordStore,
	jobRepo *repository.JobRepository,
	log *logger.Logger,
	cfg *IngestConfig,
) *IngestService {
	batchSize := 100
	if cfg != nil && cfg.BatchSize > 0 {
		batchSize = cfg.BatchSize
	}
	if log == nil {
		log = logger.GetDefault()
	}
	return &IngestService{
		index:     index,
		embedding: embedding,
		brandRepo: brandRepo,
		jobRepo:   jobRepo,
		logger:    log,
		batchSize: batchSize,
	}
}

// log returns a logger from context if available, otherwise the service logger.
func (s *IngestService) log(ctx context.Context) *logger.Logger {
	if l := logger.FromContext(ctx); l != nil {
		return l
	}
	return s.logger
}

// IngestStats holds statistics for one ingestion run.
type IngestStats struct {
	TotalRecords     int
	UpsertedRecords  int
	FailedRecords    int
	BatchesCommitted int
	StartTime        time.Time
	EndTime          time.Time
}

// IngestFromSource ingests all records the source yields, in batches of the
// configured size. Batches commit independently: on a failed batch the run
// stops, earlier batches stay committed, and the returned error reports the
// zero-based index of the batch that failed.
func (s *IngestService) IngestFromSource(ctx context.Context, src source.Source, limit int) (*IngestStats, error) {
	stats := &IngestStats{StartTime: time.Now()}

	job := &domain.IngestJob{
		ID:     uuid.New().String(),
		Source: src.GetSourceID(),
		Status: domain.JobStatusPending,
	}
	ctx = logger.SetJobID(ctx, job.ID)
	ctx = logger.SetSource(ctx, src.GetSourceID())

	if s.jobRepo != nil {
		if err := s.jobRepo.Create(ctx, job); err != nil {
			s.log(ctx).WithError(err).Warn("Failed to create ingest job record")
		}
		if err := s.jobRepo.MarkRunning(ctx, job); err != nil {
			s.log(ctx).WithError(err).Warn("Failed to mark ingest job running")
		}
	}

	s.log(ctx).WithFields(logger.Fields{
		"source":     src.GetSourceID(),
		"limit":      limit,
		"batch_size": s.batchSize,
	}).Info("Starting ingestion")

	cursor := ""
	batchIndex := 0
	for {
		fetchSize := s.batchSize
		if limit > 0 && limit-stats.TotalRecords < fetchSize {
			fetchSize = limit - stats.TotalRecords
		}
		if fetchSize <= 0 {
			break
		}

		records, nextCursor, err := src.FetchBatch(ctx, cursor, fetchSize)
		if err != nil {
			s.failJob(ctx, job, stats, err)
			stats.EndTime = time.Now()
			return stats, err
		}
		if len(records) == 0 {
			break
		}
		stats.TotalRecords += len(records)

		if err := s.ingestBatch(ctx, records); err != nil {
			batchErr := &repository.BatchError{
				Batch:     batchIndex,
				Committed: stats.UpsertedRecords,
				Err:       err,
			}
			s.failJob(ctx, job, stats, batchErr)
			stats.EndTime = time.Now()
			return stats, batchErr
		}

		stats.UpsertedRecords += len(records)
		stats.BatchesCommitted++
		batchIndex++
		s.log(ctx).WithFields(logger.Fields{
			"batch":    batchIndex - 1,
			"upserted": stats.UpsertedRecords,
		}).Debug("Committed ingest batch")

		if s.jobRepo != nil {
			job.TotalRecords = stats.TotalRecords
			job.UpsertedRecords = stats.UpsertedRecords
			job.BatchesCommitted = stats.BatchesCommitted
			if err := s.jobRepo.Update(ctx, job); err != nil {
				s.log(ctx).WithError(err).Warn("Failed to update ingest job progress")
			}
		}

		if nextCursor == "" {
			break
		}
		cursor = nextCursor
	}

	stats.EndTime = time.Now()
	if s.jobRepo != nil {
		job.TotalRecords = stats.TotalRecords
		job.UpsertedRecords = stats.UpsertedRecords
		job.BatchesCommitted = stats.BatchesCommitted
		if err := s.jobRepo.MarkCompleted(ctx, job); err != nil {
			s.log(ctx).WithError(err).Warn("Failed to mark ingest job completed")
		}
	}

	s.log(ctx).WithFields(logger.Fields{
		"total":    stats.TotalRecords,
		"upserted": stats.UpsertedRecords,
		"batches":  stats.BatchesCommitted,
		"duration": stats.EndTime.Sub(stats.StartTime).String(),
	}).Info("Ingestion completed")
	return stats, nil
}

// ingestBatch embeds one batch of records and upserts it to the index and
// the bookkeeping store.
func (s *IngestService) ingestBatch(ctx context.Context, records []domain.BrandRecord) error {
	texts := make([]string, len(records))
	for i := range records {
		texts[i] = BuildWeightedText(&records[i], domain.FieldWeights)
	}

	vectors, err := s.embedding.EmbedBatch(ctx, texts)
	if err != nil {
		return err
	}

	collection := s.index.Collection()
	entries := make([]repository.IndexEntry, len(records))
	rows := make([]*domain.BrandRecord, len(records))
	for i := range records {
		id := DeterministicPointID(collection, &records[i])
		entries[i] = repository.IndexEntry{
			ID:       id,
			Vector:   vectors[i],
			Metadata: BuildMetadata(&records[i]),
		}
		rec := records[i]
		rec.ID = id
		rec.EmbeddingModel = s.embedding.GetModel()
		rows[i] = &rec
	}

	if err := s.index.UpsertBatch(ctx, entries); err != nil {
		return err
	}

	if s.brandRepo != nil {
		if err := s.brandRepo.UpsertBatch(ctx, rows); err != nil {
			// Roll back the points of this batch so the index never holds
			// entries the record store does not know about.
			for _, entry := range entries {
				if delErr := s.index.Delete(ctx, entry.ID); delErr != nil {
					s.log(ctx).WithFields(logger.Fields{
						"point_id": entry.ID,
					}).WithError(delErr).Error("Failed to roll back index point")
				}
			}
			return err
		}
	}
	return nil
}

func (s *IngestService) failJob(ctx context.Context, job *domain.IngestJob, stats *IngestStats, cause error) {
	stats.FailedRecords = stats.TotalRecords - stats.UpsertedRecords
	s.log(ctx).WithFields(logger.Fields{
		"upserted": stats.UpsertedRecords,
		"batches":  stats.BatchesCommitted,
	}).WithError(cause).Error("Ingestion failed")
	if s.jobRepo == nil {
		return
	}
	job.TotalRecords = stats.TotalRecords
	job.UpsertedRecords = stats.UpsertedRecords
	job.BatchesCommitted = stats.BatchesCommitted
	job.FailedRecords = stats.FailedRecords
	if err := s.jobRepo.MarkFailed(ctx, job, cause); err != nil {
		s.log(ctx).WithError(err).Warn("Failed to mark ingest job failed")
	}
}

// DeterministicPointID derives a stable UUID for a record from the target
// collection and the record's content. Re-ingesting the same row therefore
// overwrites its existing point instead of duplicating it.
func DeterministicPointID(collection string, rec *domain.BrandRecord) string {
	parts := make([]string, 0, len(domain.FieldOrder)+2)
	parts = append(parts, collection, rec.BrandName)
	for _, f := range domain.FieldOrder {
		parts = append(parts, rec.Field(f))
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(strings.Join(parts, "\x1f"))).String()
}

// BuildMetadata assembles the index payload for a record. List-valued
// columns (colors, fonts, keywords) are JSON-encoded so the payload stays
// flat string-to-string; empty columns stay empty rather than encoding to
// `""`.
func BuildMetadata(rec *domain.BrandRecord) map[string]string {
	md := make(map[string]string, len(domain.FieldOrder)+1)
	md["brand_name"] = rec.BrandName
	for _, f := range domain.FieldOrder {
		v := rec.Field(f)
		switch f {
		case domain.FieldBrandColors, domain.FieldBrandFonts, domain.FieldCompanyKeywords:
			if v != "" {
				encoded, err := json.Marshal(v)
				if err == nil {
					v = string(encoded)
				}
			}
		}
		md[string(f)] = v
	}
	return md
}
