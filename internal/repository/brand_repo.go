package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/timmy/brandkit/internal/domain"
)

// BrandRepository handles brand record bookkeeping in the relational store.
type BrandRepository struct {
	db *gorm.DB
}

// NewBrandRepository creates a new BrandRepository.
func NewBrandRepository(db *gorm.DB) *BrandRepository {
	return &BrandRepository{db: db}
}

// Upsert creates or updates a brand record keyed by its ID. Ingest IDs are
// content-derived, so re-ingesting the same dataset overwrites in place.
func (r *BrandRepository) Upsert(ctx context.Context, record *domain.BrandRecord) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(record).Error
}

// UpsertBatch upserts a slice of brand records in one statement.
func (r *BrandRepository) UpsertBatch(ctx context.Context, records []*domain.BrandRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(records).Error
}

// GetByID retrieves a brand record by its ID.
func (r *BrandRepository) GetByID(ctx context.Context, id string) (*domain.BrandRecord, error) {
	var record domain.BrandRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// Count returns the number of ingested brand records.
func (r *BrandRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.BrandRecord{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ListIndustries returns the distinct industries present in the dataset.
func (r *BrandRepository) ListIndustries(ctx context.Context) ([]string, error) {
	var industries []string
	err := r.db.WithContext(ctx).
		Model(&domain.BrandRecord{}).
		Where("brand_industry <> ''").
		Distinct("brand_industry").
		Order("brand_industry").
		Pluck("brand_industry", &industries).Error
	if err != nil {
		return nil, err
	}
	return industries, nil
}

// JobRepository handles ingest job bookkeeping.
type JobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new JobRepository.
func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

// Create inserts a new ingest job record.
func (r *JobRepository) Create(ctx context.Context, job *domain.IngestJob) error {
	return r.db.WithContext(ctx).Create(job).Error
}

// Update persists changes to an ingest job.
func (r *JobRepository) Update(ctx context.Context, job *domain.IngestJob) error {
	return r.db.WithContext(ctx).Save(job).Error
}

// MarkRunning transitions a job to running and stamps the start time.
func (r *JobRepository) MarkRunning(ctx context.Context, job *domain.IngestJob) error {
	now := time.Now()
	job.Status = domain.JobStatusRunning
	job.StartedAt = &now
	return r.Update(ctx, job)
}

// MarkCompleted transitions a job to completed and stamps the end time.
func (r *JobRepository) MarkCompleted(ctx context.Context, job *domain.IngestJob) error {
	now := time.Now()
	job.Status = domain.JobStatusCompleted
	job.CompletedAt = &now
	return r.Update(ctx, job)
}

// MarkFailed transitions a job to failed, recording the error message.
func (r *JobRepository) MarkFailed(ctx context.Context, job *domain.IngestJob, cause error) error {
	now := time.Now()
	job.Status = domain.JobStatusFailed
	job.CompletedAt = &now
	if cause != nil {
		job.ErrorLog = cause.Error()
	}
	return r.Update(ctx, job)
}

// GetByID retrieves an ingest job by its ID.
func (r *JobRepository) GetByID(ctx context.Context, id string) (*domain.IngestJob, error) {
	var job domain.IngestJob
	if err := r.db.WithContext(ctx).First(&job, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}
