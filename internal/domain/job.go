package domain

import "time"

// JobStatus represents the status of an ingest job.
// Values include JobStatusPending, JobStatusRunning, JobStatusCompleted, and JobStatusFailed.
type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
)

// IngestJob represents one dataset ingestion run and its progress metadata.
type IngestJob struct {
	ID               string     `gorm:"type:text;primaryKey" json:"id"`
	Source           string     `gorm:"type:text;not null;index" json:"source"`
	Status           JobStatus  `gorm:"default:pending" json:"status"`
	TotalRecords     int        `gorm:"default:0" json:"total_records"`
	UpsertedRecords  int        `gorm:"default:0" json:"upserted_records"`
	FailedRecords    int        `gorm:"default:0" json:"failed_records"`
	BatchesCommitted int        `gorm:"default:0" json:"batches_committed"`
	StartedAt        *time.Time `json:"started_at,omitempty"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	ErrorLog         string     `json:"error_log,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// TableName returns the database table name for IngestJob.
func (IngestJob) TableName() string {
	return "ingest_jobs"
}
