package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination mocks/mock_job_queue_repository.go -package mocks github.com/converso/converso/internal/domain JobQueueRepository

// JobStatus represents the status of a queued job
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusDone       JobStatus = "done"
	JobStatusFailed     JobStatus = "failed"
)

// JobMaxAttempts is the default bounded retry count
const JobMaxAttempts = 3

// JobQueueEntry is a durable job row in the postgres backend
type JobQueueEntry struct {
	ID          string     `json:"id"`
	Topic       string     `json:"topic"`
	Status      JobStatus  `json:"status"`
	Payload     []byte     `json:"payload"`
	Attempts    int        `json:"attempts"`
	MaxAttempts int        `json:"max_attempts"`
	LastError   *string    `json:"last_error,omitempty"`
	NextRetryAt *time.Time `json:"next_retry_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
}

// JobQueueStats provides queue statistics
type JobQueueStats struct {
	Pending    int64 `json:"pending"`
	Processing int64 `json:"processing"`
	Done       int64 `json:"done"`
	Failed     int64 `json:"failed"`
	DeadLetter int64 `json:"dead_letter"`
}

// JobQueueRepository defines data access for the durable job queue
type JobQueueRepository interface {
	// Enqueue adds a job to the queue
	Enqueue(ctx context.Context, entry *JobQueueEntry) error

	// FetchPending retrieves jobs ready for processing. Uses
	// FOR UPDATE SKIP LOCKED so concurrent workers never double-fetch.
	// Includes failed jobs whose retry time has passed and stuck
	// processing jobs for recovery after a worker crash.
	FetchPending(ctx context.Context, topic string, limit int) ([]*JobQueueEntry, error)

	// MarkAsProcessing atomically claims an entry and bumps attempts
	MarkAsProcessing(ctx context.Context, id string) error

	// MarkAsDone marks an entry as successfully processed
	MarkAsDone(ctx context.Context, id string) error

	// MarkAsFailed records the error and schedules a retry
	MarkAsFailed(ctx context.Context, id string, errorMsg string, nextRetryAt *time.Time) error

	// MoveToDeadLetter moves a permanently failed entry aside for
	// manual inspection
	MoveToDeadLetter(ctx context.Context, entry *JobQueueEntry, finalError string) error

	// GetStats returns queue statistics
	GetStats(ctx context.Context) (*JobQueueStats, error)
}

// CalculateNextRetryTime computes the next retry using exponential
// backoff: 1min, 2min, 4min for attempts 1, 2, 3.
func CalculateNextRetryTime(attempts int) time.Time {
	if attempts <= 0 {
		attempts = 1
	}
	backoffMinutes := 1 << uint(attempts-1)
	return time.Now().UTC().Add(time.Duration(backoffMinutes) * time.Minute)
}
