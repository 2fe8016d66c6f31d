package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/converso/converso/internal/domain"
)

// JobQueueRepository implements domain.JobQueueRepository
type JobQueueRepository struct {
	db *sql.DB
}

// NewJobQueueRepository creates a new JobQueueRepository
func NewJobQueueRepository(db *sql.DB) domain.JobQueueRepository {
	return &JobQueueRepository{db: db}
}

// Enqueue adds a job to the queue
func (r *JobQueueRepository) Enqueue(ctx context.Context, entry *domain.JobQueueEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.MaxAttempts == 0 {
		entry.MaxAttempts = domain.JobMaxAttempts
	}
	now := time.Now().UTC()
	entry.Status = domain.JobStatusPending
	entry.CreatedAt = now
	entry.UpdatedAt = now

	query := `
		INSERT INTO job_queue (id, topic, status, payload, attempts, max_attempts, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.Topic,
		string(entry.Status),
		entry.Payload,
		entry.Attempts,
		entry.MaxAttempts,
		entry.CreatedAt,
		entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to enqueue job: %w", err)
	}
	return nil
}

// FetchPending retrieves jobs ready for processing using
// FOR UPDATE SKIP LOCKED so concurrent workers never double-fetch.
// Picks up pending jobs, failed jobs whose retry time has passed and
// processing jobs stuck for over 10 minutes (worker crash recovery).
func (r *JobQueueRepository) FetchPending(ctx context.Context, topic string, limit int) ([]*domain.JobQueueEntry, error) {
	query := `
		SELECT id, topic, status, payload, attempts, max_attempts, last_error,
		       next_retry_at, created_at, updated_at, processed_at
		FROM job_queue
		WHERE topic = $1
		  AND (
			status = 'pending'
			OR (status = 'failed' AND next_retry_at <= NOW() AND attempts < max_attempts)
			OR (status = 'processing' AND updated_at < NOW() - INTERVAL '10 minutes')
		  )
		ORDER BY created_at ASC
		LIMIT $2
		FOR UPDATE SKIP LOCKED
	`
	rows, err := r.db.QueryContext(ctx, query, topic, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pending jobs: %w", err)
	}
	defer rows.Close()

	var entries []*domain.JobQueueEntry
	for rows.Next() {
		entry := &domain.JobQueueEntry{}
		var status string
		err := rows.Scan(
			&entry.ID,
			&entry.Topic,
			&status,
			&entry.Payload,
			&entry.Attempts,
			&entry.MaxAttempts,
			&entry.LastError,
			&entry.NextRetryAt,
			&entry.CreatedAt,
			&entry.UpdatedAt,
			&entry.ProcessedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		entry.Status = domain.JobStatus(status)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return entries, nil
}

// MarkAsProcessing atomically claims an entry and bumps attempts
func (r *JobQueueRepository) MarkAsProcessing(ctx context.Context, id string) error {
	query := `
		UPDATE job_queue
		SET status = 'processing', attempts = attempts + 1, updated_at = NOW()
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to mark job as processing: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return &domain.ErrNotFound{Entity: "job", ID: id}
	}
	return nil
}

// MarkAsDone marks an entry as successfully processed
func (r *JobQueueRepository) MarkAsDone(ctx context.Context, id string) error {
	query := `
		UPDATE job_queue
		SET status = 'done', processed_at = NOW(), updated_at = NOW()
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to mark job as done: %w", err)
	}
	return nil
}

// MarkAsFailed records the error and schedules a retry
func (r *JobQueueRepository) MarkAsFailed(ctx context.Context, id string, errorMsg string, nextRetryAt *time.Time) error {
	query := `
		UPDATE job_queue
		SET status = 'failed', last_error = $2, next_retry_at = $3, updated_at = NOW()
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, id, errorMsg, nextRetryAt); err != nil {
		return fmt.Errorf("failed to mark job as failed: %w", err)
	}
	return nil
}

// MoveToDeadLetter moves a permanently failed entry aside in one
// transaction so the job is never both live and dead
func (r *JobQueueRepository) MoveToDeadLetter(ctx context.Context, entry *domain.JobQueueEntry, finalError string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertQuery := `
		INSERT INTO job_queue_dead_letter (id, original_entry_id, topic, payload, final_error, attempts, created_at, failed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
	`
	_, err = tx.ExecContext(ctx, insertQuery,
		uuid.New().String(),
		entry.ID,
		entry.Topic,
		entry.Payload,
		finalError,
		entry.Attempts,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert dead letter: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM job_queue WHERE id = $1`, entry.ID); err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetStats returns queue statistics
func (r *JobQueueRepository) GetStats(ctx context.Context) (*domain.JobQueueStats, error) {
	stats := &domain.JobQueueStats{}

	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'processing'),
			COUNT(*) FILTER (WHERE status = 'done'),
			COUNT(*) FILTER (WHERE status = 'failed')
		FROM job_queue
	`
	err := r.db.QueryRowContext(ctx, query).
		Scan(&stats.Pending, &stats.Processing, &stats.Done, &stats.Failed)
	if err != nil {
		return nil, fmt.Errorf("failed to get queue stats: %w", err)
	}

	err = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM job_queue_dead_letter`).
		Scan(&stats.DeadLetter)
	if err != nil {
		return nil, fmt.Errorf("failed to get dead letter count: %w", err)
	}

	return stats, nil
}
