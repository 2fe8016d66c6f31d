package domain

import (
	"context"
	"errors"
)

//go:generate mockgen -destination mocks/mock_job_queue.go -package mocks github.com/converso/converso/internal/domain JobQueue

// Queue backend names
const (
	QueueBackendPostgres = "postgres"
	QueueBackendMemory   = "memory"
)

// ErrQueueUnavailable is returned by Enqueue when every configured
// backend failed.
var ErrQueueUnavailable = errors.New("no queue backend available")

// JobHandler processes one job payload. Returning an error requeues the
// job under the backend's retry policy, so side effects must be
// idempotent or safely repeatable: redelivery is possible after a
// handler error and even after success if the worker dies before acking.
type JobHandler func(ctx context.Context, payload []byte) error

// JobQueue decouples the webhook thread of control from processing with
// at-least-once delivery. No ordering guarantee across jobs, including
// jobs of the same conversation.
type JobQueue interface {
	// Enqueue durably writes a job and reports which backend took it
	Enqueue(ctx context.Context, topic string, payload interface{}) (backend string, err error)

	// Subscribe registers the handler for a topic. Must be called before
	// Start; workers share the topic with bounded concurrency.
	Subscribe(topic string, handler JobHandler)

	// Start launches the workers
	Start(ctx context.Context) error

	// Stop drains the workers
	Stop(ctx context.Context) error
}
