package queue

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/converso/converso/internal/domain"
	"github.com/converso/converso/pkg/logger"
)

// PostgresBackend polls the job_queue table. FOR UPDATE SKIP LOCKED in
// the repository makes concurrent pollers safe, so multiple API
// instances can share the table.
type PostgresBackend struct {
	repo         domain.JobQueueRepository
	logger       logger.Logger
	concurrency  int
	pollInterval time.Duration

	mu       sync.Mutex
	handlers map[string]domain.JobHandler

	cancel      context.CancelFunc
	stoppedChan chan struct{}
}

// NewPostgresBackend creates the durable backend
func NewPostgresBackend(repo domain.JobQueueRepository, log logger.Logger, concurrency int, pollInterval time.Duration) *PostgresBackend {
	if concurrency <= 0 {
		concurrency = 1
	}
	if pollInterval <= 0 {
		pollInterval = time.Second
	}
	return &PostgresBackend{
		repo:         repo,
		logger:       log,
		concurrency:  concurrency,
		pollInterval: pollInterval,
		handlers:     make(map[string]domain.JobHandler),
	}
}

// Name returns the backend name
func (b *PostgresBackend) Name() string {
	return domain.QueueBackendPostgres
}

// Enqueue durably writes the job
func (b *PostgresBackend) Enqueue(ctx context.Context, topic string, payload []byte) error {
	entry := &domain.JobQueueEntry{
		Topic:   topic,
		Payload: payload,
	}
	return b.repo.Enqueue(ctx, entry)
}

// Subscribe registers the handler for a topic. Must be called before Start.
func (b *PostgresBackend) Subscribe(topic string, handler domain.JobHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[topic] = handler
}

// Start launches one poll loop per subscribed topic
func (b *PostgresBackend) Start(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel
	b.stoppedChan = make(chan struct{})

	b.mu.Lock()
	topics := make([]string, 0, len(b.handlers))
	for topic := range b.handlers {
		topics = append(topics, topic)
	}
	b.mu.Unlock()

	var wg sync.WaitGroup
	for _, topic := range topics {
		wg.Add(1)
		go func(topic string) {
			defer wg.Done()
			b.pollLoop(runCtx, topic)
		}(topic)
	}

	go func() {
		wg.Wait()
		close(b.stoppedChan)
	}()

	return nil
}

// Stop cancels the poll loops and waits for in-flight jobs
func (b *PostgresBackend) Stop(ctx context.Context) error {
	if b.cancel == nil {
		return nil
	}
	b.cancel()

	select {
	case <-b.stoppedChan:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("timed out waiting for postgres queue workers: %w", ctx.Err())
	}
}

func (b *PostgresBackend) pollLoop(ctx context.Context, topic string) {
	ticker := time.NewTicker(b.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := b.processBatch(ctx, topic); err != nil {
				b.logger.WithFields(map[string]interface{}{
					"topic": topic,
					"error": err.Error(),
				}).Error("Queue batch processing failed")
			}
		}
	}
}

func (b *PostgresBackend) processBatch(ctx context.Context, topic string) error {
	entries, err := b.repo.FetchPending(ctx, topic, b.concurrency)
	if err != nil {
		return fmt.Errorf("failed to fetch pending jobs: %w", err)
	}
	if len(entries) == 0 {
		return nil
	}

	b.mu.Lock()
	handler := b.handlers[topic]
	b.mu.Unlock()

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)
	for _, entry := range entries {
		entry := entry
		g.Go(func() error {
			b.processEntry(gCtx, entry, handler)
			return nil
		})
	}
	return g.Wait()
}

func (b *PostgresBackend) processEntry(ctx context.Context, entry *domain.JobQueueEntry, handler domain.JobHandler) {
	if err := b.repo.MarkAsProcessing(ctx, entry.ID); err != nil {
		b.logger.WithFields(map[string]interface{}{
			"job_id": entry.ID,
			"error":  err.Error(),
		}).Error("Failed to claim job")
		return
	}
	entry.Attempts++

	if err := handler(ctx, entry.Payload); err != nil {
		b.handleFailure(ctx, entry, err)
		return
	}

	if err := b.repo.MarkAsDone(ctx, entry.ID); err != nil {
		b.logger.WithFields(map[string]interface{}{
			"job_id": entry.ID,
			"error":  err.Error(),
		}).Error("Failed to mark job done")
	}
}

func (b *PostgresBackend) handleFailure(ctx context.Context, entry *domain.JobQueueEntry, jobErr error) {
	log := b.logger.WithFields(map[string]interface{}{
		"job_id":   entry.ID,
		"topic":    entry.Topic,
		"attempts": entry.Attempts,
	})

	if entry.Attempts >= entry.MaxAttempts {
		if err := b.repo.MoveToDeadLetter(ctx, entry, jobErr.Error()); err != nil {
			log.WithField("error", err.Error()).Error("Failed to move job to dead letter")
			return
		}
		log.WithField("error", jobErr.Error()).Error("Job moved to dead letter after max attempts")
		return
	}

	nextRetry := domain.CalculateNextRetryTime(entry.Attempts)
	if err := b.repo.MarkAsFailed(ctx, entry.ID, jobErr.Error(), &nextRetry); err != nil {
		log.WithField("error", err.Error()).Error("Failed to schedule job retry")
		return
	}
	log.WithField("error", jobErr.Error()).Warn("Job failed, retry scheduled")
}
