package queue

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/converso/converso/internal/domain"
	"github.com/converso/converso/pkg/logger"
)

const memoryBufferSize = 1024

// memoryJob tracks per-job retry state in the in-process backend
type memoryJob struct {
	topic    string
	payload  []byte
	attempts int
}

// MemoryBackend delivers jobs over in-process channels. Jobs do not
// survive a restart; it exists as the fallback when postgres delivery
// is unavailable or disabled. Same retry policy as the durable backend:
// bounded attempts with exponential backoff, then dead letter.
type MemoryBackend struct {
	logger      logger.Logger
	concurrency int
	maxAttempts int

	// retryDelay is overridable so tests do not wait minutes
	retryDelay func(attempts int) time.Duration

	mu       sync.Mutex
	handlers map[string]domain.JobHandler
	jobs     chan *memoryJob
	started  bool

	deadMu     sync.Mutex
	deadLetter []*memoryJob

	cancel      context.CancelFunc
	stoppedChan chan struct{}
}

// NewMemoryBackend creates the in-process backend
func NewMemoryBackend(log logger.Logger, concurrency int) *MemoryBackend {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &MemoryBackend{
		logger:      log,
		concurrency: concurrency,
		maxAttempts: domain.JobMaxAttempts,
		retryDelay: func(attempts int) time.Duration {
			return time.Duration(1<<uint(attempts-1)) * time.Minute
		},
		handlers: make(map[string]domain.JobHandler),
		jobs:     make(chan *memoryJob, memoryBufferSize),
	}
}

// Name returns the backend name
func (b *MemoryBackend) Name() string {
	return domain.QueueBackendMemory
}

// Enqueue buffers the job in memory
func (b *MemoryBackend) Enqueue(ctx context.Context, topic string, payload []byte) error {
	job := &memoryJob{topic: topic, payload: payload}
	select {
	case b.jobs <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return fmt.Errorf("memory queue full")
	}
}

// Subscribe registers the handler for a topic. Must be called before Start.
func (b *MemoryBackend) Subscribe(topic string, handler domain.JobHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[topic] = handler
}

// Start launches the worker pool
func (b *MemoryBackend) Start(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.started {
		return nil
	}
	b.started = true

	runCtx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel
	b.stoppedChan = make(chan struct{})

	var wg sync.WaitGroup
	for i := 0; i < b.concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.worker(runCtx)
		}()
	}

	go func() {
		wg.Wait()
		close(b.stoppedChan)
	}()

	return nil
}

// Stop cancels the workers and waits for in-flight jobs
func (b *MemoryBackend) Stop(ctx context.Context) error {
	if b.cancel == nil {
		return nil
	}
	b.cancel()

	select {
	case <-b.stoppedChan:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("timed out waiting for memory queue workers: %w", ctx.Err())
	}
}

// DeadLetterCount reports jobs that exhausted their attempts
func (b *MemoryBackend) DeadLetterCount() int {
	b.deadMu.Lock()
	defer b.deadMu.Unlock()
	return len(b.deadLetter)
}

func (b *MemoryBackend) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-b.jobs:
			b.process(ctx, job)
		}
	}
}

func (b *MemoryBackend) process(ctx context.Context, job *memoryJob) {
	b.mu.Lock()
	handler := b.handlers[job.topic]
	b.mu.Unlock()

	if handler == nil {
		b.logger.WithField("topic", job.topic).Warn("No handler for topic, dropping job")
		return
	}

	job.attempts++
	err := handler(ctx, job.payload)
	if err == nil {
		return
	}

	log := b.logger.WithFields(map[string]interface{}{
		"topic":    job.topic,
		"attempts": job.attempts,
		"error":    err.Error(),
	})

	if job.attempts >= b.maxAttempts {
		b.deadMu.Lock()
		b.deadLetter = append(b.deadLetter, job)
		b.deadMu.Unlock()
		log.Error("Job dead-lettered after max attempts")
		return
	}

	log.Warn("Job failed, retry scheduled")
	delay := b.retryDelay(job.attempts)
	time.AfterFunc(delay, func() {
		select {
		case b.jobs <- job:
		default:
			b.logger.WithField("topic", job.topic).Error("Memory queue full, dropping retry")
		}
	})
}
