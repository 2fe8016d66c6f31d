package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/converso/converso/internal/domain"
	"github.com/converso/converso/pkg/logger"
)

type fakeBackend struct {
	name       string
	enqueueErr error
	enqueued   [][]byte
	handlers   map[string]domain.JobHandler
}

func newFakeBackend(name string, enqueueErr error) *fakeBackend {
	return &fakeBackend{name: name, enqueueErr: enqueueErr, handlers: map[string]domain.JobHandler{}}
}

func (f *fakeBackend) Name() string { return f.name }

func (f *fakeBackend) Enqueue(ctx context.Context, topic string, payload []byte) error {
	if f.enqueueErr != nil {
		return f.enqueueErr
	}
	f.enqueued = append(f.enqueued, payload)
	return nil
}

func (f *fakeBackend) Subscribe(topic string, handler domain.JobHandler) {
	f.handlers[topic] = handler
}

func (f *fakeBackend) Start(ctx context.Context) error { return nil }
func (f *fakeBackend) Stop(ctx context.Context) error  { return nil }

func TestClient_Enqueue(t *testing.T) {
	t.Run("uses first backend when healthy", func(t *testing.T) {
		primary := newFakeBackend(domain.QueueBackendPostgres, nil)
		fallback := newFakeBackend(domain.QueueBackendMemory, nil)
		client := NewClient(logger.NewTestLogger(t), primary, fallback)

		backend, err := client.Enqueue(context.Background(), domain.TopicInboundMessages, map[string]string{"k": "v"})
		require.NoError(t, err)
		assert.Equal(t, domain.QueueBackendPostgres, backend)
		assert.Len(t, primary.enqueued, 1)
		assert.Empty(t, fallback.enqueued)
	})

	t.Run("falls back when primary fails", func(t *testing.T) {
		primary := newFakeBackend(domain.QueueBackendPostgres, errors.New("connection refused"))
		fallback := newFakeBackend(domain.QueueBackendMemory, nil)
		client := NewClient(logger.NewTestLogger(t), primary, fallback)

		backend, err := client.Enqueue(context.Background(), domain.TopicInboundMessages, map[string]string{"k": "v"})
		require.NoError(t, err)
		assert.Equal(t, domain.QueueBackendMemory, backend)
		assert.Len(t, fallback.enqueued, 1)
	})

	t.Run("reports unavailable when every backend fails", func(t *testing.T) {
		primary := newFakeBackend(domain.QueueBackendPostgres, errors.New("down"))
		fallback := newFakeBackend(domain.QueueBackendMemory, errors.New("full"))
		client := NewClient(logger.NewTestLogger(t), primary, fallback)

		_, err := client.Enqueue(context.Background(), domain.TopicInboundMessages, map[string]string{"k": "v"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrQueueUnavailable)
	})
}

func TestClient_Subscribe(t *testing.T) {
	primary := newFakeBackend(domain.QueueBackendPostgres, nil)
	fallback := newFakeBackend(domain.QueueBackendMemory, nil)
	client := NewClient(logger.NewTestLogger(t), primary, fallback)

	client.Subscribe(domain.TopicInboundMessages, func(ctx context.Context, payload []byte) error { return nil })

	assert.Contains(t, primary.handlers, domain.TopicInboundMessages)
	assert.Contains(t, fallback.handlers, domain.TopicInboundMessages)
}

func TestMemoryBackend_ProcessesJobs(t *testing.T) {
	backend := NewMemoryBackend(logger.NewTestLogger(t), 2)

	var mu sync.Mutex
	var got []string
	done := make(chan struct{})
	backend.Subscribe("topic", func(ctx context.Context, payload []byte) error {
		mu.Lock()
		got = append(got, string(payload))
		mu.Unlock()
		close(done)
		return nil
	})

	require.NoError(t, backend.Start(context.Background()))
	defer backend.Stop(context.Background())

	require.NoError(t, backend.Enqueue(context.Background(), "topic", []byte("hello")))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job was not processed")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"hello"}, got)
}

func TestMemoryBackend_DeadLettersAfterMaxAttempts(t *testing.T) {
	backend := NewMemoryBackend(logger.NewTestLogger(t), 1)
	backend.retryDelay = func(attempts int) time.Duration { return time.Millisecond }

	var mu sync.Mutex
	attempts := 0
	backend.Subscribe("topic", func(ctx context.Context, payload []byte) error {
		mu.Lock()
		attempts++
		mu.Unlock()
		return errors.New("always fails")
	})

	require.NoError(t, backend.Start(context.Background()))
	defer backend.Stop(context.Background())

	require.NoError(t, backend.Enqueue(context.Background(), "topic", []byte("doomed")))

	require.Eventually(t, func() bool {
		return backend.DeadLetterCount() == 1
	}, 2*time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, domain.JobMaxAttempts, attempts)
}
