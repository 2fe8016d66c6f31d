package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/converso/converso/internal/domain"
)

func TestJobQueueRepository_Enqueue(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewJobQueueRepository(db)

	mock.ExpectExec(`INSERT INTO job_queue`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	entry := &domain.JobQueueEntry{
		Topic:   domain.TopicInboundMessages,
		Payload: []byte(`{"orgId":"org-1"}`),
	}
	err = repo.Enqueue(context.Background(), entry)
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, domain.JobStatusPending, entry.Status)
	assert.Equal(t, domain.JobMaxAttempts, entry.MaxAttempts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobQueueRepository_FetchPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewJobQueueRepository(db)

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "topic", "status", "payload", "attempts", "max_attempts",
		"last_error", "next_retry_at", "created_at", "updated_at", "processed_at",
	}).AddRow(
		"job-1", domain.TopicInboundMessages, "pending", []byte(`{}`),
		0, 3, nil, nil, now, now, nil,
	)

	mock.ExpectQuery(`SELECT .+ FROM job_queue`).
		WithArgs(domain.TopicInboundMessages, 10).
		WillReturnRows(rows)

	entries, err := repo.FetchPending(context.Background(), domain.TopicInboundMessages, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "job-1", entries[0].ID)
	assert.Equal(t, domain.JobStatusPending, entries[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobQueueRepository_MarkAsProcessing(t *testing.T) {
	t.Run("bumps attempts", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewJobQueueRepository(db)

		mock.ExpectExec(`UPDATE job_queue`).
			WithArgs("job-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.MarkAsProcessing(context.Background(), "job-1")
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found for missing job", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewJobQueueRepository(db)

		mock.ExpectExec(`UPDATE job_queue`).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err = repo.MarkAsProcessing(context.Background(), "missing")
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestJobQueueRepository_MoveToDeadLetter(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewJobQueueRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO job_queue_dead_letter`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM job_queue`).
		WithArgs("job-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	entry := &domain.JobQueueEntry{
		ID:        "job-1",
		Topic:     domain.TopicInboundMessages,
		Payload:   []byte(`{}`),
		Attempts:  3,
		CreatedAt: time.Now().UTC(),
	}
	err = repo.MoveToDeadLetter(context.Background(), entry, "handler failed")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCalculateNextRetryTime(t *testing.T) {
	testCases := []struct {
		attempts    int
		wantMinutes int
	}{
		{1, 1},
		{2, 2},
		{3, 4},
		{0, 1},
	}

	for _, tc := range testCases {
		next := domain.CalculateNextRetryTime(tc.attempts)
		delta := time.Until(next)
		want := time.Duration(tc.wantMinutes) * time.Minute
		assert.InDelta(t, want.Seconds(), delta.Seconds(), 5)
	}
}
