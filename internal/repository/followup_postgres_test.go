package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/converso/converso/internal/domain"
)

func TestFollowupRepository_ListOverdue(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewFollowupRepository(db)

	due := time.Now().UTC().Add(-2 * time.Hour)
	rows := sqlmock.NewRows([]string{
		"id", "lead_id", "due_at", "done_at", "created_at", "title", "org_id",
	}).AddRow("fu-1", "lead-1", due, nil, due.Add(-time.Hour), "Kitchen reno", "org-1")

	mock.ExpectQuery(`SELECT .+ FROM followups f JOIN leads l`).
		WillReturnRows(rows)

	followups, err := repo.ListOverdue(context.Background(), "org-1")
	require.NoError(t, err)
	require.Len(t, followups, 1)
	assert.Equal(t, "fu-1", followups[0].ID)
	assert.Equal(t, "Kitchen reno", followups[0].LeadTitle)
	assert.True(t, followups[0].IsOverdue(time.Now().UTC()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFollowupRepository_MarkDone(t *testing.T) {
	t.Run("completes followup", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewFollowupRepository(db)

		mock.ExpectExec(`UPDATE followups f SET done_at`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.MarkDone(context.Background(), "org-1", "fu-1")
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found across org boundary", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewFollowupRepository(db)

		mock.ExpectExec(`UPDATE followups f SET done_at`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err = repo.MarkDone(context.Background(), "other-org", "fu-1")
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFollowupDraftRepository_Create(t *testing.T) {
	t.Run("inserts draft", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewFollowupDraftRepository(db)

		mock.ExpectExec(`INSERT INTO followup_drafts`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		draft := &domain.FollowupDraft{LeadID: "lead-1", Text: "Hi, following up"}
		err = repo.Create(context.Background(), draft)
		require.NoError(t, err)
		assert.NotEmpty(t, draft.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("translates open draft conflict", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewFollowupDraftRepository(db)

		mock.ExpectExec(`INSERT INTO followup_drafts`).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "idx_followup_drafts_open"})

		draft := &domain.FollowupDraft{LeadID: "lead-1", Text: "duplicate"}
		err = repo.Create(context.Background(), draft)
		require.Error(t, err)
		assert.True(t, domain.IsAlreadyExists(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFollowupDraftRepository_GetOpenByLead(t *testing.T) {
	t.Run("returns nil when no open draft", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewFollowupDraftRepository(db)

		mock.ExpectQuery(`SELECT .+ FROM followup_drafts`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "lead_id", "text", "sent_at", "created_at"}))

		draft, err := repo.GetOpenByLead(context.Background(), "lead-1")
		require.NoError(t, err)
		assert.Nil(t, draft)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
