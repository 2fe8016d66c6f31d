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

func TestLeadRepository_Create(t *testing.T) {
	t.Run("inserts lead with defaults", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewLeadRepository(db)

		mock.ExpectExec(`INSERT INTO leads`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		lead := &domain.Lead{
			OrgID:          "org-1",
			ConversationID: "conv-1",
			Title:          "WhatsApp lead",
		}
		err = repo.Create(context.Background(), lead)
		require.NoError(t, err)
		assert.NotEmpty(t, lead.ID)
		assert.Equal(t, domain.LeadStageNew, lead.Stage)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("translates unique violation on conversation", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewLeadRepository(db)

		mock.ExpectExec(`INSERT INTO leads`).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "idx_leads_conversation"})

		lead := &domain.Lead{OrgID: "org-1", ConversationID: "conv-1", Title: "dup"}
		err = repo.Create(context.Background(), lead)
		require.Error(t, err)
		assert.True(t, domain.IsAlreadyExists(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLeadRepository_GetByConversation(t *testing.T) {
	leadRows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{
			"id", "org_id", "contact_id", "conversation_id", "title", "stage",
			"auto_captured", "tags", "last_message_at", "last_replied_at",
			"price_resistance", "created_at",
		})
	}

	t.Run("returns lead when found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewLeadRepository(db)

		now := time.Now().UTC()
		mock.ExpectQuery(`SELECT .+ FROM leads`).
			WithArgs("conv-1", "org-1").
			WillReturnRows(leadRows().AddRow(
				"lead-1", "org-1", "contact-1", "conv-1", "WhatsApp lead", "NEW",
				true, "{auto_captured}", nil, nil, false, now,
			))

		lead, err := repo.GetByConversation(context.Background(), "org-1", "conv-1")
		require.NoError(t, err)
		require.NotNil(t, lead)
		assert.Equal(t, "lead-1", lead.ID)
		assert.Equal(t, domain.LeadStageNew, lead.Stage)
		assert.Equal(t, []string{domain.TagAutoCaptured}, lead.Tags)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns nil when conversation has no lead", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewLeadRepository(db)

		mock.ExpectQuery(`SELECT .+ FROM leads`).
			WithArgs("conv-2", "org-1").
			WillReturnRows(leadRows())

		lead, err := repo.GetByConversation(context.Background(), "org-1", "conv-2")
		require.NoError(t, err)
		assert.Nil(t, lead)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLeadRepository_UpdateStage(t *testing.T) {
	t.Run("updates matching lead", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewLeadRepository(db)

		mock.ExpectExec(`UPDATE leads SET stage`).
			WithArgs("WON", "lead-1", "org-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.UpdateStage(context.Background(), "org-1", "lead-1", domain.LeadStageWon)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found for unknown lead", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewLeadRepository(db)

		mock.ExpectExec(`UPDATE leads SET stage`).
			WithArgs("LOST", "missing", "org-1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err = repo.UpdateStage(context.Background(), "org-1", "missing", domain.LeadStageLost)
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLeadRepository_MarkPriceResistance(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewLeadRepository(db)

	mock.ExpectExec(`UPDATE leads SET price_resistance = .+, tags = array_append`).
		WithArgs(true, domain.TagPriceResistance, "lead-1", "org-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.MarkPriceResistance(context.Background(), "org-1", "lead-1")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
