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

func contactRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "org_id", "handle", "name", "created_at"})
}

func TestContactRepository_Upsert(t *testing.T) {
	t.Run("inserts and re-reads by handle", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewContactRepository(db)

		now := time.Now().UTC()
		mock.ExpectExec(`INSERT INTO contacts`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`SELECT .+ FROM contacts`).
			WithArgs("whatsapp:+15551234567", "org-1").
			WillReturnRows(contactRows().AddRow(
				"contact-1", "org-1", "whatsapp:+15551234567", "", now,
			))

		contact, err := repo.Upsert(context.Background(), "org-1", "whatsapp:+15551234567")
		require.NoError(t, err)
		assert.Equal(t, "contact-1", contact.ID)
		assert.Equal(t, "whatsapp:+15551234567", contact.Handle)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns existing contact when conflict skips insert", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewContactRepository(db)

		now := time.Now().UTC()
		mock.ExpectExec(`INSERT INTO contacts`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT .+ FROM contacts`).
			WithArgs("whatsapp:+15551234567", "org-1").
			WillReturnRows(contactRows().AddRow(
				"contact-1", "org-1", "whatsapp:+15551234567", "Maya", now,
			))

		contact, err := repo.Upsert(context.Background(), "org-1", "whatsapp:+15551234567")
		require.NoError(t, err)
		assert.Equal(t, "Maya", contact.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestContactRepository_GetByID(t *testing.T) {
	t.Run("returns contact scoped to org", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewContactRepository(db)

		now := time.Now().UTC()
		mock.ExpectQuery(`SELECT .+ FROM contacts`).
			WithArgs("contact-1", "org-1").
			WillReturnRows(contactRows().AddRow(
				"contact-1", "org-1", "whatsapp:+15551234567", "Maya", now,
			))

		contact, err := repo.GetByID(context.Background(), "org-1", "contact-1")
		require.NoError(t, err)
		assert.Equal(t, "Maya", contact.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewContactRepository(db)

		mock.ExpectQuery(`SELECT .+ FROM contacts`).
			WithArgs("missing", "org-1").
			WillReturnRows(contactRows())

		_, err = repo.GetByID(context.Background(), "org-1", "missing")
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestContactRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewContactRepository(db)

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT .+ FROM contacts`).
		WithArgs("org-1").
		WillReturnRows(contactRows().
			AddRow("contact-2", "org-1", "whatsapp:+15550002222", "Ben", now).
			AddRow("contact-1", "org-1", "whatsapp:+15550001111", "Maya", now.Add(-time.Hour)))

	contacts, err := repo.List(context.Background(), "org-1")
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, "contact-2", contacts[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_Update_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewContactRepository(db)

	mock.ExpectExec(`UPDATE contacts`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Update(context.Background(), &domain.Contact{ID: "missing", OrgID: "org-1"})
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
