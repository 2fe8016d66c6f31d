package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/converso/converso/internal/domain"
)

// ContactRepository implements domain.ContactRepository
type ContactRepository struct {
	db *sql.DB
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db *sql.DB) domain.ContactRepository {
	return &ContactRepository{db: db}
}

// Upsert returns the contact for (org, handle), creating it if absent.
// ON CONFLICT DO NOTHING plus a re-read keeps the operation race-free
// under concurrent jobs for the same new handle.
func (r *ContactRepository) Upsert(ctx context.Context, orgID, handle string) (*domain.Contact, error) {
	query, args, err := psql.
		Insert("contacts").
		Columns("id", "org_id", "handle", "name", "created_at").
		Values(uuid.New().String(), orgID, handle, "", time.Now().UTC()).
		Suffix("ON CONFLICT (org_id, handle) DO NOTHING").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("failed to upsert contact: %w", err)
	}

	return r.getByHandle(ctx, orgID, handle)
}

func (r *ContactRepository) getByHandle(ctx context.Context, orgID, handle string) (*domain.Contact, error) {
	query, args, err := psql.
		Select("id", "org_id", "handle", "name", "created_at").
		From("contacts").
		Where(sq.Eq{"org_id": orgID, "handle": handle}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	contact := &domain.Contact{}
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&contact.ID, &contact.OrgID, &contact.Handle, &contact.Name, &contact.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "contact", ID: handle}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	return contact, nil
}

// Create inserts a contact
func (r *ContactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	if contact.ID == "" {
		contact.ID = uuid.New().String()
	}
	contact.CreatedAt = time.Now().UTC()

	query, args, err := psql.
		Insert("contacts").
		Columns("id", "org_id", "handle", "name", "created_at").
		Values(contact.ID, contact.OrgID, contact.Handle, contact.Name, contact.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return &domain.ErrAlreadyExists{Entity: "contact", Key: contact.Handle}
		}
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}

// GetByID retrieves a contact scoped to an org
func (r *ContactRepository) GetByID(ctx context.Context, orgID, id string) (*domain.Contact, error) {
	query, args, err := psql.
		Select("id", "org_id", "handle", "name", "created_at").
		From("contacts").
		Where(sq.Eq{"id": id, "org_id": orgID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	contact := &domain.Contact{}
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&contact.ID, &contact.OrgID, &contact.Handle, &contact.Name, &contact.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "contact", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	return contact, nil
}

// List returns the org's contacts, newest first
func (r *ContactRepository) List(ctx context.Context, orgID string) ([]*domain.Contact, error) {
	query, args, err := psql.
		Select("id", "org_id", "handle", "name", "created_at").
		From("contacts").
		Where(sq.Eq{"org_id": orgID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []*domain.Contact
	for rows.Next() {
		contact := &domain.Contact{}
		if err := rows.Scan(&contact.ID, &contact.OrgID, &contact.Handle, &contact.Name, &contact.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return contacts, nil
}

// Update updates contact fields
func (r *ContactRepository) Update(ctx context.Context, contact *domain.Contact) error {
	query, args, err := psql.
		Update("contacts").
		Set("handle", contact.Handle).
		Set("name", contact.Name).
		Where(sq.Eq{"id": contact.ID, "org_id": contact.OrgID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return &domain.ErrNotFound{Entity: "contact", ID: contact.ID}
	}
	return nil
}
