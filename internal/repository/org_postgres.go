package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/converso/converso/internal/domain"
)

// OrgRepository implements domain.OrgRepository
type OrgRepository struct {
	db *sql.DB
}

// NewOrgRepository creates a new OrgRepository
func NewOrgRepository(db *sql.DB) domain.OrgRepository {
	return &OrgRepository{db: db}
}

// GetByID retrieves an org
func (r *OrgRepository) GetByID(ctx context.Context, id string) (*domain.Org, error) {
	query, args, err := psql.
		Select("id", "name", "owner_email", "created_at").
		From("orgs").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	org := &domain.Org{}
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&org.ID, &org.Name, &org.OwnerEmail, &org.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "org", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get org: %w", err)
	}
	return org, nil
}

// List returns all orgs. Used by the sweeper to iterate tenants.
func (r *OrgRepository) List(ctx context.Context) ([]*domain.Org, error) {
	query, args, err := psql.
		Select("id", "name", "owner_email", "created_at").
		From("orgs").
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list orgs: %w", err)
	}
	defer rows.Close()

	var orgs []*domain.Org
	for rows.Next() {
		org := &domain.Org{}
		if err := rows.Scan(&org.ID, &org.Name, &org.OwnerEmail, &org.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan org: %w", err)
		}
		orgs = append(orgs, org)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return orgs, nil
}

// Update updates org fields
func (r *OrgRepository) Update(ctx context.Context, org *domain.Org) error {
	query, args, err := psql.
		Update("orgs").
		Set("name", org.Name).
		Set("owner_email", org.OwnerEmail).
		Where(sq.Eq{"id": org.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update org: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return &domain.ErrNotFound{Entity: "org", ID: org.ID}
	}
	return nil
}
