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

// FollowupRepository implements domain.FollowupRepository
type FollowupRepository struct {
	db *sql.DB
}

// NewFollowupRepository creates a new FollowupRepository
func NewFollowupRepository(db *sql.DB) domain.FollowupRepository {
	return &FollowupRepository{db: db}
}

// Create inserts a follow-up
func (r *FollowupRepository) Create(ctx context.Context, followup *domain.Followup) error {
	if followup.ID == "" {
		followup.ID = uuid.New().String()
	}
	followup.CreatedAt = time.Now().UTC()

	query, args, err := psql.
		Insert("followups").
		Columns("id", "lead_id", "due_at", "done_at", "created_at").
		Values(followup.ID, followup.LeadID, followup.DueAt, followup.DoneAt, followup.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create followup: %w", err)
	}
	return nil
}

// ListOverdue returns the org's overdue follow-ups, earliest due first
func (r *FollowupRepository) ListOverdue(ctx context.Context, orgID string) ([]*domain.OverdueFollowup, error) {
	query, args, err := psql.
		Select("f.id", "f.lead_id", "f.due_at", "f.done_at", "f.created_at", "l.title", "l.org_id").
		From("followups f").
		Join("leads l ON l.id = f.lead_id").
		Where(sq.Eq{"l.org_id": orgID, "f.done_at": nil}).
		Where(sq.Lt{"f.due_at": time.Now().UTC()}).
		OrderBy("f.due_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue followups: %w", err)
	}
	defer rows.Close()

	var followups []*domain.OverdueFollowup
	for rows.Next() {
		f := &domain.OverdueFollowup{}
		err := rows.Scan(&f.ID, &f.LeadID, &f.DueAt, &f.DoneAt, &f.CreatedAt, &f.LeadTitle, &f.OrgID)
		if err != nil {
			return nil, fmt.Errorf("failed to scan followup: %w", err)
		}
		followups = append(followups, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return followups, nil
}

// MarkDone soft-completes a follow-up. The org scope rides on the join
// to leads so a tenant cannot complete another tenant's reminder.
func (r *FollowupRepository) MarkDone(ctx context.Context, orgID, id string) error {
	query := `
		UPDATE followups f SET done_at = $1
		FROM leads l
		WHERE f.id = $2 AND f.lead_id = l.id AND l.org_id = $3 AND f.done_at IS NULL
	`
	result, err := r.db.ExecContext(ctx, query, time.Now().UTC(), id, orgID)
	if err != nil {
		return fmt.Errorf("failed to mark followup done: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return &domain.ErrNotFound{Entity: "followup", ID: id}
	}
	return nil
}

// FollowupDraftRepository implements domain.FollowupDraftRepository
type FollowupDraftRepository struct {
	db *sql.DB
}

// NewFollowupDraftRepository creates a new FollowupDraftRepository
func NewFollowupDraftRepository(db *sql.DB) domain.FollowupDraftRepository {
	return &FollowupDraftRepository{db: db}
}

// Create inserts a draft. The partial unique index on open drafts turns
// a concurrent double-create into *ErrAlreadyExists.
func (r *FollowupDraftRepository) Create(ctx context.Context, draft *domain.FollowupDraft) error {
	if draft.ID == "" {
		draft.ID = uuid.New().String()
	}
	draft.CreatedAt = time.Now().UTC()

	query, args, err := psql.
		Insert("followup_drafts").
		Columns("id", "lead_id", "text", "sent_at", "created_at").
		Values(draft.ID, draft.LeadID, draft.Text, draft.SentAt, draft.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return &domain.ErrAlreadyExists{Entity: "followup_draft", Key: draft.LeadID}
		}
		return fmt.Errorf("failed to create followup draft: %w", err)
	}
	return nil
}

// GetOpenByLead returns the lead's open draft, or nil when none
func (r *FollowupDraftRepository) GetOpenByLead(ctx context.Context, leadID string) (*domain.FollowupDraft, error) {
	query, args, err := psql.
		Select("id", "lead_id", "text", "sent_at", "created_at").
		From("followup_drafts").
		Where(sq.Eq{"lead_id": leadID, "sent_at": nil}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	draft := &domain.FollowupDraft{}
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&draft.ID, &draft.LeadID, &draft.Text, &draft.SentAt, &draft.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get followup draft: %w", err)
	}
	return draft, nil
}
