package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/converso/converso/internal/domain"
)

// LeadRepository implements domain.LeadRepository
type LeadRepository struct {
	db *sql.DB
}

// NewLeadRepository creates a new LeadRepository
func NewLeadRepository(db *sql.DB) domain.LeadRepository {
	return &LeadRepository{db: db}
}

var leadColumns = []string{
	"id", "org_id", "contact_id", "conversation_id", "title", "stage",
	"auto_captured", "tags", "last_message_at", "last_replied_at",
	"price_resistance", "created_at",
}

// Create inserts a lead. The unique index on conversation_id turns a
// concurrent double-capture into *ErrAlreadyExists.
func (r *LeadRepository) Create(ctx context.Context, lead *domain.Lead) error {
	if lead.ID == "" {
		lead.ID = uuid.New().String()
	}
	if lead.Stage == "" {
		lead.Stage = domain.LeadStageNew
	}
	if lead.Tags == nil {
		lead.Tags = []string{}
	}
	lead.CreatedAt = time.Now().UTC()

	query, args, err := psql.
		Insert("leads").
		Columns(leadColumns...).
		Values(lead.ID, lead.OrgID, nullableString(lead.ContactID), nullableString(lead.ConversationID),
			lead.Title, string(lead.Stage), lead.AutoCaptured, pq.Array(lead.Tags),
			lead.LastMessageAt, lead.LastRepliedAt, lead.PriceResistance, lead.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return &domain.ErrAlreadyExists{Entity: "lead", Key: lead.ConversationID}
		}
		return fmt.Errorf("failed to create lead: %w", err)
	}
	return nil
}

// GetByID retrieves a lead scoped to an org
func (r *LeadRepository) GetByID(ctx context.Context, orgID, id string) (*domain.Lead, error) {
	query, args, err := psql.
		Select(leadColumns...).
		From("leads").
		Where(sq.Eq{"id": id, "org_id": orgID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	lead, err := scanLead(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "lead", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}
	return lead, nil
}

// GetByConversation returns the conversation's lead, or nil when none
func (r *LeadRepository) GetByConversation(ctx context.Context, orgID, conversationID string) (*domain.Lead, error) {
	query, args, err := psql.
		Select(leadColumns...).
		From("leads").
		Where(sq.Eq{"org_id": orgID, "conversation_id": conversationID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	lead, err := scanLead(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}
	return lead, nil
}

// List returns the org's leads, newest first, optionally filtered
func (r *LeadRepository) List(ctx context.Context, orgID string, filter domain.LeadFilter) ([]*domain.Lead, error) {
	builder := psql.
		Select(leadColumns...).
		From("leads").
		Where(sq.Eq{"org_id": orgID}).
		OrderBy("created_at DESC")
	if filter.Stage != "" {
		builder = builder.Where(sq.Eq{"stage": string(filter.Stage)})
	}
	if filter.Search != "" {
		builder = builder.Where(sq.ILike{"title": "%" + filter.Search + "%"})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	defer rows.Close()

	return scanLeads(rows)
}

// Update updates lead fields
func (r *LeadRepository) Update(ctx context.Context, lead *domain.Lead) error {
	query, args, err := psql.
		Update("leads").
		Set("title", lead.Title).
		Set("stage", string(lead.Stage)).
		Set("tags", pq.Array(lead.Tags)).
		Set("price_resistance", lead.PriceResistance).
		Where(sq.Eq{"id": lead.ID, "org_id": lead.OrgID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	return r.execExpectingRow(ctx, query, args, lead.ID)
}

// UpdateStage moves a lead to a new pipeline stage
func (r *LeadRepository) UpdateStage(ctx context.Context, orgID, id string, stage domain.LeadStage) error {
	query, args, err := psql.
		Update("leads").
		Set("stage", string(stage)).
		Where(sq.Eq{"id": id, "org_id": orgID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	return r.execExpectingRow(ctx, query, args, id)
}

// UpdateLastRepliedAt stamps when the contact last wrote on this lead
func (r *LeadRepository) UpdateLastRepliedAt(ctx context.Context, orgID, id string, repliedAt time.Time) error {
	query, args, err := psql.
		Update("leads").
		Set("last_replied_at", repliedAt).
		Set("last_message_at", repliedAt).
		Where(sq.Eq{"id": id, "org_id": orgID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	return r.execExpectingRow(ctx, query, args, id)
}

// MarkPriceResistance sets the flag and appends the tag. Duplicate tags
// are tolerated.
func (r *LeadRepository) MarkPriceResistance(ctx context.Context, orgID, id string) error {
	query, args, err := psql.
		Update("leads").
		Set("price_resistance", true).
		Set("tags", sq.Expr("array_append(tags, ?)", domain.TagPriceResistance)).
		Where(sq.Eq{"id": id, "org_id": orgID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	return r.execExpectingRow(ctx, query, args, id)
}

// ListIdle returns open leads idle since before the cutoff, oldest first
func (r *LeadRepository) ListIdle(ctx context.Context, orgID string, before time.Time, limit int) ([]*domain.Lead, error) {
	query, args, err := psql.
		Select(leadColumns...).
		From("leads").
		Where(sq.Eq{"org_id": orgID}).
		Where(sq.NotEq{"stage": []string{string(domain.LeadStageWon), string(domain.LeadStageLost)}}).
		Where(sq.Lt{"last_message_at": before}).
		Where(sq.Lt{"last_replied_at": before}).
		OrderBy("last_message_at ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list idle leads: %w", err)
	}
	defer rows.Close()

	return scanLeads(rows)
}

// ListHighValue returns open leads holding an outstanding quote with
// total >= minTotal, newest lead first
func (r *LeadRepository) ListHighValue(ctx context.Context, orgID string, minTotal float64, limit int) ([]*domain.HighValueLead, error) {
	columns := make([]string, 0, len(leadColumns)+1)
	for _, c := range leadColumns {
		columns = append(columns, "l."+c)
	}
	columns = append(columns, "MAX(q.total) AS quote_total")

	query, args, err := psql.
		Select(columns...).
		From("leads l").
		Join("quotes q ON q.lead_id = l.id").
		Where(sq.Eq{"l.org_id": orgID}).
		Where(sq.NotEq{"l.stage": []string{string(domain.LeadStageWon), string(domain.LeadStageLost)}}).
		Where(sq.Eq{"q.status": []string{string(domain.QuoteStatusDraft), string(domain.QuoteStatusSent)}}).
		Where(sq.GtOrEq{"q.total": minTotal}).
		GroupBy("l.id").
		OrderBy("l.created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list high value leads: %w", err)
	}
	defer rows.Close()

	var leads []*domain.HighValueLead
	for rows.Next() {
		lead := &domain.HighValueLead{}
		if err := scanLeadFields(rows, &lead.Lead, &lead.QuoteTotal); err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		leads = append(leads, lead)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return leads, nil
}

// ListPriceResistant returns open price-resistance leads, newest first
func (r *LeadRepository) ListPriceResistant(ctx context.Context, orgID string, limit int) ([]*domain.Lead, error) {
	query, args, err := psql.
		Select(leadColumns...).
		From("leads").
		Where(sq.Eq{"org_id": orgID, "price_resistance": true}).
		Where(sq.NotEq{"stage": []string{string(domain.LeadStageWon), string(domain.LeadStageLost)}}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list price resistant leads: %w", err)
	}
	defer rows.Close()

	return scanLeads(rows)
}

// ListByStages returns leads in the given stages with contact joined
func (r *LeadRepository) ListByStages(ctx context.Context, orgID string, stages []domain.LeadStage) ([]*domain.LeadWithContact, error) {
	stageStrings := make([]string, len(stages))
	for i, s := range stages {
		stageStrings[i] = string(s)
	}

	builder := r.withContactBuilder().
		Where(sq.Eq{"l.org_id": orgID, "l.stage": stageStrings}).
		OrderBy("l.created_at DESC")

	return r.queryWithContact(ctx, builder)
}

// ListLostSince returns LOST leads created at or after the cutoff
func (r *LeadRepository) ListLostSince(ctx context.Context, orgID string, since time.Time) ([]*domain.LeadWithContact, error) {
	builder := r.withContactBuilder().
		Where(sq.Eq{"l.org_id": orgID, "l.stage": string(domain.LeadStageLost)}).
		Where(sq.GtOrEq{"l.created_at": since}).
		OrderBy("l.created_at DESC")

	return r.queryWithContact(ctx, builder)
}

// ListInactiveBefore returns non-WON leads whose activity and creation
// both predate the cutoff
func (r *LeadRepository) ListInactiveBefore(ctx context.Context, orgID string, cutoff time.Time) ([]*domain.LeadWithContact, error) {
	builder := r.withContactBuilder().
		Where(sq.Eq{"l.org_id": orgID}).
		Where(sq.NotEq{"l.stage": string(domain.LeadStageWon)}).
		Where(sq.Or{
			sq.Lt{"l.last_message_at": cutoff},
			sq.Eq{"l.last_message_at": nil},
		}).
		Where(sq.Lt{"l.created_at": cutoff}).
		OrderBy("l.created_at DESC")

	return r.queryWithContact(ctx, builder)
}

func (r *LeadRepository) withContactBuilder() sq.SelectBuilder {
	columns := make([]string, 0, len(leadColumns)+2)
	for _, c := range leadColumns {
		columns = append(columns, "l."+c)
	}
	columns = append(columns, "COALESCE(c.name, '')", "COALESCE(c.handle, '')")

	return psql.
		Select(columns...).
		From("leads l").
		LeftJoin("contacts c ON c.id = l.contact_id")
}

func (r *LeadRepository) queryWithContact(ctx context.Context, builder sq.SelectBuilder) ([]*domain.LeadWithContact, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	defer rows.Close()

	var leads []*domain.LeadWithContact
	for rows.Next() {
		lead := &domain.LeadWithContact{}
		if err := scanLeadFields(rows, &lead.Lead, &lead.ContactName, &lead.ContactHandle); err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		leads = append(leads, lead)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return leads, nil
}

func (r *LeadRepository) execExpectingRow(ctx context.Context, query string, args []interface{}, id string) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update lead: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return &domain.ErrNotFound{Entity: "lead", ID: id}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLeadFields(row rowScanner, lead *domain.Lead, extra ...interface{}) error {
	var contactID, conversationID sql.NullString
	var stage string
	dest := []interface{}{
		&lead.ID, &lead.OrgID, &contactID, &conversationID, &lead.Title, &stage,
		&lead.AutoCaptured, pq.Array(&lead.Tags), &lead.LastMessageAt, &lead.LastRepliedAt,
		&lead.PriceResistance, &lead.CreatedAt,
	}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		return err
	}
	lead.ContactID = contactID.String
	lead.ConversationID = conversationID.String
	lead.Stage = domain.LeadStage(stage)
	return nil
}

func scanLead(row rowScanner) (*domain.Lead, error) {
	lead := &domain.Lead{}
	if err := scanLeadFields(row, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

func scanLeads(rows *sql.Rows) ([]*domain.Lead, error) {
	var leads []*domain.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		leads = append(leads, lead)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return leads, nil
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
