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

// QuoteRepository implements domain.QuoteRepository
type QuoteRepository struct {
	db *sql.DB
}

// NewQuoteRepository creates a new QuoteRepository
func NewQuoteRepository(db *sql.DB) domain.QuoteRepository {
	return &QuoteRepository{db: db}
}

var quoteColumns = []string{
	"id", "lead_id", "status", "total", "public_id", "view_count",
	"last_viewed_at", "inserted_in_chat", "created_at",
}

// Create inserts the quote and its items in one transaction
func (r *QuoteRepository) Create(ctx context.Context, quote *domain.Quote) error {
	if quote.ID == "" {
		quote.ID = uuid.New().String()
	}
	if quote.PublicID == "" {
		quote.PublicID = uuid.New().String()
	}
	if quote.Status == "" {
		quote.Status = domain.QuoteStatusDraft
	}
	quote.CreatedAt = time.Now().UTC()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query, args, err := psql.
		Insert("quotes").
		Columns(quoteColumns...).
		Values(quote.ID, quote.LeadID, string(quote.Status), quote.Total, quote.PublicID,
			quote.ViewCount, quote.LastViewedAt, quote.InsertedInChat, quote.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create quote: %w", err)
	}

	for _, item := range quote.Items {
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		item.QuoteID = quote.ID

		query, args, err := psql.
			Insert("quote_items").
			Columns("id", "quote_id", "description", "qty", "price").
			Values(item.ID, item.QuoteID, item.Description, item.Qty, item.Price).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to create quote item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetByID retrieves a quote with items, scoped to an org via its lead
func (r *QuoteRepository) GetByID(ctx context.Context, orgID, id string) (*domain.Quote, error) {
	columns := make([]string, len(quoteColumns))
	for i, c := range quoteColumns {
		columns[i] = "q." + c
	}

	query, args, err := psql.
		Select(columns...).
		From("quotes q").
		Join("leads l ON l.id = q.lead_id").
		Where(sq.Eq{"q.id": id, "l.org_id": orgID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	quote, err := scanQuote(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "quote", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}

	if err := r.loadItems(ctx, quote); err != nil {
		return nil, err
	}
	return quote, nil
}

// GetByPublicID retrieves a quote by its shareable id. Unauthenticated
// callers use this, so no org scope applies.
func (r *QuoteRepository) GetByPublicID(ctx context.Context, publicID string) (*domain.Quote, error) {
	query, args, err := psql.
		Select(quoteColumns...).
		From("quotes").
		Where(sq.Eq{"public_id": publicID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	quote, err := scanQuote(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "quote", ID: publicID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}

	if err := r.loadItems(ctx, quote); err != nil {
		return nil, err
	}
	return quote, nil
}

// UpdateStatus changes the quote's lifecycle status
func (r *QuoteRepository) UpdateStatus(ctx context.Context, id string, status domain.QuoteStatus) error {
	query, args, err := psql.
		Update("quotes").
		Set("status", string(status)).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update quote status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return &domain.ErrNotFound{Entity: "quote", ID: id}
	}
	return nil
}

// TrackView increments view_count and stamps last_viewed_at
func (r *QuoteRepository) TrackView(ctx context.Context, id string) error {
	query, args, err := psql.
		Update("quotes").
		Set("view_count", sq.Expr("view_count + 1")).
		Set("last_viewed_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to track quote view: %w", err)
	}
	return nil
}

// MarkInsertedInChat records that the quote link was shared in chat
func (r *QuoteRepository) MarkInsertedInChat(ctx context.Context, id string) error {
	query, args, err := psql.
		Update("quotes").
		Set("inserted_in_chat", true).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to mark quote inserted: %w", err)
	}
	return nil
}

// GetAcceptedByLead returns the lead's accepted quote, or nil
func (r *QuoteRepository) GetAcceptedByLead(ctx context.Context, leadID string) (*domain.Quote, error) {
	query, args, err := psql.
		Select(quoteColumns...).
		From("quotes").
		Where(sq.Eq{"lead_id": leadID, "status": string(domain.QuoteStatusAccepted)}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	quote, err := scanQuote(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get accepted quote: %w", err)
	}
	return quote, nil
}

// ListUnopened returns outstanding quotes created at or after since that
// were never viewed or last viewed before since, newest first
func (r *QuoteRepository) ListUnopened(ctx context.Context, orgID string, since time.Time, limit int) ([]*domain.UnopenedQuote, error) {
	columns := make([]string, 0, len(quoteColumns)+1)
	for _, c := range quoteColumns {
		columns = append(columns, "q."+c)
	}
	columns = append(columns, "l.title")

	query, args, err := psql.
		Select(columns...).
		From("quotes q").
		Join("leads l ON l.id = q.lead_id").
		Where(sq.Eq{"l.org_id": orgID}).
		Where(sq.Eq{"q.status": []string{string(domain.QuoteStatusDraft), string(domain.QuoteStatusSent)}}).
		Where(sq.GtOrEq{"q.created_at": since}).
		Where(sq.Or{
			sq.Eq{"q.last_viewed_at": nil},
			sq.Lt{"q.last_viewed_at": since},
		}).
		OrderBy("q.created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list unopened quotes: %w", err)
	}
	defer rows.Close()

	var quotes []*domain.UnopenedQuote
	for rows.Next() {
		q := &domain.UnopenedQuote{}
		var status string
		err := rows.Scan(&q.ID, &q.LeadID, &status, &q.Total, &q.PublicID,
			&q.ViewCount, &q.LastViewedAt, &q.InsertedInChat, &q.CreatedAt, &q.LeadTitle)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quote: %w", err)
		}
		q.Status = domain.QuoteStatus(status)
		quotes = append(quotes, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return quotes, nil
}

func (r *QuoteRepository) loadItems(ctx context.Context, quote *domain.Quote) error {
	query, args, err := psql.
		Select("id", "quote_id", "description", "qty", "price").
		From("quote_items").
		Where(sq.Eq{"quote_id": quote.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to list quote items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		item := &domain.QuoteItem{}
		if err := rows.Scan(&item.ID, &item.QuoteID, &item.Description, &item.Qty, &item.Price); err != nil {
			return fmt.Errorf("failed to scan quote item: %w", err)
		}
		quote.Items = append(quote.Items, item)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating rows: %w", err)
	}
	return nil
}

func scanQuote(row rowScanner) (*domain.Quote, error) {
	quote := &domain.Quote{}
	var status string
	err := row.Scan(&quote.ID, &quote.LeadID, &status, &quote.Total, &quote.PublicID,
		&quote.ViewCount, &quote.LastViewedAt, &quote.InsertedInChat, &quote.CreatedAt)
	if err != nil {
		return nil, err
	}
	quote.Status = domain.QuoteStatus(status)
	return quote, nil
}
