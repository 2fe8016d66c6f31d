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

// ConversationRepository implements domain.ConversationRepository
type ConversationRepository struct {
	db *sql.DB
}

// NewConversationRepository creates a new ConversationRepository
func NewConversationRepository(db *sql.DB) domain.ConversationRepository {
	return &ConversationRepository{db: db}
}

// Create inserts a conversation
func (r *ConversationRepository) Create(ctx context.Context, conversation *domain.Conversation) error {
	now := time.Now().UTC()
	if conversation.ID == "" {
		conversation.ID = uuid.New().String()
	}
	if conversation.LastMessageAt.IsZero() {
		conversation.LastMessageAt = now
	}
	conversation.CreatedAt = now

	query, args, err := psql.
		Insert("conversations").
		Columns("id", "org_id", "contact_id", "last_message_at", "created_at").
		Values(conversation.ID, conversation.OrgID, conversation.ContactID, conversation.LastMessageAt, conversation.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create conversation: %w", err)
	}
	return nil
}

// GetByID retrieves a conversation scoped to an org
func (r *ConversationRepository) GetByID(ctx context.Context, orgID, id string) (*domain.Conversation, error) {
	query, args, err := psql.
		Select("id", "org_id", "contact_id", "last_message_at", "created_at").
		From("conversations").
		Where(sq.Eq{"id": id, "org_id": orgID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	conversation := &domain.Conversation{}
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&conversation.ID, &conversation.OrgID, &conversation.ContactID,
			&conversation.LastMessageAt, &conversation.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "conversation", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	return conversation, nil
}

// FindLatestByContact returns the contact's most recent conversation, or nil
func (r *ConversationRepository) FindLatestByContact(ctx context.Context, orgID, contactID string) (*domain.Conversation, error) {
	query, args, err := psql.
		Select("id", "org_id", "contact_id", "last_message_at", "created_at").
		From("conversations").
		Where(sq.Eq{"org_id": orgID, "contact_id": contactID}).
		OrderBy("last_message_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	conversation := &domain.Conversation{}
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&conversation.ID, &conversation.OrgID, &conversation.ContactID,
			&conversation.LastMessageAt, &conversation.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find conversation: %w", err)
	}
	return conversation, nil
}

// List returns the org's conversations with contact joined, most recently
// active first
func (r *ConversationRepository) List(ctx context.Context, orgID string, limit int) ([]*domain.ConversationWithContact, error) {
	builder := psql.
		Select("cv.id", "cv.org_id", "cv.contact_id", "cv.last_message_at", "cv.created_at",
			"ct.id", "ct.org_id", "ct.handle", "ct.name", "ct.created_at").
		From("conversations cv").
		Join("contacts ct ON ct.id = cv.contact_id").
		Where(sq.Eq{"cv.org_id": orgID}).
		OrderBy("cv.last_message_at DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	defer rows.Close()

	var conversations []*domain.ConversationWithContact
	for rows.Next() {
		cv := &domain.ConversationWithContact{}
		err := rows.Scan(
			&cv.ID, &cv.OrgID, &cv.ContactID, &cv.LastMessageAt, &cv.CreatedAt,
			&cv.Contact.ID, &cv.Contact.OrgID, &cv.Contact.Handle, &cv.Contact.Name, &cv.Contact.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan conversation: %w", err)
		}
		conversations = append(conversations, cv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return conversations, nil
}

// UpdateLastMessageAt advances the conversation's activity timestamp
func (r *ConversationRepository) UpdateLastMessageAt(ctx context.Context, orgID, id string, lastMessageAt time.Time) error {
	query, args, err := psql.
		Update("conversations").
		Set("last_message_at", lastMessageAt).
		Where(sq.Eq{"id": id, "org_id": orgID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update conversation: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return &domain.ErrNotFound{Entity: "conversation", ID: id}
	}
	return nil
}
