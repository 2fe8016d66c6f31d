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

// MessageRepository implements domain.MessageRepository
type MessageRepository struct {
	db *sql.DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *sql.DB) domain.MessageRepository {
	return &MessageRepository{db: db}
}

// Create inserts a message
func (r *MessageRepository) Create(ctx context.Context, message *domain.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	message.CreatedAt = time.Now().UTC()
	if message.SentAt.IsZero() {
		message.SentAt = message.CreatedAt
	}

	query, args, err := psql.
		Insert("messages").
		Columns("id", "org_id", "conversation_id", "direction", "text", "sent_at", "created_at").
		Values(message.ID, message.OrgID, message.ConversationID, string(message.Direction),
			message.Text, message.SentAt, message.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

// CountByConversation counts the conversation's messages
func (r *MessageRepository) CountByConversation(ctx context.Context, conversationID string) (int, error) {
	query, args, err := psql.
		Select("COUNT(*)").
		From("messages").
		Where(sq.Eq{"conversation_id": conversationID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}
	return count, nil
}

// ListByConversation returns the conversation's messages, oldest first
func (r *MessageRepository) ListByConversation(ctx context.Context, orgID, conversationID string) ([]*domain.Message, error) {
	query, args, err := psql.
		Select("id", "org_id", "conversation_id", "direction", "text", "sent_at", "created_at").
		From("messages").
		Where(sq.Eq{"conversation_id": conversationID, "org_id": orgID}).
		OrderBy("sent_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	return scanMessages(rows)
}

// ListRecentByConversation returns up to limit messages, newest first
func (r *MessageRepository) ListRecentByConversation(ctx context.Context, conversationID string, limit int) ([]*domain.Message, error) {
	query, args, err := psql.
		Select("id", "org_id", "conversation_id", "direction", "text", "sent_at", "created_at").
		From("messages").
		Where(sq.Eq{"conversation_id": conversationID}).
		OrderBy("sent_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	return scanMessages(rows)
}

func scanMessages(rows *sql.Rows) ([]*domain.Message, error) {
	var messages []*domain.Message
	for rows.Next() {
		message := &domain.Message{}
		var direction string
		err := rows.Scan(&message.ID, &message.OrgID, &message.ConversationID,
			&direction, &message.Text, &message.SentAt, &message.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		message.Direction = domain.MessageDirection(direction)
		messages = append(messages, message)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return messages, nil
}
