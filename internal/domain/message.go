package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination mocks/mock_message_repository.go -package mocks github.com/converso/converso/internal/domain MessageRepository

// MessageDirection is IN for contact-sent, OUT for agent-sent
type MessageDirection string

const (
	MessageDirectionIn  MessageDirection = "IN"
	MessageDirectionOut MessageDirection = "OUT"
)

// Message is append-only, never mutated after creation. OrgID is
// denormalized for query speed and must always equal the owning
// conversation's org; repositories copy it at write time.
type Message struct {
	ID             string           `json:"id"`
	OrgID          string           `json:"org_id"`
	ConversationID string           `json:"conversation_id"`
	Direction      MessageDirection `json:"direction"`
	Text           string           `json:"text"`
	SentAt         time.Time        `json:"sent_at"`
	CreatedAt      time.Time        `json:"created_at"`
}

// MessageRepository defines data access for messages
type MessageRepository interface {
	Create(ctx context.Context, message *Message) error
	CountByConversation(ctx context.Context, conversationID string) (int, error)
	ListByConversation(ctx context.Context, orgID, conversationID string) ([]*Message, error)

	// ListRecentByConversation returns up to limit messages, newest first
	ListRecentByConversation(ctx context.Context, conversationID string, limit int) ([]*Message, error)
}
