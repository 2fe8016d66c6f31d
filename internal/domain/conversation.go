package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination mocks/mock_conversation_repository.go -package mocks github.com/converso/converso/internal/domain ConversationRepository

// Conversation is the message history with a contact. Lookup is "most
// recent conversation for this contact", created lazily on first message.
type Conversation struct {
	ID            string    `json:"id"`
	OrgID         string    `json:"org_id"`
	ContactID     string    `json:"contact_id"`
	LastMessageAt time.Time `json:"last_message_at"`
	CreatedAt     time.Time `json:"created_at"`
}

// ConversationWithContact is a list projection for the inbox view
type ConversationWithContact struct {
	Conversation
	Contact Contact `json:"contact"`
}

// ConversationRepository defines data access for conversations
type ConversationRepository interface {
	Create(ctx context.Context, conversation *Conversation) error
	GetByID(ctx context.Context, orgID, id string) (*Conversation, error)

	// FindLatestByContact returns the most-recently-active conversation for
	// a contact, or nil when the contact has none yet. Two concurrent jobs
	// for the same new contact can both see nil here; the resulting
	// duplicate conversation is a documented, tolerated race.
	FindLatestByContact(ctx context.Context, orgID, contactID string) (*Conversation, error)

	List(ctx context.Context, orgID string, limit int) ([]*ConversationWithContact, error)
	UpdateLastMessageAt(ctx context.Context, orgID, id string, lastMessageAt time.Time) error
}
