package domain

import (
	"context"
)

//go:generate mockgen -destination mocks/mock_messaging_service.go -package mocks github.com/converso/converso/internal/domain MessagingService
//go:generate mockgen -destination mocks/mock_automation_service.go -package mocks github.com/converso/converso/internal/domain AutomationService
//go:generate mockgen -destination mocks/mock_today_queue_service.go -package mocks github.com/converso/converso/internal/domain TodayQueueService
//go:generate mockgen -destination mocks/mock_message_sender.go -package mocks github.com/converso/converso/internal/domain MessageSender

// ConversationDetail is a conversation with its contact and full history
type ConversationDetail struct {
	Conversation
	Contact  Contact    `json:"contact"`
	Messages []*Message `json:"messages"`
}

// MessagingService handles the webhook fast path, the inbox and
// outbound sends
type MessagingService interface {
	// Webhook enqueues the raw payload for async processing and returns
	// immediately; it never waits for downstream work.
	Webhook(ctx context.Context, orgID string, payload []byte) error

	// ResolveOrgFromDestination maps a provider destination address to an
	// org via the chat account registry. Returns "" when unregistered.
	ResolveOrgFromDestination(ctx context.Context, to string) (string, error)

	ListConversations(ctx context.Context, orgID string, limit int) ([]*ConversationWithContact, error)
	GetConversation(ctx context.Context, orgID, id string) (*ConversationDetail, error)

	// Send delivers an outbound message, persists it and runs the
	// stage-transition check. Provider failure surfaces as *ProviderError
	// before anything is persisted.
	Send(ctx context.Context, orgID, conversationID, text string) error
}

// AutomationService applies business rules to message and stage events
type AutomationService interface {
	// CheckAndCaptureLead auto-creates a lead once a conversation crosses
	// the message threshold. Returns nil when no lead was created.
	CheckAndCaptureLead(ctx context.Context, orgID, conversationID string) (*Lead, error)

	// CheckAndUpdateStage scans text for win/loss signals and moves the
	// lead; a WON transition also generates the work order. Returns the
	// new stage, or "" on no-op.
	CheckAndUpdateStage(ctx context.Context, orgID, leadID, text string) (LeadStage, error)

	// CreateFollowupDraftIfNeeded drafts at most one open follow-up for an
	// idle lead. Returns nil when a draft exists or no rule matches.
	CreateFollowupDraftIfNeeded(ctx context.Context, orgID, leadID string) (*FollowupDraft, error)

	// CreateWorkOrderDraft creates the lead's work order, idempotently: an
	// existing one is returned unchanged.
	CreateWorkOrderDraft(ctx context.Context, orgID, leadID string) (*WorkOrder, error)

	// GetDeadLeadsForRevival returns recently lost and long-inactive leads
	GetDeadLeadsForRevival(ctx context.Context, orgID string) ([]*LeadWithContact, error)

	// CreateRevivalDraft drafts a revival message, idempotently per lead
	CreateRevivalDraft(ctx context.Context, orgID, leadID string) (*FollowupDraft, error)
}

// TodayQueueService produces the ranked next-best-action list
type TodayQueueService interface {
	GenerateTodayQueue(ctx context.Context, orgID string) ([]*TodayQueueItem, error)
}

// LeadService is CRUD orchestration over leads
type LeadService interface {
	List(ctx context.Context, orgID string, filter LeadFilter) ([]*Lead, error)
	Get(ctx context.Context, orgID, id string) (*Lead, error)
	Create(ctx context.Context, orgID string, req *CreateLeadRequest) (*Lead, error)
	Update(ctx context.Context, orgID string, req *UpdateLeadRequest) (*Lead, error)
}

// QuoteService is CRUD orchestration over quotes
type QuoteService interface {
	// Create validates items, computes the total, moves the lead to
	// QUOTED and best-effort inserts the public link into the chat.
	Create(ctx context.Context, orgID string, req *CreateQuoteRequest) (*Quote, error)

	Get(ctx context.Context, orgID, id string) (*Quote, error)
	UpdateStatus(ctx context.Context, orgID string, req *UpdateQuoteStatusRequest) (*Quote, error)

	// PublicGet serves the unauthenticated public quote page and tracks
	// the view.
	PublicGet(ctx context.Context, publicID string) (*Quote, error)
}

// FollowupService is CRUD orchestration over follow-ups
type FollowupService interface {
	Create(ctx context.Context, orgID string, req *CreateFollowupRequest) (*Followup, error)
	ListOverdue(ctx context.Context, orgID string) ([]*OverdueFollowup, error)
	MarkDone(ctx context.Context, orgID, id string) error
}

// ContactService is CRUD orchestration over contacts
type ContactService interface {
	List(ctx context.Context, orgID string) ([]*Contact, error)
	Get(ctx context.Context, orgID, id string) (*Contact, error)
	Create(ctx context.Context, orgID string, req *CreateContactRequest) (*Contact, error)
	Update(ctx context.Context, orgID string, req *UpdateContactRequest) (*Contact, error)
}

// OrgService manages the tenant and its channel accounts
type OrgService interface {
	Get(ctx context.Context, orgID string) (*Org, error)
	Update(ctx context.Context, orgID string, req *UpdateOrgRequest) (*Org, error)
	CreateChatAccount(ctx context.Context, orgID string, req *CreateChatAccountRequest) (*ChatAccount, error)
}

// MessageSender delivers one outbound message through the channel
// provider. Fails with *ProviderError when credentials are unset or the
// provider rejects the send.
type MessageSender interface {
	SendMessage(ctx context.Context, orgID, to, text string) (providerMessageID string, err error)
}
