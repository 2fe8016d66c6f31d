package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination mocks/mock_lead_repository.go -package mocks github.com/converso/converso/internal/domain LeadRepository

// LeadStage is the pipeline position of a lead
type LeadStage string

const (
	LeadStageNew       LeadStage = "NEW"
	LeadStageContacted LeadStage = "CONTACTED"
	LeadStageQuoted    LeadStage = "QUOTED"
	LeadStageWon       LeadStage = "WON"
	LeadStageLost      LeadStage = "LOST"
)

// IsValid reports whether the stage is one of the known pipeline stages
func (s LeadStage) IsValid() bool {
	switch s {
	case LeadStageNew, LeadStageContacted, LeadStageQuoted, LeadStageWon, LeadStageLost:
		return true
	}
	return false
}

// Well-known lead tags set by the automation engine
const (
	TagAutoCaptured    = "auto_captured"
	TagPriceResistance = "price_resistance"
)

// Lead is a tracked sales opportunity. At most one lead per conversation;
// the schema enforces this with a unique index on conversation_id.
type Lead struct {
	ID              string     `json:"id"`
	OrgID           string     `json:"org_id"`
	ContactID       string     `json:"contact_id,omitempty"`
	ConversationID  string     `json:"conversation_id,omitempty"`
	Title           string     `json:"title"`
	Stage           LeadStage  `json:"stage"`
	AutoCaptured    bool       `json:"auto_captured"`
	Tags            []string   `json:"tags"`
	LastMessageAt   *time.Time `json:"last_message_at,omitempty"`
	LastRepliedAt   *time.Time `json:"last_replied_at,omitempty"`
	PriceResistance bool       `json:"price_resistance"`
	CreatedAt       time.Time  `json:"created_at"`
}

// LeadWithContact joins the contact for list views and draft templating
type LeadWithContact struct {
	Lead
	ContactName   string `json:"contact_name,omitempty"`
	ContactHandle string `json:"contact_handle,omitempty"`
}

// HighValueLead carries the qualifying quote total for ranking subtitles
type HighValueLead struct {
	Lead
	QuoteTotal float64 `json:"quote_total"`
}

// LeadFilter narrows lead list queries
type LeadFilter struct {
	Stage  LeadStage
	Search string
}

// CreateLeadRequest creates a lead by explicit user action
type CreateLeadRequest struct {
	Title          string   `json:"title"`
	ContactID      string   `json:"contact_id,omitempty"`
	ConversationID string   `json:"conversation_id,omitempty"`
	Tags           []string `json:"tags,omitempty"`
}

func (r *CreateLeadRequest) Validate() error {
	if r.Title == "" {
		return NewValidationError("title is required")
	}
	return nil
}

// UpdateLeadRequest updates lead fields; zero values are left untouched
type UpdateLeadRequest struct {
	ID    string    `json:"id"`
	Title string    `json:"title,omitempty"`
	Stage LeadStage `json:"stage,omitempty"`
	Tags  []string  `json:"tags,omitempty"`
}

func (r *UpdateLeadRequest) Validate() error {
	if r.ID == "" {
		return NewValidationError("id is required")
	}
	if r.Stage != "" && !r.Stage.IsValid() {
		return NewValidationError("invalid stage")
	}
	return nil
}

// LeadRepository defines data access for leads
type LeadRepository interface {
	// Create inserts a lead. Returns *ErrAlreadyExists when the
	// conversation already has one.
	Create(ctx context.Context, lead *Lead) error

	GetByID(ctx context.Context, orgID, id string) (*Lead, error)

	// GetByConversation returns the conversation's lead, or nil when none
	GetByConversation(ctx context.Context, orgID, conversationID string) (*Lead, error)

	List(ctx context.Context, orgID string, filter LeadFilter) ([]*Lead, error)
	Update(ctx context.Context, lead *Lead) error
	UpdateStage(ctx context.Context, orgID, id string, stage LeadStage) error
	UpdateLastRepliedAt(ctx context.Context, orgID, id string, repliedAt time.Time) error

	// MarkPriceResistance sets the flag and appends the price_resistance
	// tag. Duplicate tags are tolerated, not deduplicated.
	MarkPriceResistance(ctx context.Context, orgID, id string) error

	// ListIdle returns open leads (not WON/LOST) whose last_message_at and
	// last_replied_at are both before the cutoff, oldest activity first.
	ListIdle(ctx context.Context, orgID string, before time.Time, limit int) ([]*Lead, error)

	// ListHighValue returns open leads holding a DRAFT or SENT quote with
	// total >= minTotal, newest lead first.
	ListHighValue(ctx context.Context, orgID string, minTotal float64, limit int) ([]*HighValueLead, error)

	// ListPriceResistant returns open price-resistance leads, newest first
	ListPriceResistant(ctx context.Context, orgID string, limit int) ([]*Lead, error)

	// ListByStages returns leads in any of the given stages with contact
	// joined, for the draft sweep.
	ListByStages(ctx context.Context, orgID string, stages []LeadStage) ([]*LeadWithContact, error)

	// ListLostSince returns LOST leads created at or after the cutoff
	ListLostSince(ctx context.Context, orgID string, since time.Time) ([]*LeadWithContact, error)

	// ListInactiveBefore returns non-WON leads with both last_message_at
	// and created_at before the cutoff.
	ListInactiveBefore(ctx context.Context, orgID string, cutoff time.Time) ([]*LeadWithContact, error)
}
