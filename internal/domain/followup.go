package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination mocks/mock_followup_repository.go -package mocks github.com/converso/converso/internal/domain FollowupRepository
//go:generate mockgen -destination mocks/mock_followup_draft_repository.go -package mocks github.com/converso/converso/internal/domain FollowupDraftRepository

// Followup is a scheduled reminder on a lead. Overdue when dueAt has
// passed and doneAt is unset. Never hard-deleted; doneAt is a soft
// completion.
type Followup struct {
	ID        string     `json:"id"`
	LeadID    string     `json:"lead_id"`
	DueAt     time.Time  `json:"due_at"`
	DoneAt    *time.Time `json:"done_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// IsOverdue reports whether the follow-up is past due and not done
func (f *Followup) IsOverdue(now time.Time) bool {
	return f.DueAt.Before(now) && f.DoneAt == nil
}

// OverdueFollowup joins lead fields needed by the Today Queue and sweeper
type OverdueFollowup struct {
	Followup
	LeadTitle string `json:"lead_title"`
	OrgID     string `json:"org_id"`
}

// FollowupDraft is a generated message not yet sent. Open means sentAt is
// unset; at most one open draft per lead (partial unique index).
type FollowupDraft struct {
	ID        string     `json:"id"`
	LeadID    string     `json:"lead_id"`
	Text      string     `json:"text"`
	SentAt    *time.Time `json:"sent_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// CreateFollowupRequest schedules a follow-up
type CreateFollowupRequest struct {
	LeadID string    `json:"lead_id"`
	DueAt  time.Time `json:"due_at"`
}

func (r *CreateFollowupRequest) Validate() error {
	if r.LeadID == "" {
		return NewValidationError("lead_id is required")
	}
	if r.DueAt.IsZero() {
		return NewValidationError("due_at is required")
	}
	return nil
}

// FollowupRepository defines data access for follow-ups
type FollowupRepository interface {
	Create(ctx context.Context, followup *Followup) error

	// ListOverdue returns the org's overdue follow-ups, earliest due first
	ListOverdue(ctx context.Context, orgID string) ([]*OverdueFollowup, error)

	MarkDone(ctx context.Context, orgID, id string) error
}

// FollowupDraftRepository defines data access for follow-up drafts
type FollowupDraftRepository interface {
	// Create inserts a draft. Returns *ErrAlreadyExists when the lead
	// already has an open draft.
	Create(ctx context.Context, draft *FollowupDraft) error

	// GetOpenByLead returns the lead's open draft, or nil when none
	GetOpenByLead(ctx context.Context, leadID string) (*FollowupDraft, error)
}
