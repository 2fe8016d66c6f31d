package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination mocks/mock_quote_repository.go -package mocks github.com/converso/converso/internal/domain QuoteRepository

// QuoteStatus is the lifecycle state of a quote
type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "DRAFT"
	QuoteStatusSent     QuoteStatus = "SENT"
	QuoteStatusAccepted QuoteStatus = "ACCEPTED"
	QuoteStatusRejected QuoteStatus = "REJECTED"
)

// IsValid reports whether the status is a known quote status
func (s QuoteStatus) IsValid() bool {
	switch s {
	case QuoteStatusDraft, QuoteStatusSent, QuoteStatusAccepted, QuoteStatusRejected:
		return true
	}
	return false
}

// QuoteItem is a single line of a quote
type QuoteItem struct {
	ID          string  `json:"id"`
	QuoteID     string  `json:"quote_id"`
	Description string  `json:"description"`
	Qty         int     `json:"qty"`
	Price       float64 `json:"price"`
}

// Quote holds priced items for a lead. Total equals the sum of
// qty * price over items, enforced at creation time.
type Quote struct {
	ID             string       `json:"id"`
	LeadID         string       `json:"lead_id"`
	Status         QuoteStatus  `json:"status"`
	Total          float64      `json:"total"`
	Items          []*QuoteItem `json:"items,omitempty"`
	PublicID       string       `json:"public_id"`
	ViewCount      int          `json:"view_count"`
	LastViewedAt   *time.Time   `json:"last_viewed_at,omitempty"`
	InsertedInChat bool         `json:"inserted_in_chat"`
	CreatedAt      time.Time    `json:"created_at"`
}

// UnopenedQuote joins the lead title for the Today Queue
type UnopenedQuote struct {
	Quote
	LeadTitle string `json:"lead_title"`
}

// QuoteItemInput is one line of a quote creation request
type QuoteItemInput struct {
	Description string  `json:"description"`
	Qty         int     `json:"qty"`
	Price       float64 `json:"price"`
}

// CreateQuoteRequest creates a quote for a lead
type CreateQuoteRequest struct {
	LeadID string           `json:"lead_id"`
	Items  []QuoteItemInput `json:"items"`
}

// Validate checks the item list and returns the computed total. A
// malformed item list fails here rather than silently producing a
// negative total.
func (r *CreateQuoteRequest) Validate() (float64, error) {
	if r.LeadID == "" {
		return 0, NewValidationError("lead_id is required")
	}
	if len(r.Items) == 0 {
		return 0, NewValidationError("at least one item is required")
	}
	var total float64
	for _, item := range r.Items {
		if item.Qty <= 0 {
			return 0, NewValidationError("item qty must be positive")
		}
		if item.Price < 0 {
			return 0, NewValidationError("item price must not be negative")
		}
		total += float64(item.Qty) * item.Price
	}
	return total, nil
}

// UpdateQuoteStatusRequest changes a quote's status
type UpdateQuoteStatusRequest struct {
	ID     string      `json:"id"`
	Status QuoteStatus `json:"status"`
}

func (r *UpdateQuoteStatusRequest) Validate() error {
	if r.ID == "" {
		return NewValidationError("id is required")
	}
	if !r.Status.IsValid() {
		return NewValidationError("invalid status")
	}
	return nil
}

// QuoteRepository defines data access for quotes
type QuoteRepository interface {
	// Create inserts the quote and its items in one transaction
	Create(ctx context.Context, quote *Quote) error

	GetByID(ctx context.Context, orgID, id string) (*Quote, error)
	GetByPublicID(ctx context.Context, publicID string) (*Quote, error)
	UpdateStatus(ctx context.Context, id string, status QuoteStatus) error

	// TrackView increments view_count and stamps last_viewed_at
	TrackView(ctx context.Context, id string) error

	MarkInsertedInChat(ctx context.Context, id string) error

	// GetAcceptedByLead returns the lead's accepted quote, or nil
	GetAcceptedByLead(ctx context.Context, leadID string) (*Quote, error)

	// ListUnopened returns DRAFT/SENT quotes created at or after since that
	// were never viewed or last viewed before since, newest first.
	ListUnopened(ctx context.Context, orgID string, since time.Time, limit int) ([]*UnopenedQuote, error)
}
