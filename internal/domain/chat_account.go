package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination mocks/mock_chat_account_repository.go -package mocks github.com/converso/converso/internal/domain ChatAccountRepository

// ChatProviderTwilioWhatsApp is the only implemented channel provider
const ChatProviderTwilioWhatsApp = "twilio_whatsapp"

// ChatAccount maps a provider destination address to an org. Queried once
// per inbound webhook to resolve the tenant.
type ChatAccount struct {
	ID              string    `json:"id"`
	OrgID           string    `json:"org_id"`
	Provider        string    `json:"provider"`
	ExternalPhoneID string    `json:"external_phone_id"`
	AccountSID      string    `json:"-"`
	AuthToken       string    `json:"-"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

// ChatAccountRepository defines data access for channel accounts
type ChatAccountRepository interface {
	// GetActiveByExternalID resolves (provider, destination address) to a
	// registered account. Returns nil when no active account matches.
	GetActiveByExternalID(ctx context.Context, provider, externalPhoneID string) (*ChatAccount, error)

	// GetActiveByOrg returns the org's active account for a provider, or nil
	GetActiveByOrg(ctx context.Context, orgID, provider string) (*ChatAccount, error)

	// Upsert creates the account or updates credentials and reactivates it
	Upsert(ctx context.Context, account *ChatAccount) (*ChatAccount, error)
}
