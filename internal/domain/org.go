package domain

import (
	"context"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_org_repository.go -package mocks github.com/converso/converso/internal/domain OrgRepository

// Org is a tenant. OwnerEmail receives overdue follow-up notifications.
type Org struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	OwnerEmail string    `json:"owner_email"`
	CreatedAt  time.Time `json:"created_at"`
}

// UpdateOrgRequest renames an org
type UpdateOrgRequest struct {
	Name string `json:"name"`
}

func (r *UpdateOrgRequest) Validate() error {
	if r.Name == "" {
		return NewValidationError("name is required")
	}
	return nil
}

// CreateChatAccountRequest registers a channel account for an org
type CreateChatAccountRequest struct {
	Provider        string `json:"provider"`
	ExternalPhoneID string `json:"external_phone_id"`
	AccountSID      string `json:"account_sid,omitempty"`
	AuthToken       string `json:"auth_token,omitempty"`
}

func (r *CreateChatAccountRequest) Validate() error {
	if r.Provider == "" {
		return NewValidationError("provider is required")
	}
	if r.ExternalPhoneID == "" {
		return NewValidationError("external_phone_id is required")
	}
	return nil
}

// InviteRequest invites a user to an org by email
type InviteRequest struct {
	Email string `json:"email"`
}

func (r *InviteRequest) Validate() error {
	if !govalidator.IsEmail(r.Email) {
		return NewValidationError("invalid email")
	}
	return nil
}

// OrgRepository defines data access for orgs
type OrgRepository interface {
	GetByID(ctx context.Context, id string) (*Org, error)
	List(ctx context.Context) ([]*Org, error)
	Update(ctx context.Context, org *Org) error
}
