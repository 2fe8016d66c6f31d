package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination mocks/mock_contact_repository.go -package mocks github.com/converso/converso/internal/domain ContactRepository

// Contact is a channel peer, unique per (org, handle). Created by upsert on
// the first inbound message from an unseen handle.
type Contact struct {
	ID        string    `json:"id"`
	OrgID     string    `json:"org_id"`
	Handle    string    `json:"handle"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// DisplayName returns the contact name, falling back to the handle
func (c *Contact) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Handle
}

// CreateContactRequest creates a contact by explicit user action
type CreateContactRequest struct {
	Handle string `json:"handle"`
	Name   string `json:"name,omitempty"`
}

func (r *CreateContactRequest) Validate() error {
	if r.Handle == "" {
		return NewValidationError("handle is required")
	}
	return nil
}

// UpdateContactRequest updates contact fields
type UpdateContactRequest struct {
	ID     string `json:"id"`
	Handle string `json:"handle,omitempty"`
	Name   string `json:"name,omitempty"`
}

func (r *UpdateContactRequest) Validate() error {
	if r.ID == "" {
		return NewValidationError("id is required")
	}
	return nil
}

// ContactRepository defines data access for contacts
type ContactRepository interface {
	// Upsert returns the contact for (org, handle), creating it if absent.
	// The update side is a no-op: an existing contact is returned unchanged.
	Upsert(ctx context.Context, orgID, handle string) (*Contact, error)

	Create(ctx context.Context, contact *Contact) error
	GetByID(ctx context.Context, orgID, id string) (*Contact, error)
	List(ctx context.Context, orgID string) ([]*Contact, error)
	Update(ctx context.Context, contact *Contact) error
}
