package service

import (
	"context"

	"github.com/converso/converso/internal/domain"
	"github.com/converso/converso/pkg/logger"
)

// ContactService implements domain.ContactService
type ContactService struct {
	contactRepo domain.ContactRepository
	logger      logger.Logger
}

// NewContactService creates a new ContactService
func NewContactService(contactRepo domain.ContactRepository, log logger.Logger) *ContactService {
	return &ContactService{contactRepo: contactRepo, logger: log}
}

// List returns the org's contacts
func (s *ContactService) List(ctx context.Context, orgID string) ([]*domain.Contact, error) {
	return s.contactRepo.List(ctx, orgID)
}

// Get returns one contact
func (s *ContactService) Get(ctx context.Context, orgID, id string) (*domain.Contact, error) {
	return s.contactRepo.GetByID(ctx, orgID, id)
}

// Create creates a contact by explicit user action
func (s *ContactService) Create(ctx context.Context, orgID string, req *domain.CreateContactRequest) (*domain.Contact, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	contact := &domain.Contact{
		OrgID:  orgID,
		Handle: req.Handle,
		Name:   req.Name,
	}
	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// Update applies the non-zero fields of the request
func (s *ContactService) Update(ctx context.Context, orgID string, req *domain.UpdateContactRequest) (*domain.Contact, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	contact, err := s.contactRepo.GetByID(ctx, orgID, req.ID)
	if err != nil {
		return nil, err
	}
	if req.Handle != "" {
		contact.Handle = req.Handle
	}
	if req.Name != "" {
		contact.Name = req.Name
	}
	if err := s.contactRepo.Update(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}
