package service

import (
	"context"

	"github.com/converso/converso/internal/domain"
	"github.com/converso/converso/pkg/logger"
)

// LeadService implements domain.LeadService
type LeadService struct {
	leadRepo domain.LeadRepository
	logger   logger.Logger
}

// NewLeadService creates a new LeadService
func NewLeadService(leadRepo domain.LeadRepository, log logger.Logger) *LeadService {
	return &LeadService{leadRepo: leadRepo, logger: log}
}

// List returns the org's leads, optionally filtered by stage or title search
func (s *LeadService) List(ctx context.Context, orgID string, filter domain.LeadFilter) ([]*domain.Lead, error) {
	return s.leadRepo.List(ctx, orgID, filter)
}

// Get returns one lead
func (s *LeadService) Get(ctx context.Context, orgID, id string) (*domain.Lead, error) {
	return s.leadRepo.GetByID(ctx, orgID, id)
}

// Create creates a lead by explicit user action
func (s *LeadService) Create(ctx context.Context, orgID string, req *domain.CreateLeadRequest) (*domain.Lead, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	lead := &domain.Lead{
		OrgID:          orgID,
		ContactID:      req.ContactID,
		ConversationID: req.ConversationID,
		Title:          req.Title,
		Stage:          domain.LeadStageNew,
		Tags:           req.Tags,
	}
	if err := s.leadRepo.Create(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

// Update applies the non-zero fields of the request
func (s *LeadService) Update(ctx context.Context, orgID string, req *domain.UpdateLeadRequest) (*domain.Lead, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	lead, err := s.leadRepo.GetByID(ctx, orgID, req.ID)
	if err != nil {
		return nil, err
	}
	if req.Title != "" {
		lead.Title = req.Title
	}
	if req.Stage != "" {
		lead.Stage = req.Stage
	}
	if req.Tags != nil {
		lead.Tags = req.Tags
	}
	if err := s.leadRepo.Update(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}
