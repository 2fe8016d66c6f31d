package service

import (
	"context"

	"github.com/converso/converso/internal/domain"
	"github.com/converso/converso/pkg/logger"
)

// FollowupService implements domain.FollowupService
type FollowupService struct {
	followupRepo domain.FollowupRepository
	leadRepo     domain.LeadRepository
	logger       logger.Logger
}

// NewFollowupService creates a new FollowupService
func NewFollowupService(followupRepo domain.FollowupRepository, leadRepo domain.LeadRepository, log logger.Logger) *FollowupService {
	return &FollowupService{followupRepo: followupRepo, leadRepo: leadRepo, logger: log}
}

// Create schedules a follow-up on a lead
func (s *FollowupService) Create(ctx context.Context, orgID string, req *domain.CreateFollowupRequest) (*domain.Followup, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// The lead lookup doubles as the org scope check
	if _, err := s.leadRepo.GetByID(ctx, orgID, req.LeadID); err != nil {
		return nil, err
	}

	followup := &domain.Followup{
		LeadID: req.LeadID,
		DueAt:  req.DueAt.UTC(),
	}
	if err := s.followupRepo.Create(ctx, followup); err != nil {
		return nil, err
	}
	return followup, nil
}

// ListOverdue returns the org's overdue follow-ups, earliest due first
func (s *FollowupService) ListOverdue(ctx context.Context, orgID string) ([]*domain.OverdueFollowup, error) {
	return s.followupRepo.ListOverdue(ctx, orgID)
}

// MarkDone soft-completes a follow-up
func (s *FollowupService) MarkDone(ctx context.Context, orgID, id string) error {
	return s.followupRepo.MarkDone(ctx, orgID, id)
}
