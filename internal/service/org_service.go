package service

import (
	"context"

	"github.com/converso/converso/internal/domain"
	"github.com/converso/converso/pkg/logger"
)

// OrgService implements domain.OrgService
type OrgService struct {
	orgRepo         domain.OrgRepository
	chatAccountRepo domain.ChatAccountRepository
	logger          logger.Logger
}

// NewOrgService creates a new OrgService
func NewOrgService(orgRepo domain.OrgRepository, chatAccountRepo domain.ChatAccountRepository, log logger.Logger) *OrgService {
	return &OrgService{orgRepo: orgRepo, chatAccountRepo: chatAccountRepo, logger: log}
}

// Get returns the org
func (s *OrgService) Get(ctx context.Context, orgID string) (*domain.Org, error) {
	return s.orgRepo.GetByID(ctx, orgID)
}

// Update renames the org
func (s *OrgService) Update(ctx context.Context, orgID string, req *domain.UpdateOrgRequest) (*domain.Org, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	org, err := s.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	org.Name = req.Name
	if err := s.orgRepo.Update(ctx, org); err != nil {
		return nil, err
	}
	return org, nil
}

// CreateChatAccount registers or reactivates a channel account so
// inbound webhooks can resolve this org
func (s *OrgService) CreateChatAccount(ctx context.Context, orgID string, req *domain.CreateChatAccountRequest) (*domain.ChatAccount, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	account := &domain.ChatAccount{
		OrgID:           orgID,
		Provider:        req.Provider,
		ExternalPhoneID: req.ExternalPhoneID,
		AccountSID:      req.AccountSID,
		AuthToken:       req.AuthToken,
	}
	return s.chatAccountRepo.Upsert(ctx, account)
}
