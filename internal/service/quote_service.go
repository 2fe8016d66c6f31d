package service

import (
	"context"
	"fmt"
	"time"

	"github.com/converso/converso/internal/domain"
	"github.com/converso/converso/pkg/logger"
)

// QuoteService implements domain.QuoteService
type QuoteService struct {
	quoteRepo        domain.QuoteRepository
	leadRepo         domain.LeadRepository
	contactRepo      domain.ContactRepository
	conversationRepo domain.ConversationRepository
	messageRepo      domain.MessageRepository
	sender           domain.MessageSender
	frontendURL      string
	logger           logger.Logger
}

// NewQuoteService creates a new QuoteService
func NewQuoteService(
	quoteRepo domain.QuoteRepository,
	leadRepo domain.LeadRepository,
	contactRepo domain.ContactRepository,
	conversationRepo domain.ConversationRepository,
	messageRepo domain.MessageRepository,
	sender domain.MessageSender,
	frontendURL string,
	log logger.Logger,
) *QuoteService {
	return &QuoteService{
		quoteRepo:        quoteRepo,
		leadRepo:         leadRepo,
		contactRepo:      contactRepo,
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		sender:           sender,
		frontendURL:      frontendURL,
		logger:           log,
	}
}

// Create validates the items, persists the quote as SENT, moves the lead
// to QUOTED and best-effort shares the public link in the lead's chat.
// Sharing failure never un-creates the quote.
func (s *QuoteService) Create(ctx context.Context, orgID string, req *domain.CreateQuoteRequest) (*domain.Quote, error) {
	total, err := req.Validate()
	if err != nil {
		return nil, err
	}

	lead, err := s.leadRepo.GetByID(ctx, orgID, req.LeadID)
	if err != nil {
		return nil, err
	}

	items := make([]*domain.QuoteItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = &domain.QuoteItem{
			Description: item.Description,
			Qty:         item.Qty,
			Price:       item.Price,
		}
	}
	quote := &domain.Quote{
		LeadID: req.LeadID,
		Status: domain.QuoteStatusSent,
		Total:  total,
		Items:  items,
	}
	if err := s.quoteRepo.Create(ctx, quote); err != nil {
		return nil, err
	}

	if lead.Stage != domain.LeadStageQuoted {
		if err := s.leadRepo.UpdateStage(ctx, orgID, lead.ID, domain.LeadStageQuoted); err != nil {
			s.logger.WithFields(map[string]interface{}{
				"lead_id": lead.ID,
				"error":   err.Error(),
			}).Error("Failed to move lead to quoted stage")
		}
	}

	if lead.ConversationID != "" {
		s.shareInChat(ctx, orgID, lead, quote)
	}
	return quote, nil
}

// shareInChat sends the public quote link as an outbound chat message.
// Goes straight to the message store rather than through Send so the
// link text never trips the stage-signal scanner.
func (s *QuoteService) shareInChat(ctx context.Context, orgID string, lead *domain.Lead, quote *domain.Quote) {
	log := s.logger.WithFields(map[string]interface{}{
		"quote_id": quote.ID,
		"lead_id":  lead.ID,
	})

	contact, err := s.contactRepo.GetByID(ctx, orgID, lead.ContactID)
	if err != nil {
		log.WithField("error", err.Error()).Error("Failed to load contact for quote share")
		return
	}

	text := fmt.Sprintf("Here is your quote for %s: %s/q/%s", lead.Title, s.frontendURL, quote.PublicID)
	if _, err := s.sender.SendMessage(ctx, orgID, contact.Handle, text); err != nil {
		log.WithField("error", err.Error()).Error("Failed to deliver quote link")
		return
	}

	now := time.Now().UTC()
	message := &domain.Message{
		OrgID:          orgID,
		ConversationID: lead.ConversationID,
		Direction:      domain.MessageDirectionOut,
		Text:           text,
		SentAt:         now,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		log.WithField("error", err.Error()).Error("Failed to persist quote link message")
		return
	}
	if err := s.conversationRepo.UpdateLastMessageAt(ctx, orgID, lead.ConversationID, now); err != nil {
		log.WithField("error", err.Error()).Error("Failed to bump conversation")
	}
	if err := s.quoteRepo.MarkInsertedInChat(ctx, quote.ID); err != nil {
		log.WithField("error", err.Error()).Error("Failed to mark quote as shared")
		return
	}
	quote.InsertedInChat = true
}

// Get returns one quote with items
func (s *QuoteService) Get(ctx context.Context, orgID, id string) (*domain.Quote, error) {
	return s.quoteRepo.GetByID(ctx, orgID, id)
}

// UpdateStatus changes a quote's lifecycle status
func (s *QuoteService) UpdateStatus(ctx context.Context, orgID string, req *domain.UpdateQuoteStatusRequest) (*domain.Quote, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	quote, err := s.quoteRepo.GetByID(ctx, orgID, req.ID)
	if err != nil {
		return nil, err
	}
	if err := s.quoteRepo.UpdateStatus(ctx, quote.ID, req.Status); err != nil {
		return nil, err
	}
	quote.Status = req.Status
	return quote, nil
}

// PublicGet serves the unauthenticated public quote page and tracks the
// view. Tracking failure never hides the quote.
func (s *QuoteService) PublicGet(ctx context.Context, publicID string) (*domain.Quote, error) {
	quote, err := s.quoteRepo.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}

	if err := s.quoteRepo.TrackView(ctx, quote.ID); err != nil {
		s.logger.WithFields(map[string]interface{}{
			"quote_id": quote.ID,
			"error":    err.Error(),
		}).Error("Failed to track quote view")
	} else {
		quote.ViewCount++
		now := time.Now().UTC()
		quote.LastViewedAt = &now
	}
	return quote, nil
}
