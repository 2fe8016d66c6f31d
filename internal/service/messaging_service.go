package service

import (
	"context"
	"fmt"
	"time"

	"github.com/converso/converso/internal/domain"
	"github.com/converso/converso/pkg/logger"
)

// MessagingService implements domain.MessagingService
type MessagingService struct {
	jobQueue         domain.JobQueue
	chatAccountRepo  domain.ChatAccountRepository
	conversationRepo domain.ConversationRepository
	contactRepo      domain.ContactRepository
	messageRepo      domain.MessageRepository
	leadRepo         domain.LeadRepository
	automationSvc    domain.AutomationService
	sender           domain.MessageSender
	logger           logger.Logger
}

// NewMessagingService creates a new MessagingService
func NewMessagingService(
	jobQueue domain.JobQueue,
	chatAccountRepo domain.ChatAccountRepository,
	conversationRepo domain.ConversationRepository,
	contactRepo domain.ContactRepository,
	messageRepo domain.MessageRepository,
	leadRepo domain.LeadRepository,
	automationSvc domain.AutomationService,
	sender domain.MessageSender,
	log logger.Logger,
) *MessagingService {
	return &MessagingService{
		jobQueue:         jobQueue,
		chatAccountRepo:  chatAccountRepo,
		conversationRepo: conversationRepo,
		contactRepo:      contactRepo,
		messageRepo:      messageRepo,
		leadRepo:         leadRepo,
		automationSvc:    automationSvc,
		sender:           sender,
		logger:           log,
	}
}

// Webhook validates the payload shape and enqueues it for async
// processing. Malformed payloads fail synchronously so the provider sees
// a 4xx instead of burying the error in the queue.
func (s *MessagingService) Webhook(ctx context.Context, orgID string, payload []byte) error {
	now := time.Now().UTC()
	if _, err := domain.ParseInboundMessage(payload, now); err != nil {
		return err
	}

	job := &domain.InboundMessageJob{
		OrgID:      orgID,
		Payload:    payload,
		ReceivedAt: now.UnixMilli(),
	}
	backend, err := s.jobQueue.Enqueue(ctx, domain.TopicInboundMessages, job)
	if err != nil {
		return fmt.Errorf("failed to enqueue inbound message: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"org_id":  orgID,
		"backend": backend,
	}).Debug("Inbound message enqueued")
	return nil
}

// ResolveOrgFromDestination maps a provider destination address to an org
// via the chat account registry. Returns "" when unregistered.
func (s *MessagingService) ResolveOrgFromDestination(ctx context.Context, to string) (string, error) {
	account, err := s.chatAccountRepo.GetActiveByExternalID(ctx, domain.ChatProviderTwilioWhatsApp, to)
	if err != nil {
		return "", fmt.Errorf("failed to resolve chat account: %w", err)
	}
	if account == nil {
		return "", nil
	}
	return account.OrgID, nil
}

// ListConversations returns the org's inbox, most recently active first
func (s *MessagingService) ListConversations(ctx context.Context, orgID string, limit int) ([]*domain.ConversationWithContact, error) {
	return s.conversationRepo.List(ctx, orgID, limit)
}

// GetConversation returns a conversation with contact and messages
func (s *MessagingService) GetConversation(ctx context.Context, orgID, id string) (*domain.ConversationDetail, error) {
	conversation, err := s.conversationRepo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	contact, err := s.contactRepo.GetByID(ctx, orgID, conversation.ContactID)
	if err != nil {
		return nil, err
	}
	messages, err := s.messageRepo.ListByConversation(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	return &domain.ConversationDetail{
		Conversation: *conversation,
		Contact:      *contact,
		Messages:     messages,
	}, nil
}

// Send delivers an outbound message through the provider, persists it and
// runs the stage-transition check. Provider failure aborts before any
// state is written.
func (s *MessagingService) Send(ctx context.Context, orgID, conversationID, text string) error {
	conversation, err := s.conversationRepo.GetByID(ctx, orgID, conversationID)
	if err != nil {
		return err
	}
	contact, err := s.contactRepo.GetByID(ctx, orgID, conversation.ContactID)
	if err != nil {
		return err
	}

	providerMessageID, err := s.sender.SendMessage(ctx, orgID, contact.Handle, text)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	message := &domain.Message{
		OrgID:          orgID,
		ConversationID: conversationID,
		Direction:      domain.MessageDirectionOut,
		Text:           text,
		SentAt:         now,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return fmt.Errorf("failed to persist outbound message: %w", err)
	}
	if err := s.conversationRepo.UpdateLastMessageAt(ctx, orgID, conversationID, now); err != nil {
		return fmt.Errorf("failed to bump conversation: %w", err)
	}

	log := s.logger.WithFields(map[string]interface{}{
		"org_id":              orgID,
		"conversation_id":     conversationID,
		"provider_message_id": providerMessageID,
	})
	log.Info("Outbound message sent")

	lead, err := s.leadRepo.GetByConversation(ctx, orgID, conversationID)
	if err != nil {
		log.WithField("error", err.Error()).Error("Lead lookup after send failed")
		return nil
	}
	if lead == nil {
		return nil
	}

	if err := s.leadRepo.UpdateLastRepliedAt(ctx, orgID, lead.ID, now); err != nil {
		log.WithField("error", err.Error()).Error("Failed to update lead reply time")
	}
	if _, err := s.automationSvc.CheckAndUpdateStage(ctx, orgID, lead.ID, text); err != nil {
		log.WithField("error", err.Error()).Error("Stage transition check failed")
	}
	return nil
}
