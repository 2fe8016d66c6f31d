package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/converso/converso/internal/domain"
	"github.com/converso/converso/pkg/logger"
)

// MessageProcessor consumes inbound message jobs. Delivery is
// at-least-once, so every step is replay-safe: upserts, idempotent
// creates, and monotonic timestamp bumps.
type MessageProcessor struct {
	contactRepo      domain.ContactRepository
	conversationRepo domain.ConversationRepository
	messageRepo      domain.MessageRepository
	leadRepo         domain.LeadRepository
	automationSvc    domain.AutomationService
	logger           logger.Logger
}

// NewMessageProcessor creates a new MessageProcessor
func NewMessageProcessor(
	contactRepo domain.ContactRepository,
	conversationRepo domain.ConversationRepository,
	messageRepo domain.MessageRepository,
	leadRepo domain.LeadRepository,
	automationSvc domain.AutomationService,
	log logger.Logger,
) *MessageProcessor {
	return &MessageProcessor{
		contactRepo:      contactRepo,
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		leadRepo:         leadRepo,
		automationSvc:    automationSvc,
		logger:           log,
	}
}

// HandleJob is the domain.JobHandler for the inbound-messages topic
func (p *MessageProcessor) HandleJob(ctx context.Context, payload []byte) error {
	var job domain.InboundMessageJob
	if err := json.Unmarshal(payload, &job); err != nil {
		return fmt.Errorf("failed to unmarshal inbound job: %w", err)
	}

	receivedAt := time.UnixMilli(job.ReceivedAt).UTC()
	message, err := domain.ParseInboundMessage(job.Payload, receivedAt)
	if err != nil {
		// Malformed payloads never become valid on retry
		p.logger.WithFields(map[string]interface{}{
			"org_id": job.OrgID,
			"error":  err.Error(),
		}).Error("Rejecting malformed inbound payload")
		return nil
	}

	return p.Process(ctx, job.OrgID, message)
}

// Process runs the ingestion pipeline for one inbound message. Contact,
// conversation and message persistence are fatal on failure (the job
// retries); automation side effects are best-effort and never fail the
// job.
func (p *MessageProcessor) Process(ctx context.Context, orgID string, inbound *domain.InboundMessage) error {
	contact, err := p.contactRepo.Upsert(ctx, orgID, inbound.Handle)
	if err != nil {
		return fmt.Errorf("failed to upsert contact: %w", err)
	}

	conversation, err := p.conversationRepo.FindLatestByContact(ctx, orgID, contact.ID)
	if err != nil {
		return fmt.Errorf("failed to find conversation: %w", err)
	}
	if conversation == nil {
		conversation = &domain.Conversation{
			OrgID:         orgID,
			ContactID:     contact.ID,
			LastMessageAt: inbound.SentAt,
		}
		if err := p.conversationRepo.Create(ctx, conversation); err != nil {
			return fmt.Errorf("failed to create conversation: %w", err)
		}
	}

	message := &domain.Message{
		OrgID:          orgID,
		ConversationID: conversation.ID,
		Direction:      domain.MessageDirectionIn,
		Text:           inbound.Text,
		SentAt:         inbound.SentAt,
	}
	if err := p.messageRepo.Create(ctx, message); err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}

	if err := p.conversationRepo.UpdateLastMessageAt(ctx, orgID, conversation.ID, inbound.SentAt); err != nil {
		return fmt.Errorf("failed to bump conversation: %w", err)
	}

	p.runAutomation(ctx, orgID, conversation.ID, inbound)
	return nil
}

// runAutomation applies the best-effort rules: lead capture, price
// resistance tagging and stage transitions. Errors are logged and
// swallowed so a rule failure never requeues the message.
// last_replied_at is deliberately untouched here: it tracks agent
// replies, and stamping it on inbound traffic would hide leads where
// the contact keeps writing unanswered from the idle-leads queue.
func (p *MessageProcessor) runAutomation(ctx context.Context, orgID, conversationID string, inbound *domain.InboundMessage) {
	log := p.logger.WithFields(map[string]interface{}{
		"org_id":          orgID,
		"conversation_id": conversationID,
	})

	lead, err := p.leadRepo.GetByConversation(ctx, orgID, conversationID)
	if err != nil {
		log.WithField("error", err.Error()).Error("Lead lookup failed, skipping automation")
		return
	}

	if lead == nil {
		captured, err := p.automationSvc.CheckAndCaptureLead(ctx, orgID, conversationID)
		if err != nil {
			log.WithField("error", err.Error()).Error("Lead capture failed")
		}
		lead = captured
	}

	if lead == nil {
		return
	}

	if domain.DetectPriceResistance(inbound.Text) {
		if err := p.leadRepo.MarkPriceResistance(ctx, orgID, lead.ID); err != nil {
			log.WithField("error", err.Error()).Error("Failed to mark price resistance")
		}
	}

	if _, err := p.automationSvc.CheckAndUpdateStage(ctx, orgID, lead.ID, inbound.Text); err != nil {
		log.WithField("error", err.Error()).Error("Stage transition check failed")
	}
}
