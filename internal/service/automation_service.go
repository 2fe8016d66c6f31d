package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/converso/converso/internal/domain"
	"github.com/converso/converso/pkg/logger"
)

const (
	// Auto-capture fires once a conversation reaches this many messages
	leadCaptureThreshold = 3

	// Idle windows for follow-up drafting
	newLeadIdleWindow    = 24 * time.Hour
	quotedLeadIdleWindow = 48 * time.Hour

	// Dead-lead revival looks back this far
	revivalWindow = 30 * 24 * time.Hour
)

// AutomationService implements domain.AutomationService. Every create it
// performs is guarded by a unique index, so concurrent invocations
// converge on a single row instead of duplicating side effects.
type AutomationService struct {
	leadRepo         domain.LeadRepository
	contactRepo      domain.ContactRepository
	conversationRepo domain.ConversationRepository
	messageRepo      domain.MessageRepository
	quoteRepo        domain.QuoteRepository
	workOrderRepo    domain.WorkOrderRepository
	draftRepo        domain.FollowupDraftRepository
	logger           logger.Logger
}

// NewAutomationService creates a new AutomationService
func NewAutomationService(
	leadRepo domain.LeadRepository,
	contactRepo domain.ContactRepository,
	conversationRepo domain.ConversationRepository,
	messageRepo domain.MessageRepository,
	quoteRepo domain.QuoteRepository,
	workOrderRepo domain.WorkOrderRepository,
	draftRepo domain.FollowupDraftRepository,
	log logger.Logger,
) *AutomationService {
	return &AutomationService{
		leadRepo:         leadRepo,
		contactRepo:      contactRepo,
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		quoteRepo:        quoteRepo,
		workOrderRepo:    workOrderRepo,
		draftRepo:        draftRepo,
		logger:           log,
	}
}

// CheckAndCaptureLead auto-creates a lead once a conversation crosses the
// message threshold. The title combines the contact with the intent read
// from the last messages. Returns nil when no lead was created.
func (s *AutomationService) CheckAndCaptureLead(ctx context.Context, orgID, conversationID string) (*domain.Lead, error) {
	existing, err := s.leadRepo.GetByConversation(ctx, orgID, conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing lead: %w", err)
	}
	if existing != nil {
		return nil, nil
	}

	count, err := s.messageRepo.CountByConversation(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to count messages: %w", err)
	}
	if count < leadCaptureThreshold {
		return nil, nil
	}

	conversation, err := s.conversationRepo.GetByID(ctx, orgID, conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	contact, err := s.contactRepo.GetByID(ctx, orgID, conversation.ContactID)
	if err != nil {
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	recent, err := s.messageRepo.ListRecentByConversation(ctx, conversationID, leadCaptureThreshold)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent messages: %w", err)
	}
	texts := make([]string, 0, len(recent))
	// recent is newest first; read in chronological order
	for i := len(recent) - 1; i >= 0; i-- {
		texts = append(texts, recent[i].Text)
	}
	intent := domain.ExtractIntent(strings.Join(texts, " "))

	lastMessageAt := conversation.LastMessageAt
	lead := &domain.Lead{
		OrgID:          orgID,
		ContactID:      contact.ID,
		ConversationID: conversationID,
		Title:          fmt.Sprintf("%s – %s", contact.DisplayName(), intent),
		Stage:          domain.LeadStageNew,
		AutoCaptured:   true,
		Tags:           []string{domain.TagAutoCaptured},
		LastMessageAt:  &lastMessageAt,
	}
	if err := s.leadRepo.Create(ctx, lead); err != nil {
		if domain.IsAlreadyExists(err) {
			// Lost the capture race; the other worker's lead stands
			return nil, nil
		}
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"org_id":  orgID,
		"lead_id": lead.ID,
		"intent":  intent,
	}).Info("Lead auto-captured")
	return lead, nil
}

// CheckAndUpdateStage scans text for win/loss signals and moves the lead.
// A WON transition also generates the work order.
func (s *AutomationService) CheckAndUpdateStage(ctx context.Context, orgID, leadID, text string) (domain.LeadStage, error) {
	signal := domain.DetectStageSignal(text)
	if signal == domain.StageSignalNone {
		return "", nil
	}

	lead, err := s.leadRepo.GetByID(ctx, orgID, leadID)
	if err != nil {
		return "", fmt.Errorf("failed to get lead: %w", err)
	}

	target := domain.LeadStageWon
	if signal == domain.StageSignalLost {
		target = domain.LeadStageLost
	}
	if lead.Stage == target {
		return "", nil
	}

	if err := s.leadRepo.UpdateStage(ctx, orgID, leadID, target); err != nil {
		return "", fmt.Errorf("failed to update stage: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"org_id":  orgID,
		"lead_id": leadID,
		"from":    string(lead.Stage),
		"to":      string(target),
	}).Info("Lead stage transition")

	if target == domain.LeadStageWon {
		if _, err := s.CreateWorkOrderDraft(ctx, orgID, leadID); err != nil {
			// The stage already moved; the work order can be recreated later
			s.logger.WithFields(map[string]interface{}{
				"lead_id": leadID,
				"error":   err.Error(),
			}).Error("Failed to create work order for won lead")
		}
	}
	return target, nil
}

// CreateWorkOrderDraft creates the lead's work order, idempotently: an
// existing one is returned unchanged. The price comes from the lead's
// accepted quote when there is one.
func (s *AutomationService) CreateWorkOrderDraft(ctx context.Context, orgID, leadID string) (*domain.WorkOrder, error) {
	existing, err := s.workOrderRepo.GetByLead(ctx, leadID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing work order: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	lead, err := s.leadRepo.GetByID(ctx, orgID, leadID)
	if err != nil {
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	customer := lead.Title
	if lead.ContactID != "" {
		if contact, err := s.contactRepo.GetByID(ctx, orgID, lead.ContactID); err == nil {
			customer = contact.DisplayName()
		}
	}

	service := lead.Title
	var price float64
	quote, err := s.quoteRepo.GetAcceptedByLead(ctx, leadID)
	if err != nil {
		return nil, fmt.Errorf("failed to get accepted quote: %w", err)
	}
	if quote != nil {
		price = quote.Total
		service = fmt.Sprintf("Service from quote #%s", shortQuoteID(quote.ID))
	}

	workOrder := &domain.WorkOrder{
		LeadID:   leadID,
		OrgID:    orgID,
		Customer: customer,
		Service:  service,
		Price:    price,
		Status:   domain.WorkOrderStatusPending,
	}
	if err := s.workOrderRepo.Create(ctx, workOrder); err != nil {
		if domain.IsAlreadyExists(err) {
			return s.workOrderRepo.GetByLead(ctx, leadID)
		}
		return nil, fmt.Errorf("failed to create work order: %w", err)
	}
	return workOrder, nil
}

func shortQuoteID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// CreateFollowupDraftIfNeeded drafts at most one open follow-up for an
// idle lead. NEW leads get a check-in after 24h of silence, QUOTED leads
// a quote nudge after 48h. Returns nil when a draft exists or no rule
// matches.
func (s *AutomationService) CreateFollowupDraftIfNeeded(ctx context.Context, orgID, leadID string) (*domain.FollowupDraft, error) {
	open, err := s.draftRepo.GetOpenByLead(ctx, leadID)
	if err != nil {
		return nil, fmt.Errorf("failed to check open draft: %w", err)
	}
	if open != nil {
		return nil, nil
	}

	lead, err := s.leadRepo.GetByID(ctx, orgID, leadID)
	if err != nil {
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	idleSince := lead.CreatedAt
	if lead.LastMessageAt != nil {
		idleSince = *lead.LastMessageAt
	}
	idle := time.Since(idleSince)

	name := s.contactName(ctx, orgID, lead)

	var text string
	switch {
	case lead.Stage == domain.LeadStageNew && idle >= newLeadIdleWindow:
		text = fmt.Sprintf("Hi %s, just checking in. Is there anything else you need from us to move forward?", name)
	case lead.Stage == domain.LeadStageQuoted && idle >= quotedLeadIdleWindow:
		text = fmt.Sprintf("Hi %s, did you get a chance to look at the quote for %s? Happy to answer any questions.", name, lead.Title)
	default:
		return nil, nil
	}

	return s.createDraft(ctx, leadID, text)
}

// GetDeadLeadsForRevival returns recently lost leads plus long-inactive
// open leads, deduplicated.
func (s *AutomationService) GetDeadLeadsForRevival(ctx context.Context, orgID string) ([]*domain.LeadWithContact, error) {
	cutoff := time.Now().UTC().Add(-revivalWindow)

	lost, err := s.leadRepo.ListLostSince(ctx, orgID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list lost leads: %w", err)
	}
	inactive, err := s.leadRepo.ListInactiveBefore(ctx, orgID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list inactive leads: %w", err)
	}

	seen := make(map[string]bool, len(lost))
	leads := make([]*domain.LeadWithContact, 0, len(lost)+len(inactive))
	for _, lead := range lost {
		seen[lead.ID] = true
		leads = append(leads, lead)
	}
	for _, lead := range inactive {
		if !seen[lead.ID] {
			leads = append(leads, lead)
		}
	}
	return leads, nil
}

// CreateRevivalDraft drafts a revival message, idempotently per lead
func (s *AutomationService) CreateRevivalDraft(ctx context.Context, orgID, leadID string) (*domain.FollowupDraft, error) {
	open, err := s.draftRepo.GetOpenByLead(ctx, leadID)
	if err != nil {
		return nil, fmt.Errorf("failed to check open draft: %w", err)
	}
	if open != nil {
		return nil, nil
	}

	lead, err := s.leadRepo.GetByID(ctx, orgID, leadID)
	if err != nil {
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	name := s.contactName(ctx, orgID, lead)
	text := fmt.Sprintf("Hi %s, it's been a while since we talked about %s. We'd still love to help if you're interested.", name, lead.Title)
	return s.createDraft(ctx, leadID, text)
}

func (s *AutomationService) createDraft(ctx context.Context, leadID, text string) (*domain.FollowupDraft, error) {
	draft := &domain.FollowupDraft{
		LeadID: leadID,
		Text:   text,
	}
	if err := s.draftRepo.Create(ctx, draft); err != nil {
		if domain.IsAlreadyExists(err) {
			// A concurrent sweep already drafted this lead
			return nil, nil
		}
		return nil, fmt.Errorf("failed to create followup draft: %w", err)
	}
	return draft, nil
}

func (s *AutomationService) contactName(ctx context.Context, orgID string, lead *domain.Lead) string {
	if lead.ContactID == "" {
		return "there"
	}
	contact, err := s.contactRepo.GetByID(ctx, orgID, lead.ContactID)
	if err != nil {
		return "there"
	}
	return contact.DisplayName()
}
