package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/converso/converso/internal/domain"
	"github.com/converso/converso/pkg/logger"
)

// TodayQueueService builds the ranked next-best-action list. The queue
// is ephemeral: recomputed on every request, never persisted.
type TodayQueueService struct {
	followupRepo domain.FollowupRepository
	leadRepo     domain.LeadRepository
	quoteRepo    domain.QuoteRepository
	logger       logger.Logger
}

// NewTodayQueueService creates a new TodayQueueService
func NewTodayQueueService(
	followupRepo domain.FollowupRepository,
	leadRepo domain.LeadRepository,
	quoteRepo domain.QuoteRepository,
	log logger.Logger,
) *TodayQueueService {
	return &TodayQueueService{
		followupRepo: followupRepo,
		leadRepo:     leadRepo,
		quoteRepo:    quoteRepo,
		logger:       log,
	}
}

// GenerateTodayQueue gathers the five signal sources into priority bands
// and returns them sorted by descending priority. Band spacing exceeds
// every source cap, so bands never interleave.
func (s *TodayQueueService) GenerateTodayQueue(ctx context.Context, orgID string) ([]*domain.TodayQueueItem, error) {
	now := time.Now().UTC()
	dayAgo := now.Add(-24 * time.Hour)
	var items []*domain.TodayQueueItem

	overdue, err := s.followupRepo.ListOverdue(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue followups: %w", err)
	}
	for i, f := range overdue {
		items = append(items, &domain.TodayQueueItem{
			ID:        f.ID,
			Type:      domain.TodayQueueOverdueFollowup,
			Priority:  domain.PriorityBandOverdueFollowup - i,
			Title:     fmt.Sprintf("Follow up: %s", f.LeadTitle),
			Subtitle:  fmt.Sprintf("Due %s", f.DueAt.Format("Jan 2, 15:04")),
			ActionURL: fmt.Sprintf("/leads/%s", f.LeadID),
			Metadata: map[string]interface{}{
				"leadId": f.LeadID,
				"dueAt":  f.DueAt,
			},
		})
	}

	idle, err := s.leadRepo.ListIdle(ctx, orgID, dayAgo, domain.IdleLeadLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list idle leads: %w", err)
	}
	for i, lead := range idle {
		items = append(items, &domain.TodayQueueItem{
			ID:        lead.ID,
			Type:      domain.TodayQueueIdleLead,
			Priority:  domain.PriorityBandIdleLead - i,
			Title:     lead.Title,
			Subtitle:  "No activity in over 24 hours",
			ActionURL: fmt.Sprintf("/leads/%s", lead.ID),
			Metadata: map[string]interface{}{
				"stage": string(lead.Stage),
			},
		})
	}

	unopened, err := s.quoteRepo.ListUnopened(ctx, orgID, dayAgo, domain.UnopenedQuoteLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list unopened quotes: %w", err)
	}
	for i, quote := range unopened {
		items = append(items, &domain.TodayQueueItem{
			ID:        quote.ID,
			Type:      domain.TodayQueueUnopenedQuote,
			Priority:  domain.PriorityBandUnopenedQuote - i,
			Title:     fmt.Sprintf("Quote not opened: %s", quote.LeadTitle),
			Subtitle:  fmt.Sprintf("$%.2f, sent %s", quote.Total, quote.CreatedAt.Format("Jan 2")),
			ActionURL: fmt.Sprintf("/quotes/%s", quote.ID),
			Metadata: map[string]interface{}{
				"leadId": quote.LeadID,
				"total":  quote.Total,
			},
		})
	}

	highValue, err := s.leadRepo.ListHighValue(ctx, orgID, domain.HighValueQuoteThreshold, domain.HighValueLeadLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list high value leads: %w", err)
	}
	for i, lead := range highValue {
		items = append(items, &domain.TodayQueueItem{
			ID:        lead.ID,
			Type:      domain.TodayQueueHighValueLead,
			Priority:  domain.PriorityBandHighValueLead - i,
			Title:     lead.Title,
			Subtitle:  fmt.Sprintf("Open quote worth $%.2f", lead.QuoteTotal),
			ActionURL: fmt.Sprintf("/leads/%s", lead.ID),
			Metadata: map[string]interface{}{
				"quoteTotal": lead.QuoteTotal,
			},
		})
	}

	resistant, err := s.leadRepo.ListPriceResistant(ctx, orgID, domain.PriceResistanceLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list price resistant leads: %w", err)
	}
	for i, lead := range resistant {
		items = append(items, &domain.TodayQueueItem{
			ID:        lead.ID,
			Type:      domain.TodayQueuePriceResistance,
			Priority:  domain.PriorityBandPriceResistance - i,
			Title:     lead.Title,
			Subtitle:  "Price objection raised, consider a revised offer",
			ActionURL: fmt.Sprintf("/leads/%s", lead.ID),
			Metadata: map[string]interface{}{
				"stage": string(lead.Stage),
			},
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Priority > items[j].Priority
	})
	return items, nil
}
