package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/converso/converso/internal/domain"
	"github.com/converso/converso/internal/domain/mocks"
	"github.com/converso/converso/pkg/logger"
)

type todayQueueMocks struct {
	followupRepo *mocks.MockFollowupRepository
	leadRepo     *mocks.MockLeadRepository
	quoteRepo    *mocks.MockQuoteRepository
}

func newTestTodayQueueService(t *testing.T, ctrl *gomock.Controller) (*TodayQueueService, *todayQueueMocks) {
	m := &todayQueueMocks{
		followupRepo: mocks.NewMockFollowupRepository(ctrl),
		leadRepo:     mocks.NewMockLeadRepository(ctrl),
		quoteRepo:    mocks.NewMockQuoteRepository(ctrl),
	}
	svc := NewTodayQueueService(m.followupRepo, m.leadRepo, m.quoteRepo, logger.NewMockLogger(t))
	return svc, m
}

func TestTodayQueueService_GenerateTodayQueue_BandOrdering(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestTodayQueueService(t, ctrl)
	ctx := context.Background()
	dueAt := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)

	overdue := []*domain.OverdueFollowup{
		{Followup: domain.Followup{ID: "fu-1", LeadID: "lead-1", DueAt: dueAt}, LeadTitle: "Fence repair"},
		{Followup: domain.Followup{ID: "fu-2", LeadID: "lead-2", DueAt: dueAt.Add(time.Hour)}, LeadTitle: "Deck build"},
	}
	idle := []*domain.Lead{
		{ID: "lead-3", Title: "Gutter cleaning", Stage: domain.LeadStageNew},
	}
	unopened := []*domain.UnopenedQuote{
		{Quote: domain.Quote{ID: "quote-1", LeadID: "lead-4", Total: 320}, LeadTitle: "Patio"},
	}
	highValue := []*domain.HighValueLead{
		{Lead: domain.Lead{ID: "lead-5", Title: "Full landscaping"}, QuoteTotal: 1200},
	}
	resistant := []*domain.Lead{
		{ID: "lead-6", Title: "Hedge trim", Stage: domain.LeadStageQuoted},
	}

	m.followupRepo.EXPECT().ListOverdue(ctx, "org-1").Return(overdue, nil)
	m.leadRepo.EXPECT().
		ListIdle(ctx, "org-1", gomock.Any(), domain.IdleLeadLimit).
		Return(idle, nil)
	m.quoteRepo.EXPECT().
		ListUnopened(ctx, "org-1", gomock.Any(), domain.UnopenedQuoteLimit).
		Return(unopened, nil)
	m.leadRepo.EXPECT().
		ListHighValue(ctx, "org-1", domain.HighValueQuoteThreshold, domain.HighValueLeadLimit).
		Return(highValue, nil)
	m.leadRepo.EXPECT().
		ListPriceResistant(ctx, "org-1", domain.PriceResistanceLimit).
		Return(resistant, nil)

	items, err := svc.GenerateTodayQueue(ctx, "org-1")
	require.NoError(t, err)
	require.Len(t, items, 6)

	// Overdue follow-ups outrank everything, then idle, unopened,
	// high-value and price resistance
	assert.Equal(t, domain.TodayQueueOverdueFollowup, items[0].Type)
	assert.Equal(t, domain.PriorityBandOverdueFollowup, items[0].Priority)
	assert.Equal(t, domain.TodayQueueOverdueFollowup, items[1].Type)
	assert.Equal(t, domain.PriorityBandOverdueFollowup-1, items[1].Priority)
	assert.Equal(t, domain.TodayQueueIdleLead, items[2].Type)
	assert.Equal(t, domain.TodayQueueUnopenedQuote, items[3].Type)
	assert.Equal(t, domain.TodayQueueHighValueLead, items[4].Type)
	assert.Equal(t, domain.TodayQueuePriceResistance, items[5].Type)

	assert.Equal(t, "Follow up: Fence repair", items[0].Title)
	assert.Equal(t, "/leads/lead-1", items[0].ActionURL)
	assert.Equal(t, "/quotes/quote-1", items[3].ActionURL)
	assert.Contains(t, items[4].Subtitle, "$1200.00")
}

func TestTodayQueueService_GenerateTodayQueue_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestTodayQueueService(t, ctrl)
	ctx := context.Background()

	m.followupRepo.EXPECT().ListOverdue(ctx, "org-1").Return(nil, nil)
	m.leadRepo.EXPECT().ListIdle(ctx, "org-1", gomock.Any(), domain.IdleLeadLimit).Return(nil, nil)
	m.quoteRepo.EXPECT().ListUnopened(ctx, "org-1", gomock.Any(), domain.UnopenedQuoteLimit).Return(nil, nil)
	m.leadRepo.EXPECT().ListHighValue(ctx, "org-1", domain.HighValueQuoteThreshold, domain.HighValueLeadLimit).Return(nil, nil)
	m.leadRepo.EXPECT().ListPriceResistant(ctx, "org-1", domain.PriceResistanceLimit).Return(nil, nil)

	items, err := svc.GenerateTodayQueue(ctx, "org-1")
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestTodayQueueService_GenerateTodayQueue_SourceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestTodayQueueService(t, ctrl)
	ctx := context.Background()

	m.followupRepo.EXPECT().
		ListOverdue(ctx, "org-1").
		Return(nil, errors.New("query timeout"))

	_, err := svc.GenerateTodayQueue(ctx, "org-1")
	assert.Error(t, err)
}
