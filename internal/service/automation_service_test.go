package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/converso/converso/internal/domain"
	"github.com/converso/converso/internal/domain/mocks"
	"github.com/converso/converso/pkg/logger"
)

type automationMocks struct {
	leadRepo         *mocks.MockLeadRepository
	contactRepo      *mocks.MockContactRepository
	conversationRepo *mocks.MockConversationRepository
	messageRepo      *mocks.MockMessageRepository
	quoteRepo        *mocks.MockQuoteRepository
	workOrderRepo    *mocks.MockWorkOrderRepository
	draftRepo        *mocks.MockFollowupDraftRepository
}

func newTestAutomationService(t *testing.T, ctrl *gomock.Controller) (*AutomationService, *automationMocks) {
	m := &automationMocks{
		leadRepo:         mocks.NewMockLeadRepository(ctrl),
		contactRepo:      mocks.NewMockContactRepository(ctrl),
		conversationRepo: mocks.NewMockConversationRepository(ctrl),
		messageRepo:      mocks.NewMockMessageRepository(ctrl),
		quoteRepo:        mocks.NewMockQuoteRepository(ctrl),
		workOrderRepo:    mocks.NewMockWorkOrderRepository(ctrl),
		draftRepo:        mocks.NewMockFollowupDraftRepository(ctrl),
	}
	svc := NewAutomationService(
		m.leadRepo,
		m.contactRepo,
		m.conversationRepo,
		m.messageRepo,
		m.quoteRepo,
		m.workOrderRepo,
		m.draftRepo,
		logger.NewMockLogger(t),
	)
	return svc, m
}

func TestAutomationService_CheckAndCaptureLead_BelowThreshold(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAutomationService(t, ctrl)
	ctx := context.Background()

	m.leadRepo.EXPECT().GetByConversation(ctx, "org-1", "conv-1").Return(nil, nil)
	m.messageRepo.EXPECT().CountByConversation(ctx, "conv-1").Return(2, nil)

	lead, err := svc.CheckAndCaptureLead(ctx, "org-1", "conv-1")
	assert.NoError(t, err)
	assert.Nil(t, lead)
}

func TestAutomationService_CheckAndCaptureLead_ExistingLead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAutomationService(t, ctrl)
	ctx := context.Background()

	m.leadRepo.EXPECT().
		GetByConversation(ctx, "org-1", "conv-1").
		Return(&domain.Lead{ID: "lead-1"}, nil)

	lead, err := svc.CheckAndCaptureLead(ctx, "org-1", "conv-1")
	assert.NoError(t, err)
	assert.Nil(t, lead)
}

func TestAutomationService_CheckAndCaptureLead_CapturesWithIntent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAutomationService(t, ctrl)
	ctx := context.Background()

	lastMessageAt := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	conversation := &domain.Conversation{
		ID:            "conv-1",
		OrgID:         "org-1",
		ContactID:     "contact-1",
		LastMessageAt: lastMessageAt,
	}
	contact := &domain.Contact{ID: "contact-1", Name: "Maya", Handle: "whatsapp:+15551234567"}
	// Newest first, the way the repository returns them
	recent := []*domain.Message{
		{Text: "ok thanks"},
		{Text: "what would that cost?"},
		{Text: "hi, I need my fence fixed"},
	}

	m.leadRepo.EXPECT().GetByConversation(ctx, "org-1", "conv-1").Return(nil, nil)
	m.messageRepo.EXPECT().CountByConversation(ctx, "conv-1").Return(3, nil)
	m.conversationRepo.EXPECT().GetByID(ctx, "org-1", "conv-1").Return(conversation, nil)
	m.contactRepo.EXPECT().GetByID(ctx, "org-1", "contact-1").Return(contact, nil)
	m.messageRepo.EXPECT().ListRecentByConversation(ctx, "conv-1", 3).Return(recent, nil)
	m.leadRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, lead *domain.Lead) error {
			assert.Equal(t, "Maya – Pricing inquiry", lead.Title)
			assert.Equal(t, domain.LeadStageNew, lead.Stage)
			assert.True(t, lead.AutoCaptured)
			assert.Equal(t, []string{domain.TagAutoCaptured}, lead.Tags)
			require.NotNil(t, lead.LastMessageAt)
			assert.Equal(t, lastMessageAt, *lead.LastMessageAt)
			lead.ID = "lead-1"
			return nil
		})

	lead, err := svc.CheckAndCaptureLead(ctx, "org-1", "conv-1")
	require.NoError(t, err)
	require.NotNil(t, lead)
	assert.Equal(t, "lead-1", lead.ID)
}

func TestAutomationService_CheckAndCaptureLead_LosesRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAutomationService(t, ctrl)
	ctx := context.Background()

	conversation := &domain.Conversation{ID: "conv-1", OrgID: "org-1", ContactID: "contact-1"}
	contact := &domain.Contact{ID: "contact-1", Handle: "whatsapp:+15551234567"}

	m.leadRepo.EXPECT().GetByConversation(ctx, "org-1", "conv-1").Return(nil, nil)
	m.messageRepo.EXPECT().CountByConversation(ctx, "conv-1").Return(4, nil)
	m.conversationRepo.EXPECT().GetByID(ctx, "org-1", "conv-1").Return(conversation, nil)
	m.contactRepo.EXPECT().GetByID(ctx, "org-1", "contact-1").Return(contact, nil)
	m.messageRepo.EXPECT().
		ListRecentByConversation(ctx, "conv-1", 3).
		Return([]*domain.Message{{Text: "hello"}}, nil)
	m.leadRepo.EXPECT().
		Create(ctx, gomock.Any()).
		Return(&domain.ErrAlreadyExists{Entity: "lead", Key: "conv-1"})

	lead, err := svc.CheckAndCaptureLead(ctx, "org-1", "conv-1")
	assert.NoError(t, err)
	assert.Nil(t, lead)
}

func TestAutomationService_CheckAndUpdateStage_NoSignal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAutomationService(t, ctrl)

	stage, err := svc.CheckAndUpdateStage(context.Background(), "org-1", "lead-1", "let me think about it")
	assert.NoError(t, err)
	assert.Equal(t, domain.LeadStage(""), stage)
}

func TestAutomationService_CheckAndUpdateStage_AlreadyInTargetStage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAutomationService(t, ctrl)
	ctx := context.Background()

	m.leadRepo.EXPECT().
		GetByID(ctx, "org-1", "lead-1").
		Return(&domain.Lead{ID: "lead-1", Stage: domain.LeadStageWon}, nil)

	stage, err := svc.CheckAndUpdateStage(ctx, "org-1", "lead-1", "yes, confirmed")
	assert.NoError(t, err)
	assert.Equal(t, domain.LeadStage(""), stage)
}

func TestAutomationService_CheckAndUpdateStage_WonCreatesWorkOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAutomationService(t, ctrl)
	ctx := context.Background()

	lead := &domain.Lead{
		ID:        "lead-1",
		OrgID:     "org-1",
		ContactID: "contact-1",
		Title:     "Maya – Pricing inquiry",
		Stage:     domain.LeadStageQuoted,
	}
	contact := &domain.Contact{ID: "contact-1", Name: "Maya"}
	accepted := &domain.Quote{ID: "5f2b9c61-7c3e-4f10-9a44-2d6e8b0f1a27", LeadID: "lead-1", Total: 750, Status: domain.QuoteStatusAccepted}

	m.leadRepo.EXPECT().GetByID(ctx, "org-1", "lead-1").Return(lead, nil).Times(2)
	m.leadRepo.EXPECT().UpdateStage(ctx, "org-1", "lead-1", domain.LeadStageWon).Return(nil)
	m.workOrderRepo.EXPECT().GetByLead(ctx, "lead-1").Return(nil, nil)
	m.contactRepo.EXPECT().GetByID(ctx, "org-1", "contact-1").Return(contact, nil)
	m.quoteRepo.EXPECT().GetAcceptedByLead(ctx, "lead-1").Return(accepted, nil)
	m.workOrderRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, wo *domain.WorkOrder) error {
			assert.Equal(t, "Maya", wo.Customer)
			assert.Equal(t, "Service from quote #5f2b9c61", wo.Service)
			assert.Equal(t, 750.0, wo.Price)
			assert.Equal(t, domain.WorkOrderStatusPending, wo.Status)
			return nil
		})

	stage, err := svc.CheckAndUpdateStage(ctx, "org-1", "lead-1", "yes, please go ahead")
	assert.NoError(t, err)
	assert.Equal(t, domain.LeadStageWon, stage)
}

func TestAutomationService_CheckAndUpdateStage_LostSkipsWorkOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAutomationService(t, ctrl)
	ctx := context.Background()

	m.leadRepo.EXPECT().
		GetByID(ctx, "org-1", "lead-1").
		Return(&domain.Lead{ID: "lead-1", Stage: domain.LeadStageQuoted}, nil)
	m.leadRepo.EXPECT().UpdateStage(ctx, "org-1", "lead-1", domain.LeadStageLost).Return(nil)

	stage, err := svc.CheckAndUpdateStage(ctx, "org-1", "lead-1", "not now, maybe next year")
	assert.NoError(t, err)
	assert.Equal(t, domain.LeadStageLost, stage)
}

func TestAutomationService_CreateWorkOrderDraft_ReturnsExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAutomationService(t, ctrl)
	ctx := context.Background()

	existing := &domain.WorkOrder{ID: "wo-1", LeadID: "lead-1"}
	m.workOrderRepo.EXPECT().GetByLead(ctx, "lead-1").Return(existing, nil)

	wo, err := svc.CreateWorkOrderDraft(ctx, "org-1", "lead-1")
	assert.NoError(t, err)
	assert.Same(t, existing, wo)
}

func TestAutomationService_CreateWorkOrderDraft_NoAcceptedQuote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAutomationService(t, ctrl)
	ctx := context.Background()

	lead := &domain.Lead{
		ID:        "lead-1",
		OrgID:     "org-1",
		ContactID: "contact-1",
		Title:     "Maya – Pricing inquiry",
		Stage:     domain.LeadStageWon,
	}
	contact := &domain.Contact{ID: "contact-1", Name: "Maya"}

	m.workOrderRepo.EXPECT().GetByLead(ctx, "lead-1").Return(nil, nil)
	m.leadRepo.EXPECT().GetByID(ctx, "org-1", "lead-1").Return(lead, nil)
	m.contactRepo.EXPECT().GetByID(ctx, "org-1", "contact-1").Return(contact, nil)
	m.quoteRepo.EXPECT().GetAcceptedByLead(ctx, "lead-1").Return(nil, nil)
	m.workOrderRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, wo *domain.WorkOrder) error {
			// Without an accepted quote the lead title names the service
			assert.Equal(t, "Maya – Pricing inquiry", wo.Service)
			assert.Equal(t, 0.0, wo.Price)
			return nil
		})

	wo, err := svc.CreateWorkOrderDraft(ctx, "org-1", "lead-1")
	require.NoError(t, err)
	require.NotNil(t, wo)
}

func TestAutomationService_CreateFollowupDraftIfNeeded_OpenDraftExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAutomationService(t, ctrl)
	ctx := context.Background()

	m.draftRepo.EXPECT().
		GetOpenByLead(ctx, "lead-1").
		Return(&domain.FollowupDraft{ID: "draft-1"}, nil)

	draft, err := svc.CreateFollowupDraftIfNeeded(ctx, "org-1", "lead-1")
	assert.NoError(t, err)
	assert.Nil(t, draft)
}

func TestAutomationService_CreateFollowupDraftIfNeeded_IdleNewLead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAutomationService(t, ctrl)
	ctx := context.Background()

	idle := time.Now().UTC().Add(-30 * time.Hour)
	lead := &domain.Lead{
		ID:            "lead-1",
		OrgID:         "org-1",
		ContactID:     "contact-1",
		Title:         "Maya – Pricing inquiry",
		Stage:         domain.LeadStageNew,
		LastMessageAt: &idle,
	}

	m.draftRepo.EXPECT().GetOpenByLead(ctx, "lead-1").Return(nil, nil)
	m.leadRepo.EXPECT().GetByID(ctx, "org-1", "lead-1").Return(lead, nil)
	m.contactRepo.EXPECT().
		GetByID(ctx, "org-1", "contact-1").
		Return(&domain.Contact{ID: "contact-1", Name: "Maya"}, nil)
	m.draftRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, draft *domain.FollowupDraft) error {
			assert.Equal(t, "lead-1", draft.LeadID)
			assert.Contains(t, draft.Text, "Maya")
			assert.Contains(t, draft.Text, "checking in")
			return nil
		})

	draft, err := svc.CreateFollowupDraftIfNeeded(ctx, "org-1", "lead-1")
	require.NoError(t, err)
	require.NotNil(t, draft)
}

func TestAutomationService_CreateFollowupDraftIfNeeded_QuotedNotIdleEnough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAutomationService(t, ctrl)
	ctx := context.Background()

	// 30h of silence is past the NEW window but short of the QUOTED one
	idle := time.Now().UTC().Add(-30 * time.Hour)
	lead := &domain.Lead{
		ID:            "lead-1",
		OrgID:         "org-1",
		Title:         "Fence repair",
		Stage:         domain.LeadStageQuoted,
		LastMessageAt: &idle,
	}

	m.draftRepo.EXPECT().GetOpenByLead(ctx, "lead-1").Return(nil, nil)
	m.leadRepo.EXPECT().GetByID(ctx, "org-1", "lead-1").Return(lead, nil)

	draft, err := svc.CreateFollowupDraftIfNeeded(ctx, "org-1", "lead-1")
	assert.NoError(t, err)
	assert.Nil(t, draft)
}

func TestAutomationService_CreateRevivalDraft_ConcurrentSweepNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAutomationService(t, ctrl)
	ctx := context.Background()

	lead := &domain.Lead{ID: "lead-1", OrgID: "org-1", Title: "Fence repair"}

	m.draftRepo.EXPECT().GetOpenByLead(ctx, "lead-1").Return(nil, nil)
	m.leadRepo.EXPECT().GetByID(ctx, "org-1", "lead-1").Return(lead, nil)
	m.draftRepo.EXPECT().
		Create(ctx, gomock.Any()).
		Return(&domain.ErrAlreadyExists{Entity: "followup_draft", Key: "lead-1"})

	draft, err := svc.CreateRevivalDraft(ctx, "org-1", "lead-1")
	assert.NoError(t, err)
	assert.Nil(t, draft)
}

func TestAutomationService_GetDeadLeadsForRevival_Dedupes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAutomationService(t, ctrl)
	ctx := context.Background()

	leadA := &domain.LeadWithContact{Lead: domain.Lead{ID: "lead-a"}}
	leadB := &domain.LeadWithContact{Lead: domain.Lead{ID: "lead-b"}}
	leadC := &domain.LeadWithContact{Lead: domain.Lead{ID: "lead-c"}}

	m.leadRepo.EXPECT().
		ListLostSince(ctx, "org-1", gomock.Any()).
		Return([]*domain.LeadWithContact{leadA, leadB}, nil)
	m.leadRepo.EXPECT().
		ListInactiveBefore(ctx, "org-1", gomock.Any()).
		Return([]*domain.LeadWithContact{leadB, leadC}, nil)

	leads, err := svc.GetDeadLeadsForRevival(ctx, "org-1")
	require.NoError(t, err)
	require.Len(t, leads, 3)
	assert.Equal(t, "lead-a", leads[0].ID)
	assert.Equal(t, "lead-b", leads[1].ID)
	assert.Equal(t, "lead-c", leads[2].ID)
}
