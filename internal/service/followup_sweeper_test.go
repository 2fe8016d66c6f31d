package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/converso/converso/internal/domain"
	"github.com/converso/converso/internal/domain/mocks"
	"github.com/converso/converso/pkg/logger"
)

type sweeperMocks struct {
	orgRepo      *mocks.MockOrgRepository
	leadRepo     *mocks.MockLeadRepository
	followupRepo *mocks.MockFollowupRepository
	automation   *mocks.MockAutomationService
	mailer       *mocks.MockMailer
}

func newTestSweeper(t *testing.T, ctrl *gomock.Controller) (*FollowupSweeper, *sweeperMocks) {
	m := &sweeperMocks{
		orgRepo:      mocks.NewMockOrgRepository(ctrl),
		leadRepo:     mocks.NewMockLeadRepository(ctrl),
		followupRepo: mocks.NewMockFollowupRepository(ctrl),
		automation:   mocks.NewMockAutomationService(ctrl),
		mailer:       mocks.NewMockMailer(ctrl),
	}
	sweeper := NewFollowupSweeper(
		m.orgRepo,
		m.leadRepo,
		m.followupRepo,
		m.automation,
		m.mailer,
		"https://app.converso.test",
		logger.NewMockLogger(t),
		15*time.Minute,
	)
	return sweeper, m
}

func TestFollowupSweeper_Sweep_DraftsAndNotifies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sweeper, m := newTestSweeper(t, ctrl)
	ctx := context.Background()

	org := &domain.Org{ID: "org-1", Name: "Acme Gardens", OwnerEmail: "owner@acme.test"}
	openStages := []domain.LeadStage{domain.LeadStageNew, domain.LeadStageQuoted}
	idleLead := &domain.LeadWithContact{Lead: domain.Lead{ID: "lead-1", Stage: domain.LeadStageNew}}
	deadLead := &domain.LeadWithContact{Lead: domain.Lead{ID: "lead-2", Stage: domain.LeadStageLost}}
	dueAt := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	overdue := []*domain.OverdueFollowup{
		{Followup: domain.Followup{ID: "fu-1", LeadID: "lead-3", DueAt: dueAt}, LeadTitle: "Deck build", OrgID: "org-1"},
	}

	m.orgRepo.EXPECT().List(ctx).Return([]*domain.Org{org}, nil)
	m.leadRepo.EXPECT().
		ListByStages(ctx, "org-1", openStages).
		Return([]*domain.LeadWithContact{idleLead}, nil)
	m.automation.EXPECT().
		CreateFollowupDraftIfNeeded(ctx, "org-1", "lead-1").
		Return(&domain.FollowupDraft{ID: "draft-1"}, nil)
	m.automation.EXPECT().
		GetDeadLeadsForRevival(ctx, "org-1").
		Return([]*domain.LeadWithContact{deadLead}, nil)
	m.automation.EXPECT().
		CreateRevivalDraft(ctx, "org-1", "lead-2").
		Return(&domain.FollowupDraft{ID: "draft-2"}, nil)
	m.followupRepo.EXPECT().ListOverdue(ctx, "org-1").Return(overdue, nil)
	m.mailer.EXPECT().
		SendOverdueFollowupAlert("owner@acme.test", "Acme Gardens", "Deck build", dueAt, "https://app.converso.test/leads/lead-3").
		Return(nil)

	sweeper.Sweep(ctx)
}

func TestFollowupSweeper_Sweep_MailFailureNeverFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sweeper, m := newTestSweeper(t, ctrl)
	ctx := context.Background()

	org := &domain.Org{ID: "org-1", Name: "Acme Gardens", OwnerEmail: "owner@acme.test"}
	dueAt := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	overdue := []*domain.OverdueFollowup{
		{Followup: domain.Followup{ID: "fu-1", LeadID: "lead-1", DueAt: dueAt}, LeadTitle: "Fence repair", OrgID: "org-1"},
		{Followup: domain.Followup{ID: "fu-2", LeadID: "lead-2", DueAt: dueAt.Add(time.Hour)}, LeadTitle: "Deck build", OrgID: "org-1"},
	}

	m.orgRepo.EXPECT().List(ctx).Return([]*domain.Org{org}, nil)
	m.leadRepo.EXPECT().ListByStages(ctx, "org-1", gomock.Any()).Return(nil, nil)
	m.automation.EXPECT().GetDeadLeadsForRevival(ctx, "org-1").Return(nil, nil)
	m.followupRepo.EXPECT().ListOverdue(ctx, "org-1").Return(overdue, nil)

	// First alert fails; the second must still go out
	m.mailer.EXPECT().
		SendOverdueFollowupAlert("owner@acme.test", "Acme Gardens", "Fence repair", dueAt, gomock.Any()).
		Return(errors.New("smtp connection refused"))
	m.mailer.EXPECT().
		SendOverdueFollowupAlert("owner@acme.test", "Acme Gardens", "Deck build", dueAt.Add(time.Hour), gomock.Any()).
		Return(nil)

	sweeper.Sweep(ctx)
}

func TestFollowupSweeper_Sweep_NoOwnerEmailSkipsAlerts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sweeper, m := newTestSweeper(t, ctrl)
	ctx := context.Background()

	org := &domain.Org{ID: "org-1", Name: "Acme Gardens"}

	m.orgRepo.EXPECT().List(ctx).Return([]*domain.Org{org}, nil)
	m.leadRepo.EXPECT().ListByStages(ctx, "org-1", gomock.Any()).Return(nil, nil)
	m.automation.EXPECT().GetDeadLeadsForRevival(ctx, "org-1").Return(nil, nil)

	sweeper.Sweep(ctx)
}

func TestFollowupSweeper_StartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sweeper, m := newTestSweeper(t, ctrl)

	m.orgRepo.EXPECT().List(gomock.Any()).Return(nil, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sweeper.Start(ctx)
	assert.True(t, sweeper.IsRunning())

	time.Sleep(50 * time.Millisecond)
	sweeper.Stop()
	assert.False(t, sweeper.IsRunning())

	// Stopping twice is a no-op
	sweeper.Stop()
}
