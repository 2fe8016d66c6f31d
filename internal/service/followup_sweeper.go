package service

import (
	"context"
	"sync"
	"time"

	"github.com/converso/converso/internal/domain"
	"github.com/converso/converso/pkg/logger"
	"github.com/converso/converso/pkg/mailer"
)

// FollowupSweeper periodically drafts follow-ups for idle leads, drafts
// revival messages for dead leads and emails org owners about overdue
// follow-ups
type FollowupSweeper struct {
	orgRepo      domain.OrgRepository
	leadRepo     domain.LeadRepository
	followupRepo domain.FollowupRepository
	automation   domain.AutomationService
	mailer       mailer.Mailer
	frontendURL  string
	logger       logger.Logger
	interval     time.Duration
	stopChan     chan struct{}
	stoppedChan  chan struct{}
	mu           sync.Mutex
	running      bool
}

// NewFollowupSweeper creates a new follow-up sweeper
func NewFollowupSweeper(
	orgRepo domain.OrgRepository,
	leadRepo domain.LeadRepository,
	followupRepo domain.FollowupRepository,
	automation domain.AutomationService,
	m mailer.Mailer,
	frontendURL string,
	log logger.Logger,
	interval time.Duration,
) *FollowupSweeper {
	return &FollowupSweeper{
		orgRepo:      orgRepo,
		leadRepo:     leadRepo,
		followupRepo: followupRepo,
		automation:   automation,
		mailer:       m,
		frontendURL:  frontendURL,
		logger:       log,
		interval:     interval,
		stopChan:     make(chan struct{}),
		stoppedChan:  make(chan struct{}),
	}
}

// Start begins the periodic sweep
func (s *FollowupSweeper) Start(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		s.logger.Warn("Follow-up sweeper already running")
		return
	}
	s.running = true
	s.mu.Unlock()

	s.logger.WithField("interval", s.interval).Info("Starting follow-up sweeper")

	go s.run(ctx)
}

// Stop gracefully stops the sweeper
func (s *FollowupSweeper) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	s.logger.Info("Stopping follow-up sweeper...")
	close(s.stopChan)

	select {
	case <-s.stoppedChan:
		s.logger.Info("Follow-up sweeper stopped successfully")
	case <-time.After(5 * time.Second):
		s.logger.Warn("Follow-up sweeper stop timeout exceeded")
	}
}

func (s *FollowupSweeper) run(ctx context.Context) {
	defer close(s.stoppedChan)
	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// Sweep immediately on start
	s.Sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Follow-up sweeper context cancelled")
			return
		case <-s.stopChan:
			s.logger.Info("Follow-up sweeper received stop signal")
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// IsRunning returns whether the sweeper is currently running
func (s *FollowupSweeper) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Sweep runs one full pass over every org. A failing org never blocks
// the others.
func (s *FollowupSweeper) Sweep(ctx context.Context) {
	startTime := time.Now()

	orgs, err := s.orgRepo.List(ctx)
	if err != nil {
		s.logger.WithField("error", err.Error()).Error("Failed to list orgs for sweep")
		return
	}

	for _, org := range orgs {
		s.sweepOrg(ctx, org)
	}

	s.logger.WithFields(map[string]interface{}{
		"orgs":    len(orgs),
		"elapsed": time.Since(startTime).String(),
	}).Debug("Completed follow-up sweep")
}

func (s *FollowupSweeper) sweepOrg(ctx context.Context, org *domain.Org) {
	log := s.logger.WithField("org_id", org.ID)

	s.draftIdleFollowups(ctx, org.ID, log)
	s.draftRevivals(ctx, org.ID, log)
	s.notifyOverdue(ctx, org, log)
}

// draftIdleFollowups creates at most one open draft per idle NEW or
// QUOTED lead
func (s *FollowupSweeper) draftIdleFollowups(ctx context.Context, orgID string, log logger.Logger) {
	leads, err := s.leadRepo.ListByStages(ctx, orgID, []domain.LeadStage{domain.LeadStageNew, domain.LeadStageQuoted})
	if err != nil {
		log.WithField("error", err.Error()).Error("Failed to list open leads for draft sweep")
		return
	}

	for _, lead := range leads {
		draft, err := s.automation.CreateFollowupDraftIfNeeded(ctx, orgID, lead.ID)
		if err != nil {
			log.WithFields(map[string]interface{}{
				"lead_id": lead.ID,
				"error":   err.Error(),
			}).Error("Failed to draft follow-up")
			continue
		}
		if draft != nil {
			log.WithField("lead_id", lead.ID).Info("Drafted follow-up for idle lead")
		}
	}
}

// draftRevivals creates revival drafts for recently lost and
// long-inactive leads
func (s *FollowupSweeper) draftRevivals(ctx context.Context, orgID string, log logger.Logger) {
	leads, err := s.automation.GetDeadLeadsForRevival(ctx, orgID)
	if err != nil {
		log.WithField("error", err.Error()).Error("Failed to list dead leads for revival")
		return
	}

	for _, lead := range leads {
		draft, err := s.automation.CreateRevivalDraft(ctx, orgID, lead.ID)
		if err != nil {
			log.WithFields(map[string]interface{}{
				"lead_id": lead.ID,
				"error":   err.Error(),
			}).Error("Failed to draft revival")
			continue
		}
		if draft != nil {
			log.WithField("lead_id", lead.ID).Info("Drafted revival for dead lead")
		}
	}
}

// notifyOverdue emails the org owner one alert per overdue follow-up.
// Mail failure is logged, never fatal.
func (s *FollowupSweeper) notifyOverdue(ctx context.Context, org *domain.Org, log logger.Logger) {
	if org.OwnerEmail == "" {
		return
	}

	overdue, err := s.followupRepo.ListOverdue(ctx, org.ID)
	if err != nil {
		log.WithField("error", err.Error()).Error("Failed to list overdue follow-ups")
		return
	}

	for _, f := range overdue {
		leadURL := s.frontendURL + "/leads/" + f.LeadID
		if err := s.mailer.SendOverdueFollowupAlert(org.OwnerEmail, org.Name, f.LeadTitle, f.DueAt, leadURL); err != nil {
			log.WithFields(map[string]interface{}{
				"followup_id": f.ID,
				"error":       err.Error(),
			}).Error("Failed to send overdue follow-up alert")
		}
	}
}
