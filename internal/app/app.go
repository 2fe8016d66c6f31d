package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/converso/converso/config"
	"github.com/converso/converso/internal/database"
	"github.com/converso/converso/internal/domain"
	httpHandler "github.com/converso/converso/internal/http"
	"github.com/converso/converso/internal/http/middleware"
	"github.com/converso/converso/internal/queue"
	"github.com/converso/converso/internal/repository"
	"github.com/converso/converso/internal/service"
	"github.com/converso/converso/pkg/logger"
	"github.com/converso/converso/pkg/mailer"
)

// App encapsulates the application dependencies and configuration
type App struct {
	config *config.Config
	logger logger.Logger
	db     *sql.DB
	mailer mailer.Mailer

	// Repositories
	orgRepo           domain.OrgRepository
	chatAccountRepo   domain.ChatAccountRepository
	contactRepo       domain.ContactRepository
	conversationRepo  domain.ConversationRepository
	messageRepo       domain.MessageRepository
	leadRepo          domain.LeadRepository
	quoteRepo         domain.QuoteRepository
	followupRepo      domain.FollowupRepository
	followupDraftRepo domain.FollowupDraftRepository
	workOrderRepo     domain.WorkOrderRepository
	jobQueueRepo      domain.JobQueueRepository

	// Queue
	jobQueue *queue.Client

	// Services
	sender            domain.MessageSender
	automationService *service.AutomationService
	messagingService  *service.MessagingService
	messageProcessor  *service.MessageProcessor
	todayQueueService *service.TodayQueueService
	leadService       *service.LeadService
	quoteService      *service.QuoteService
	followupService   *service.FollowupService
	contactService    *service.ContactService
	orgService        *service.OrgService
	sweeper           *service.FollowupSweeper

	// HTTP
	mux    *http.ServeMux
	server *http.Server
}

// AppOption defines a functional option for configuring the App
type AppOption func(*App)

// WithMockDB configures the app to use a mock database
func WithMockDB(db *sql.DB) AppOption {
	return func(a *App) {
		a.db = db
	}
}

// WithMockMailer configures the app to use a mock mailer
func WithMockMailer(m mailer.Mailer) AppOption {
	return func(a *App) {
		a.mailer = m
	}
}

// WithLogger sets a custom logger
func WithLogger(log logger.Logger) AppOption {
	return func(a *App) {
		a.logger = log
	}
}

// NewApp creates a new application instance
func NewApp(cfg *config.Config, opts ...AppOption) *App {
	app := &App{
		config: cfg,
		logger: logger.NewLoggerWithLevel(cfg.LogLevel),
		mux:    http.NewServeMux(),
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// InitDB connects to the database and creates the schema on first boot
func (a *App) InitDB() error {
	// Skip if a mock database was injected
	if a.db != nil {
		return nil
	}

	a.logger.WithFields(map[string]interface{}{
		"host":    a.config.Database.Host,
		"port":    a.config.Database.Port,
		"dbname":  a.config.Database.DBName,
		"sslmode": a.config.Database.SSLMode,
	}).Info("Connecting to database")

	db, err := database.Connect(&a.config.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.InitializeDatabase(db, a.config.DefaultOrgName, a.config.DefaultOrgEmail); err != nil {
		db.Close()
		return fmt.Errorf("failed to initialize database schema: %w", err)
	}

	a.db = db
	return nil
}

// InitMailer initializes the mailer used for overdue follow-up alerts
func (a *App) InitMailer() error {
	// Skip if mailer already set (e.g., by mock)
	if a.mailer != nil {
		return nil
	}

	cfg := &mailer.Config{
		SMTPHost:     a.config.SMTP.Host,
		SMTPPort:     a.config.SMTP.Port,
		SMTPUsername: a.config.SMTP.Username,
		SMTPPassword: a.config.SMTP.Password,
		FromEmail:    a.config.SMTP.FromEmail,
		FromName:     a.config.SMTP.FromName,
	}

	if a.config.IsDevelopment() {
		a.mailer = mailer.NewTestSMTPMailer(cfg)
		a.logger.Info("Using test mailer for development")
	} else {
		a.mailer = mailer.NewSMTPMailer(cfg)
		a.logger.Info("Using SMTP mailer for production")
	}

	return nil
}

// InitRepositories initializes all repositories
func (a *App) InitRepositories() error {
	if a.db == nil {
		return fmt.Errorf("database must be initialized before repositories")
	}

	a.orgRepo = repository.NewOrgRepository(a.db)
	a.chatAccountRepo = repository.NewChatAccountRepository(a.db)
	a.contactRepo = repository.NewContactRepository(a.db)
	a.conversationRepo = repository.NewConversationRepository(a.db)
	a.messageRepo = repository.NewMessageRepository(a.db)
	a.leadRepo = repository.NewLeadRepository(a.db)
	a.quoteRepo = repository.NewQuoteRepository(a.db)
	a.followupRepo = repository.NewFollowupRepository(a.db)
	a.followupDraftRepo = repository.NewFollowupDraftRepository(a.db)
	a.workOrderRepo = repository.NewWorkOrderRepository(a.db)
	a.jobQueueRepo = repository.NewJobQueueRepository(a.db)

	return nil
}

// InitQueue builds the job queue client from the configured backends.
// In auto mode the postgres backend comes first so the memory backend
// only takes jobs when the database rejects them.
func (a *App) InitQueue() error {
	if a.jobQueueRepo == nil {
		return fmt.Errorf("repositories must be initialized before the queue")
	}

	qcfg := a.config.Queue

	var backends []queue.Backend
	switch qcfg.Type {
	case "postgres":
		backends = append(backends, queue.NewPostgresBackend(a.jobQueueRepo, a.logger, qcfg.Concurrency, qcfg.PollInterval))
	case "memory":
		backends = append(backends, queue.NewMemoryBackend(a.logger, qcfg.Concurrency))
	case "auto":
		backends = append(backends,
			queue.NewPostgresBackend(a.jobQueueRepo, a.logger, qcfg.Concurrency, qcfg.PollInterval),
			queue.NewMemoryBackend(a.logger, qcfg.Concurrency),
		)
	default:
		return fmt.Errorf("unknown queue type %q", qcfg.Type)
	}

	a.jobQueue = queue.NewClient(a.logger, backends...)
	a.logger.WithField("queue_type", qcfg.Type).Info("Job queue initialized")

	return nil
}

// InitServices initializes all application services
func (a *App) InitServices() error {
	a.sender = service.NewTwilioSender(a.chatAccountRepo, a.config.Twilio, a.logger)

	a.automationService = service.NewAutomationService(
		a.leadRepo,
		a.contactRepo,
		a.conversationRepo,
		a.messageRepo,
		a.quoteRepo,
		a.workOrderRepo,
		a.followupDraftRepo,
		a.logger,
	)

	a.messagingService = service.NewMessagingService(
		a.jobQueue,
		a.chatAccountRepo,
		a.conversationRepo,
		a.contactRepo,
		a.messageRepo,
		a.leadRepo,
		a.automationService,
		a.sender,
		a.logger,
	)

	a.messageProcessor = service.NewMessageProcessor(
		a.contactRepo,
		a.conversationRepo,
		a.messageRepo,
		a.leadRepo,
		a.automationService,
		a.logger,
	)
	a.jobQueue.Subscribe(domain.TopicInboundMessages, a.messageProcessor.HandleJob)

	a.todayQueueService = service.NewTodayQueueService(
		a.followupRepo,
		a.leadRepo,
		a.quoteRepo,
		a.logger,
	)

	a.leadService = service.NewLeadService(a.leadRepo, a.logger)

	a.quoteService = service.NewQuoteService(
		a.quoteRepo,
		a.leadRepo,
		a.contactRepo,
		a.conversationRepo,
		a.messageRepo,
		a.sender,
		a.config.FrontendURL,
		a.logger,
	)

	a.followupService = service.NewFollowupService(a.followupRepo, a.leadRepo, a.logger)
	a.contactService = service.NewContactService(a.contactRepo, a.logger)
	a.orgService = service.NewOrgService(a.orgRepo, a.chatAccountRepo, a.logger)

	if a.config.Sweeper.Enabled {
		a.sweeper = service.NewFollowupSweeper(
			a.orgRepo,
			a.leadRepo,
			a.followupRepo,
			a.automationService,
			a.mailer,
			a.config.FrontendURL,
			a.logger,
			a.config.Sweeper.Interval,
		)
	}

	return nil
}

// InitHandlers initializes all HTTP handlers and routes
func (a *App) InitHandlers() error {
	// Create a new ServeMux to avoid route conflicts on restart
	a.mux = http.NewServeMux()

	secretKey := a.config.SecretKey

	webhookHandler := httpHandler.NewWebhookHandler(a.messagingService, a.config.Twilio, a.config.APIEndpoint, a.logger)
	automationHandler := httpHandler.NewAutomationHandler(a.todayQueueService, secretKey, a.logger)
	leadHandler := httpHandler.NewLeadHandler(a.leadService, secretKey, a.logger)
	quoteHandler := httpHandler.NewQuoteHandler(a.quoteService, secretKey, a.logger)
	followupHandler := httpHandler.NewFollowupHandler(a.followupService, secretKey, a.logger)
	contactHandler := httpHandler.NewContactHandler(a.contactService, secretKey, a.logger)
	orgHandler := httpHandler.NewOrgHandler(a.orgService, secretKey, a.logger)
	conversationHandler := httpHandler.NewConversationHandler(a.messagingService, secretKey, a.logger)

	webhookHandler.RegisterRoutes(a.mux)
	automationHandler.RegisterRoutes(a.mux)
	leadHandler.RegisterRoutes(a.mux)
	quoteHandler.RegisterRoutes(a.mux)
	followupHandler.RegisterRoutes(a.mux)
	contactHandler.RegisterRoutes(a.mux)
	orgHandler.RegisterRoutes(a.mux)
	conversationHandler.RegisterRoutes(a.mux)

	return nil
}

// Initialize sets up all components of the application
func (a *App) Initialize() error {
	a.logger.WithField("version", a.config.Version).Info("Starting Converso")

	if err := a.InitDB(); err != nil {
		return err
	}

	if err := a.InitMailer(); err != nil {
		return err
	}

	if err := a.InitRepositories(); err != nil {
		return err
	}

	if err := a.InitQueue(); err != nil {
		return err
	}

	if err := a.InitServices(); err != nil {
		return err
	}

	if err := a.InitHandlers(); err != nil {
		return err
	}

	a.logger.Info("Application successfully initialized")
	return nil
}

// Start launches the queue workers, the sweeper and the HTTP server.
// Blocks until the server stops.
func (a *App) Start() error {
	ctx := context.Background()

	if err := a.jobQueue.Start(ctx); err != nil {
		return fmt.Errorf("failed to start job queue: %w", err)
	}

	if a.sweeper != nil {
		a.sweeper.Start(ctx)
	}

	var handler http.Handler = a.mux
	handler = middleware.CORSMiddleware(handler)

	addr := fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port)
	a.logger.WithField("address", addr).
		WithField("api_endpoint", a.config.APIEndpoint).
		Info("Server starting")

	a.server = &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return a.server.ListenAndServe()
}

// Shutdown gracefully stops the server, the sweeper, the queue workers
// and the database connection, in that order, so in-flight requests and
// jobs get a chance to finish.
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Starting graceful shutdown")

	var shutdownErr error

	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			a.logger.WithField("error", err.Error()).Error("Failed to shut down HTTP server")
			shutdownErr = err
		}
	}

	if a.sweeper != nil {
		a.sweeper.Stop()
	}

	if a.jobQueue != nil {
		if err := a.jobQueue.Stop(ctx); err != nil {
			a.logger.WithField("error", err.Error()).Error("Failed to stop job queue")
			if shutdownErr == nil {
				shutdownErr = err
			}
		}
	}

	if a.db != nil {
		a.logger.Info("Closing database connection")
		if err := a.db.Close(); err != nil {
			a.logger.WithField("error", err.Error()).Error("Failed to close database connection")
			if shutdownErr == nil {
				shutdownErr = err
			}
		}
	}

	if shutdownErr == nil {
		a.logger.Info("Graceful shutdown completed")
	}
	return shutdownErr
}

// GetConfig returns the app's configuration
func (a *App) GetConfig() *config.Config {
	return a.config
}

// GetLogger returns the app's logger
func (a *App) GetLogger() logger.Logger {
	return a.logger
}

// GetMux returns the app's HTTP multiplexer
func (a *App) GetMux() *http.ServeMux {
	return a.mux
}

// GetDB returns the app's database connection
func (a *App) GetDB() *sql.DB {
	return a.db
}

// GetMailer returns the app's mailer
func (a *App) GetMailer() mailer.Mailer {
	return a.mailer
}
