package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/sariops/sariops/config"
	"github.com/sariops/sariops/internal/database"
	"github.com/sariops/sariops/internal/domain"
	httpHandler "github.com/sariops/sariops/internal/http"
	"github.com/sariops/sariops/internal/repository"
	"github.com/sariops/sariops/internal/service"
	"github.com/sariops/sariops/pkg/cache"
	"github.com/sariops/sariops/pkg/logger"
	"github.com/sariops/sariops/pkg/mailer"
)

// sweepInterval is how often the background loop flushes due scheduled
// emails and evicts expired persistent cache rows.
const sweepInterval = time.Minute

// App encapsulates the application dependencies and configuration
type App struct {
	config *config.Config
	logger logger.Logger
	db     *sql.DB
	mailer mailer.Mailer
	mux    *http.ServeMux
	server *http.Server

	orderCache    *cache.MemoryCache
	locationCache *cache.MemoryCache
	sweepStop     chan struct{}

	// Repositories
	customerRepo domain.CustomerRepository
	templateRepo domain.EmailTemplateRepository
	logRepo      domain.EmailLogRepository
	tokenRepo    domain.ConfirmationTokenRepository
	zohoRepo     domain.ZohoTokenRepository
	kvRepo       domain.KVCacheRepository

	// Services
	customerService     domain.CustomerService
	syncService         domain.SyncService
	invoiceService      domain.InvoiceService
	notificationService domain.NotificationService
	rateLimitService    domain.RateLimitService
	locationService     domain.LocationService
	zohoClient          domain.ZohoClient
}

// AppOption defines a functional option for configuring the App
type AppOption func(*App)

// WithMockDB configures the app to use a pre-opened database
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
func WithLogger(l logger.Logger) AppOption {
	return func(a *App) {
		a.logger = l
	}
}

// NewApp creates a new application instance
func NewApp(cfg *config.Config, opts ...AppOption) *App {
	a := &App{
		config:    cfg,
		mux:       http.NewServeMux(),
		sweepStop: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = logger.NewLoggerWithLevel(cfg.LogLevel)
	}
	return a
}

// InitDB initializes the database connection and schema
func (a *App) InitDB() error {
	if a.db != nil {
		// Pre-opened connection (tests): still ensure the schema.
		return database.InitializeDatabase(a.db)
	}

	db, err := database.Connect(&a.config.Database)
	if err != nil {
		return err
	}
	a.db = db

	a.logger.WithField("database", a.config.Database.DBName).Info("Connected to database")
	return nil
}

// InitMailer initializes the outbound email transport. Without an API key
// the console mailer is used so local environments never send real mail.
func (a *App) InitMailer() error {
	if a.mailer != nil {
		return nil
	}

	if !a.config.EmailConfigured() {
		a.logger.Warn("Email API key not configured, using console mailer")
		a.mailer = mailer.NewConsoleMailer()
		return nil
	}

	a.mailer = mailer.NewHTTPMailer(&mailer.Config{
		APIKey:   a.config.Email.APIKey,
		Endpoint: a.config.Email.Endpoint,
	})
	return nil
}

// InitRepositories initializes all repositories
func (a *App) InitRepositories() error {
	if a.db == nil {
		return fmt.Errorf("database not initialized")
	}

	a.customerRepo = repository.NewCustomerRepository(a.db)
	a.templateRepo = repository.NewEmailTemplateRepository(a.db)
	a.logRepo = repository.NewEmailLogRepository(a.db)
	a.tokenRepo = repository.NewConfirmationTokenRepository(a.db)
	a.zohoRepo = repository.NewZohoTokenRepository(a.db)
	a.kvRepo = repository.NewKVCacheRepository(a.db)

	return nil
}

// InitServices initializes all application services
func (a *App) InitServices() error {
	httpClient := &http.Client{Timeout: 30 * time.Second}

	a.orderCache = cache.NewMemoryCache(sweepInterval)
	a.locationCache = cache.NewMemoryCache(time.Hour)

	a.zohoClient = service.NewZohoService(a.zohoRepo, httpClient, a.logger, a.config.Zoho)
	matcher := service.NewContactMatcherService(a.zohoClient, a.logger)

	a.customerService = service.NewCustomerService(a.customerRepo, a.logger)
	a.syncService = service.NewSyncService(a.customerRepo, matcher, a.zohoClient, a.logger)
	a.invoiceService = service.NewInvoiceService(a.zohoClient, a.orderCache, a.logger)
	a.rateLimitService = service.NewRateLimitService(a.logRepo, a.logger)
	a.notificationService = service.NewNotificationService(
		a.customerRepo,
		a.templateRepo,
		a.logRepo,
		a.tokenRepo,
		a.rateLimitService,
		a.mailer,
		a.logger,
		a.config.APIEndpoint,
		a.config.Email.FromEmail,
		a.config.Email.FromName,
	)
	a.locationService = service.NewLocationService(
		a.locationCache,
		a.kvRepo,
		httpClient,
		a.logger,
		a.config.PSGC.Endpoint,
	)

	if !a.config.ZohoConfigured() {
		a.logger.Warn("Zoho credentials not configured, sync and orders will report not connected")
	}

	return nil
}

// InitHandlers initializes all HTTP handlers and routes
func (a *App) InitHandlers() error {
	getJWTSecret := func() ([]byte, error) {
		if a.config.Auth.JWTSecret == "" {
			return nil, fmt.Errorf("jwt secret not configured")
		}
		return []byte(a.config.Auth.JWTSecret), nil
	}

	customerHandler := httpHandler.NewCustomerHandler(a.customerService, getJWTSecret, a.logger)
	syncHandler := httpHandler.NewSyncHandler(a.syncService, getJWTSecret, a.logger)
	orderHandler := httpHandler.NewOrderHandler(a.invoiceService, getJWTSecret, a.logger)
	templateHandler := httpHandler.NewTemplateHandler(a.templateRepo, getJWTSecret, a.logger)
	emailHandler := httpHandler.NewEmailHandler(a.notificationService, a.rateLimitService, a.logRepo, getJWTSecret, a.logger)
	locationHandler := httpHandler.NewLocationHandler(a.locationService, a.logger)
	confirmHandler := httpHandler.NewConfirmHandler(a.notificationService, a.logger)

	customerHandler.RegisterRoutes(a.mux)
	syncHandler.RegisterRoutes(a.mux)
	orderHandler.RegisterRoutes(a.mux)
	templateHandler.RegisterRoutes(a.mux)
	emailHandler.RegisterRoutes(a.mux)
	locationHandler.RegisterRoutes(a.mux)
	confirmHandler.RegisterRoutes(a.mux)

	a.mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"status":"ok","version":%q}`, a.config.Version)
	})

	return nil
}

// Initialize sets up all components of the application
func (a *App) Initialize() error {
	if err := a.InitDB(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := a.InitMailer(); err != nil {
		return fmt.Errorf("failed to initialize mailer: %w", err)
	}
	if err := a.InitRepositories(); err != nil {
		return fmt.Errorf("failed to initialize repositories: %w", err)
	}
	if err := a.InitServices(); err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}
	if err := a.InitHandlers(); err != nil {
		return fmt.Errorf("failed to initialize handlers: %w", err)
	}
	return nil
}

// Start starts the HTTP server and the background sweep loop. It blocks
// until the server stops.
func (a *App) Start() error {
	addr := fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port)
	a.server = &http.Server{
		Addr:         addr,
		Handler:      a.mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go a.sweepLoop()

	a.logger.WithField("addr", addr).Info("Starting HTTP server")

	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// sweepLoop periodically flushes due scheduled emails and evicts expired
// persistent cache rows.
func (a *App) sweepLoop() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-a.sweepStop:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), sweepInterval)

			now := time.Now().UTC()
			if sent, err := a.notificationService.ProcessScheduledEmails(ctx, now); err != nil {
				a.logger.WithField("error", err.Error()).Error("Scheduled email sweep failed")
			} else if sent > 0 {
				a.logger.WithField("sent", sent).Info("Flushed scheduled emails")
			}

			if err := a.kvRepo.DeleteExpired(ctx, now.Add(-domain.LocationCacheTTL)); err != nil {
				a.logger.WithField("error", err.Error()).Warn("Persistent cache eviction failed")
			}

			cancel()
		}
	}
}

// Shutdown gracefully shuts down the server and releases resources.
func (a *App) Shutdown(ctx context.Context) error {
	close(a.sweepStop)

	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
	}

	if a.orderCache != nil {
		a.orderCache.Stop()
	}
	if a.locationCache != nil {
		a.locationCache.Stop()
	}

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			return fmt.Errorf("database close error: %w", err)
		}
	}

	a.logger.Info("Shutdown complete")
	return nil
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
