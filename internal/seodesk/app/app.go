package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	httpapi "github.com/aussiebroadwan/seodesk/internal/seodesk/http"
	"github.com/aussiebroadwan/seodesk/internal/seodesk/jobs"
	"github.com/aussiebroadwan/seodesk/internal/seodesk/service"
	"github.com/aussiebroadwan/seodesk/internal/seodesk/store"
	"github.com/aussiebroadwan/seodesk/internal/seodesk/store/drivers/sqlite"
	"github.com/aussiebroadwan/seodesk/pkg/jwtx"
	"github.com/aussiebroadwan/seodesk/pkg/llm"
	"github.com/aussiebroadwan/seodesk/pkg/mailx"
	"github.com/aussiebroadwan/seodesk/pkg/scrape"
	"github.com/aussiebroadwan/seodesk/pkg/slogx"
)

// BuildVersion is overridden at build time via -ldflags.
var BuildVersion = "v0.1.0"

// Application encapsulates the seodesk service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db     store.Store
	keys   *AuthKeys
	mailer mailx.Mailer
	model  llm.Client
	queue  jobs.Queue
	redis  *redis.Client // nil unless the redis jobs backend is used

	// Services
	userService         *service.UserService
	inviteService       *service.InviteService
	memberService       *service.MemberService
	websiteService      *service.WebsiteService
	keywordService      *service.KeywordService
	articleService      *service.ArticleService
	housekeepingService *service.HousekeepingService
	jwksRefresher       *JWKSRefresher // nil in dev token mode

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "seodesk",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	ctx := context.Background()
	jwksClient := &http.Client{Timeout: 10 * time.Second}
	keys, err := InitAuthKeys(ctx, app.cfg, jwksClient, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize token keys: %w", err)
	}
	app.keys = keys
	if keys.DevSigner == nil {
		app.jwksRefresher = NewJWKSRefresher(keys.KeySet, cfg.JWKSURL, jwksClient, cfg.JWKSRefresh, app.logger)
	}

	if err := app.initMailer(ctx); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	if err := app.initJobs(ctx); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.model = llm.New(llm.Config{
		APIKey:  cfg.OpenAIKey,
		BaseURL: cfg.OpenAIBaseURL,
		Model:   cfg.OpenAIModel,
		Timeout: cfg.LLMTimeout,
	})
	if cfg.OpenAIKey == "" {
		app.logger.Warn("OPENAI_API_KEY not set - keyword analysis falls back to defaults and article generation fails")
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	if err := app.queue.Start(context.Background()); err != nil {
		return fmt.Errorf("failed to start job queue: %w", err)
	}
	app.housekeepingService.Start()
	if app.jwksRefresher != nil {
		app.jwksRefresher.Start()
	}

	app.logger.Info("seodesk starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down seodesk...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if app.jwksRefresher != nil {
		app.jwksRefresher.Stop()
	}
	app.housekeepingService.Stop()

	// Lets in-flight generations finish before the database goes away
	app.queue.Stop()
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Error("error closing redis", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("seodesk stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

func (app *Application) initMailer(ctx context.Context) error {
	switch app.cfg.MailProvider {
	case "ses":
		m, err := mailx.NewSESMailer(ctx, mailx.SESConfig{
			Region:          app.cfg.AWSRegion,
			AccessKeyID:     app.cfg.AWSAccessKeyID,
			SecretAccessKey: app.cfg.AWSSecretAccessKey,
			SessionToken:    app.cfg.AWSSessionToken,
			From:            app.cfg.MailFrom,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize ses mailer: %w", err)
		}
		app.mailer = m
		app.logger.Info("mail provider configured", "provider", "ses", "from", app.cfg.MailFrom)
	default:
		app.mailer = mailx.LogMailer{}
		app.logger.Info("mail provider configured", "provider", "log")
	}
	return nil
}

func (app *Application) initJobs(ctx context.Context) error {
	switch app.cfg.JobsBackend {
	case "redis":
		opts, err := redis.ParseURL(app.cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		app.redis = client
		app.queue = jobs.NewRedisQueue(client, jobs.RedisConfig{
			Stream:      app.cfg.JobsStream,
			Group:       app.cfg.JobsGroup,
			Workers:     app.cfg.JobsWorkers,
			MaxAttempts: app.cfg.JobsMaxAttempts,
		}, app.logger)
	default:
		app.queue = jobs.NewMemoryQueue(jobs.MemoryConfig{
			Workers:     app.cfg.JobsWorkers,
			QueueSize:   app.cfg.JobsQueueSize,
			MaxAttempts: app.cfg.JobsMaxAttempts,
			RetryDelay:  2 * time.Second,
		}, app.logger)
	}
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	access := &service.Access{Store: app.db}

	app.userService = &service.UserService{Store: app.db}
	app.inviteService = &service.InviteService{
		Store:  app.db,
		Access: access,
		Notifier: &service.InviteNotifier{
			Store:       app.db,
			Mailer:      app.mailer,
			FrontendURL: app.cfg.FrontendURL,
			Timeout:     service.DefaultNotifyTimeout,
		},
	}
	app.memberService = &service.MemberService{Store: app.db, Access: access}
	app.websiteService = &service.WebsiteService{
		Store:   app.db,
		Scraper: scrape.New(app.cfg.ScrapeTimeout),
	}
	app.keywordService = &service.KeywordService{Store: app.db, LLM: app.model, Jobs: app.queue}
	app.articleService = &service.ArticleService{Store: app.db, LLM: app.model, Jobs: app.queue}

	// Handlers must be registered before the queue starts
	app.keywordService.RegisterJobs(app.queue)
	app.articleService.RegisterJobs(app.queue)

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
		app.cfg.InviteRetention,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keys.KeySet,
		app.keys.Verifier,
		BuildVersion,
		app.db,
		app.queue,
		app.logger,
	)
	router.FrontendURL = app.cfg.FrontendURL
	if app.keys.DevSigner != nil {
		router.Dev = &httpapi.DevTokens{
			Signer:   app.keys.DevSigner,
			Issuer:   app.keys.Issuer,
			Audience: app.cfg.Audience,
			TTL:      jwtx.DefaultAccessTokenTTL,
		}
	}

	// Wire services to router
	router.UserService = app.userService
	router.InviteService = app.inviteService
	router.MemberService = app.memberService
	router.WebsiteService = app.websiteService
	router.KeywordService = app.keywordService
	router.ArticleService = app.articleService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
