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

	httpapi "github.com/spano-fitness/spano/internal/fitness/http"
	"github.com/spano-fitness/spano/internal/fitness/llm"
	"github.com/spano-fitness/spano/internal/fitness/service"
	"github.com/spano-fitness/spano/internal/fitness/store"
	"github.com/spano-fitness/spano/internal/fitness/store/drivers/sqlite"
	"github.com/spano-fitness/spano/pkg/cryptox"
	"github.com/spano-fitness/spano/pkg/jwtx"
	"github.com/spano-fitness/spano/pkg/slogx"
)

// BuildVersion is overridden at build time with -ldflags "-X ...app.BuildVersion=...".
var BuildVersion = "v0.1.0"

// Application encapsulates the fitness service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db        *sqlite.Store
	completer llm.Completer

	tokenService     *service.TokenService
	sessions         *service.SessionResolver
	userService      *service.UserService
	mealService      *service.MealService
	nutrition        *service.NutritionEngine
	webhookService   *service.WebhookService
	assistantService *service.AssistantService
	bootstrapService *service.BootstrapService

	server *http.Server
	router *httpapi.Router
}

// NewLogger builds the process logger from cfg.
func NewLogger(cfg Config) *slog.Logger {
	return slogx.New(slogx.Config{
		Service: "spano",
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})
}

// New creates a new Application with every dependency initialised, the
// schema migrated and the default accounts in place.
func New(ctx context.Context, cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &Application{
		cfg:    cfg,
		logger: NewLogger(cfg),
	}

	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initServices(ctx); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	bootCtx := slogx.WithContext(ctx, app.logger)
	if err := app.db.WithConn(bootCtx, func(c store.Conn) error {
		return app.bootstrapService.EnsureDefaultAccounts(bootCtx, c)
	}); err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to create default accounts: %w", err)
	}

	app.initHTTP()

	return app, nil
}

// Handler exposes the fully wired router, mainly for tests.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("spano starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = app.db.Close()
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

// Shutdown drains in-flight requests, then closes the database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down spano...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("spano stopped")
	return nil
}

// Close releases resources without a running server. Used after New when Run
// is never called.
func (app *Application) Close() error {
	return app.db.Close()
}

func (app *Application) initDatabase() error {
	db, err := OpenStore(app.cfg)
	if err != nil {
		return err
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "file", app.cfg.DatabaseFile)
	return nil
}

// OpenStore opens the configured SQLite database without migrating it.
func OpenStore(cfg Config) (*sqlite.Store, error) {
	db, err := sqlite.NewStore(sqlite.DSN(cfg.DatabaseFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if cfg.DatabaseMaxConns > 0 {
		db.SetMaxOpenConns(cfg.DatabaseMaxConns)
	}
	return db, nil
}

func (app *Application) initServices(ctx context.Context) error {
	secret := []byte(app.cfg.SecretKey)
	signer, err := jwtx.NewSignerHMAC(app.cfg.Algorithm, secret)
	if err != nil {
		return fmt.Errorf("failed to initialize token signer: %w", err)
	}
	verifier, err := jwtx.NewVerifierHMAC(app.cfg.Algorithm, secret, app.cfg.Issuer)
	if err != nil {
		return fmt.Errorf("failed to initialize token verifier: %w", err)
	}

	app.tokenService = &service.TokenService{
		Signer:   signer,
		Verifier: verifier,
		Issuer:   app.cfg.Issuer,
		TTL:      app.cfg.TokenTTL,
	}
	app.sessions = &service.SessionResolver{Tokens: app.tokenService}
	app.userService = &service.UserService{}
	app.mealService = &service.MealService{}
	app.nutrition = &service.NutritionEngine{
		OnUnmatchedItem: func(item string) {
			app.logger.Debug("food item not in composition table", "item", item)
		},
		OnUnknownGender: func(gender string) {
			app.logger.Debug("no BMR formula for gender", "gender", gender)
		},
	}
	app.webhookService = &service.WebhookService{Meals: app.mealService}

	app.completer = llm.Disabled{}
	if app.cfg.GeminiAPIKey != "" {
		g, err := llm.NewGemini(ctx, app.cfg.GeminiAPIKey, app.cfg.GeminiModel)
		if err != nil {
			return fmt.Errorf("failed to initialize language model: %w", err)
		}
		app.completer = g
		app.logger.Info("assistant enabled", "model", g.Model())
	} else {
		app.logger.Warn("GEMINI_API_KEY not set, assistant disabled")
	}
	app.assistantService = &service.AssistantService{
		LLM:     app.completer,
		Meals:   app.mealService,
		Timeout: app.cfg.AssistantTimeout,
	}

	app.bootstrapService = &service.BootstrapService{
		Users: app.userService,
		Accounts: []service.DefaultAccount{
			service.DefaultUserAccount(app.cfg.DefaultUserName, app.cfg.DefaultUserPassword),
			service.DefaultAdminAccount(app.cfg.DefaultAdminName, app.cfg.DefaultAdminPassword),
		},
	}
	return nil
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(app.db, BuildVersion, app.logger)

	router.SecureCookies = app.cfg.CookieSecure
	router.WebhookSecret = app.cfg.WebhookSecret
	router.AssistantEnabled = app.cfg.GeminiAPIKey != ""

	router.Sessions = app.sessions
	router.TokenService = app.tokenService
	router.UserService = app.userService
	router.MealService = app.mealService
	router.Nutrition = app.nutrition
	router.WebhookService = app.webhookService
	router.AssistantService = app.assistantService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
		// Leaves room for a slow model call on /ai/ask.
		WriteTimeout: app.cfg.AssistantTimeout + 10*time.Second,
	}
}
