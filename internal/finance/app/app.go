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

	httpapi "github.com/Leonelvm1/FinanceApp/internal/finance/http"
	"github.com/Leonelvm1/FinanceApp/internal/finance/service"
	"github.com/Leonelvm1/FinanceApp/internal/finance/store"
	"github.com/Leonelvm1/FinanceApp/internal/finance/store/drivers/sqlite"
	"github.com/Leonelvm1/FinanceApp/pkg/cryptox"
	"github.com/Leonelvm1/FinanceApp/pkg/jwtx"
	"github.com/Leonelvm1/FinanceApp/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the finance service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db store.Store

	tokenService    *service.TokenService
	authService     *service.AuthService
	userService     *service.UserService
	categoryService *service.CategoryService
	expenseService  *service.ExpenseService
	incomeService   *service.IncomeService
	ledgerService   *service.LedgerService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized. The
// signing secret is the only hard requirement; a missing secret is a
// startup failure, never a runtime surprise.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "finance-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if cfg.SigningSecret == "" {
		return nil, errors.New("FINANCE_SIGNING_SECRET is required")
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initServices(); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.initHTTP()

	// Global default categories exist before the first request.
	if err := app.categoryService.SeedDefaults(context.Background()); err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to seed default categories: %w", err)
	}

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("finance service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

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

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down finance service...")

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

	app.logger.Info("finance service stopped")
	return nil
}

func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
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

func (app *Application) initServices() error {
	hs, err := jwtx.NewHS256([]byte(app.cfg.SigningSecret))
	if err != nil {
		return fmt.Errorf("failed to initialize token signer: %w", err)
	}

	app.tokenService = &service.TokenService{
		Signer:   hs,
		Verifier: hs,
		Issuer:   app.cfg.Issuer,
		TTL:      app.cfg.TokenTTL,
	}

	app.authService = &service.AuthService{Store: app.db, Tokens: app.tokenService}
	app.userService = &service.UserService{Store: app.db}
	app.categoryService = &service.CategoryService{Store: app.db}
	app.expenseService = &service.ExpenseService{Store: app.db, Categories: app.categoryService}
	app.incomeService = &service.IncomeService{Store: app.db}
	app.ledgerService = &service.LedgerService{Store: app.db}

	return nil
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger)

	router.AuthService = app.authService
	router.UserService = app.userService
	router.CategoryService = app.categoryService
	router.ExpenseService = app.expenseService
	router.IncomeService = app.incomeService
	router.LedgerService = app.ledgerService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
