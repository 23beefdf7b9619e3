// Package app wires configuration, storage, authentication and the HTTP
// layer into one explicitly constructed dependency graph.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dangerclosesec/roofdesk/internal/auth"
	"github.com/dangerclosesec/roofdesk/internal/config"
	"github.com/dangerclosesec/roofdesk/internal/email"
	"github.com/dangerclosesec/roofdesk/internal/fixtures"
	"github.com/dangerclosesec/roofdesk/internal/handler"
	"github.com/dangerclosesec/roofdesk/internal/repository"
	"github.com/dangerclosesec/roofdesk/internal/service"
	"github.com/dangerclosesec/roofdesk/internal/validation"
	"gorm.io/gorm"
)

const sessionCleanupInterval = time.Minute

type App struct {
	Config        *config.Config
	Logger        *slog.Logger
	Store         repository.Store
	Authenticator auth.Authenticator
	Services      handler.Services
	Handler       http.Handler

	closers []func() error
}

// New builds the application for cfg. Background work started here stops
// when ctx is cancelled; Close releases connections.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	a := &App{Config: cfg, Logger: logger}

	sessions, err := a.sessionStore(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	switch cfg.Backend {
	case config.BackendFixture:
		ds := fixtures.Dataset()
		a.Store = repository.NewMemoryStoreFrom(nil, ds)
		a.Authenticator = auth.NewFixtureAuthenticator(ds.Users, sessions, cfg.Session.TTL)

	case config.BackendStore:
		db, err := repository.Open(cfg)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("setting up database: %w", err)
		}
		a.closers = append(a.closers, func() error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		})
		if err := a.useDatabase(ctx, db, sessions); err != nil {
			a.Close()
			return nil, err
		}

	default:
		a.Close()
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}

	if err := a.wire(); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

// useDatabase runs the store backend on db: migrations, optional seeding
// and JWT sessions.
func (a *App) useDatabase(ctx context.Context, db *gorm.DB, sessions auth.SessionStore) error {
	store := repository.NewGormStore(db, repository.NewClock(repository.Precision(a.Config.Database.Driver)))
	if err := store.Migrate(ctx); err != nil {
		return err
	}

	if a.Config.SeedOnStart {
		if _, err := repository.Seed(ctx, store, fixtures.Dataset()); err != nil {
			return fmt.Errorf("seeding store: %w", err)
		}
	}

	tokens := auth.NewTokenManager(a.Config.JWT.Secret, a.Config.JWT.ExpiryPeriod)
	a.Store = store
	a.Authenticator = auth.NewStoreAuthenticator(store, tokens, sessions)
	return nil
}

func (a *App) sessionStore(ctx context.Context) (auth.SessionStore, error) {
	switch a.Config.Session.Store {
	case "redis":
		client, err := auth.OpenRedis(a.Config)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client.Close)
		return auth.NewRedisSessionStore(client), nil

	default:
		sessions := auth.NewMemorySessionStore()
		go sessions.RunCleanup(ctx, sessionCleanupInterval)
		return sessions, nil
	}
}

func (a *App) wire() error {
	a.Authenticator = auth.WithAPITokens(a.Authenticator, a.Store, a.Store)

	mailer, err := email.NewEmailService(a.Config, email.Provider(a.Config.Email.Provider))
	if err != nil {
		return fmt.Errorf("initializing email service: %w", err)
	}

	v := validation.New()
	orgs := service.NewOrganizationService(a.Store, v)
	users := service.NewUserService(a.Store, v)
	reports := service.NewReportService(a.Store, v)
	quotes := service.NewQuoteService(a.Store, v)

	a.Services = handler.Services{
		Auth:          service.NewAuthService(a.Authenticator, v),
		Organizations: orgs,
		Departments:   service.NewDepartmentService(a.Store, v),
		Users:         users,
		Reports:       reports,
		Quotes:        quotes,
		Admin:         service.NewAdminService(a.Store, v),
		Dashboard:     service.NewDashboardService(orgs, users, reports, quotes),
		Mail:          service.NewMailService(a.Store, mailer, a.Config.Email.FromName, v),
	}

	a.Handler = handler.NewRouter(a.Services, a.Authenticator, handler.RouterOptions{
		Logger:         a.Logger,
		AllowedOrigins: a.Config.Server.AllowedOrigins,
		RequestTimeout: a.Config.Server.RequestTimeout,
	})
	return nil
}

// Close releases every connection opened by New, newest first.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
