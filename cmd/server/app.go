package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/nvoronina/adboard-api/internal/config"
	"github.com/nvoronina/adboard-api/internal/platform/postgres"
	"github.com/nvoronina/adboard-api/internal/service/auth"
	"github.com/nvoronina/adboard-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore store.UserStore
	adStore   store.AdStore

	// Password hashing
	hasher auth.PasswordHasher
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Initialize the password hasher per configuration
	hasher, err := newPasswordHasher(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize password hasher: %w", err)
	}
	app.hasher = hasher
	logger.Info("Password hasher initialized", "scheme", cfg.Auth.Hasher)

	// Initialize stores
	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.adStore = postgres.NewPostgresAdStore(db, logger)

	logger.Info("Application initialized successfully")
	return app, nil
}

// newPasswordHasher selects the hashing scheme from configuration.
// "legacy" reproduces the original deployment's stored values; "bcrypt"
// trades that compatibility for a modern per-record-salted scheme.
func newPasswordHasher(cfg config.AuthConfig) (auth.PasswordHasher, error) {
	switch cfg.Hasher {
	case "legacy":
		return auth.NewLegacyHasher(cfg.PasswordSalt), nil
	case "bcrypt":
		return auth.NewBcryptHasher(cfg.BcryptCost), nil
	default:
		return nil, fmt.Errorf("unknown password hasher: %q", cfg.Hasher)
	}
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
