package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/nvoronina/adboard-api/internal/domain"
	"github.com/nvoronina/adboard-api/internal/platform/logger"
	"github.com/nvoronina/adboard-api/internal/store"
)

// PostgresAdStore implements the store.AdStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAdStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAdStore creates a new PostgreSQL implementation of the AdStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresAdStore(db store.DBTX, logger *slog.Logger) *PostgresAdStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAdStore{
		db:     db,
		logger: logger.With(slog.String("component", "ad_store")),
	}
}

// Ensure PostgresAdStore implements store.AdStore interface
var _ store.AdStore = (*PostgresAdStore)(nil)

// GetByID implements store.AdStore.GetByID
// It retrieves an ad by its unique ID.
// Returns store.ErrAdNotFound if the ad does not exist.
func (s *PostgresAdStore) GetByID(ctx context.Context, id int64) (*domain.Ad, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, description, created_at, user_id
		FROM ads
		WHERE id = $1
	`

	var ad domain.Ad
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&ad.ID,
		&ad.Title,
		&ad.Description,
		&ad.CreatedAt,
		&ad.UserID,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("ad not found", slog.Int64("ad_id", id))
			return nil, store.ErrAdNotFound
		}
		log.Error("failed to get ad by ID",
			slog.String("error", err.Error()),
			slog.Int64("ad_id", id))
		return nil, MapError(err)
	}

	return &ad, nil
}

// Create implements store.AdStore.Create
// It saves a new ad to the database and fills in the assigned ID.
// Returns store.ErrBadLuck if the ad's user_id does not reference an
// existing user (foreign key violation).
func (s *PostgresAdStore) Create(ctx context.Context, ad *domain.Ad) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := ad.Validate(); err != nil {
		log.Warn("ad validation failed during create",
			slog.String("error", err.Error()),
			slog.String("title", ad.Title))
		return err
	}

	query := `
		INSERT INTO ads (title, description, created_at, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		ad.Title,
		ad.Description,
		ad.CreatedAt,
		ad.UserID,
	).Scan(&ad.ID)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during ad creation",
				slog.Int64("user_id", ad.UserID))
			return MapError(err)
		}
		log.Error("failed to create ad",
			slog.String("error", err.Error()),
			slog.String("title", ad.Title),
			slog.Int64("user_id", ad.UserID))
		return MapError(err)
	}

	log.Info("ad created successfully",
		slog.Int64("ad_id", ad.ID),
		slog.Int64("user_id", ad.UserID))
	return nil
}

// Delete implements store.AdStore.Delete
// It removes an ad from the database by its ID.
// Returns store.ErrAdNotFound if the ad does not exist.
func (s *PostgresAdStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM ads
		WHERE id = $1
	`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete ad",
			slog.String("error", err.Error()),
			slog.Int64("ad_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "ad"); err != nil {
		log.Debug("ad not found for delete", slog.Int64("ad_id", id))
		return store.ErrAdNotFound
	}

	log.Info("ad deleted successfully", slog.Int64("ad_id", id))
	return nil
}
