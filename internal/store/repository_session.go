package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mlevkin/launchcopy/internal/logger"
	"github.com/mlevkin/launchcopy/models"
)

// sessionRepository is the SQL-backed implementation of [SessionRepository].
// The "session" table holds at most one row: the snapshot of the currently
// logged-in user, following the single-session usage model of the product.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// SetSession upserts the single session row with the given user snapshot.
func (r *sessionRepository) SetSession(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildSetSessionQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.SetSession").Msg("error building upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRepository.SetSession").Msg("error executing upsert")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetSession reads the session row. Returns [ErrNoActiveSession] when the
// row is absent.
func (r *sessionRepository) GetSession(ctx context.Context) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildGetSessionQuery()
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.GetSession").Msg("error building select query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&user.ID, &user.Username, &user.Password); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoActiveSession
		}

		log.Err(err).Str("func", "*sessionRepository.GetSession").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// ClearSession deletes the session row. Deleting an absent row is a no-op.
func (r *sessionRepository) ClearSession(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildClearSessionQuery()
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.ClearSession").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRepository.ClearSession").Msg("error executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
