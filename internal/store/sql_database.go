package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/mlevkin/launchcopy/internal/logger"
	"github.com/mlevkin/launchcopy/migrations"
)

// DB bundles an open SQL connection with the dialect-specific pieces the
// repositories need: a statement builder configured with the right
// placeholder format and an error classifier for constraint violations.
type DB struct {
	*sql.DB

	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// ErrorClassificator translates driver-level errors into the conditions the
// repositories care about. Each SQL backend provides its own implementation.
type ErrorClassificator interface {
	// IsUniqueViolation reports whether err was caused by a unique
	// constraint (used to detect duplicate usernames).
	IsUniqueViolation(err error) bool
}

// Migrate applies all embedded schema migrations to the database.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
