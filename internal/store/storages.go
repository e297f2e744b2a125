// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Levkin

package store

import (
	"context"
	"strings"

	"github.com/mlevkin/launchcopy/internal/config"
	"github.com/mlevkin/launchcopy/internal/logger"
)

// Storages aggregates all repositories backed by a single storage backend.
type Storages struct {
	UserRepository    UserRepository
	SessionRepository SessionRepository
	ProjectRepository ProjectRepository

	// db is non-nil only for the SQL-backed backends. Kept for Close.
	db *DB
}

// NewStorages selects a storage backend from cfg and wires the user,
// session and project repositories on top of it.
//
// Backend selection:
//   - DSN starting with "postgres://" or "postgresql://" — PostgreSQL.
//   - any other non-empty DSN — treated as a SQLite database file path.
//   - empty DSN — single-file JSON store at cfg.File.Path.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		log.Info().Str("path", cfg.File.Path).Msg("using file storage backend")

		kv := NewKVFile(cfg.File.Path, log)
		return &Storages{
			UserRepository:    NewFileUserRepository(kv, log),
			SessionRepository: NewFileSessionRepository(kv, log),
			ProjectRepository: NewFileProjectRepository(kv, log),
		}, nil
	}

	var (
		db  *DB
		err error
	)
	if isPostgresDSN(cfg.DB.DSN) {
		log.Info().Msg("using PostgreSQL storage backend")
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	} else {
		log.Info().Str("path", cfg.DB.DSN).Msg("using SQLite storage backend")
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		SessionRepository: NewSessionRepository(db, log),
		ProjectRepository: NewProjectRepository(db, log),
		db:                db,
	}, nil
}

// Close releases the underlying database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
