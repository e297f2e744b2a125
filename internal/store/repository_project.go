package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mlevkin/launchcopy/internal/logger"
	"github.com/mlevkin/launchcopy/models"
)

// projectRepository is the SQL-backed implementation of [ProjectRepository].
// The brief and the generated copy are stored as JSON documents in the
// "input" and "copy" columns; the store itself never looks inside them.
type projectRepository struct {
	logger *logger.Logger
	db     *DB

	// now is the clock used for created_at/updated_at stamps.
	// Overridable in tests.
	now func() time.Time
}

// NewProjectRepository constructs a [ProjectRepository] backed by the
// provided database connection and logger.
func NewProjectRepository(db *DB, logger *logger.Logger) ProjectRepository {
	logger.Debug().Msg("creating project repository")
	return &projectRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// ListProjects returns every project owned by userID, newest created first.
func (r *projectRepository) ListProjects(ctx context.Context, userID string) ([]models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildListProjectsQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.ListProjects").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.ListProjects").Msg("error executing select")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	projects := make([]models.Project, 0)
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			log.Err(err).Str("func", "*projectRepository.ListProjects").Msg("error scanning project row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*projectRepository.ListProjects").Msg("error iterating project rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return projects, nil
}

// GetProject returns the project only when both id and owner match.
// A missing project and a foreign project are the same [ErrProjectNotFound].
func (r *projectRepository) GetProject(ctx context.Context, userID, id string) (models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildGetProjectQuery(userID, id)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.GetProject").Msg("error building select query")
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	project, err := scanProject(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Project{}, ErrProjectNotFound
		}

		log.Err(err).Str("func", "*projectRepository.GetProject").Msg("error scanning project row")
		return models.Project{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return project, nil
}

// SaveProject updates the project by id when it already exists; otherwise it
// inserts a new row with fresh timestamps. Caller-supplied timestamps are
// ignored in both cases.
func (r *projectRepository) SaveProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	input, copyDoc, err := marshalProjectPayload(project)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.SaveProject").Msg("error marshaling project payload")
		return models.Project{}, err
	}

	now := r.now().UTC().Truncate(time.Millisecond)

	query, args, err := r.db.buildUpdateProjectQuery(project, input, copyDoc, now)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.SaveProject").Msg("error building update query")
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.SaveProject").Msg("error executing update")
		return models.Project{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.SaveProject").Msg("error reading affected rows")
		return models.Project{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected > 0 {
		// Replaced an existing row: created_at is untouched; report what is
		// now stored.
		stored, err := r.GetProject(ctx, project.UserID, project.ID)
		if err != nil {
			return models.Project{}, err
		}
		return stored, nil
	}

	query, args, err = r.db.buildInsertProjectQuery(project, input, copyDoc, now)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.SaveProject").Msg("error building insert query")
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*projectRepository.SaveProject").Msg("error executing insert")
		return models.Project{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	project.CreatedAt = now
	project.UpdatedAt = now
	return project, nil
}

// DeleteProject removes the row matching both id and owner. Zero affected
// rows is fine; the operation is a deliberate no-op for absent or foreign
// projects.
func (r *projectRepository) DeleteProject(ctx context.Context, userID, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildDeleteProjectQuery(userID, id)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.DeleteProject").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*projectRepository.DeleteProject").Msg("error executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (models.Project, error) {
	var (
		project  models.Project
		inputDoc []byte
		copyDoc  []byte
	)

	if err := row.Scan(
		&project.ID,
		&project.UserID,
		&project.Name,
		&project.CreatedAt,
		&project.UpdatedAt,
		&inputDoc,
		&copyDoc,
	); err != nil {
		return models.Project{}, err
	}

	if err := json.Unmarshal(inputDoc, &project.Input); err != nil {
		return models.Project{}, fmt.Errorf("malformed input document: %w", err)
	}

	if len(copyDoc) > 0 {
		var copyValue models.LandingPageCopy
		if err := json.Unmarshal(copyDoc, &copyValue); err != nil {
			return models.Project{}, fmt.Errorf("malformed copy document: %w", err)
		}
		project.Copy = &copyValue
	}

	return project, nil
}

func marshalProjectPayload(project models.Project) (input, copyDoc []byte, err error) {
	input, err = json.Marshal(project.Input)
	if err != nil {
		return nil, nil, fmt.Errorf("marshaling project input: %w", err)
	}

	if project.Copy != nil {
		copyDoc, err = json.Marshal(project.Copy)
		if err != nil {
			return nil, nil, fmt.Errorf("marshaling project copy: %w", err)
		}
	}

	return input, copyDoc, nil
}
