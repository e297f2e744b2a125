package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/mlevkin/launchcopy/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns the stored record.
	// Returns ErrUsernameTaken when the username is already registered,
	// compared case-insensitively.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername looks a user up by username, case-insensitively.
	// Returns ErrUserNotFound when no record matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// SessionRepository persists the current-session pointer: the single user
// that is currently logged in, or nothing. The session's lifecycle is
// independent of the user records it points to.
type SessionRepository interface {
	// SetSession replaces the session pointer with the given user.
	SetSession(ctx context.Context, user models.User) error

	// GetSession returns the session user.
	// Returns ErrNoActiveSession when nobody is logged in.
	GetSession(ctx context.Context) (models.User, error)

	// ClearSession removes the session pointer. Idempotent: clearing an
	// absent session is not an error.
	ClearSession(ctx context.Context) error
}

// ProjectRepository persists projects for all users. Every read is filtered
// by the owning user id; callers never observe foreign projects.
type ProjectRepository interface {
	// ListProjects returns every project owned by userID, most recently
	// created first. Updates do not move a project within the order.
	ListProjects(ctx context.Context, userID string) ([]models.Project, error)

	// GetProject returns the project with the given id if it is owned by
	// userID. Returns ErrProjectNotFound when the id does not exist or the
	// project belongs to someone else.
	GetProject(ctx context.Context, userID, id string) (models.Project, error)

	// SaveProject inserts or replaces the project by id and returns the
	// stored record. On insert both CreatedAt and UpdatedAt are set to the
	// current time, ignoring caller-supplied values; on replace CreatedAt
	// is preserved and UpdatedAt refreshed. The caller is responsible for
	// forcing UserID to the session user before calling.
	SaveProject(ctx context.Context, project models.Project) (models.Project, error)

	// DeleteProject removes the project only when both id and owner match.
	// Deleting a non-existent or foreign project is a no-op, not an error.
	DeleteProject(ctx context.Context, userID, id string) error
}
