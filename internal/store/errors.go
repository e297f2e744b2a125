package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when an attempt to register a new user
	// fails because a user with the same username (compared trimmed and
	// case-insensitively) already exists.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrUserNotFound is returned when a lookup expected to match a user
	// record produces an empty result.
	ErrUserNotFound = errors.New("no user was found")

	// ErrNoActiveSession is returned when the session pointer is read while
	// no user is logged in. It is not a failure of the store itself; callers
	// decide whether the absence is an error.
	ErrNoActiveSession = errors.New("no active session")

	// ErrProjectNotFound is returned when a project lookup matches nothing.
	// A project that exists but belongs to a different user produces the
	// same error: the two cases are indistinguishable to callers so that no
	// information about foreign project ids leaks.
	ErrProjectNotFound = errors.New("project was not found")

	// ErrStorageUnavailable is returned (or wrapped) when the persistence
	// backend cannot be read or written — a missing or corrupt store file,
	// a failed connection, a malformed persisted document. Services degrade
	// to empty results rather than propagate it to users.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by the
// SQL repositories when a statement fails before any domain logic applies.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
