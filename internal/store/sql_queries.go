package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/mlevkin/launchcopy/models"
)

// Query builders shared by the SQL repositories. All of them go through the
// dialect-aware statement builder carried by *DB so that the same code emits
// $1-style placeholders on PostgreSQL and ?-style placeholders on SQLite.

func (db *DB) buildInsertUserQuery(user models.User) (string, []any, error) {
	return db.builder.
		Insert(user.TableName()).
		Columns("id", "username", "password").
		Values(user.ID, user.Username, user.Password).
		ToSql()
}

func (db *DB) buildFindUserByUsernameQuery(username string) (string, []any, error) {
	return db.builder.
		Select("id", "username", "password").
		From(models.User{}.TableName()).
		Where(sq.Expr("LOWER(username) = LOWER(?)", username)).
		ToSql()
}

func (db *DB) buildSetSessionQuery(user models.User) (string, []any, error) {
	// The session table holds at most one row; the fixed id turns the
	// insert into an upsert of that single row.
	return db.builder.
		Insert("session").
		Columns("id", "user_id", "username", "password").
		Values(1, user.ID, user.Username, user.Password).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			user_id = excluded.user_id,
			username = excluded.username,
			password = excluded.password`).
		ToSql()
}

func (db *DB) buildGetSessionQuery() (string, []any, error) {
	return db.builder.
		Select("user_id", "username", "password").
		From("session").
		Where(sq.Eq{"id": 1}).
		ToSql()
}

func (db *DB) buildClearSessionQuery() (string, []any, error) {
	return db.builder.
		Delete("session").
		Where(sq.Eq{"id": 1}).
		ToSql()
}

var projectColumns = []string{"id", "user_id", "name", "created_at", "updated_at", "input", "copy"}

func (db *DB) buildListProjectsQuery(userID string) (string, []any, error) {
	return db.builder.
		Select(projectColumns...).
		From(models.Project{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func (db *DB) buildGetProjectQuery(userID, id string) (string, []any, error) {
	return db.builder.
		Select(projectColumns...).
		From(models.Project{}.TableName()).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

func (db *DB) buildInsertProjectQuery(project models.Project, input, copyDoc []byte, now time.Time) (string, []any, error) {
	return db.builder.
		Insert(project.TableName()).
		Columns(projectColumns...).
		Values(project.ID, project.UserID, project.Name, now, now, input, copyDoc).
		ToSql()
}

// buildUpdateProjectQuery matches by id alone, mirroring the replace-by-id
// contract of saveProject; user_id is overwritten with the forced owner and
// created_at is left untouched.
func (db *DB) buildUpdateProjectQuery(project models.Project, input, copyDoc []byte, now time.Time) (string, []any, error) {
	return db.builder.
		Update(project.TableName()).
		Set("user_id", project.UserID).
		Set("name", project.Name).
		Set("updated_at", now).
		Set("input", input).
		Set("copy", copyDoc).
		Where(sq.Eq{"id": project.ID}).
		ToSql()
}

func (db *DB) buildDeleteProjectQuery(userID, id string) (string, []any, error) {
	return db.builder.
		Delete(models.Project{}.TableName()).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}
