package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/mlevkin/launchcopy/models"
)

func postgresBuilderDB() *DB {
	return &DB{builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar)}
}

func sqliteBuilderDB() *DB {
	return &DB{builder: sq.StatementBuilder.PlaceholderFormat(sq.Question)}
}

func TestBuildInsertUserQuery_Placeholders(t *testing.T) {
	user := models.User{ID: "u-1", Username: "alice", Password: "pw"}

	query, args, err := postgresBuilderDB().buildInsertUserQuery(user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(query, "$1") {
		t.Errorf("postgres builder must emit dollar placeholders, got: %s", query)
	}
	if len(args) != 3 {
		t.Errorf("expected 3 args, got %d", len(args))
	}

	query, _, err = sqliteBuilderDB().buildInsertUserQuery(user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(query, "$1") || !strings.Contains(query, "?") {
		t.Errorf("sqlite builder must emit question-mark placeholders, got: %s", query)
	}
}

func TestBuildFindUserByUsernameQuery_CaseInsensitive(t *testing.T) {
	query, args, err := postgresBuilderDB().buildFindUserByUsernameQuery("Alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(query, "LOWER(username) = LOWER(") {
		t.Errorf("username lookup must be case-insensitive, got: %s", query)
	}
	if len(args) != 1 || args[0] != "Alice" {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBuildSetSessionQuery_Upsert(t *testing.T) {
	query, args, err := postgresBuilderDB().buildSetSessionQuery(models.User{ID: "u-1", Username: "alice", Password: "pw"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(query, "ON CONFLICT (id) DO UPDATE") {
		t.Errorf("session write must be an upsert of the single row, got: %s", query)
	}
	if len(args) != 4 || args[0] != 1 {
		t.Errorf("expected fixed id 1 as first arg, got: %v", args)
	}
}

func TestBuildListProjectsQuery_Ordering(t *testing.T) {
	query, args, err := postgresBuilderDB().buildListProjectsQuery("u-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(query, "ORDER BY created_at DESC, id DESC") {
		t.Errorf("listing must be newest-first with a stable tiebreak, got: %s", query)
	}
	if len(args) != 1 || args[0] != "u-1" {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBuildUpdateProjectQuery_LeavesCreatedAt(t *testing.T) {
	project := models.Project{ID: "p-1", UserID: "u-1", Name: "Acme"}

	query, _, err := postgresBuilderDB().buildUpdateProjectQuery(project, []byte(`{}`), nil, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(query, "created_at") {
		t.Errorf("update must not touch created_at, got: %s", query)
	}
	if !strings.Contains(query, "updated_at") {
		t.Errorf("update must refresh updated_at, got: %s", query)
	}
}

func TestBuildDeleteProjectQuery_ScopedToOwner(t *testing.T) {
	query, args, err := postgresBuilderDB().buildDeleteProjectQuery("u-1", "p-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(query, "id = ") || !strings.Contains(query, "user_id = ") {
		t.Errorf("delete must match both id and owner, got: %s", query)
	}
	if len(args) != 2 {
		t.Errorf("expected 2 args, got %d", len(args))
	}
}
