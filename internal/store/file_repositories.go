package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mlevkin/launchcopy/internal/logger"
	"github.com/mlevkin/launchcopy/models"
)

// Fixed collection keys, carried over verbatim from the original browser
// local-storage layout so existing exports of the store file stay readable.
const (
	usersKey    = "launchcopy_users"
	sessionKey  = "launchcopy_session"
	projectsKey = "launchcopy_projects"
)

// fileUserRepository implements [UserRepository] over a [KVFile], keeping
// the user collection as a single JSON array under usersKey.
type fileUserRepository struct {
	kv     *KVFile
	logger *logger.Logger
}

// NewFileUserRepository constructs a file-backed [UserRepository].
func NewFileUserRepository(kv *KVFile, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating file-backed user repository")
	return &fileUserRepository{kv: kv, logger: logger}
}

func (r *fileUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	users, err := loadCollection[models.User](r.kv, usersKey)
	if err != nil {
		log.Err(err).Str("func", "*fileUserRepository.CreateUser").Msg("error loading user collection")
		return models.User{}, err
	}

	for _, existing := range users {
		if strings.EqualFold(existing.Username, user.Username) {
			return models.User{}, ErrUsernameTaken
		}
	}

	users = append(users, user)
	if err := saveCollection(r.kv, usersKey, users); err != nil {
		log.Err(err).Str("func", "*fileUserRepository.CreateUser").Msg("error saving user collection")
		return models.User{}, err
	}

	return user, nil
}

func (r *fileUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	users, err := loadCollection[models.User](r.kv, usersKey)
	if err != nil {
		log.Err(err).Str("func", "*fileUserRepository.FindUserByUsername").Msg("error loading user collection")
		return models.User{}, err
	}

	for _, user := range users {
		if strings.EqualFold(user.Username, username) {
			return user, nil
		}
	}

	return models.User{}, ErrUserNotFound
}

// fileSessionRepository implements [SessionRepository] over a [KVFile],
// keeping the session pointer as a single JSON object under sessionKey.
type fileSessionRepository struct {
	kv     *KVFile
	logger *logger.Logger
}

// NewFileSessionRepository constructs a file-backed [SessionRepository].
func NewFileSessionRepository(kv *KVFile, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating file-backed session repository")
	return &fileSessionRepository{kv: kv, logger: logger}
}

func (r *fileSessionRepository) SetSession(ctx context.Context, user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("%w: encoding session: %w", ErrStorageUnavailable, err)
	}

	return r.kv.Set(sessionKey, data)
}

func (r *fileSessionRepository) GetSession(ctx context.Context) (models.User, error) {
	raw, ok, err := r.kv.Get(sessionKey)
	if err != nil {
		return models.User{}, err
	}
	if !ok || len(raw) == 0 || string(raw) == "null" {
		return models.User{}, ErrNoActiveSession
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return models.User{}, fmt.Errorf("%w: malformed session document: %w", ErrStorageUnavailable, err)
	}

	return user, nil
}

func (r *fileSessionRepository) ClearSession(ctx context.Context) error {
	return r.kv.Delete(sessionKey)
}

// fileProjectRepository implements [ProjectRepository] over a [KVFile],
// keeping all projects of all users as a single JSON array under
// projectsKey. New projects are prepended; replacements stay in place.
type fileProjectRepository struct {
	kv     *KVFile
	logger *logger.Logger

	// now is the clock used for CreatedAt/UpdatedAt stamps.
	// Overridable in tests.
	now func() time.Time
}

// NewFileProjectRepository constructs a file-backed [ProjectRepository].
func NewFileProjectRepository(kv *KVFile, logger *logger.Logger) ProjectRepository {
	logger.Debug().Msg("creating file-backed project repository")
	return &fileProjectRepository{kv: kv, logger: logger, now: time.Now}
}

func (r *fileProjectRepository) ListProjects(ctx context.Context, userID string) ([]models.Project, error) {
	log := logger.FromContext(ctx)

	all, err := loadCollection[models.Project](r.kv, projectsKey)
	if err != nil {
		log.Err(err).Str("func", "*fileProjectRepository.ListProjects").Msg("error loading project collection")
		return nil, err
	}

	owned := make([]models.Project, 0, len(all))
	for _, project := range all {
		if project.UserID == userID {
			owned = append(owned, project)
		}
	}

	return owned, nil
}

func (r *fileProjectRepository) GetProject(ctx context.Context, userID, id string) (models.Project, error) {
	projects, err := r.ListProjects(ctx, userID)
	if err != nil {
		return models.Project{}, err
	}

	for _, project := range projects {
		if project.ID == id {
			return project, nil
		}
	}

	return models.Project{}, ErrProjectNotFound
}

func (r *fileProjectRepository) SaveProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	all, err := loadCollection[models.Project](r.kv, projectsKey)
	if err != nil {
		log.Err(err).Str("func", "*fileProjectRepository.SaveProject").Msg("error loading project collection")
		return models.Project{}, err
	}

	now := r.now().UTC().Truncate(time.Millisecond)

	replaced := false
	for i := range all {
		if all[i].ID == project.ID {
			// Replace in place: position and CreatedAt survive the update.
			project.CreatedAt = all[i].CreatedAt
			project.UpdatedAt = now
			all[i] = project
			replaced = true
			break
		}
	}
	if !replaced {
		project.CreatedAt = now
		project.UpdatedAt = now
		all = append([]models.Project{project}, all...)
	}

	if err := saveCollection(r.kv, projectsKey, all); err != nil {
		log.Err(err).Str("func", "*fileProjectRepository.SaveProject").Msg("error saving project collection")
		return models.Project{}, err
	}

	return project, nil
}

func (r *fileProjectRepository) DeleteProject(ctx context.Context, userID, id string) error {
	log := logger.FromContext(ctx)

	all, err := loadCollection[models.Project](r.kv, projectsKey)
	if err != nil {
		log.Err(err).Str("func", "*fileProjectRepository.DeleteProject").Msg("error loading project collection")
		return err
	}

	kept := all[:0:0]
	for _, project := range all {
		if project.ID == id && project.UserID == userID {
			continue
		}
		kept = append(kept, project)
	}

	if len(kept) == len(all) {
		// nothing matched; deliberate no-op
		return nil
	}

	return saveCollection(r.kv, projectsKey, kept)
}

// loadCollection decodes the JSON array stored under key. An absent key is
// an empty collection.
func loadCollection[T any](kv *KVFile, key string) ([]T, error) {
	raw, ok, err := kv.Get(key)
	if err != nil {
		return nil, err
	}
	if !ok || len(raw) == 0 {
		return nil, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: malformed %s collection: %w", ErrStorageUnavailable, key, err)
	}

	return items, nil
}

func saveCollection[T any](kv *KVFile, key string, items []T) error {
	if items == nil {
		items = []T{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: encoding %s collection: %w", ErrStorageUnavailable, key, err)
	}

	return kv.Set(key, data)
}
