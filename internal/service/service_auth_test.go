// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Levkin

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mlevkin/launchcopy/internal/config"
	"github.com/mlevkin/launchcopy/internal/logger"
	"github.com/mlevkin/launchcopy/internal/mock"
	"github.com/mlevkin/launchcopy/internal/store"
	"github.com/mlevkin/launchcopy/models"
)

// newTestAuthSvc — хелпер для создания authService с моками
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository, *mock.MockSessionRepository) {
	t.Helper()
	users := mock.NewMockUserRepository(ctrl)
	sessions := mock.NewMockSessionRepository(ctrl)

	cfg := config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "launchcopy",
		TokenDuration: time.Hour,
	}

	svc := NewAuthService(users, sessions, cfg, logger.Nop()).(*authService)

	return svc, users, sessions
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, sessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().
		CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			require.NotEmpty(t, u.ID, "registration must assign an id")
			assert.Equal(t, "alice", u.Username)
			return u, nil
		})

	sessions.EXPECT().
		SetSession(ctx, gomock.Any()).
		Return(nil)

	registered, err := svc.Register(ctx, models.User{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "alice", registered.Username)
	assert.NotEmpty(t, registered.ID)
}

func TestAuthService_Register_TrimsWhitespace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, sessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().
		CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "alice", u.Username)
			assert.Equal(t, "pw", u.Password)
			return u, nil
		})
	sessions.EXPECT().SetSession(ctx, gomock.Any()).Return(nil)

	_, err := svc.Register(ctx, models.User{Username: "  alice  ", Password: " pw "})
	require.NoError(t, err)
}

func TestAuthService_Register_EmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	tests := []models.User{
		{Username: "", Password: "pw"},
		{Username: "alice", Password: ""},
		{Username: "   ", Password: "pw"},
		{Username: "alice", Password: "   "},
	}

	for _, user := range tests {
		_, err := svc.Register(ctx, user)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	}
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().
		CreateUser(ctx, gomock.Any()).
		Return(models.User{}, store.ErrUsernameTaken)

	_, err := svc.Register(ctx, models.User{Username: "alice", Password: "pw"})
	assert.ErrorIs(t, err, store.ErrUsernameTaken)
}

func TestAuthService_Register_SessionWriteFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, sessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().
		CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) { return u, nil })
	sessions.EXPECT().
		SetSession(ctx, gomock.Any()).
		Return(store.ErrStorageUnavailable)

	_, err := svc.Register(ctx, models.User{Username: "alice", Password: "pw"})
	assert.ErrorIs(t, err, store.ErrStorageUnavailable)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, sessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{ID: "u-1", Username: "Alice", Password: "pw"}

	users.EXPECT().
		FindUserByUsername(ctx, "alice").
		Return(stored, nil)
	sessions.EXPECT().
		SetSession(ctx, stored).
		Return(nil)

	user, err := svc.Login(ctx, models.User{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().
		FindUserByUsername(ctx, "ghost").
		Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Login(ctx, models.User{Username: "ghost", Password: "pw"})
	assert.ErrorIs(t, err, ErrInvalidCredentials, "unknown user must not be distinguishable from wrong password")
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().
		FindUserByUsername(ctx, "alice").
		Return(models.User{ID: "u-1", Username: "Alice", Password: "correct"}, nil)

	_, err := svc.Login(ctx, models.User{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().
		FindUserByUsername(ctx, "alice").
		Return(models.User{}, errors.New("db network error"))

	_, err := svc.Login(ctx, models.User{Username: "alice", Password: "pw"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials, "infrastructure failures are not credential failures")
}

// ── Logout / CurrentUser ─────────────────────────────────────────────────────

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, sessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	sessions.EXPECT().ClearSession(ctx).Return(nil)

	assert.NoError(t, svc.Logout(ctx))
}

func TestAuthService_CurrentUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, sessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	sessions.EXPECT().
		GetSession(ctx).
		Return(models.User{ID: "u-1", Username: "alice"}, nil)

	user, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
}

func TestAuthService_CurrentUser_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, sessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	sessions.EXPECT().
		GetSession(ctx).
		Return(models.User{}, store.ErrNoActiveSession)

	_, err := svc.CurrentUser(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_CreateAndParseToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{ID: "u-1", Username: "alice"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "u-1", parsed.UserID)
}

func TestAuthService_CreateToken_MissingUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.CreateToken(context.Background(), models.User{Username: "alice"})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_Garbage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.ParseToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_WrongIssuer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	other := &authService{
		tokenSignKey:  svc.tokenSignKey,
		tokenIssuer:   "someone-else",
		tokenDuration: time.Hour,
		logger:        logger.Nop(),
	}

	token, err := other.CreateToken(ctx, models.User{ID: "u-1"})
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
