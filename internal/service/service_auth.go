// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Levkin

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mlevkin/launchcopy/internal/config"
	"github.com/mlevkin/launchcopy/internal/logger"
	"github.com/mlevkin/launchcopy/internal/store"
	"github.com/mlevkin/launchcopy/internal/utils"
	"github.com/mlevkin/launchcopy/models"
)

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification, the persisted session
// pointer, and the JWT token lifecycle. Credentials are stored as provided:
// this is an explicitly mock credential store, not a hardened one.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// sessionRepository persists the pointer to the currently signed-in user.
	sessionRepository store.SessionRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, sessionRepository store.SessionRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		logger:            logger,
	}
}

// Register creates a new user account and signs it in.
//
// Username and password are whitespace-trimmed before any checks; the
// username keeps its original casing but must be unique case-insensitively.
// On success the session pointer is set to the new user (auto-login).
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if the trimmed username or password is empty.
//   - store.ErrUsernameTaken (wrapped) if the username is already in use.
func (a *authService) Register(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Username = strings.TrimSpace(user.Username)
	user.Password = strings.TrimSpace(user.Password)
	if user.Username == "" || user.Password == "" {
		log.Error().Str("username", user.Username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	user.ID = utils.NewID()

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	if err := a.sessionRepository.SetSession(ctx, registeredUser); err != nil {
		log.Err(err).Str("username", registeredUser.Username).Msg("setting session after registration failed")
		return models.User{}, fmt.Errorf("setting session after registration failed: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user and sets the session pointer.
//
// An unknown username and a wrong password both collapse into
// ErrInvalidCredentials, so callers cannot distinguish which one failed.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Username = strings.TrimSpace(user.Username)
	user.Password = strings.TrimSpace(user.Password)
	if user.Username == "" || user.Password == "" {
		log.Error().Str("username", user.Username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, user.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("username", user.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if foundUser.Password != user.Password {
		log.Error().Str("username", user.Username).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	if err := a.sessionRepository.SetSession(ctx, foundUser); err != nil {
		log.Err(err).Str("username", foundUser.Username).Msg("setting session after login failed")
		return models.User{}, fmt.Errorf("setting session after login failed: %w", err)
	}

	return foundUser, nil
}

// Logout clears the session pointer. Logging out without an active session
// is not an error.
func (a *authService) Logout(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if err := a.sessionRepository.ClearSession(ctx); err != nil {
		log.Err(err).Msg("clearing session failed")
		return fmt.Errorf("clearing session failed: %w", err)
	}

	return nil
}

// CurrentUser returns the user the session pointer names, or
// ErrNotAuthenticated when no session is active.
func (a *authService) CurrentUser(ctx context.Context) (models.User, error) {
	user, err := a.sessionRepository.GetSession(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNoActiveSession) {
			return models.User{}, ErrNotAuthenticated
		}
		return models.User{}, fmt.Errorf("reading session failed: %w", err)
	}

	return user, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
