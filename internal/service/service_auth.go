// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/moonburnt/the-tempest/internal/config"
	"github.com/moonburnt/the-tempest/internal/logger"
	"github.com/moonburnt/the-tempest/internal/store"
	"github.com/moonburnt/the-tempest/internal/utils"
	"github.com/moonburnt/the-tempest/internal/validators"
	"github.com/moonburnt/the-tempest/models"
)

// authService is the concrete implementation of AuthService.
// Passwords are checked through a PasswordHasher, sessions are HS256 JWTs
// carrying the user ID and login.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	hasher    PasswordHasher
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	hasher PasswordHasher,
	validator validators.Validator,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validator,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		now:            time.Now,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// Returns the persisted user (with a store-assigned UserID) or:
//   - a validation error (ErrEmptyLogin, ErrLoginLengthInvalid, ...).
//   - ErrLoginTaken if the login is already registered, either found by the
//     lookup or rejected by the store's unique constraint.
//   - a wrapped storage error otherwise.
func (a *authService) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, creds); err != nil {
		log.Debug().Err(err).Str("login", creds.Login).Msg("invalid credentials provided")
		return models.User{}, err
	}

	_, err := a.userRepository.FindUserByLogin(ctx, creds.Login)
	switch {
	case err == nil:
		return models.User{}, ErrLoginTaken
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("login", creds.Login).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	hash, err := a.hasher.Hash(creds.Password)
	if err != nil {
		return models.User{}, err
	}

	now := a.now().UTC()
	user, err := a.userRepository.CreateUser(ctx, models.User{
		Login:        creds.Login,
		PasswordHash: hash,
		RegisteredAt: now,
		LastAccessAt: now,
	})
	if errors.Is(err, store.ErrLoginAlreadyExists) {
		return models.User{}, ErrLoginTaken
	}
	if err != nil {
		log.Err(err).Str("login", creds.Login).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", user.UserID).Str("login", user.Login).Msg("user registered")
	return user, nil
}

// Login authenticates an existing user and issues a new session token.
//
// Returns ErrInvalidLogin for an unknown login and ErrInvalidPassword when
// the password does not match. A failure to update the last access time is
// logged and does not fail the login.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if creds.Login == "" {
		return models.Token{}, ErrInvalidLogin
	}

	user, err := a.userRepository.FindUserByLogin(ctx, creds.Login)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.Token{}, ErrInvalidLogin
	}
	if err != nil {
		log.Err(err).Str("login", creds.Login).Msg("user search by login failed")
		return models.Token{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if !a.hasher.Verify(creds.Password, user.PasswordHash) {
		log.Info().Int64("user_id", user.UserID).Msg("wrong password")
		return models.Token{}, ErrInvalidPassword
	}

	if err := a.userRepository.TouchLastAccess(ctx, user.UserID, a.now().UTC()); err != nil {
		log.Warn().Err(err).Int64("user_id", user.UserID).Msg("error updating last access time")
	}

	return a.createToken(user)
}

// Resolve validates the token signature, issuer and expiry. It does not
// touch the store.
func (a *authService) Resolve(ctx context.Context, token string) *models.Identity {
	if token == "" {
		return nil
	}

	parsed, err := utils.ValidateAndParseJWTToken(token, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("session token rejected")
		return nil
	}

	return parsed.Identity()
}

func (a *authService) createToken(user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}
