// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/moonburnt/the-tempest/internal/logger"
	"github.com/moonburnt/the-tempest/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the
// database-assigned UserID.
//
// Error handling:
//   - unique violation on login → [ErrLoginAlreadyExists].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.createUserQuery(user.Login, user.PasswordHash, user.RegisteredAt, user.LastAccessAt).ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.UserID); err != nil {
		if r.db.isConflict(err) {
			log.Debug().Str("func", "*userRepository.CreateUser").Str("login", user.Login).Msg("login already exists")
			return models.User{}, ErrLoginAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// FindUserByLogin retrieves the user whose login equals login.
//
// Error handling:
//   - no matching row → [ErrNoUserWasFound].
//   - any other driver-level error → wrapped in [ErrScanningRow].
func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.findUserByLoginQuery(login).ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&user.UserID, &user.Login, &user.PasswordHash, &user.RegisteredAt, &user.LastAccessAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByLogin").Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: unexpected DB error: %w", ErrScanningRow, err)
	}

	return user, nil
}

// TouchLastAccess updates the last access time of the user.
func (r *userRepository) TouchLastAccess(ctx context.Context, userID int64, now time.Time) error {
	query, args, err := r.db.touchUserQuery(userID, now).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.TouchLastAccess").Msg("error updating user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// Count returns the number of registered users.
func (r *userRepository) Count(ctx context.Context) (int64, error) {
	return r.db.count(ctx, usersTable)
}
