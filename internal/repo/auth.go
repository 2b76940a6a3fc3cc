// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/carserv/cms/internal/auth"
	"github.com/carserv/cms/internal/model"
	"github.com/carserv/cms/internal/store"
)

// Authenticate resolves transport credentials to a User. It is a stateless
// check per call: no session or token is issued. A missing user and a wrong
// secret are indistinguishable to the caller.
func (r *Repository) Authenticate(ctx context.Context, username, secret string) (model.User, error) {
	if username == "" || secret == "" {
		return model.User{}, ErrUnauthorized
	}

	user, err := r.queries.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, ErrUnauthorized
		}
		return model.User{}, fmt.Errorf("looking up user: %w", err)
	}

	ok, err := auth.CheckPassword(secret, user.PasswordHash)
	if err != nil || !ok {
		return model.User{}, ErrUnauthorized
	}

	// Hashes created under older parameters are upgraded in place while
	// the plaintext is available. Failure to upgrade never fails the login.
	if auth.NeedsRehash(user.PasswordHash) {
		if rehashed, err := auth.HashPassword(secret); err == nil {
			if err := r.queries.UpdateUserPassword(ctx, user.ID, rehashed); err == nil {
				user.PasswordHash = rehashed
			} else {
				slog.Warn("upgrading password hash", "user_id", user.ID, "error", err)
			}
		}
	}

	return user, nil
}

// RequireAdmin fails with ErrForbidden unless the user has admin role.
// Returns the user unchanged so gate calls chain naturally.
func (r *Repository) RequireAdmin(user model.User) (model.User, error) {
	if err := requireAdmin(user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

// ListUsers returns user accounts for the legacy private listing API.
// Callers must have authenticated; any role may list.
func (r *Repository) ListUsers(ctx context.Context, offset, limit int64) ([]model.User, error) {
	if offset < 0 {
		offset = 0
	}
	users, err := r.queries.ListUsers(ctx, store.ListUsersParams{
		Limit:  clampLimit(limit),
		Offset: offset,
	})
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

// CountUsers returns the total number of user accounts.
func (r *Repository) CountUsers(ctx context.Context) (int64, error) {
	count, err := r.queries.CountUsers(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting users: %w", err)
	}
	return count, nil
}
