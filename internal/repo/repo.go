// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/carserv/cms/internal/model"
	"github.com/carserv/cms/internal/store"
)

// Default pagination bounds for list operations.
const (
	DefaultLimit = 100
	MaxLimit     = 500
)

// Repository performs all reads and writes against the persistence store.
// It holds no cached state across calls; the database is the sole shared
// mutable resource and uniqueness is enforced by store-level constraints.
type Repository struct {
	db      *sql.DB
	queries *store.Queries
	now     func() time.Time
}

// New creates a Repository bound to the given database handle.
func New(db *sql.DB) *Repository {
	return &Repository{
		db:      db,
		queries: store.New(db),
		now:     time.Now,
	}
}

// clampLimit normalizes a requested page size into [1, MaxLimit].
func clampLimit(limit int64) int64 {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// requireAdmin returns ErrForbidden unless the acting user has admin role.
// Every write operation calls this before touching the store.
func requireAdmin(actingUser model.User) error {
	if !actingUser.IsAdmin() {
		return fmt.Errorf("user %q: %w", actingUser.Username, ErrForbidden)
	}
	return nil
}

// auditStamp returns the modified_by/modified_at pair for a mutation.
func (r *Repository) auditStamp(actingUser model.User) (sql.NullInt64, sql.NullTime) {
	return sql.NullInt64{Int64: actingUser.ID, Valid: true},
		sql.NullTime{Time: r.now(), Valid: true}
}

// inTx runs fn inside a single store transaction. Write operations are
// either not started or committed in full; there is no partial failure
// within one repository call.
func (r *Repository) inTx(ctx context.Context, fn func(q *store.Queries) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := fn(r.queries.WithTx(tx)); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
