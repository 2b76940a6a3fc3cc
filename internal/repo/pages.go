// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/carserv/cms/internal/model"
	"github.com/carserv/cms/internal/store"
)

// CreatePageInput holds the fields for a new page.
type CreatePageInput struct {
	Name string
}

// PagePatch is a partial update. Nil fields are left untouched.
type PagePatch struct {
	Name *string
}

// CreatePage creates a page. The name must be unique across all pages.
func (r *Repository) CreatePage(ctx context.Context, input CreatePageInput, actingUser model.User) (model.Page, error) {
	if err := requireAdmin(actingUser); err != nil {
		return model.Page{}, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return model.Page{}, NewValidationError("name", "must not be empty")
	}

	var page model.Page
	err := r.inTx(ctx, func(q *store.Queries) error {
		n, err := q.PageNameExists(ctx, name)
		if err != nil {
			return fmt.Errorf("checking page name: %w", err)
		}
		if n > 0 {
			return &ConflictError{Message: fmt.Sprintf("page %q already exists", name)}
		}

		page, err = q.CreatePage(ctx, store.CreatePageParams{
			Name:      name,
			AddedBy:   actingUser.ID,
			CreatedAt: r.now(),
		})
		if err != nil {
			if store.IsUniqueViolation(err) {
				return &ConflictError{Message: fmt.Sprintf("page %q already exists", name)}
			}
			return fmt.Errorf("creating page: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.Page{}, err
	}
	return page, nil
}

// GetPage returns a single page by id.
func (r *Repository) GetPage(ctx context.Context, id int64) (model.Page, error) {
	page, err := r.queries.GetPageByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Page{}, fmt.Errorf("page %d: %w", id, ErrNotFound)
		}
		return model.Page{}, fmt.Errorf("loading page: %w", err)
	}
	return page, nil
}

// GetPageByName returns a single page by its unique name, or nil when no
// page has that name. Callers render a missing named page with empty
// content instead of failing.
func (r *Repository) GetPageByName(ctx context.Context, name string) (*model.Page, error) {
	page, err := r.queries.GetPageByName(ctx, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading page: %w", err)
	}
	return &page, nil
}

// ListPages returns pages in insertion order with skip/limit pagination.
func (r *Repository) ListPages(ctx context.Context, offset, limit int64) ([]model.Page, error) {
	if offset < 0 {
		offset = 0
	}
	pages, err := r.queries.ListPages(ctx, store.ListPagesParams{
		Limit:  clampLimit(limit),
		Offset: offset,
	})
	if err != nil {
		return nil, fmt.Errorf("listing pages: %w", err)
	}
	return pages, nil
}

// CountPages returns the total number of pages.
func (r *Repository) CountPages(ctx context.Context) (int64, error) {
	count, err := r.queries.CountPages(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting pages: %w", err)
	}
	return count, nil
}

// UpdatePage applies a partial update and stamps modified_by/modified_at.
// Fields left nil in the patch keep their stored value.
func (r *Repository) UpdatePage(ctx context.Context, id int64, patch PagePatch, actingUser model.User) (model.Page, error) {
	if err := requireAdmin(actingUser); err != nil {
		return model.Page{}, err
	}

	var page model.Page
	err := r.inTx(ctx, func(q *store.Queries) error {
		existing, err := q.GetPageByID(ctx, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("page %d: %w", id, ErrNotFound)
			}
			return fmt.Errorf("loading page: %w", err)
		}

		name := existing.Name
		if patch.Name != nil {
			name = strings.TrimSpace(*patch.Name)
			if name == "" {
				return NewValidationError("name", "must not be empty")
			}
			if name != existing.Name {
				n, err := q.PageNameExists(ctx, name)
				if err != nil {
					return fmt.Errorf("checking page name: %w", err)
				}
				if n > 0 {
					return &ConflictError{Message: fmt.Sprintf("page %q already exists", name)}
				}
			}
		}

		modifiedBy, modifiedAt := r.auditStamp(actingUser)
		page, err = q.UpdatePage(ctx, store.UpdatePageParams{
			ID:         id,
			Name:       name,
			ModifiedBy: modifiedBy,
			ModifiedAt: modifiedAt,
		})
		if err != nil {
			if store.IsUniqueViolation(err) {
				return &ConflictError{Message: fmt.Sprintf("page %q already exists", name)}
			}
			return fmt.Errorf("updating page: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.Page{}, err
	}
	return page, nil
}

// DeletePage removes a page. A page that still has content items cannot be
// deleted; the caller must remove or move the items first.
func (r *Repository) DeletePage(ctx context.Context, id int64, actingUser model.User) error {
	if err := requireAdmin(actingUser); err != nil {
		return err
	}

	return r.inTx(ctx, func(q *store.Queries) error {
		if _, err := q.GetPageByID(ctx, id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("page %d: %w", id, ErrNotFound)
			}
			return fmt.Errorf("loading page: %w", err)
		}

		n, err := q.CountContentItemsByPage(ctx, id)
		if err != nil {
			return fmt.Errorf("counting content items: %w", err)
		}
		if n > 0 {
			return &ConflictError{Message: fmt.Sprintf("page %d still has %d content items", id, n)}
		}

		if err := q.DeletePage(ctx, id); err != nil {
			return fmt.Errorf("deleting page: %w", err)
		}
		return nil
	})
}
