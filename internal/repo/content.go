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

// CreateContentItemInput holds the fields for a new content block.
// Title and Content are optional; nil means stored as NULL.
type CreateContentItemInput struct {
	PageID      int64
	Position    int64
	Title       *string
	Content     *string
	ContentType string
}

// ContentItemPatch is a partial update. Nil fields are left untouched.
// For the nullable Title and Content fields a pointer to the empty string
// clears the stored value to NULL.
type ContentItemPatch struct {
	PageID      *int64
	Position    *int64
	Title       *string
	Content     *string
	ContentType *string
}

func validateContentType(ct string) error {
	if strings.TrimSpace(ct) == "" {
		return NewValidationError("content_type", "must not be empty")
	}
	return nil
}

func nullableText(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// CreateContentItem creates a content block on an existing page. A page id
// that does not resolve is a validation failure, not a not-found: the item
// itself has no identity yet.
func (r *Repository) CreateContentItem(ctx context.Context, input CreateContentItemInput, actingUser model.User) (model.ContentItem, error) {
	if err := requireAdmin(actingUser); err != nil {
		return model.ContentItem{}, err
	}
	if err := validateContentType(input.ContentType); err != nil {
		return model.ContentItem{}, err
	}
	if input.Position < 0 {
		return model.ContentItem{}, NewValidationError("position", "must not be negative")
	}

	var item model.ContentItem
	err := r.inTx(ctx, func(q *store.Queries) error {
		if _, err := q.GetPageByID(ctx, input.PageID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return NewValidationError("page_id", fmt.Sprintf("page %d does not exist", input.PageID))
			}
			return fmt.Errorf("checking page: %w", err)
		}

		var err error
		item, err = q.CreateContentItem(ctx, store.CreateContentItemParams{
			PageID:      input.PageID,
			Position:    input.Position,
			Title:       nullableText(input.Title),
			Content:     nullableText(input.Content),
			ContentType: input.ContentType,
			AddedBy:     actingUser.ID,
			CreatedAt:   r.now(),
		})
		if err != nil {
			return fmt.Errorf("creating content item: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.ContentItem{}, err
	}
	return item, nil
}

// GetContentItem returns a single content block by id.
func (r *Repository) GetContentItem(ctx context.Context, id int64) (model.ContentItem, error) {
	item, err := r.queries.GetContentItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ContentItem{}, fmt.Errorf("content item %d: %w", id, ErrNotFound)
		}
		return model.ContentItem{}, fmt.Errorf("loading content item: %w", err)
	}
	return item, nil
}

// ListContentItems returns content blocks across all pages in id order.
func (r *Repository) ListContentItems(ctx context.Context, offset, limit int64) ([]model.ContentItem, error) {
	if offset < 0 {
		offset = 0
	}
	items, err := r.queries.ListContentItems(ctx, store.ListContentItemsParams{
		Limit:  clampLimit(limit),
		Offset: offset,
	})
	if err != nil {
		return nil, fmt.Errorf("listing content items: %w", err)
	}
	return items, nil
}

// ListPageContent returns one page's content blocks sorted by ascending
// position. The page must exist.
func (r *Repository) ListPageContent(ctx context.Context, pageID, offset, limit int64) ([]model.ContentItem, error) {
	if _, err := r.GetPage(ctx, pageID); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	items, err := r.queries.ListContentItemsByPage(ctx, store.ListContentItemsByPageParams{
		PageID: pageID,
		Limit:  clampLimit(limit),
		Offset: offset,
	})
	if err != nil {
		return nil, fmt.Errorf("listing page content: %w", err)
	}
	return items, nil
}

// CountContentItems returns the total number of content blocks.
func (r *Repository) CountContentItems(ctx context.Context) (int64, error) {
	count, err := r.queries.CountContentItems(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting content items: %w", err)
	}
	return count, nil
}

// CountPageContent returns the number of content blocks on one page.
func (r *Repository) CountPageContent(ctx context.Context, pageID int64) (int64, error) {
	count, err := r.queries.CountContentItemsByPage(ctx, pageID)
	if err != nil {
		return 0, fmt.Errorf("counting page content: %w", err)
	}
	return count, nil
}

// UpdateContentItem applies a partial update and stamps the audit fields.
// Moving an item to another page validates the target page exists.
func (r *Repository) UpdateContentItem(ctx context.Context, id int64, patch ContentItemPatch, actingUser model.User) (model.ContentItem, error) {
	if err := requireAdmin(actingUser); err != nil {
		return model.ContentItem{}, err
	}

	var item model.ContentItem
	err := r.inTx(ctx, func(q *store.Queries) error {
		existing, err := q.GetContentItemByID(ctx, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("content item %d: %w", id, ErrNotFound)
			}
			return fmt.Errorf("loading content item: %w", err)
		}

		params := store.UpdateContentItemParams{
			ID:          existing.ID,
			PageID:      existing.PageID,
			Position:    existing.Position,
			Title:       existing.Title,
			Content:     existing.Content,
			ContentType: existing.ContentType,
		}

		if patch.PageID != nil && *patch.PageID != existing.PageID {
			if _, err := q.GetPageByID(ctx, *patch.PageID); err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return NewValidationError("page_id", fmt.Sprintf("page %d does not exist", *patch.PageID))
				}
				return fmt.Errorf("checking page: %w", err)
			}
			params.PageID = *patch.PageID
		}
		if patch.Position != nil {
			if *patch.Position < 0 {
				return NewValidationError("position", "must not be negative")
			}
			params.Position = *patch.Position
		}
		if patch.Title != nil {
			params.Title = nullableText(patch.Title)
		}
		if patch.Content != nil {
			params.Content = nullableText(patch.Content)
		}
		if patch.ContentType != nil {
			if err := validateContentType(*patch.ContentType); err != nil {
				return err
			}
			params.ContentType = *patch.ContentType
		}

		params.ModifiedBy, params.ModifiedAt = r.auditStamp(actingUser)

		item, err = q.UpdateContentItem(ctx, params)
		if err != nil {
			return fmt.Errorf("updating content item: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.ContentItem{}, err
	}
	return item, nil
}

// DeleteContentItem removes a content block.
func (r *Repository) DeleteContentItem(ctx context.Context, id int64, actingUser model.User) error {
	if err := requireAdmin(actingUser); err != nil {
		return err
	}

	return r.inTx(ctx, func(q *store.Queries) error {
		if _, err := q.GetContentItemByID(ctx, id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("content item %d: %w", id, ErrNotFound)
			}
			return fmt.Errorf("loading content item: %w", err)
		}
		if err := q.DeleteContentItem(ctx, id); err != nil {
			return fmt.Errorf("deleting content item: %w", err)
		}
		return nil
	})
}
