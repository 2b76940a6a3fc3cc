// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/carserv/cms/internal/model"
)

const contentItemColumns = "id, page_id, position, title, content, content_type, created_at, added_by, modified_by, modified_at"

// CreateContentItemParams holds the fields for CreateContentItem.
type CreateContentItemParams struct {
	PageID      int64
	Position    int64
	Title       sql.NullString
	Content     sql.NullString
	ContentType string
	AddedBy     int64
	CreatedAt   time.Time
}

// CreateContentItem inserts a content item and returns the stored row.
func (q *Queries) CreateContentItem(ctx context.Context, arg CreateContentItemParams) (model.ContentItem, error) {
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO content_items (page_id, position, title, content, content_type, added_by, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		arg.PageID, arg.Position, arg.Title, arg.Content, arg.ContentType, arg.AddedBy, arg.CreatedAt,
	)
	if err != nil {
		return model.ContentItem{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.ContentItem{}, err
	}
	return q.GetContentItemByID(ctx, id)
}

// GetContentItemByID returns the content item with the given id.
func (q *Queries) GetContentItemByID(ctx context.Context, id int64) (model.ContentItem, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+contentItemColumns+` FROM content_items WHERE id = ?`, id)
	return scanContentItem(row)
}

// ListContentItemsParams holds pagination for ListContentItems.
type ListContentItemsParams struct {
	Limit  int64
	Offset int64
}

// ListContentItems returns content items across all pages in id order.
func (q *Queries) ListContentItems(ctx context.Context, arg ListContentItemsParams) ([]model.ContentItem, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+contentItemColumns+` FROM content_items ORDER BY id ASC LIMIT ? OFFSET ?`,
		arg.Limit, arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	return collectContentItems(rows)
}

// ListContentItemsByPageParams holds the page filter and pagination.
type ListContentItemsByPageParams struct {
	PageID int64
	Limit  int64
	Offset int64
}

// ListContentItemsByPage returns one page's content items sorted by
// ascending position. Position is the render order for both admin editing
// views and public rendering.
func (q *Queries) ListContentItemsByPage(ctx context.Context, arg ListContentItemsByPageParams) ([]model.ContentItem, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+contentItemColumns+` FROM content_items WHERE page_id = ? ORDER BY position ASC, id ASC LIMIT ? OFFSET ?`,
		arg.PageID, arg.Limit, arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	return collectContentItems(rows)
}

// CountContentItems returns the total number of content items.
func (q *Queries) CountContentItems(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM content_items`).Scan(&n)
	return n, err
}

// CountContentItemsByPage returns the number of content items on a page.
func (q *Queries) CountContentItemsByPage(ctx context.Context, pageID int64) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM content_items WHERE page_id = ?`, pageID).Scan(&n)
	return n, err
}

// UpdateContentItemParams holds the full field set for UpdateContentItem.
type UpdateContentItemParams struct {
	ID          int64
	PageID      int64
	Position    int64
	Title       sql.NullString
	Content     sql.NullString
	ContentType string
	ModifiedBy  sql.NullInt64
	ModifiedAt  sql.NullTime
}

// UpdateContentItem writes the content item fields and returns the stored row.
func (q *Queries) UpdateContentItem(ctx context.Context, arg UpdateContentItemParams) (model.ContentItem, error) {
	_, err := q.db.ExecContext(ctx,
		`UPDATE content_items
		 SET page_id = ?, position = ?, title = ?, content = ?, content_type = ?, modified_by = ?, modified_at = ?
		 WHERE id = ?`,
		arg.PageID, arg.Position, arg.Title, arg.Content, arg.ContentType, arg.ModifiedBy, arg.ModifiedAt, arg.ID,
	)
	if err != nil {
		return model.ContentItem{}, err
	}
	return q.GetContentItemByID(ctx, arg.ID)
}

// DeleteContentItem removes the content item row.
func (q *Queries) DeleteContentItem(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM content_items WHERE id = ?`, id)
	return err
}

func collectContentItems(rows *sql.Rows) ([]model.ContentItem, error) {
	var items []model.ContentItem
	for rows.Next() {
		item, err := scanContentItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanContentItem(row rowScanner) (model.ContentItem, error) {
	var c model.ContentItem
	err := row.Scan(&c.ID, &c.PageID, &c.Position, &c.Title, &c.Content, &c.ContentType,
		&c.CreatedAt, &c.AddedBy, &c.ModifiedBy, &c.ModifiedAt)
	if err != nil {
		return model.ContentItem{}, err
	}
	return c, nil
}
