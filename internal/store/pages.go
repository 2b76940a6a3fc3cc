// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/carserv/cms/internal/model"
)

const pageColumns = "id, name, created_at, added_by, modified_by, modified_at"

// CreatePageParams holds the fields for CreatePage.
type CreatePageParams struct {
	Name      string
	AddedBy   int64
	CreatedAt time.Time
}

// CreatePage inserts a page and returns the stored row.
func (q *Queries) CreatePage(ctx context.Context, arg CreatePageParams) (model.Page, error) {
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO pages (name, added_by, created_at) VALUES (?, ?, ?)`,
		arg.Name, arg.AddedBy, arg.CreatedAt,
	)
	if err != nil {
		return model.Page{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Page{}, err
	}
	return q.GetPageByID(ctx, id)
}

// GetPageByID returns the page with the given id.
func (q *Queries) GetPageByID(ctx context.Context, id int64) (model.Page, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+pageColumns+` FROM pages WHERE id = ?`, id)
	return scanPage(row)
}

// GetPageByName returns the page with the given name.
func (q *Queries) GetPageByName(ctx context.Context, name string) (model.Page, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+pageColumns+` FROM pages WHERE name = ?`, name)
	return scanPage(row)
}

// PageNameExists returns the number of pages with the given name.
func (q *Queries) PageNameExists(ctx context.Context, name string) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pages WHERE name = ?`, name).Scan(&n)
	return n, err
}

// ListPagesParams holds pagination for ListPages.
type ListPagesParams struct {
	Limit  int64
	Offset int64
}

// ListPages returns pages ordered by ascending id for deterministic paging.
func (q *Queries) ListPages(ctx context.Context, arg ListPagesParams) ([]model.Page, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+pageColumns+` FROM pages ORDER BY id ASC LIMIT ? OFFSET ?`,
		arg.Limit, arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var pages []model.Page
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

// CountPages returns the total number of pages.
func (q *Queries) CountPages(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pages`).Scan(&n)
	return n, err
}

// UpdatePageParams holds the full field set for UpdatePage. Callers start
// from the existing row and overwrite only patched fields.
type UpdatePageParams struct {
	ID         int64
	Name       string
	ModifiedBy sql.NullInt64
	ModifiedAt sql.NullTime
}

// UpdatePage writes the page fields and returns the stored row.
func (q *Queries) UpdatePage(ctx context.Context, arg UpdatePageParams) (model.Page, error) {
	_, err := q.db.ExecContext(ctx,
		`UPDATE pages SET name = ?, modified_by = ?, modified_at = ? WHERE id = ?`,
		arg.Name, arg.ModifiedBy, arg.ModifiedAt, arg.ID,
	)
	if err != nil {
		return model.Page{}, err
	}
	return q.GetPageByID(ctx, arg.ID)
}

// DeletePage removes the page row.
func (q *Queries) DeletePage(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM pages WHERE id = ?`, id)
	return err
}

func scanPage(row rowScanner) (model.Page, error) {
	var p model.Page
	if err := row.Scan(&p.ID, &p.Name, &p.CreatedAt, &p.AddedBy, &p.ModifiedBy, &p.ModifiedAt); err != nil {
		return model.Page{}, err
	}
	return p, nil
}
