// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/carserv/cms/internal/model"
)

const translationColumns = "id, reference_key, language, text, created_at, added_by, modified_by, modified_at"

// CreateTranslationParams holds the fields for CreateTranslation.
type CreateTranslationParams struct {
	ReferenceKey string
	Language     string
	Text         string
	AddedBy      int64
	CreatedAt    time.Time
}

// CreateTranslation inserts a translation and returns the stored row.
func (q *Queries) CreateTranslation(ctx context.Context, arg CreateTranslationParams) (model.Translation, error) {
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO translations (reference_key, language, text, added_by, created_at) VALUES (?, ?, ?, ?, ?)`,
		arg.ReferenceKey, arg.Language, arg.Text, arg.AddedBy, arg.CreatedAt,
	)
	if err != nil {
		return model.Translation{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Translation{}, err
	}
	return q.GetTranslationByID(ctx, id)
}

// GetTranslationByID returns the translation with the given id.
func (q *Queries) GetTranslationByID(ctx context.Context, id int64) (model.Translation, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+translationColumns+` FROM translations WHERE id = ?`, id)
	return scanTranslation(row)
}

// GetTranslationByKeyAndLanguageParams identifies a translation by its
// natural key.
type GetTranslationByKeyAndLanguageParams struct {
	ReferenceKey string
	Language     string
}

// GetTranslationByKeyAndLanguage returns the translation for a key in a language.
func (q *Queries) GetTranslationByKeyAndLanguage(ctx context.Context, arg GetTranslationByKeyAndLanguageParams) (model.Translation, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+translationColumns+` FROM translations WHERE reference_key = ? AND language = ?`,
		arg.ReferenceKey, arg.Language,
	)
	return scanTranslation(row)
}

// TranslationExists returns the number of translations for a key+language pair.
func (q *Queries) TranslationExists(ctx context.Context, arg GetTranslationByKeyAndLanguageParams) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM translations WHERE reference_key = ? AND language = ?`,
		arg.ReferenceKey, arg.Language,
	).Scan(&n)
	return n, err
}

// ListTranslationsParams holds the optional language filter and pagination.
type ListTranslationsParams struct {
	Language string // empty means all languages
	Limit    int64
	Offset   int64
}

// ListTranslations returns translations ordered by ascending id, optionally
// filtered to one language.
func (q *Queries) ListTranslations(ctx context.Context, arg ListTranslationsParams) ([]model.Translation, error) {
	var rows *sql.Rows
	var err error
	if arg.Language != "" {
		rows, err = q.db.QueryContext(ctx,
			`SELECT `+translationColumns+` FROM translations WHERE language = ? ORDER BY id ASC LIMIT ? OFFSET ?`,
			arg.Language, arg.Limit, arg.Offset,
		)
	} else {
		rows, err = q.db.QueryContext(ctx,
			`SELECT `+translationColumns+` FROM translations ORDER BY id ASC LIMIT ? OFFSET ?`,
			arg.Limit, arg.Offset,
		)
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var translations []model.Translation
	for rows.Next() {
		tr, err := scanTranslation(rows)
		if err != nil {
			return nil, err
		}
		translations = append(translations, tr)
	}
	return translations, rows.Err()
}

// CountTranslations returns the number of translations, optionally for one language.
func (q *Queries) CountTranslations(ctx context.Context, language string) (int64, error) {
	var n int64
	var err error
	if language != "" {
		err = q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM translations WHERE language = ?`, language).Scan(&n)
	} else {
		err = q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM translations`).Scan(&n)
	}
	return n, err
}

// UpdateTranslationParams holds the full field set for UpdateTranslation.
type UpdateTranslationParams struct {
	ID         int64
	Text       string
	ModifiedBy sql.NullInt64
	ModifiedAt sql.NullTime
}

// UpdateTranslation writes the translation text and returns the stored row.
// The (reference_key, language) pair is immutable once created.
func (q *Queries) UpdateTranslation(ctx context.Context, arg UpdateTranslationParams) (model.Translation, error) {
	_, err := q.db.ExecContext(ctx,
		`UPDATE translations SET text = ?, modified_by = ?, modified_at = ? WHERE id = ?`,
		arg.Text, arg.ModifiedBy, arg.ModifiedAt, arg.ID,
	)
	if err != nil {
		return model.Translation{}, err
	}
	return q.GetTranslationByID(ctx, arg.ID)
}

// DeleteTranslation removes the translation row.
func (q *Queries) DeleteTranslation(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM translations WHERE id = ?`, id)
	return err
}

func scanTranslation(row rowScanner) (model.Translation, error) {
	var tr model.Translation
	err := row.Scan(&tr.ID, &tr.ReferenceKey, &tr.Language, &tr.Text, &tr.CreatedAt,
		&tr.AddedBy, &tr.ModifiedBy, &tr.ModifiedAt)
	if err != nil {
		return model.Translation{}, err
	}
	return tr, nil
}
