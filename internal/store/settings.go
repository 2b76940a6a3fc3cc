// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/carserv/cms/internal/model"
)

const settingColumns = "id, reference_key, value, created_at, added_by, modified_by, modified_at"

// CreateSettingParams holds the fields for CreateSetting.
type CreateSettingParams struct {
	ReferenceKey string
	Value        string
	AddedBy      int64
	CreatedAt    time.Time
}

// CreateSetting inserts a setting and returns the stored row.
func (q *Queries) CreateSetting(ctx context.Context, arg CreateSettingParams) (model.Setting, error) {
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO settings (reference_key, value, added_by, created_at) VALUES (?, ?, ?, ?)`,
		arg.ReferenceKey, arg.Value, arg.AddedBy, arg.CreatedAt,
	)
	if err != nil {
		return model.Setting{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Setting{}, err
	}
	return q.GetSettingByID(ctx, id)
}

// GetSettingByID returns the setting with the given id.
func (q *Queries) GetSettingByID(ctx context.Context, id int64) (model.Setting, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+settingColumns+` FROM settings WHERE id = ?`, id)
	return scanSetting(row)
}

// GetSettingByKey returns the setting with the given reference key.
func (q *Queries) GetSettingByKey(ctx context.Context, key string) (model.Setting, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+settingColumns+` FROM settings WHERE reference_key = ?`, key)
	return scanSetting(row)
}

// SettingKeyExists returns the number of settings with the given reference key.
func (q *Queries) SettingKeyExists(ctx context.Context, key string) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM settings WHERE reference_key = ?`, key).Scan(&n)
	return n, err
}

// ListSettingsParams holds pagination for ListSettings.
type ListSettingsParams struct {
	Limit  int64
	Offset int64
}

// ListSettings returns settings ordered by ascending id.
func (q *Queries) ListSettings(ctx context.Context, arg ListSettingsParams) ([]model.Setting, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+settingColumns+` FROM settings ORDER BY id ASC LIMIT ? OFFSET ?`,
		arg.Limit, arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	return collectSettings(rows)
}

// ListAllSettings returns every setting without pagination, for snapshots.
func (q *Queries) ListAllSettings(ctx context.Context) ([]model.Setting, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+settingColumns+` FROM settings ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	return collectSettings(rows)
}

// CountSettings returns the total number of settings.
func (q *Queries) CountSettings(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM settings`).Scan(&n)
	return n, err
}

// UpdateSettingParams holds the full field set for UpdateSetting.
type UpdateSettingParams struct {
	ID         int64
	Value      string
	ModifiedBy sql.NullInt64
	ModifiedAt sql.NullTime
}

// UpdateSetting writes the setting value and returns the stored row.
// The reference key is immutable once created.
func (q *Queries) UpdateSetting(ctx context.Context, arg UpdateSettingParams) (model.Setting, error) {
	_, err := q.db.ExecContext(ctx,
		`UPDATE settings SET value = ?, modified_by = ?, modified_at = ? WHERE id = ?`,
		arg.Value, arg.ModifiedBy, arg.ModifiedAt, arg.ID,
	)
	if err != nil {
		return model.Setting{}, err
	}
	return q.GetSettingByID(ctx, arg.ID)
}

// DeleteSetting removes the setting row.
func (q *Queries) DeleteSetting(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM settings WHERE id = ?`, id)
	return err
}

func collectSettings(rows *sql.Rows) ([]model.Setting, error) {
	var settings []model.Setting
	for rows.Next() {
		s, err := scanSetting(rows)
		if err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

func scanSetting(row rowScanner) (model.Setting, error) {
	var s model.Setting
	err := row.Scan(&s.ID, &s.ReferenceKey, &s.Value, &s.CreatedAt, &s.AddedBy, &s.ModifiedBy, &s.ModifiedAt)
	if err != nil {
		return model.Setting{}, err
	}
	return s, nil
}
