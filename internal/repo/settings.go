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

// CreateSettingInput holds the fields for a new site setting.
type CreateSettingInput struct {
	ReferenceKey string
	Value        string
}

// SettingPatch is a partial update. The reference key is immutable, so only
// the value can change.
type SettingPatch struct {
	Value *string
}

// CreateSetting creates a site-wide setting keyed by a unique reference key.
func (r *Repository) CreateSetting(ctx context.Context, input CreateSettingInput, actingUser model.User) (model.Setting, error) {
	if err := requireAdmin(actingUser); err != nil {
		return model.Setting{}, err
	}

	key := strings.TrimSpace(input.ReferenceKey)
	if key == "" {
		return model.Setting{}, NewValidationError("reference_key", "must not be empty")
	}

	var setting model.Setting
	err := r.inTx(ctx, func(q *store.Queries) error {
		n, err := q.SettingKeyExists(ctx, key)
		if err != nil {
			return fmt.Errorf("checking setting key: %w", err)
		}
		if n > 0 {
			return &ConflictError{Message: fmt.Sprintf("setting %q already exists", key)}
		}

		setting, err = q.CreateSetting(ctx, store.CreateSettingParams{
			ReferenceKey: key,
			Value:        input.Value,
			AddedBy:      actingUser.ID,
			CreatedAt:    r.now(),
		})
		if err != nil {
			if store.IsUniqueViolation(err) {
				return &ConflictError{Message: fmt.Sprintf("setting %q already exists", key)}
			}
			return fmt.Errorf("creating setting: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.Setting{}, err
	}
	return setting, nil
}

// GetSetting returns a single setting by id.
func (r *Repository) GetSetting(ctx context.Context, id int64) (model.Setting, error) {
	setting, err := r.queries.GetSettingByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Setting{}, fmt.Errorf("setting %d: %w", id, ErrNotFound)
		}
		return model.Setting{}, fmt.Errorf("loading setting: %w", err)
	}
	return setting, nil
}

// GetSettingByKey returns a single setting by its reference key.
func (r *Repository) GetSettingByKey(ctx context.Context, key string) (model.Setting, error) {
	setting, err := r.queries.GetSettingByKey(ctx, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Setting{}, fmt.Errorf("setting %q: %w", key, ErrNotFound)
		}
		return model.Setting{}, fmt.Errorf("loading setting: %w", err)
	}
	return setting, nil
}

// ListSettings returns settings in insertion order with pagination.
func (r *Repository) ListSettings(ctx context.Context, offset, limit int64) ([]model.Setting, error) {
	if offset < 0 {
		offset = 0
	}
	settings, err := r.queries.ListSettings(ctx, store.ListSettingsParams{
		Limit:  clampLimit(limit),
		Offset: offset,
	})
	if err != nil {
		return nil, fmt.Errorf("listing settings: %w", err)
	}
	return settings, nil
}

// CountSettings returns the total number of settings.
func (r *Repository) CountSettings(ctx context.Context) (int64, error) {
	count, err := r.queries.CountSettings(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting settings: %w", err)
	}
	return count, nil
}

// SettingsSnapshot returns every setting as a key-value map. The public
// site templates read contact details and the site name from this.
func (r *Repository) SettingsSnapshot(ctx context.Context) (map[string]string, error) {
	settings, err := r.queries.ListAllSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading settings snapshot: %w", err)
	}
	snapshot := make(map[string]string, len(settings))
	for _, s := range settings {
		snapshot[s.ReferenceKey] = s.Value
	}
	return snapshot, nil
}

// UpdateSetting applies a partial update and stamps the audit fields.
func (r *Repository) UpdateSetting(ctx context.Context, id int64, patch SettingPatch, actingUser model.User) (model.Setting, error) {
	if err := requireAdmin(actingUser); err != nil {
		return model.Setting{}, err
	}

	var setting model.Setting
	err := r.inTx(ctx, func(q *store.Queries) error {
		existing, err := q.GetSettingByID(ctx, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("setting %d: %w", id, ErrNotFound)
			}
			return fmt.Errorf("loading setting: %w", err)
		}

		value := existing.Value
		if patch.Value != nil {
			value = *patch.Value
		}

		modifiedBy, modifiedAt := r.auditStamp(actingUser)
		setting, err = q.UpdateSetting(ctx, store.UpdateSettingParams{
			ID:         id,
			Value:      value,
			ModifiedBy: modifiedBy,
			ModifiedAt: modifiedAt,
		})
		if err != nil {
			return fmt.Errorf("updating setting: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.Setting{}, err
	}
	return setting, nil
}

// DeleteSetting removes a setting.
func (r *Repository) DeleteSetting(ctx context.Context, id int64, actingUser model.User) error {
	if err := requireAdmin(actingUser); err != nil {
		return err
	}

	return r.inTx(ctx, func(q *store.Queries) error {
		if _, err := q.GetSettingByID(ctx, id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("setting %d: %w", id, ErrNotFound)
			}
			return fmt.Errorf("loading setting: %w", err)
		}
		if err := q.DeleteSetting(ctx, id); err != nil {
			return fmt.Errorf("deleting setting: %w", err)
		}
		return nil
	})
}
