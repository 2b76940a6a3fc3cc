// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/carserv/cms/internal/model"
	"github.com/carserv/cms/internal/store"
)

// CreateTranslationInput holds the fields for a new translation. The
// (ReferenceKey, Language) pair must be unique.
type CreateTranslationInput struct {
	ReferenceKey string
	Language     string
	Text         string
}

// TranslationPatch is a partial update. The key and language are immutable,
// so only the text can change.
type TranslationPatch struct {
	Text *string
}

// normalizeLanguage validates and canonicalizes a BCP 47 language tag.
func normalizeLanguage(code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", NewValidationError("language", "must not be empty")
	}
	tag, err := language.Parse(code)
	if err != nil {
		return "", NewValidationError("language", fmt.Sprintf("invalid language code %q", code))
	}
	return tag.String(), nil
}

// CreateTranslation creates a translated string for a reference key in one
// language.
func (r *Repository) CreateTranslation(ctx context.Context, input CreateTranslationInput, actingUser model.User) (model.Translation, error) {
	if err := requireAdmin(actingUser); err != nil {
		return model.Translation{}, err
	}

	key := strings.TrimSpace(input.ReferenceKey)
	if key == "" {
		return model.Translation{}, NewValidationError("reference_key", "must not be empty")
	}
	lang, err := normalizeLanguage(input.Language)
	if err != nil {
		return model.Translation{}, err
	}

	var tr model.Translation
	err = r.inTx(ctx, func(q *store.Queries) error {
		n, err := q.TranslationExists(ctx, store.GetTranslationByKeyAndLanguageParams{
			ReferenceKey: key,
			Language:     lang,
		})
		if err != nil {
			return fmt.Errorf("checking translation: %w", err)
		}
		if n > 0 {
			return &ConflictError{Message: fmt.Sprintf("translation %q already exists for language %q", key, lang)}
		}

		tr, err = q.CreateTranslation(ctx, store.CreateTranslationParams{
			ReferenceKey: key,
			Language:     lang,
			Text:         input.Text,
			AddedBy:      actingUser.ID,
			CreatedAt:    r.now(),
		})
		if err != nil {
			if store.IsUniqueViolation(err) {
				return &ConflictError{Message: fmt.Sprintf("translation %q already exists for language %q", key, lang)}
			}
			return fmt.Errorf("creating translation: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.Translation{}, err
	}
	return tr, nil
}

// GetTranslation returns a single translation by id.
func (r *Repository) GetTranslation(ctx context.Context, id int64) (model.Translation, error) {
	tr, err := r.queries.GetTranslationByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Translation{}, fmt.Errorf("translation %d: %w", id, ErrNotFound)
		}
		return model.Translation{}, fmt.Errorf("loading translation: %w", err)
	}
	return tr, nil
}

// LookupTranslation returns the translation for a key in a language.
func (r *Repository) LookupTranslation(ctx context.Context, key, langCode string) (model.Translation, error) {
	lang, err := normalizeLanguage(langCode)
	if err != nil {
		return model.Translation{}, err
	}
	tr, err := r.queries.GetTranslationByKeyAndLanguage(ctx, store.GetTranslationByKeyAndLanguageParams{
		ReferenceKey: key,
		Language:     lang,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Translation{}, fmt.Errorf("translation %q (%s): %w", key, lang, ErrNotFound)
		}
		return model.Translation{}, fmt.Errorf("loading translation: %w", err)
	}
	return tr, nil
}

// ListTranslations returns translations in insertion order, optionally
// filtered to one language. An empty langCode means all languages.
func (r *Repository) ListTranslations(ctx context.Context, langCode string, offset, limit int64) ([]model.Translation, error) {
	var lang string
	if langCode != "" {
		var err error
		lang, err = normalizeLanguage(langCode)
		if err != nil {
			return nil, err
		}
	}
	if offset < 0 {
		offset = 0
	}
	trs, err := r.queries.ListTranslations(ctx, store.ListTranslationsParams{
		Language: lang,
		Limit:    clampLimit(limit),
		Offset:   offset,
	})
	if err != nil {
		return nil, fmt.Errorf("listing translations: %w", err)
	}
	return trs, nil
}

// CountTranslations returns the number of translations, optionally limited
// to one language.
func (r *Repository) CountTranslations(ctx context.Context, langCode string) (int64, error) {
	var lang string
	if langCode != "" {
		var err error
		lang, err = normalizeLanguage(langCode)
		if err != nil {
			return 0, err
		}
	}
	count, err := r.queries.CountTranslations(ctx, lang)
	if err != nil {
		return 0, fmt.Errorf("counting translations: %w", err)
	}
	return count, nil
}

// UpdateTranslation applies a partial update and stamps the audit fields.
func (r *Repository) UpdateTranslation(ctx context.Context, id int64, patch TranslationPatch, actingUser model.User) (model.Translation, error) {
	if err := requireAdmin(actingUser); err != nil {
		return model.Translation{}, err
	}

	var tr model.Translation
	err := r.inTx(ctx, func(q *store.Queries) error {
		existing, err := q.GetTranslationByID(ctx, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("translation %d: %w", id, ErrNotFound)
			}
			return fmt.Errorf("loading translation: %w", err)
		}

		text := existing.Text
		if patch.Text != nil {
			text = *patch.Text
		}

		modifiedBy, modifiedAt := r.auditStamp(actingUser)
		tr, err = q.UpdateTranslation(ctx, store.UpdateTranslationParams{
			ID:         id,
			Text:       text,
			ModifiedBy: modifiedBy,
			ModifiedAt: modifiedAt,
		})
		if err != nil {
			return fmt.Errorf("updating translation: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.Translation{}, err
	}
	return tr, nil
}

// DeleteTranslation removes a translation.
func (r *Repository) DeleteTranslation(ctx context.Context, id int64, actingUser model.User) error {
	if err := requireAdmin(actingUser); err != nil {
		return err
	}

	return r.inTx(ctx, func(q *store.Queries) error {
		if _, err := q.GetTranslationByID(ctx, id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("translation %d: %w", id, ErrNotFound)
			}
			return fmt.Errorf("loading translation: %w", err)
		}
		if err := q.DeleteTranslation(ctx, id); err != nil {
			return fmt.Errorf("deleting translation: %w", err)
		}
		return nil
	})
}
