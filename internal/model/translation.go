// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"database/sql"
	"time"
)

// Translation is a keyed, language-scoped text string. The pair
// (ReferenceKey, Language) is unique so lookups are never ambiguous.
type Translation struct {
	ID           int64         `json:"id"`
	ReferenceKey string        `json:"reference_key"`
	Language     string        `json:"language"`
	Text         string        `json:"text"`
	CreatedAt    time.Time     `json:"created_at"`
	AddedBy      int64         `json:"added_by"`
	ModifiedBy   sql.NullInt64 `json:"modified_by,omitempty"`
	ModifiedAt   sql.NullTime  `json:"modified_at,omitempty"`
}
