// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"database/sql"
	"time"
)

// Page is a named container of ordered content blocks. Name is the lookup
// key for public rendering routes and must stay unique.
type Page struct {
	ID         int64         `json:"id"`
	Name       string        `json:"name"`
	CreatedAt  time.Time     `json:"created_at"`
	AddedBy    int64         `json:"added_by"`
	ModifiedBy sql.NullInt64 `json:"modified_by,omitempty"`
	ModifiedAt sql.NullTime  `json:"modified_at,omitempty"`
}
