// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"database/sql"
	"time"
)

// Event levels.
const (
	EventLevelInfo    = "info"
	EventLevelWarning = "warning"
	EventLevelError   = "error"
)

// Event categories.
const (
	EventCategoryAuth    = "auth"
	EventCategoryPage    = "page"
	EventCategoryContent = "content"
	EventCategorySetting = "setting"
	EventCategorySystem  = "system"
)

// Event is one entry in the append-only event log. WARN and ERROR
// application logs are mirrored here, as are authorization failures.
type Event struct {
	ID        int64         `json:"id"`
	Level     string        `json:"level"`
	Category  string        `json:"category"`
	Message   string        `json:"message"`
	UserID    sql.NullInt64 `json:"user_id,omitempty"`
	IPAddress string        `json:"ip_address,omitempty"`
	Path      string        `json:"path,omitempty"`
	Metadata  string        `json:"metadata,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}
