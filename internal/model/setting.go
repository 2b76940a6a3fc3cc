// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"database/sql"
	"time"
)

// Well-known setting reference keys used by the frontend templates.
const (
	SettingKeySiteName     = "site_name"
	SettingKeyContactEmail = "contact_email"
	SettingKeyContactPhone = "contact_phone"
	SettingKeyAddress      = "address"
)

// Setting is a global key/value pair. ReferenceKey is the human-meaningful
// unique lookup key, distinct from the numeric identity.
type Setting struct {
	ID           int64         `json:"id"`
	ReferenceKey string        `json:"reference_key"`
	Value        string        `json:"value"`
	CreatedAt    time.Time     `json:"created_at"`
	AddedBy      int64         `json:"added_by"`
	ModifiedBy   sql.NullInt64 `json:"modified_by,omitempty"`
	ModifiedAt   sql.NullTime  `json:"modified_at,omitempty"`
}
