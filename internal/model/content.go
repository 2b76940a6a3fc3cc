// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"database/sql"
	"time"
)

// Well-known content block types. The set is open: a ContentItem may carry
// any non-empty type tag, and page templates ignore tags they do not render.
const (
	ContentTypeCarousel    = "carousel"
	ContentTypeFeature     = "feature"
	ContentTypeAbout       = "about"
	ContentTypeAboutPoint  = "about_point"
	ContentTypeBookingInfo = "booking_info"
	ContentTypePageHeader  = "page_header"
)

// ContentItem is one ordered block of content belonging to a Page.
// Position defines render order within the page; ContentType drives the
// rendering projection dispatch.
type ContentItem struct {
	ID          int64          `json:"id"`
	PageID      int64          `json:"page_id"`
	Position    int64          `json:"position"`
	Title       sql.NullString `json:"title,omitempty"`
	Content     sql.NullString `json:"content,omitempty"`
	ContentType string         `json:"content_type"`
	CreatedAt   time.Time      `json:"created_at"`
	AddedBy     int64          `json:"added_by"`
	ModifiedBy  sql.NullInt64  `json:"modified_by,omitempty"`
	ModifiedAt  sql.NullTime   `json:"modified_at,omitempty"`
}
