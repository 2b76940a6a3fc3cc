// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines domain models and types used throughout the application
// including User, Page, ContentItem, Setting and Translation structures.
package model

import "time"

// Role is a closed set of user roles. Stored as TEXT in the database but
// modeled as a distinct type to keep typo-class bugs out of authorization
// checks.
type Role string

// User roles.
const (
	RoleAdmin    Role = "admin"
	RoleStandard Role = "standard"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStandard
}

// User represents a CMS user account. Accounts are seeded out-of-band and
// are never created or deleted through the public API.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsAdmin returns true if the user has admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
