// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package repo implements the content repository and the authorization gate:
// audited CRUD over pages, content items, settings and translations, with a
// fixed error taxonomy that maps one-to-one onto transport status codes.
package repo

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for the fixed taxonomy. Handlers map these to HTTP
// statuses with errors.Is/errors.As and never recover from them locally.
var (
	// ErrUnauthorized means the request carried missing or invalid credentials.
	ErrUnauthorized = errors.New("invalid credentials")
	// ErrForbidden means the identity is valid but lacks the required role.
	ErrForbidden = errors.New("insufficient role")
	// ErrNotFound means a referenced id or name does not exist.
	ErrNotFound = errors.New("not found")
)

// ValidationError reports malformed input: empty required fields or bad
// foreign keys. Fields maps field name to a human-readable message.
type ValidationError struct {
	Fields map[string]string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError builds a single-field ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// ConflictError reports a uniqueness violation (username, page name,
// setting reference key, translation key+language) or a blocked delete.
type ConflictError struct {
	Message string
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return e.Message
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
