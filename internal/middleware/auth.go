// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware for authentication,
// rate limiting and request hardening.
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/carserv/cms/internal/model"
	"github.com/carserv/cms/internal/repo"
)

// ContextKey is the type for request context keys set by this package.
type ContextKey string

// ContextKeyUser is the context key for the authenticated user.
const ContextKeyUser ContextKey = "user"

// APIError represents a JSON error response for the API.
type APIError struct {
	Error struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details,omitempty"`
	} `json:"error"`
}

// WriteAPIError writes a JSON error response.
func WriteAPIError(w http.ResponseWriter, statusCode int, code, message string, details map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	apiErr := APIError{}
	apiErr.Error.Code = code
	apiErr.Error.Message = message
	apiErr.Error.Details = details

	_ = json.NewEncoder(w).Encode(apiErr)
}

// unauthorized writes a 401 with a basic-auth challenge.
func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", `Basic realm="carserv", charset="UTF-8"`)
	WriteAPIError(w, http.StatusUnauthorized, "unauthorized", message, nil)
}

// Authenticator resolves basic-auth credentials to a user. Satisfied by
// *repo.Repository.
type Authenticator interface {
	Authenticate(ctx context.Context, username, secret string) (model.User, error)
}

// AuthEventRecorder persists authentication events to the audit log.
// Satisfied by *service.EventService.
type AuthEventRecorder interface {
	LogAuthEvent(ctx context.Context, level, message string, userID *int64, ipAddress, path string) error
}

// BasicAuth resolves HTTP basic-auth credentials into the request context.
// Every request is checked independently; no session is created. Requests
// without credentials pass through anonymous, requests with bad credentials
// are rejected so a caller never proceeds with a silently ignored identity.
// A non-nil recorder receives an audit event per rejected attempt.
func BasicAuth(authn Authenticator, events AuthEventRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, secret, ok := r.BasicAuth()
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			user, err := authn.Authenticate(r.Context(), username, secret)
			if err != nil {
				if errors.Is(err, repo.ErrUnauthorized) {
					// The recorder writes the audit row; the log line
					// stays below the event mirror threshold.
					slog.Info("failed authentication attempt", "username", username, "path", r.URL.Path)
					if events != nil {
						_ = events.LogAuthEvent(r.Context(), model.EventLevelWarning,
							"failed authentication attempt", nil, getClientIP(r), r.URL.Path)
					}
					unauthorized(w, "Invalid credentials")
					return
				}
				slog.Error("authentication error", "error", err)
				WriteAPIError(w, http.StatusInternalServerError, "internal_error", "Authentication failed", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUser retrieves the authenticated user from the request context.
// Returns nil for anonymous requests.
func GetUser(r *http.Request) *model.User {
	user, ok := r.Context().Value(ContextKeyUser).(model.User)
	if !ok {
		return nil
	}
	return &user
}

// RequireUser rejects anonymous requests with 401. Role checks happen in
// the repository layer, which returns forbidden for non-admin writers.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetUser(r) == nil {
			unauthorized(w, "Authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects anonymous requests with 401 and authenticated
// non-admin users with 403. Used by the admin HTML views, where the
// repository's own role check is not on the read path.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := GetUser(r)
		if user == nil {
			unauthorized(w, "Authentication required")
			return
		}
		if !user.IsAdmin() {
			WriteAPIError(w, http.StatusForbidden, "forbidden", "Admin role required", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}
