// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"time"

	"github.com/carserv/cms/internal/middleware"
	"github.com/carserv/cms/internal/model"
)

// UserResponse represents a user account in API responses. The password
// hash never leaves the server.
type UserResponse struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	Role      model.Role `json:"role"`
	CreatedAt time.Time  `json:"created_at"`
}

func userToResponse(u model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// ListUsers handles GET /api/users. This listing predates the public-read
// split and stays private: any authenticated user may call it, anonymous
// callers may not.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	if middleware.GetUser(r) == nil {
		WriteUnauthorized(w, "Authentication required")
		return
	}

	ctx := r.Context()
	skip, limit := parseSkipLimit(r)

	users, err := h.repo.ListUsers(ctx, skip, limit)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	total, err := h.repo.CountUsers(ctx)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	resp := make([]UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, userToResponse(u))
	}
	WriteSuccess(w, resp, &Meta{Total: total, Skip: skip, Limit: limit})
}
