// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"time"

	"github.com/carserv/cms/internal/middleware"
	"github.com/carserv/cms/internal/model"
	"github.com/carserv/cms/internal/repo"
)

// SettingResponse represents a site setting in API responses.
type SettingResponse struct {
	ID           int64      `json:"id"`
	ReferenceKey string     `json:"reference_key"`
	Value        string     `json:"value"`
	CreatedAt    time.Time  `json:"created_at"`
	AddedBy      int64      `json:"added_by"`
	ModifiedBy   *int64     `json:"modified_by,omitempty"`
	ModifiedAt   *time.Time `json:"modified_at,omitempty"`
}

// CreateSettingRequest represents the request body for creating a setting.
type CreateSettingRequest struct {
	ReferenceKey string `json:"reference_key"`
	Value        string `json:"value"`
}

// UpdateSettingRequest represents the request body for updating a setting.
// The reference key is immutable.
type UpdateSettingRequest struct {
	Value *string `json:"value,omitempty"`
}

func settingToResponse(s model.Setting) SettingResponse {
	resp := SettingResponse{
		ID:           s.ID,
		ReferenceKey: s.ReferenceKey,
		Value:        s.Value,
		CreatedAt:    s.CreatedAt,
		AddedBy:      s.AddedBy,
	}
	if s.ModifiedBy.Valid {
		resp.ModifiedBy = &s.ModifiedBy.Int64
	}
	if s.ModifiedAt.Valid {
		resp.ModifiedAt = &s.ModifiedAt.Time
	}
	return resp
}

// ListSettings handles GET /api/settings
func (h *Handler) ListSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	skip, limit := parseSkipLimit(r)

	settings, err := h.repo.ListSettings(ctx, skip, limit)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	total, err := h.repo.CountSettings(ctx)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	resp := make([]SettingResponse, 0, len(settings))
	for _, s := range settings {
		resp = append(resp, settingToResponse(s))
	}
	WriteSuccess(w, resp, &Meta{Total: total, Skip: skip, Limit: limit})
}

// GetSetting handles GET /api/settings/{id}
func (h *Handler) GetSetting(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid setting ID", nil)
		return
	}

	setting, err := h.repo.GetSetting(r.Context(), id)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	WriteSuccess(w, settingToResponse(setting), nil)
}

// CreateSetting handles POST /api/settings
func (h *Handler) CreateSetting(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)
	if user == nil {
		WriteUnauthorized(w, "Authentication required")
		return
	}

	var req CreateSettingRequest
	if !decodeBody(w, r, &req) {
		return
	}

	setting, err := h.repo.CreateSetting(r.Context(), repo.CreateSettingInput{
		ReferenceKey: req.ReferenceKey,
		Value:        req.Value,
	}, *user)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	WriteCreated(w, settingToResponse(setting))
}

// UpdateSetting handles PUT /api/settings/{id}
func (h *Handler) UpdateSetting(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)
	if user == nil {
		WriteUnauthorized(w, "Authentication required")
		return
	}

	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid setting ID", nil)
		return
	}

	var req UpdateSettingRequest
	if !decodeBody(w, r, &req) {
		return
	}

	setting, err := h.repo.UpdateSetting(r.Context(), id, repo.SettingPatch{Value: req.Value}, *user)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	WriteSuccess(w, settingToResponse(setting), nil)
}

// DeleteSetting handles DELETE /api/settings/{id}
func (h *Handler) DeleteSetting(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)
	if user == nil {
		WriteUnauthorized(w, "Authentication required")
		return
	}

	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid setting ID", nil)
		return
	}

	if err := h.repo.DeleteSetting(r.Context(), id, *user); err != nil {
		writeRepoError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
