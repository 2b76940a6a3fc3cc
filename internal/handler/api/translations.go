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

// TranslationResponse represents a translation in API responses.
type TranslationResponse struct {
	ID           int64      `json:"id"`
	ReferenceKey string     `json:"reference_key"`
	Language     string     `json:"language"`
	Text         string     `json:"text"`
	CreatedAt    time.Time  `json:"created_at"`
	AddedBy      int64      `json:"added_by"`
	ModifiedBy   *int64     `json:"modified_by,omitempty"`
	ModifiedAt   *time.Time `json:"modified_at,omitempty"`
}

// CreateTranslationRequest represents the request body for creating a translation.
type CreateTranslationRequest struct {
	ReferenceKey string `json:"reference_key"`
	Language     string `json:"language"`
	Text         string `json:"text"`
}

// UpdateTranslationRequest represents the request body for updating a
// translation. The key and language are immutable.
type UpdateTranslationRequest struct {
	Text *string `json:"text,omitempty"`
}

func translationToResponse(tr model.Translation) TranslationResponse {
	resp := TranslationResponse{
		ID:           tr.ID,
		ReferenceKey: tr.ReferenceKey,
		Language:     tr.Language,
		Text:         tr.Text,
		CreatedAt:    tr.CreatedAt,
		AddedBy:      tr.AddedBy,
	}
	if tr.ModifiedBy.Valid {
		resp.ModifiedBy = &tr.ModifiedBy.Int64
	}
	if tr.ModifiedAt.Valid {
		resp.ModifiedAt = &tr.ModifiedAt.Time
	}
	return resp
}

// ListTranslations handles GET /api/translations
// An optional language query parameter filters to one language.
func (h *Handler) ListTranslations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	skip, limit := parseSkipLimit(r)
	lang := r.URL.Query().Get("language")

	translations, err := h.repo.ListTranslations(ctx, lang, skip, limit)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	total, err := h.repo.CountTranslations(ctx, lang)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	resp := make([]TranslationResponse, 0, len(translations))
	for _, tr := range translations {
		resp = append(resp, translationToResponse(tr))
	}
	WriteSuccess(w, resp, &Meta{Total: total, Skip: skip, Limit: limit})
}

// GetTranslation handles GET /api/translations/{id}
func (h *Handler) GetTranslation(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid translation ID", nil)
		return
	}

	tr, err := h.repo.GetTranslation(r.Context(), id)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	WriteSuccess(w, translationToResponse(tr), nil)
}

// CreateTranslation handles POST /api/translations
func (h *Handler) CreateTranslation(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)
	if user == nil {
		WriteUnauthorized(w, "Authentication required")
		return
	}

	var req CreateTranslationRequest
	if !decodeBody(w, r, &req) {
		return
	}

	tr, err := h.repo.CreateTranslation(r.Context(), repo.CreateTranslationInput{
		ReferenceKey: req.ReferenceKey,
		Language:     req.Language,
		Text:         req.Text,
	}, *user)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	WriteCreated(w, translationToResponse(tr))
}

// UpdateTranslation handles PUT /api/translations/{id}
func (h *Handler) UpdateTranslation(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)
	if user == nil {
		WriteUnauthorized(w, "Authentication required")
		return
	}

	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid translation ID", nil)
		return
	}

	var req UpdateTranslationRequest
	if !decodeBody(w, r, &req) {
		return
	}

	tr, err := h.repo.UpdateTranslation(r.Context(), id, repo.TranslationPatch{Text: req.Text}, *user)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	WriteSuccess(w, translationToResponse(tr), nil)
}

// DeleteTranslation handles DELETE /api/translations/{id}
func (h *Handler) DeleteTranslation(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)
	if user == nil {
		WriteUnauthorized(w, "Authentication required")
		return
	}

	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid translation ID", nil)
		return
	}

	if err := h.repo.DeleteTranslation(r.Context(), id, *user); err != nil {
		writeRepoError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
