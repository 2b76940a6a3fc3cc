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

// PageResponse represents a page in API responses.
type PageResponse struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	CreatedAt  time.Time  `json:"created_at"`
	AddedBy    int64      `json:"added_by"`
	ModifiedBy *int64     `json:"modified_by,omitempty"`
	ModifiedAt *time.Time `json:"modified_at,omitempty"`
}

// CreatePageRequest represents the request body for creating a page.
type CreatePageRequest struct {
	Name string `json:"name"`
}

// UpdatePageRequest represents the request body for updating a page.
// Absent fields keep their stored values.
type UpdatePageRequest struct {
	Name *string `json:"name,omitempty"`
}

func pageToResponse(p model.Page) PageResponse {
	resp := PageResponse{
		ID:        p.ID,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
		AddedBy:   p.AddedBy,
	}
	if p.ModifiedBy.Valid {
		resp.ModifiedBy = &p.ModifiedBy.Int64
	}
	if p.ModifiedAt.Valid {
		resp.ModifiedAt = &p.ModifiedAt.Time
	}
	return resp
}

// ListPages handles GET /api/pages
func (h *Handler) ListPages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	skip, limit := parseSkipLimit(r)

	pages, err := h.repo.ListPages(ctx, skip, limit)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	total, err := h.repo.CountPages(ctx)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	resp := make([]PageResponse, 0, len(pages))
	for _, p := range pages {
		resp = append(resp, pageToResponse(p))
	}
	WriteSuccess(w, resp, &Meta{Total: total, Skip: skip, Limit: limit})
}

// GetPage handles GET /api/pages/{id}
func (h *Handler) GetPage(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid page ID", nil)
		return
	}

	page, err := h.repo.GetPage(r.Context(), id)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	WriteSuccess(w, pageToResponse(page), nil)
}

// CreatePage handles POST /api/pages
func (h *Handler) CreatePage(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)
	if user == nil {
		WriteUnauthorized(w, "Authentication required")
		return
	}

	var req CreatePageRequest
	if !decodeBody(w, r, &req) {
		return
	}

	page, err := h.repo.CreatePage(r.Context(), repo.CreatePageInput{Name: req.Name}, *user)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	WriteCreated(w, pageToResponse(page))
}

// UpdatePage handles PUT /api/pages/{id}
func (h *Handler) UpdatePage(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)
	if user == nil {
		WriteUnauthorized(w, "Authentication required")
		return
	}

	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid page ID", nil)
		return
	}

	var req UpdatePageRequest
	if !decodeBody(w, r, &req) {
		return
	}

	page, err := h.repo.UpdatePage(r.Context(), id, repo.PagePatch{Name: req.Name}, *user)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	WriteSuccess(w, pageToResponse(page), nil)
}

// DeletePage handles DELETE /api/pages/{id}
func (h *Handler) DeletePage(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)
	if user == nil {
		WriteUnauthorized(w, "Authentication required")
		return
	}

	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid page ID", nil)
		return
	}

	if err := h.repo.DeletePage(r.Context(), id, *user); err != nil {
		writeRepoError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListPageContent handles GET /api/pages/{id}/content
func (h *Handler) ListPageContent(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid page ID", nil)
		return
	}
	skip, limit := parseSkipLimit(r)

	items, err := h.repo.ListPageContent(r.Context(), id, skip, limit)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	resp := make([]ContentItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, contentItemToResponse(item))
	}
	WriteSuccess(w, resp, nil)
}
