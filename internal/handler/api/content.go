// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/carserv/cms/internal/middleware"
	"github.com/carserv/cms/internal/model"
	"github.com/carserv/cms/internal/repo"
)

// ContentItemResponse represents a content block in API responses.
type ContentItemResponse struct {
	ID          int64      `json:"id"`
	PageID      int64      `json:"page_id"`
	Position    int64      `json:"position"`
	Title       *string    `json:"title,omitempty"`
	Content     *string    `json:"content,omitempty"`
	ContentType string     `json:"content_type"`
	CreatedAt   time.Time  `json:"created_at"`
	AddedBy     int64      `json:"added_by"`
	ModifiedBy  *int64     `json:"modified_by,omitempty"`
	ModifiedAt  *time.Time `json:"modified_at,omitempty"`
}

// CreateContentItemRequest represents the request body for creating a content block.
type CreateContentItemRequest struct {
	PageID      int64   `json:"page_id"`
	Position    int64   `json:"position"`
	Title       *string `json:"title,omitempty"`
	Content     *string `json:"content,omitempty"`
	ContentType string  `json:"content_type"`
}

// UpdateContentItemRequest represents the request body for updating a
// content block. Absent fields keep their stored values; an explicit empty
// string clears a nullable field.
type UpdateContentItemRequest struct {
	PageID      *int64  `json:"page_id,omitempty"`
	Position    *int64  `json:"position,omitempty"`
	Title       *string `json:"title,omitempty"`
	Content     *string `json:"content,omitempty"`
	ContentType *string `json:"content_type,omitempty"`
}

func contentItemToResponse(ci model.ContentItem) ContentItemResponse {
	resp := ContentItemResponse{
		ID:          ci.ID,
		PageID:      ci.PageID,
		Position:    ci.Position,
		ContentType: ci.ContentType,
		CreatedAt:   ci.CreatedAt,
		AddedBy:     ci.AddedBy,
	}
	if ci.Title.Valid {
		resp.Title = &ci.Title.String
	}
	if ci.Content.Valid {
		resp.Content = &ci.Content.String
	}
	if ci.ModifiedBy.Valid {
		resp.ModifiedBy = &ci.ModifiedBy.Int64
	}
	if ci.ModifiedAt.Valid {
		resp.ModifiedAt = &ci.ModifiedAt.Time
	}
	return resp
}

// ListContentItems handles GET /api/content. An optional page_id query
// parameter narrows the listing to one page's blocks in position order.
func (h *Handler) ListContentItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	skip, limit := parseSkipLimit(r)

	var (
		items []model.ContentItem
		total int64
		err   error
	)
	if v := r.URL.Query().Get("page_id"); v != "" {
		pageID, parseErr := strconv.ParseInt(v, 10, 64)
		if parseErr != nil {
			WriteBadRequest(w, "Invalid page_id", nil)
			return
		}
		items, err = h.repo.ListPageContent(ctx, pageID, skip, limit)
		if err == nil {
			total, err = h.repo.CountPageContent(ctx, pageID)
		}
	} else {
		items, err = h.repo.ListContentItems(ctx, skip, limit)
		if err == nil {
			total, err = h.repo.CountContentItems(ctx)
		}
	}
	if err != nil {
		writeRepoError(w, err)
		return
	}

	resp := make([]ContentItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, contentItemToResponse(item))
	}
	WriteSuccess(w, resp, &Meta{Total: total, Skip: skip, Limit: limit})
}

// GetContentItem handles GET /api/content/{id}
func (h *Handler) GetContentItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid content item ID", nil)
		return
	}

	item, err := h.repo.GetContentItem(r.Context(), id)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	WriteSuccess(w, contentItemToResponse(item), nil)
}

// CreateContentItem handles POST /api/content
func (h *Handler) CreateContentItem(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)
	if user == nil {
		WriteUnauthorized(w, "Authentication required")
		return
	}

	var req CreateContentItemRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := h.repo.CreateContentItem(r.Context(), repo.CreateContentItemInput{
		PageID:      req.PageID,
		Position:    req.Position,
		Title:       req.Title,
		Content:     req.Content,
		ContentType: req.ContentType,
	}, *user)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	WriteCreated(w, contentItemToResponse(item))
}

// UpdateContentItem handles PUT /api/content/{id}
func (h *Handler) UpdateContentItem(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)
	if user == nil {
		WriteUnauthorized(w, "Authentication required")
		return
	}

	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid content item ID", nil)
		return
	}

	var req UpdateContentItemRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := h.repo.UpdateContentItem(r.Context(), id, repo.ContentItemPatch{
		PageID:      req.PageID,
		Position:    req.Position,
		Title:       req.Title,
		Content:     req.Content,
		ContentType: req.ContentType,
	}, *user)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	WriteSuccess(w, contentItemToResponse(item), nil)
}

// DeleteContentItem handles DELETE /api/content/{id}
func (h *Handler) DeleteContentItem(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)
	if user == nil {
		WriteUnauthorized(w, "Authentication required")
		return
	}

	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid content item ID", nil)
		return
	}

	if err := h.repo.DeleteContentItem(r.Context(), id, *user); err != nil {
		writeRepoError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
