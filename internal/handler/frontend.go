// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler provides the server-rendered HTML views: the public
// site and the admin area.
package handler

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/carserv/cms/internal/model"
	"github.com/carserv/cms/internal/render"
	"github.com/carserv/cms/internal/repo"
	"github.com/carserv/cms/web"
)

// FrontendHandler serves the public site pages.
type FrontendHandler struct {
	repo *repo.Repository
	tmpl *template.Template
}

// NewFrontendHandler creates a frontend handler with parsed templates.
func NewFrontendHandler(r *repo.Repository) (*FrontendHandler, error) {
	tmpl, err := template.ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &FrontendHandler{repo: r, tmpl: tmpl}, nil
}

// PageData is the template payload for public pages.
type PageData struct {
	Title    string
	Page     model.Page
	Slots    map[string]render.Slot
	Settings map[string]string
}

// Home handles GET /.
func (h *FrontendHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, "Home", "home.html")
}

// NamedPage returns a handler serving one fixed page by name.
func (h *FrontendHandler) NamedPage(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.servePage(w, r, name, "page.html")
	}
}

func (h *FrontendHandler) servePage(w http.ResponseWriter, r *http.Request, name, templateName string) {
	ctx := r.Context()

	page, err := h.repo.GetPageByName(ctx, name)
	if err != nil {
		h.renderError(w, err)
		return
	}

	// A missing named page still renders, with every slot empty.
	var items []model.ContentItem
	if page != nil {
		items, err = h.repo.ListPageContent(ctx, page.ID, 0, repo.MaxLimit)
		if err != nil {
			h.renderError(w, err)
			return
		}
	}

	settings, err := h.repo.SettingsSnapshot(ctx)
	if err != nil {
		h.renderError(w, err)
		return
	}

	data := PageData{
		Title:    name,
		Slots:    render.Project(items, render.SchemaForPage(name)),
		Settings: settings,
	}
	if page != nil {
		data.Page = *page
	}
	if siteName, ok := settings[model.SettingKeySiteName]; ok {
		data.Title = name + " - " + siteName
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, templateName, data); err != nil {
		slog.Error("rendering page template", "page", name, "error", err)
	}
}

func (h *FrontendHandler) renderError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "Something went wrong"
	if errors.Is(err, repo.ErrNotFound) {
		status = http.StatusNotFound
		message = "Page not found"
	} else {
		slog.Error("serving public page", "error", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = h.tmpl.ExecuteTemplate(w, "error.html", map[string]any{
		"Status":  status,
		"Message": message,
	})
}
