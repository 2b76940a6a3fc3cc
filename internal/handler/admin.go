// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/carserv/cms/internal/middleware"
	"github.com/carserv/cms/internal/model"
	"github.com/carserv/cms/internal/repo"
	"github.com/carserv/cms/internal/service"
	"github.com/carserv/cms/web"
)

// AdminHandler serves the admin HTML views. All routes behind it require
// an admin identity; the router enforces that.
type AdminHandler struct {
	repo   *repo.Repository
	events *service.EventService
	tmpl   *template.Template
}

// NewAdminHandler creates an admin handler with parsed templates.
func NewAdminHandler(r *repo.Repository, events *service.EventService) (*AdminHandler, error) {
	tmpl, err := template.ParseFS(web.Templates, "templates/admin/*.html")
	if err != nil {
		return nil, err
	}
	return &AdminHandler{repo: r, events: events, tmpl: tmpl}, nil
}

// DashboardData is the template payload for the admin dashboard.
type DashboardData struct {
	User         *model.User
	PageCount    int64
	ContentCount int64
	SettingCount int64
	RecentEvents []model.Event
}

// Dashboard handles GET /admin.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	pageCount, err := h.repo.CountPages(ctx)
	if err != nil {
		h.serverError(w, err)
		return
	}
	contentCount, err := h.repo.CountContentItems(ctx)
	if err != nil {
		h.serverError(w, err)
		return
	}
	settingCount, err := h.repo.CountSettings(ctx)
	if err != nil {
		h.serverError(w, err)
		return
	}
	events, err := h.events.RecentEvents(ctx, 20)
	if err != nil {
		h.serverError(w, err)
		return
	}

	h.render(w, "dashboard.html", DashboardData{
		User:         middleware.GetUser(r),
		PageCount:    pageCount,
		ContentCount: contentCount,
		SettingCount: settingCount,
		RecentEvents: events,
	})
}

// PagesData is the template payload for the admin pages list.
type PagesData struct {
	User  *model.User
	Pages []model.Page
}

// Pages handles GET /admin/pages.
func (h *AdminHandler) Pages(w http.ResponseWriter, r *http.Request) {
	pages, err := h.repo.ListPages(r.Context(), 0, repo.MaxLimit)
	if err != nil {
		h.serverError(w, err)
		return
	}
	h.render(w, "pages.html", PagesData{
		User:  middleware.GetUser(r),
		Pages: pages,
	})
}

// PageEditData is the template payload for one page's content listing.
type PageEditData struct {
	User  *model.User
	Page  model.Page
	Items []model.ContentItem
}

// PageEdit handles GET /admin/pages/{id}.
func (h *AdminHandler) PageEdit(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		http.Error(w, "Invalid page ID", http.StatusBadRequest)
		return
	}

	page, err := h.repo.GetPage(r.Context(), id)
	if err != nil {
		h.repoError(w, err)
		return
	}
	items, err := h.repo.ListPageContent(r.Context(), page.ID, 0, repo.MaxLimit)
	if err != nil {
		h.serverError(w, err)
		return
	}

	h.render(w, "page_edit.html", PageEditData{
		User:  middleware.GetUser(r),
		Page:  page,
		Items: items,
	})
}

// SettingsData is the template payload for the admin settings list.
type SettingsData struct {
	User     *model.User
	Settings []model.Setting
}

// Settings handles GET /admin/settings.
func (h *AdminHandler) Settings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.repo.ListSettings(r.Context(), 0, repo.MaxLimit)
	if err != nil {
		h.serverError(w, err)
		return
	}
	h.render(w, "settings.html", SettingsData{
		User:     middleware.GetUser(r),
		Settings: settings,
	})
}

// TranslationsData is the template payload for the admin translations list.
type TranslationsData struct {
	User         *model.User
	Translations []model.Translation
}

// Translations handles GET /admin/translations.
func (h *AdminHandler) Translations(w http.ResponseWriter, r *http.Request) {
	translations, err := h.repo.ListTranslations(r.Context(), "", 0, repo.MaxLimit)
	if err != nil {
		h.serverError(w, err)
		return
	}
	h.render(w, "translations.html", TranslationsData{
		User:         middleware.GetUser(r),
		Translations: translations,
	})
}

func (h *AdminHandler) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("rendering admin template", "template", name, "error", err)
	}
}

func (h *AdminHandler) serverError(w http.ResponseWriter, err error) {
	slog.Error("serving admin view", "error", err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

func (h *AdminHandler) repoError(w http.ResponseWriter, err error) {
	if repo.IsValidation(err) {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	switch {
	case isNotFound(err):
		http.Error(w, "Not found", http.StatusNotFound)
	default:
		h.serverError(w, err)
	}
}
