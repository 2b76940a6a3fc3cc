// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/carserv/cms/internal/middleware"
	"github.com/carserv/cms/internal/model"
	"github.com/carserv/cms/web"
)

// DocsHandler serves the embedded admin guides.
type DocsHandler struct {
	tmpl     *template.Template
	markdown goldmark.Markdown
}

// NewDocsHandler creates a new DocsHandler.
func NewDocsHandler() (*DocsHandler, error) {
	tmpl, err := template.ParseFS(web.Templates, "templates/admin/*.html")
	if err != nil {
		return nil, err
	}
	return &DocsHandler{
		tmpl:     tmpl,
		markdown: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}, nil
}

// DocsGuide represents a documentation file available for viewing.
type DocsGuide struct {
	Slug  string
	Title string
}

// DocsData is the template payload for the docs overview.
type DocsData struct {
	User   *model.User
	Guides []DocsGuide
}

// GuideData is the template payload for one rendered guide.
type GuideData struct {
	User    *model.User
	Title   string
	Content template.HTML
}

// Overview handles GET /admin/docs.
func (h *DocsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	guides, err := h.listGuides()
	if err != nil {
		slog.Error("listing guides", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, "docs.html", DocsData{
		User:   middleware.GetUser(r),
		Guides: guides,
	}); err != nil {
		slog.Error("rendering docs template", "error", err)
	}
}

// Guide handles GET /admin/docs/{slug} - renders one markdown guide.
func (h *DocsHandler) Guide(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if strings.ContainsAny(slug, "./\\") {
		http.NotFound(w, r)
		return
	}

	source, err := web.Docs.ReadFile("docs/" + slug + ".md")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	var buf bytes.Buffer
	if err := h.markdown.Convert(source, &buf); err != nil {
		slog.Error("converting guide markdown", "slug", slug, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, "guide.html", GuideData{
		User:  middleware.GetUser(r),
		Title: guideTitle(slug),
		// Guides ship inside the binary, so the HTML is trusted.
		Content: template.HTML(buf.String()),
	}); err != nil {
		slog.Error("rendering guide template", "error", err)
	}
}

func (h *DocsHandler) listGuides() ([]DocsGuide, error) {
	entries, err := web.Docs.ReadDir("docs")
	if err != nil {
		return nil, err
	}

	var guides []DocsGuide
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".md") {
			continue
		}
		slug := strings.TrimSuffix(name, ".md")
		guides = append(guides, DocsGuide{Slug: slug, Title: guideTitle(slug)})
	}
	sort.Slice(guides, func(i, j int) bool { return guides[i].Slug < guides[j].Slug })
	return guides, nil
}

func guideTitle(slug string) string {
	words := strings.Split(strings.ReplaceAll(slug, "-", " "), " ")
	for i, word := range words {
		if word != "" {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}
	return strings.Join(words, " ")
}
