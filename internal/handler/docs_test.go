// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func newDocsRouter(t *testing.T) *chi.Mux {
	t.Helper()
	h, err := NewDocsHandler()
	if err != nil {
		t.Fatalf("NewDocsHandler: %v", err)
	}
	r := chi.NewRouter()
	r.Get("/admin/docs", h.Overview)
	r.Get("/admin/docs/{slug}", h.Guide)
	return r
}

func TestDocsHandler_Overview(t *testing.T) {
	router := newDocsRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/docs", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "getting-started") {
		t.Errorf("overview missing getting-started guide link")
	}
}

func TestDocsHandler_Guide(t *testing.T) {
	router := newDocsRouter(t)

	t.Run("existing guide renders markdown", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/docs/api", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		if !strings.Contains(rec.Body.String(), "<table>") {
			t.Errorf("guide body missing rendered endpoint table")
		}
	})

	t.Run("unknown guide", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/docs/nope", nil))
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}
	})

	t.Run("traversal slug rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin/docs/"+
			"..%2F..%2Fsecret", nil)
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}
	})
}

func TestGuideTitle(t *testing.T) {
	tests := []struct {
		slug string
		want string
	}{
		{"getting-started", "Getting Started"},
		{"api", "Api"},
		{"content-model", "Content Model"},
	}
	for _, tt := range tests {
		if got := guideTitle(tt.slug); got != tt.want {
			t.Errorf("guideTitle(%q) = %q, want %q", tt.slug, got, tt.want)
		}
	}
}
