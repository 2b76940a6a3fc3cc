// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/carserv/cms/internal/middleware"
	"github.com/carserv/cms/internal/model"
	"github.com/carserv/cms/internal/testutil"
	"github.com/carserv/cms/internal/version"
)

func TestHealthHandler_Health(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	h := NewHealthHandler(db, &version.Info{Version: "test", GitCommit: "abc123"})

	t.Run("anonymous gets minimal status", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		h.Health(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		var status map[string]any
		if err := json.NewDecoder(rec.Body).Decode(&status); err != nil {
			t.Fatalf("decoding: %v", err)
		}
		if status["status"] != "healthy" {
			t.Errorf("status = %v, want healthy", status["status"])
		}
		if _, ok := status["checks"]; ok {
			t.Error("anonymous response exposes check details")
		}
	})

	t.Run("admin gets check details", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health?verbose=true", nil)
		admin := model.User{ID: 1, Username: "admin", Role: model.RoleAdmin}
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, admin))
		rec := httptest.NewRecorder()
		h.Health(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		var status HealthStatus
		if err := json.NewDecoder(rec.Body).Decode(&status); err != nil {
			t.Fatalf("decoding: %v", err)
		}
		if _, ok := status.Checks["database"]; !ok {
			t.Error("admin response missing database check")
		}
		if status.System == nil {
			t.Fatal("verbose response missing system info")
		}
		if status.System.Version != "test" {
			t.Errorf("system version = %q, want %q", status.System.Version, "test")
		}
	})
}

func TestHealthHandler_LivenessAndReadiness(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	h := NewHealthHandler(db, &version.Info{Version: "test"})

	rec := httptest.NewRecorder()
	h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("liveness status = %d, want %d", rec.Code, http.StatusOK)
	}

	rec = httptest.NewRecorder()
	h.Readiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("readiness status = %d, want %d", rec.Code, http.StatusOK)
	}
}
