// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/carserv/cms/internal/repo"
	"github.com/carserv/cms/internal/store"
	"github.com/carserv/cms/internal/testutil"
)

func TestFrontendHandler_Home(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := store.Seed(ctx, db, "changeme"); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if err := store.SeedDemo(ctx, db); err != nil {
		t.Fatalf("SeedDemo: %v", err)
	}

	h, err := NewFrontendHandler(repo.New(db))
	if err != nil {
		t.Fatalf("NewFrontendHandler: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.Home(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Welcome") {
		t.Errorf("body missing seeded carousel block")
	}
	if !strings.Contains(body, "CarServ") {
		t.Errorf("body missing site name from settings")
	}
}

func TestFrontendHandler_NamedPage(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := store.Seed(ctx, db, "changeme"); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if err := store.SeedDemo(ctx, db); err != nil {
		t.Fatalf("SeedDemo: %v", err)
	}

	h, err := NewFrontendHandler(repo.New(db))
	if err != nil {
		t.Fatalf("NewFrontendHandler: %v", err)
	}

	t.Run("existing page", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/about", nil)
		rec := httptest.NewRecorder()
		h.NamedPage("About")(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		if !strings.Contains(rec.Body.String(), "About CarServ") {
			t.Errorf("body missing page header block")
		}
	})

	t.Run("missing page renders empty", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/missing", nil)
		rec := httptest.NewRecorder()
		h.NamedPage("Missing")(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
		}
	})
}

func TestFrontendHandler_EmptyDatabase(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	h, err := NewFrontendHandler(repo.New(db))
	if err != nil {
		t.Fatalf("NewFrontendHandler: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.Home(rec, req)

	// No pages seeded at all: the home page still renders, every slot empty
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
