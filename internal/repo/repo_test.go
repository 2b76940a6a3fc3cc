// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package repo

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/carserv/cms/internal/model"
	"github.com/carserv/cms/internal/testutil"
)

// fixedTime is the clock value injected into repositories under test so
// audit stamps are predictable.
var fixedTime = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func newTestRepo(t *testing.T) (*Repository, *sql.DB) {
	t.Helper()
	db, cleanup := testutil.TestDB(t)
	t.Cleanup(cleanup)

	r := New(db)
	r.now = func() time.Time { return fixedTime }
	return r, db
}

func TestClampLimit(t *testing.T) {
	tests := []struct {
		in   int64
		want int64
	}{
		{0, DefaultLimit},
		{-5, DefaultLimit},
		{10, 10},
		{MaxLimit, MaxLimit},
		{MaxLimit + 1, MaxLimit},
	}
	for _, tt := range tests {
		if got := clampLimit(tt.in); got != tt.want {
			t.Errorf("clampLimit(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRequireAdmin(t *testing.T) {
	admin := model.User{ID: 1, Username: "admin", Role: model.RoleAdmin}
	if err := requireAdmin(admin); err != nil {
		t.Errorf("requireAdmin(admin) = %v, want nil", err)
	}

	standard := model.User{ID: 2, Username: "viewer", Role: model.RoleStandard}
	err := requireAdmin(standard)
	if err == nil {
		t.Fatal("requireAdmin(standard) = nil, want ErrForbidden")
	}
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("requireAdmin(standard) = %v, want ErrForbidden", err)
	}
}
