// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/carserv/cms/internal/model"
	"github.com/carserv/cms/internal/testutil"
)

func TestCreatePage(t *testing.T) {
	r, db := newTestRepo(t)
	ctx := context.Background()
	admin := testutil.CreateAdmin(t, db, "admin", "changeme")

	t.Run("success", func(t *testing.T) {
		page, err := r.CreatePage(ctx, CreatePageInput{Name: "Home"}, admin)
		if err != nil {
			t.Fatalf("CreatePage error: %v", err)
		}
		if page.Name != "Home" {
			t.Errorf("Name = %q, want %q", page.Name, "Home")
		}
		if page.AddedBy != admin.ID {
			t.Errorf("AddedBy = %d, want %d", page.AddedBy, admin.ID)
		}
		if page.ModifiedBy.Valid {
			t.Error("ModifiedBy set on create, want unset")
		}
	})

	t.Run("duplicate name", func(t *testing.T) {
		_, err := r.CreatePage(ctx, CreatePageInput{Name: "Home"}, admin)
		if !IsConflict(err) {
			t.Errorf("error = %v, want ConflictError", err)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := r.CreatePage(ctx, CreatePageInput{Name: "   "}, admin)
		if !IsValidation(err) {
			t.Errorf("error = %v, want ValidationError", err)
		}
	})

	t.Run("standard role forbidden", func(t *testing.T) {
		viewer := testutil.CreateUser(t, db, "viewer", "changeme", model.RoleStandard)
		_, err := r.CreatePage(ctx, CreatePageInput{Name: "Blocked"}, viewer)
		if !errors.Is(err, ErrForbidden) {
			t.Errorf("error = %v, want ErrForbidden", err)
		}
	})
}

func TestGetPage(t *testing.T) {
	r, db := newTestRepo(t)
	ctx := context.Background()
	admin := testutil.CreateAdmin(t, db, "admin", "changeme")
	created := testutil.CreatePage(t, db, "About", admin.ID)

	page, err := r.GetPage(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetPage error: %v", err)
	}
	if page.Name != "About" {
		t.Errorf("Name = %q, want %q", page.Name, "About")
	}

	if _, err := r.GetPage(ctx, 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetPage(9999) = %v, want ErrNotFound", err)
	}
}

func TestGetPageByName(t *testing.T) {
	r, db := newTestRepo(t)
	ctx := context.Background()
	admin := testutil.CreateAdmin(t, db, "admin", "changeme")
	testutil.CreatePage(t, db, "Services", admin.ID)

	page, err := r.GetPageByName(ctx, "Services")
	if err != nil {
		t.Fatalf("GetPageByName error: %v", err)
	}
	if page == nil || page.Name != "Services" {
		t.Errorf("page = %+v, want Services", page)
	}

	// Absence is not an error; missing named pages render empty.
	missing, err := r.GetPageByName(ctx, "Missing")
	if err != nil {
		t.Fatalf("GetPageByName(Missing) error: %v", err)
	}
	if missing != nil {
		t.Errorf("GetPageByName(Missing) = %+v, want nil", missing)
	}
}

func TestListPages(t *testing.T) {
	r, db := newTestRepo(t)
	ctx := context.Background()
	admin := testutil.CreateAdmin(t, db, "admin", "changeme")
	for _, name := range []string{"Home", "About", "Contact"} {
		testutil.CreatePage(t, db, name, admin.ID)
	}

	pages, err := r.ListPages(ctx, 0, 10)
	if err != nil {
		t.Fatalf("ListPages error: %v", err)
	}
	if len(pages) != 3 {
		t.Fatalf("len(pages) = %d, want 3", len(pages))
	}

	count, err := r.CountPages(ctx)
	if err != nil {
		t.Fatalf("CountPages error: %v", err)
	}
	if count != 3 {
		t.Errorf("CountPages = %d, want 3", count)
	}

	skipped, err := r.ListPages(ctx, 2, 10)
	if err != nil {
		t.Fatalf("ListPages error: %v", err)
	}
	if len(skipped) != 1 {
		t.Errorf("len(skipped) = %d, want 1", len(skipped))
	}
}

func TestUpdatePage(t *testing.T) {
	r, db := newTestRepo(t)
	ctx := context.Background()
	admin := testutil.CreateAdmin(t, db, "admin", "changeme")
	page := testutil.CreatePage(t, db, "Aboot", admin.ID)
	testutil.CreatePage(t, db, "Contact", admin.ID)

	t.Run("rename stamps audit fields", func(t *testing.T) {
		name := "About"
		updated, err := r.UpdatePage(ctx, page.ID, PagePatch{Name: &name}, admin)
		if err != nil {
			t.Fatalf("UpdatePage error: %v", err)
		}
		if updated.Name != "About" {
			t.Errorf("Name = %q, want %q", updated.Name, "About")
		}
		if !updated.ModifiedBy.Valid || updated.ModifiedBy.Int64 != admin.ID {
			t.Errorf("ModifiedBy = %v, want %d", updated.ModifiedBy, admin.ID)
		}
		if !updated.ModifiedAt.Valid || !updated.ModifiedAt.Time.Equal(fixedTime) {
			t.Errorf("ModifiedAt = %v, want %v", updated.ModifiedAt, fixedTime)
		}
	})

	t.Run("nil patch keeps name", func(t *testing.T) {
		updated, err := r.UpdatePage(ctx, page.ID, PagePatch{}, admin)
		if err != nil {
			t.Fatalf("UpdatePage error: %v", err)
		}
		if updated.Name != "About" {
			t.Errorf("Name = %q, want %q", updated.Name, "About")
		}
	})

	t.Run("rename to taken name conflicts", func(t *testing.T) {
		name := "Contact"
		_, err := r.UpdatePage(ctx, page.ID, PagePatch{Name: &name}, admin)
		if !IsConflict(err) {
			t.Errorf("error = %v, want ConflictError", err)
		}
	})

	t.Run("missing page", func(t *testing.T) {
		name := "Anything"
		_, err := r.UpdatePage(ctx, 9999, PagePatch{Name: &name}, admin)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})
}

func TestDeletePage(t *testing.T) {
	r, db := newTestRepo(t)
	ctx := context.Background()
	admin := testutil.CreateAdmin(t, db, "admin", "changeme")

	t.Run("empty page deletes", func(t *testing.T) {
		page := testutil.CreatePage(t, db, "Temp", admin.ID)
		if err := r.DeletePage(ctx, page.ID, admin); err != nil {
			t.Fatalf("DeletePage error: %v", err)
		}
		if _, err := r.GetPage(ctx, page.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("GetPage after delete = %v, want ErrNotFound", err)
		}
	})

	t.Run("page with content conflicts", func(t *testing.T) {
		page := testutil.CreatePage(t, db, "Busy", admin.ID)
		testutil.CreateContentItem(t, db, page.ID, 1, "Block", "body", "feature", admin.ID)

		err := r.DeletePage(ctx, page.ID, admin)
		if !IsConflict(err) {
			t.Fatalf("error = %v, want ConflictError", err)
		}
		// Page survives the refused delete
		if _, err := r.GetPage(ctx, page.ID); err != nil {
			t.Errorf("GetPage after refused delete: %v", err)
		}
	})

	t.Run("missing page", func(t *testing.T) {
		if err := r.DeletePage(ctx, 9999, admin); !errors.Is(err, ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("standard role forbidden", func(t *testing.T) {
		viewer := testutil.CreateUser(t, db, "viewer2", "changeme", model.RoleStandard)
		page := testutil.CreatePage(t, db, "Guarded", admin.ID)
		if err := r.DeletePage(ctx, page.ID, viewer); !errors.Is(err, ErrForbidden) {
			t.Errorf("error = %v, want ErrForbidden", err)
		}
	})
}
