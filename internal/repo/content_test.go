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

func strPtr(s string) *string { return &s }

func int64Ptr(n int64) *int64 { return &n }

func TestCreateContentItem(t *testing.T) {
	r, db := newTestRepo(t)
	ctx := context.Background()
	admin := testutil.CreateAdmin(t, db, "admin", "changeme")
	page := testutil.CreatePage(t, db, "Home", admin.ID)

	t.Run("success", func(t *testing.T) {
		item, err := r.CreateContentItem(ctx, CreateContentItemInput{
			PageID:      page.ID,
			Position:    1,
			Title:       strPtr("Welcome"),
			Content:     strPtr("Quality service since 1995."),
			ContentType: model.ContentTypeCarousel,
		}, admin)
		if err != nil {
			t.Fatalf("CreateContentItem error: %v", err)
		}
		if item.PageID != page.ID {
			t.Errorf("PageID = %d, want %d", item.PageID, page.ID)
		}
		if !item.Title.Valid || item.Title.String != "Welcome" {
			t.Errorf("Title = %v, want Welcome", item.Title)
		}
		if item.AddedBy != admin.ID {
			t.Errorf("AddedBy = %d, want %d", item.AddedBy, admin.ID)
		}
	})

	t.Run("nil optional fields stored as null", func(t *testing.T) {
		item, err := r.CreateContentItem(ctx, CreateContentItemInput{
			PageID:      page.ID,
			Position:    2,
			ContentType: model.ContentTypeFeature,
		}, admin)
		if err != nil {
			t.Fatalf("CreateContentItem error: %v", err)
		}
		if item.Title.Valid {
			t.Errorf("Title = %v, want null", item.Title)
		}
		if item.Content.Valid {
			t.Errorf("Content = %v, want null", item.Content)
		}
	})

	t.Run("unknown page is a validation failure", func(t *testing.T) {
		_, err := r.CreateContentItem(ctx, CreateContentItemInput{
			PageID:      9999,
			Position:    1,
			ContentType: model.ContentTypeFeature,
		}, admin)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("error = %v, want ValidationError", err)
		}
		if _, ok := ve.Fields["page_id"]; !ok {
			t.Errorf("Fields = %v, want page_id entry", ve.Fields)
		}
	})

	t.Run("empty content type", func(t *testing.T) {
		_, err := r.CreateContentItem(ctx, CreateContentItemInput{
			PageID:      page.ID,
			Position:    1,
			ContentType: " ",
		}, admin)
		if !IsValidation(err) {
			t.Errorf("error = %v, want ValidationError", err)
		}
	})

	t.Run("negative position", func(t *testing.T) {
		_, err := r.CreateContentItem(ctx, CreateContentItemInput{
			PageID:      page.ID,
			Position:    -1,
			ContentType: model.ContentTypeFeature,
		}, admin)
		if !IsValidation(err) {
			t.Errorf("error = %v, want ValidationError", err)
		}
	})

	t.Run("standard role forbidden", func(t *testing.T) {
		viewer := testutil.CreateUser(t, db, "viewer", "changeme", model.RoleStandard)
		_, err := r.CreateContentItem(ctx, CreateContentItemInput{
			PageID:      page.ID,
			Position:    1,
			ContentType: model.ContentTypeFeature,
		}, viewer)
		if !errors.Is(err, ErrForbidden) {
			t.Errorf("error = %v, want ErrForbidden", err)
		}
	})
}

func TestListPageContent(t *testing.T) {
	r, db := newTestRepo(t)
	ctx := context.Background()
	admin := testutil.CreateAdmin(t, db, "admin", "changeme")
	page := testutil.CreatePage(t, db, "Home", admin.ID)
	other := testutil.CreatePage(t, db, "About", admin.ID)

	testutil.CreateContentItem(t, db, page.ID, 2, "Second", "", "feature", admin.ID)
	testutil.CreateContentItem(t, db, page.ID, 1, "First", "", "feature", admin.ID)
	testutil.CreateContentItem(t, db, other.ID, 1, "Elsewhere", "", "feature", admin.ID)

	items, err := r.ListPageContent(ctx, page.ID, 0, 10)
	if err != nil {
		t.Fatalf("ListPageContent error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	if items[0].Title.String != "First" || items[1].Title.String != "Second" {
		t.Errorf("order = [%q, %q], want position order", items[0].Title.String, items[1].Title.String)
	}

	count, err := r.CountPageContent(ctx, page.ID)
	if err != nil {
		t.Fatalf("CountPageContent error: %v", err)
	}
	if count != 2 {
		t.Errorf("CountPageContent = %d, want 2", count)
	}

	if _, err := r.ListPageContent(ctx, 9999, 0, 10); !errors.Is(err, ErrNotFound) {
		t.Errorf("ListPageContent(9999) = %v, want ErrNotFound", err)
	}
}

func TestUpdateContentItem(t *testing.T) {
	r, db := newTestRepo(t)
	ctx := context.Background()
	admin := testutil.CreateAdmin(t, db, "admin", "changeme")
	page := testutil.CreatePage(t, db, "Home", admin.ID)
	target := testutil.CreatePage(t, db, "About", admin.ID)
	item := testutil.CreateContentItem(t, db, page.ID, 1, "Original", "body", "feature", admin.ID)

	t.Run("absent fields keep stored values", func(t *testing.T) {
		updated, err := r.UpdateContentItem(ctx, item.ID, ContentItemPatch{
			Position: int64Ptr(5),
		}, admin)
		if err != nil {
			t.Fatalf("UpdateContentItem error: %v", err)
		}
		if updated.Position != 5 {
			t.Errorf("Position = %d, want 5", updated.Position)
		}
		if updated.Title.String != "Original" {
			t.Errorf("Title = %q, want untouched %q", updated.Title.String, "Original")
		}
		if updated.Content.String != "body" {
			t.Errorf("Content = %q, want untouched %q", updated.Content.String, "body")
		}
		if !updated.ModifiedBy.Valid || updated.ModifiedBy.Int64 != admin.ID {
			t.Errorf("ModifiedBy = %v, want %d", updated.ModifiedBy, admin.ID)
		}
	})

	t.Run("empty string clears nullable field", func(t *testing.T) {
		updated, err := r.UpdateContentItem(ctx, item.ID, ContentItemPatch{
			Title: strPtr(""),
		}, admin)
		if err != nil {
			t.Fatalf("UpdateContentItem error: %v", err)
		}
		if updated.Title.Valid {
			t.Errorf("Title = %v, want cleared to null", updated.Title)
		}
		if updated.Content.String != "body" {
			t.Errorf("Content = %q, want untouched", updated.Content.String)
		}
	})

	t.Run("move to existing page", func(t *testing.T) {
		updated, err := r.UpdateContentItem(ctx, item.ID, ContentItemPatch{
			PageID: int64Ptr(target.ID),
		}, admin)
		if err != nil {
			t.Fatalf("UpdateContentItem error: %v", err)
		}
		if updated.PageID != target.ID {
			t.Errorf("PageID = %d, want %d", updated.PageID, target.ID)
		}
	})

	t.Run("move to missing page fails validation", func(t *testing.T) {
		_, err := r.UpdateContentItem(ctx, item.ID, ContentItemPatch{
			PageID: int64Ptr(9999),
		}, admin)
		if !IsValidation(err) {
			t.Errorf("error = %v, want ValidationError", err)
		}
	})

	t.Run("missing item", func(t *testing.T) {
		_, err := r.UpdateContentItem(ctx, 9999, ContentItemPatch{}, admin)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})
}

func TestDeleteContentItem(t *testing.T) {
	r, db := newTestRepo(t)
	ctx := context.Background()
	admin := testutil.CreateAdmin(t, db, "admin", "changeme")
	page := testutil.CreatePage(t, db, "Home", admin.ID)
	item := testutil.CreateContentItem(t, db, page.ID, 1, "Gone", "", "feature", admin.ID)

	if err := r.DeleteContentItem(ctx, item.ID, admin); err != nil {
		t.Fatalf("DeleteContentItem error: %v", err)
	}
	if _, err := r.GetContentItem(ctx, item.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetContentItem after delete = %v, want ErrNotFound", err)
	}
	if err := r.DeleteContentItem(ctx, item.ID, admin); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete = %v, want ErrNotFound", err)
	}
}
