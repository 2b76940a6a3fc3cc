// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/carserv/cms/internal/testutil"
)

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"en", "en", false},
		{"en-US", "en-US", false},
		{"EN-us", "en-US", false},
		{"de", "de", false},
		{"", "", true},
		{"not a tag", "", true},
	}
	for _, tt := range tests {
		got, err := normalizeLanguage(tt.in)
		if tt.wantErr {
			if !IsValidation(err) {
				t.Errorf("normalizeLanguage(%q) error = %v, want ValidationError", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("normalizeLanguage(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("normalizeLanguage(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCreateTranslation(t *testing.T) {
	r, db := newTestRepo(t)
	ctx := context.Background()
	admin := testutil.CreateAdmin(t, db, "admin", "changeme")

	t.Run("success", func(t *testing.T) {
		tr, err := r.CreateTranslation(ctx, CreateTranslationInput{
			ReferenceKey: "nav.home",
			Language:     "en",
			Text:         "Home",
		}, admin)
		if err != nil {
			t.Fatalf("CreateTranslation error: %v", err)
		}
		if tr.ReferenceKey != "nav.home" || tr.Language != "en" {
			t.Errorf("got (%q, %q), want (nav.home, en)", tr.ReferenceKey, tr.Language)
		}
	})

	t.Run("same key other language", func(t *testing.T) {
		if _, err := r.CreateTranslation(ctx, CreateTranslationInput{
			ReferenceKey: "nav.home",
			Language:     "de",
			Text:         "Startseite",
		}, admin); err != nil {
			t.Fatalf("CreateTranslation error: %v", err)
		}
	})

	t.Run("duplicate key and language", func(t *testing.T) {
		_, err := r.CreateTranslation(ctx, CreateTranslationInput{
			ReferenceKey: "nav.home",
			Language:     "en",
			Text:         "Home again",
		}, admin)
		if !IsConflict(err) {
			t.Errorf("error = %v, want ConflictError", err)
		}
	})

	t.Run("invalid language", func(t *testing.T) {
		_, err := r.CreateTranslation(ctx, CreateTranslationInput{
			ReferenceKey: "nav.about",
			Language:     "??",
			Text:         "About",
		}, admin)
		if !IsValidation(err) {
			t.Errorf("error = %v, want ValidationError", err)
		}
	})
}

func TestLookupTranslation(t *testing.T) {
	r, db := newTestRepo(t)
	ctx := context.Background()
	admin := testutil.CreateAdmin(t, db, "admin", "changeme")

	if _, err := r.CreateTranslation(ctx, CreateTranslationInput{
		ReferenceKey: "nav.services",
		Language:     "en",
		Text:         "Services",
	}, admin); err != nil {
		t.Fatalf("CreateTranslation error: %v", err)
	}

	tr, err := r.LookupTranslation(ctx, "nav.services", "en")
	if err != nil {
		t.Fatalf("LookupTranslation error: %v", err)
	}
	if tr.Text != "Services" {
		t.Errorf("Text = %q, want %q", tr.Text, "Services")
	}

	if _, err := r.LookupTranslation(ctx, "nav.services", "fr"); !errors.Is(err, ErrNotFound) {
		t.Errorf("LookupTranslation(fr) = %v, want ErrNotFound", err)
	}
}

func TestListTranslations(t *testing.T) {
	r, db := newTestRepo(t)
	ctx := context.Background()
	admin := testutil.CreateAdmin(t, db, "admin", "changeme")

	seed := []CreateTranslationInput{
		{ReferenceKey: "nav.home", Language: "en", Text: "Home"},
		{ReferenceKey: "nav.home", Language: "de", Text: "Startseite"},
		{ReferenceKey: "nav.about", Language: "en", Text: "About"},
	}
	for _, input := range seed {
		if _, err := r.CreateTranslation(ctx, input, admin); err != nil {
			t.Fatalf("CreateTranslation(%s/%s) error: %v", input.ReferenceKey, input.Language, err)
		}
	}

	all, err := r.ListTranslations(ctx, "", 0, 10)
	if err != nil {
		t.Fatalf("ListTranslations error: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("len(all) = %d, want 3", len(all))
	}

	english, err := r.ListTranslations(ctx, "en", 0, 10)
	if err != nil {
		t.Fatalf("ListTranslations(en) error: %v", err)
	}
	if len(english) != 2 {
		t.Errorf("len(english) = %d, want 2", len(english))
	}

	count, err := r.CountTranslations(ctx, "de")
	if err != nil {
		t.Fatalf("CountTranslations(de) error: %v", err)
	}
	if count != 1 {
		t.Errorf("CountTranslations(de) = %d, want 1", count)
	}

	if _, err := r.ListTranslations(ctx, "bogus tag", 0, 10); !IsValidation(err) {
		t.Errorf("ListTranslations(bogus) = %v, want ValidationError", err)
	}
}

func TestUpdateTranslation(t *testing.T) {
	r, db := newTestRepo(t)
	ctx := context.Background()
	admin := testutil.CreateAdmin(t, db, "admin", "changeme")

	tr, err := r.CreateTranslation(ctx, CreateTranslationInput{
		ReferenceKey: "nav.contact",
		Language:     "en",
		Text:         "Contact",
	}, admin)
	if err != nil {
		t.Fatalf("CreateTranslation error: %v", err)
	}

	text := "Contact Us"
	updated, err := r.UpdateTranslation(ctx, tr.ID, TranslationPatch{Text: &text}, admin)
	if err != nil {
		t.Fatalf("UpdateTranslation error: %v", err)
	}
	if updated.Text != text {
		t.Errorf("Text = %q, want %q", updated.Text, text)
	}
	if updated.ReferenceKey != "nav.contact" || updated.Language != "en" {
		t.Errorf("key/language changed: (%q, %q)", updated.ReferenceKey, updated.Language)
	}
	if !updated.ModifiedBy.Valid || updated.ModifiedBy.Int64 != admin.ID {
		t.Errorf("ModifiedBy = %v, want %d", updated.ModifiedBy, admin.ID)
	}
}

func TestDeleteTranslation(t *testing.T) {
	r, db := newTestRepo(t)
	ctx := context.Background()
	admin := testutil.CreateAdmin(t, db, "admin", "changeme")

	tr, err := r.CreateTranslation(ctx, CreateTranslationInput{
		ReferenceKey: "nav.temp",
		Language:     "en",
		Text:         "Temp",
	}, admin)
	if err != nil {
		t.Fatalf("CreateTranslation error: %v", err)
	}

	if err := r.DeleteTranslation(ctx, tr.ID, admin); err != nil {
		t.Fatalf("DeleteTranslation error: %v", err)
	}
	if _, err := r.GetTranslation(ctx, tr.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetTranslation after delete = %v, want ErrNotFound", err)
	}
}
