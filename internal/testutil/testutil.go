// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package testutil provides shared test helpers for the CarServ project.
package testutil

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/carserv/cms/internal/auth"
	"github.com/carserv/cms/internal/model"
	"github.com/carserv/cms/internal/store"
)

// TestLogger creates a silent test logger that only outputs warnings and errors.
func TestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
}

// TestDB creates a temporary test database with migrations applied.
// Returns the database and a cleanup function that should be deferred.
func TestDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()

	f, err := os.CreateTemp(t.TempDir(), "carserv-test-*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	dbPath := f.Name()
	_ = f.Close()

	db, err := store.NewDB(dbPath)
	if err != nil {
		_ = os.Remove(dbPath)
		t.Fatalf("NewDB: %v", err)
	}

	if err := store.Migrate(db); err != nil {
		_ = db.Close()
		_ = os.Remove(dbPath)
		t.Fatalf("Migrate: %v", err)
	}

	return db, func() {
		_ = db.Close()
		_ = os.Remove(dbPath)
	}
}

// CreateUser inserts a user with the given role and password.
func CreateUser(t *testing.T, db *sql.DB, username, password string, role model.Role) model.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	user, err := store.New(db).CreateUser(context.Background(), store.CreateUserParams{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	return user
}

// CreateAdmin inserts an admin user.
func CreateAdmin(t *testing.T, db *sql.DB, username, password string) model.User {
	t.Helper()
	return CreateUser(t, db, username, password, model.RoleAdmin)
}

// CreatePage inserts a page owned by the given user.
func CreatePage(t *testing.T, db *sql.DB, name string, addedBy int64) model.Page {
	t.Helper()

	page, err := store.New(db).CreatePage(context.Background(), store.CreatePageParams{
		Name:      name,
		AddedBy:   addedBy,
		CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("CreatePage: %v", err)
	}
	return page
}

// CreateContentItem inserts a content block on a page.
func CreateContentItem(t *testing.T, db *sql.DB, pageID, position int64, title, content, contentType string, addedBy int64) model.ContentItem {
	t.Helper()

	item, err := store.New(db).CreateContentItem(context.Background(), store.CreateContentItemParams{
		PageID:      pageID,
		Position:    position,
		Title:       sql.NullString{String: title, Valid: title != ""},
		Content:     sql.NullString{String: content, Valid: content != ""},
		ContentType: contentType,
		AddedBy:     addedBy,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		t.Fatalf("CreateContentItem: %v", err)
	}
	return item
}
