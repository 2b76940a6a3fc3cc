// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/carserv/cms/internal/auth"
	"github.com/carserv/cms/internal/model"
)

// DefaultAdminUsername is the username of the seeded admin account.
const DefaultAdminUsername = "admin"

// Seed creates the initial admin user if no users exist. When password is
// empty a random one is generated and printed to the log once; there is no
// other way to recover it.
func Seed(ctx context.Context, db *sql.DB, password string) error {
	queries := New(db)

	_, err := queries.GetUserByUsername(ctx, DefaultAdminUsername)
	if err == nil {
		slog.Info("admin user already exists, skipping seed")
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("checking for admin user: %w", err)
	}

	generated := false
	if password == "" {
		password = uuid.NewString()
		generated = true
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	user, err := queries.CreateUser(ctx, CreateUserParams{
		Username:     DefaultAdminUsername,
		PasswordHash: passwordHash,
		Role:         model.RoleAdmin,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}

	if generated {
		slog.Info("created default admin user with generated password",
			"id", user.ID,
			"username", user.Username,
			"password", password,
		)
	} else {
		slog.Info("created default admin user", "id", user.ID, "username", user.Username)
	}

	return nil
}

// SeedDemo inserts a starter set of pages, content blocks and settings so a
// fresh install renders something. It is a no-op unless the database holds
// no pages at all.
func SeedDemo(ctx context.Context, db *sql.DB) error {
	queries := New(db)

	count, err := queries.CountPages(ctx)
	if err != nil {
		return fmt.Errorf("counting pages: %w", err)
	}
	if count > 0 {
		return nil
	}

	admin, err := queries.GetUserByUsername(ctx, DefaultAdminUsername)
	if err != nil {
		return fmt.Errorf("loading admin user: %w", err)
	}

	now := time.Now()

	type block struct {
		position    int64
		title       string
		content     string
		contentType string
	}
	demoPages := []struct {
		name   string
		blocks []block
	}{
		{
			name: "Home",
			blocks: []block{
				{1, "Welcome", "Quality service for every vehicle.", model.ContentTypeCarousel},
				{2, "Trusted mechanics", "Certified staff, transparent pricing.", model.ContentTypeCarousel},
				{1, "Diagnostics", "Full electronic diagnostics.", model.ContentTypeFeature},
				{2, "Servicing", "Scheduled maintenance and repairs.", model.ContentTypeFeature},
				{1, "About us", "Family-run garage since 1998.", model.ContentTypeAbout},
				{1, "Book online or call us any weekday.", "", model.ContentTypeBookingInfo},
			},
		},
		{
			name: "About",
			blocks: []block{
				{1, "About CarServ", "We keep cars on the road.", model.ContentTypePageHeader},
			},
		},
		{name: "Services"},
		{name: "Contact"},
		{name: "Team"},
		{name: "Testimonials"},
	}

	for _, dp := range demoPages {
		page, err := queries.CreatePage(ctx, CreatePageParams{
			Name:      dp.name,
			AddedBy:   admin.ID,
			CreatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("seeding page %q: %w", dp.name, err)
		}
		for _, b := range dp.blocks {
			_, err := queries.CreateContentItem(ctx, CreateContentItemParams{
				PageID:      page.ID,
				Position:    b.position,
				Title:       sql.NullString{String: b.title, Valid: b.title != ""},
				Content:     sql.NullString{String: b.content, Valid: b.content != ""},
				ContentType: b.contentType,
				AddedBy:     admin.ID,
				CreatedAt:   now,
			})
			if err != nil {
				return fmt.Errorf("seeding content for %q: %w", dp.name, err)
			}
		}
	}

	defaults := map[string]string{
		model.SettingKeySiteName:     "CarServ",
		model.SettingKeyContactEmail: "info@carserv.example",
		model.SettingKeyContactPhone: "+1 555 0100",
		model.SettingKeyAddress:      "1 Workshop Lane",
	}
	for key, value := range defaults {
		_, err := queries.CreateSetting(ctx, CreateSettingParams{
			ReferenceKey: key,
			Value:        value,
			AddedBy:      admin.ID,
			CreatedAt:    now,
		})
		if err != nil {
			return fmt.Errorf("seeding setting %q: %w", key, err)
		}
	}

	slog.Info("seeded demo content", "pages", len(demoPages), "settings", len(defaults))
	return nil
}
