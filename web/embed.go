// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package web holds the embedded templates and admin guides.
package web

import "embed"

// Templates contains the public and admin HTML templates.
//
//go:embed templates/*.html templates/admin/*.html
var Templates embed.FS

// Docs contains the markdown guides served under /admin/docs.
//
//go:embed docs/*.md
var Docs embed.FS
