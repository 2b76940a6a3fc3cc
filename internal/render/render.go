// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package render turns stored content items into template-ready slots.
// Content bodies are markdown; they are converted to HTML and sanitized
// before reaching any template.
package render

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdown = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// HTML converts a markdown body to sanitized HTML safe for direct
// inclusion in templates.
func HTML(source string) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		// Conversion failures fall back to the sanitized raw text.
		return template.HTML(sanitizer.Sanitize(source))
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes()))
}
