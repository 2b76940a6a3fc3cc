// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"html/template"
	"sort"

	"github.com/carserv/cms/internal/model"
)

// SlotKind says whether a slot holds one item or an ordered list.
type SlotKind int

const (
	// SlotSingle holds at most one item; when several stored items map to
	// the slot the highest-position one wins.
	SlotSingle SlotKind = iota
	// SlotList holds every matching item in ascending position order.
	SlotList
)

// SlotSpec binds one stored content type to a named template slot.
type SlotSpec struct {
	Name        string
	ContentType string
	Kind        SlotKind
}

// Schema is the fixed slot layout of one public view.
type Schema []SlotSpec

// Item is a content block prepared for templates: body converted from
// markdown and sanitized, title passed through for escaped printing.
type Item struct {
	ID       int64
	Position int64
	Title    string
	Body     template.HTML
}

// Slot is the projected value of one schema entry.
type Slot struct {
	Kind  SlotKind
	Item  Item   // set when Kind is SlotSingle and a match existed
	Items []Item // set when Kind is SlotList
	Found bool   // false when no stored item matched
}

// Project groups a page's content items into the schema's named slots.
// Items are ordered by ascending position regardless of input order; items
// whose content type appears nowhere in the schema are dropped. Every slot
// named by the schema is present in the result even when empty.
func Project(items []model.ContentItem, schema Schema) map[string]Slot {
	sorted := make([]model.ContentItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Position != sorted[j].Position {
			return sorted[i].Position < sorted[j].Position
		}
		return sorted[i].ID < sorted[j].ID
	})

	byType := make(map[string]*SlotSpec, len(schema))
	slots := make(map[string]Slot, len(schema))
	for i := range schema {
		spec := &schema[i]
		byType[spec.ContentType] = spec
		slots[spec.Name] = Slot{Kind: spec.Kind}
	}

	for _, ci := range sorted {
		spec, ok := byType[ci.ContentType]
		if !ok {
			continue
		}
		item := projectItem(ci)
		slot := slots[spec.Name]
		switch spec.Kind {
		case SlotSingle:
			slot.Item = item
			slot.Found = true
		case SlotList:
			slot.Items = append(slot.Items, item)
			slot.Found = true
		}
		slots[spec.Name] = slot
	}

	return slots
}

func projectItem(ci model.ContentItem) Item {
	item := Item{
		ID:       ci.ID,
		Position: ci.Position,
		Title:    ci.Title.String,
	}
	if ci.Content.Valid {
		item.Body = HTML(ci.Content.String)
	}
	return item
}
