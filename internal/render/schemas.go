// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import "github.com/carserv/cms/internal/model"

// Fixed slot layouts for the public views. Editors change content, not
// structure, so these live in code rather than the database.
var (
	HomeSchema = Schema{
		{Name: "carousel", ContentType: model.ContentTypeCarousel, Kind: SlotList},
		{Name: "features", ContentType: model.ContentTypeFeature, Kind: SlotList},
		{Name: "about", ContentType: model.ContentTypeAbout, Kind: SlotSingle},
		{Name: "about_points", ContentType: model.ContentTypeAboutPoint, Kind: SlotList},
		{Name: "booking_info", ContentType: model.ContentTypeBookingInfo, Kind: SlotSingle},
	}

	// Secondary pages share a header-plus-blocks layout.
	StandardSchema = Schema{
		{Name: "header", ContentType: model.ContentTypePageHeader, Kind: SlotSingle},
		{Name: "blocks", ContentType: model.ContentTypeFeature, Kind: SlotList},
		{Name: "about", ContentType: model.ContentTypeAbout, Kind: SlotSingle},
		{Name: "about_points", ContentType: model.ContentTypeAboutPoint, Kind: SlotList},
		{Name: "booking_info", ContentType: model.ContentTypeBookingInfo, Kind: SlotSingle},
	}
)

// SchemaForPage returns the slot layout used to render the named page.
func SchemaForPage(name string) Schema {
	if name == "Home" {
		return HomeSchema
	}
	return StandardSchema
}
