// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// GalleryImage describes one image file in the public gallery.
type GalleryImage struct {
	ID         int       `json:"id"`
	Filename   string    `json:"filename"`
	URL        string    `json:"url"`
	ThumbURL   string    `json:"thumbUrl,omitempty"`
	UploadedAt time.Time `json:"uploadedAt"`
	Type       string    `json:"type"`
}
