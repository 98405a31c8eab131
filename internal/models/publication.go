// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Publication is a book or paper listed on the publications page.
type Publication struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	CoverImage    string    `json:"coverImage,omitempty"`
	Price         *float64  `json:"price,omitempty"`
	PurchaseLink  string    `json:"purchaseLink,omitempty"`
	PublishedDate time.Time `json:"publishedDate"`
	Featured      bool      `json:"featured"`
}
