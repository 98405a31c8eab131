// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// ConsultancyService is one offering on the services page, displayed in
// ascending Order.
type ConsultancyService struct {
	ID                  string `json:"id"`
	Title               string `json:"title"`
	Description         string `json:"description"`
	DetailedDescription string `json:"detailedDescription,omitempty"`
	Icon                string `json:"icon,omitempty"`
	Image               string `json:"image,omitempty"`
	Category            string `json:"category"`
	Featured            bool   `json:"featured"`
	Order               int    `json:"order"`
}
