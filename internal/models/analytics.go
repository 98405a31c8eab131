// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// PageView is one recorded visit to a public page.
type PageView struct {
	Page      string    `json:"page"`
	Timestamp time.Time `json:"timestamp"`
	UserAgent string    `json:"userAgent"`
	Referrer  string    `json:"referrer"`
}

// RegistrationEvent records where a registration originated.
type RegistrationEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
}

// Analytics is the single document stored in analytics.json.
type Analytics struct {
	PageViews     []PageView          `json:"pageViews"`
	Registrations []RegistrationEvent `json:"registrations"`
	LastUpdated   time.Time           `json:"lastUpdated"`
}
