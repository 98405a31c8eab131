// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"
	"time"
)

// Setting defaults used when settings.json has no value for a section.
const (
	DefaultFavicon     = "/favicon.svg"
	DefaultLaunchDate  = "2025-12-31T00:00:00"
	DefaultWhatsAppURL = "https://wa.me/+233XXXXXXXXX"
)

// SiteSettings is the single document stored in settings.json. Each field
// is an independent section; updating one never touches the others.
type SiteSettings struct {
	ContactInfo  ContactInfo  `json:"contactInfo"`
	Favicon      Favicon      `json:"favicon"`
	LaunchDate   string       `json:"launchDate"`
	WhatsAppLink WhatsAppLink `json:"whatsappLink"`
}

// ContactInfo is shown in the site footer and on the contact page.
type ContactInfo struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// Favicon tracks the active icon path and the uploaded override, if any.
type Favicon struct {
	Current string  `json:"current"`
	Custom  *string `json:"custom"`
}

// WhatsAppLink configures the floating chat button.
type WhatsAppLink struct {
	URL     string `json:"url"`
	Enabled bool   `json:"enabled"`
}

// DefaultSiteSettings returns the settings used before anything is saved.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		Favicon:      Favicon{Current: DefaultFavicon},
		LaunchDate:   DefaultLaunchDate,
		WhatsAppLink: WhatsAppLink{URL: DefaultWhatsAppURL, Enabled: true},
	}
}

// launchDateLayouts are the accepted launch date formats, tried in order.
// Layouts without a zone are interpreted in the server's local time.
var launchDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseLaunchDate parses a launch date in any accepted layout.
func ParseLaunchDate(s string) (time.Time, error) {
	for _, layout := range launchDateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized launch date %q", s)
}

// Countdown is the time remaining until launch, broken into display units.
type Countdown struct {
	Days    int  `json:"days"`
	Hours   int  `json:"hours"`
	Minutes int  `json:"minutes"`
	Seconds int  `json:"seconds"`
	Expired bool `json:"expired"`
}

// CountdownTo returns the remaining time from now until target, clamped at
// zero once target has passed.
func CountdownTo(target, now time.Time) Countdown {
	d := target.Sub(now)
	if d <= 0 {
		return Countdown{Expired: true}
	}
	secs := int(d / time.Second)
	return Countdown{
		Days:    secs / 86400,
		Hours:   secs % 86400 / 3600,
		Minutes: secs % 3600 / 60,
		Seconds: secs % 60,
	}
}
