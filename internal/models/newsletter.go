// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// NewsletterSubscriber is a mailing list entry. Unsubscribing clears Active
// instead of removing the record.
type NewsletterSubscriber struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name,omitempty"`
	SubscribedAt time.Time `json:"subscribedAt"`
	Active       bool      `json:"active"`
}
