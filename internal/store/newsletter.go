// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"slices"
	"strings"
	"time"

	"kambelconsult/internal/filestore"
	"kambelconsult/internal/models"
)

// NewsletterStore persists mailing list subscribers. Emails are stored in
// lowercase and are unique; unsubscribing only deactivates the entry.
type NewsletterStore struct {
	subs collection[models.NewsletterSubscriber]
	now  func() time.Time
}

// NewNewsletterStore returns a store backed by newsletter-subscribers.json in dataDir.
func NewNewsletterStore(dataDir string) *NewsletterStore {
	return &NewsletterStore{
		subs: newCollection(dataDir, "newsletter-subscribers.json", func(s *models.NewsletterSubscriber) string { return strings.ToLower(s.Email) }),
		now:  time.Now,
	}
}

// SubscribeInput is the public signup form.
type SubscribeInput struct {
	Email string `json:"email" validate:"required,emailaddr"`
	Name  string `json:"name"`
}

// List returns active subscribers, or every subscriber when all is set.
func (s *NewsletterStore) List(all bool) []models.NewsletterSubscriber {
	subs := s.subs.all()
	if all {
		return subs
	}
	return slices.DeleteFunc(subs, func(sub models.NewsletterSubscriber) bool { return !sub.Active })
}

// FindByEmail returns the subscriber for email in any letter case, or nil.
func (s *NewsletterStore) FindByEmail(email string) *models.NewsletterSubscriber {
	return s.subs.find(strings.ToLower(email))
}

// Subscribe adds a new subscriber or reactivates an inactive one in place,
// keeping its id. reactivated reports which of the two happened. An email
// that is already active is a conflict.
func (s *NewsletterStore) Subscribe(in SubscribeInput) (sub *models.NewsletterSubscriber, reactivated bool, err error) {
	if err := check(in, "Email is required"); err != nil {
		return nil, false, err
	}

	email := strings.ToLower(in.Email)
	var result models.NewsletterSubscriber
	err = s.subs.file.Update(func(subs *[]models.NewsletterSubscriber) error {
		if i := s.subs.index(*subs, email); i >= 0 {
			existing := &(*subs)[i]
			if existing.Active {
				return conflict("Email is already subscribed")
			}
			existing.Active = true
			mergeString(&existing.Name, &in.Name)
			result = *existing
			reactivated = true
			return nil
		}

		result = models.NewsletterSubscriber{
			ID:           filestore.NewID(),
			Email:        email,
			Name:         in.Name,
			SubscribedAt: s.now().UTC(),
			Active:       true,
		}
		*subs = append(*subs, result)
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return &result, reactivated, nil
}

// Unsubscribe deactivates the subscriber for email.
func (s *NewsletterStore) Unsubscribe(email string) error {
	if email == "" {
		return invalid("Email is required")
	}
	_, err := s.subs.modify(strings.ToLower(email), func(_ []models.NewsletterSubscriber, sub *models.NewsletterSubscriber) error {
		sub.Active = false
		return nil
	})
	return err
}
