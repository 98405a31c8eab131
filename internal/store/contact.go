// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"slices"
	"time"

	"kambelconsult/internal/filestore"
	"kambelconsult/internal/models"
)

// ContactStore persists messages sent through the contact form.
type ContactStore struct {
	msgs collection[models.ContactMessage]
	now  func() time.Time
}

// NewContactStore returns a store backed by contact-messages.json in dataDir.
func NewContactStore(dataDir string) *ContactStore {
	return &ContactStore{
		msgs: newCollection(dataDir, "contact-messages.json", func(m *models.ContactMessage) string { return m.ID }),
		now:  time.Now,
	}
}

// CreateContactInput is the public contact form.
type CreateContactInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,emailaddr"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// UpdateContactInput toggles the admin flags. Read and replied are
// independent; setting one never changes the other.
type UpdateContactInput struct {
	Read    *bool `json:"read"`
	Replied *bool `json:"replied"`
}

// List returns every message, newest first.
func (s *ContactStore) List() []models.ContactMessage {
	msgs := s.msgs.all()
	slices.SortStableFunc(msgs, func(a, b models.ContactMessage) int {
		return b.SubmittedAt.Compare(a.SubmittedAt)
	})
	return msgs
}

// FindByID returns the message with the given id, or nil if not found.
func (s *ContactStore) FindByID(id string) *models.ContactMessage {
	return s.msgs.find(id)
}

// Create stores a new unread message.
func (s *ContactStore) Create(in CreateContactInput) (*models.ContactMessage, error) {
	if err := check(in, "Name, email, subject, and message are required"); err != nil {
		return nil, err
	}
	return s.msgs.insert(func([]models.ContactMessage) (models.ContactMessage, error) {
		return models.ContactMessage{
			ID:          filestore.NewID(),
			Name:        in.Name,
			Email:       in.Email,
			Phone:       in.Phone,
			Subject:     in.Subject,
			Message:     in.Message,
			SubmittedAt: s.now().UTC(),
		}, nil
	})
}

// Update sets the flags present in in.
func (s *ContactStore) Update(id string, in UpdateContactInput) (*models.ContactMessage, error) {
	return s.msgs.modify(id, func(_ []models.ContactMessage, m *models.ContactMessage) error {
		merge(&m.Read, in.Read)
		merge(&m.Replied, in.Replied)
		return nil
	})
}

// Delete removes the message with the given id.
func (s *ContactStore) Delete(id string) error {
	return s.msgs.remove(id)
}
