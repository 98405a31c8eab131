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

// BusinessStore persists business directory submissions.
type BusinessStore struct {
	regs collection[models.BusinessRegistration]
	now  func() time.Time
}

// NewBusinessStore returns a store backed by business-registrations.json in dataDir.
func NewBusinessStore(dataDir string) *BusinessStore {
	return &BusinessStore{
		regs: newCollection(dataDir, "business-registrations.json", func(r *models.BusinessRegistration) string { return r.ID }),
		now:  time.Now,
	}
}

// CreateBusinessInput is the public registration form.
type CreateBusinessInput struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,emailaddr"`
	Phone        string `json:"phone" validate:"required"`
	BusinessName string `json:"businessName" validate:"required"`
	Category     string `json:"category" validate:"required"`
	Location     string `json:"location" validate:"required"`
}

// UpdateBusinessInput carries the fields an admin may edit. Nil or empty
// fields leave the stored value unchanged.
type UpdateBusinessInput struct {
	Name         *string `json:"name"`
	Email        *string `json:"email" validate:"omitempty,emailaddr"`
	Phone        *string `json:"phone"`
	BusinessName *string `json:"businessName"`
	Category     *string `json:"category"`
	Location     *string `json:"location"`
}

// List returns every registration in submission order.
func (s *BusinessStore) List() []models.BusinessRegistration {
	return s.regs.all()
}

// Count returns the number of stored registrations.
func (s *BusinessStore) Count() int {
	return len(s.regs.all())
}

// FindByID returns the registration with the given id, or nil if not found.
func (s *BusinessStore) FindByID(id string) *models.BusinessRegistration {
	return s.regs.find(id)
}

// Create validates and stores a new pending registration. Email addresses
// are unique across all registrations.
func (s *BusinessStore) Create(in CreateBusinessInput) (*models.BusinessRegistration, error) {
	if err := check(in, "All fields are required"); err != nil {
		return nil, err
	}
	return s.regs.insert(func(regs []models.BusinessRegistration) (models.BusinessRegistration, error) {
		if emailTaken(regs, in.Email, "") {
			return models.BusinessRegistration{}, conflict("Email already registered")
		}
		return models.BusinessRegistration{
			ID:           filestore.NewID(),
			Name:         in.Name,
			Email:        in.Email,
			Phone:        in.Phone,
			BusinessName: in.BusinessName,
			Category:     in.Category,
			Location:     in.Location,
			SubmittedAt:  s.now().UTC(),
			Status:       models.ApprovalPending,
		}, nil
	})
}

// SetStatus records an admin decision. Only approved and rejected are
// accepted; no other field changes.
func (s *BusinessStore) SetStatus(id string, status models.ApprovalStatus) (*models.BusinessRegistration, error) {
	if !status.IsDecision() {
		return nil, invalid("Invalid status")
	}
	return s.regs.modify(id, func(_ []models.BusinessRegistration, r *models.BusinessRegistration) error {
		r.Status = status
		return nil
	})
}

// Update merges the non-empty fields of in into the registration.
func (s *BusinessStore) Update(id string, in UpdateBusinessInput) (*models.BusinessRegistration, error) {
	if err := check(in, "Invalid registration"); err != nil {
		return nil, err
	}
	return s.regs.modify(id, func(regs []models.BusinessRegistration, r *models.BusinessRegistration) error {
		if in.Email != nil && *in.Email != "" && emailTaken(regs, *in.Email, r.ID) {
			return conflict("Email already registered")
		}
		mergeString(&r.Name, in.Name)
		mergeString(&r.Email, in.Email)
		mergeString(&r.Phone, in.Phone)
		mergeString(&r.BusinessName, in.BusinessName)
		mergeString(&r.Category, in.Category)
		mergeString(&r.Location, in.Location)
		return nil
	})
}

// Delete removes the registration with the given id.
func (s *BusinessStore) Delete(id string) error {
	return s.regs.remove(id)
}

func emailTaken(regs []models.BusinessRegistration, email, exceptID string) bool {
	return slices.ContainsFunc(regs, func(r models.BusinessRegistration) bool {
		return r.ID != exceptID && strings.EqualFold(r.Email, email)
	})
}
