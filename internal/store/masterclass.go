// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"kambelconsult/internal/filestore"
	"kambelconsult/internal/models"
)

// MasterclassStore persists masterclasses together with their registrations.
// A registration write and the participant recount land in the same save.
type MasterclassStore struct {
	classes collection[models.Masterclass]
	now     func() time.Time
}

// NewMasterclassStore returns a store backed by masterclasses.json in dataDir.
func NewMasterclassStore(dataDir string) *MasterclassStore {
	return &MasterclassStore{
		classes: newCollection(dataDir, "masterclasses.json", func(m *models.Masterclass) string { return m.ID }),
		now:     time.Now,
	}
}

// CreateMasterclassInput is the admin form for a new masterclass.
type CreateMasterclassInput struct {
	Title           string   `json:"title" validate:"required"`
	Description     string   `json:"description" validate:"required"`
	Instructor      string   `json:"instructor" validate:"required"`
	Date            string   `json:"date" validate:"required"`
	Time            string   `json:"time" validate:"required"`
	Duration        string   `json:"duration" validate:"required"`
	Price           *float64 `json:"price" validate:"required"`
	MaxParticipants *int     `json:"maxParticipants"`
	Image           string   `json:"image"`
	Published       bool     `json:"published"`
}

// UpdateMasterclassInput is a partial update. Participant counts and
// registrations are not editable through it.
type UpdateMasterclassInput struct {
	Title           *string  `json:"title"`
	Description     *string  `json:"description"`
	Instructor      *string  `json:"instructor"`
	Date            *string  `json:"date"`
	Time            *string  `json:"time"`
	Duration        *string  `json:"duration"`
	Price           *float64 `json:"price"`
	MaxParticipants *int     `json:"maxParticipants"`
	Image           *string  `json:"image"`
	Published       *bool    `json:"published"`
}

// RegisterInput is the public seat request form.
type RegisterInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,emailaddr"`
	Phone   string `json:"phone" validate:"required"`
	Message string `json:"message"`
}

// List returns masterclasses, earliest date first.
func (s *MasterclassStore) List(publishedOnly bool) []models.Masterclass {
	classes := s.classes.all()
	if publishedOnly {
		classes = slices.DeleteFunc(classes, func(m models.Masterclass) bool { return !m.Published })
	}
	slices.SortStableFunc(classes, func(a, b models.Masterclass) int {
		return compareDates(a.Date, b.Date)
	})
	return classes
}

// FindByID returns the masterclass with the given id, or nil if not found.
func (s *MasterclassStore) FindByID(id string) *models.Masterclass {
	return s.classes.find(id)
}

// Create stores a new masterclass with no registrations.
func (s *MasterclassStore) Create(in CreateMasterclassInput) (*models.Masterclass, error) {
	if err := check(in, "All required fields must be provided"); err != nil {
		return nil, err
	}

	return s.classes.insert(func([]models.Masterclass) (models.Masterclass, error) {
		return models.Masterclass{
			ID:              filestore.NewID(),
			Title:           in.Title,
			Description:     in.Description,
			Instructor:      in.Instructor,
			Date:            in.Date,
			Time:            in.Time,
			Duration:        in.Duration,
			Price:           *in.Price,
			MaxParticipants: in.MaxParticipants,
			Image:           in.Image,
			Published:       in.Published,
			Registrations:   []models.MasterclassRegistration{},
		}, nil
	})
}

// Update merges in into the masterclass.
func (s *MasterclassStore) Update(id string, in UpdateMasterclassInput) (*models.Masterclass, error) {
	return s.modify(id, func(m *models.Masterclass) error {
		mergeString(&m.Title, in.Title)
		mergeString(&m.Description, in.Description)
		mergeString(&m.Instructor, in.Instructor)
		mergeString(&m.Date, in.Date)
		mergeString(&m.Time, in.Time)
		mergeString(&m.Duration, in.Duration)
		merge(&m.Price, in.Price)
		if in.MaxParticipants != nil {
			m.MaxParticipants = in.MaxParticipants
		}
		merge(&m.Image, in.Image)
		merge(&m.Published, in.Published)
		return nil
	})
}

// Delete removes the masterclass and all of its registrations.
func (s *MasterclassStore) Delete(id string) error {
	return s.classes.remove(id)
}

// Register adds a pending registration. It is rejected when the masterclass
// is unpublished or full, or when the email already holds a registration
// that is not cancelled.
func (s *MasterclassStore) Register(id string, in RegisterInput) (*models.MasterclassRegistration, error) {
	if err := check(in, "Name, email, and phone are required"); err != nil {
		return nil, err
	}

	var reg models.MasterclassRegistration
	_, err := s.modify(id, func(m *models.Masterclass) error {
		if !m.Published {
			return invalid("Masterclass is not available for registration")
		}
		if slices.ContainsFunc(m.Registrations, func(r models.MasterclassRegistration) bool {
			return r.Status != models.RegistrationCancelled && strings.EqualFold(r.Email, in.Email)
		}) {
			return conflict("You are already registered for this masterclass")
		}
		if m.Full() {
			return invalid("Masterclass is full")
		}

		reg = models.MasterclassRegistration{
			ID:            filestore.NewID(),
			MasterclassID: m.ID,
			Name:          in.Name,
			Email:         in.Email,
			Phone:         in.Phone,
			Message:       in.Message,
			RegisteredAt:  s.now().UTC(),
			Status:        models.RegistrationPending,
		}
		m.Registrations = append(m.Registrations, reg)
		m.RecountParticipants()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// Registrations returns the registrations of one masterclass.
func (s *MasterclassStore) Registrations(id string) ([]models.MasterclassRegistration, error) {
	m := s.FindByID(id)
	if m == nil {
		return nil, ErrNotFound
	}
	if m.Registrations == nil {
		return []models.MasterclassRegistration{}, nil
	}
	return m.Registrations, nil
}

// SetRegistrationStatus moves a pending registration to confirmed or
// cancelled and recounts participants.
func (s *MasterclassStore) SetRegistrationStatus(id, regID string, status models.RegistrationStatus) (*models.MasterclassRegistration, error) {
	if !status.Valid() {
		return nil, invalid("Invalid status")
	}

	var reg models.MasterclassRegistration
	_, err := s.modify(id, func(m *models.Masterclass) error {
		i := slices.IndexFunc(m.Registrations, func(r models.MasterclassRegistration) bool { return r.ID == regID })
		if i < 0 {
			return ErrNotFound
		}
		r := &m.Registrations[i]
		if !r.Status.CanTransition(status) {
			return invalid("Cannot change a " + string(r.Status) + " registration to " + string(status))
		}
		r.Status = status
		reg = *r
		m.RecountParticipants()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (s *MasterclassStore) modify(id string, fn func(*models.Masterclass) error) (*models.Masterclass, error) {
	return s.classes.modify(id, func(_ []models.Masterclass, m *models.Masterclass) error {
		return fn(m)
	})
}

// compareDates orders date strings chronologically. Dates that do not
// parse sort after every parsable date, then lexically.
func compareDates(a, b string) int {
	ta, errA := parseDate(a)
	tb, errB := parseDate(b)
	switch {
	case errA == nil && errB == nil:
		return ta.Compare(tb)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	}
	return cmp.Compare(a, b)
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, s)
}
