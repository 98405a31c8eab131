// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// RegistrationStatus is the state of one seat request for a masterclass.
type RegistrationStatus string

const (
	RegistrationPending   RegistrationStatus = "pending"
	RegistrationConfirmed RegistrationStatus = "confirmed"
	RegistrationCancelled RegistrationStatus = "cancelled"
)

// Valid reports whether s is one of the known states.
func (s RegistrationStatus) Valid() bool {
	switch s {
	case RegistrationPending, RegistrationConfirmed, RegistrationCancelled:
		return true
	}
	return false
}

// CanTransition reports whether a registration in state s may move to next.
// Only pending registrations change state; confirmed and cancelled are final.
func (s RegistrationStatus) CanTransition(next RegistrationStatus) bool {
	return s == RegistrationPending &&
		(next == RegistrationConfirmed || next == RegistrationCancelled)
}

// Masterclass is a scheduled paid session. Registrations are owned by the
// masterclass and stored inline in the same record.
type Masterclass struct {
	ID                  string                    `json:"id"`
	Title               string                    `json:"title"`
	Description         string                    `json:"description"`
	Instructor          string                    `json:"instructor"`
	Date                string                    `json:"date"`
	Time                string                    `json:"time"`
	Duration            string                    `json:"duration"`
	Price               float64                   `json:"price"`
	MaxParticipants     *int                      `json:"maxParticipants,omitempty"`
	CurrentParticipants int                       `json:"currentParticipants"`
	Image               string                    `json:"image,omitempty"`
	Published           bool                      `json:"published"`
	Registrations       []MasterclassRegistration `json:"registrations"`
}

// MasterclassRegistration is a seat request for one masterclass.
type MasterclassRegistration struct {
	ID            string             `json:"id"`
	MasterclassID string             `json:"masterclassId"`
	Name          string             `json:"name"`
	Email         string             `json:"email"`
	Phone         string             `json:"phone"`
	Message       string             `json:"message,omitempty"`
	RegisteredAt  time.Time          `json:"registeredAt"`
	Status        RegistrationStatus `json:"status"`
}

// ActiveRegistrations counts registrations that are not cancelled.
func (m *Masterclass) ActiveRegistrations() int {
	n := 0
	for _, r := range m.Registrations {
		if r.Status != RegistrationCancelled {
			n++
		}
	}
	return n
}

// Full reports whether the capacity limit has been reached. A nil or zero
// MaxParticipants means unlimited.
func (m *Masterclass) Full() bool {
	return m.MaxParticipants != nil && *m.MaxParticipants > 0 && m.ActiveRegistrations() >= *m.MaxParticipants
}

// RecountParticipants refreshes CurrentParticipants from the registrations.
func (m *Masterclass) RecountParticipants() {
	m.CurrentParticipants = m.ActiveRegistrations()
}
