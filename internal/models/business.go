// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the records persisted in the JSON data files and
// the small pieces of behavior that belong to them.
package models

import "time"

// ApprovalStatus is the review state of a business directory submission.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// IsDecision reports whether s is a status an admin may set.
func (s ApprovalStatus) IsDecision() bool {
	return s == ApprovalApproved || s == ApprovalRejected
}

// BusinessRegistration is a listing request submitted from the public form.
type BusinessRegistration struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Email        string         `json:"email"`
	Phone        string         `json:"phone"`
	BusinessName string         `json:"businessName"`
	Category     string         `json:"category"`
	Location     string         `json:"location"`
	SubmittedAt  time.Time      `json:"submittedAt"`
	Status       ApprovalStatus `json:"status"`
}
