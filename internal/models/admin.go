// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Admin is a back-office account. Credentials live in admins.json; the
// password hash and TOTP secret are never serialized in API responses,
// which use AdminView.
type Admin struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	DisplayName  string    `json:"displayName"`
	TOTPSecret   *string   `json:"totpSecret,omitempty"` // set during 2FA setup
	TOTPEnabled  bool      `json:"totpEnabled"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// AdminView is the public projection of an Admin.
type AdminView struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	TOTPEnabled bool   `json:"totpEnabled"`
}

// View returns the public projection of a.
func (a *Admin) View() AdminView {
	return AdminView{ID: a.ID, Email: a.Email, DisplayName: a.DisplayName, TOTPEnabled: a.TOTPEnabled}
}
