// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import "errors"

// ErrNotFound is returned by mutations addressed to a record that does not exist.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a missing or malformed input field. Msg is safe
// to show to the client.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// ConflictError reports a uniqueness violation such as a duplicate email.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

func invalid(msg string) error  { return &ValidationError{Msg: msg} }
func conflict(msg string) error { return &ConflictError{Msg: msg} }
