// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

const msgInvalidEmail = "Invalid email format"

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	validate     = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New()
	// emailaddr is the address pattern the public forms accept, not the
	// stricter built-in "email" rule.
	v.RegisterValidation("emailaddr", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	return v
}

// IsEmail reports whether s looks like an email address.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// check validates in against its struct tags. Any failed rule other than
// emailaddr reports missing; a failed emailaddr rule alone reports an
// invalid email, so required fields are checked before format.
func check(in any, missing string) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate input: %w", err)
	}
	for _, fe := range fieldErrs {
		if fe.Tag() != "emailaddr" {
			return invalid(missing)
		}
	}
	return invalid(msgInvalidEmail)
}
