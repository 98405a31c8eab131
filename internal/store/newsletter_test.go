// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"errors"
	"testing"
)

func TestNewsletterResubscribeKeepsID(t *testing.T) {
	s := NewNewsletterStore(t.TempDir())

	sub, reactivated, err := s.Subscribe(SubscribeInput{Email: "a@x.com"})
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	if reactivated || !sub.Active || sub.ID == "" {
		t.Fatalf("unexpected new subscriber: %+v (reactivated=%v)", sub, reactivated)
	}

	if err := s.Unsubscribe("a@x.com"); err != nil {
		t.Fatalf("Unsubscribe: %v", err)
	}
	got := s.FindByEmail("a@x.com")
	if got.Active || got.ID != sub.ID {
		t.Fatalf("after unsubscribe: %+v", got)
	}

	again, reactivated, err := s.Subscribe(SubscribeInput{Email: "a@x.com", Name: "Ama"})
	if err != nil {
		t.Fatalf("resubscribe: %v", err)
	}
	if !reactivated || !again.Active || again.ID != sub.ID || again.Name != "Ama" {
		t.Errorf("resubscribe: %+v (reactivated=%v)", again, reactivated)
	}
	if n := len(s.List(true)); n != 1 {
		t.Errorf("expected a single record, got %d", n)
	}
}

func TestNewsletterCaseInsensitive(t *testing.T) {
	s := NewNewsletterStore(t.TempDir())

	sub, _, err := s.Subscribe(SubscribeInput{Email: "Ama@Example.COM"})
	if err != nil {
		t.Fatal(err)
	}
	if sub.Email != "ama@example.com" {
		t.Errorf("email not lowercased: %q", sub.Email)
	}

	_, _, err = s.Subscribe(SubscribeInput{Email: "AMA@example.com"})
	wantConflict(t, err, "Email is already subscribed")

	if err := s.Unsubscribe("AMA@EXAMPLE.COM"); err != nil {
		t.Errorf("Unsubscribe with different case: %v", err)
	}
}

func TestNewsletterValidation(t *testing.T) {
	s := NewNewsletterStore(t.TempDir())

	_, _, err := s.Subscribe(SubscribeInput{})
	wantValidation(t, err, "Email is required")

	_, _, err = s.Subscribe(SubscribeInput{Email: "nope"})
	wantValidation(t, err, "Invalid email format")

	wantValidation(t, s.Unsubscribe(""), "Email is required")
	if err := s.Unsubscribe("ghost@example.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestNewsletterListActiveOnly(t *testing.T) {
	s := NewNewsletterStore(t.TempDir())
	s.Subscribe(SubscribeInput{Email: "a@x.com"})
	s.Subscribe(SubscribeInput{Email: "b@x.com"})
	s.Unsubscribe("b@x.com")

	if got := len(s.List(false)); got != 1 {
		t.Errorf("active: got %d, want 1", got)
	}
	if got := len(s.List(true)); got != 2 {
		t.Errorf("all: got %d, want 2", got)
	}
}
