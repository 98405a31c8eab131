// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"errors"
	"testing"
	"time"
)

func TestPublicationCreateAndFilter(t *testing.T) {
	s := NewPublicationStore(t.TempDir())
	fixed := time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	p, err := s.Create(CreatePublicationInput{Title: "Lead", Author: "K", Description: "d", Category: "Books", Featured: true})
	if err != nil {
		t.Fatal(err)
	}
	if !p.PublishedDate.Equal(fixed) {
		t.Errorf("publishedDate default: got %v", p.PublishedDate)
	}
	s.Create(CreatePublicationInput{Title: "Paper", Author: "K", Description: "d", Category: "Papers", Price: ptr(9.5)})

	_, err = s.Create(CreatePublicationInput{Title: "x"})
	wantValidation(t, err, "Title, author, description, and category are required")

	if got := len(s.List("", false)); got != 2 {
		t.Errorf("all: got %d", got)
	}
	if got := s.List("Books", false); len(got) != 1 || got[0].ID != p.ID {
		t.Errorf("category filter: %+v", got)
	}
	if got := len(s.List("", true)); got != 1 {
		t.Errorf("featured filter: got %d", got)
	}
}

func TestPublicationUpdateAndDelete(t *testing.T) {
	s := NewPublicationStore(t.TempDir())
	p, _ := s.Create(CreatePublicationInput{Title: "Lead", Author: "K", Description: "d", Category: "Books"})

	updated, err := s.Update(p.ID, UpdatePublicationInput{Featured: ptr(true), Price: ptr(20.0)})
	if err != nil {
		t.Fatal(err)
	}
	if !updated.Featured || updated.Price == nil || *updated.Price != 20 || updated.Title != "Lead" {
		t.Errorf("update: %+v", updated)
	}
	if err := s.Delete(p.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Update(p.ID, UpdatePublicationInput{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestServiceOrder(t *testing.T) {
	s := NewServiceStore(t.TempDir())

	a, _ := s.Create(CreateServiceInput{Title: "A", Description: "d", Category: "Strategy"})
	b, _ := s.Create(CreateServiceInput{Title: "B", Description: "d", Category: "Strategy", Order: ptr(5)})
	c, _ := s.Create(CreateServiceInput{Title: "C", Description: "d", Category: "Finance", Featured: true, Order: ptr(0)})

	if a.Order != 0 || b.Order != 5 || c.Order != 2 {
		t.Errorf("orders: a=%d b=%d c=%d", a.Order, b.Order, c.Order)
	}

	got := s.List("", false)
	want := []string{"A", "C", "B"}
	for i := range want {
		if got[i].Title != want[i] {
			t.Fatalf("order: position %d got %q, want %q", i, got[i].Title, want[i])
		}
	}
	if n := len(s.List("Strategy", false)); n != 2 {
		t.Errorf("category filter: got %d", n)
	}
	if n := len(s.List("", true)); n != 1 {
		t.Errorf("featured filter: got %d", n)
	}

	_, err := s.Create(CreateServiceInput{Title: "D"})
	wantValidation(t, err, "Title, description, and category are required")
}

func TestContactFlagsAreIndependent(t *testing.T) {
	s := NewContactStore(t.TempDir())
	s.now = clock()

	first, err := s.Create(CreateContactInput{Name: "A", Email: "a@x.com", Subject: "Hi", Message: "Hello"})
	if err != nil {
		t.Fatal(err)
	}
	if first.Read || first.Replied {
		t.Error("new message must be unread and unreplied")
	}
	second, _ := s.Create(CreateContactInput{Name: "B", Email: "b@x.com", Subject: "Hi", Message: "Hello"})

	msgs := s.List()
	if msgs[0].ID != second.ID {
		t.Error("expected newest message first")
	}

	replied, err := s.Update(first.ID, UpdateContactInput{Replied: ptr(true)})
	if err != nil {
		t.Fatal(err)
	}
	if !replied.Replied || replied.Read {
		t.Errorf("replied must not imply read: %+v", replied)
	}

	_, err = s.Create(CreateContactInput{Name: "A", Email: "bad", Subject: "s", Message: "m"})
	wantValidation(t, err, "Invalid email format")
	_, err = s.Create(CreateContactInput{Name: "A", Email: "a@x.com"})
	wantValidation(t, err, "Name, email, subject, and message are required")
}
