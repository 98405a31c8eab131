// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package session provides HTTP session management for the admin area.
// Sessions are identified by a secure cookie and stored as JSON in a
// Backend (Valkey in production, memory in development) with TTL expiry.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const (
	// CookieName is the name of the session cookie sent to the browser.
	CookieName = "kc_session"

	// DefaultTTL is how long a session lives before automatic expiry.
	DefaultTTL = 24 * time.Hour

	// keyPrefix namespaces session keys in the backend to avoid collisions.
	keyPrefix = "session:"

	// idLength is the byte length of the random session ID (32 bytes = 64 hex chars).
	idLength = 32
)

// ErrNoCookie is returned by Update when the request carries no session cookie.
var ErrNoCookie = errors.New("session: no cookie")

// Data holds the session payload. It contains the authenticated admin's
// identity and 2FA completion status.
type Data struct {
	AdminID     string    `json:"admin_id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	TwoFADone   bool      `json:"two_fa_done"`
	CreatedAt   time.Time `json:"created_at"`
}

// Store manages session lifecycle on top of a Backend.
type Store struct {
	backend Backend
	ttl     time.Duration
	secure  bool
}

// NewStore creates a session store. secure marks the cookie Secure and
// should be set when the site is served over TLS.
func NewStore(backend Backend, secure bool) *Store {
	return &Store{
		backend: backend,
		ttl:     DefaultTTL,
		secure:  secure,
	}
}

// Create generates a new session, stores it, and sets the session cookie
// on the response. Returns the session ID.
func (s *Store) Create(ctx context.Context, w http.ResponseWriter, data *Data) (string, error) {
	id, err := generateID()
	if err != nil {
		return "", fmt.Errorf("session create: %w", err)
	}

	data.CreatedAt = time.Now()

	payload, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("session marshal: %w", err)
	}

	if err := s.backend.Set(ctx, keyPrefix+id, payload, s.ttl); err != nil {
		return "", fmt.Errorf("session store: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.ttl.Seconds()),
	})

	return id, nil
}

// Get retrieves session data using the session ID from the request cookie.
// Returns nil if no valid session exists.
func (s *Store) Get(ctx context.Context, r *http.Request) (*Data, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil, nil // No cookie = no session (not an error)
	}

	payload, ok, err := s.backend.Get(ctx, keyPrefix+cookie.Value)
	if err != nil {
		return nil, fmt.Errorf("session get: %w", err)
	}
	if !ok {
		return nil, nil // Session expired or doesn't exist
	}

	var data Data
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("session unmarshal: %w", err)
	}

	return &data, nil
}

// Update replaces the session data without changing the session ID or
// cookie. Resets the TTL.
func (s *Store) Update(ctx context.Context, r *http.Request, data *Data) error {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return ErrNoCookie
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("session marshal: %w", err)
	}

	if err := s.backend.Set(ctx, keyPrefix+cookie.Value, payload, s.ttl); err != nil {
		return fmt.Errorf("session update: %w", err)
	}

	return nil
}

// Destroy removes the session and clears the cookie.
func (s *Store) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil // No cookie, nothing to destroy
	}

	if err := s.backend.Delete(ctx, keyPrefix+cookie.Value); err != nil {
		return fmt.Errorf("session destroy: %w", err)
	}

	// Expire the cookie immediately.
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		MaxAge:   -1,
	})

	return nil
}

// generateID creates a cryptographically random session identifier.
func generateID() (string, error) {
	b := make([]byte, idLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
