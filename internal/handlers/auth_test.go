// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"

	"kambelconsult/internal/auth"
	"kambelconsult/internal/middleware"
	"kambelconsult/internal/session"
	"kambelconsult/internal/store"
)

const (
	testEmail    = "admin@example.com"
	testPassword = "correct-horse"
)

type authHarness struct {
	t        *testing.T
	auth     *Auth
	sessions *session.Store
	cookie   *http.Cookie
}

func newAuthHarness(t *testing.T, require2FA bool) *authHarness {
	t.Helper()
	creds := auth.NewCredentialStore(store.NewAdminStore(t.TempDir()))
	if _, err := creds.Bootstrap(testEmail, testPassword); err != nil {
		t.Fatal(err)
	}
	sessions := session.NewStore(session.NewMemoryBackend(), false)
	return &authHarness{t: t, auth: NewAuth(creds, sessions, require2FA), sessions: sessions}
}

// do runs h behind LoadSession with the current session cookie and keeps
// whatever session cookie the response sets.
func (h *authHarness) do(handler http.HandlerFunc, method string, body any) *httptest.ResponseRecorder {
	h.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			h.t.Fatal(err)
		}
	}
	r := httptest.NewRequest(method, "/api/auth", &buf)
	r.Header.Set("Content-Type", "application/json")
	if h.cookie != nil {
		r.AddCookie(h.cookie)
	}

	w := httptest.NewRecorder()
	middleware.LoadSession(h.sessions)(handler).ServeHTTP(w, r)

	// Login may clear the old cookie before setting the new one; the last
	// session cookie wins.
	for _, c := range w.Result().Cookies() {
		if c.Name != session.CookieName {
			continue
		}
		if c.Value == "" {
			h.cookie = nil
		} else {
			h.cookie = c
		}
	}
	return w
}

func (h *authHarness) login() map[string]any {
	h.t.Helper()
	w := h.do(h.auth.Login, "POST", map[string]string{"email": testEmail, "password": testPassword})
	return expect(h.t, w, http.StatusOK, "Login successful")
}

func (h *authHarness) twoFADone() bool {
	h.t.Helper()
	body := expect(h.t, h.do(h.auth.Me, "GET", nil), http.StatusOK, "")
	return body["twoFADone"] == true
}

func TestLoginRejectsBadInput(t *testing.T) {
	h := newAuthHarness(t, false)

	tests := []struct {
		name   string
		body   map[string]string
		status int
		msg    string
	}{
		{"missing password", map[string]string{"email": testEmail}, http.StatusBadRequest, "Email and password are required"},
		{"wrong password", map[string]string{"email": testEmail, "password": "nope"}, http.StatusUnauthorized, "Invalid email or password"},
		{"unknown admin", map[string]string{"email": "x@example.com", "password": testPassword}, http.StatusUnauthorized, "Invalid email or password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := h.do(h.auth.Login, "POST", tt.body)
			expect(t, w, tt.status, tt.msg)
			if h.cookie != nil {
				t.Error("failed login must not set a session")
			}
		})
	}
}

func TestLoginWithoutTwoFactor(t *testing.T) {
	h := newAuthHarness(t, false)

	body := h.login()
	if body["twoFactor"] != "none" {
		t.Errorf("twoFactor: got %v, want none", body["twoFactor"])
	}
	if admin := body["admin"].(map[string]any); admin["email"] != testEmail {
		t.Errorf("admin: %v", admin)
	}
	if _, leaked := body["admin"].(map[string]any)["passwordHash"]; leaked {
		t.Error("password hash must not be returned")
	}
	if h.cookie == nil {
		t.Fatal("expected session cookie")
	}
	if !h.twoFADone() {
		t.Error("session should be fully authenticated")
	}
}

func TestLoginIssuesFreshSession(t *testing.T) {
	h := newAuthHarness(t, false)
	h.login()
	first := h.cookie.Value

	h.login()
	if h.cookie == nil || h.cookie.Value == first {
		t.Fatal("second login should issue a new session id")
	}

	old := httptest.NewRequest("GET", "/", nil)
	old.AddCookie(&http.Cookie{Name: session.CookieName, Value: first})
	if data, _ := h.sessions.Get(old.Context(), old); data != nil {
		t.Error("previous session should be destroyed")
	}
}

func TestTwoFactorEnrollmentAndVerify(t *testing.T) {
	h := newAuthHarness(t, true)

	body := h.login()
	if body["twoFactor"] != "setup" {
		t.Fatalf("twoFactor: got %v, want setup", body["twoFactor"])
	}
	if h.twoFADone() {
		t.Fatal("session must wait for the second factor")
	}

	expect(t, h.do(h.auth.TwoFAVerify, "POST", map[string]string{"code": "123456"}), http.StatusBadRequest, "Two-factor setup has not been started")

	body = expect(t, h.do(h.auth.TwoFASetup, "GET", nil), http.StatusOK, "")
	secret, _ := body["secret"].(string)
	if secret == "" || body["qrCode"] == "" || body["url"] == "" {
		t.Fatalf("setup response: %v", body)
	}

	// Asking again before verifying returns the same secret.
	again := expect(t, h.do(h.auth.TwoFASetup, "GET", nil), http.StatusOK, "")
	if again["secret"] != secret {
		t.Error("pending secret should be reused")
	}

	expect(t, h.do(h.auth.TwoFAVerify, "POST", map[string]string{"code": "000000x"}), http.StatusBadRequest, "Invalid code. Please try again.")

	code, err := totp.GenerateCode(secret, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	expect(t, h.do(h.auth.TwoFAVerify, "POST", map[string]string{"code": code}), http.StatusOK, "Two-factor authentication verified")
	if !h.twoFADone() {
		t.Error("session should be verified")
	}

	expect(t, h.do(h.auth.TwoFASetup, "GET", nil), http.StatusBadRequest, "Two-factor authentication is already enabled")

	body = h.login()
	if body["twoFactor"] != "verify" {
		t.Errorf("twoFactor after enrolment: got %v, want verify", body["twoFactor"])
	}
	if h.twoFADone() {
		t.Error("new login must verify a code again")
	}
}

func TestLogout(t *testing.T) {
	h := newAuthHarness(t, false)
	h.login()
	sid := h.cookie.Value

	expect(t, h.do(h.auth.Logout, "POST", nil), http.StatusOK, "Logged out successfully")
	if h.cookie != nil {
		t.Error("logout should clear the session cookie")
	}

	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(&http.Cookie{Name: session.CookieName, Value: sid})
	if data, _ := h.sessions.Get(r.Context(), r); data != nil {
		t.Error("session should be gone after logout")
	}

	// Logging out twice is harmless.
	expect(t, h.do(h.auth.Logout, "POST", nil), http.StatusOK, "Logged out successfully")
}
