package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"kambelconsult/internal/auth"
	"kambelconsult/internal/middleware"
	"kambelconsult/internal/session"
	"kambelconsult/internal/store"
)

// Credentials verifies passwords and manages TOTP enrolment.
type Credentials interface {
	auth.Authenticator
	BeginTOTP(adminID string) (*auth.Enrollment, error)
	PendingEnrollment(adminID string) (*auth.Enrollment, error)
	VerifyTOTP(adminID, code string) error
}

// Auth groups all authentication-related HTTP handlers.
type Auth struct {
	creds      Credentials
	sessions   *session.Store
	require2FA bool
}

// NewAuth creates a new Auth handler group. When require2FA is set, admins
// without TOTP must enrol before the session is fully authenticated.
func NewAuth(creds Credentials, sessions *session.Store, require2FA bool) *Auth {
	return &Auth{
		creds:      creds,
		sessions:   sessions,
		require2FA: require2FA,
	}
}

// Two-factor steps reported by Login.
const (
	twoFactorNone   = "none"
	twoFactorVerify = "verify"
	twoFactorSetup  = "setup"
)

// Login checks the credentials and starts a session.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeJSON(w, r, &in) {
		return
	}
	if in.Email == "" || in.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	admin, err := a.creds.Authenticate(r.Context(), in.Email, in.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		slog.Warn("failed login attempt", "email", in.Email, "remote", r.RemoteAddr)
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		slog.Error("login lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// Route based on 2FA status:
	// - TOTP active → verify a code
	// - not set up but required → enrol first
	step := twoFactorNone
	switch {
	case admin.TOTPEnabled:
		step = twoFactorVerify
	case a.require2FA:
		step = twoFactorSetup
	}

	// Drop any previous session so a fresh id is issued on login.
	if err := a.sessions.Destroy(r.Context(), w, r); err != nil {
		slog.Warn("destroy previous session", "error", err)
	}
	_, err = a.sessions.Create(r.Context(), w, &session.Data{
		AdminID:     admin.ID,
		Email:       admin.Email,
		DisplayName: admin.DisplayName,
		TwoFADone:   step == twoFactorNone,
	})
	if err != nil {
		slog.Error("session create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	slog.Info("admin logged in", "email", admin.Email, "two_factor", step)
	writeJSON(w, http.StatusOK, envelope{
		"message":   "Login successful",
		"admin":     admin.View(),
		"twoFactor": step,
	})
}

// Logout destroys the session.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.sessions.Destroy(r.Context(), w, r); err != nil {
		slog.Error("session destroy failed", "error", err)
	}
	writeJSON(w, http.StatusOK, envelope{"message": "Logged out successfully"})
}

// Me returns the signed-in admin.
func (a *Auth) Me(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	writeJSON(w, http.StatusOK, envelope{
		"admin": envelope{
			"id":          sess.AdminID,
			"email":       sess.Email,
			"displayName": sess.DisplayName,
		},
		"twoFADone": sess.TwoFADone,
	})
}

// CSRFToken returns the token admin clients echo in the X-CSRF-Token header.
func (a *Auth) CSRFToken(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, envelope{"csrfToken": middleware.CSRFTokenFromCtx(r.Context())})
}

// TwoFASetup issues a TOTP secret with its QR code. A secret that was
// issued but never verified is returned again instead of a new one.
func (a *Auth) TwoFASetup(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	enr, err := a.creds.PendingEnrollment(sess.AdminID)
	if err == nil && enr == nil {
		enr, err = a.creds.BeginTOTP(sess.AdminID)
	}
	switch {
	case errors.Is(err, auth.ErrAlreadyEnabled):
		writeError(w, http.StatusBadRequest, "Two-factor authentication is already enabled")
		return
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	case err != nil:
		slog.Error("totp setup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		"secret": enr.Secret,
		"url":    enr.URL,
		"qrCode": enr.QRCode,
	})
}

// TwoFAVerify validates a TOTP code and completes authentication. The
// first successful code also activates a pending enrolment.
func (a *Auth) TwoFAVerify(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var in struct {
		Code string `json:"code"`
	}
	if !decodeJSON(w, r, &in) {
		return
	}

	err := a.creds.VerifyTOTP(sess.AdminID, in.Code)
	switch {
	case errors.Is(err, auth.ErrNoEnrollment):
		writeError(w, http.StatusBadRequest, "Two-factor setup has not been started")
		return
	case errors.Is(err, auth.ErrInvalidCode):
		writeError(w, http.StatusBadRequest, "Invalid code. Please try again.")
		return
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	case err != nil:
		slog.Error("totp verify failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// Mark 2FA as complete in the session.
	sess.TwoFADone = true
	if err := a.sessions.Update(r.Context(), r, sess); err != nil {
		slog.Error("session update failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, envelope{"message": "Two-factor authentication verified"})
}
