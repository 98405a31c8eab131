// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package auth verifies admin credentials and manages TOTP enrolment.
// Credentials are bcrypt hashes in admins.json; nothing is compiled in.
package auth

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"sync"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/crypto/bcrypt"

	"kambelconsult/internal/models"
	"kambelconsult/internal/store"
)

// Issuer is the account issuer shown in authenticator apps.
const Issuer = "Kambel Consult"

var (
	// ErrInvalidCredentials is returned for an unknown email or wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidCode is returned when a TOTP code does not validate.
	ErrInvalidCode = errors.New("invalid code")
	// ErrNoEnrollment is returned when verifying before a secret was issued.
	ErrNoEnrollment = errors.New("two-factor setup has not been started")
	// ErrAlreadyEnabled is returned when enrolling an admin whose TOTP is active.
	ErrAlreadyEnabled = errors.New("two-factor authentication is already enabled")
)

// Authenticator checks an email and password pair.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*models.Admin, error)
}

// CredentialStore implements Authenticator over the admin account file.
type CredentialStore struct {
	admins *store.AdminStore

	dummyOnce sync.Once
	dummyHash []byte
}

// NewCredentialStore creates a CredentialStore backed by admins.
func NewCredentialStore(admins *store.AdminStore) *CredentialStore {
	return &CredentialStore{admins: admins}
}

// Authenticate returns the admin matching email if password is correct.
// Unknown emails still run a bcrypt comparison so both failure paths take
// about the same time.
func (c *CredentialStore) Authenticate(_ context.Context, email, password string) (*models.Admin, error) {
	admin := c.admins.FindByEmail(email)
	if admin == nil {
		bcrypt.CompareHashAndPassword(c.dummy(), []byte(password))
		return nil, ErrInvalidCredentials
	}
	if !c.admins.CheckPassword(admin, password) {
		return nil, ErrInvalidCredentials
	}
	return admin, nil
}

func (c *CredentialStore) dummy() []byte {
	c.dummyOnce.Do(func() {
		c.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("kambel-dummy-password"), bcrypt.DefaultCost)
	})
	return c.dummyHash
}

// Bootstrap creates the first admin account when none exist. It does
// nothing when accounts are present or email is empty.
func (c *CredentialStore) Bootstrap(email, password string) (bool, error) {
	if email == "" || c.admins.Count() > 0 {
		return false, nil
	}
	admin, err := c.admins.Create(email, password, "Administrator")
	if err != nil {
		return false, fmt.Errorf("bootstrap admin: %w", err)
	}
	slog.Info("bootstrapped admin account", "email", admin.Email)
	return true, nil
}

// HasAdmins reports whether any admin account exists.
func (c *CredentialStore) HasAdmins() bool {
	return c.admins.Count() > 0
}

// Enrollment is a freshly issued TOTP secret.
type Enrollment struct {
	Secret string `json:"secret"`
	URL    string `json:"url"`
	QRCode string `json:"qrCode"` // base64 PNG
}

// BeginTOTP issues a new TOTP secret for the admin and stores it. The
// secret is not active until VerifyTOTP succeeds once. An active secret
// is never replaced.
func (c *CredentialStore) BeginTOTP(adminID string) (*Enrollment, error) {
	admin := c.admins.FindByID(adminID)
	if admin == nil {
		return nil, store.ErrNotFound
	}
	if admin.TOTPEnabled {
		return nil, ErrAlreadyEnabled
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      Issuer,
		AccountName: admin.Email,
	})
	if err != nil {
		return nil, fmt.Errorf("generate totp: %w", err)
	}

	if err := c.admins.SetTOTPSecret(admin.ID, key.Secret()); err != nil {
		return nil, err
	}
	return enrollment(key)
}

// PendingEnrollment rebuilds the enrolment data for a secret that was
// issued but not yet verified. Returns nil when there is none.
func (c *CredentialStore) PendingEnrollment(adminID string) (*Enrollment, error) {
	admin := c.admins.FindByID(adminID)
	if admin == nil || admin.TOTPSecret == nil || admin.TOTPEnabled {
		return nil, nil
	}
	u := url.URL{
		Scheme:   "otpauth",
		Host:     "totp",
		Path:     "/" + Issuer + ":" + admin.Email,
		RawQuery: url.Values{"secret": {*admin.TOTPSecret}, "issuer": {Issuer}}.Encode(),
	}
	key, err := otp.NewKeyFromURL(u.String())
	if err != nil {
		return nil, fmt.Errorf("rebuild totp key: %w", err)
	}
	return enrollment(key)
}

func enrollment(key *otp.Key) (*Enrollment, error) {
	png, err := qrcode.Encode(key.URL(), qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	return &Enrollment{
		Secret: key.Secret(),
		URL:    key.URL(),
		QRCode: base64.StdEncoding.EncodeToString(png),
	}, nil
}

// VerifyTOTP validates code against the admin's secret. On the first
// successful verification the secret becomes active.
func (c *CredentialStore) VerifyTOTP(adminID, code string) error {
	admin := c.admins.FindByID(adminID)
	if admin == nil {
		return store.ErrNotFound
	}
	if admin.TOTPSecret == nil {
		return ErrNoEnrollment
	}
	if !totp.Validate(code, *admin.TOTPSecret) {
		return ErrInvalidCode
	}
	if !admin.TOTPEnabled {
		if err := c.admins.EnableTOTP(admin.ID); err != nil {
			return err
		}
		slog.Info("two-factor authentication enabled", "email", admin.Email)
	}
	return nil
}
