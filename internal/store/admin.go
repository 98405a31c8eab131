// Package store provides file-backed persistence for every site entity.
// Each store wraps one JSON document under the data directory and exposes
// typed read and mutation methods.
package store

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"kambelconsult/internal/filestore"
	"kambelconsult/internal/models"
)

// AdminStore handles back-office accounts stored in admins.json.
type AdminStore struct {
	admins collection[models.Admin]
	now    func() time.Time
}

// NewAdminStore creates a new AdminStore rooted at dataDir.
func NewAdminStore(dataDir string) *AdminStore {
	return &AdminStore{
		admins: newCollection(dataDir, "admins.json", func(a *models.Admin) string { return a.ID }),
		now:    time.Now,
	}
}

// Count returns the number of admin accounts.
func (s *AdminStore) Count() int {
	return len(s.admins.all())
}

// FindByEmail retrieves an admin by email address, ignoring case. Returns nil if not found.
func (s *AdminStore) FindByEmail(email string) *models.Admin {
	for _, a := range s.admins.all() {
		if strings.EqualFold(a.Email, email) {
			return &a
		}
	}
	return nil
}

// FindByID retrieves an admin by id. Returns nil if not found.
func (s *AdminStore) FindByID(id string) *models.Admin {
	return s.admins.find(id)
}

// Create stores a new admin with a bcrypt-hashed password.
func (s *AdminStore) Create(email, password, displayName string) (*models.Admin, error) {
	if email == "" || password == "" {
		return nil, invalid("Email and password are required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return s.admins.insert(func(admins []models.Admin) (models.Admin, error) {
		for _, a := range admins {
			if strings.EqualFold(a.Email, email) {
				return models.Admin{}, conflict("Email already registered")
			}
		}
		now := s.now().UTC()
		return models.Admin{
			ID:           filestore.NewID(),
			Email:        email,
			PasswordHash: string(hash),
			DisplayName:  displayName,
			CreatedAt:    now,
			UpdatedAt:    now,
		}, nil
	})
}

// SetTOTPSecret saves the TOTP secret for an admin (during 2FA setup).
func (s *AdminStore) SetTOTPSecret(id, secret string) error {
	return s.touch(id, func(a *models.Admin) {
		a.TOTPSecret = &secret
	})
}

// EnableTOTP marks 2FA as active (after successful code verification).
func (s *AdminStore) EnableTOTP(id string) error {
	return s.touch(id, func(a *models.Admin) {
		a.TOTPEnabled = true
	})
}

// ResetTOTP clears the TOTP secret and disables 2FA.
// The admin will be asked to set up 2FA again on the next login.
func (s *AdminStore) ResetTOTP(id string) error {
	return s.touch(id, func(a *models.Admin) {
		a.TOTPSecret = nil
		a.TOTPEnabled = false
	})
}

// CheckPassword verifies a plaintext password against the admin's stored hash.
func (s *AdminStore) CheckPassword(a *models.Admin, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) == nil
}

func (s *AdminStore) touch(id string, fn func(*models.Admin)) error {
	_, err := s.admins.modify(id, func(_ []models.Admin, a *models.Admin) error {
		fn(a)
		a.UpdatedAt = s.now().UTC()
		return nil
	})
	if err != nil {
		return fmt.Errorf("update admin: %w", err)
	}
	return nil
}
