// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"net/url"
	"strings"

	"kambelconsult/internal/filestore"
	"kambelconsult/internal/models"
)

// SettingsStore manages the site configuration document. Each update
// replaces one section and leaves the others as they are on disk.
type SettingsStore struct {
	file *filestore.File[models.SiteSettings]
}

// NewSettingsStore returns a store backed by settings.json in dataDir.
func NewSettingsStore(dataDir string) *SettingsStore {
	return &SettingsStore{
		file: filestore.New(dataDir, "settings.json", models.DefaultSiteSettings),
	}
}

// ContactInfoInput sets the fields that are present, including empty ones.
type ContactInfoInput struct {
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
}

// WhatsAppInput changes the chat link. An empty url keeps the current one.
type WhatsAppInput struct {
	URL     *string `json:"url"`
	Enabled *bool   `json:"enabled"`
}

// Get returns the settings with defaults filled in for missing sections.
func (s *SettingsStore) Get() models.SiteSettings {
	settings, _ := s.file.Load()
	return settings
}

// UpdateContact merges in into the contact section.
func (s *SettingsStore) UpdateContact(in ContactInfoInput) (models.ContactInfo, error) {
	if in.Phone == nil && in.Email == nil && in.Address == nil {
		return models.ContactInfo{}, invalid("At least one field (phone, email, or address) is required")
	}
	if in.Email != nil && strings.TrimSpace(*in.Email) != "" && !IsEmail(*in.Email) {
		return models.ContactInfo{}, invalid(msgInvalidEmail)
	}

	var info models.ContactInfo
	err := s.file.Update(func(settings *models.SiteSettings) error {
		merge(&settings.ContactInfo.Phone, in.Phone)
		merge(&settings.ContactInfo.Email, in.Email)
		merge(&settings.ContactInfo.Address, in.Address)
		info = settings.ContactInfo
		return nil
	})
	return info, err
}

// UpdateWhatsApp merges in into the WhatsApp section. The url must be absolute.
func (s *SettingsStore) UpdateWhatsApp(in WhatsAppInput) (models.WhatsAppLink, error) {
	if in.URL == nil && in.Enabled == nil {
		return models.WhatsAppLink{}, invalid("URL or enabled status is required")
	}
	if in.URL != nil && *in.URL != "" && !isAbsoluteURL(*in.URL) {
		return models.WhatsAppLink{}, invalid("Invalid URL format")
	}

	var link models.WhatsAppLink
	err := s.file.Update(func(settings *models.SiteSettings) error {
		mergeString(&settings.WhatsAppLink.URL, in.URL)
		merge(&settings.WhatsAppLink.Enabled, in.Enabled)
		link = settings.WhatsAppLink
		return nil
	})
	return link, err
}

// UpdateLaunchDate replaces the launch date. The value is stored as given
// once it parses.
func (s *SettingsStore) UpdateLaunchDate(launchDate string) (string, error) {
	if launchDate == "" {
		return "", invalid("Launch date is required")
	}
	if _, err := models.ParseLaunchDate(launchDate); err != nil {
		return "", invalid("Invalid date format")
	}
	err := s.file.Update(func(settings *models.SiteSettings) error {
		settings.LaunchDate = launchDate
		return nil
	})
	return launchDate, err
}

// SetFavicon makes path the active favicon and returns the previous custom
// favicon path, if any, so the caller can remove the old file.
func (s *SettingsStore) SetFavicon(path string) (previous *string, err error) {
	err = s.file.Update(func(settings *models.SiteSettings) error {
		previous = settings.Favicon.Custom
		settings.Favicon = models.Favicon{Current: path, Custom: &path}
		return nil
	})
	return previous, err
}

// ResetFavicon restores the default favicon and returns the custom path
// that was active. It reports ErrNotFound when no custom favicon is set.
func (s *SettingsStore) ResetFavicon() (string, error) {
	var custom string
	err := s.file.Update(func(settings *models.SiteSettings) error {
		if settings.Favicon.Custom == nil {
			return ErrNotFound
		}
		custom = *settings.Favicon.Custom
		settings.Favicon = models.Favicon{Current: models.DefaultFavicon}
		return nil
	})
	return custom, err
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && (u.Host != "" || u.Opaque != "")
}
