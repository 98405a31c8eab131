// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"cmp"
	"time"

	"kambelconsult/internal/filestore"
	"kambelconsult/internal/models"
)

// MaxPageViews is the number of most recent page views kept on disk.
const MaxPageViews = 1000

// AnalyticsStore records page views. The file keeps only the most recent
// MaxPageViews entries.
type AnalyticsStore struct {
	file *filestore.File[models.Analytics]
	now  func() time.Time
}

// NewAnalyticsStore returns a store backed by analytics.json in dataDir.
func NewAnalyticsStore(dataDir string) *AnalyticsStore {
	return &AnalyticsStore{
		file: filestore.New(dataDir, "analytics.json", func() models.Analytics {
			return models.Analytics{
				PageViews:     []models.PageView{},
				Registrations: []models.RegistrationEvent{},
			}
		}),
		now: time.Now,
	}
}

// PageViewInput is the beacon sent by the public pages.
type PageViewInput struct {
	Page      string `json:"page" validate:"required"`
	UserAgent string `json:"userAgent"`
	Referrer  string `json:"referrer"`
}

// PageViews returns every stored page view, oldest first.
func (s *AnalyticsStore) PageViews() []models.PageView {
	a, _ := s.file.Load()
	return a.PageViews
}

// Record appends a page view and drops the oldest entries beyond MaxPageViews.
func (s *AnalyticsStore) Record(in PageViewInput) (models.PageView, error) {
	if err := check(in, "Page is required"); err != nil {
		return models.PageView{}, err
	}

	now := s.now().UTC()
	view := models.PageView{
		Page:      in.Page,
		Timestamp: now,
		UserAgent: cmp.Or(in.UserAgent, "Unknown"),
		Referrer:  cmp.Or(in.Referrer, "Direct"),
	}
	err := s.file.Update(func(a *models.Analytics) error {
		a.PageViews = append(a.PageViews, view)
		if n := len(a.PageViews); n > MaxPageViews {
			a.PageViews = a.PageViews[n-MaxPageViews:]
		}
		a.LastUpdated = now
		return nil
	})
	return view, err
}
