// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"kambelconsult/internal/filestore"
	"kambelconsult/internal/models"
)

// AboutStore manages the about page document.
type AboutStore struct {
	file *filestore.File[models.AboutConfig]
}

// NewAboutStore returns a store backed by about-config.json in dataDir.
func NewAboutStore(dataDir string) *AboutStore {
	return &AboutStore{
		file: filestore.New(dataDir, "about-config.json", func() models.AboutConfig { return models.AboutConfig{} }),
	}
}

// AboutUpdate names the sections to replace. Nil sections are kept.
type AboutUpdate struct {
	Mission      *models.Mission       `json:"mission"`
	CEO          *models.CEO           `json:"ceo"`
	Education    *[]models.Education   `json:"education"`
	Achievements *[]models.Achievement `json:"achievements"`
	Timeline     *[]models.Milestone   `json:"timeline"`
	Values       *[]models.Value       `json:"values"`
	Stats        *[]models.Stat        `json:"stats"`
}

// Get returns the about page document, or nil if none has been saved.
func (s *AboutStore) Get() *models.AboutConfig {
	cfg, status := s.file.Load()
	if status != filestore.StatusLoaded {
		return nil
	}
	return &cfg
}

// Update replaces every section present in in and keeps the rest. The
// document is created if it does not exist yet.
func (s *AboutStore) Update(in AboutUpdate) (*models.AboutConfig, error) {
	var updated models.AboutConfig
	err := s.file.Update(func(cfg *models.AboutConfig) error {
		merge(&cfg.Mission, in.Mission)
		merge(&cfg.CEO, in.CEO)
		merge(&cfg.Education, in.Education)
		merge(&cfg.Achievements, in.Achievements)
		merge(&cfg.Timeline, in.Timeline)
		merge(&cfg.Values, in.Values)
		merge(&cfg.Stats, in.Stats)
		updated = *cfg
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
