// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"cmp"
	"slices"

	"kambelconsult/internal/filestore"
	"kambelconsult/internal/models"
)

// ServiceStore persists the consultancy services catalogue.
type ServiceStore struct {
	services collection[models.ConsultancyService]
}

// NewServiceStore returns a store backed by consultancy-services.json in dataDir.
func NewServiceStore(dataDir string) *ServiceStore {
	return &ServiceStore{
		services: newCollection(dataDir, "consultancy-services.json", func(s *models.ConsultancyService) string { return s.ID }),
	}
}

type CreateServiceInput struct {
	Title               string `json:"title" validate:"required"`
	Description         string `json:"description" validate:"required"`
	DetailedDescription string `json:"detailedDescription"`
	Icon                string `json:"icon"`
	Image               string `json:"image"`
	Category            string `json:"category" validate:"required"`
	Featured            bool   `json:"featured"`
	Order               *int   `json:"order"`
}

type UpdateServiceInput struct {
	Title               *string `json:"title"`
	Description         *string `json:"description"`
	DetailedDescription *string `json:"detailedDescription"`
	Icon                *string `json:"icon"`
	Image               *string `json:"image"`
	Category            *string `json:"category"`
	Featured            *bool   `json:"featured"`
	Order               *int    `json:"order"`
}

// List returns services in ascending order, optionally narrowed to a
// category and to featured entries. Equal orders keep insertion order.
func (s *ServiceStore) List(category string, featuredOnly bool) []models.ConsultancyService {
	services := slices.DeleteFunc(s.services.all(), func(svc models.ConsultancyService) bool {
		return (category != "" && svc.Category != category) || (featuredOnly && !svc.Featured)
	})
	slices.SortStableFunc(services, func(a, b models.ConsultancyService) int {
		return cmp.Compare(a.Order, b.Order)
	})
	return services
}

// FindByID returns the service with the given id, or nil if not found.
func (s *ServiceStore) FindByID(id string) *models.ConsultancyService {
	return s.services.find(id)
}

// Create stores a new service. A missing or zero order places it at the
// position equal to the current number of services.
func (s *ServiceStore) Create(in CreateServiceInput) (*models.ConsultancyService, error) {
	if err := check(in, "Title, description, and category are required"); err != nil {
		return nil, err
	}
	return s.services.insert(func(services []models.ConsultancyService) (models.ConsultancyService, error) {
		order := len(services)
		if in.Order != nil && *in.Order != 0 {
			order = *in.Order
		}
		return models.ConsultancyService{
			ID:                  filestore.NewID(),
			Title:               in.Title,
			Description:         in.Description,
			DetailedDescription: in.DetailedDescription,
			Icon:                in.Icon,
			Image:               in.Image,
			Category:            in.Category,
			Featured:            in.Featured,
			Order:               order,
		}, nil
	})
}

// Update merges in into the service.
func (s *ServiceStore) Update(id string, in UpdateServiceInput) (*models.ConsultancyService, error) {
	return s.services.modify(id, func(_ []models.ConsultancyService, svc *models.ConsultancyService) error {
		mergeString(&svc.Title, in.Title)
		mergeString(&svc.Description, in.Description)
		merge(&svc.DetailedDescription, in.DetailedDescription)
		merge(&svc.Icon, in.Icon)
		merge(&svc.Image, in.Image)
		mergeString(&svc.Category, in.Category)
		merge(&svc.Featured, in.Featured)
		merge(&svc.Order, in.Order)
		return nil
	})
}

// Delete removes the service with the given id.
func (s *ServiceStore) Delete(id string) error {
	return s.services.remove(id)
}
