// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"slices"
	"time"

	"kambelconsult/internal/filestore"
	"kambelconsult/internal/models"
)

// PublicationStore persists books and papers.
type PublicationStore struct {
	pubs collection[models.Publication]
	now  func() time.Time
}

// NewPublicationStore returns a store backed by publications.json in dataDir.
func NewPublicationStore(dataDir string) *PublicationStore {
	return &PublicationStore{
		pubs: newCollection(dataDir, "publications.json", func(p *models.Publication) string { return p.ID }),
		now:  time.Now,
	}
}

type CreatePublicationInput struct {
	Title         string     `json:"title" validate:"required"`
	Author        string     `json:"author" validate:"required"`
	Description   string     `json:"description" validate:"required"`
	Category      string     `json:"category" validate:"required"`
	CoverImage    string     `json:"coverImage"`
	Price         *float64   `json:"price"`
	PurchaseLink  string     `json:"purchaseLink"`
	PublishedDate *time.Time `json:"publishedDate"`
	Featured      bool       `json:"featured"`
}

type UpdatePublicationInput struct {
	Title         *string    `json:"title"`
	Author        *string    `json:"author"`
	Description   *string    `json:"description"`
	Category      *string    `json:"category"`
	CoverImage    *string    `json:"coverImage"`
	Price         *float64   `json:"price"`
	PurchaseLink  *string    `json:"purchaseLink"`
	PublishedDate *time.Time `json:"publishedDate"`
	Featured      *bool      `json:"featured"`
}

// List returns publications in insertion order, optionally narrowed to a
// category and to featured entries.
func (s *PublicationStore) List(category string, featuredOnly bool) []models.Publication {
	return slices.DeleteFunc(s.pubs.all(), func(p models.Publication) bool {
		return (category != "" && p.Category != category) || (featuredOnly && !p.Featured)
	})
}

// FindByID returns the publication with the given id, or nil if not found.
func (s *PublicationStore) FindByID(id string) *models.Publication {
	return s.pubs.find(id)
}

// Create stores a new publication. The publication date defaults to now.
func (s *PublicationStore) Create(in CreatePublicationInput) (*models.Publication, error) {
	if err := check(in, "Title, author, description, and category are required"); err != nil {
		return nil, err
	}
	published := s.now().UTC()
	if in.PublishedDate != nil {
		published = *in.PublishedDate
	}
	return s.pubs.insert(func([]models.Publication) (models.Publication, error) {
		return models.Publication{
			ID:            filestore.NewID(),
			Title:         in.Title,
			Author:        in.Author,
			Description:   in.Description,
			Category:      in.Category,
			CoverImage:    in.CoverImage,
			Price:         in.Price,
			PurchaseLink:  in.PurchaseLink,
			PublishedDate: published,
			Featured:      in.Featured,
		}, nil
	})
}

// Update merges in into the publication.
func (s *PublicationStore) Update(id string, in UpdatePublicationInput) (*models.Publication, error) {
	return s.pubs.modify(id, func(_ []models.Publication, p *models.Publication) error {
		mergeString(&p.Title, in.Title)
		mergeString(&p.Author, in.Author)
		mergeString(&p.Description, in.Description)
		mergeString(&p.Category, in.Category)
		merge(&p.CoverImage, in.CoverImage)
		if in.Price != nil {
			p.Price = in.Price
		}
		merge(&p.PurchaseLink, in.PurchaseLink)
		merge(&p.PublishedDate, in.PublishedDate)
		merge(&p.Featured, in.Featured)
		return nil
	})
}

// Delete removes the publication with the given id.
func (s *PublicationStore) Delete(id string) error {
	return s.pubs.remove(id)
}
