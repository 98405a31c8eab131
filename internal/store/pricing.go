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

// PricingStore persists pricing plans. Until the first write, reads return
// the default catalogue; the first write persists it together with the change.
type PricingStore struct {
	plans collection[models.PricingPlan]
}

// NewPricingStore returns a store backed by pricing-plans.json in dataDir.
func NewPricingStore(dataDir string) *PricingStore {
	return &PricingStore{
		plans: collection[models.PricingPlan]{
			file: filestore.New(dataDir, "pricing-plans.json", models.DefaultPricingPlans),
			key:  func(p *models.PricingPlan) string { return p.ID },
		},
	}
}

// CreatePlanInput is the admin form for a new plan.
type CreatePlanInput struct {
	Name          string            `json:"name" validate:"required"`
	Multiplier    string            `json:"multiplier" validate:"required"`
	Features      models.StringList `json:"features" validate:"required"`
	Price         string            `json:"price" validate:"required"`
	OriginalPrice string            `json:"originalPrice" validate:"required"`
	Badge         string            `json:"badge"`
	BadgeColor    string            `json:"badgeColor"`
}

// UpdatePlanInput is a partial update; nil fields are left unchanged.
type UpdatePlanInput struct {
	Name          *string            `json:"name"`
	Multiplier    *string            `json:"multiplier"`
	Features      *models.StringList `json:"features"`
	Price         *string            `json:"price"`
	OriginalPrice *string            `json:"originalPrice"`
	Badge         *string            `json:"badge"`
	BadgeColor    *string            `json:"badgeColor"`
	Order         *int               `json:"order"`
}

// List returns every plan in ascending display order.
func (s *PricingStore) List() []models.PricingPlan {
	plans := s.plans.all()
	sortPlans(plans)
	return plans
}

// FindByID returns the plan with the given id, or nil if not found.
func (s *PricingStore) FindByID(id string) *models.PricingPlan {
	return s.plans.find(id)
}

// Create appends a plan at the end of the display order.
func (s *PricingStore) Create(in CreatePlanInput) (*models.PricingPlan, error) {
	if err := check(in, "All required fields are missing"); err != nil {
		return nil, err
	}
	return s.plans.insert(func(plans []models.PricingPlan) (models.PricingPlan, error) {
		return models.PricingPlan{
			ID:            filestore.NewID(),
			Name:          in.Name,
			Multiplier:    in.Multiplier,
			Features:      in.Features,
			Price:         in.Price,
			OriginalPrice: in.OriginalPrice,
			Badge:         in.Badge,
			BadgeColor:    cmp.Or(in.BadgeColor, models.DefaultBadgeColor),
			Order:         len(plans) + 1,
		}, nil
	})
}

// Update merges in into the plan. Setting Order renumbers only this plan;
// callers reordering several plans should use Reorder.
func (s *PricingStore) Update(id string, in UpdatePlanInput) (*models.PricingPlan, error) {
	return s.plans.modify(id, func(_ []models.PricingPlan, p *models.PricingPlan) error {
		merge(&p.Name, in.Name)
		merge(&p.Multiplier, in.Multiplier)
		merge(&p.Features, in.Features)
		merge(&p.Price, in.Price)
		merge(&p.OriginalPrice, in.OriginalPrice)
		merge(&p.Badge, in.Badge)
		merge(&p.BadgeColor, in.BadgeColor)
		merge(&p.Order, in.Order)
		return nil
	})
}

// Reorder assigns order 1..n to the plans named in ids, in that sequence.
// Plans not named keep their relative order and follow after them.
func (s *PricingStore) Reorder(ids []string) ([]models.PricingPlan, error) {
	if len(ids) == 0 {
		return nil, invalid("Plan ids are required")
	}

	var result []models.PricingPlan
	err := s.plans.file.Update(func(plans *[]models.PricingPlan) error {
		sortPlans(*plans)
		position := make(map[string]int, len(ids))
		for i, id := range ids {
			if _, dup := position[id]; dup {
				return invalid("Duplicate plan id " + id)
			}
			if s.plans.index(*plans, id) < 0 {
				return ErrNotFound
			}
			position[id] = i + 1
		}

		next := len(ids) + 1
		for i := range *plans {
			p := &(*plans)[i]
			if pos, ok := position[p.ID]; ok {
				p.Order = pos
			} else {
				p.Order = next
				next++
			}
		}
		sortPlans(*plans)
		result = slices.Clone(*plans)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Delete removes the plan with the given id. Remaining plans keep their order values.
func (s *PricingStore) Delete(id string) error {
	return s.plans.remove(id)
}

func sortPlans(plans []models.PricingPlan) {
	slices.SortStableFunc(plans, func(a, b models.PricingPlan) int {
		return cmp.Compare(a.Order, b.Order)
	})
}
