// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"bytes"
	"encoding/json"
)

// DefaultBadgeColor is applied to plans created without a badge color.
const DefaultBadgeColor = "#374957"

// PricingPlan is one tier shown on the pricing page.
type PricingPlan struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Multiplier    string     `json:"multiplier"`
	Features      StringList `json:"features"`
	Price         string     `json:"price"`
	OriginalPrice string     `json:"originalPrice"`
	Badge         string     `json:"badge,omitempty"`
	BadgeColor    string     `json:"badgeColor,omitempty"`
	Order         int        `json:"order"`
}

// StringList is a list of strings that also accepts a single JSON string,
// which decodes as a one-element list.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = StringList{s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*l = list
	return nil
}

// DefaultPricingPlans is the catalogue served before any plan is saved.
func DefaultPricingPlans() []PricingPlan {
	return []PricingPlan{
		{
			ID:         "1",
			Name:       "Basic",
			Multiplier: "1.5x",
			Features: StringList{
				"Share limited number of ads",
				"All ads stays promoted for a week",
			},
			Price:         "$567",
			OriginalPrice: "$567",
			Badge:         "For you 50% off",
			BadgeColor:    DefaultBadgeColor,
			Order:         1,
		},
		{
			ID:         "2",
			Name:       "Business",
			Multiplier: "4x",
			Features: StringList{
				"Pro partnership status",
				"All ads stays promoted for a month",
			},
			Price:         "$567",
			OriginalPrice: "$567",
			Order:         2,
		},
		{
			ID:         "3",
			Name:       "Platinum",
			Multiplier: "10x",
			Features: StringList{
				"Unlimited number of ads",
				"Sell 10x faster in all categories",
			},
			Price:         "$567",
			OriginalPrice: "$567",
			Order:         3,
		},
	}
}
