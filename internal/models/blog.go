// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"slices"
	"time"
)

// BlogPost is an article addressed publicly by its slug.
type BlogPost struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Content       string     `json:"content"`
	Excerpt       string     `json:"excerpt"`
	Author        string     `json:"author"`
	FeaturedImage string     `json:"featuredImage,omitempty"`
	Published     bool       `json:"published"`
	PublishedDate *time.Time `json:"publishedDate,omitempty"`
	Tags          []string   `json:"tags"`
	Category      string     `json:"category"`
	Views         int        `json:"views"`
}

// HasTag reports whether the post carries tag exactly.
func (p *BlogPost) HasTag(tag string) bool {
	return slices.Contains(p.Tags, tag)
}
