// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"slices"
	"time"
	"unicode/utf8"

	"kambelconsult/internal/filestore"
	"kambelconsult/internal/models"
	"kambelconsult/internal/slug"
)

// excerptLen is the number of characters of content used for a generated excerpt.
const excerptLen = 200

// BlogStore persists blog posts. Posts are addressed by slug.
type BlogStore struct {
	posts collection[models.BlogPost]
	now   func() time.Time
}

// NewBlogStore returns a store backed by blog-posts.json in dataDir.
func NewBlogStore(dataDir string) *BlogStore {
	return &BlogStore{
		posts: newCollection(dataDir, "blog-posts.json", func(p *models.BlogPost) string { return p.Slug }),
		now:   time.Now,
	}
}

// BlogFilter narrows List. Zero values match everything.
type BlogFilter struct {
	PublishedOnly bool
	Category      string
	Tag           string
}

// CreatePostInput is the admin form for a new post.
type CreatePostInput struct {
	Title         string   `json:"title" validate:"required"`
	Content       string   `json:"content" validate:"required"`
	Excerpt       string   `json:"excerpt"`
	Author        string   `json:"author" validate:"required"`
	FeaturedImage string   `json:"featuredImage"`
	Published     bool     `json:"published"`
	Tags          []string `json:"tags"`
	Category      string   `json:"category" validate:"required"`
}

// UpdatePostInput is a partial update; nil fields are left unchanged.
type UpdatePostInput struct {
	Title         *string   `json:"title"`
	Content       *string   `json:"content"`
	Excerpt       *string   `json:"excerpt"`
	Author        *string   `json:"author"`
	FeaturedImage *string   `json:"featuredImage"`
	Published     *bool     `json:"published"`
	Tags          *[]string `json:"tags"`
	Category      *string   `json:"category"`
}

// List returns the posts matching f, newest publication first. Posts
// without a publication date sort after every dated post.
func (s *BlogStore) List(f BlogFilter) []models.BlogPost {
	posts := slices.DeleteFunc(s.posts.all(), func(p models.BlogPost) bool {
		return (f.PublishedOnly && !p.Published) ||
			(f.Category != "" && p.Category != f.Category) ||
			(f.Tag != "" && !p.HasTag(f.Tag))
	})
	slices.SortStableFunc(posts, func(a, b models.BlogPost) int {
		switch {
		case a.PublishedDate == nil && b.PublishedDate == nil:
			return 0
		case a.PublishedDate == nil:
			return 1
		case b.PublishedDate == nil:
			return -1
		}
		return b.PublishedDate.Compare(*a.PublishedDate)
	})
	return posts
}

// FindBySlug returns the post with the given slug, or nil if not found.
// It does not count as a view.
func (s *BlogStore) FindBySlug(postSlug string) *models.BlogPost {
	return s.posts.find(postSlug)
}

// View returns the post with the given slug and increments its view counter.
func (s *BlogStore) View(postSlug string) (*models.BlogPost, error) {
	return s.posts.modify(postSlug, func(_ []models.BlogPost, p *models.BlogPost) error {
		p.Views++
		return nil
	})
}

// Create stores a new post under a slug derived from its title, suffixed
// with -1, -2, … when the slug is already taken.
func (s *BlogStore) Create(in CreatePostInput) (*models.BlogPost, error) {
	if err := check(in, "Title, content, author, and category are required"); err != nil {
		return nil, err
	}

	return s.posts.insert(func(posts []models.BlogPost) (models.BlogPost, error) {
		p := models.BlogPost{
			ID:            filestore.NewID(),
			Title:         in.Title,
			Slug:          uniqueSlug(posts, in.Title, ""),
			Content:       in.Content,
			Excerpt:       in.Excerpt,
			Author:        in.Author,
			FeaturedImage: in.FeaturedImage,
			Published:     in.Published,
			Tags:          in.Tags,
			Category:      in.Category,
		}
		if p.Excerpt == "" {
			p.Excerpt = excerpt(in.Content)
		}
		if p.Tags == nil {
			p.Tags = []string{}
		}
		if p.Published {
			now := s.now().UTC()
			p.PublishedDate = &now
		}
		return p, nil
	})
}

// Update merges in into the post. The slug is regenerated only when the
// title changes, and the publication date is stamped only on the first
// transition to published.
func (s *BlogStore) Update(postSlug string, in UpdatePostInput) (*models.BlogPost, error) {
	return s.posts.modify(postSlug, func(posts []models.BlogPost, p *models.BlogPost) error {
		if in.Title != nil && *in.Title != "" && *in.Title != p.Title {
			p.Slug = uniqueSlug(posts, *in.Title, p.ID)
			p.Title = *in.Title
		}
		if in.Published != nil && *in.Published && !p.Published {
			now := s.now().UTC()
			p.PublishedDate = &now
		}
		merge(&p.Content, in.Content)
		merge(&p.Excerpt, in.Excerpt)
		merge(&p.Author, in.Author)
		merge(&p.FeaturedImage, in.FeaturedImage)
		merge(&p.Published, in.Published)
		merge(&p.Tags, in.Tags)
		merge(&p.Category, in.Category)
		return nil
	})
}

// Delete removes the post with the given slug.
func (s *BlogStore) Delete(postSlug string) error {
	return s.posts.remove(postSlug)
}

// uniqueSlug derives a slug from title that no post other than exceptID uses.
func uniqueSlug(posts []models.BlogPost, title, exceptID string) string {
	base := slug.Generate(title)
	if base == "" {
		base = "post"
	}
	return slug.Unique(base, func(candidate string) bool {
		return slices.ContainsFunc(posts, func(p models.BlogPost) bool {
			return p.ID != exceptID && p.Slug == candidate
		})
	})
}

// excerpt returns the first excerptLen characters of content followed by an ellipsis.
func excerpt(content string) string {
	if utf8.RuneCountInString(content) <= excerptLen {
		return content + "..."
	}
	return string([]rune(content)[:excerptLen]) + "..."
}
