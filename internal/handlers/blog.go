// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"kambelconsult/internal/markdown"
	"kambelconsult/internal/store"
)

const entityPost = "Blog post"

// BlogList returns posts filtered by ?published=true, ?category= and ?tag=.
func (a *API) BlogList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	posts := a.stores.Blog.List(store.BlogFilter{
		PublishedOnly: queryFlag(r, "published"),
		Category:      q.Get("category"),
		Tag:           q.Get("tag"),
	})
	writeJSON(w, http.StatusOK, envelope{"posts": posts})
}

// BlogGet returns one post with its content rendered to HTML and counts
// the request as a view.
func (a *API) BlogGet(w http.ResponseWriter, r *http.Request) {
	post, err := a.stores.Blog.View(chi.URLParam(r, "slug"))
	if err != nil {
		storeError(w, r, err, entityPost)
		return
	}

	html, err := markdown.ToHTML(post.Content)
	if err != nil {
		// The raw content is still usable by the client.
		slog.Warn("render blog post", "slug", post.Slug, "error", err)
	}
	writeJSON(w, http.StatusOK, envelope{"post": post, "html": html})
}

// BlogCreate stores a new post.
func (a *API) BlogCreate(w http.ResponseWriter, r *http.Request) {
	var in store.CreatePostInput
	if !decodeJSON(w, r, &in) {
		return
	}
	post, err := a.stores.Blog.Create(in)
	if err != nil {
		storeError(w, r, err, entityPost)
		return
	}
	a.cache.Invalidate(r.Context(), EntityBlog)
	writeJSON(w, http.StatusCreated, envelope{"message": "Blog post created successfully", "post": post})
}

// BlogUpdate merges the request into a post. The slug may change.
func (a *API) BlogUpdate(w http.ResponseWriter, r *http.Request) {
	var in store.UpdatePostInput
	if !decodeJSON(w, r, &in) {
		return
	}
	post, err := a.stores.Blog.Update(chi.URLParam(r, "slug"), in)
	if err != nil {
		storeError(w, r, err, entityPost)
		return
	}
	a.cache.Invalidate(r.Context(), EntityBlog)
	writeJSON(w, http.StatusOK, envelope{"message": "Blog post updated successfully", "post": post})
}

// BlogDelete removes a post.
func (a *API) BlogDelete(w http.ResponseWriter, r *http.Request) {
	if err := a.stores.Blog.Delete(chi.URLParam(r, "slug")); err != nil {
		storeError(w, r, err, entityPost)
		return
	}
	a.cache.Invalidate(r.Context(), EntityBlog)
	writeJSON(w, http.StatusOK, envelope{"message": "Blog post deleted successfully"})
}
