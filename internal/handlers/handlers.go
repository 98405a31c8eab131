// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the JSON API of the Kambel Consult site.
// Handlers decode the request, call one store operation, and map the
// result or error onto the response conventions of the public site and
// the admin dashboard.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"kambelconsult/internal/cache"
	"kambelconsult/internal/store"
)

// maxJSONBody caps the size of a decoded request body.
const maxJSONBody = 1 << 20

// Cache entity names. The router mounts the response cache under the same
// names, and writes invalidate them.
const (
	EntityPricing       = "pricing"
	EntityBlog          = "blog"
	EntityMasterclasses = "masterclasses"
	EntityPublications  = "publications"
	EntityServices      = "services"
	EntityAbout         = "about"
	EntitySettings      = "settings"
	EntityGallery       = "gallery"
)

// API groups the content handlers for every site entity.
type API struct {
	stores *store.Set
	cache  *cache.ResponseCache
	now    func() time.Time
}

// NewAPI creates the content handler group. cache may be nil.
func NewAPI(stores *store.Set, responseCache *cache.ResponseCache) *API {
	return &API{
		stores: stores,
		cache:  responseCache,
		now:    time.Now,
	}
}

// envelope is a JSON object response.
type envelope map[string]any

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, envelope{"error": msg})
}

// decodeJSON reads the request body into dst. On failure it writes a 400
// response and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// storeError maps a store error onto the response. entity names the record
// in the 404 message, e.g. "Blog post".
func storeError(w http.ResponseWriter, r *http.Request, err error, entity string) {
	var invalid *store.ValidationError
	var conflict *store.ConflictError
	switch {
	case errors.As(err, &invalid):
		writeError(w, http.StatusBadRequest, invalid.Msg)
	case errors.As(err, &conflict):
		writeError(w, http.StatusBadRequest, conflict.Msg)
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, entity+" not found")
	default:
		slog.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// queryFlag reports whether the query parameter name is exactly "true".
func queryFlag(r *http.Request, name string) bool {
	return r.URL.Query().Get(name) == "true"
}
