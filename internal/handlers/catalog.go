// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"kambelconsult/internal/store"
)

const (
	entityPublication = "Publication"
	entityService     = "Service"
)

// --- Publications ---

// PublicationList returns publications filtered by ?category= and ?featured=true.
func (a *API) PublicationList(w http.ResponseWriter, r *http.Request) {
	pubs := a.stores.Publications.List(r.URL.Query().Get("category"), queryFlag(r, "featured"))
	writeJSON(w, http.StatusOK, envelope{"publications": pubs})
}

// PublicationGet returns one publication.
func (a *API) PublicationGet(w http.ResponseWriter, r *http.Request) {
	p := a.stores.Publications.FindByID(chi.URLParam(r, "id"))
	if p == nil {
		writeError(w, http.StatusNotFound, entityPublication+" not found")
		return
	}
	writeJSON(w, http.StatusOK, envelope{"publication": p})
}

// PublicationCreate stores a new publication.
func (a *API) PublicationCreate(w http.ResponseWriter, r *http.Request) {
	var in store.CreatePublicationInput
	if !decodeJSON(w, r, &in) {
		return
	}
	p, err := a.stores.Publications.Create(in)
	if err != nil {
		storeError(w, r, err, entityPublication)
		return
	}
	a.cache.Invalidate(r.Context(), EntityPublications)
	writeJSON(w, http.StatusCreated, envelope{"message": "Publication created successfully", "publication": p})
}

// PublicationUpdate merges the request into a publication.
func (a *API) PublicationUpdate(w http.ResponseWriter, r *http.Request) {
	var in store.UpdatePublicationInput
	if !decodeJSON(w, r, &in) {
		return
	}
	p, err := a.stores.Publications.Update(chi.URLParam(r, "id"), in)
	if err != nil {
		storeError(w, r, err, entityPublication)
		return
	}
	a.cache.Invalidate(r.Context(), EntityPublications)
	writeJSON(w, http.StatusOK, envelope{"message": "Publication updated successfully", "publication": p})
}

// PublicationDelete removes a publication.
func (a *API) PublicationDelete(w http.ResponseWriter, r *http.Request) {
	if err := a.stores.Publications.Delete(chi.URLParam(r, "id")); err != nil {
		storeError(w, r, err, entityPublication)
		return
	}
	a.cache.Invalidate(r.Context(), EntityPublications)
	writeJSON(w, http.StatusOK, envelope{"message": "Publication deleted successfully"})
}

// --- Consultancy services ---

// ServiceList returns services in display order, filtered by ?category=
// and ?featured=true.
func (a *API) ServiceList(w http.ResponseWriter, r *http.Request) {
	services := a.stores.Services.List(r.URL.Query().Get("category"), queryFlag(r, "featured"))
	writeJSON(w, http.StatusOK, envelope{"services": services})
}

// ServiceGet returns one service.
func (a *API) ServiceGet(w http.ResponseWriter, r *http.Request) {
	svc := a.stores.Services.FindByID(chi.URLParam(r, "id"))
	if svc == nil {
		writeError(w, http.StatusNotFound, entityService+" not found")
		return
	}
	writeJSON(w, http.StatusOK, envelope{"service": svc})
}

// ServiceCreate stores a new service.
func (a *API) ServiceCreate(w http.ResponseWriter, r *http.Request) {
	var in store.CreateServiceInput
	if !decodeJSON(w, r, &in) {
		return
	}
	svc, err := a.stores.Services.Create(in)
	if err != nil {
		storeError(w, r, err, entityService)
		return
	}
	a.cache.Invalidate(r.Context(), EntityServices)
	writeJSON(w, http.StatusCreated, envelope{"message": "Service created successfully", "service": svc})
}

// ServiceUpdate merges the request into a service.
func (a *API) ServiceUpdate(w http.ResponseWriter, r *http.Request) {
	var in store.UpdateServiceInput
	if !decodeJSON(w, r, &in) {
		return
	}
	svc, err := a.stores.Services.Update(chi.URLParam(r, "id"), in)
	if err != nil {
		storeError(w, r, err, entityService)
		return
	}
	a.cache.Invalidate(r.Context(), EntityServices)
	writeJSON(w, http.StatusOK, envelope{"message": "Service updated successfully", "service": svc})
}

// ServiceDelete removes a service.
func (a *API) ServiceDelete(w http.ResponseWriter, r *http.Request) {
	if err := a.stores.Services.Delete(chi.URLParam(r, "id")); err != nil {
		storeError(w, r, err, entityService)
		return
	}
	a.cache.Invalidate(r.Context(), EntityServices)
	writeJSON(w, http.StatusOK, envelope{"message": "Service deleted successfully"})
}
