// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"kambelconsult/internal/models"
	"kambelconsult/internal/store"
)

const entityMasterclass = "Masterclass"

// MasterclassList returns masterclasses, earliest first. ?published=true
// hides drafts.
func (a *API) MasterclassList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, envelope{"masterclasses": a.stores.Masterclasses.List(queryFlag(r, "published"))})
}

// MasterclassGet returns one masterclass.
func (a *API) MasterclassGet(w http.ResponseWriter, r *http.Request) {
	m := a.stores.Masterclasses.FindByID(chi.URLParam(r, "id"))
	if m == nil {
		writeError(w, http.StatusNotFound, entityMasterclass+" not found")
		return
	}
	writeJSON(w, http.StatusOK, envelope{"masterclass": m})
}

// MasterclassCreate stores a new masterclass.
func (a *API) MasterclassCreate(w http.ResponseWriter, r *http.Request) {
	var in store.CreateMasterclassInput
	if !decodeJSON(w, r, &in) {
		return
	}
	m, err := a.stores.Masterclasses.Create(in)
	if err != nil {
		storeError(w, r, err, entityMasterclass)
		return
	}
	a.cache.Invalidate(r.Context(), EntityMasterclasses)
	writeJSON(w, http.StatusCreated, envelope{"message": "Masterclass created successfully", "masterclass": m})
}

// MasterclassUpdate merges the request into a masterclass.
func (a *API) MasterclassUpdate(w http.ResponseWriter, r *http.Request) {
	var in store.UpdateMasterclassInput
	if !decodeJSON(w, r, &in) {
		return
	}
	m, err := a.stores.Masterclasses.Update(chi.URLParam(r, "id"), in)
	if err != nil {
		storeError(w, r, err, entityMasterclass)
		return
	}
	a.cache.Invalidate(r.Context(), EntityMasterclasses)
	writeJSON(w, http.StatusOK, envelope{"message": "Masterclass updated successfully", "masterclass": m})
}

// MasterclassDelete removes a masterclass with its registrations.
func (a *API) MasterclassDelete(w http.ResponseWriter, r *http.Request) {
	if err := a.stores.Masterclasses.Delete(chi.URLParam(r, "id")); err != nil {
		storeError(w, r, err, entityMasterclass)
		return
	}
	a.cache.Invalidate(r.Context(), EntityMasterclasses)
	writeJSON(w, http.StatusOK, envelope{"message": "Masterclass deleted successfully"})
}

// MasterclassRegister books a seat from the public site.
func (a *API) MasterclassRegister(w http.ResponseWriter, r *http.Request) {
	var in store.RegisterInput
	if !decodeJSON(w, r, &in) {
		return
	}
	reg, err := a.stores.Masterclasses.Register(chi.URLParam(r, "id"), in)
	if err != nil {
		storeError(w, r, err, entityMasterclass)
		return
	}
	// Participant counts are part of the public listing.
	a.cache.Invalidate(r.Context(), EntityMasterclasses)
	writeJSON(w, http.StatusCreated, envelope{"message": "Registration submitted successfully", "registration": reg})
}

// MasterclassRegistrations lists the registrations of one masterclass (admin).
func (a *API) MasterclassRegistrations(w http.ResponseWriter, r *http.Request) {
	regs, err := a.stores.Masterclasses.Registrations(chi.URLParam(r, "id"))
	if err != nil {
		storeError(w, r, err, entityMasterclass)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"registrations": regs})
}

// MasterclassRegistrationStatus confirms or cancels a pending registration.
func (a *API) MasterclassRegistrationStatus(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Status models.RegistrationStatus `json:"status"`
	}
	if !decodeJSON(w, r, &in) {
		return
	}
	reg, err := a.stores.Masterclasses.SetRegistrationStatus(chi.URLParam(r, "id"), chi.URLParam(r, "regID"), in.Status)
	if err != nil {
		storeError(w, r, err, entityRegistration)
		return
	}
	a.cache.Invalidate(r.Context(), EntityMasterclasses)
	writeJSON(w, http.StatusOK, envelope{"message": "Registration updated successfully", "registration": reg})
}
