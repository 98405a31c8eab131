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

const entityRegistration = "Registration"

// BusinessList returns every directory submission (admin).
func (a *API) BusinessList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, envelope{"registrations": a.stores.Businesses.List()})
}

// BusinessRegister accepts a public directory submission.
func (a *API) BusinessRegister(w http.ResponseWriter, r *http.Request) {
	var in store.CreateBusinessInput
	if !decodeJSON(w, r, &in) {
		return
	}
	reg, err := a.stores.Businesses.Create(in)
	if err != nil {
		storeError(w, r, err, entityRegistration)
		return
	}
	writeJSON(w, http.StatusCreated, envelope{
		"message": "Registration submitted successfully",
		"id":      reg.ID,
	})
}

// businessPatch is either a status decision or a field update. A request
// carrying status changes nothing else.
type businessPatch struct {
	Status *models.ApprovalStatus `json:"status"`
	store.UpdateBusinessInput
}

// BusinessUpdate applies an admin decision or edits the submission.
func (a *API) BusinessUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var in businessPatch
	if !decodeJSON(w, r, &in) {
		return
	}

	if in.Status != nil {
		reg, err := a.stores.Businesses.SetStatus(id, *in.Status)
		if err != nil {
			storeError(w, r, err, entityRegistration)
			return
		}
		writeJSON(w, http.StatusOK, envelope{"message": "Status updated successfully", "registration": reg})
		return
	}

	reg, err := a.stores.Businesses.Update(id, in.UpdateBusinessInput)
	if err != nil {
		storeError(w, r, err, entityRegistration)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"message": "Registration updated successfully", "registration": reg})
}

// BusinessDelete removes a submission.
func (a *API) BusinessDelete(w http.ResponseWriter, r *http.Request) {
	if err := a.stores.Businesses.Delete(chi.URLParam(r, "id")); err != nil {
		storeError(w, r, err, entityRegistration)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"message": "Registration deleted successfully"})
}
