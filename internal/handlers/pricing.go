// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"kambelconsult/internal/store"
)

const entityPlan = "Pricing plan"

// PricingList returns every plan in display order.
func (a *API) PricingList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, envelope{"plans": a.stores.Pricing.List()})
}

// PricingGet returns one plan.
func (a *API) PricingGet(w http.ResponseWriter, r *http.Request) {
	plan := a.stores.Pricing.FindByID(chi.URLParam(r, "id"))
	if plan == nil {
		writeError(w, http.StatusNotFound, entityPlan+" not found")
		return
	}
	writeJSON(w, http.StatusOK, envelope{"plan": plan})
}

// PricingCreate appends a plan.
func (a *API) PricingCreate(w http.ResponseWriter, r *http.Request) {
	var in store.CreatePlanInput
	if !decodeJSON(w, r, &in) {
		return
	}
	plan, err := a.stores.Pricing.Create(in)
	if err != nil {
		storeError(w, r, err, entityPlan)
		return
	}
	a.cache.Invalidate(r.Context(), EntityPricing)
	writeJSON(w, http.StatusCreated, envelope{"message": "Pricing plan created successfully", "plan": plan})
}

// PricingUpdate merges the request into a plan.
func (a *API) PricingUpdate(w http.ResponseWriter, r *http.Request) {
	var in store.UpdatePlanInput
	if !decodeJSON(w, r, &in) {
		return
	}
	plan, err := a.stores.Pricing.Update(chi.URLParam(r, "id"), in)
	if err != nil {
		storeError(w, r, err, entityPlan)
		return
	}
	a.cache.Invalidate(r.Context(), EntityPricing)
	writeJSON(w, http.StatusOK, envelope{"message": "Pricing plan updated successfully", "plan": plan})
}

// PricingReorder renumbers plans to follow the given id sequence.
func (a *API) PricingReorder(w http.ResponseWriter, r *http.Request) {
	var in struct {
		IDs []string `json:"ids"`
	}
	if !decodeJSON(w, r, &in) {
		return
	}
	plans, err := a.stores.Pricing.Reorder(in.IDs)
	if err != nil {
		storeError(w, r, err, entityPlan)
		return
	}
	a.cache.Invalidate(r.Context(), EntityPricing)
	writeJSON(w, http.StatusOK, envelope{"message": "Pricing plans reordered successfully", "plans": plans})
}

// PricingDelete removes a plan.
func (a *API) PricingDelete(w http.ResponseWriter, r *http.Request) {
	if err := a.stores.Pricing.Delete(chi.URLParam(r, "id")); err != nil {
		storeError(w, r, err, entityPlan)
		return
	}
	a.cache.Invalidate(r.Context(), EntityPricing)
	writeJSON(w, http.StatusOK, envelope{"message": "Pricing plan deleted successfully"})
}
