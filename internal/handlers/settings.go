// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"kambelconsult/internal/models"
	"kambelconsult/internal/store"
)

// SettingsContact returns the footer contact details.
func (a *API) SettingsContact(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, envelope{"contactInfo": a.stores.Settings.Get().ContactInfo})
}

// SettingsContactUpdate sets the contact fields present in the request.
func (a *API) SettingsContactUpdate(w http.ResponseWriter, r *http.Request) {
	var in store.ContactInfoInput
	if !decodeJSON(w, r, &in) {
		return
	}
	info, err := a.stores.Settings.UpdateContact(in)
	if err != nil {
		storeError(w, r, err, "Settings")
		return
	}
	a.cache.Invalidate(r.Context(), EntitySettings)
	writeJSON(w, http.StatusOK, envelope{"message": "Contact information updated successfully", "contactInfo": info})
}

// SettingsWhatsApp returns the chat button configuration.
func (a *API) SettingsWhatsApp(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, envelope{"whatsappLink": a.stores.Settings.Get().WhatsAppLink})
}

// SettingsWhatsAppUpdate changes the chat link or toggles the button.
func (a *API) SettingsWhatsAppUpdate(w http.ResponseWriter, r *http.Request) {
	var in store.WhatsAppInput
	if !decodeJSON(w, r, &in) {
		return
	}
	link, err := a.stores.Settings.UpdateWhatsApp(in)
	if err != nil {
		storeError(w, r, err, "Settings")
		return
	}
	a.cache.Invalidate(r.Context(), EntitySettings)
	writeJSON(w, http.StatusOK, envelope{"message": "WhatsApp link updated successfully", "whatsappLink": link})
}

// SettingsLaunchDate returns the launch date with the time remaining.
func (a *API) SettingsLaunchDate(w http.ResponseWriter, r *http.Request) {
	launchDate := a.stores.Settings.Get().LaunchDate
	resp := envelope{"launchDate": launchDate}
	if target, err := models.ParseLaunchDate(launchDate); err == nil {
		resp["countdown"] = models.CountdownTo(target, a.now())
	} else {
		slog.Warn("stored launch date does not parse", "launchDate", launchDate, "error", err)
	}
	writeJSON(w, http.StatusOK, resp)
}

// SettingsLaunchDateUpdate replaces the launch date.
func (a *API) SettingsLaunchDateUpdate(w http.ResponseWriter, r *http.Request) {
	var in struct {
		LaunchDate string `json:"launchDate"`
	}
	if !decodeJSON(w, r, &in) {
		return
	}
	launchDate, err := a.stores.Settings.UpdateLaunchDate(in.LaunchDate)
	if err != nil {
		storeError(w, r, err, "Settings")
		return
	}
	a.cache.Invalidate(r.Context(), EntitySettings)
	writeJSON(w, http.StatusOK, envelope{
		"message":  "Launch date updated successfully",
		"settings": envelope{"launchDate": launchDate},
	})
}

// --- About page ---

// AboutGet returns the about page document.
func (a *API) AboutGet(w http.ResponseWriter, r *http.Request) {
	cfg := a.stores.About.Get()
	if cfg == nil {
		writeError(w, http.StatusNotFound, "About configuration not found")
		return
	}
	writeJSON(w, http.StatusOK, envelope{"config": cfg})
}

// AboutUpdate replaces the sections present in the request.
func (a *API) AboutUpdate(w http.ResponseWriter, r *http.Request) {
	var in store.AboutUpdate
	if !decodeJSON(w, r, &in) {
		return
	}
	cfg, err := a.stores.About.Update(in)
	if err != nil {
		storeError(w, r, err, "About configuration")
		return
	}
	a.cache.Invalidate(r.Context(), EntityAbout)
	writeJSON(w, http.StatusOK, envelope{"message": "About configuration updated successfully", "config": cfg})
}
