// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"kambelconsult/internal/analytics"
	"kambelconsult/internal/store"
)

const (
	entityMessage    = "Message"
	entitySubscriber = "Subscriber"
)

// --- Contact messages ---

// ContactList returns every message, newest first (admin).
func (a *API) ContactList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, envelope{"messages": a.stores.Contacts.List()})
}

// ContactGet returns one message (admin).
func (a *API) ContactGet(w http.ResponseWriter, r *http.Request) {
	msg := a.stores.Contacts.FindByID(chi.URLParam(r, "id"))
	if msg == nil {
		writeError(w, http.StatusNotFound, entityMessage+" not found")
		return
	}
	writeJSON(w, http.StatusOK, envelope{"message": msg})
}

// ContactCreate accepts the public contact form.
func (a *API) ContactCreate(w http.ResponseWriter, r *http.Request) {
	var in store.CreateContactInput
	if !decodeJSON(w, r, &in) {
		return
	}
	msg, err := a.stores.Contacts.Create(in)
	if err != nil {
		storeError(w, r, err, entityMessage)
		return
	}
	writeJSON(w, http.StatusCreated, envelope{"message": "Message sent successfully", "contactMessage": msg})
}

// ContactUpdate sets the read and replied flags (admin).
func (a *API) ContactUpdate(w http.ResponseWriter, r *http.Request) {
	var in store.UpdateContactInput
	if !decodeJSON(w, r, &in) {
		return
	}
	msg, err := a.stores.Contacts.Update(chi.URLParam(r, "id"), in)
	if err != nil {
		storeError(w, r, err, entityMessage)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"message": "Message updated successfully", "contactMessage": msg})
}

// ContactDelete removes a message (admin).
func (a *API) ContactDelete(w http.ResponseWriter, r *http.Request) {
	if err := a.stores.Contacts.Delete(chi.URLParam(r, "id")); err != nil {
		storeError(w, r, err, entityMessage)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"message": "Message deleted successfully"})
}

// --- Newsletter ---

// NewsletterList returns active subscribers, or all with ?all=true (admin).
func (a *API) NewsletterList(w http.ResponseWriter, r *http.Request) {
	subs := a.stores.Newsletter.List(queryFlag(r, "all"))
	writeJSON(w, http.StatusOK, envelope{"subscribers": subs, "total": len(subs)})
}

// NewsletterSubscribe adds or reactivates a subscriber.
func (a *API) NewsletterSubscribe(w http.ResponseWriter, r *http.Request) {
	var in store.SubscribeInput
	if !decodeJSON(w, r, &in) {
		return
	}
	sub, reactivated, err := a.stores.Newsletter.Subscribe(in)
	if err != nil {
		storeError(w, r, err, entitySubscriber)
		return
	}
	if reactivated {
		writeJSON(w, http.StatusOK, envelope{"message": "Subscription reactivated successfully", "subscriber": sub})
		return
	}
	writeJSON(w, http.StatusCreated, envelope{"message": "Subscribed successfully", "subscriber": sub})
}

// NewsletterUnsubscribe deactivates the subscriber named by ?email=.
func (a *API) NewsletterUnsubscribe(w http.ResponseWriter, r *http.Request) {
	if err := a.stores.Newsletter.Unsubscribe(r.URL.Query().Get("email")); err != nil {
		storeError(w, r, err, entitySubscriber)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"message": "Unsubscribed successfully"})
}

// --- Analytics ---

// AnalyticsSummary returns the dashboard metrics (admin).
func (a *API) AnalyticsSummary(w http.ResponseWriter, r *http.Request) {
	summary := analytics.Summarize(a.stores.Analytics.PageViews(), a.stores.Businesses.Count())
	writeJSON(w, http.StatusOK, summary)
}

// AnalyticsRecord stores a page view beacon.
func (a *API) AnalyticsRecord(w http.ResponseWriter, r *http.Request) {
	var in store.PageViewInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if _, err := a.stores.Analytics.Record(in); err != nil {
		storeError(w, r, err, "Page view")
		return
	}
	writeJSON(w, http.StatusOK, envelope{"message": "Page view recorded"})
}
