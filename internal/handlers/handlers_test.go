// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"kambelconsult/internal/store"
)

// newTestAPI returns an API over a fresh data directory with no cache.
func newTestAPI(t *testing.T) (*API, *store.Set) {
	t.Helper()
	stores := store.NewSet(t.TempDir())
	return NewAPI(stores, nil), stores
}

// call invokes h with an optional JSON body and chi URL params given as
// name, value pairs.
func call(t *testing.T, h http.HandlerFunc, method, target string, body any, params ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	r := httptest.NewRequest(method, target, reader)
	r.Header.Set("Content-Type", "application/json")
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for i := 0; i+1 < len(params); i += 2 {
			rctx.URLParams.Add(params[i], params[i+1])
		}
		r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	}

	w := httptest.NewRecorder()
	h(w, r)
	return w
}

// decode parses a JSON object response.
func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return m
}

// expect checks the status code and, when msg is set, the error or message field.
func expect(t *testing.T, w *httptest.ResponseRecorder, status int, msg string) map[string]any {
	t.Helper()
	if w.Code != status {
		t.Fatalf("status: got %d, want %d (body %s)", w.Code, status, w.Body.String())
	}
	body := decode(t, w)
	if msg == "" {
		return body
	}
	got, _ := body["error"].(string)
	if got == "" {
		got, _ = body["message"].(string)
	}
	if got != msg {
		t.Errorf("message: got %q, want %q", got, msg)
	}
	return body
}

func TestStoreErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"validation", &store.ValidationError{Msg: "Title is required"}, http.StatusBadRequest, "Title is required"},
		{"conflict", &store.ConflictError{Msg: "Email already registered"}, http.StatusBadRequest, "Email already registered"},
		{"not found", store.ErrNotFound, http.StatusNotFound, "Blog post not found"},
		{"wrapped not found", errors.Join(errors.New("lookup"), store.ErrNotFound), http.StatusNotFound, "Blog post not found"},
		{"persistence", errors.New("disk full"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			storeError(w, httptest.NewRequest("GET", "/api/blog/x", nil), tt.err, "Blog post")
			expect(t, w, tt.status, tt.msg)
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("content-type: got %q", ct)
			}
		})
	}
}

func TestDecodeJSONRejectsMalformedBody(t *testing.T) {
	api, _ := newTestAPI(t)
	w := call(t, api.ContactCreate, "POST", "/api/contact", "{not json")
	expect(t, w, http.StatusBadRequest, "Invalid request body")
}

func TestQueryFlag(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"?published=true", true},
		{"?published=1", false},
		{"?published=TRUE", false},
		{"", false},
	}
	for _, tt := range tests {
		r := httptest.NewRequest("GET", "/api/blog"+tt.query, nil)
		if got := queryFlag(r, "published"); got != tt.want {
			t.Errorf("queryFlag(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestResponsesAreJSON(t *testing.T) {
	api, _ := newTestAPI(t)
	w := call(t, api.PricingList, "GET", "/api/pricing", nil)
	if !strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		t.Errorf("content-type: got %q", w.Header().Get("Content-Type"))
	}
}
