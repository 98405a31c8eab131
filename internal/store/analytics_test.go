// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"fmt"
	"testing"
)

func TestAnalyticsRecordDefaults(t *testing.T) {
	s := NewAnalyticsStore(t.TempDir())

	v, err := s.Record(PageViewInput{Page: "/about"})
	if err != nil {
		t.Fatal(err)
	}
	if v.UserAgent != "Unknown" || v.Referrer != "Direct" {
		t.Errorf("defaults: got %+v", v)
	}

	_, err = s.Record(PageViewInput{})
	wantValidation(t, err, "Page is required")
}

func TestAnalyticsTruncatesToMostRecent(t *testing.T) {
	s := NewAnalyticsStore(t.TempDir())

	for i := 0; i <= MaxPageViews; i++ {
		if _, err := s.Record(PageViewInput{Page: fmt.Sprintf("/p/%d", i)}); err != nil {
			t.Fatal(err)
		}
	}

	views := s.PageViews()
	if len(views) != MaxPageViews {
		t.Fatalf("stored views: got %d, want %d", len(views), MaxPageViews)
	}
	if views[0].Page != "/p/1" {
		t.Errorf("oldest retained view: got %q, want /p/1", views[0].Page)
	}
	if views[len(views)-1].Page != fmt.Sprintf("/p/%d", MaxPageViews) {
		t.Errorf("newest view: got %q", views[len(views)-1].Page)
	}
}
