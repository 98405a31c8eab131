// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package analytics derives dashboard metrics from recorded page views.
package analytics

import (
	"fmt"
	"slices"
	"time"

	"kambelconsult/internal/models"
)

// recentLimit is the number of page views listed in RecentActivity.
const recentLimit = 10

// Summary is the dashboard view of the analytics file. BounceRate and
// AvgSessionDuration are preformatted with two decimals.
type Summary struct {
	TotalPageViews     int               `json:"totalPageViews"`
	UniqueVisitors     int               `json:"uniqueVisitors"`
	TotalRegistrations int               `json:"totalRegistrations"`
	BounceRate         string            `json:"bounceRate"`
	AvgSessionDuration string            `json:"avgSessionDuration"`
	PageViews          PageBreakdown     `json:"pageViews"`
	RecentActivity     []models.PageView `json:"recentActivity"`
}

// PageBreakdown counts views of the tracked marketing pages.
type PageBreakdown struct {
	Landing  int `json:"landing"`
	Register int `json:"register"`
	About    int `json:"about"`
	Pricing  int `json:"pricing"`
}

// Summarize computes the dashboard metrics for views, oldest first.
//
// Visitors are identified by user agent. A session is approximated per UTC
// calendar day as the span between the first and last view of that day
// across all visitors; days with a zero span are ignored.
func Summarize(views []models.PageView, totalRegistrations int) Summary {
	perVisitor := make(map[string]int)
	var pages PageBreakdown
	for _, v := range views {
		perVisitor[v.UserAgent]++
		switch v.Page {
		case "/landing", "/":
			pages.Landing++
		case "/register":
			pages.Register++
		case "/about":
			pages.About++
		case "/pricing":
			pages.Pricing++
		}
	}

	bounced := 0
	for _, n := range perVisitor {
		if n == 1 {
			bounced++
		}
	}
	var bounceRate float64
	if len(perVisitor) > 0 {
		bounceRate = float64(bounced) / float64(len(perVisitor)) * 100
	}

	return Summary{
		TotalPageViews:     len(views),
		UniqueVisitors:     len(perVisitor),
		TotalRegistrations: totalRegistrations,
		BounceRate:         fmt.Sprintf("%.2f", bounceRate),
		AvgSessionDuration: fmt.Sprintf("%.2f", avgSessionMinutes(views)),
		PageViews:          pages,
		RecentActivity:     recent(views),
	}
}

func avgSessionMinutes(views []models.PageView) float64 {
	if len(views) <= 1 {
		return 0
	}

	type span struct{ first, last time.Time }
	days := make(map[string]*span)
	for _, v := range views {
		key := v.Timestamp.UTC().Format(time.DateOnly)
		s, ok := days[key]
		if !ok {
			days[key] = &span{first: v.Timestamp, last: v.Timestamp}
			continue
		}
		if v.Timestamp.Before(s.first) {
			s.first = v.Timestamp
		}
		if v.Timestamp.After(s.last) {
			s.last = v.Timestamp
		}
	}

	var total time.Duration
	n := 0
	for _, s := range days {
		if d := s.last.Sub(s.first); d > 0 {
			total += d
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return total.Minutes() / float64(n)
}

// recent returns the last recentLimit views, newest first.
func recent(views []models.PageView) []models.PageView {
	start := max(len(views)-recentLimit, 0)
	out := slices.Clone(views[start:])
	slices.Reverse(out)
	if out == nil {
		out = []models.PageView{}
	}
	return out
}
