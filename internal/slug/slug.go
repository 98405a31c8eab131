// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation from arbitrary strings.
package slug

import (
	"regexp"
	"strconv"
	"strings"
)

// nonAlphanumeric matches every run of characters outside [a-z0-9].
var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Generate creates a URL-friendly slug from the given string.
// Example: "Hello, World! 2026" → "hello-world-2026"
func Generate(s string) string {
	result := strings.ToLower(s)
	result = nonAlphanumeric.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// Unique returns base if it is free, otherwise the first of base-1, base-2, …
// for which taken reports false.
func Unique(base string, taken func(string) bool) string {
	candidate := base
	for n := 1; taken(candidate); n++ {
		candidate = base + "-" + strconv.Itoa(n)
	}
	return candidate
}
