// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

// mergeString copies *src into dst when src is set and non-empty.
func mergeString(dst *string, src *string) {
	if src != nil && *src != "" {
		*dst = *src
	}
}

// merge copies *src into dst when src is set.
func merge[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
