// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"strings"
)

// SecureHeaders adds security-related HTTP headers to every response.
// When secure is true (served over TLS) HSTS is also sent. API responses
// are marked non-cacheable by shared caches.
func SecureHeaders(secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()

			// Prevent the browser from MIME-sniffing the Content-Type.
			h.Set("X-Content-Type-Options", "nosniff")

			// Prevent embedding in iframes from other origins (clickjacking).
			h.Set("X-Frame-Options", "SAMEORIGIN")

			// Disable the legacy XSS filter (can cause issues; CSP is preferred).
			h.Set("X-XSS-Protection", "0")

			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "interest-cohort=()")

			if secure {
				h.Set("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
			}
			if strings.HasPrefix(r.URL.Path, "/api/") {
				h.Set("Cache-Control", "no-store")
			}

			next.ServeHTTP(w, r)
		})
	}
}
