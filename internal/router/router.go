// Package router sets up all HTTP routes and middleware chains for the
// Kambel Consult API. Routes are split into public reads, rate-limited
// public writes, the auth endpoints, and the admin group that requires a
// verified session and a CSRF token.
package router

import (
	"bytes"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"kambelconsult/internal/cache"
	"kambelconsult/internal/handlers"
	"kambelconsult/internal/markdown"
	"kambelconsult/internal/middleware"
	"kambelconsult/internal/session"
)

// Deps are the collaborators wired into the router.
type Deps struct {
	Sessions *session.Store
	API      *handlers.API
	Media    *handlers.Media
	Auth     *handlers.Auth

	// Cache serves public reads; nil disables response caching.
	Cache *cache.ResponseCache

	// WriteLimiter guards public form submissions, PageViewLimiter the
	// analytics beacon, LoginLimiter the login and code verification
	// endpoints.
	WriteLimiter    *middleware.RateLimiter
	PageViewLimiter *middleware.RateLimiter
	LoginLimiter    *middleware.RateLimiter

	// Secure marks cookies Secure and enables HSTS.
	Secure bool

	// PublicDir is served for uploaded media when storage is local.
	// Empty when media lives in a bucket.
	PublicDir string
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(d Deps) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders(d.Secure))
	r.Use(middleware.LoadSession(d.Sessions))

	// Health check: no auth, no CSRF.
	r.Get("/health", healthHandler)
	r.Get("/highlight.css", highlightCSSHandler())

	if d.PublicDir != "" {
		files := staticHandler(d.PublicDir)
		r.Get("/gallery/*", files)
		r.Get("/{favicon:favicon-[0-9]+\\.[a-z]+}", files)
		r.Get("/favicon.svg", files)
	}

	csrf := middleware.NewCSRF(d.Secure)
	cached := func(entity string) func(http.Handler) http.Handler {
		return d.Cache.Middleware(entity, session.CookieName)
	}
	api, media, auth := d.API, d.Media, d.Auth

	r.Route("/api", func(r chi.Router) {
		// Public reads. Listings are cached; single records that count
		// views or carry a countdown are not.
		r.Group(func(r chi.Router) {
			r.With(cached(handlers.EntityPricing)).Get("/pricing", api.PricingList)
			r.Get("/pricing/{id}", api.PricingGet)

			r.With(cached(handlers.EntityBlog)).Get("/blog", api.BlogList)
			r.Get("/blog/{slug}", api.BlogGet)

			r.With(cached(handlers.EntityMasterclasses)).Get("/masterclasses", api.MasterclassList)
			r.Get("/masterclasses/{id}", api.MasterclassGet)

			r.With(cached(handlers.EntityPublications)).Get("/publications", api.PublicationList)
			r.Get("/publications/{id}", api.PublicationGet)

			r.With(cached(handlers.EntityServices)).Get("/services", api.ServiceList)
			r.Get("/services/{id}", api.ServiceGet)

			r.With(cached(handlers.EntityAbout)).Get("/about", api.AboutGet)

			r.With(cached(handlers.EntitySettings)).Get("/settings/contact", api.SettingsContact)
			r.With(cached(handlers.EntitySettings)).Get("/settings/whatsapp", api.SettingsWhatsApp)
			r.Get("/settings/launch-date", api.SettingsLaunchDate)

			r.With(cached(handlers.EntitySettings)).Get("/favicon", media.FaviconGet)
			r.With(cached(handlers.EntityGallery)).Get("/gallery", media.GalleryList)
		})

		// Public writes, rate limited per client IP.
		r.Group(func(r chi.Router) {
			r.Use(d.WriteLimiter.Middleware)
			r.Post("/business/register", api.BusinessRegister)
			r.Post("/masterclasses/{id}/register", api.MasterclassRegister)
			r.Post("/contact", api.ContactCreate)
			r.Post("/newsletter", api.NewsletterSubscribe)
			r.Delete("/newsletter", api.NewsletterUnsubscribe)
		})

		// Page views fire on every navigation and get a looser budget.
		r.With(d.PageViewLimiter.Middleware).Post("/analytics", api.AnalyticsRecord)

		// Auth endpoints, reachable without a verified session.
		r.Route("/auth", func(r chi.Router) {
			r.Use(csrf)
			r.Get("/csrf", auth.CSRFToken)
			r.With(d.LoginLimiter.Middleware).Post("/login", auth.Login)
			r.Post("/logout", auth.Logout)

			// 2FA requires auth but NOT completed 2FA.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Get("/me", auth.Me)
				r.Get("/2fa/setup", auth.TwoFASetup)
				r.With(d.LoginLimiter.Middleware).Post("/2fa/verify", auth.TwoFAVerify)
			})
		})

		// Authenticated + 2FA-verified admin area.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.Require2FA)
			r.Use(csrf)

			r.Get("/business/register", api.BusinessList)
			r.Patch("/business/register/{id}", api.BusinessUpdate)
			r.Delete("/business/register/{id}", api.BusinessDelete)

			r.Post("/pricing", api.PricingCreate)
			r.Post("/pricing/reorder", api.PricingReorder)
			r.Put("/pricing/{id}", api.PricingUpdate)
			r.Delete("/pricing/{id}", api.PricingDelete)

			r.Post("/blog", api.BlogCreate)
			r.Put("/blog/{slug}", api.BlogUpdate)
			r.Delete("/blog/{slug}", api.BlogDelete)

			r.Post("/masterclasses", api.MasterclassCreate)
			r.Put("/masterclasses/{id}", api.MasterclassUpdate)
			r.Delete("/masterclasses/{id}", api.MasterclassDelete)
			r.Get("/masterclasses/{id}/registrations", api.MasterclassRegistrations)
			r.Patch("/masterclasses/{id}/registrations/{regID}", api.MasterclassRegistrationStatus)

			r.Post("/publications", api.PublicationCreate)
			r.Put("/publications/{id}", api.PublicationUpdate)
			r.Delete("/publications/{id}", api.PublicationDelete)

			r.Post("/services", api.ServiceCreate)
			r.Put("/services/{id}", api.ServiceUpdate)
			r.Delete("/services/{id}", api.ServiceDelete)

			r.Get("/contact", api.ContactList)
			r.Get("/contact/{id}", api.ContactGet)
			r.Put("/contact/{id}", api.ContactUpdate)
			r.Delete("/contact/{id}", api.ContactDelete)

			r.Get("/newsletter", api.NewsletterList)
			r.Get("/analytics", api.AnalyticsSummary)
			r.Put("/about", api.AboutUpdate)

			r.Post("/settings/contact", api.SettingsContactUpdate)
			r.Post("/settings/whatsapp", api.SettingsWhatsAppUpdate)
			r.Post("/settings/launch-date", api.SettingsLaunchDateUpdate)

			r.Post("/favicon", media.FaviconUpload)
			r.Delete("/favicon", media.FaviconDelete)
			r.Post("/gallery/upload", media.GalleryUpload)
			r.Delete("/gallery/{id}", media.GalleryDelete)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// highlightCSSHandler serves the stylesheet for highlighted code blocks
// in rendered blog posts. The CSS is generated once.
func highlightCSSHandler() http.HandlerFunc {
	var buf bytes.Buffer
	if err := markdown.WriteHighlightCSS(&buf); err != nil {
		slog.Error("generate highlight css", "error", err)
	}
	css := buf.Bytes()
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=86400")
		w.Write(css)
	}
}

// staticHandler serves uploaded files from dir without directory listings.
func staticHandler(dir string) http.HandlerFunc {
	fs := http.FileServer(http.Dir(dir))
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		fs.ServeHTTP(w, r)
	}
}
