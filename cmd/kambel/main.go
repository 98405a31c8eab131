// Package main is the entry point for the Kambel Consult API server.
// It loads configuration, opens the data stores, connects to optional
// services, sets up routing, and starts the HTTP server with graceful
// shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"kambelconsult/internal/auth"
	"kambelconsult/internal/cache"
	"kambelconsult/internal/config"
	"kambelconsult/internal/handlers"
	"kambelconsult/internal/middleware"
	"kambelconsult/internal/router"
	"kambelconsult/internal/session"
	"kambelconsult/internal/storage"
	"kambelconsult/internal/store"
)

func main() {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Structured logger: JSON in production, text in development.
	if cfg.IsDev() {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	} else {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"data_dir", cfg.DataDir,
	)

	// Initialize data stores. Files are created on first write.
	stores := store.NewSet(cfg.DataDir)

	// Admin credentials: seed the first account from the environment.
	creds := auth.NewCredentialStore(stores.Admins)
	if _, err := creds.Bootstrap(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		slog.Error("failed to bootstrap admin account", "error", err)
		os.Exit(1)
	}
	if !creds.HasAdmins() {
		if !cfg.IsDev() {
			slog.Error("no admin account exists; set ADMIN_EMAIL and ADMIN_PASSWORD")
			os.Exit(1)
		}
		slog.Warn("no admin account exists; admin API is unreachable until ADMIN_EMAIL and ADMIN_PASSWORD are set")
	}

	// Connect to Valkey (optional; sessions fall back to memory and the
	// response cache is disabled).
	var valkeyClient *redis.Client
	if cfg.HasValkey() {
		valkeyClient, err = cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword, cfg.ValkeyDB)
		if err != nil {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		defer valkeyClient.Close()
	} else {
		slog.Warn("valkey not configured, using in-memory sessions, response cache disabled")
	}

	// In non-development environments, mark session cookies as Secure (HTTPS-only).
	secureCookies := !cfg.IsDev()
	var sessionBackend session.Backend = session.NewMemoryBackend()
	var responseCache *cache.ResponseCache
	if valkeyClient != nil {
		sessionBackend = session.NewValkeyBackend(valkeyClient)
		responseCache = cache.NewResponseCache(valkeyClient, cache.DefaultResponseTTL)
		// Cached responses may predate changes made while the server was down.
		responseCache.InvalidateAll(context.Background())
	}
	sessionStore := session.NewStore(sessionBackend, secureCookies)

	// Media storage: S3-compatible bucket when configured, else PUBLIC_DIR.
	var media storage.Storage
	publicDir := ""
	if cfg.HasS3() {
		s3Client, err := storage.NewS3(
			cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
			cfg.S3Bucket, cfg.S3PublicURL,
		)
		if err != nil {
			slog.Error("failed to initialize S3 storage", "error", err)
			os.Exit(1)
		}
		media = s3Client
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	} else {
		media = storage.NewLocal(cfg.PublicDir)
		publicDir = cfg.PublicDir
		slog.Info("local media storage", "dir", cfg.PublicDir)
	}

	// Rate limiters for public form posts, page views and login attempts.
	writeLimiter := middleware.NewRateLimiter(20, time.Minute)
	defer writeLimiter.Stop()
	pageViewLimiter := middleware.NewRateLimiter(120, time.Minute)
	defer pageViewLimiter.Stop()
	loginLimiter := middleware.NewRateLimiter(5, time.Minute)
	defer loginLimiter.Stop()

	// Set up the Chi router with all middleware and routes.
	r := router.New(router.Deps{
		Sessions:        sessionStore,
		API:             handlers.NewAPI(stores, responseCache),
		Media:           handlers.NewMedia(stores.Settings, media, responseCache),
		Auth:            handlers.NewAuth(creds, sessionStore, cfg.AdminRequire2FA),
		Cache:           responseCache,
		WriteLimiter:    writeLimiter,
		PageViewLimiter: pageViewLimiter,
		LoginLimiter:    loginLimiter,
		Secure:          secureCookies,
		PublicDir:       publicDir,
	})

	// Create the HTTP server with sensible timeouts. ReadTimeout covers
	// 10 MB media uploads on slow links.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
