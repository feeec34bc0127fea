// Package main is the entry point for the Promptoteka server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"promptoteka/internal/ai"
	"promptoteka/internal/cache"
	"promptoteka/internal/catalog"
	"promptoteka/internal/config"
	"promptoteka/internal/database"
	"promptoteka/internal/enrich"
	"promptoteka/internal/handlers"
	"promptoteka/internal/mailer"
	"promptoteka/internal/render"
	"promptoteka/internal/router"
	"promptoteka/internal/session"
	"promptoteka/internal/storage"
	"promptoteka/internal/store"
	"promptoteka/internal/twitter"
)

func main() {
	// Structured logger — outputs text with debug level; production noise
	// is filtered downstream by the log collector.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey (Redis-compatible cache + session store).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// Session store backed by Valkey. Outside development, session
	// cookies are marked Secure (HTTPS-only).
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)

	// HTML template renderer. In dev mode, pages load assets from CDN;
	// in production they use compiled files embedded in the binary.
	renderer, err := render.New(cfg.IsDev())
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	// Data stores.
	userStore := store.NewUserStore(db)
	promptStore := store.NewPromptStore(db)
	articleStore := store.NewArticleStore(db)

	// S3-compatible object storage for mirrored prompt images (optional —
	// imports keep source CDN URLs without it).
	storageClient, err := storage.New(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3Bucket, cfg.S3PublicURL,
	)
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if storageClient != nil {
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	} else {
		slog.Warn("s3 storage not configured — imported images keep source urls")
	}

	// Caches: the catalog list and fully rendered public pages.
	catalogCache := cache.NewCatalogCache(valkeyClient, cache.DefaultCatalogTTL)
	pageCache := cache.NewPageCache(valkeyClient, cache.DefaultPageTTL)

	// AI provider registry for prompt enrichment.
	aiRegistry := ai.NewRegistry(cfg.AIProvider, map[string]ai.ProviderConfig{
		"gemini": {APIKey: cfg.GeminiKey, Model: cfg.GeminiModel, BaseURL: cfg.GeminiBaseURL},
		"openai": {APIKey: cfg.OpenAIKey, Model: cfg.OpenAIModel, BaseURL: cfg.OpenAIBaseURL},
	})

	slog.Info("ai providers initialized",
		"active", aiRegistry.ActiveName(),
		"available", aiRegistry.Available(),
	)

	// Enrichment service wraps the registry with a circuit breaker.
	enricher := enrich.NewService(aiRegistry)

	// Contact-form mailer (optional).
	contactMailer := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPTo)
	if contactMailer == nil {
		slog.Warn("smtp not configured — contact form delivery disabled")
	}

	// Keyword classifier for the category backlog.
	classifier := catalog.NewService(promptStore)

	// Create handler groups with their dependencies.
	publicHandlers := handlers.NewPublic(renderer, promptStore, articleStore, catalogCache, pageCache, contactMailer)
	adminHandlers := handlers.NewAdmin(renderer, promptStore, articleStore, classifier, catalogCache, pageCache)
	adminAIHandlers := handlers.NewAdminAI(renderer, promptStore, enricher, twitter.NewClient(""), storageClient, catalogCache, pageCache)
	authHandlers := handlers.NewAuth(renderer, sessionStore, userStore)

	// Set up the Chi router with all middleware and routes.
	r := router.New(router.Deps{
		Sessions:      sessionStore,
		Public:        publicHandlers,
		Admin:         adminHandlers,
		AdminAI:       adminAIHandlers,
		Auth:          authHandlers,
		BaseURL:       cfg.BaseURL,
		SecureCookies: secureCookies,
	})

	// Create the HTTP server with sensible timeouts.
	// WriteTimeout must accommodate AI endpoints that wait on LLM responses
	// (typically 10-30s, up to 60s for complex prompts).
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 90 * time.Second,
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
