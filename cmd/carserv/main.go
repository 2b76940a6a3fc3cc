// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/carserv/cms/internal/config"
	"github.com/carserv/cms/internal/handler"
	"github.com/carserv/cms/internal/handler/api"
	"github.com/carserv/cms/internal/logging"
	"github.com/carserv/cms/internal/middleware"
	"github.com/carserv/cms/internal/repo"
	"github.com/carserv/cms/internal/service"
	"github.com/carserv/cms/internal/store"
	"github.com/carserv/cms/internal/version"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "CarServ - garage website CMS\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CARSERV_DB_PATH         SQLite database path (default: ./data/carserv.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CARSERV_SERVER_PORT     Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CARSERV_PUBLIC_READ     Serve content reads anonymously (default: true)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CARSERV_ADMIN_PASSWORD  Initial admin password (random when empty)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CARSERV_ENV             Environment: development|production (default: development)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}
	if *showVersion {
		_, _ = fmt.Printf("carserv %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	versionInfo := &version.Info{
		Version:   appVersion,
		GitCommit: appGitCommit,
		BuildTime: appBuildTime,
	}

	logLevel := cfg.SlogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Ensure data directory exists
	dbDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	// Upgrade logger to also write WARN and ERROR logs to the event log
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	logger = slog.New(logging.NewEventLogHandler(textHandler, db))
	slog.SetDefault(logger)
	slog.Info("event log integration enabled", "min_level", "warn")

	ctx := context.Background()
	if err := store.Seed(ctx, db, cfg.AdminPassword); err != nil {
		return fmt.Errorf("seeding database: %w", err)
	}
	if cfg.DoSeedDemo {
		if err := store.SeedDemo(ctx, db); err != nil {
			return fmt.Errorf("seeding demo content: %w", err)
		}
	}

	repository := repo.New(db)
	eventService := service.NewEventService(db)

	frontendHandler, err := handler.NewFrontendHandler(repository)
	if err != nil {
		return fmt.Errorf("initializing frontend handler: %w", err)
	}
	adminHandler, err := handler.NewAdminHandler(repository, eventService)
	if err != nil {
		return fmt.Errorf("initializing admin handler: %w", err)
	}
	docsHandler, err := handler.NewDocsHandler()
	if err != nil {
		return fmt.Errorf("initializing docs handler: %w", err)
	}
	healthHandler := handler.NewHealthHandler(db, versionInfo)
	apiHandler := api.NewHandler(repository)

	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())))

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	r.Use(rateLimiter.Middleware())

	// Credentials are resolved on every request; there are no sessions.
	// Rejected attempts land in the event log.
	r.Use(middleware.BasicAuth(repository, eventService))

	// readGate requires auth on content reads when public reads are off.
	readGate := func(next http.Handler) http.Handler { return next }
	if !cfg.PublicRead {
		readGate = middleware.RequireUser
		slog.Info("public reads disabled, content routes require authentication")
	}

	// Health check routes (public; details for authenticated admins)
	r.Get("/health", healthHandler.Health)
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// Public site
	r.Group(func(r chi.Router) {
		r.Use(readGate)
		r.Get("/", frontendHandler.Home)
		r.Get("/about", frontendHandler.NamedPage("About"))
		r.Get("/services", frontendHandler.NamedPage("Services"))
		r.Get("/contact", frontendHandler.NamedPage("Contact"))
		r.Get("/team", frontendHandler.NamedPage("Team"))
		r.Get("/testimonials", frontendHandler.NamedPage("Testimonials"))
	})

	// Admin views
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Get("/", adminHandler.Dashboard)
		r.Get("/pages", adminHandler.Pages)
		r.Get("/pages/{id}", adminHandler.PageEdit)
		r.Get("/settings", adminHandler.Settings)
		r.Get("/translations", adminHandler.Translations)
		r.Get("/docs", docsHandler.Overview)
		r.Get("/docs/{slug}", docsHandler.Guide)
	})

	// JSON API
	r.Route("/api", func(r chi.Router) {
		// Reads
		r.Group(func(r chi.Router) {
			r.Use(readGate)
			r.Get("/pages", apiHandler.ListPages)
			r.Get("/pages/{id}", apiHandler.GetPage)
			r.Get("/pages/{id}/content", apiHandler.ListPageContent)
			r.Get("/content", apiHandler.ListContentItems)
			r.Get("/content/{id}", apiHandler.GetContentItem)
			r.Get("/settings", apiHandler.ListSettings)
			r.Get("/settings/{id}", apiHandler.GetSetting)
			r.Get("/translations", apiHandler.ListTranslations)
			r.Get("/translations/{id}", apiHandler.GetTranslation)
		})

		// Legacy private listing: always gated regardless of PublicRead
		r.With(middleware.RequireUser).Get("/users", apiHandler.ListUsers)

		// Writes: authentication at the edge, role checks in the repository
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireUser)
			r.Post("/pages", apiHandler.CreatePage)
			r.Put("/pages/{id}", apiHandler.UpdatePage)
			r.Delete("/pages/{id}", apiHandler.DeletePage)
			r.Post("/content", apiHandler.CreateContentItem)
			r.Put("/content/{id}", apiHandler.UpdateContentItem)
			r.Delete("/content/{id}", apiHandler.DeleteContentItem)
			r.Post("/settings", apiHandler.CreateSetting)
			r.Put("/settings/{id}", apiHandler.UpdateSetting)
			r.Delete("/settings/{id}", apiHandler.DeleteSetting)
			r.Post("/translations", apiHandler.CreateTranslation)
			r.Put("/translations/{id}", apiHandler.UpdateTranslation)
			r.Delete("/translations/{id}", apiHandler.DeleteTranslation)
		})
	})

	_ = eventService.LogSystemEvent(ctx, "info", "server starting", map[string]any{
		"addr":        cfg.ServerAddr(),
		"public_read": fmt.Sprintf("%t", cfg.PublicRead),
	})

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
