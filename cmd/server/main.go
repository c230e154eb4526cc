package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"adminpanel/internal/audit"
	"adminpanel/internal/config"
	"adminpanel/internal/controllers/posts"
	"adminpanel/internal/controllers/users"
	"adminpanel/internal/database"
	"adminpanel/internal/handlers"
	"adminpanel/internal/metrics"
	"adminpanel/internal/session"
	"adminpanel/internal/upstream"
	"adminpanel/web"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.New(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Initialize services
	metricsProvider := metrics.NewPrometheusProvider()
	client, err := upstream.NewClient(cfg.UpstreamURL, cfg.UpstreamTimeout, upstream.WithMetrics(metricsProvider))
	if err != nil {
		log.Fatalf("Failed to create upstream client: %v", err)
	}
	auditService := audit.NewService(db)
	sessionManager := session.NewManager(cfg.SessionSecret, cfg.SessionMaxAge)

	postController := posts.NewController(client)
	userController := users.NewController(client, users.WithMediaPath(cfg.MediaPath))

	// Load templates
	webFS := templateFS(cfg.WebDir)
	templates, err := handlers.LoadTemplates(webFS)
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}
	staticFS, err := fs.Sub(webFS, "static")
	if err != nil {
		log.Fatalf("Failed to load static files: %v", err)
	}

	// Initialize handlers
	postsHandler := handlers.NewPostsHandler(templates, postController, sessionManager, auditService, metricsProvider)
	usersHandler := handlers.NewUsersHandler(templates, userController, sessionManager, auditService, metricsProvider)
	auditHandler := handlers.NewAuditHandler(auditService)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handlers.NewRouter(postsHandler, usersHandler, auditHandler, staticFS),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Starting admin panel on %s (upstream %s)", srv.Addr, cfg.UpstreamURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}

// templateFS prefers templates on disk when a web directory is configured,
// so they can be edited without a rebuild.
func templateFS(webDir string) fs.FS {
	if webDir != "" {
		if _, err := os.Stat(webDir); err == nil {
			log.Printf("Using web directory: %s", webDir)
			return os.DirFS(webDir)
		}
		log.Printf("Web directory %s not found, using embedded templates", webDir)
	}
	return web.FS
}
