package handlers

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter mounts the panel routes. static holds the browser script that
// applies HX-Trigger page effects.
func NewRouter(postsHandler *PostsHandler, usersHandler *UsersHandler, auditHandler *AuditHandler, static fs.FS) chi.Router {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/panel", func(r chi.Router) {
		r.Handle("/static/*", http.StripPrefix("/panel/static/", http.FileServer(http.FS(static))))

		// Posts
		r.Get("/post/detail", postsHandler.Detail)
		r.Get("/post/list/download", postsHandler.DownloadCSV)
		r.Get("/post/delete/dialog", postsHandler.ShowDeleteDialog)
		r.Post("/post/delete", postsHandler.Delete)

		// Users
		r.Get("/user/detail", usersHandler.Detail)
		r.Get("/user/delete/dialog", usersHandler.ShowDeleteDialog)
		r.Post("/user/delete", usersHandler.Delete)

		r.Get("/audit", auditHandler.Recent)
	})

	return r
}
