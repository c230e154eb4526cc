package handlers

import (
	"log"
	"net/http"

	"adminpanel/internal/audit"
	"adminpanel/internal/controllers/posts"
	"adminpanel/internal/dialog"
	"adminpanel/internal/metrics"
	"adminpanel/internal/session"
	"adminpanel/internal/upstream"
	"adminpanel/internal/view"

	"github.com/go-playground/validator/v10"
)

type PostsHandler struct {
	templates    TemplateExecutor
	controller   *posts.Controller
	sessions     *session.Manager
	auditService *audit.Service
	metrics      metrics.Provider
	validate     *validator.Validate
}

func NewPostsHandler(templates TemplateExecutor, controller *posts.Controller, sessions *session.Manager, auditService *audit.Service, m metrics.Provider) *PostsHandler {
	return &PostsHandler{
		templates:    templates,
		controller:   controller,
		sessions:     sessions,
		auditService: auditService,
		metrics:      m,
		validate:     validator.New(),
	}
}

func (h *PostsHandler) Detail(w http.ResponseWriter, r *http.Request) {
	page := view.NewPatch()

	postID, err := parseID(h.validate, r.URL.Query().Get("post_id"))
	if err != nil {
		page.Alert("Invalid post id")
		renderPatch(w, h.templates, page)
		return
	}

	ctx := upstream.WithForwardedHeaders(r.Context(), r.Header)
	err = h.controller.GoToDetail(ctx, page, postID)
	h.metrics.IncrementPanelAction("post_detail", err == nil)
	if err != nil {
		log.Printf("Failed to load post %s: %v", postID, err)
	}

	renderPatch(w, h.templates, page)
}

func (h *PostsHandler) DownloadCSV(w http.ResponseWriter, r *http.Request) {
	page := view.NewPatch()

	ctx := upstream.WithForwardedHeaders(r.Context(), r.Header)
	err := h.controller.DownloadCSV(ctx, page, r.URL.Query()["post_list"])
	h.metrics.IncrementPanelAction("post_export", err == nil)
	if err != nil {
		log.Printf("Failed to export posts: %v", err)
		h.logAction(r, audit.ActionPostExport, upstream.Message(err), false)
	} else {
		h.logAction(r, audit.ActionPostExport, page.File.Name, true)
	}

	renderDownload(w, r, h.templates, page)
}

func (h *PostsHandler) ShowDeleteDialog(w http.ResponseWriter, r *http.Request) {
	page := view.NewPatch()

	postID, err := parseID(h.validate, r.URL.Query().Get("post_id"))
	if err != nil {
		page.Alert("Invalid post id")
		renderPatch(w, h.templates, page)
		return
	}

	ctx := upstream.WithForwardedHeaders(r.Context(), r.Header)
	cell := h.sessions.Cell(w, r, dialog.KindPost)
	err = h.controller.ShowDeleteDialog(ctx, page, cell, postID)
	h.metrics.IncrementPanelAction("post_delete_dialog", err == nil)
	if err != nil {
		log.Printf("Failed to open delete dialog for post %s: %v", postID, err)
	}

	renderPatch(w, h.templates, page)
}

func (h *PostsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	page := view.NewPatch()

	ctx := upstream.WithForwardedHeaders(r.Context(), r.Header)
	cell := h.sessions.Cell(w, r, dialog.KindPost)
	postID, _ := cell.Load()

	err := h.controller.Delete(ctx, page, cell)
	h.metrics.IncrementPanelAction("post_delete", err == nil)
	if err != nil {
		log.Printf("Failed to delete post %s: %v", postID, err)
		h.logAction(r, audit.ActionPostDelete, "post_id="+postID+": "+upstream.Message(err), false)
	} else {
		h.logAction(r, audit.ActionPostDelete, "post_id="+postID, true)
	}

	renderPatch(w, h.templates, page)
}

func (h *PostsHandler) logAction(r *http.Request, action, details string, success bool) {
	if err := h.auditService.LogAction(action, details, success, getClientIP(r)); err != nil {
		log.Printf("Failed to write audit log: %v", err)
	}
}
