package handlers

import (
	"log"
	"net/http"

	"adminpanel/internal/audit"
	"adminpanel/internal/controllers/users"
	"adminpanel/internal/dialog"
	"adminpanel/internal/metrics"
	"adminpanel/internal/session"
	"adminpanel/internal/upstream"
	"adminpanel/internal/view"

	"github.com/go-playground/validator/v10"
)

type UsersHandler struct {
	templates    TemplateExecutor
	controller   *users.Controller
	sessions     *session.Manager
	auditService *audit.Service
	metrics      metrics.Provider
	validate     *validator.Validate
}

func NewUsersHandler(templates TemplateExecutor, controller *users.Controller, sessions *session.Manager, auditService *audit.Service, m metrics.Provider) *UsersHandler {
	return &UsersHandler{
		templates:    templates,
		controller:   controller,
		sessions:     sessions,
		auditService: auditService,
		metrics:      m,
		validate:     validator.New(),
	}
}

func (h *UsersHandler) Detail(w http.ResponseWriter, r *http.Request) {
	page := view.NewPatch()

	userID, err := parseID(h.validate, r.URL.Query().Get("user_id"))
	if err != nil {
		page.Alert("Invalid user id")
		renderPatch(w, h.templates, page)
		return
	}

	ctx := upstream.WithForwardedHeaders(r.Context(), r.Header)
	err = h.controller.GoToDetail(ctx, page, userID)
	h.metrics.IncrementPanelAction("user_detail", err == nil)
	if err != nil {
		log.Printf("Failed to load user %s: %v", userID, err)
	}

	renderPatch(w, h.templates, page)
}

func (h *UsersHandler) ShowDeleteDialog(w http.ResponseWriter, r *http.Request) {
	page := view.NewPatch()

	userID, err := parseID(h.validate, r.URL.Query().Get("user_id"))
	if err != nil {
		page.Alert("Invalid user id")
		renderPatch(w, h.templates, page)
		return
	}

	ctx := upstream.WithForwardedHeaders(r.Context(), r.Header)
	cell := h.sessions.Cell(w, r, dialog.KindUser)
	err = h.controller.ShowDeleteDialog(ctx, page, cell, userID)
	h.metrics.IncrementPanelAction("user_delete_dialog", err == nil)
	if err != nil {
		log.Printf("Failed to open delete dialog for user %s: %v", userID, err)
	}

	renderPatch(w, h.templates, page)
}

func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	page := view.NewPatch()

	ctx := upstream.WithForwardedHeaders(r.Context(), r.Header)
	cell := h.sessions.Cell(w, r, dialog.KindUser)
	userID, _ := cell.Load()

	err := h.controller.Delete(ctx, page, cell)
	h.metrics.IncrementPanelAction("user_delete", err == nil)
	if err != nil {
		log.Printf("Failed to delete user %s: %v", userID, err)
		h.logAction(r, audit.ActionUserDelete, "user_id="+userID+": "+upstream.Message(err), false)
	} else {
		h.logAction(r, audit.ActionUserDelete, "user_id="+userID, true)
	}

	renderPatch(w, h.templates, page)
}

func (h *UsersHandler) logAction(r *http.Request, action, details string, success bool) {
	if err := h.auditService.LogAction(action, details, success, getClientIP(r)); err != nil {
		log.Printf("Failed to write audit log: %v", err)
	}
}
