package announcements

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/goshen-supply/storefront/internal/auth"
	"github.com/goshen-supply/storefront/internal/shared"
	"github.com/goshen-supply/storefront/internal/view"
)

// Handler wires the admin ad routes. Ads have no public page of their own;
// they render on the landing page alongside featured products.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	templates *view.Engine
	csrf      *shared.CSRFManager
	gate      auth.Middleware
}

// NewHandler constructs the announcements handler.
func NewHandler(logger *slog.Logger, service *Service, templates *view.Engine, csrf *shared.CSRFManager, gate auth.Middleware) *Handler {
	return &Handler{logger: logger, service: service, templates: templates, csrf: csrf, gate: gate}
}

// MountRoutes registers the ad routes, all behind the admin gate.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.gate.RequireAdmin)
		r.Get("/add_ad", h.showAddAd)
		r.Post("/add_ad", h.handleAddAd)
		r.Post("/delete_ad/{id}", h.handleDeleteAd)
	})
}

func (h *Handler) showAddAd(w http.ResponseWriter, r *http.Request) {
	sess := shared.SessionFromContext(r.Context())
	csrfToken, _ := h.csrf.EnsureToken(r.Context(), sess)
	data := view.TemplateData{
		Title:       "Add Ad",
		CSRFToken:   csrfToken,
		Flash:       nil,
		CurrentPath: r.URL.Path,
		IsAdmin:     true,
	}
	if sess != nil {
		data.Flash = sess.PopFlash()
	}
	if err := h.templates.Render(w, "pages/add_ad.html", data); err != nil {
		h.logger.Error("render add ad", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (h *Handler) handleAddAd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	sess := shared.SessionFromContext(r.Context())

	if _, err := h.service.Create(r.Context(), CreateInput{Content: r.PostFormValue("content")}); err != nil {
		if errors.Is(err, shared.ErrValidation) {
			h.flashAndRedirect(w, r, sess, "danger", "Ad content cannot be empty!", "/add_ad")
			return
		}
		h.logger.Error("create ad", slog.Any("error", err))
		h.flashAndRedirect(w, r, sess, "danger", shared.UserSafeMessage(err), "/add_ad")
		return
	}

	h.flashAndRedirect(w, r, sess, "success", "Ad added successfully!", "/")
}

func (h *Handler) handleDeleteAd(w http.ResponseWriter, r *http.Request) {
	sess := shared.SessionFromContext(r.Context())
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.renderNotFound(w, r)
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			h.renderNotFound(w, r)
			return
		}
		h.logger.Error("delete ad", slog.Int64("id", id), slog.Any("error", err))
		h.flashAndRedirect(w, r, sess, "danger", shared.UserSafeMessage(err), "/")
		return
	}
	h.flashAndRedirect(w, r, sess, "success", "Ad deleted successfully!", "/")
}

func (h *Handler) flashAndRedirect(w http.ResponseWriter, r *http.Request, sess *shared.Session, kind, message, location string) {
	if sess != nil {
		sess.AddFlash(shared.FlashMessage{Kind: kind, Message: message})
	}
	http.Redirect(w, r, location, http.StatusSeeOther)
}

func (h *Handler) renderNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if err := h.templates.Render(w, "pages/404.html", view.TemplateData{Title: "Not Found", CurrentPath: r.URL.Path}); err != nil {
		h.logger.Error("render 404", slog.Any("error", err))
	}
}
