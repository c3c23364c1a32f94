package catalog

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

// Handler wires the storefront and admin product routes.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	templates *view.Engine
	csrf      *shared.CSRFManager
	gate      auth.Middleware
}

// NewHandler constructs the catalog handler.
func NewHandler(logger *slog.Logger, service *Service, templates *view.Engine, csrf *shared.CSRFManager, gate auth.Middleware) *Handler {
	return &Handler{logger: logger, service: service, templates: templates, csrf: csrf, gate: gate}
}

// MountRoutes registers catalog routes. The store listing is public; every
// mutating route sits behind the admin gate.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/store", h.showStore)
	r.Group(func(r chi.Router) {
		r.Use(h.gate.RequireAdmin)
		r.Get("/add_product", h.showAddProduct)
		r.Post("/add_product", h.handleAddProduct)
		r.Post("/delete_product/{id}", h.handleDeleteProduct)
	})
}

type storePageData struct {
	Products []Product
}

func (h *Handler) showStore(w http.ResponseWriter, r *http.Request) {
	sess := shared.SessionFromContext(r.Context())
	csrfToken, _ := h.csrf.EnsureToken(r.Context(), sess)

	products, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list products", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.render(w, r, "pages/store.html", view.TemplateData{
		Title:       "Store",
		CSRFToken:   csrfToken,
		Flash:       popFlash(sess),
		CurrentPath: r.URL.Path,
		IsAdmin:     sess != nil && sess.IsAdmin(),
		Data:        storePageData{Products: products},
	})
}

func (h *Handler) showAddProduct(w http.ResponseWriter, r *http.Request) {
	sess := shared.SessionFromContext(r.Context())
	csrfToken, _ := h.csrf.EnsureToken(r.Context(), sess)
	h.render(w, r, "pages/add_product.html", view.TemplateData{
		Title:       "Add Product",
		CSRFToken:   csrfToken,
		Flash:       popFlash(sess),
		CurrentPath: r.URL.Path,
		IsAdmin:     true,
	})
}

func (h *Handler) handleAddProduct(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	sess := shared.SessionFromContext(r.Context())

	priceRaw := r.PostFormValue("price")
	price, priceErr := strconv.ParseFloat(priceRaw, 64)

	input := CreateInput{
		Name:        r.PostFormValue("name"),
		Description: r.PostFormValue("description"),
		Price:       price,
		Link:        r.PostFormValue("link"),
		Featured:    r.PostFormValue("featured") != "",
	}

	if priceRaw == "" || priceErr != nil {
		h.flashAndRedirect(w, r, sess, "danger", shared.UserSafeMessage(shared.ErrValidation), "/add_product")
		return
	}

	if _, err := h.service.Create(r.Context(), input); err != nil {
		if errors.Is(err, shared.ErrValidation) {
			h.flashAndRedirect(w, r, sess, "danger", shared.UserSafeMessage(err), "/add_product")
			return
		}
		h.logger.Error("create product", slog.Any("error", err))
		h.flashAndRedirect(w, r, sess, "danger", shared.UserSafeMessage(err), "/add_product")
		return
	}

	h.flashAndRedirect(w, r, sess, "success", "Product added successfully!", "/store")
}

func (h *Handler) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
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
		h.logger.Error("delete product", slog.Int64("id", id), slog.Any("error", err))
		h.flashAndRedirect(w, r, sess, "danger", shared.UserSafeMessage(err), "/store")
		return
	}
	h.flashAndRedirect(w, r, sess, "success", "Product deleted successfully!", "/store")
}

func (h *Handler) flashAndRedirect(w http.ResponseWriter, r *http.Request, sess *shared.Session, kind, message, location string) {
	if sess != nil {
		sess.AddFlash(shared.FlashMessage{Kind: kind, Message: message})
	}
	http.Redirect(w, r, location, http.StatusSeeOther)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, page string, data view.TemplateData) {
	if err := h.templates.Render(w, page, data); err != nil {
		h.logger.Error("render page", slog.String("page", page), slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (h *Handler) renderNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if err := h.templates.Render(w, "pages/404.html", view.TemplateData{Title: "Not Found", CurrentPath: r.URL.Path}); err != nil {
		h.logger.Error("render 404", slog.Any("error", err))
	}
}

func popFlash(sess *shared.Session) *shared.FlashMessage {
	if sess == nil {
		return nil
	}
	return sess.PopFlash()
}
