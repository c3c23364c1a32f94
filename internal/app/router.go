package app

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/goshen-supply/storefront/internal/announcements"
	"github.com/goshen-supply/storefront/internal/auth"
	"github.com/goshen-supply/storefront/internal/catalog"
	"github.com/goshen-supply/storefront/internal/observability"
	"github.com/goshen-supply/storefront/internal/platform/httpx"
	"github.com/goshen-supply/storefront/internal/shared"
	"github.com/goshen-supply/storefront/internal/view"
	"github.com/goshen-supply/storefront/web"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger               *slog.Logger
	Config               *Config
	Templates            *view.Engine
	SessionManager       *shared.SessionManager
	CSRFManager          *shared.CSRFManager
	AuthHandler          *auth.Handler
	CatalogHandler       *catalog.Handler
	CatalogService       *catalog.Service
	AnnouncementsHandler *announcements.Handler
	AnnouncementsService *announcements.Service
	Metrics              *observability.Metrics
}

type homePageData struct {
	Featured []catalog.Product
	Ads      []announcements.Ad
}

// NewRouter constructs the chi.Router for the storefront.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:         params.Logger,
		Config:         params.Config,
		SessionManager: params.SessionManager,
		CSRFManager:    params.CSRFManager,
		Metrics:        params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		sess := shared.SessionFromContext(r.Context())
		csrfToken, _ := params.CSRFManager.EnsureToken(r.Context(), sess)

		// Featured products and ads are independent reads.
		var data homePageData
		g, ctx := errgroup.WithContext(r.Context())
		g.Go(func() error {
			featured, err := params.CatalogService.ListFeatured(ctx)
			data.Featured = featured
			return err
		})
		g.Go(func() error {
			ads, err := params.AnnouncementsService.List(ctx)
			data.Ads = ads
			return err
		})
		if err := g.Wait(); err != nil {
			params.Logger.Error("load landing data", slog.Any("error", err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		var flash *shared.FlashMessage
		if sess != nil {
			flash = sess.PopFlash()
		}
		viewData := view.TemplateData{
			Title:       "Home",
			CSRFToken:   csrfToken,
			Flash:       flash,
			CurrentPath: r.URL.Path,
			IsAdmin:     sess != nil && sess.IsAdmin(),
			Data:        data,
		}
		if err := params.Templates.Render(w, "pages/home.html", viewData); err != nil {
			params.Logger.Error("render home", slog.Any("error", err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	})

	r.Get("/about", func(w http.ResponseWriter, r *http.Request) {
		sess := shared.SessionFromContext(r.Context())
		var flash *shared.FlashMessage
		if sess != nil {
			flash = sess.PopFlash()
		}
		viewData := view.TemplateData{
			Title:       "About",
			Flash:       flash,
			CurrentPath: r.URL.Path,
			IsAdmin:     sess != nil && sess.IsAdmin(),
		}
		if err := params.Templates.Render(w, "pages/about.html", viewData); err != nil {
			params.Logger.Error("render about", slog.Any("error", err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	})

	params.AuthHandler.MountRoutes(r)
	params.CatalogHandler.MountRoutes(r)
	params.AnnouncementsHandler.MountRoutes(r)

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		params.Logger.Error("create static sub filesystem", slog.Any("error", err))
	} else {
		fileServer := http.StripPrefix("/static/", http.FileServer(http.FS(staticFS)))
		r.Handle("/static/*", staticCacheHandler(fileServer))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		if httpx.WantsJSON(r) {
			httpx.Problem(w, http.StatusNotFound, "Not Found", "no such route")
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		if err := params.Templates.Render(w, "pages/404.html", view.TemplateData{Title: "Not Found", CurrentPath: r.URL.Path}); err != nil {
			params.Logger.Error("render 404", slog.Any("error", err))
		}
	})

	return r
}

// staticCacheHandler wraps a file server with Cache-Control headers.
func staticCacheHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		next.ServeHTTP(w, r)
	})
}
