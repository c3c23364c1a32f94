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

	"github.com/goshen-supply/storefront/internal/announcements"
	"github.com/goshen-supply/storefront/internal/app"
	"github.com/goshen-supply/storefront/internal/auth"
	"github.com/goshen-supply/storefront/internal/catalog"
	"github.com/goshen-supply/storefront/internal/observability"
	"github.com/goshen-supply/storefront/internal/platform/db"
	"github.com/goshen-supply/storefront/internal/shared"
	"github.com/goshen-supply/storefront/internal/view"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn("redis ping", slog.Any("error", err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	sessionManager := shared.NewSessionManager(redisClient, "storefront_session", cfg.SessionSecret, cfg.SessionTTL, cfg.IsProduction())
	csrfManager := shared.NewCSRFManager(cfg.CSRFSecret)

	templates, err := view.NewEngine()
	if err != nil {
		logger.Error("parse templates", slog.Any("error", err))
		os.Exit(1)
	}

	var (
		productRepo catalog.Repository
		adRepo      announcements.Repository
	)
	switch cfg.StoreDriver {
	case app.StoreDriverPostgres:
		pool, err := db.New(ctx, cfg.PGDSN)
		if err != nil {
			logger.Error("connect postgres", slog.Any("error", err))
			os.Exit(1)
		}
		defer pool.Close()
		productRepo = catalog.NewPGRepository(pool)
		adRepo = announcements.NewPGRepository(pool)
	default:
		logger.Info("using in-memory store; data will not survive restarts")
		productRepo = catalog.NewMemoryRepository()
		adRepo = announcements.NewMemoryRepository()
	}

	authService := auth.NewService(auth.Identity{
		Email:        cfg.AdminEmail,
		Password:     cfg.AdminPassword,
		PasswordHash: cfg.AdminPasswordHash,
	})
	authHandler := auth.NewHandler(logger, authService, templates, sessionManager, csrfManager)
	adminGate := auth.Middleware{Logger: logger}

	catalogService := catalog.NewService(productRepo)
	catalogHandler := catalog.NewHandler(logger, catalogService, templates, csrfManager, adminGate)

	adService := announcements.NewService(adRepo)
	adHandler := announcements.NewHandler(logger, adService, templates, csrfManager, adminGate)

	metrics := observability.NewMetrics()

	router := app.NewRouter(app.RouterParams{
		Logger:               logger,
		Config:               cfg,
		Templates:            templates,
		SessionManager:       sessionManager,
		CSRFManager:          csrfManager,
		AuthHandler:          authHandler,
		CatalogHandler:       catalogHandler,
		CatalogService:       catalogService,
		AnnouncementsHandler: adHandler,
		AnnouncementsService: adService,
		Metrics:              metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
