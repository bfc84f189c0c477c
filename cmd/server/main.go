package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vishalsachdev/openclaw-dashboard/internal/config"
	"github.com/vishalsachdev/openclaw-dashboard/internal/feed"
	"github.com/vishalsachdev/openclaw-dashboard/internal/feed/sources"
	"github.com/vishalsachdev/openclaw-dashboard/internal/handler"
	"github.com/vishalsachdev/openclaw-dashboard/internal/middleware"
	"github.com/vishalsachdev/openclaw-dashboard/internal/registry"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	cfg := config.Load()

	if cfg.BasescanAPIKey == "" {
		logger.Warn("BASESCAN_API_KEY not set, holder counts degrade to registry estimates")
	}

	reg := registry.Default()
	engine := feed.NewEngine(
		reg,
		sources.NewGeckoTerminal(),
		sources.NewBasescan(cfg.BasescanAPIKey),
		logger,
		cfg.LiveMode,
	)
	logger.Info("engine ready", "live_mode", cfg.LiveMode, "tokens", len(reg.Tokens()))

	r := chi.NewRouter()
	r.Use(middleware.Recover(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(cfg.FrontendOrigin))

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", handler.Health())

	r.Route("/api", func(r chi.Router) {
		r.Get("/tokens", handler.Tokens(engine))
		r.Get("/tokens/{symbol}", handler.TokenProfile(reg, engine))
		r.Get("/tokens/{symbol}/history", handler.PriceHistory(engine))
		r.Get("/activity", handler.DeployerActivity(engine))
		r.Get("/ecosystem", handler.Ecosystem(engine))
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down gracefully")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
}
