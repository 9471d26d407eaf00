package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/axomdata/nrega-dashboard/internal/adapter/datagov"
	"github.com/axomdata/nrega-dashboard/internal/adapter/geocode"
	"github.com/axomdata/nrega-dashboard/internal/adapter/httpapi"
	"github.com/axomdata/nrega-dashboard/internal/config"
	"github.com/axomdata/nrega-dashboard/internal/domain"
	"github.com/axomdata/nrega-dashboard/internal/observability"
)

func main() {
	// Local development convenience; absent .env is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	upstream := datagov.NewClient(cfg, metrics, logger)
	reverse := geocode.NewNominatim(cfg.NominatimBaseURL, cfg.GeocodeTimeout, metrics, logger)
	iplocator := geocode.NewIPAPI(cfg.IPAPIBaseURL, cfg.GeocodeTimeout, metrics, logger)

	catalog := domain.NewAssamCatalog()
	aliases := domain.AssamCityAliases()

	handlers := httpapi.NewHandlers(upstream, reverse, iplocator, catalog, aliases, cfg.TrendWindow, metrics, logger)
	srv := httpapi.NewServer(cfg.HTTPAddr, handlers, cfg.CORSAllowedOrigins, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	logger.Info("dashboard api started",
		"addr", cfg.HTTPAddr,
		"districts", catalog.Len(),
		"trend_window", cfg.TrendWindow,
	)

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
