package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/popeskul/wa-webhook-bridge/internal/api"
	"github.com/popeskul/wa-webhook-bridge/internal/handler"
	"github.com/popeskul/wa-webhook-bridge/internal/metrics"
	"github.com/popeskul/wa-webhook-bridge/internal/middleware"
)

func setupRouter(h api.ServerInterface, logger *zap.Logger) http.Handler {
	metrics.MustRegister()

	r := chi.NewRouter()
	r.Use(middleware.Metrics)

	// Serve OpenAPI spec
	r.Get("/api/openapi.yaml", func(w http.ResponseWriter, req *http.Request) {
		http.ServeFile(w, req, "api/openapi.yaml")
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return api.HandlerWithOptions(h, api.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: handler.ErrorHandler(logger),
	})
}
