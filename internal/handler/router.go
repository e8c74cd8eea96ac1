package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/ofstlaxcala/lexnum/internal/config"
	"github.com/ofstlaxcala/lexnum/internal/domain"
	"github.com/ofstlaxcala/lexnum/internal/infra/observability"
	"github.com/ofstlaxcala/lexnum/internal/service"
)

var tracer = otel.Tracer("handler")

// NewRouter creates the HTTP router with all routes and middleware.
// Route names and error messages are the contract the LexNum web frontend
// depends on.
func NewRouter(convSvc *service.Converter, wbSvc *service.Workbook, cfg *config.Config, metrics *observability.Metrics, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// --- Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(observability.ZapLoggerMiddleware(logger))
	r.Use(observability.TracingMiddleware)
	r.Use(recovererJSON(logger))
	r.Use(securityHeaders)
	r.Use(middleware.Heartbeat("/ping"))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, msgNotFound)
	})

	// --- Operational endpoints ---
	r.Get("/health", healthHandler)
	r.Get("/healthz", healthHandler)
	r.Get("/readyz", readyzHandler)
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	// --- Conversion endpoints ---
	r.Post("/convertir_texto", convertirTextoHandler(convSvc, logger))
	r.Post("/convertir_excel", convertirExcelHandler(wbSvc, cfg, logger))

	// --- API v1 ---
	r.Route("/v1", func(r chi.Router) {
		r.Get("/metrics/conversions", conversionMetricsHandler(metrics))
	})

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, domain.HealthStatus{
		Status:  "healthy",
		Service: "LexNum",
	})
}

func readyzHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func conversionMetricsHandler(metrics *observability.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, metrics.GetConversionSnapshot())
	}
}
