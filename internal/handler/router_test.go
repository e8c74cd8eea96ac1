package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/ofstlaxcala/lexnum/internal/config"
	"github.com/ofstlaxcala/lexnum/internal/handler"
	"github.com/ofstlaxcala/lexnum/internal/infra/cache"
	"github.com/ofstlaxcala/lexnum/internal/infra/observability"
	"github.com/ofstlaxcala/lexnum/internal/moneytext"
	"github.com/ofstlaxcala/lexnum/internal/service"
	"github.com/ofstlaxcala/lexnum/internal/sheet"
)

func newRouter() http.Handler {
	return newRouterWithConfig(config.Load())
}

func newRouterWithConfig(cfg *config.Config) http.Handler {
	metrics := observability.NewMetrics()
	logger := zap.NewNop()
	renderer := moneytext.NewRenderer(cfg.StripTokens, cfg.CurrencySuffix)

	convSvc := service.NewConverter(renderer, cache.New[string](time.Minute), metrics, logger)
	wbSvc := service.NewWorkbook(renderer, sheet.NewResolver(cfg.ColumnAliases), cfg.TextColumn, cfg.MaxConcurrency, metrics, logger)

	return handler.NewRouter(convSvc, wbSvc, cfg, metrics, logger)
}

func TestHealth(t *testing.T) {
	router := newRouter()

	for _, path := range []string{"/health", "/healthz"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("GET %s: expected 200, got %d", path, rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "healthy" || body["service"] != "LexNum" {
		t.Errorf("unexpected health body: %v", body)
	}
}

func TestReadyz(t *testing.T) {
	router := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestMetrics(t *testing.T) {
	router := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestConversionMetricsSnapshot(t *testing.T) {
	router := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/metrics/conversions", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if _, ok := body["total_conversions"]; !ok {
		t.Errorf("snapshot missing total_conversions: %v", body)
	}
}

func TestNotFoundIsJSON(t *testing.T) {
	router := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/no-such-route", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["error"] != "Ruta no encontrada." {
		t.Errorf("unexpected 404 body: %v", body)
	}
}

func TestSecurityHeaders(t *testing.T) {
	router := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	want := map[string]string{
		"Cache-Control":          "no-store, no-cache, must-revalidate, max-age=0",
		"Pragma":                 "no-cache",
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"X-XSS-Protection":       "1; mode=block",
	}
	for name, value := range want {
		if got := rec.Header().Get(name); got != value {
			t.Errorf("header %s = %q, want %q", name, got, value)
		}
	}
}
