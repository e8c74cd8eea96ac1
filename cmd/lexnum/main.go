package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ofstlaxcala/lexnum/internal/config"
	"github.com/ofstlaxcala/lexnum/internal/handler"
	"github.com/ofstlaxcala/lexnum/internal/infra/cache"
	"github.com/ofstlaxcala/lexnum/internal/infra/observability"
	"github.com/ofstlaxcala/lexnum/internal/moneytext"
	"github.com/ofstlaxcala/lexnum/internal/service"
	"github.com/ofstlaxcala/lexnum/internal/sheet"

	"go.uber.org/zap"
)

func main() {
	// --- Load .env file (for local development) ---
	_ = config.LoadDotEnv(".env")

	// --- Config ---
	cfg := config.Load()

	// --- Logger ---
	logger := observability.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("configuration loaded",
		zap.Int("port", cfg.Port),
		zap.String("log_level", cfg.LogLevel),
		zap.Int64("max_upload_bytes", cfg.MaxUploadBytes),
		zap.Int("max_concurrency", cfg.MaxConcurrency),
		zap.Duration("cache_ttl", cfg.CacheTTL),
		zap.String("currency_suffix", cfg.CurrencySuffix),
		zap.Strings("column_aliases", cfg.ColumnAliases),
	)

	// --- Tracing ---
	shutdown, err := observability.InitTracer(cfg.OTLPEndpoint, "lexnum")
	if err != nil {
		logger.Fatal("failed to init tracer", zap.Error(err))
	}
	defer shutdown(context.Background())

	// --- Metrics ---
	metrics := observability.NewMetrics()

	// --- Cache ---
	phraseCache := cache.New[string](cfg.CacheTTL)

	// --- Core ---
	renderer := moneytext.NewRenderer(cfg.StripTokens, cfg.CurrencySuffix)
	resolver := sheet.NewResolver(cfg.ColumnAliases)

	// --- Services ---
	convSvc := service.NewConverter(renderer, phraseCache, metrics, logger)
	wbSvc := service.NewWorkbook(renderer, resolver, cfg.TextColumn, cfg.MaxConcurrency, metrics, logger)

	// --- Router ---
	router := handler.NewRouter(convSvc, wbSvc, cfg, metrics, logger)

	// --- Server ---
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// --- Graceful shutdown ---
	go func() {
		logger.Info("server starting", zap.Int("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
