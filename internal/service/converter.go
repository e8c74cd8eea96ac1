package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/ofstlaxcala/lexnum/internal/infra/observability"
	"github.com/ofstlaxcala/lexnum/internal/moneytext"
	"github.com/ofstlaxcala/lexnum/internal/port"
)

var tracer = otel.Tracer("service/converter")

// Converter renders single values into monetary phrases, memoizing results.
type Converter struct {
	renderer *moneytext.Renderer
	cache    port.Cache[string]
	metrics  *observability.Metrics
	logger   *zap.Logger
}

// NewConverter creates the converter service with all dependencies injected.
func NewConverter(
	renderer *moneytext.Renderer,
	cache port.Cache[string],
	metrics *observability.Metrics,
	logger *zap.Logger,
) *Converter {
	return &Converter{
		renderer: renderer,
		cache:    cache,
		metrics:  metrics,
		logger:   logger,
	}
}

// Convert renders one scalar. "No value" inputs yield ("", nil); an
// unparseable input yields the conversion error so the transport layer can
// decide how to answer.
func (c *Converter) Convert(ctx context.Context, value any) (string, error) {
	_, span := tracer.Start(ctx, "Converter.Convert")
	defer span.End()

	start := time.Now()
	defer func() {
		c.metrics.RecordRequestDuration("convert", time.Since(start))
	}()

	key, cacheable := cacheKey(value)
	if cacheable {
		if texto, ok := c.cache.Get(key); ok {
			c.metrics.IncrCacheHit("texto")
			return texto, nil
		}
		c.metrics.IncrCacheMiss("texto")
	}

	texto, err := c.renderer.TryRender(value)
	if err != nil {
		c.metrics.IncrConversion("error")
		c.logger.Warn("conversion failed", zap.Any("numero", value), zap.Error(err))
		return "", err
	}

	if texto == "" {
		c.metrics.IncrConversion("empty")
		return "", nil
	}

	c.metrics.IncrConversion("ok")
	if cacheable {
		c.cache.Set(key, texto)
	}
	c.logger.Debug("conversion", zap.Any("numero", value), zap.String("texto", texto))
	return texto, nil
}

// cacheKey builds the memoization key. Inputs that denote no value (nil or a
// blank string) are not cacheable: formatting them would produce a key like
// "<nil>" that misses forever, since empty results are never stored.
func cacheKey(value any) (string, bool) {
	if value == nil {
		return "", false
	}
	if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
		return "", false
	}
	return fmt.Sprintf("%v", value), true
}
