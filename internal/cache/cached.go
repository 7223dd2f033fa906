package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/OverlordBaconPants/rei-analyzer/internal/engine"
	"github.com/OverlordBaconPants/rei-analyzer/internal/telemetry"
)

// CachedCalculator wraps a Calculator with a metrics-result cache.
type CachedCalculator struct {
	calc   *engine.Calculator
	store  Store
	logger *zap.Logger
}

// NewCachedCalculator creates a caching wrapper. A nil logger is replaced
// with a no-op.
func NewCachedCalculator(calc *engine.Calculator, store Store, logger *zap.Logger) *CachedCalculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedCalculator{calc: calc, store: store, logger: logger}
}

// Compute returns the cached result for the analysis's fingerprint, or
// computes and caches it. Cache failures degrade to plain computation.
func (c *CachedCalculator) Compute(ctx context.Context, a *engine.Analysis) (*engine.MetricsResult, error) {
	key, err := a.Fingerprint()
	if err != nil {
		return nil, err
	}

	if encoded, ok := c.store.Get(ctx, key); ok {
		var result engine.MetricsResult
		if err := json.Unmarshal([]byte(encoded), &result); err == nil {
			telemetry.CacheLookups.WithLabelValues("hit").Inc()
			return &result, nil
		}
		c.logger.Warn("discarding undecodable cache entry",
			zap.String("op", "cache.Compute"),
			zap.String("key", key),
		)
	}
	telemetry.CacheLookups.WithLabelValues("miss").Inc()

	result, err := c.calc.Compute(a)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("encoding metrics result: %w", err)
	}
	if err := c.store.Set(ctx, key, string(encoded)); err != nil {
		// Not critical: the result is still valid without the cache write.
		c.logger.Warn("failed to cache metrics result",
			zap.String("op", "cache.Compute"),
			zap.String("key", key),
			zap.Error(err),
		)
	}
	return result, nil
}
