package cache

import (
	"context"
	"log/slog"
	"time"
)

// Tiered walks an ordered list of tiers: reads consult the fast tier first
// and degrade silently to the fallback; writes populate every tier so a
// fallback read after a distributed-tier outage still has a chance of a hit
// for values written before it. The cache is a pure acceleration layer — a
// miss, including one caused by a tier outage, just means the caller does the
// real fetch.
type Tiered struct {
	tiers      []Tier
	defaultTTL time.Duration
	logger     *slog.Logger
}

func NewTiered(logger *slog.Logger, defaultTTL time.Duration, tiers ...Tier) *Tiered {
	if defaultTTL <= 0 {
		defaultTTL = 30 * time.Minute
	}
	return &Tiered{
		tiers:      tiers,
		defaultTTL: defaultTTL,
		logger:     logger,
	}
}

func (t *Tiered) Get(ctx context.Context, key string) ([]byte, bool) {
	for _, tier := range t.tiers {
		value, hit, err := tier.Get(ctx, key)
		if err != nil {
			t.logger.Warn("cache tier read failed, falling back",
				"tier", tier.Name(), "key", key, "error", err)
			continue
		}
		if hit {
			return value, true
		}
	}
	return nil, false
}

// Set stores under the given TTL; ttl <= 0 uses the configured default.
func (t *Tiered) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if ttl <= 0 {
		ttl = t.defaultTTL
	}
	for _, tier := range t.tiers {
		if err := tier.Set(ctx, key, value, ttl); err != nil {
			t.logger.Warn("cache tier write failed",
				"tier", tier.Name(), "key", key, "error", err)
		}
	}
}
