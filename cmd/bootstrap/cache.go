package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"staybook/internal/infra/cache"
	"staybook/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewTieredCache,
	),
)

// NewTieredCache assembles the tier chain: Redis first when reachable, the
// in-process tier always. A Redis that is configured but down at startup is
// skipped with a warning rather than failing boot; the cache is an
// acceleration layer, not a dependency.
func NewTieredCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *cache.Tiered {
	var tiers []cache.Tier

	if cfg.Cache.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unreachable, running with in-process cache only",
				"addr", cfg.Cache.RedisAddr, "error", err)
			_ = client.Close()
		} else {
			tiers = append(tiers, cache.NewRedisTier(client))
			lc.Append(fx.Hook{
				OnStop: func(_ context.Context) error {
					return client.Close()
				},
			})
		}
	}

	tiers = append(tiers, cache.NewMemoryTier())
	return cache.NewTiered(logger, cfg.Cache.DefaultTTL, tiers...)
}
