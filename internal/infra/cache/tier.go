package cache

import (
	"context"
	"time"
)

// Tier is one storage level of the tiered cache: string key, opaque value,
// per-entry TTL. Tier errors are reported to the Tiered wrapper, which
// swallows them; a tier outage must never surface as an application error.
type Tier interface {
	Name() string
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
