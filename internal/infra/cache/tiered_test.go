//go:build unit

package cache_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"staybook/internal/infra/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingTier simulates a tier outage.
type failingTier struct{}

func (failingTier) Name() string { return "failing" }

func (failingTier) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("tier down")
}

func (failingTier) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("tier down")
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMemoryTierExpiry(t *testing.T) {
	ctx := context.Background()
	tier := cache.NewMemoryTier()

	require.NoError(t, tier.Set(ctx, "k", []byte("v"), 10*time.Millisecond))

	val, hit, err := tier.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, []byte("v"), val)

	time.Sleep(20 * time.Millisecond)

	_, hit, err = tier.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestTieredGetFallsBackPastFailingTier(t *testing.T) {
	ctx := context.Background()
	memory := cache.NewMemoryTier()
	tiered := cache.NewTiered(testLogger(), time.Minute, failingTier{}, memory)

	require.NoError(t, memory.Set(ctx, "k", []byte("v"), time.Minute))

	val, hit := tiered.Get(ctx, "k")
	require.True(t, hit)
	assert.Equal(t, []byte("v"), val)
}

func TestTieredSetWritesEveryTier(t *testing.T) {
	ctx := context.Background()
	first := cache.NewMemoryTier()
	second := cache.NewMemoryTier()
	tiered := cache.NewTiered(testLogger(), time.Minute, first, second)

	tiered.Set(ctx, "k", []byte("v"), 0)

	for _, tier := range []cache.Tier{first, second} {
		val, hit, err := tier.Get(ctx, "k")
		require.NoError(t, err)
		require.True(t, hit)
		assert.Equal(t, []byte("v"), val)
	}
}

func TestTieredSetSurvivesFailingTier(t *testing.T) {
	ctx := context.Background()
	memory := cache.NewMemoryTier()
	tiered := cache.NewTiered(testLogger(), time.Minute, failingTier{}, memory)

	tiered.Set(ctx, "k", []byte("v"), time.Minute)

	val, hit := tiered.Get(ctx, "k")
	require.True(t, hit)
	assert.Equal(t, []byte("v"), val)
}

func TestTieredMissIsNotAnError(t *testing.T) {
	tiered := cache.NewTiered(testLogger(), time.Minute, cache.NewMemoryTier())

	_, hit := tiered.Get(context.Background(), "absent")
	assert.False(t, hit)
}
