package httpx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBucketsSweepIdle(t *testing.T) {
	cfg := RateLimitConfig{RequestsPerWindow: 60, Window: time.Minute, Burst: 5}
	require.Equal(t, 5*time.Second, cfg.refill())

	start := time.Now()
	b := newBuckets(cfg)
	b.lastSweep = start

	idle := b.get("idle", start)
	require.True(t, idle.AllowN(start, 1))
	b.get("busy", start)

	// Both buckets refilled long before the sweep; only the key being
	// requested is present afterwards.
	later := start.Add(sweepEvery)
	b.get("busy", later)
	require.NotContains(t, b.byKey, "idle")
	require.Contains(t, b.byKey, "busy")

	require.NotSame(t, idle, b.get("idle", later))
}

func TestBucketsReuseLimiter(t *testing.T) {
	b := newBuckets(RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1})
	now := time.Now()

	first := b.get("k", now)
	require.Same(t, first, b.get("k", now.Add(time.Second)))
	require.Len(t, b.byKey, 1)
}
