package middleware

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestNewClientRateLimiterFallsBackOnBadConfig(t *testing.T) {
	def := DefaultRateLimiterConfig()

	// A zero rate-limit window upstream produces +Inf requests per second;
	// the limiter must not run unbounded because of it
	rl := NewClientRateLimiter(RateLimiterConfig{
		RequestsPerSecond: math.Inf(1),
		BurstSize:         0,
	})
	assert.Equal(t, rate.Limit(def.RequestsPerSecond), rl.rate)
	assert.Equal(t, def.BurstSize, rl.burst)
	assert.Equal(t, def.CleanupInterval, rl.cleanupTick)
	assert.Equal(t, def.EntryTTL, rl.entryTTL)

	rl = NewClientRateLimiter(RateLimiterConfig{RequestsPerSecond: -1})
	assert.Equal(t, rate.Limit(def.RequestsPerSecond), rl.rate)
}

func TestNewClientRateLimiterKeepsValidConfig(t *testing.T) {
	rl := NewClientRateLimiter(RateLimiterConfig{
		RequestsPerSecond: 2.5,
		BurstSize:         5,
		CleanupInterval:   time.Minute,
		EntryTTL:          2 * time.Minute,
	})
	assert.Equal(t, rate.Limit(2.5), rl.rate)
	assert.Equal(t, 5, rl.burst)
	assert.Equal(t, time.Minute, rl.cleanupTick)
	assert.Equal(t, 2*time.Minute, rl.entryTTL)
}
