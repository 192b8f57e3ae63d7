package cache

import (
	"testing"
	"time"

	"github.com/Domenick1991/airlines/config"
	"github.com/stretchr/testify/assert"
)

func TestNewRedisCache(t *testing.T) {
	c := NewRedisCache(config.RedisConfig{Addr: "localhost:6379"}, time.Minute)
	assert.NotNil(t, c)
	assert.Equal(t, time.Minute, c.flightsTTL)
	assert.NoError(t, c.Close())
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "cache:flights:route=1", flightsKey("route=1"))
	assert.Equal(t, "lock:flight:4:row:2:seat:7", seatLockKey(4, 2, 7))
}

func TestRateLimitKey_FixedWindow(t *testing.T) {
	start := time.Date(2025, 4, 11, 12, 0, 0, 0, time.UTC)

	first := rateLimitKey("user:1", time.Minute, start.Add(5*time.Second))
	sameWindow := rateLimitKey("user:1", time.Minute, start.Add(59*time.Second))
	nextWindow := rateLimitKey("user:1", time.Minute, start.Add(61*time.Second))

	assert.Equal(t, first, sameWindow)
	assert.NotEqual(t, first, nextWindow)
	assert.Contains(t, first, "ratelimit:user:1:")
}
